// Package ingest parses the line-delimited scenario protocol:
//
//	<router name>     one per line
//	START
//	<a> <b> <cost>    initial links
//	UPDATE
//	<a> <b> <cost>    scripted updates, may be empty
//	END
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/encodeous/dvsim/state"
)

const (
	TokenStart  = "START"
	TokenUpdate = "UPDATE"
	TokenEnd    = "END"
)

type section int

const (
	sectionRouters section = iota
	sectionLinks
	sectionUpdates
	sectionDone
)

// Read parses and validates a scenario from r. All input errors are
// reported here, before anything reaches the core.
func Read(r io.Reader) (*state.Scenario, error) {
	sc := &state.Scenario{}
	cur := sectionRouters

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case TokenStart:
			if cur != sectionRouters {
				return nil, fmt.Errorf("unexpected %q token", TokenStart)
			}
			cur = sectionLinks
		case TokenUpdate:
			if cur != sectionLinks {
				return nil, fmt.Errorf("unexpected %q token", TokenUpdate)
			}
			cur = sectionUpdates
		case TokenEnd:
			if cur != sectionUpdates {
				return nil, fmt.Errorf("unexpected %q token", TokenEnd)
			}
			cur = sectionDone
		default:
			switch cur {
			case sectionRouters:
				if err := state.NameValidator(line); err != nil {
					return nil, err
				}
				sc.Routers = append(sc.Routers, state.NodeId(line))
			case sectionLinks, sectionUpdates:
				l, err := state.ParseLink(line)
				if err != nil {
					return nil, err
				}
				if cur == sectionLinks {
					sc.Links = append(sc.Links, l)
				} else {
					sc.Updates = append(sc.Updates, l)
				}
			case sectionDone:
				return nil, fmt.Errorf("unexpected content after %q: %q", TokenEnd, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != sectionDone {
		return nil, fmt.Errorf("scenario ended before the %q token", TokenEnd)
	}
	if err := state.ScenarioValidator(sc); err != nil {
		return nil, err
	}
	return sc, nil
}
