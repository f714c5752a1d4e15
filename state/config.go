package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Link is an undirected weighted link between two routers.
type Link struct {
	A    NodeId
	B    NodeId
	Cost Cost
}

// Key returns the canonical unordered-pair key for this link.
func (l Link) Key() Pair[NodeId, NodeId] {
	return MakeSortedPair(l.A, l.B)
}

// ScenarioCfg is the YAML form of a simulation scenario. Link lines use
// the same "a b cost" syntax as the stdin line protocol.
type ScenarioCfg struct {
	Routers []NodeId `yaml:",omitempty"`
	Links   []string `yaml:",omitempty"`
	Updates []string `yaml:",omitempty"`
}

// Scenario is the parsed, validated form consumed by the core.
type Scenario struct {
	Routers []NodeId
	Links   []Link
	Updates []Link
}

// ParseLink parses a single "a b cost" line.
func ParseLink(line string) (Link, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 3 {
		return Link{}, fmt.Errorf("link %q must have exactly 3 fields, got %d", line, len(fields))
	}
	cost, err := strconv.Atoi(fields[2])
	if err != nil {
		return Link{}, fmt.Errorf("link %q has a non-integer cost: %w", line, err)
	}
	if Cost(cost) < RemoveLink {
		return Link{}, fmt.Errorf("link %q cost must be non-negative, or %d to remove the link", line, RemoveLink)
	}
	a, b := NodeId(fields[0]), NodeId(fields[1])
	if a == b {
		return Link{}, fmt.Errorf("link %q connects %s to itself", line, a)
	}
	return Link{A: a, B: b, Cost: Cost(cost)}, nil
}

func ParseLinks(lines []string) ([]Link, error) {
	links := make([]Link, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		l, err := ParseLink(line)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, nil
}

// Parse expands the YAML config into a validated Scenario.
func (c *ScenarioCfg) Parse() (*Scenario, error) {
	links, err := ParseLinks(c.Links)
	if err != nil {
		return nil, fmt.Errorf("links: %w", err)
	}
	updates, err := ParseLinks(c.Updates)
	if err != nil {
		return nil, fmt.Errorf("updates: %w", err)
	}
	sc := &Scenario{
		Routers: c.Routers,
		Links:   links,
		Updates: updates,
	}
	if err := ScenarioValidator(sc); err != nil {
		return nil, err
	}
	return sc, nil
}
