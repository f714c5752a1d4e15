package state

import (
	"fmt"
	"regexp"
	"slices"
)

var namePattern = regexp.MustCompile("^[0-9A-Za-z._-]+$")

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid router name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

// ScenarioValidator checks router names, the cost domain and duplicate
// links. Routers referenced only by links are fine, the topology creates
// them implicitly.
func ScenarioValidator(sc *Scenario) error {
	for _, name := range sc.Routers {
		if err := NameValidator(string(name)); err != nil {
			return err
		}
	}
	linkRel := make([]Pair[NodeId, NodeId], 0)
	for _, l := range sc.Links {
		if err := NameValidator(string(l.A)); err != nil {
			return err
		}
		if err := NameValidator(string(l.B)); err != nil {
			return err
		}
		if l.Cost == RemoveLink {
			return fmt.Errorf("initial link %s %s cannot use the remove sentinel", l.A, l.B)
		}
		if slices.Contains(linkRel, l.Key()) {
			return fmt.Errorf("duplicate link found: %s, %s", l.A, l.B)
		}
		linkRel = append(linkRel, l.Key())
	}
	for _, l := range sc.Updates {
		if err := NameValidator(string(l.A)); err != nil {
			return err
		}
		if err := NameValidator(string(l.B)); err != nil {
			return err
		}
	}
	return nil
}
