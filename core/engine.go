package core

// RunRound executes one synchronous exchange across the whole topology:
// every router freezes its vector, direct links are re-seeded, and both
// endpoints of every link advertise to each other. Returns whether any
// router's vector changed.
//
// Advertisements are computed from the settled Previous vectors only, so
// the outcome does not depend on link iteration order within a round.
func RunRound(t *Topology) bool {
	for _, name := range t.RouterNames() {
		t.Router(name).ResetForRound()
	}
	links := t.Links()
	for _, l := range links {
		t.Router(l.A).SeedDirectLink(l.B, l.Cost)
		t.Router(l.B).SeedDirectLink(l.A, l.Cost)
	}
	for _, l := range links {
		t.Router(l.A).ApplyNeighbourAdvertisement(t.Router(l.B), l.Cost)
		t.Router(l.B).ApplyNeighbourAdvertisement(t.Router(l.A), l.Cost)
	}
	changed := false
	for _, name := range t.RouterNames() {
		if t.Router(name).Changed() {
			changed = true
		}
	}
	return changed
}
