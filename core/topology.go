package core

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/encodeous/dvsim/state"
)

// Topology is the centrally known network: every router's state plus the
// set of live undirected links, keyed canonically so that (a,b) and (b,a)
// refer to the same stored link.
type Topology struct {
	routers map[state.NodeId]*state.RouterState
	links   map[state.Pair[state.NodeId, state.NodeId]]state.Cost
}

func NewTopology() *Topology {
	return &Topology{
		routers: make(map[state.NodeId]*state.RouterState),
		links:   make(map[state.Pair[state.NodeId, state.NodeId]]state.Cost),
	}
}

// Router returns the state for name, creating it on first mention. Routers
// are never destroyed during a run.
func (t *Topology) Router(name state.NodeId) *state.RouterState {
	r, ok := t.routers[name]
	if !ok {
		r = state.NewRouterState(name)
		t.routers[name] = r
	}
	return r
}

// ApplyLink inserts or replaces the link described by l, or deletes it
// when the cost is the RemoveLink sentinel. Both endpoints are created if
// they are not yet known and survive a removal, possibly isolated.
func (t *Topology) ApplyLink(l state.Link) {
	if l.Cost < state.RemoveLink {
		panic(fmt.Sprintf("link %s-%s has invalid cost %d", l.A, l.B, l.Cost))
	}
	t.Router(l.A)
	t.Router(l.B)
	key := l.Key()
	if l.Cost == state.RemoveLink {
		delete(t.links, key)
		return
	}
	t.links[key] = l.Cost
}

// LinkCost reports the cost of the live link between a and b, if any.
func (t *Topology) LinkCost(a, b state.NodeId) (state.Cost, bool) {
	cost, ok := t.links[state.MakeSortedPair(a, b)]
	return cost, ok
}

// RouterNames returns all router names in ascending lexicographic order.
func (t *Topology) RouterNames() []state.NodeId {
	return slices.Sorted(maps.Keys(t.routers))
}

// Links returns the live links with canonical endpoints, sorted.
func (t *Topology) Links() []state.Link {
	out := make([]state.Link, 0, len(t.links))
	for key, cost := range t.links {
		out = append(out, state.Link{A: key.V1, B: key.V2, Cost: cost})
	}
	slices.SortFunc(out, func(a, b state.Link) int {
		if c := cmp.Compare(a.A, b.A); c != 0 {
			return c
		}
		return cmp.Compare(a.B, b.B)
	})
	return out
}
