package core

import (
	"testing"

	"github.com/encodeous/dvsim/state"
	"github.com/google/go-cmp/cmp"
)

// driverHarness records everything the driver emits so scenario tests can
// assert on tables instead of rendered text.
type driverHarness struct {
	rounds map[state.NodeId][]int        // rounds a distance table was emitted at
	views  map[state.NodeId]DistanceView // latest distance view
	routes map[state.NodeId][]RouteEntry // latest routing table
	emits  int                           // total distance table emissions
}

func newDriverHarness() *driverHarness {
	return &driverHarness{
		rounds: make(map[state.NodeId][]int),
		views:  make(map[state.NodeId]DistanceView),
		routes: make(map[state.NodeId][]RouteEntry),
	}
}

func (h *driverHarness) EmitDistanceTable(round int, id state.NodeId, view DistanceView) {
	h.rounds[id] = append(h.rounds[id], round)
	h.views[id] = view
	h.emits++
}

func (h *driverHarness) EmitRoutingTable(id state.NodeId, entries []RouteEntry) {
	h.routes[id] = entries
}

func (h *driverHarness) Log(event DriverEvent, desc string, args ...any) {}

func (h *driverHarness) route(t *testing.T, id, dest state.NodeId) RouteEntry {
	t.Helper()
	for _, e := range h.routes[id] {
		if e.Dest == dest {
			return e
		}
	}
	t.Fatalf("no routing table entry for %s -> %s", id, dest)
	return RouteEntry{}
}

func (h *driverHarness) assertRoute(t *testing.T, id, dest, nh state.NodeId, metric state.Cost) {
	t.Helper()
	got := h.route(t, id, dest)
	want := RouteEntry{Dest: dest, Nh: nh, Metric: metric, Reachable: true}
	if !cmp.Equal(got, want) {
		t.Fatalf("route %s -> %s mismatch: %s", id, dest, cmp.Diff(want, got))
	}
}

func (h *driverHarness) assertUnreachable(t *testing.T, id, dest state.NodeId) {
	t.Helper()
	got := h.route(t, id, dest)
	if got.Reachable {
		t.Fatalf("expected %s -> %s to be unreachable, got %+v", id, dest, got)
	}
}

func link(a, b state.NodeId, cost state.Cost) state.Link {
	return state.Link{A: a, B: b, Cost: cost}
}

func buildTopology(links ...state.Link) *Topology {
	topo := NewTopology()
	for _, l := range links {
		topo.ApplyLink(l)
	}
	return topo
}
