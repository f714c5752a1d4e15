package core

import "github.com/encodeous/dvsim/state"

// DistanceView is the read-only per-router view handed to reporting:
// destination → next hop → distance.
type DistanceView map[state.NodeId]map[state.NodeId]state.Cost

// SnapshotDistances copies r's Current vector into a DistanceView.
func SnapshotDistances(r *state.RouterState) DistanceView {
	view := make(DistanceView)
	for key, dist := range r.Current {
		dest, nh := key.V1, key.V2
		if _, ok := view[dest]; !ok {
			view[dest] = make(map[state.NodeId]state.Cost)
		}
		view[dest][nh] = dist
	}
	return view
}

// RouteEntry is one converged routing table row.
type RouteEntry struct {
	Dest      state.NodeId
	Nh        state.NodeId
	Metric    state.Cost
	Reachable bool
}

// RoutingTable derives r's best route to every other router, in ascending
// destination order. Self is skipped; unreachable destinations produce an
// entry with Reachable set to false.
func RoutingTable(t *Topology, r *state.RouterState) []RouteEntry {
	entries := make([]RouteEntry, 0, len(t.RouterNames())-1)
	for _, dest := range t.RouterNames() {
		if dest == r.Id {
			continue
		}
		nh, metric, ok := r.BestRouteTo(dest)
		entries = append(entries, RouteEntry{
			Dest:      dest,
			Nh:        nh,
			Metric:    metric,
			Reachable: ok,
		})
	}
	return entries
}
