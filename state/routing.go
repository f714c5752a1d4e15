package state

import "maps"

type NodeId string

// DistanceVector maps (destination, next hop) to a path cost. At most one
// entry exists per pair, and several next hops to the same destination may
// coexist; the minimum is selected at query time. A missing key means the
// destination is unreachable via that next hop.
type DistanceVector map[Pair[NodeId, NodeId]]Cost

// RouterState owns the two generations of a router's distance vector.
// Current is built during the present round; Previous is the settled
// snapshot from the prior round that neighbours advertise from. Only the
// owning router may write Current, and other routers may only read
// Previous, otherwise the synchronous-round guarantee breaks.
type RouterState struct {
	Id       NodeId
	Current  DistanceVector
	Previous DistanceVector
}

func NewRouterState(id NodeId) *RouterState {
	return &RouterState{
		Id:       id,
		Current:  make(DistanceVector),
		Previous: make(DistanceVector),
	}
}

// ResetForRound freezes Current into Previous and starts an empty vector.
// Must run once per round on every router before any seeding.
func (r *RouterState) ResetForRound() {
	r.Previous = r.Current
	r.Current = make(DistanceVector)
}

// SeedDirectLink records the degenerate one-hop entry for a live link.
// The (neigh, neigh) key is reserved for the direct hop, so the write is
// unconditional every round.
func (r *RouterState) SeedDirectLink(neigh NodeId, cost Cost) {
	r.Current[Pair[NodeId, NodeId]{neigh, neigh}] = cost
}

// ApplyNeighbourAdvertisement relaxes Current with every route neigh held
// at the end of the last round, regardless of which next hop the neighbour
// itself used. The recorded next hop is always the advertising neighbour:
//
//	D_x(y) = min over neighbours u of { C_x(u) + D_u(y) }
//
// kept per (destination, next hop) pair rather than collapsed per
// destination.
func (r *RouterState) ApplyNeighbourAdvertisement(neigh *RouterState, linkCost Cost) {
	for key, dist := range neigh.Previous {
		dest := key.V1
		if dest == r.Id {
			continue // a router never routes to itself
		}
		candidate := dist + linkCost
		k := Pair[NodeId, NodeId]{dest, neigh.Id}
		if cur, ok := r.Current[k]; !ok || candidate < cur {
			r.Current[k] = candidate
		}
	}
}

// BestRouteTo selects the minimum-cost Current entry for dest, breaking
// ties by the lexicographically smallest next hop. ok is false when no
// entry exists, i.e. the destination is unreachable.
func (r *RouterState) BestRouteTo(dest NodeId) (nh NodeId, cost Cost, ok bool) {
	for key, dist := range r.Current {
		if key.V1 != dest {
			continue
		}
		if !ok || dist < cost || (dist == cost && key.V2 < nh) {
			nh, cost, ok = key.V2, dist, true
		}
	}
	return
}

// Changed reports whether the present round produced a different vector
// than the last one.
func (r *RouterState) Changed() bool {
	return !maps.Equal(r.Current, r.Previous)
}
