package core

import "github.com/encodeous/dvsim/state"

type DriverEvent int

const (
	RoundChanged DriverEvent = iota
	RoundConverged
)

func (e DriverEvent) String() string {
	switch e {
	case RoundChanged:
		return "ROUND_CHANGED"
	case RoundConverged:
		return "CONVERGED"
	}
	return "UNKNOWN"
}

// Observer receives the tables the driver emits. Rendering (column
// alignment, labels, the INF marker text) is entirely the observer's
// concern.
type Observer interface {
	EmitDistanceTable(round int, id state.NodeId, view DistanceView)
	EmitRoutingTable(id state.NodeId, entries []RouteEntry)
	Log(event DriverEvent, desc string, args ...any)
}

// Driver runs engine rounds until the convergence fixed point. The round
// counter is owned by the driver and never reset, so a rerun after
// scripted updates continues the same timeline.
type Driver struct {
	Topo  *Topology
	Round int
}

func NewDriver(t *Topology) *Driver {
	return &Driver{Topo: t}
}

// Converge runs rounds until one produces no change. Every changed round
// emits all distance tables tagged with the round counter; on the fixed
// point the routing tables are emitted instead. Routers are always
// reported in ascending lexicographic order.
func (d *Driver) Converge(obs Observer) {
	for RunRound(d.Topo) {
		obs.Log(RoundChanged, "round produced changes", "round", d.Round)
		for _, name := range d.Topo.RouterNames() {
			obs.EmitDistanceTable(d.Round, name, SnapshotDistances(d.Topo.Router(name)))
		}
		d.Round++
	}
	obs.Log(RoundConverged, "topology converged", "round", d.Round)
	for _, name := range d.Topo.RouterNames() {
		obs.EmitRoutingTable(name, RoutingTable(d.Topo, d.Topo.Router(name)))
	}
}
