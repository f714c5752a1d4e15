// Package report renders the driver's distance and routing tables as
// aligned text tables.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
	"github.com/pterm/pterm"
)

// Inf is the marker text for an unreachable destination or next hop.
const Inf = "INF"

// Renderer implements core.Observer on top of pterm tables, writing to an
// injected writer in the order the driver emits.
type Renderer struct {
	out io.Writer
	log *slog.Logger
}

func NewRenderer(out io.Writer, log *slog.Logger) *Renderer {
	return &Renderer{out: out, log: log}
}

func (r *Renderer) EmitDistanceTable(round int, id state.NodeId, view core.DistanceView) {
	dests := slices.Sorted(maps.Keys(view))
	nhSet := make(map[state.NodeId]struct{})
	for _, byNh := range view {
		for nh := range byNh {
			nhSet[nh] = struct{}{}
		}
	}
	nhs := slices.Sorted(maps.Keys(nhSet))

	header := []string{"dest"}
	for _, nh := range nhs {
		header = append(header, string(nh))
	}
	data := pterm.TableData{header}
	for _, dest := range dests {
		row := []string{string(dest)}
		for _, nh := range nhs {
			if dist, ok := view[dest][nh]; ok {
				row = append(row, strconv.Itoa(int(dist)))
			} else {
				row = append(row, Inf)
			}
		}
		data = append(data, row)
	}

	fmt.Fprintf(r.out, "Distance table of %s at t=%d:\n", id, round)
	r.render(data)
}

func (r *Renderer) EmitRoutingTable(id state.NodeId, entries []core.RouteEntry) {
	data := pterm.TableData{{"destination", "next hop", "distance"}}
	for _, e := range entries {
		nh, dist := Inf, Inf
		if e.Reachable {
			nh = string(e.Nh)
			dist = strconv.Itoa(int(e.Metric))
		}
		data = append(data, []string{string(e.Dest), nh, dist})
	}

	fmt.Fprintf(r.out, "Routing table of %s:\n", id)
	r.render(data)
}

func (r *Renderer) Log(event core.DriverEvent, desc string, args ...any) {
	r.log.Debug(fmt.Sprintf("%s %s", event.String(), desc), args...)
}

func (r *Renderer) render(data pterm.TableData) {
	table, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
	if err != nil {
		r.log.Warn("failed to render table", "err", err)
		return
	}
	fmt.Fprintln(r.out, table)
	fmt.Fprintln(r.out)
}
