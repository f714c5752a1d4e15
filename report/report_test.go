package report

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/encodeous/dvsim/core"
	"github.com/stretchr/testify/assert"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(&buf, slog.New(slog.DiscardHandler)), &buf
}

func TestEmitDistanceTable(t *testing.T) {
	r, buf := newTestRenderer()

	view := core.DistanceView{
		"B": {"B": 1},
		"C": {"B": 2, "C": 4},
	}
	r.EmitDistanceTable(3, "A", view)

	out := buf.String()
	assert.Contains(t, out, "Distance table of A at t=3:")
	assert.Contains(t, out, "dest")
	// B has no entry via next hop C
	assert.Contains(t, out, Inf)
	assert.Contains(t, out, "4")
}

func TestEmitRoutingTable(t *testing.T) {
	r, buf := newTestRenderer()

	r.EmitRoutingTable("A", []core.RouteEntry{
		{Dest: "B", Nh: "B", Metric: 1, Reachable: true},
		{Dest: "C", Reachable: false},
	})

	out := buf.String()
	assert.Contains(t, out, "Routing table of A:")
	assert.Contains(t, out, "destination")
	assert.Contains(t, out, "next hop")
	assert.Contains(t, out, Inf)
}

func TestRendererImplementsObserver(t *testing.T) {
	var _ core.Observer = (*Renderer)(nil)
}

func TestLogForwardsToSlog(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRenderer(&bytes.Buffer{}, log)

	r.Log(core.RoundConverged, "topology converged", "round", 7)
	assert.Contains(t, buf.String(), "CONVERGED")
	assert.Contains(t, buf.String(), "round=7")
}
