package core

import (
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/dvsim/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// Options controls logging for a simulation run.
type Options struct {
	Level   slog.Level
	LogPath string // if not empty, dvsim will also write to this file
}

func NewLogger(opts Options) (*slog.Logger, error) {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        opts.Level,
			AddSource:    false,
			CustomPrefix: "dvsim",
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if opts.LogPath != "" {
		err := os.MkdirAll(path.Dir(opts.LogPath), 0700)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// Start loads the scenario into a fresh topology, converges it, then
// applies the scripted link updates and converges again iff the update
// batch is non-empty. The driver keeps its round counter across both
// convergence runs.
func Start(sc *state.Scenario, obs Observer, log *slog.Logger) error {
	topo := NewTopology()
	for _, name := range sc.Routers {
		topo.Router(name)
	}
	for _, l := range sc.Links {
		topo.ApplyLink(l)
	}
	log.Info("initial topology loaded", "routers", len(topo.RouterNames()), "links", len(topo.Links()))

	driver := NewDriver(topo)
	driver.Converge(obs)

	if len(sc.Updates) == 0 {
		return nil
	}
	for _, l := range sc.Updates {
		topo.ApplyLink(l)
		log.Debug("applied link update", "a", l.A, "b", l.B, "cost", l.Cost)
	}
	log.Info("update batch applied", "updates", len(sc.Updates))
	driver.Converge(obs)
	return nil
}
