package cmd

import (
	"log/slog"
	"os"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/ingest"
	"github.com/encodeous/dvsim/report"
	"github.com/encodeous/dvsim/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation to convergence",
	Long: `Converges the initial topology, then applies the scripted link updates
and converges again if there were any.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd)
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log, err := core.NewLogger(core.Options{Level: level, LogPath: logPath})
		if err != nil {
			return err
		}

		obs := report.NewRenderer(cmd.OutOrStdout(), log)
		return core.Start(sc, obs, log)
	},
	GroupID: "sim",
}

func loadScenario(cmd *cobra.Command) (*state.Scenario, error) {
	if scenarioPath == "" {
		return ingest.Read(cmd.InOrStdin())
	}
	file, err := os.ReadFile(scenarioPath)
	if err != nil {
		return nil, err
	}
	var cfg state.ScenarioCfg
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}
	return cfg.Parse()
}

func init() {
	rootCmd.AddCommand(runCmd)
}
