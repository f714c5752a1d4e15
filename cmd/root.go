package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvsim",
	Short: "Distance-Vector Routing Simulator CLI",
	Long: `dvsim simulates the distributed Bellman-Ford algorithm over a centrally known topology.
Each synchronous round produces every router's distance table; at convergence, the routing tables.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	scenarioPath string
	logPath      string
	verbose      bool
)

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.PersistentFlags().StringVarP(&scenarioPath, "scenario", "f", "", "YAML scenario file; reads the line protocol from stdin when empty")
	rootCmd.PersistentFlags().StringVarP(&logPath, "log-path", "l", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
