package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"check"},
	Short:   "Validate a scenario without running it",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "scenario ok: %d routers, %d links, %d updates\n",
			len(sc.Routers), len(sc.Links), len(sc.Updates))
		return nil
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
