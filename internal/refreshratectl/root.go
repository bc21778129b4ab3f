// Package refreshratectl implements the refreshratectl command-line
// interface using Cobra. Each subcommand maps to one Selector operation
// (§6), loading its catalog/policy/layers from TOML via harnessconfig.
package refreshratectl

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "refreshratectl",
	Short: "Inspect and drive a refresh-rate arbitration core",
	Long: `refreshratectl is an operator tool around the refresh-rate
arbitration core: load a catalog/policy from TOML, feed it a layer
vector, and see what mode it picks — without wiring up a real compositor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "refreshrate.toml", "path to the catalog/policy/features TOML file")
}

// Execute runs the root command. Called from cmd/refreshratectl/main.go.
func Execute() error {
	return rootCmd.Execute()
}
