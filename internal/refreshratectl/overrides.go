package refreshratectl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refreshrate/selector/internal/harnessconfig"
	"github.com/refreshrate/selector/internal/refreshrate"
)

var overridesTouch bool

func init() {
	overridesCmd.Flags().BoolVar(&overridesTouch, "touch", false, "set the touch global signal")
	rootCmd.AddCommand(overridesCmd)
}

var overridesCmd = &cobra.Command{
	Use:   "overrides <layers-toml-file>",
	Short: "Compute per-app frame-rate overrides for a layer vector",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrides,
}

func runOverrides(cmd *cobra.Command, args []string) error {
	sel, err := buildSelector()
	if err != nil {
		return err
	}

	layers, err := harnessconfig.LoadLayers(args[0])
	if err != nil {
		return err
	}

	overrides, err := sel.GetFrameRateOverrides(layers, refreshrate.GlobalSignals{Touch: overridesTouch})
	if err != nil {
		return err
	}

	if len(overrides) == 0 {
		fmt.Println("no overrides")
		return nil
	}
	for uid, hz := range overrides {
		fmt.Printf("owner_uid=%d override_hz=%.3f\n", uid, hz.Hz())
	}
	return nil
}
