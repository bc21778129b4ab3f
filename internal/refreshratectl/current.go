package refreshratectl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refreshrate/selector/internal/refreshrate"
)

var currentSet int

func init() {
	currentCmd.Flags().IntVar(&currentSet, "set", -1, "set the current mode id instead of just printing it")
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print or set the current display mode",
	RunE:  runCurrent,
}

func runCurrent(cmd *cobra.Command, args []string) error {
	sel, err := buildSelector()
	if err != nil {
		return err
	}

	if currentSet >= 0 {
		if err := sel.SetCurrentModeId(refreshrate.ModeID(currentSet)); err != nil {
			return err
		}
	}

	m := sel.GetCurrentRefreshRate()
	fmt.Printf("mode=%d hz=%.3f group=%d\n", m.ID, m.RefreshRate.Hz(), m.Group)
	return nil
}
