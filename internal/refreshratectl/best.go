package refreshratectl

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/refreshrate/selector/internal/decisionlog"
	"github.com/refreshrate/selector/internal/harnessconfig"
	"github.com/refreshrate/selector/internal/refreshrate"
)

var (
	bestTouch   bool
	bestIdle    bool
	bestCurrent int
	bestRecord  bool
)

func init() {
	bestCmd.Flags().BoolVar(&bestTouch, "touch", false, "set the touch global signal")
	bestCmd.Flags().BoolVar(&bestIdle, "idle", false, "set the idle global signal")
	bestCmd.Flags().IntVar(&bestCurrent, "current", -1, "override the starting current mode id (default: policy default)")
	bestCmd.Flags().BoolVar(&bestRecord, "record", false, "append this call to the decision log (see `history`)")
	rootCmd.AddCommand(bestCmd)
}

var bestCmd = &cobra.Command{
	Use:   "best <layers-toml-file>",
	Short: "Run the scoring kernel and signal overlay over a layer vector",
	Args:  cobra.ExactArgs(1),
	RunE:  runBest,
}

func runBest(cmd *cobra.Command, args []string) error {
	sel, err := buildSelector()
	if err != nil {
		return err
	}

	if bestCurrent >= 0 {
		if err := sel.SetCurrentModeId(refreshrate.ModeID(bestCurrent)); err != nil {
			return err
		}
	}

	layers, err := harnessconfig.LoadLayers(args[0])
	if err != nil {
		return err
	}

	signals := refreshrate.GlobalSignals{Touch: bestTouch, Idle: bestIdle}
	mode, considered := sel.GetBestRefreshRate(layers, signals)
	fmt.Printf("mode=%d hz=%.3f group=%d touch_considered=%v idle_considered=%v\n",
		mode.ID, mode.RefreshRate.Hz(), mode.Group, considered.Touch, considered.Idle)

	if bestRecord {
		db, err := decisionlog.Open(dataDir())
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Record(layers, signals, mode, considered, time.Now()); err != nil {
			return err
		}
	}
	return nil
}
