package refreshratectl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/refreshrate/selector/internal/decisionlog"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of most recent decisions to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent decisions recorded by `best --record`",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := decisionlog.Open(dataDir())
	if err != nil {
		return err
	}
	defer db.Close()

	decisions, err := db.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Println("no recorded decisions")
		return nil
	}
	for _, d := range decisions {
		fmt.Printf("%s  mode=%d hz=%.3f touch=%v(%v) idle=%v(%v)\n",
			d.At.Format("2006-01-02T15:04:05Z"), d.ChosenModeID, d.ChosenHz,
			d.Touch, d.TouchConsidered, d.Idle, d.IdleConsidered)
	}
	return nil
}

// dataDir is where the decision log lives; REFRESHRATECTL_HOME overrides
// the default so tests and CI don't write into a real home directory.
func dataDir() string {
	if env := os.Getenv("REFRESHRATECTL_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".refreshratectl"
	}
	return filepath.Join(home, ".refreshratectl")
}
