package refreshratectl

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(idleTimerCmd)
}

var idleTimerCmd = &cobra.Command{
	Use:   "idle-timer",
	Short: "Print whether an idle timer would be useful under the configured policy",
	RunE:  runIdleTimer,
}

func runIdleTimer(cmd *cobra.Command, args []string) error {
	sel, err := buildSelector()
	if err != nil {
		return err
	}
	fmt.Println(sel.GetIdleTimerAction())
	return nil
}
