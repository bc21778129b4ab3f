package refreshratectl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refreshrate/selector/internal/harnessconfig"
	"github.com/refreshrate/selector/internal/refreshrate"
)

var (
	policySetDefaultModeID int
	policySetPrimaryLo     float64
	policySetPrimaryHi     float64
	policySetAppLo         float64
	policySetAppHi         float64
	policySetAllowGroups   bool
)

func init() {
	policySetCmd.Flags().IntVar(&policySetDefaultModeID, "default-mode-id", 0, "default mode id")
	policySetCmd.Flags().Float64Var(&policySetPrimaryLo, "primary-lo", 0, "primary range low Hz")
	policySetCmd.Flags().Float64Var(&policySetPrimaryHi, "primary-hi", 0, "primary range high Hz")
	policySetCmd.Flags().Float64Var(&policySetAppLo, "app-lo", 0, "app range low Hz")
	policySetCmd.Flags().Float64Var(&policySetAppHi, "app-hi", 0, "app range high Hz")
	policySetCmd.Flags().BoolVar(&policySetAllowGroups, "allow-group-switching", false, "allow seamed group switches")

	policyCmd.AddCommand(policyShowCmd, policySetCmd)
	rootCmd.AddCommand(policyCmd)
}

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Inspect the configured policy",
}

var policyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the policy loaded from the config file",
	RunE:  runPolicyShow,
}

func runPolicyShow(cmd *cobra.Command, args []string) error {
	sel, err := buildSelector()
	if err != nil {
		return err
	}

	p := sel.GetPolicy()
	fmt.Printf("default_mode_id=%d\n", p.DefaultModeID)
	fmt.Printf("primary_range=[%.3f, %.3f]\n", p.PrimaryRange.Lo.Hz(), p.PrimaryRange.Hi.Hz())
	fmt.Printf("app_range=[%.3f, %.3f]\n", p.AppRange.Lo.Hz(), p.AppRange.Hi.Hz())
	fmt.Printf("allow_group_switching=%v\n", p.AllowGroupSwitching)
	return nil
}

var policySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the policy in the config file, validating it against the catalog first",
	RunE:  runPolicySet,
}

// runPolicySet validates the replacement policy through a real Selector
// construction (the same validation SetPolicy would apply) before writing
// it back to the config file — a rejected policy leaves the file
// untouched, matching the core's own "invalid policy changes nothing" rule.
func runPolicySet(cmd *cobra.Command, args []string) error {
	cfg, err := harnessconfig.Load(configPath)
	if err != nil {
		return err
	}

	cfg.Policy = harnessconfig.PolicyConfig{
		DefaultModeID:       policySetDefaultModeID,
		PrimaryRange:        [2]float64{policySetPrimaryLo, policySetPrimaryHi},
		AppRange:            [2]float64{policySetAppLo, policySetAppHi},
		AllowGroupSwitching: policySetAllowGroups,
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	newPolicy := cfg.BuildPolicy()
	if _, err := refreshrate.New(catalog, newPolicy, newPolicy.DefaultModeID, cfg.Flags(), nil); err != nil {
		return err
	}

	if err := harnessconfig.Save(configPath, cfg); err != nil {
		return err
	}
	fmt.Println("policy updated")
	return nil
}
