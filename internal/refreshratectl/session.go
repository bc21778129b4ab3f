package refreshratectl

import (
	"fmt"

	"github.com/refreshrate/selector/internal/harnessconfig"
	"github.com/refreshrate/selector/internal/refreshrate"
)

// buildSelector loads the configured TOML file and constructs a Selector
// whose current mode is the policy's default mode — every subcommand
// invocation is its own short-lived process, so no "current mode" persists
// across calls; a subcommand's own flag (best --current, current --set)
// changes it for that one invocation only.
func buildSelector() (*refreshrate.Selector, error) {
	cfg, err := harnessconfig.Load(configPath)
	if err != nil {
		return nil, err
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("refreshratectl: build catalog: %w", err)
	}

	policy := cfg.BuildPolicy()
	return refreshrate.New(catalog, policy, policy.DefaultModeID, cfg.Flags(), nil)
}
