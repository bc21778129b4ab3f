// Package harnessconfig loads the TOML description of a panel's catalog,
// policy, and feature flags used by the refreshratectl CLI and debug
// server. It is ambient tooling around the core — the core package itself
// never imports it and takes plain Go values at construction.
package harnessconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/refreshrate/selector/internal/refreshrate"
)

// ModeConfig is one [[modes]] table entry.
type ModeConfig struct {
	ID           int     `toml:"id"`
	Hz           float64 `toml:"hz"`
	Group        uint32  `toml:"group"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	HWConfigID   int     `toml:"hw_config_id"`
}

// PolicyConfig is the [policy] table.
type PolicyConfig struct {
	DefaultModeID       int       `toml:"default_mode_id"`
	PrimaryRange        [2]float64 `toml:"primary_range"`
	AppRange            [2]float64 `toml:"app_range"`
	AllowGroupSwitching bool      `toml:"allow_group_switching"`
}

// FeaturesConfig is the [features] table.
type FeaturesConfig struct {
	EnableFrameRateOverride    bool    `toml:"enable_frame_rate_override"`
	FrameRateMultipleThreshold float64 `toml:"frame_rate_multiple_threshold"`
}

// Config is the full refreshrate.toml document.
type Config struct {
	Modes    []ModeConfig   `toml:"modes"`
	Policy   PolicyConfig   `toml:"policy"`
	Features FeaturesConfig `toml:"features"`
}

// Load reads and parses a refreshrate.toml file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("harnessconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("harnessconfig: create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("harnessconfig: create %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Catalog builds a refreshrate.Catalog from the loaded mode table.
func (c Config) Catalog() (*refreshrate.Catalog, error) {
	modes := make([]refreshrate.DisplayMode, 0, len(c.Modes))
	for _, m := range c.Modes {
		modes = append(modes, refreshrate.DisplayMode{
			ID:          refreshrate.ModeID(m.ID),
			RefreshRate: refreshrate.FpsFromHz(m.Hz),
			Group:       m.Group,
			Resolution:  refreshrate.Resolution{Width: m.Width, Height: m.Height},
			HWConfigID:  m.HWConfigID,
		})
	}
	return refreshrate.NewCatalog(modes)
}

// BuildPolicy builds a refreshrate.Policy from the loaded [policy] table.
func (c Config) BuildPolicy() refreshrate.Policy {
	return refreshrate.Policy{
		DefaultModeID: refreshrate.ModeID(c.Policy.DefaultModeID),
		PrimaryRange: refreshrate.FpsRange{
			Lo: refreshrate.FpsFromHz(c.Policy.PrimaryRange[0]),
			Hi: refreshrate.FpsFromHz(c.Policy.PrimaryRange[1]),
		},
		AppRange: refreshrate.FpsRange{
			Lo: refreshrate.FpsFromHz(c.Policy.AppRange[0]),
			Hi: refreshrate.FpsFromHz(c.Policy.AppRange[1]),
		},
		AllowGroupSwitching: c.Policy.AllowGroupSwitching,
	}
}

// Flags builds a refreshrate.FeatureFlags from the loaded [features] table.
func (c Config) Flags() refreshrate.FeatureFlags {
	return refreshrate.FeatureFlags{
		EnableFrameRateOverride:    c.Features.EnableFrameRateOverride,
		FrameRateMultipleThreshold: int(c.Features.FrameRateMultipleThreshold),
	}
}
