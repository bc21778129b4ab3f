package harnessconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/refreshrate/selector/internal/refreshrate"
)

// LayerConfig is one [[layers]] table entry in a layer-vector TOML file
// passed to `refreshratectl best`/`overrides`.
type LayerConfig struct {
	Name               string  `toml:"name"`
	OwnerUID           uint32  `toml:"owner_uid"`
	Weight             float64 `toml:"weight"`
	Vote               string  `toml:"vote"`
	DesiredRefreshRate float64 `toml:"desired_refresh_rate"`
	Seamlessness       string  `toml:"seamlessness"`
	Focused            bool    `toml:"focused"`
}

// LayersDocument is the root of a layer-vector TOML file.
type LayersDocument struct {
	Layers []LayerConfig `toml:"layers"`
}

var voteByName = map[string]refreshrate.LayerVoteType{
	"no_vote":                    refreshrate.NoVote,
	"min":                        refreshrate.Min,
	"max":                        refreshrate.Max,
	"heuristic":                  refreshrate.Heuristic,
	"explicit_default":           refreshrate.ExplicitDefault,
	"explicit_exact_or_multiple": refreshrate.ExplicitExactOrMultiple,
	"explicit_exact":             refreshrate.ExplicitExact,
}

var seamlessnessByName = map[string]refreshrate.Seamlessness{
	"default":              refreshrate.Default,
	"only_seamless":        refreshrate.OnlySeamless,
	"seamed_and_seamless":  refreshrate.SeamedAndSeamless,
}

// LoadLayers reads a layer-vector TOML file into a slice of
// refreshrate.LayerRequirement ready to pass into the facade.
func LoadLayers(path string) ([]refreshrate.LayerRequirement, error) {
	var doc LayersDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("harnessconfig: parse layers %s: %w", path, err)
	}

	out := make([]refreshrate.LayerRequirement, 0, len(doc.Layers))
	for _, l := range doc.Layers {
		vote, ok := voteByName[l.Vote]
		if !ok {
			return nil, fmt.Errorf("harnessconfig: unknown vote %q for layer %q", l.Vote, l.Name)
		}
		seamlessness, ok := seamlessnessByName[l.Seamlessness]
		if !ok && l.Seamlessness != "" {
			return nil, fmt.Errorf("harnessconfig: unknown seamlessness %q for layer %q", l.Seamlessness, l.Name)
		}
		out = append(out, refreshrate.LayerRequirement{
			Name:               l.Name,
			OwnerUID:           l.OwnerUID,
			Weight:             float32(l.Weight),
			Vote:               vote,
			DesiredRefreshRate: refreshrate.FpsFromHz(l.DesiredRefreshRate),
			Seamlessness:       seamlessness,
			Focused:            l.Focused,
		})
	}
	return out, nil
}
