package refreshrate

import "fmt"

// Catalog is the immutable set of display modes a panel supports. It is
// built once and never mutated; the mutable "which mode is current" state
// lives in Selector, not here (see §4.B/§4.J of the design).
type Catalog struct {
	modes        []DisplayMode
	byID         map[ModeID]DisplayMode
	minSupported Fps
	maxSupported Fps
}

// NewCatalog builds a Catalog from a non-empty set of modes with unique IDs,
// computing the min/max supported rates once up front.
func NewCatalog(modes []DisplayMode) (*Catalog, error) {
	if len(modes) == 0 {
		return nil, fmt.Errorf("%w: catalog must have at least one mode", ErrInvalidPolicy)
	}

	byID := make(map[ModeID]DisplayMode, len(modes))
	ordered := make([]DisplayMode, len(modes))
	copy(ordered, modes)

	min, max := ordered[0].RefreshRate, ordered[0].RefreshRate
	for _, m := range ordered {
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate mode id %d", ErrInvalidPolicy, m.ID)
		}
		byID[m.ID] = m
		if m.RefreshRate.Less(min) {
			min = m.RefreshRate
		}
		if m.RefreshRate.Greater(max) {
			max = m.RefreshRate
		}
	}

	return &Catalog{modes: ordered, byID: byID, minSupported: min, maxSupported: max}, nil
}

// Mode looks up a mode by ID.
func (c *Catalog) Mode(id ModeID) (DisplayMode, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Contains reports whether id names a mode in this catalog.
func (c *Catalog) Contains(id ModeID) bool {
	_, ok := c.byID[id]
	return ok
}

// Modes returns the catalog's modes. The returned slice must not be mutated
// by callers; it is shared with the Catalog's internal storage.
func (c *Catalog) Modes() []DisplayMode { return c.modes }

// MinSupported is the lowest Hz mode in the whole catalog.
func (c *Catalog) MinSupported() Fps { return c.minSupported }

// MaxSupported is the highest Hz mode in the whole catalog.
func (c *Catalog) MaxSupported() Fps { return c.maxSupported }
