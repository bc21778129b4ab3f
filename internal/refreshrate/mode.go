package refreshrate

// Resolution is a panel resolution in pixels.
type Resolution struct {
	Width  int
	Height int
}

// Equal reports whether two resolutions match exactly.
func (r Resolution) Equal(other Resolution) bool {
	return r.Width == other.Width && r.Height == other.Height
}

// ModeID identifies a DisplayMode within a Catalog.
type ModeID int

// DisplayMode is an immutable hardware mode the panel can run in.
type DisplayMode struct {
	ID          ModeID
	RefreshRate Fps
	Group       uint32
	Resolution  Resolution
	HWConfigID  int
}

// SeamlessCompatible reports whether switching from m to other never causes
// a visible glitch — the two modes must share both group and resolution.
func (m DisplayMode) SeamlessCompatible(other DisplayMode) bool {
	return m.Group == other.Group && m.Resolution.Equal(other.Resolution)
}
