package refreshrate

// LayerVoteType is the closed set of opinions a layer can cast about the
// panel's refresh rate. Adding a new variant means adding a scoring rule in
// score.go — the comparator must see every variant to stay a total order.
type LayerVoteType int

const (
	// NoVote means the layer has no opinion; it contributes 0 to every
	// mode's score but still participates in the tie-break signals.
	NoVote LayerVoteType = iota
	// Min prefers the lowest-Hz mode in the eligible set.
	Min
	// Max prefers the highest-Hz mode in the eligible set.
	Max
	// Heuristic carries a noisy measured rate, snapped to the known-rate
	// ladder before scoring.
	Heuristic
	// ExplicitDefault asks for a rate, biased upward to the nearest mode
	// that meets or exceeds it.
	ExplicitDefault
	// ExplicitExactOrMultiple asks for an exact rate or any of its integer
	// multiples (cinema pairs count), falling back to ExplicitDefault
	// scoring when no multiple is available.
	ExplicitExactOrMultiple
	// ExplicitExact asks for an exact rate (or its cinema pair), falling
	// back to ExplicitExactOrMultiple scoring when the exact rate is
	// absent from the eligible set.
	ExplicitExact
)

func (v LayerVoteType) String() string {
	switch v {
	case NoVote:
		return "NoVote"
	case Min:
		return "Min"
	case Max:
		return "Max"
	case Heuristic:
		return "Heuristic"
	case ExplicitDefault:
		return "ExplicitDefault"
	case ExplicitExactOrMultiple:
		return "ExplicitExactOrMultiple"
	case ExplicitExact:
		return "ExplicitExact"
	default:
		return "Unknown"
	}
}

// Seamlessness is a layer's preference about whether a seamed (visible)
// group switch is acceptable to satisfy its vote.
type Seamlessness int

const (
	// Default defers to whatever the seamed-arbitration rules decide.
	Default Seamlessness = iota
	// OnlySeamless means the layer never tolerates a seamed switch; it can
	// never force one, and seamed modes are excluded for its own scoring.
	OnlySeamless
	// SeamedAndSeamless means the layer accepts a seamed switch and, if
	// focused, can force one away from the default group.
	SeamedAndSeamless
)

func (s Seamlessness) String() string {
	switch s {
	case Default:
		return "Default"
	case OnlySeamless:
		return "OnlySeamless"
	case SeamedAndSeamless:
		return "SeamedAndSeamless"
	default:
		return "Unknown"
	}
}

// LayerRequirement is one surface's per-frame opinion about refresh rate.
type LayerRequirement struct {
	Name                string
	OwnerUID            uint32
	Weight              float32 // (0, 1]
	Vote                LayerVoteType
	DesiredRefreshRate  Fps // meaningful for Heuristic and Explicit* votes
	Seamlessness        Seamlessness
	Focused             bool
}

// GlobalSignals are the small set of platform-wide signals layered on top
// of the kernel's per-layer scoring.
type GlobalSignals struct {
	Touch bool
	Idle  bool
}

// FrameRateOverride maps an application (by owner UID) to a rate that
// exactly divides the chosen panel rate.
type FrameRateOverride map[uint32]Fps
