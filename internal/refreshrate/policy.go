package refreshrate

import "fmt"

// FpsRange is an inclusive [Lo, Hi] Hz envelope.
type FpsRange struct {
	Lo Fps
	Hi Fps
}

// Contains reports whether f falls inside the range, tolerance-aware.
func (r FpsRange) Contains(f Fps) bool { return f.InRange(r.Lo, r.Hi) }

// Superset reports whether r fully contains other (r.Lo <= other.Lo and
// r.Hi >= other.Hi).
func (r FpsRange) Superset(other FpsRange) bool {
	loOK := r.Lo.Less(other.Lo) || r.Lo.Equal(other.Lo)
	hiOK := r.Hi.Greater(other.Hi) || r.Hi.Equal(other.Hi)
	return loOK && hiOK
}

// IsSingleRate reports whether the range admits only one Hz value — idle
// demotion and the idle-timer advisor both special-case this.
func (r FpsRange) IsSingleRate() bool { return r.Lo.Equal(r.Hi) }

// Policy is the validated, immutable-once-accepted set of platform/app rules
// the scoring kernel arbitrates within (§3/§4.C).
type Policy struct {
	DefaultModeID        ModeID
	PrimaryRange         FpsRange
	AppRange             FpsRange
	AllowGroupSwitching  bool
}

// validate checks the §3 invariants against a catalog. On failure it
// returns ErrInvalidPolicy wrapped with the specific reason; callers must
// leave prior state untouched when this returns non-nil.
func (p Policy) validate(catalog *Catalog) error {
	if !p.AppRange.Superset(p.PrimaryRange) {
		return fmt.Errorf("%w: app_range does not contain primary_range", ErrInvalidPolicy)
	}

	defaultMode, ok := catalog.Mode(p.DefaultModeID)
	if !ok {
		return fmt.Errorf("%w: default_mode_id %d not in catalog", ErrInvalidPolicy, p.DefaultModeID)
	}
	if !p.PrimaryRange.Contains(defaultMode.RefreshRate) {
		return fmt.Errorf("%w: default mode is outside primary_range", ErrInvalidPolicy)
	}

	anyInPrimary := false
	for _, m := range catalog.Modes() {
		if p.PrimaryRange.Contains(m.RefreshRate) {
			anyInPrimary = true
			break
		}
	}
	if !anyInPrimary {
		return fmt.Errorf("%w: no catalog mode falls in primary_range", ErrInvalidPolicy)
	}

	return nil
}
