package refreshrate

import "errors"

// Sentinel errors for the core's small taxonomy (§7). Mutators surface these
// atomically — on any of them, the caller's state is left unchanged.
var (
	// ErrNotFound means a referenced mode id is absent from the catalog.
	ErrNotFound = errors.New("refreshrate: mode id not found in catalog")

	// ErrInvalidPolicy means a policy fails the §3 invariants: unknown
	// default mode, default mode outside primary_range, app_range not a
	// superset of primary_range, or no mode in the catalog falling inside
	// primary_range.
	ErrInvalidPolicy = errors.New("refreshrate: policy violates its invariants")

	// ErrUnsupported means an operation was invoked in a configuration
	// where it is disabled, e.g. the override planner with its feature
	// flag off.
	ErrUnsupported = errors.New("refreshrate: operation disabled by configuration")
)
