package refreshrate

import (
	"fmt"
	"sync"
	"time"
)

// Observer lets a caller instrument the facade from outside without the
// core importing any metrics library itself (§2.5 of the design): a nil
// Observer is a valid, zero-cost default.
type Observer interface {
	ObserveBest(start time.Time, cacheHit bool)
	ObserveSetPolicyRejected()
}

// FeatureFlags are construction-time toggles that don't change during the
// Selector's lifetime (§4.H).
type FeatureFlags struct {
	// EnableFrameRateOverride gates GetFrameRateOverrides; when false it
	// returns ErrUnsupported instead of computing anything.
	EnableFrameRateOverride bool
	// FrameRateMultipleThreshold caps how many integer multiples above a
	// desired rate ExplicitExactOrMultiple still accepts. Zero means the
	// package default.
	FrameRateMultipleThreshold int
}

// Selector is the public facade (§4.J/§6): it owns the catalog, the
// current policy, the current mode id, and the single-entry result cache,
// all behind one mutex so the core can be invoked from multiple threads
// exactly like the compositor that calls it every frame.
type Selector struct {
	mu sync.Mutex

	catalog  *Catalog
	flags    FeatureFlags
	observer Observer

	policy        Policy
	policyVersion uint64

	currentModeID ModeID
	cache         resultCache
}

// New builds a Selector over a fixed catalog with an initial policy and
// current mode. The policy is validated against the catalog; an invalid
// one leaves no Selector behind. observer may be nil.
func New(catalog *Catalog, initialPolicy Policy, currentModeID ModeID, flags FeatureFlags, observer Observer) (*Selector, error) {
	if !catalog.Contains(currentModeID) {
		return nil, fmt.Errorf("%w: current mode id %d not in catalog", ErrNotFound, currentModeID)
	}
	if err := initialPolicy.validate(catalog); err != nil {
		return nil, err
	}
	return &Selector{
		catalog:       catalog,
		flags:         flags,
		observer:      observer,
		policy:        initialPolicy,
		currentModeID: currentModeID,
	}, nil
}

// SetPolicy replaces the whole policy after validating it. On failure the
// previous policy is left untouched.
func (s *Selector) SetPolicy(p Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := p.validate(s.catalog); err != nil {
		if s.observer != nil {
			s.observer.ObserveSetPolicyRejected()
		}
		return err
	}
	s.policy = p
	s.policyVersion++
	s.cache.invalidate()
	return nil
}

// GetPolicy returns the currently active policy.
func (s *Selector) GetPolicy() Policy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy
}

// SetCurrentModeId records which mode the panel is actually running in
// right now. It participates in scoring (tie-break, group-switch
// arbitration, idle-timer advice) on every subsequent call.
func (s *Selector) SetCurrentModeId(id ModeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: mode id %d not in catalog", ErrNotFound, id)
	}
	s.currentModeID = id
	s.cache.invalidate()
	return nil
}

// GetCurrentRefreshRate returns the full DisplayMode the panel is
// currently running in.
func (s *Selector) GetCurrentRefreshRate() DisplayMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, _ := s.catalog.Mode(s.currentModeID)
	return m
}

// GetBestRefreshRate runs the full pipeline (§4's cache → kernel → overlay
// → cache-write chain) for one frame's layer vector and global signals,
// returning the chosen mode and which signals actually changed the
// outcome.
func (s *Selector) GetBestRefreshRate(layers []LayerRequirement, signals GlobalSignals) (DisplayMode, GlobalSignals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	if result, considered, ok := s.cache.lookup(layers, signals, s.currentModeID, s.policyVersion); ok {
		if s.observer != nil {
			s.observer.ObserveBest(start, true)
		}
		return result, considered
	}

	kernelResult := scoreKernel(layers, s.catalog, s.policy, s.currentModeID, s.flags.FrameRateMultipleThreshold)
	result, considered := applySignals(layers, s.catalog, s.policy, kernelResult, signals)

	s.cache.store(layers, signals, s.currentModeID, s.policyVersion, result, considered)
	if s.observer != nil {
		s.observer.ObserveBest(start, false)
	}
	return result, considered
}

// GetFrameRateOverrides computes the per-app divider overrides below the
// currently chosen panel rate (§4.H). Disabled configurations return
// ErrUnsupported.
func (s *Selector) GetFrameRateOverrides(layers []LayerRequirement, signals GlobalSignals) (FrameRateOverride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.flags.EnableFrameRateOverride {
		return nil, ErrUnsupported
	}

	kernelResult := scoreKernel(layers, s.catalog, s.policy, s.currentModeID, s.flags.FrameRateMultipleThreshold)
	panel, _ := applySignals(layers, s.catalog, s.policy, kernelResult, signals)

	return computeFrameRateOverrides(layers, panel.RefreshRate, signals.Touch), nil
}

// GetIdleTimerAction advises whether the host's idle timer is worth
// running under the current policy (§4.I).
func (s *Selector) GetIdleTimerAction() IdleTimerAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return idleTimerAdvice(s.catalog, s.policy)
}
