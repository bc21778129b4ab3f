package refreshrate

// applySignals layers touch/idle on top of the kernel's already-chosen
// mode, in strict precedence touch > idle > kernel (§4.F). It returns the
// (possibly overridden) mode plus a GlobalSignals mask reporting which of
// the two actually changed the outcome — presence of a signal does not
// imply it had any effect.
func applySignals(layers []LayerRequirement, catalog *Catalog, policy Policy, kernelResult DisplayMode, signals GlobalSignals) (DisplayMode, GlobalSignals) {
	result := kernelResult
	var considered GlobalSignals

	if signals.Touch {
		if !touchSuppressedByFocusedLayer(layers, policy) {
			if boosted, ok := maxInRange(catalog, policy.PrimaryRange); ok {
				result = boosted
				considered.Touch = true
			}
		}
	}

	if signals.Idle && !considered.Touch {
		if !policy.PrimaryRange.IsSingleRate() {
			if demoted, ok := minInRange(catalog, policy.PrimaryRange); ok {
				result = demoted
				considered.Idle = true
			}
		}
	}

	return result, considered
}

// touchSuppressedByFocusedLayer reports whether a focused layer has
// already pinned a specific rate above the primary range — in which case
// touch boost must not override it, the user is already driving that rate.
// Only ExplicitDefault suppresses: ExplicitExactOrMultiple is a divider
// request, not a rate pin, so touch is still free to drag it back down.
func touchSuppressedByFocusedLayer(layers []LayerRequirement, policy Policy) bool {
	for _, l := range layers {
		if !l.Focused {
			continue
		}
		if l.Vote != ExplicitDefault {
			continue
		}
		if l.DesiredRefreshRate.Greater(policy.PrimaryRange.Hi) {
			return true
		}
	}
	return false
}

func maxInRange(catalog *Catalog, r FpsRange) (DisplayMode, bool) {
	best, set := DisplayMode{}, false
	for _, m := range catalog.Modes() {
		if !r.Contains(m.RefreshRate) {
			continue
		}
		if !set || m.RefreshRate.Greater(best.RefreshRate) {
			best, set = m, true
		}
	}
	return best, set
}

func minInRange(catalog *Catalog, r FpsRange) (DisplayMode, bool) {
	best, set := DisplayMode{}, false
	for _, m := range catalog.Modes() {
		if !r.Contains(m.RefreshRate) {
			continue
		}
		if !set || m.RefreshRate.Less(best.RefreshRate) {
			best, set = m, true
		}
	}
	return best, set
}
