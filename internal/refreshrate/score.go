package refreshrate

import (
	"math"
	"sort"
)

// defaultFrameRateMultipleThreshold caps how many integer multiples above a
// layer's desired rate ExplicitExactOrMultiple will still accept. Above
// it, a multiple is no better than an unrelated rate.
const defaultFrameRateMultipleThreshold = 4

// desireCarrying reports whether v's DesiredRefreshRate means anything —
// Min/Max/NoVote score purely off the mode's position in the catalog.
func (v LayerVoteType) desireCarrying() bool {
	switch v {
	case Heuristic, ExplicitDefault, ExplicitExactOrMultiple, ExplicitExact:
		return true
	default:
		return false
	}
}

// isExplicit reports whether v is one of the three Explicit* vote kinds
// that can escape primary_range into app_range (§4.E rule 1). Heuristic
// carries a desired rate too but, per spec, never escapes on its own.
func (v LayerVoteType) isExplicit() bool {
	switch v {
	case ExplicitDefault, ExplicitExactOrMultiple, ExplicitExact:
		return true
	default:
		return false
	}
}

// reachableGroups decides which DisplayMode.Group values are eligible for
// this round of scoring (§4.E rule 2). The default posture is "stay in the
// current group." Two things can move that:
//
//   - a layer that both accepts a seamed switch (SeamedAndSeamless) and
//     either holds focus, or is the only seamed-capable layer with a
//     desired rate (OnlySeamless layers and Min/Max/NoVote votes are not
//     counted) — such a layer can pull the panel into whichever group best serves its
//     own desired rate, current group included.
//   - absent that, a focused layer that leaves the seamed-arbitration
//     decision to Default pulls the panel back to the default group,
//     provided it isn't currently there already.
//
// An unfocused SeamedAndSeamless layer alongside other seamed-capable
// layers has no special pull either way; a focused OnlySeamless layer
// never forces anything, because seamed modes are excluded from its own
// score regardless of which groups are reachable.
func reachableGroups(layers []LayerRequirement, catalog *Catalog, currentGroup, defaultGroup uint32, allowGroupSwitching bool, threshold int) map[uint32]bool {
	current := map[uint32]bool{currentGroup: true}
	if !allowGroupSwitching {
		return current
	}

	var seamedCapable []LayerRequirement
	for _, l := range layers {
		if l.Vote.desireCarrying() && l.Seamlessness != OnlySeamless {
			seamedCapable = append(seamedCapable, l)
		}
	}

	var forcing []LayerRequirement
	for _, l := range seamedCapable {
		if l.Focused && l.Seamlessness == SeamedAndSeamless {
			forcing = append(forcing, l)
		}
	}
	if len(forcing) == 0 && len(seamedCapable) == 1 && seamedCapable[0].Seamlessness == SeamedAndSeamless {
		forcing = seamedCapable
	}

	if len(forcing) > 0 {
		reachable := map[uint32]bool{currentGroup: true}
		for _, l := range forcing {
			reachable[bestGroupFor(l, catalog, threshold)] = true
		}
		return reachable
	}

	if currentGroup != defaultGroup {
		for _, l := range seamedCapable {
			if l.Focused && l.Seamlessness == Default {
				return map[uint32]bool{defaultGroup: true}
			}
		}
	}

	return current
}

// bestGroupFor scores one layer alone against every mode in the catalog
// and returns the group of its best-scoring mode, ties broken toward the
// lower group id.
func bestGroupFor(l LayerRequirement, catalog *Catalog, threshold int) uint32 {
	var bestGroup uint32
	bestScore := -1.0
	set := false
	for _, m := range catalog.Modes() {
		s := voteScore(l, m, catalog, threshold)
		if !set || s > bestScore || (s == bestScore && m.Group < bestGroup) {
			bestScore, bestGroup, set = s, m.Group, true
		}
	}
	return bestGroup
}

// voteScore is the per-layer, per-mode score (§4.E rule 5), in [0, 1] for
// every vote kind except Min/Max which are normalized against the
// catalog's own Hz span.
func voteScore(l LayerRequirement, m DisplayMode, catalog *Catalog, threshold int) float64 {
	switch l.Vote {
	case NoVote:
		return 0
	case Min:
		return rangeScore(m.RefreshRate, catalog, false)
	case Max:
		return rangeScore(m.RefreshRate, catalog, true)
	case Heuristic:
		return explicitDefaultScore(m.RefreshRate, Snap(l.DesiredRefreshRate))
	case ExplicitDefault:
		return explicitDefaultScore(m.RefreshRate, l.DesiredRefreshRate)
	case ExplicitExactOrMultiple:
		return explicitMultipleScore(m.RefreshRate, l.DesiredRefreshRate, threshold)
	case ExplicitExact:
		if m.RefreshRate.Equal(l.DesiredRefreshRate) || IsFractionalPairOrMultiple(m.RefreshRate, l.DesiredRefreshRate) {
			return 1
		}
		return explicitMultipleScore(m.RefreshRate, l.DesiredRefreshRate, threshold)
	default:
		return 0
	}
}

// rangeScore normalizes hz against the catalog's [min, max] span; wantMax
// selects whether 1.0 sits at the top or bottom of that span.
func rangeScore(hz Fps, catalog *Catalog, wantMax bool) float64 {
	lo, hi := catalog.MinSupported().Hz(), catalog.MaxSupported().Hz()
	if hi <= lo {
		return 1
	}
	frac := (hz.Hz() - lo) / (hi - lo)
	if !wantMax {
		frac = 1 - frac
	}
	return frac
}

// explicitDefaultScore biases toward the nearest mode at or above the
// desired rate, with one override: a mode that is a clean integer cadence
// multiple of the desired rate (no judder pulldown) scores a perfect 1
// regardless of how far its raw Hz sits from the request — showing a
// 45 Hz layer on a clean 90 Hz mode has zero judder, while the nearer-
// looking 60 Hz mode would drop every third frame unevenly. Absent a
// clean multiple, overshoot degrades linearly and undershoot degrades
// quadratically (a halved rate hurts far more than a doubled one —
// dropped frames read worse than a few wasted ones).
func explicitDefaultScore(hz, desired Fps) float64 {
	if desired.IsZero() {
		return 0
	}
	if hz.Hz() >= desired.Hz() && GetFrameRateDivider(hz, desired) >= 1 {
		return 1
	}
	return simpleRatioScore(hz, desired)
}

// simpleRatioScore is the plain, non-cadence-aware overshoot/undershoot
// ratio. It backs explicitDefaultScore's non-multiple case and
// explicitMultipleScore's beyond-threshold fallback, where a large
// divider is deliberately worth no more than an unrelated rate.
func simpleRatioScore(hz, desired Fps) float64 {
	if hz.Hz() >= desired.Hz() {
		return desired.Hz() / hz.Hz()
	}
	ratio := hz.Hz() / desired.Hz()
	return ratio * ratio
}

// explicitMultipleScore rewards hz being an exact integer multiple (or
// cinema-pair multiple) k of desired with 1/k, up to threshold; k beyond that
// fall back to the plain ratio rather than the cadence bonus, so a
// pulldown ratio the policy owner has explicitly capped doesn't still
// win by some other layer's cadence preference.
func explicitMultipleScore(hz, desired Fps, threshold int) float64 {
	if threshold <= 0 {
		threshold = defaultFrameRateMultipleThreshold
	}
	if divider := GetFrameRateDivider(hz, desired); divider >= 1 && divider <= threshold {
		return 1.0 / float64(divider)
	}
	if IsFractionalPairOrMultiple(hz, desired) {
		if k := int(math.Round(hz.Hz() / desired.Hz())); k >= 1 && k <= threshold {
			return 1.0 / float64(k)
		}
	}
	return simpleRatioScore(hz, desired)
}

// eligibleModes applies §4.E rules 1/3/4: app_range always gates, primary_range
// gates unless the layer's own focus and desired rate justify an escape,
// OnlySeamless layers exclude seamed (non-current-group) modes from their
// own scoring, and an unfocused layer that would otherwise escape
// primary_range is pinned back inside it instead.
func eligibleModes(l LayerRequirement, catalog *Catalog, policy Policy, reachable map[uint32]bool, currentGroup uint32) []DisplayMode {
	allowEscape := l.Focused && l.Vote.isExplicit() &&
		policy.AppRange.Contains(l.DesiredRefreshRate) && !policy.PrimaryRange.Contains(l.DesiredRefreshRate)

	var out []DisplayMode
	for _, m := range catalog.Modes() {
		if !reachable[m.Group] {
			continue
		}
		if !policy.AppRange.Contains(m.RefreshRate) {
			continue
		}
		inPrimary := policy.PrimaryRange.Contains(m.RefreshRate)
		if !inPrimary && !allowEscape {
			continue
		}
		if l.Seamlessness == OnlySeamless && m.Group != currentGroup {
			continue
		}
		out = append(out, m)
	}
	return out
}

// scoreKernel is the aggregate arbitration described in §4.E: for every
// mode reachable by at least one layer's eligibility, sum each layer's
// weighted score (a layer contributes 0 to a mode outside its own
// eligible set), then pick the highest-scoring mode. Ties favor the mode
// closest to the current Hz, then the higher Hz, then the lower mode id —
// in that order, matching the panel's own notion of "least disruptive."
func scoreKernel(layers []LayerRequirement, catalog *Catalog, policy Policy, currentModeID ModeID, threshold int) DisplayMode {
	current, ok := catalog.Mode(currentModeID)
	if !ok {
		current = catalog.Modes()[0]
	}

	defaultMode, ok := catalog.Mode(policy.DefaultModeID)
	if !ok {
		defaultMode = current
	}

	reachable := reachableGroups(layers, catalog, current.Group, defaultMode.Group, policy.AllowGroupSwitching, threshold)

	hasVote := false
	for _, l := range layers {
		if l.Vote != NoVote {
			hasVote = true
			break
		}
	}
	if !hasVote {
		return maxByPolicy(catalog, policy, reachable)
	}

	totals := make(map[ModeID]float64, len(catalog.Modes()))
	eligibleAny := make(map[ModeID]bool, len(catalog.Modes()))
	for _, l := range layers {
		for _, m := range eligibleModes(l, catalog, policy, reachable, current.Group) {
			w := float64(l.Weight)
			if w <= 0 {
				w = 1
			}
			totals[m.ID] += w * voteScore(l, m, catalog, threshold)
			eligibleAny[m.ID] = true
		}
	}

	if len(eligibleAny) == 0 {
		return maxByPolicy(catalog, policy, reachable)
	}

	candidates := make([]DisplayMode, 0, len(eligibleAny))
	for _, m := range catalog.Modes() {
		if eligibleAny[m.ID] {
			candidates = append(candidates, m)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		si, sj := totals[candidates[i].ID], totals[candidates[j].ID]
		if si != sj {
			return si > sj
		}
		di := distance(candidates[i].RefreshRate, current.RefreshRate)
		dj := distance(candidates[j].RefreshRate, current.RefreshRate)
		if di != dj {
			return di < dj
		}
		if !candidates[i].RefreshRate.Equal(candidates[j].RefreshRate) {
			return candidates[i].RefreshRate.Greater(candidates[j].RefreshRate)
		}
		return candidates[i].ID < candidates[j].ID
	})

	return candidates[0]
}

// maxByPolicy is the fallback when no layer casts a real vote: the
// highest-Hz mode inside primary_range and a reachable group, or the
// default mode if nothing qualifies.
func maxByPolicy(catalog *Catalog, policy Policy, reachable map[uint32]bool) DisplayMode {
	best, set := DisplayMode{}, false
	for _, m := range catalog.Modes() {
		if !reachable[m.Group] || !policy.PrimaryRange.Contains(m.RefreshRate) {
			continue
		}
		if !set || m.RefreshRate.Greater(best.RefreshRate) {
			best, set = m, true
		}
	}
	if set {
		return best
	}
	defaultMode, _ := catalog.Mode(policy.DefaultModeID)
	return defaultMode
}

func distance(a, b Fps) float64 {
	d := a.Hz() - b.Hz()
	if d < 0 {
		d = -d
	}
	return d
}
