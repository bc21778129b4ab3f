package refreshrate

// overrideSearchLimit bounds the integer-divider search in bestDivider;
// for panel rates in the low hundreds of Hz this covers every divider
// down to a few Hz, and the search stops early once panel/k drops below 1.
const overrideSearchLimit = 60

// computeFrameRateOverrides implements §4.H: for every layer with a vote
// in {ExplicitDefault, ExplicitExactOrMultiple} desiring less than panel,
// pick the integer divider k >= 2 whose panel/k lands closest to desired.
// Layers sharing an owner UID must agree, or neither gets an override.
// Under touch, ExplicitExactOrMultiple-sourced overrides are dropped;
// ExplicitDefault's survive (the user is already driving a specific rate,
// touch shouldn't second-guess it).
func computeFrameRateOverrides(layers []LayerRequirement, panel Fps, touch bool) FrameRateOverride {
	perOwner := make(map[uint32][]Fps)
	for _, l := range layers {
		if l.Vote != ExplicitDefault && l.Vote != ExplicitExactOrMultiple {
			continue
		}
		if touch && l.Vote == ExplicitExactOrMultiple {
			continue
		}
		if !l.DesiredRefreshRate.Less(panel) {
			continue
		}
		override, ok := bestDivider(panel, l.DesiredRefreshRate)
		if !ok {
			continue
		}
		perOwner[l.OwnerUID] = append(perOwner[l.OwnerUID], override)
	}

	out := make(FrameRateOverride, len(perOwner))
	for uid, overrides := range perOwner {
		agreed := overrides[0]
		conflict := false
		for _, o := range overrides[1:] {
			if !o.Equal(agreed) {
				conflict = true
				break
			}
		}
		if !conflict {
			out[uid] = agreed
		}
	}
	return out
}

// bestDivider finds the integer k >= 2 minimizing |panel/k - desired|,
// requiring panel/k to land within frameRateDividerTolerance of desired —
// cinema pairs (e.g. 60/2 standing in for 29.97) count as a match.
func bestDivider(panel, desired Fps) (Fps, bool) {
	best, bestDiff, found := Fps{}, 0.0, false
	for k := 2; k <= overrideSearchLimit; k++ {
		candidate := panel.Hz() / float64(k)
		if candidate < 1 {
			break
		}
		override := FpsFromHz(candidate)
		diff := override.Hz() - desired.Hz()
		if diff < 0 {
			diff = -diff
		}
		if diff > frameRateDividerTolerance && !IsFractionalPairOrMultiple(override, desired) {
			continue
		}
		if !found || diff < bestDiff {
			best, bestDiff, found = override, diff, true
		}
	}
	return best, found
}
