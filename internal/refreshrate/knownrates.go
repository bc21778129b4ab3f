package refreshrate

import "math"

// knownFrameRates is the fixed ladder used to quantize noisy Heuristic
// votes before scoring. Ordered ascending; Snap relies on that order.
var knownFrameRates = []Fps{
	FpsFromHz(24),
	FpsFromHz(30),
	FpsFromHz(45),
	FpsFromHz(60),
	FpsFromHz(72),
	FpsFromHz(90),
}

// Snap quantizes a measured rate to the closest entry on the known-rate
// ladder, breaking ties to the lower entry.
func Snap(fps Fps) Fps {
	best := knownFrameRates[0]
	bestDelta := math.Abs(fps.Hz() - best.Hz())
	for _, candidate := range knownFrameRates[1:] {
		delta := math.Abs(fps.Hz() - candidate.Hz())
		if delta < bestDelta {
			best, bestDelta = candidate, delta
		}
	}
	return best
}
