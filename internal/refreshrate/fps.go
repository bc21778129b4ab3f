// Package refreshrate implements the refresh-rate arbitration core: the
// scoring kernel that picks a single best display mode per frame from a set
// of weighted, typed layer votes, plus the signal overlay, result cache,
// frame-rate-override planner, and idle-timer advisor that surround it.
//
// The package does no I/O. It holds no clock, no file handles, no sockets —
// every operation is a synchronous, caller-threaded computation over values
// passed in by the caller (see Selector for the single lock that serializes
// all of it).
package refreshrate

import (
	"fmt"
	"math"
	"time"
)

// equalityToleranceHz is the maximum |Δ| in Hz for two rates to be
// considered equal.
const equalityToleranceHz = 0.001

// ntscDown and ntscUp are the two directions of the 1000/1001 ratio that
// relates an integer cadence (24, 30, 60...) to its NTSC-adjusted sibling
// (23.976, 29.97, 59.94...).
const (
	ntscDown = 1000.0 / 1001.0
	ntscUp   = 1001.0 / 1000.0
)

// fractionalPairToleranceRatio bounds how close a hz ratio, after dividing
// out its nearest integer multiplier, must be to ntscDown or ntscUp to count
// as a cinema pair/multiple rather than coincidence.
const fractionalPairToleranceRatio = 0.0005

// Fps is a positive refresh rate. It carries both the Hz value and the
// corresponding period so callers that need one or the other never have to
// re-derive it (and risk rounding differently than the kernel does).
type Fps struct {
	hz     float64
	period time.Duration
}

// FpsFromHz builds an Fps from a Hz value.
func FpsFromHz(hz float64) Fps {
	return Fps{hz: hz, period: periodForHz(hz)}
}

// FpsFromPeriodNanos builds an Fps from a vsync period in nanoseconds.
func FpsFromPeriodNanos(periodNanos int64) Fps {
	if periodNanos <= 0 {
		return Fps{}
	}
	hz := float64(time.Second) / float64(periodNanos)
	return Fps{hz: hz, period: time.Duration(periodNanos)}
}

// FpsFromRational builds an Fps from a fractional value, e.g.
// FpsFromRational(24000, 1001) for the 23.976 Hz cinema cadence.
func FpsFromRational(numerator, denominator float64) Fps {
	if denominator == 0 {
		return Fps{}
	}
	return FpsFromHz(numerator / denominator)
}

func periodForHz(hz float64) time.Duration {
	if hz <= 0 {
		return 0
	}
	return time.Duration(math.Round(float64(time.Second) / hz))
}

// Hz returns the refresh rate in cycles per second.
func (f Fps) Hz() float64 { return f.hz }

// PeriodNanos returns the vsync period, rounded to the nearest nanosecond.
func (f Fps) PeriodNanos() int64 { return f.period.Nanoseconds() }

// IntHz rounds the rate to the nearest whole Hz.
func (f Fps) IntHz() int { return int(math.Round(f.hz)) }

// IsZero reports whether this is the zero value (no rate set).
func (f Fps) IsZero() bool { return f.hz == 0 }

// Equal reports whether two rates are the same within equalityToleranceHz.
func (f Fps) Equal(other Fps) bool {
	return math.Abs(f.hz-other.hz) <= equalityToleranceHz
}

// Less is a strict numeric comparison with no tolerance.
func (f Fps) Less(other Fps) bool { return f.hz < other.hz }

// Greater is a strict numeric comparison with no tolerance.
func (f Fps) Greater(other Fps) bool { return f.hz > other.hz }

// InRange reports whether lo <= f <= hi, treating the boundary as satisfied
// under the same tolerance Equal uses (so a rate 0.0005 Hz below lo is still
// considered in range).
func (f Fps) InRange(lo, hi Fps) bool {
	return (f.hz >= lo.hz-equalityToleranceHz) && (f.hz <= hi.hz+equalityToleranceHz)
}

func (f Fps) String() string {
	return fmt.Sprintf("%.3fHz", f.hz)
}

// IsFractionalPairOrMultiple reports whether a and b are related by the
// 1000/1001 cinema ratio, directly or across an integer multiplier — e.g.
// 24↔23.976, 30↔29.97, 60↔59.94, and cross-multiples like 30↔59.94. It is
// symmetric in its arguments and always false when a == b.
func IsFractionalPairOrMultiple(a, b Fps) bool {
	if a.hz <= 0 || b.hz <= 0 {
		return false
	}
	lo, hi := a.hz, b.hz
	if lo > hi {
		lo, hi = hi, lo
	}
	ratio := hi / lo
	multiplier := math.Round(ratio)
	if multiplier < 1 {
		multiplier = 1
	}
	normalized := ratio / multiplier
	return math.Abs(normalized-ntscDown) < fractionalPairToleranceRatio ||
		math.Abs(normalized-ntscUp) < fractionalPairToleranceRatio
}

// frameRateDividerTolerance is the absolute Hz slack allowed when checking
// that display/k lands on the requested frame rate.
const frameRateDividerTolerance = 0.05

// GetFrameRateDivider returns the integer k >= 1 such that
// frameRate ≈ displayFps/k, or 0 if no such k exists or the pair is a
// fractional cinema pair/multiple (those are never treated as dividers).
func GetFrameRateDivider(displayFps, frameRate Fps) int {
	if displayFps.hz <= 0 || frameRate.hz <= 0 {
		return 0
	}
	if IsFractionalPairOrMultiple(displayFps, frameRate) {
		return 0
	}
	divider := math.Round(displayFps.hz / frameRate.hz)
	if divider < 1 {
		return 0
	}
	if math.Abs(displayFps.hz/divider-frameRate.hz) > frameRateDividerTolerance {
		return 0
	}
	return int(divider)
}
