package vecmath

import "math"

// Interval is an ordered pair (Min, Max). The two sentinels, Empty and
// Universe, are process-wide constant values, not mutable singletons.
type Interval struct {
	Min, Max float64
}

// Empty is the identity element under Merge: it contains nothing.
func Empty() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Universe contains every real number.
func Universe() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// NewInterval builds an interval from explicit bounds. Callers that need
// the min/max of two intervals should use Merge instead.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min.
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether x lies in the closed interval [Min, Max].
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds reports whether x lies in the open interval (Min, Max).
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

// Clamp pins x into [Min, Max].
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Pad grows the interval by delta on each side.
func (iv Interval) Pad(delta float64) Interval {
	return Interval{Min: iv.Min - delta, Max: iv.Max + delta}
}

// Merge returns the smallest interval containing both a and b. Merge(a,
// Empty()) == a, matching Empty's role as the merge identity.
func Merge(a, b Interval) Interval {
	return Interval{
		Min: math.Min(a.Min, b.Min),
		Max: math.Max(a.Max, b.Max),
	}
}
