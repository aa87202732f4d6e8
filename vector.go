package chroma

import "math"

// Vector is an ordered sequence of channel values. Values are positional
// and only meaningful together with the identifier of the space they
// belong to.
type Vector []float64

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Undefined returns the sentinel marking a channel that carries no
// information, such as the hue of a gray. It is stored as an IEEE NaN;
// all propagation rules go through IsUndefined and the blend kernels in
// mix.go, never through raw NaN comparisons at call sites.
func Undefined() float64 {
	return math.NaN()
}

// IsUndefined reports whether a channel value is the undefined sentinel.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// clamp restricts a value to [mn, mx].
func clamp(v, mn, mx float64) float64 {
	return math.Max(mn, math.Min(v, mx))
}

// clamp01 restricts a value to [0, 1].
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
