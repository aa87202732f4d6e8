package chroma

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// luminanceWeights are the WCAG relative-luminance coefficients for
// linear-light sRGB.
var luminanceWeights = []float64{0.2126, 0.7152, 0.0722}

// Luminance returns the WCAG relative luminance of the coordinates: the
// color is converted to linear-light sRGB and reduced with the fixed
// red/green/blue weights.
func (r *Registry) Luminance(coords Vector, space string) (float64, error) {
	lin, err := r.Convert(coords, space, SRGBLinear)
	if err != nil {
		return 0, err
	}
	return floats.Dot(lin, luminanceWeights), nil
}

// ContrastRatio returns the WCAG contrast ratio of two luminances. The
// larger luminance always goes on top, so the result is symmetric in its
// arguments and never below 1.
func ContrastRatio(lum1, lum2 float64) float64 {
	if lum1 < lum2 {
		lum1, lum2 = lum2, lum1
	}
	return (lum1 + 0.05) / (lum2 + 0.05)
}

// IsDark reports whether the color's relative luminance is below 0.5.
func (r *Registry) IsDark(coords Vector, space string) (bool, error) {
	lum, err := r.Luminance(coords, space)
	if err != nil {
		return false, err
	}
	return lum < 0.5, nil
}

// IsLight reports whether the color's relative luminance is at least 0.5.
func (r *Registry) IsLight(coords Vector, space string) (bool, error) {
	dark, err := r.IsDark(coords, space)
	return !dark, err
}

// AdjustToContrast nudges the color toward white or black until its
// contrast ratio against the fixed partner meets the target, returning
// the adjusted coordinates in the color's own space.
//
// A target below 1 or a ratio that already meets the target returns the
// input unchanged. Otherwise the required luminance is computed
// algebraically from the target and the partner's luminance, and a
// bisection over the mix fraction in sRGB (0.001 tolerance on the
// interval) tracks the best fraction seen whose luminance still
// satisfies the target. The search is bounded and deterministic.
func (r *Registry) AdjustToContrast(coords Vector, space string, other Vector, otherSpace string, target float64) (Vector, error) {
	lum1, err := r.Luminance(coords, space)
	if err != nil {
		return nil, err
	}
	lum2, err := r.Luminance(other, otherSpace)
	if err != nil {
		return nil, err
	}

	if target < 1 || ContrastRatio(lum1, lum2) >= target {
		return coords.Clone(), nil
	}

	requiredLum := (lum2+0.05)/target - 0.05
	if requiredLum < 0 {
		requiredLum = target*(lum2+0.05) - 0.05
	}

	// Blend toward white when the partner is the darker of the two,
	// toward black otherwise.
	mixTarget := Vector{0, 0, 0}
	if lum2 < lum1 {
		mixTarget = Vector{1, 1, 1}
	}

	base, err := r.Convert(coords, space, SRGB)
	if err != nil {
		return nil, err
	}

	minMix, maxMix := 0.0, 1.0
	bestLum := math.Inf(1)
	bestMix := 0.0

	for math.Abs(minMix-maxMix) > 0.001 {
		midMix := (maxMix + minMix) / 2

		candidate, err := r.Mix(base, mixTarget, SRGB, midMix, 1)
		if err != nil {
			return nil, err
		}
		lum, err := r.Luminance(candidate, SRGB)
		if err != nil {
			return nil, err
		}

		if lum > requiredLum {
			minMix = midMix
		} else {
			maxMix = midMix
		}
		if lum >= requiredLum && lum < bestLum {
			bestLum = lum
			bestMix = midMix
		}
	}

	adjusted, err := r.Mix(base, mixTarget, SRGB, bestMix, 1)
	if err != nil {
		return nil, err
	}
	return r.Convert(adjusted, SRGB, space)
}

// Luminance returns the WCAG relative luminance using the default
// registry.
func Luminance(coords Vector, space string) (float64, error) {
	return DefaultRegistry().Luminance(coords, space)
}

// AdjustToContrast adjusts the color against a fixed partner using the
// default registry.
func AdjustToContrast(coords Vector, space string, other Vector, otherSpace string, target float64) (Vector, error) {
	return DefaultRegistry().AdjustToContrast(coords, space, other, otherSpace, target)
}
