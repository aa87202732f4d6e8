package chroma

import "math"

// achromaticEpsilon bounds how far the Lab chromatic axes may sit from
// zero before a color counts as chromatic.
const achromaticEpsilon = 0.0005

// IsAchromatic reports whether the color carries no hue information.
//
// The test converts into Lab — chosen because it is not clipped by any
// bounded RGB-like gamut — and checks that both chromatic axes are
// within a small epsilon of zero. Callers use this before blending
// hue-bearing colors: an achromatic color's hue must be marked undefined
// rather than treated as hue 0.
func (r *Registry) IsAchromatic(coords Vector, space string) (bool, error) {
	sp, err := r.Space(space)
	if err != nil {
		return false, err
	}
	if err := sp.checkLen(coords); err != nil {
		return false, err
	}

	// An undefined hue cannot survive the conversion below, and has no
	// bearing on whether the color is achromatic. Substitute zero.
	probe := coords
	if hi := sp.HueIndex(); hi >= 0 && IsUndefined(coords[hi]) {
		probe = coords.Clone()
		probe[hi] = 0
	}

	lab, err := r.Convert(probe, space, Lab)
	if err != nil {
		return false, err
	}
	return math.Abs(lab[1]) < achromaticEpsilon && math.Abs(lab[2]) < achromaticEpsilon, nil
}

// IsAchromatic reports whether the color carries no hue information,
// using the default registry.
func IsAchromatic(coords Vector, space string) (bool, error) {
	return DefaultRegistry().IsAchromatic(coords, space)
}
