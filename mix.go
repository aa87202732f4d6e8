package chroma

import "math"

// blendChannel applies the weighted blend to one ordinary channel.
//
// factor weights the second value; factor2 weights what remains of the
// first. When simulating transparency, factor is the foreground alpha
// and factor2 the background alpha (usually 1.0, an opaque backdrop).
//
// The undefined sentinel propagates before any arithmetic: two undefined
// inputs stay undefined, a single undefined input yields the defined one.
func blendChannel(c1, c2, factor, factor2 float64) float64 {
	switch {
	case IsUndefined(c1) && IsUndefined(c2):
		return Undefined()
	case IsUndefined(c1):
		return c2
	case IsUndefined(c2):
		return c1
	}
	return math.Abs(c2*factor + c1*factor2*(1-factor))
}

// blendHueDeg blends two hue angles in degrees along the shorter arc.
// The interpolation path never exceeds 180°: when the angular distance
// is larger, the smaller hue is advanced by a full turn first.
func blendHueDeg(c1, c2, factor, factor2 float64) float64 {
	switch {
	case IsUndefined(c1) && IsUndefined(c2):
		return Undefined()
	case IsUndefined(c1):
		return c2
	case IsUndefined(c2):
		return c1
	}

	if math.Abs(math.Mod(c1, 360)-c2) > 180 {
		if c1 < c2 {
			c1 += 360
		} else {
			c2 += 360
		}
	}

	v := math.Abs(c2*factor + c1*factor2*(1-factor))
	if v < 0 || v > 360 {
		v = math.Mod(v, 360)
		if v < 0 {
			v += 360
		}
	}
	return v
}

// HueMix blends two hues expressed as fractions of a full turn, taking
// the shorter arc around the wheel. Undefined hues propagate: both
// undefined stays undefined, one undefined yields the other unchanged.
func HueMix(h1, h2, factor, factor2 float64) float64 {
	if IsUndefined(h1) || IsUndefined(h2) {
		return blendChannel(h1, h2, factor, factor2)
	}
	return blendHueDeg(h1*360, h2*360, clamp01(factor), clamp01(factor2)) / 360
}

// Mix blends two coordinate vectors in the given space.
//
// Ordinary channels use the weighted formula |c2*factor + c1*factor2*
// (1-factor)|; the space's hue channel, if any, blends along the shorter
// arc. Before blending, an achromatic input has its hue replaced with
// the undefined sentinel so that "no hue" is never treated as hue 0.
// Factors outside [0, 1] are clamped rather than rejected.
func (r *Registry) Mix(coords1, coords2 Vector, space string, factor, factor2 float64) (Vector, error) {
	sp, err := r.Space(space)
	if err != nil {
		return nil, err
	}
	if err := sp.checkLen(coords1); err != nil {
		return nil, err
	}
	if err := sp.checkLen(coords2); err != nil {
		return nil, err
	}

	factor = clamp01(factor)
	factor2 = clamp01(factor2)

	c1, c2 := coords1.Clone(), coords2.Clone()
	if hi := sp.HueIndex(); hi >= 0 {
		if err := r.markAchromaticHue(c1, sp, hi); err != nil {
			return nil, err
		}
		if err := r.markAchromaticHue(c2, sp, hi); err != nil {
			return nil, err
		}
	}

	out := make(Vector, len(c1))
	hueIdx := sp.HueIndex()
	for i := range c1 {
		if i == hueIdx {
			out[i] = blendHueDeg(c1[i], c2[i], factor, factor2)
		} else {
			out[i] = blendChannel(c1[i], c2[i], factor, factor2)
		}
	}
	return out, nil
}

// Mix blends two coordinate vectors using the default registry.
func Mix(coords1, coords2 Vector, space string, factor, factor2 float64) (Vector, error) {
	return DefaultRegistry().Mix(coords1, coords2, space, factor, factor2)
}

// markAchromaticHue replaces the hue of an achromatic vector with the
// undefined sentinel, in place.
func (r *Registry) markAchromaticHue(coords Vector, sp *Space, hueIdx int) error {
	if IsUndefined(coords[hueIdx]) {
		return nil
	}
	ok, err := r.IsAchromatic(coords, sp.ID)
	if err != nil {
		return err
	}
	if ok {
		coords[hueIdx] = Undefined()
	}
	return nil
}
