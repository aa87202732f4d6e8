package chroma

import "math"

// DefaultFitTolerance is the slack allowed by InGamut before a bounded
// channel counts as out of range.
const DefaultFitTolerance = 0.000075

// FitMethod maps out-of-range coordinates back into a space's gamut.
// Implementations must be idempotent: fitting an in-gamut color returns
// it unchanged.
type FitMethod interface {
	Name() string
	Fit(r *Registry, coords Vector, space string) (Vector, error)
}

// Clip is the hard per-channel fit: bounded channels clamp to their
// limits, angular channels wrap into [0, 360], unbounded channels and
// undefined values pass through untouched.
type Clip struct{}

func (Clip) Name() string { return "clip" }

func (Clip) Fit(r *Registry, coords Vector, space string) (Vector, error) {
	sp, err := r.Space(space)
	if err != nil {
		return nil, err
	}
	if err := sp.checkLen(coords); err != nil {
		return nil, err
	}

	out := coords.Clone()
	for i, ch := range sp.Channels {
		v := out[i]
		if IsUndefined(v) {
			continue
		}
		switch ch.Kind {
		case Angular:
			if v < 0 || v > 360 {
				v = math.Mod(v, 360)
				if v < 0 {
					v += 360
				}
				out[i] = v
			}
		case Bounded:
			out[i] = clamp(v, ch.Min, ch.Max)
		}
	}
	return out, nil
}

// LCHChroma fits by holding lightness and hue steady and walking LCH
// chroma down with a binary search until clipping introduces no visible
// error. The approach follows the CSS gamut-mapping recommendation:
// clipping alone is accepted whenever it moves the color less than a
// just-noticeable distance.
type LCHChroma struct{}

func (LCHChroma) Name() string { return "lch-chroma" }

func (LCHChroma) Fit(r *Registry, coords Vector, space string) (Vector, error) {
	clipped, err := Clip{}.Fit(r, coords, space)
	if err != nil {
		return nil, err
	}
	baseError, err := r.DeltaE2000(coords, space, clipped, space)
	if err != nil {
		return nil, err
	}
	if baseError <= 2.3 {
		return clipped, nil
	}

	const threshold = 0.001

	mapped, err := r.Convert(coords, space, LCH)
	if err != nil {
		return nil, err
	}
	errNow, err := r.DeltaE2000(coords, space, mapped, LCH)
	if err != nil {
		return nil, err
	}

	low, high := 0.0, mapped[1]
	for high-low > threshold && errNow < baseError {
		back, err := r.Convert(mapped, LCH, space)
		if err != nil {
			return nil, err
		}
		clipped, err = Clip{}.Fit(r, back, space)
		if err != nil {
			return nil, err
		}
		delta, err := r.DeltaE2000(mapped, LCH, clipped, space)
		if err != nil {
			return nil, err
		}
		errNow, err = r.DeltaE2000(coords, space, mapped, LCH)
		if err != nil {
			return nil, err
		}

		if delta-2 < threshold {
			low = mapped[1]
		} else {
			if math.Abs(delta-2) < threshold {
				break
			}
			high = mapped[1]
		}
		mapped[1] = (high + low) / 2
	}

	// Clip trims the residual noise the search tolerance allows.
	back, err := r.Convert(mapped, LCH, space)
	if err != nil {
		return nil, err
	}
	return Clip{}.Fit(r, back, space)
}

// Fit brings coordinates into the space's gamut with the given method.
// Coordinates already in gamut are returned unchanged (as a copy).
func (r *Registry) Fit(coords Vector, space string, method FitMethod) (Vector, error) {
	sp, err := r.Space(space)
	if err != nil {
		return nil, err
	}
	if err := sp.checkLen(coords); err != nil {
		return nil, err
	}

	ok, err := r.InGamut(coords, space, 0)
	if err != nil {
		return nil, err
	}
	if ok {
		return coords.Clone(), nil
	}

	out, err := method.Fit(r, coords, space)
	if err != nil {
		return nil, err
	}
	Logger().Debug("gamut fit applied", "space", space, "method", method.Name())
	return out, nil
}

// InGamut reports whether every bounded channel sits within its limits,
// allowing the given tolerance on either side. Angular channels wrap and
// unbounded channels have no limits, so neither is checked; undefined
// values always pass.
func (r *Registry) InGamut(coords Vector, space string, tolerance float64) (bool, error) {
	sp, err := r.Space(space)
	if err != nil {
		return false, err
	}
	if err := sp.checkLen(coords); err != nil {
		return false, err
	}

	for i, ch := range sp.Channels {
		if ch.Kind != Bounded || IsUndefined(coords[i]) {
			continue
		}
		if coords[i] < ch.Min-tolerance || coords[i] > ch.Max+tolerance {
			return false, nil
		}
	}
	return true, nil
}

// Fit brings coordinates into gamut using the default registry.
func Fit(coords Vector, space string, method FitMethod) (Vector, error) {
	return DefaultRegistry().Fit(coords, space, method)
}

// InGamut checks coordinates against a built-in space's gamut using the
// default registry.
func InGamut(coords Vector, space string, tolerance float64) (bool, error) {
	return DefaultRegistry().InGamut(coords, space, tolerance)
}
