package chroma

import (
	"fmt"
	"sort"
)

// Easing remaps a local interpolation factor in [0, 1]. The result is
// clamped back to [0, 1] before blending, so easings may overshoot.
type Easing func(float64) float64

// Stop is one entry of an interpolation stop list. Coords holds the
// channel values in the working space followed by alpha as the final
// element. Position is the stop's normalized location in [0, 1]; leave
// it Undefined() to have it assigned automatically (endpoints default to
// 0 and 1, interior stops spread evenly between their placed neighbors).
type Stop struct {
	Coords   Vector
	Position float64
}

// InterpOptions configures a piecewise interpolation.
type InterpOptions struct {
	// Easing remaps the local factor for every channel without a
	// dedicated entry in ChannelEasing.
	Easing Easing
	// ChannelEasing remaps the local factor per channel, keyed by the
	// channel name in the working space; the alpha channel is "alpha".
	ChannelEasing map[string]Easing
	// Premultiplied blends channels scaled by their own alpha and
	// recovers true values from the blended alpha afterwards.
	Premultiplied bool
}

// Interpolate evaluates a piecewise multi-stop interpolation at the
// query position.
//
// All stops must already be in the working space; each stop vector
// carries the space's channels plus alpha as its last element, and the
// result has the same shape. The query is clamped to [0, 1], the
// bounding pair of stops is located, and the pairwise blend is applied
// at the locally renormalized factor. A stop interior to the list is
// re-examined per segment: its achromatic hue handling and
// premultiplication are computed independently for the left and right
// segments.
func (r *Registry) Interpolate(stops []Stop, space string, query float64, opts InterpOptions) (Vector, error) {
	sp, err := r.Space(space)
	if err != nil {
		return nil, err
	}
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	for _, s := range stops {
		if len(s.Coords) != len(sp.Channels)+1 {
			return nil, fmt.Errorf("%w: stop in space %q wants %d channels plus alpha, got %d values",
				ErrChannelCount, sp.ID, len(sp.Channels), len(s.Coords))
		}
	}

	positions := placeStops(stops)
	query = clamp01(query)

	if len(stops) == 1 || query <= positions[0] {
		return stops[0].Coords.Clone(), nil
	}
	last := len(stops) - 1
	if query >= positions[last] {
		return stops[last].Coords.Clone(), nil
	}

	// First segment whose right edge reaches the query.
	i := sort.Search(last, func(i int) bool { return positions[i+1] >= query })

	t := 1.0
	if width := positions[i+1] - positions[i]; width > 0 {
		t = (query - positions[i]) / width
	}

	return r.blendSegment(sp, stops[i].Coords, stops[i+1].Coords, t, opts)
}

// blendSegment blends one bounding pair of stops at local factor t.
func (r *Registry) blendSegment(sp *Space, left, right Vector, t float64, opts InterpOptions) (Vector, error) {
	c1, c2 := left.Clone(), right.Clone()
	channels := len(sp.Channels)
	hueIdx := sp.HueIndex()

	if hueIdx >= 0 {
		if err := r.markAchromaticHue(c1[:channels], sp, hueIdx); err != nil {
			return nil, err
		}
		if err := r.markAchromaticHue(c2[:channels], sp, hueIdx); err != nil {
			return nil, err
		}
	}

	a1, a2 := c1[channels], c2[channels]
	if opts.Premultiplied {
		// Mirror a defined alpha onto an undefined one so premultiplying
		// does not zero out the undefined side.
		if IsUndefined(a1) && !IsUndefined(a2) {
			a1 = a2
		} else if IsUndefined(a2) && !IsUndefined(a1) {
			a2 = a1
		}
		premultiply(c1[:channels], a1, hueIdx)
		premultiply(c2[:channels], a2, hueIdx)
	}

	out := make(Vector, channels+1)
	for i := 0; i < channels; i++ {
		f := easedFactor(t, sp.Channels[i].Name, opts)
		if i == hueIdx {
			out[i] = blendHueDeg(c1[i], c2[i], f, 1)
		} else {
			out[i] = blendChannel(c1[i], c2[i], f, 1)
		}
	}
	out[channels] = blendChannel(a1, a2, easedFactor(t, "alpha", opts), 1)

	if opts.Premultiplied {
		unpremultiply(out[:channels], out[channels], hueIdx)
	}
	return out, nil
}

// placeStops resolves stop positions: undefined endpoints default to 0
// and 1, undefined interior positions spread evenly between their placed
// neighbors, and the sequence is forced non-decreasing.
func placeStops(stops []Stop) []float64 {
	n := len(stops)
	pos := make([]float64, n)
	for i, s := range stops {
		pos[i] = s.Position
	}
	if IsUndefined(pos[0]) {
		pos[0] = 0
	}
	if IsUndefined(pos[n-1]) {
		pos[n-1] = 1
	}

	for i := 1; i < n-1; i++ {
		if !IsUndefined(pos[i]) {
			continue
		}
		// Span of consecutive undefined positions ending before j.
		j := i + 1
		for IsUndefined(pos[j]) {
			j++
		}
		step := (pos[j] - pos[i-1]) / float64(j-i+1)
		for k := i; k < j; k++ {
			pos[k] = pos[k-1] + step
		}
		i = j
	}

	running := pos[0]
	for i := 1; i < n; i++ {
		if pos[i] < running {
			pos[i] = running
		}
		running = pos[i]
	}
	return pos
}

func easedFactor(t float64, channel string, opts InterpOptions) float64 {
	e := opts.ChannelEasing[channel]
	if e == nil {
		e = opts.Easing
	}
	if e == nil {
		return t
	}
	return clamp01(e(t))
}

// premultiply scales every ordinary channel by its alpha in place. Hue
// and undefined channels are left alone, as is everything when alpha
// itself is undefined.
func premultiply(coords Vector, alpha float64, hueIdx int) {
	if IsUndefined(alpha) {
		return
	}
	for i := range coords {
		if i == hueIdx || IsUndefined(coords[i]) {
			continue
		}
		coords[i] *= alpha
	}
}

// unpremultiply recovers true channel values from the blended alpha.
func unpremultiply(coords Vector, alpha float64, hueIdx int) {
	if IsUndefined(alpha) || alpha == 0 {
		return
	}
	for i := range coords {
		if i == hueIdx || IsUndefined(coords[i]) {
			continue
		}
		coords[i] /= alpha
	}
}

// Interpolate evaluates a piecewise interpolation using the default
// registry.
func Interpolate(stops []Stop, space string, query float64, opts InterpOptions) (Vector, error) {
	return DefaultRegistry().Interpolate(stops, space, query, opts)
}
