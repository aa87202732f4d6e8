package chroma

// Convert transforms a coordinate vector between two registered spaces.
//
// Conversion is routed through the shared XYZ-D50 reference space: the
// source descriptor lifts the coordinates into the reference and the
// destination descriptor brings them back down, so each space needs only
// its own pair of reference conversions. When from == to the input is
// returned unchanged (as a copy).
//
// After conversion every angular channel of the destination is wrapped
// into [0, 360); negative hues wrap forward rather than clamping.
func (r *Registry) Convert(coords Vector, from, to string) (Vector, error) {
	src, err := r.Space(from)
	if err != nil {
		return nil, err
	}
	if err := src.checkLen(coords); err != nil {
		return nil, err
	}

	if from == to {
		return coords.Clone(), nil
	}

	dst, err := r.Space(to)
	if err != nil {
		return nil, err
	}

	out := dst.FromXYZ(src.ToXYZ(coords.Clone()))
	if err := dst.checkLen(out); err != nil {
		return nil, err
	}
	dst.normalizeHues(out)
	return out, nil
}

// Convert transforms a coordinate vector between two built-in spaces
// using the default registry.
func Convert(coords Vector, from, to string) (Vector, error) {
	return DefaultRegistry().Convert(coords, from, to)
}
