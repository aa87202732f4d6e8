package chroma

// Color is a self-contained color value: a coordinate vector tagged with
// the identifier of its space, plus a separate alpha. Colors never hold
// references to other colors; the only shared state they depend on is
// the read-only space registry.
//
// Color methods operate on the default registry. Callers with a custom
// registry use the vector-level functions on Registry directly.
type Color struct {
	Space  string
	Coords Vector
	Alpha  float64
}

// New constructs a color in the given space. Alpha is clamped to [0, 1]
// unless it is the undefined sentinel.
func New(space string, coords Vector, alpha float64) (Color, error) {
	sp, err := DefaultRegistry().Space(space)
	if err != nil {
		return Color{}, err
	}
	if err := sp.checkLen(coords); err != nil {
		return Color{}, err
	}
	if !IsUndefined(alpha) {
		alpha = clamp01(alpha)
	}
	return Color{Space: space, Coords: coords.Clone(), Alpha: alpha}, nil
}

// Clone returns an independent copy of the color.
func (c Color) Clone() Color {
	return Color{Space: c.Space, Coords: c.Coords.Clone(), Alpha: c.Alpha}
}

// Convert returns the color expressed in another space.
func (c Color) Convert(space string) (Color, error) {
	coords, err := Convert(c.Coords, c.Space, space)
	if err != nil {
		return Color{}, err
	}
	return Color{Space: space, Coords: coords, Alpha: c.Alpha}, nil
}

// Mix blends the color with another in the given working space and
// returns the result in that space. The factor weights the other color;
// alpha blends with the same weighted formula as ordinary channels.
func (c Color) Mix(other Color, space string, factor float64) (Color, error) {
	a, err := c.Convert(space)
	if err != nil {
		return Color{}, err
	}
	b, err := other.Convert(space)
	if err != nil {
		return Color{}, err
	}
	coords, err := Mix(a.Coords, b.Coords, space, factor, 1)
	if err != nil {
		return Color{}, err
	}
	return Color{
		Space:  space,
		Coords: coords,
		Alpha:  blendChannel(a.Alpha, b.Alpha, clamp01(factor), 1),
	}, nil
}

// AlphaComposite overlays the color on the given background and returns
// the color the eye would see, in the working space. The channels blend
// with the foreground and background alphas as the two factors; the
// result alpha is a1 + a2*(1-a1). An opaque foreground is returned
// unchanged (converted to the working space).
func (c Color) AlphaComposite(background Color, space string) (Color, error) {
	fg, err := c.Convert(space)
	if err != nil {
		return Color{}, err
	}
	if !IsUndefined(fg.Alpha) && fg.Alpha >= 1 {
		return fg, nil
	}
	bg, err := background.Convert(space)
	if err != nil {
		return Color{}, err
	}

	// The foreground mixes into the background at its own alpha, so the
	// background supplies the first operand.
	coords, err := Mix(bg.Coords, fg.Coords, space, fg.Alpha, bg.Alpha)
	if err != nil {
		return Color{}, err
	}
	return Color{
		Space:  space,
		Coords: coords,
		Alpha:  fg.Alpha + bg.Alpha*(1-fg.Alpha),
	}, nil
}

// Grayscale returns the color with its chromatic content removed: the
// Lab chromatic axes are zeroed and the result converted back to the
// color's own space.
func (c Color) Grayscale() (Color, error) {
	lab, err := c.Convert(Lab)
	if err != nil {
		return Color{}, err
	}
	lab.Coords[1] = 0
	lab.Coords[2] = 0
	return lab.Convert(c.Space)
}

// IsAchromatic reports whether the color carries no hue information.
func (c Color) IsAchromatic() (bool, error) {
	return IsAchromatic(c.Coords, c.Space)
}

// Luminance returns the color's WCAG relative luminance.
func (c Color) Luminance() (float64, error) {
	return Luminance(c.Coords, c.Space)
}

// ContrastRatio returns the WCAG contrast ratio against another color.
func (c Color) ContrastRatio(other Color) (float64, error) {
	l1, err := c.Luminance()
	if err != nil {
		return 0, err
	}
	l2, err := other.Luminance()
	if err != nil {
		return 0, err
	}
	return ContrastRatio(l1, l2), nil
}

// Fit brings the color's coordinates into gamut with the given method.
func (c Color) Fit(method FitMethod) (Color, error) {
	coords, err := Fit(c.Coords, c.Space, method)
	if err != nil {
		return Color{}, err
	}
	return Color{Space: c.Space, Coords: coords, Alpha: c.Alpha}, nil
}

// InGamut reports whether the color is inside its space's gamut.
func (c Color) InGamut() (bool, error) {
	return InGamut(c.Coords, c.Space, DefaultFitTolerance)
}

// String renders the color in generic functional notation.
func (c Color) String() string {
	return Format(c, DefaultPrecision)
}
