package chroma

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// FromStandard converts a standard-library color into an sRGB Color.
// The 16-bit premultiplied channels are unscaled by alpha so the result
// holds true channel values.
func FromStandard(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{Space: SRGB, Coords: Vector{0, 0, 0}, Alpha: 0}
	}
	af := float64(a)
	return Color{
		Space:  SRGB,
		Coords: Vector{float64(r) / af, float64(g) / af, float64(b) / af},
		Alpha:  af / 0xffff,
	}
}

// ToStandard converts a color into a 16-bit non-premultiplied
// standard-library color. The color is brought into the sRGB gamut by
// clipping first; an undefined alpha renders as opaque.
func ToStandard(c Color) (color.NRGBA64, error) {
	srgb, err := c.Convert(SRGB)
	if err != nil {
		return color.NRGBA64{}, err
	}
	coords, err := Clip{}.Fit(DefaultRegistry(), srgb.Coords, SRGB)
	if err != nil {
		return color.NRGBA64{}, err
	}

	alpha := srgb.Alpha
	if IsUndefined(alpha) {
		alpha = 1
	}
	return color.NRGBA64{
		R: channel16(coords[0]),
		G: channel16(coords[1]),
		B: channel16(coords[2]),
		A: channel16(clamp01(alpha)),
	}, nil
}

// ByName looks up an SVG 1.1 color name, e.g. "rebeccapurple", and
// returns it as an sRGB Color. Names are matched exactly.
func ByName(name string) (Color, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return FromStandard(c), nil
}

func channel16(v float64) uint16 {
	if IsUndefined(v) {
		return 0
	}
	return uint16(v*0xffff + 0.5)
}
