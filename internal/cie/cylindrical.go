package cie

import "math"

// Cylindrical sRGB forms. Hue is in degrees; saturation, lightness,
// value, whiteness and blackness are percentages in [0, 100].

// SRGBToHSV converts gamma-encoded sRGB to HSV.
func SRGBToHSV(rgb [3]float64) [3]float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	delta := mx - mn

	var s float64
	if mx != 0 {
		s = delta / mx
	}
	return [3]float64{srgbHue(r, g, b, mx, delta), s * 100, mx * 100}
}

// HSVToSRGB converts HSV to gamma-encoded sRGB.
func HSVToSRGB(hsv [3]float64) [3]float64 {
	h, s, v := wrapDegrees(hsv[0]), hsv[1]/100, hsv[2]/100

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	r, g, b := sector(h, c, x)
	return [3]float64{r + m, g + m, b + m}
}

// SRGBToHSL converts gamma-encoded sRGB to HSL.
func SRGBToHSL(rgb [3]float64) [3]float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	delta := mx - mn
	l := (mx + mn) / 2

	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}
	return [3]float64{srgbHue(r, g, b, mx, delta), s * 100, l * 100}
}

// HSLToSRGB converts HSL to gamma-encoded sRGB.
func HSLToSRGB(hsl [3]float64) [3]float64 {
	h, s, l := wrapDegrees(hsl[0]), hsl[1]/100, hsl[2]/100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	r, g, b := sector(h, c, x)
	return [3]float64{r + m, g + m, b + m}
}

// SRGBToHWB converts gamma-encoded sRGB to HWB.
func SRGBToHWB(rgb [3]float64) [3]float64 {
	hsv := SRGBToHSV(rgb)
	w := (1 - hsv[1]/100) * hsv[2]
	return [3]float64{hsv[0], w, 100 - hsv[2]}
}

// HWBToSRGB converts HWB to gamma-encoded sRGB. When whiteness plus
// blackness reaches 100% the result is the gray they divide between them.
func HWBToSRGB(hwb [3]float64) [3]float64 {
	h, w, b := hwb[0], hwb[1]/100, hwb[2]/100
	if w+b >= 1 {
		gray := w / (w + b)
		return [3]float64{gray, gray, gray}
	}
	rgb := HSLToSRGB([3]float64{h, 100, 50})
	for i, v := range rgb {
		rgb[i] = v*(1-w-b) + w
	}
	return rgb
}

// srgbHue computes the hue angle in degrees shared by the HSV and HSL
// forms. An achromatic input yields hue 0.
func srgbHue(r, g, b, mx, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch mx {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

// sector maps a hue angle to its RGB sector contribution.
func sector(h, c, x float64) (r, g, b float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// wrapDegrees normalizes an angle into [0, 360).
func wrapDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
