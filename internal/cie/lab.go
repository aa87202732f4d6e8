package cie

import "math"

// CIE Lab compression constants.
const (
	Kappa   = 24389.0 / 27.0  // 29^3 / 3^3
	Epsilon = 216.0 / 24389.0 // 6^3 / 29^3
)

// D50White is the D50 reference white used by Lab.
var D50White = [3]float64{0.96422, 1.00000, 0.82521}

// XYZToLab converts D50-relative XYZ to CIE Lab.
func XYZToLab(v [3]float64) [3]float64 {
	var f [3]float64
	for i := range v {
		n := v[i] / D50White[i]
		if n > Epsilon {
			f[i] = math.Cbrt(n)
		} else {
			f[i] = (Kappa*n + 16) / 116
		}
	}
	return [3]float64{
		116*f[1] - 16,
		500 * (f[0] - f[1]),
		200 * (f[1] - f[2]),
	}
}

// LabToXYZ converts CIE Lab to D50-relative XYZ.
func LabToXYZ(lab [3]float64) [3]float64 {
	l, a, b := lab[0], lab[1], lab[2]
	f1 := (l + 16) / 116
	f0 := a/500 + f1
	f2 := f1 - b/200

	var xyz [3]float64
	if c := f0 * f0 * f0; c > Epsilon {
		xyz[0] = c
	} else {
		xyz[0] = (116*f0 - 16) / Kappa
	}
	if l > Kappa*Epsilon {
		xyz[1] = f1 * f1 * f1
	} else {
		xyz[1] = l / Kappa
	}
	if c := f2 * f2 * f2; c > Epsilon {
		xyz[2] = c
	} else {
		xyz[2] = (116*f2 - 16) / Kappa
	}

	for i := range xyz {
		xyz[i] *= D50White[i]
	}
	return xyz
}

// LabToLCH converts rectangular Lab to its polar LCH form.
// The hue angle is in degrees, not normalized.
func LabToLCH(lab [3]float64) [3]float64 {
	l, a, b := lab[0], lab[1], lab[2]
	return [3]float64{
		l,
		math.Hypot(a, b),
		math.Atan2(b, a) * 180 / math.Pi,
	}
}

// LCHToLab converts polar LCH back to rectangular Lab.
func LCHToLab(lch [3]float64) [3]float64 {
	l, c, h := lch[0], lch[1], lch[2]
	return [3]float64{
		l,
		c * math.Cos(h*math.Pi/180),
		c * math.Sin(h*math.Pi/180),
	}
}
