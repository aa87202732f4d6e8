// Package cie implements the colorimetric primitives shared by every
// built-in color space: transfer functions, RGB/XYZ matrix transforms,
// chromatic adaptation, and the CIE Lab and polar LCH forms.
//
// All functions are pure and operate on [3]float64 channel triples.
// Transfer functions are sign-preserving so that out-of-gamut values
// survive a round trip instead of collapsing at zero.
package cie

import "math"

// SRGBToLinear converts a gamma-encoded sRGB component to linear light.
// Also used by display-p3, which shares the sRGB curve.
func SRGBToLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.04045 {
		return v / 12.92
	}
	return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), v)
}

// LinearToSRGB converts a linear-light component to gamma-encoded sRGB.
func LinearToSRGB(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.0031308 {
		return v * 12.92
	}
	return math.Copysign(1.055*math.Pow(abs, 1.0/2.4)-0.055, v)
}

// A98ToLinear converts an a98-rgb component to linear light.
// a98-rgb uses a pure 563/256 power curve.
func A98ToLinear(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 563.0/256.0), v)
}

// LinearToA98 converts a linear-light component to a98-rgb.
func LinearToA98(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 256.0/563.0), v)
}

// ProPhoto transfer curve constants, per the ROMM RGB specification.
const (
	prophotoEt  = 1.0 / 512.0
	prophotoEt2 = 16.0 / 512.0
)

// ProPhotoToLinear converts a prophoto-rgb component to linear light.
func ProPhotoToLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs <= prophotoEt2 {
		return v / 16
	}
	return math.Copysign(math.Pow(abs, 1.8), v)
}

// LinearToProPhoto converts a linear-light component to prophoto-rgb.
func LinearToProPhoto(v float64) float64 {
	abs := math.Abs(v)
	if abs < prophotoEt {
		return v * 16
	}
	return math.Copysign(math.Pow(abs, 1.0/1.8), v)
}

// Rec. 2020 transfer curve constants.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

// Rec2020ToLinear converts a rec2020 component to linear light.
func Rec2020ToLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs < rec2020Beta*4.5 {
		return v / 4.5
	}
	return math.Copysign(math.Pow((abs+rec2020Alpha-1)/rec2020Alpha, 1/0.45), v)
}

// LinearToRec2020 converts a linear-light component to rec2020.
func LinearToRec2020(v float64) float64 {
	abs := math.Abs(v)
	if abs > rec2020Beta {
		return math.Copysign(rec2020Alpha*math.Pow(abs, 0.45)-(rec2020Alpha-1), v)
	}
	return v * 4.5
}

// Apply3 applies a component transfer function to all three channels.
func Apply3(f func(float64) float64, v [3]float64) [3]float64 {
	return [3]float64{f(v[0]), f(v[1]), f(v[2])}
}
