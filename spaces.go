package chroma

import "github.com/chromacore/chroma/internal/cie"

// Built-in space identifiers.
const (
	SRGB       = "srgb"
	SRGBLinear = "srgb-linear"
	HSL        = "hsl"
	HSV        = "hsv"
	HWB        = "hwb"
	Lab        = "lab"
	LCH        = "lch"
	XYZ        = "xyz"
	DisplayP3  = "display-p3"
	A98RGB     = "a98-rgb"
	ProPhoto   = "prophoto-rgb"
	Rec2020    = "rec2020"
)

func triple(v Vector) [3]float64 {
	return [3]float64{v[0], v[1], v[2]}
}

func vector(v [3]float64) Vector {
	return Vector{v[0], v[1], v[2]}
}

// rgbChannels is the channel set shared by the whole RGB family.
func rgbChannels() []Channel {
	return []Channel{
		BoundedChannel("red", 0, 1),
		BoundedChannel("green", 0, 1),
		BoundedChannel("blue", 0, 1),
	}
}

// rgbSpace builds an RGB-family descriptor from its transfer function
// pair and its linear-light matrix transforms. The matrices for every
// family member except prophoto-rgb are relative to D65, so the result
// is adapted to and from the D50 reference.
func rgbSpace(id string, toLinear, fromLinear func(float64) float64,
	linToXYZ, xyzToLin func([3]float64) [3]float64, nativeD50 bool) *Space {
	return &Space{
		ID:       id,
		Channels: rgbChannels(),
		ToXYZ: func(v Vector) Vector {
			xyz := linToXYZ(cie.Apply3(toLinear, triple(v)))
			if !nativeD50 {
				xyz = cie.D65ToD50(xyz)
			}
			return vector(xyz)
		},
		FromXYZ: func(v Vector) Vector {
			xyz := triple(v)
			if !nativeD50 {
				xyz = cie.D50ToD65(xyz)
			}
			return vector(cie.Apply3(fromLinear, xyzToLin(xyz)))
		},
	}
}

// srgbDerived builds a descriptor for a cylindrical sRGB form from its
// conversion pair to and from gamma-encoded sRGB.
func srgbDerived(id string, channels []Channel,
	toSRGB, fromSRGB func([3]float64) [3]float64) *Space {
	return &Space{
		ID:       id,
		Channels: channels,
		ToXYZ: func(v Vector) Vector {
			lin := cie.Apply3(cie.SRGBToLinear, toSRGB(triple(v)))
			return vector(cie.D65ToD50(cie.LinSRGBToXYZ(lin)))
		},
		FromXYZ: func(v Vector) Vector {
			lin := cie.XYZToLinSRGB(cie.D50ToD65(triple(v)))
			return vector(fromSRGB(cie.Apply3(cie.LinearToSRGB, lin)))
		},
	}
}

func builtinSpaces() []*Space {
	identity := func(v Vector) Vector { return v.Clone() }

	return []*Space{
		rgbSpace(SRGB, cie.SRGBToLinear, cie.LinearToSRGB,
			cie.LinSRGBToXYZ, cie.XYZToLinSRGB, false),
		rgbSpace(DisplayP3, cie.SRGBToLinear, cie.LinearToSRGB,
			cie.LinP3ToXYZ, cie.XYZToLinP3, false),
		rgbSpace(A98RGB, cie.A98ToLinear, cie.LinearToA98,
			cie.LinA98ToXYZ, cie.XYZToLinA98, false),
		rgbSpace(ProPhoto, cie.ProPhotoToLinear, cie.LinearToProPhoto,
			cie.LinProPhotoToXYZ, cie.XYZToLinProPhoto, true),
		rgbSpace(Rec2020, cie.Rec2020ToLinear, cie.LinearToRec2020,
			cie.LinRec2020ToXYZ, cie.XYZToLinRec2020, false),

		{
			ID:       SRGBLinear,
			Channels: rgbChannels(),
			ToXYZ: func(v Vector) Vector {
				return vector(cie.D65ToD50(cie.LinSRGBToXYZ(triple(v))))
			},
			FromXYZ: func(v Vector) Vector {
				return vector(cie.XYZToLinSRGB(cie.D50ToD65(triple(v))))
			},
		},

		srgbDerived(HSL, []Channel{
			AngularChannel("hue"),
			BoundedChannel("saturation", 0, 100),
			BoundedChannel("lightness", 0, 100),
		}, cie.HSLToSRGB, cie.SRGBToHSL),

		srgbDerived(HSV, []Channel{
			AngularChannel("hue"),
			BoundedChannel("saturation", 0, 100),
			BoundedChannel("value", 0, 100),
		}, cie.HSVToSRGB, cie.SRGBToHSV),

		srgbDerived(HWB, []Channel{
			AngularChannel("hue"),
			BoundedChannel("whiteness", 0, 100),
			BoundedChannel("blackness", 0, 100),
		}, cie.HWBToSRGB, cie.SRGBToHWB),

		{
			ID: Lab,
			Channels: []Channel{
				LowerBoundedChannel("lightness", 0),
				UnboundedChannel("a"),
				UnboundedChannel("b"),
			},
			ToXYZ: func(v Vector) Vector {
				return vector(cie.LabToXYZ(triple(v)))
			},
			FromXYZ: func(v Vector) Vector {
				return vector(cie.XYZToLab(triple(v)))
			},
		},

		{
			ID: LCH,
			Channels: []Channel{
				LowerBoundedChannel("lightness", 0),
				LowerBoundedChannel("chroma", 0),
				AngularChannel("hue"),
			},
			ToXYZ: func(v Vector) Vector {
				return vector(cie.LabToXYZ(cie.LCHToLab(triple(v))))
			},
			FromXYZ: func(v Vector) Vector {
				return vector(cie.LabToLCH(cie.XYZToLab(triple(v))))
			},
		},

		{
			ID: XYZ,
			Channels: []Channel{
				UnboundedChannel("x"),
				UnboundedChannel("y"),
				UnboundedChannel("z"),
			},
			ToXYZ:   identity,
			FromXYZ: identity,
		},
	}
}
