package cie

import "gonum.org/v1/gonum/mat"

// RGB/XYZ conversion matrices. Values follow the CSS Color 4 published
// conversions; the sRGB pair matches Lindbloom's D65 matrices. The RGB
// family matrices are relative to D65 except prophoto-rgb, which is
// natively D50.
var (
	linSRGBToXYZ = mat.NewDense(3, 3, []float64{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	})
	xyzToLinSRGB = mat.NewDense(3, 3, []float64{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	})

	linP3ToXYZ = mat.NewDense(3, 3, []float64{
		0.48657095, 0.26566769, 0.19821729,
		0.22897456, 0.69173852, 0.07928691,
		0.00000000, 0.04511338, 1.04394437,
	})
	xyzToLinP3 = mat.NewDense(3, 3, []float64{
		2.49349691, -0.93138362, -0.40271078,
		-0.82948897, 1.76266406, 0.02362469,
		0.03584583, -0.07617239, 0.95688452,
	})

	linA98ToXYZ = mat.NewDense(3, 3, []float64{
		0.57666904, 0.18555824, 0.18822865,
		0.29734498, 0.62736357, 0.07529146,
		0.02703136, 0.07068885, 0.99133754,
	})
	xyzToLinA98 = mat.NewDense(3, 3, []float64{
		2.04158790, -0.56500697, -0.34473135,
		-0.96924364, 1.87596750, 0.04155506,
		0.01344428, -0.11836239, 1.01517499,
	})

	linProPhotoToXYZ = mat.NewDense(3, 3, []float64{
		0.79776049, 0.13518584, 0.03134935,
		0.28807113, 0.71184322, 0.00008566,
		0.00000000, 0.00000000, 0.82510460,
	})
	xyzToLinProPhoto = mat.NewDense(3, 3, []float64{
		1.34578897, -0.25557991, -0.05110628,
		-0.54462249, 1.50823274, 0.02053603,
		0.00000000, 0.00000000, 1.21196755,
	})

	linRec2020ToXYZ = mat.NewDense(3, 3, []float64{
		0.63695805, 0.14461690, 0.16888098,
		0.26270021, 0.67799807, 0.05930172,
		0.00000000, 0.02807269, 1.06098506,
	})
	xyzToLinRec2020 = mat.NewDense(3, 3, []float64{
		1.71665119, -0.35567078, -0.25336628,
		-0.66668435, 1.61648124, 0.01576855,
		0.01763986, -0.04277061, 0.94210312,
	})

	// Bradford chromatic adaptation between the D65 and D50 white points.
	bradfordD65ToD50 = mat.NewDense(3, 3, []float64{
		1.0478112, 0.0228866, -0.0501270,
		0.0295424, 0.9904844, -0.0170491,
		-0.0092345, 0.0150436, 0.7521316,
	})
	bradfordD50ToD65 = mat.NewDense(3, 3, []float64{
		0.9555766, -0.0230393, 0.0631636,
		-0.0282895, 1.0099416, 0.0210077,
		0.0122982, -0.0204830, 1.3299098,
	})
)

func mulVec(m *mat.Dense, v [3]float64) [3]float64 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v[0], v[1], v[2]}))
	return [3]float64{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// LinSRGBToXYZ converts linear-light sRGB to XYZ relative to D65.
func LinSRGBToXYZ(v [3]float64) [3]float64 { return mulVec(linSRGBToXYZ, v) }

// XYZToLinSRGB converts D65-relative XYZ to linear-light sRGB.
func XYZToLinSRGB(v [3]float64) [3]float64 { return mulVec(xyzToLinSRGB, v) }

// LinP3ToXYZ converts linear-light display-p3 to XYZ relative to D65.
func LinP3ToXYZ(v [3]float64) [3]float64 { return mulVec(linP3ToXYZ, v) }

// XYZToLinP3 converts D65-relative XYZ to linear-light display-p3.
func XYZToLinP3(v [3]float64) [3]float64 { return mulVec(xyzToLinP3, v) }

// LinA98ToXYZ converts linear-light a98-rgb to XYZ relative to D65.
func LinA98ToXYZ(v [3]float64) [3]float64 { return mulVec(linA98ToXYZ, v) }

// XYZToLinA98 converts D65-relative XYZ to linear-light a98-rgb.
func XYZToLinA98(v [3]float64) [3]float64 { return mulVec(xyzToLinA98, v) }

// LinProPhotoToXYZ converts linear-light prophoto-rgb to XYZ relative to D50.
func LinProPhotoToXYZ(v [3]float64) [3]float64 { return mulVec(linProPhotoToXYZ, v) }

// XYZToLinProPhoto converts D50-relative XYZ to linear-light prophoto-rgb.
func XYZToLinProPhoto(v [3]float64) [3]float64 { return mulVec(xyzToLinProPhoto, v) }

// LinRec2020ToXYZ converts linear-light rec2020 to XYZ relative to D65.
func LinRec2020ToXYZ(v [3]float64) [3]float64 { return mulVec(linRec2020ToXYZ, v) }

// XYZToLinRec2020 converts D65-relative XYZ to linear-light rec2020.
func XYZToLinRec2020(v [3]float64) [3]float64 { return mulVec(xyzToLinRec2020, v) }

// D65ToD50 adapts XYZ from the D65 white point to D50.
func D65ToD50(v [3]float64) [3]float64 { return mulVec(bradfordD65ToD50, v) }

// D50ToD65 adapts XYZ from the D50 white point to D65.
func D50ToD65(v [3]float64) [3]float64 { return mulVec(bradfordD50ToD65, v) }
