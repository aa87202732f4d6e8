package chroma

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// pow25to7 is 25^7, the constant from the CIEDE2000 definition.
var pow25to7 = math.Pow(25, 7)

// DeltaE2000 computes the CIEDE2000 color difference between two colors,
// each given as coordinates in its own space. Both are converted to Lab
// first; the formula follows Sharma, Wu and Dalal's implementation notes
// on the CIE 2000 color-difference equation.
func (r *Registry) DeltaE2000(coords1 Vector, space1 string, coords2 Vector, space2 string) (float64, error) {
	lab1, err := r.Convert(coords1, space1, Lab)
	if err != nil {
		return 0, err
	}
	lab2, err := r.Convert(coords2, space2, Lab)
	if err != nil {
		return 0, err
	}

	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)

	cm := (c1 + c2) / 2
	c7 := math.Pow(cm, 7)
	g := 0.5 * (1 - math.Sqrt(c7/(c7+pow25to7)))

	ap1 := (1 + g) * a1
	ap2 := (1 + g) * a2

	cp1 := math.Hypot(ap1, b1)
	cp2 := math.Hypot(ap2, b2)

	var hp1, hp2 float64
	if !(ap1 == 0 && b1 == 0) {
		hp1 = math.Atan2(b1, ap1)
	}
	if !(ap2 == 0 && b2 == 0) {
		hp2 = math.Atan2(b2, ap2)
	}
	if hp1 < 0 {
		hp1 += 2 * math.Pi
	}
	if hp2 < 0 {
		hp2 += 2 * math.Pi
	}
	hp1 *= rad2deg
	hp2 *= rad2deg

	dl := l2 - l1
	dc := cp2 - cp1

	hdiff := hp2 - hp1
	habs := math.Abs(hdiff)
	var dh float64
	switch {
	case cp1 == 0 && cp2 == 0:
		dh = 0
	case habs <= 180:
		dh = hdiff
	case hdiff > 180:
		dh = hdiff - 360
	case hdiff < -180:
		dh = hdiff + 360
	}
	dh = 2 * math.Sqrt(cp1*cp2) * math.Sin(dh*deg2rad/2)

	cpm := (cp1 + cp2) / 2
	lpm := (l1 + l2) / 2

	hsum := hp1 + hp2
	var hpm float64
	switch {
	case cp1 == 0 && cp2 == 0:
		hpm = hsum
	case habs <= 180:
		hpm = hsum / 2
	case hsum < 360:
		hpm = (hsum + 360) / 2
	default:
		hpm = (hsum - 360) / 2
	}

	t := 1 -
		0.17*math.Cos((hpm-30)*deg2rad) +
		0.24*math.Cos(2*hpm*deg2rad) +
		0.32*math.Cos((3*hpm+6)*deg2rad) -
		0.20*math.Cos((4*hpm-63)*deg2rad)

	dt := 30 * math.Exp(-math.Pow((hpm-275)/25, 2))

	cpm7 := math.Pow(cpm, 7)
	rc := 2 * math.Sqrt(cpm7/(cpm7+pow25to7))
	lTemp := (lpm - 50) * (lpm - 50)
	sl := 1 + 0.015*lTemp/math.Sqrt(20+lTemp)
	sc := 1 + 0.045*cpm
	sh := 1 + 0.015*cpm*t
	rt := -math.Sin(2*dt*deg2rad) * rc

	dlTerm := dl / sl
	dcTerm := dc / sc
	dhTerm := dh / sh

	return math.Sqrt(dlTerm*dlTerm + dcTerm*dcTerm + dhTerm*dhTerm + rt*dcTerm*dhTerm), nil
}

// DeltaE2000 computes the CIEDE2000 difference using the default
// registry.
func DeltaE2000(coords1 Vector, space1 string, coords2 Vector, space2 string) (float64, error) {
	return DefaultRegistry().DeltaE2000(coords1, space1, coords2, space2)
}
