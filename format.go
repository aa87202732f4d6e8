package chroma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal places used when rendering
// channel values.
const DefaultPrecision = 5

// Format renders a color in generic functional notation,
// "color(space c1 c2 ... / alpha)". Undefined channels render as "none";
// a fully opaque alpha is omitted.
func Format(c Color, precision int) string {
	var b strings.Builder
	b.WriteString("color(")
	b.WriteString(c.Space)
	for _, v := range c.Coords {
		b.WriteByte(' ')
		b.WriteString(fmtChannel(v, precision))
	}
	if IsUndefined(c.Alpha) || c.Alpha < 1 {
		b.WriteString(" / ")
		b.WriteString(fmtChannel(c.Alpha, precision))
	}
	b.WriteByte(')')
	return b.String()
}

// Parse reads a color in generic functional notation. The space must be
// registered in the default registry; "none" reads as the undefined
// sentinel, and a missing "/ alpha" clause means fully opaque.
func Parse(s string) (Color, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "color(") || !strings.HasSuffix(body, ")") {
		return Color{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	body = body[len("color(") : len(body)-1]

	main := body
	alphaPart := ""
	if idx := strings.IndexByte(body, '/'); idx >= 0 {
		main = body[:idx]
		alphaPart = strings.TrimSpace(body[idx+1:])
	}

	fields := strings.Fields(main)
	if len(fields) < 2 {
		return Color{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	space := fields[0]
	coords := make(Vector, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := parseChannel(f)
		if err != nil {
			return Color{}, fmt.Errorf("%w: bad channel %q in %q", ErrMalformed, f, s)
		}
		coords = append(coords, v)
	}

	alpha := 1.0
	if alphaPart != "" {
		v, err := parseChannel(alphaPart)
		if err != nil {
			return Color{}, fmt.Errorf("%w: bad alpha %q in %q", ErrMalformed, alphaPart, s)
		}
		alpha = v
	}

	return New(space, coords, alpha)
}

func fmtChannel(v float64, precision int) string {
	if IsUndefined(v) {
		return "none"
	}
	return strconv.FormatFloat(roundTo(v, precision), 'f', -1, 64)
}

func parseChannel(s string) (float64, error) {
	if s == "none" {
		return Undefined(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func roundTo(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
