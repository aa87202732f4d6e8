// Command chromap demonstrates the chroma color engine: it converts a
// color across the built-in spaces, ramps it toward a second color, and
// adjusts it to meet a contrast target against its background.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chromacore/chroma"
)

func main() {
	var (
		from     = flag.String("from", "rebeccapurple", "start color (SVG name or color(...) notation)")
		to       = flag.String("to", "gold", "end color for the ramp")
		space    = flag.String("space", chroma.LCH, "working space for mixing")
		steps    = flag.Int("steps", 5, "ramp steps")
		contrast = flag.Float64("contrast", 4.5, "contrast target against white")
	)
	flag.Parse()

	start, err := parseColor(*from)
	if err != nil {
		log.Fatalf("bad -from color: %v", err)
	}
	end, err := parseColor(*to)
	if err != nil {
		log.Fatalf("bad -to color: %v", err)
	}

	printConversions(start)
	printRamp(start, end, *space, *steps)
	printContrast(start, *contrast)
}

// parseColor accepts an SVG color name or generic functional notation.
func parseColor(s string) (chroma.Color, error) {
	if c, err := chroma.ByName(s); err == nil {
		return c, nil
	}
	return chroma.Parse(s)
}

func printConversions(c chroma.Color) {
	fmt.Printf("conversions of %s:\n", c)
	for _, space := range []string{chroma.SRGB, chroma.HSL, chroma.HWB, chroma.Lab, chroma.LCH, chroma.DisplayP3} {
		out, err := c.Convert(space)
		if err != nil {
			log.Fatalf("convert to %s: %v", space, err)
		}
		fmt.Printf("  %s\n", out)
	}
	fmt.Println()
}

func printRamp(start, end chroma.Color, space string, steps int) {
	fmt.Printf("ramp from %s to %s in %s:\n", start, end, space)
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		mixed, err := start.Mix(end, space, f)
		if err != nil {
			log.Fatalf("mix: %v", err)
		}
		fitted, err := mixed.Fit(chroma.LCHChroma{})
		if err != nil {
			log.Fatalf("fit: %v", err)
		}
		fmt.Printf("  %.2f %s\n", f, fitted)
	}
	fmt.Println()
}

func printContrast(c chroma.Color, target float64) {
	white, err := chroma.ByName("white")
	if err != nil {
		log.Fatalf("lookup white: %v", err)
	}
	ratio, err := c.ContrastRatio(white)
	if err != nil {
		log.Fatalf("contrast ratio: %v", err)
	}
	fmt.Printf("contrast against white: %.2f (target %.2f)\n", ratio, target)

	adjusted, err := chroma.AdjustToContrast(c.Coords, c.Space, white.Coords, white.Space, target)
	if err != nil {
		log.Fatalf("adjust: %v", err)
	}
	result := chroma.Color{Space: c.Space, Coords: adjusted, Alpha: c.Alpha}
	newRatio, err := result.ContrastRatio(white)
	if err != nil {
		log.Fatalf("contrast ratio: %v", err)
	}
	fmt.Printf("adjusted: %s (contrast %.2f)\n", result, newRatio)
}
