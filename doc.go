// Package chroma is a color space conversion and color math engine.
//
// # Overview
//
// chroma models colors as coordinate vectors tagged with a named color
// space. It converts between spaces through a shared reference space,
// blends and interpolates colors with correct circular-hue and
// undefined-channel handling, maps out-of-range coordinates back into a
// space's gamut, and computes the perceptual quantities (relative
// luminance, contrast ratio) used for accessibility adjustments.
//
// # Quick Start
//
//	import "github.com/chromacore/chroma"
//
//	// Parse, convert, and render a color.
//	c, _ := chroma.Parse("color(srgb 1 0 0)")
//	lab, _ := c.Convert(chroma.Lab)
//	fmt.Println(lab)
//
//	// Mix two colors halfway in LCH.
//	white, _ := chroma.ByName("white")
//	mixed, _ := c.Mix(white, chroma.LCH, 0.5)
//
// # Color Spaces
//
// Twelve spaces ship built in: srgb, srgb-linear, hsl, hsv, hwb, lab,
// lch, xyz, display-p3, a98-rgb, prophoto-rgb, and rec2020. All
// conversions route through XYZ relative to the D50 white point, so a
// new space only needs its pair of reference conversions. Custom spaces
// register on a Registry; the package-level functions use a shared
// default registry preloaded with the built-ins.
//
// # Undefined Channels
//
// A channel that carries no information, like the hue of a gray, holds
// the undefined sentinel (see Undefined and IsUndefined). The sentinel
// propagates through mixing and interpolation instead of being treated
// as zero.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Vector, Registry, Space, interpolation and
//     gamut-fitting entry points
//   - Internal: cie (transfer functions, matrix transforms, Lab and
//     cylindrical model math)
//
// # Concurrency
//
// The default registry is built on first use and read-only afterwards;
// every operation is a pure computation over its arguments and safe to
// run from any number of goroutines.
package chroma

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
