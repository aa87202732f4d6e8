package chroma

import (
	"fmt"
	"math"
)

// ChannelKind classifies how a channel behaves at its range limits.
type ChannelKind uint8

const (
	// Bounded channels clamp to [Min, Max] during gamut fitting. Either
	// limit may be infinite for channels bounded on one side only.
	Bounded ChannelKind = iota
	// Angular channels are hues: they wrap modulo 360 and are never
	// clamped.
	Angular
	// Unbounded channels pass through gamut fitting untouched.
	Unbounded
)

// Channel describes a single coordinate of a color space.
type Channel struct {
	Name string
	Kind ChannelKind
	Min  float64
	Max  float64
}

// BoundedChannel returns a bounded channel with the given limits.
func BoundedChannel(name string, mn, mx float64) Channel {
	return Channel{Name: name, Kind: Bounded, Min: mn, Max: mx}
}

// LowerBoundedChannel returns a channel bounded below only.
func LowerBoundedChannel(name string, mn float64) Channel {
	return Channel{Name: name, Kind: Bounded, Min: mn, Max: math.Inf(1)}
}

// AngularChannel returns a hue channel spanning [0, 360).
func AngularChannel(name string) Channel {
	return Channel{Name: name, Kind: Angular, Min: 0, Max: 360}
}

// UnboundedChannel returns a channel with no gamut limits.
func UnboundedChannel(name string) Channel {
	return Channel{Name: name, Kind: Unbounded}
}

// Space is the immutable descriptor of a color space: its identifier,
// its channels, and the pair of pure functions converting coordinates to
// and from the shared XYZ-D50 reference space. Spaces only ever know how
// to reach the reference, never each other.
//
// Descriptors are created at registration time and never mutated.
type Space struct {
	// ID is the lookup identifier, e.g. "srgb" or "display-p3".
	ID string
	// Channels describe each coordinate in order.
	Channels []Channel
	// ToXYZ converts a full coordinate vector to XYZ relative to D50.
	ToXYZ func(Vector) Vector
	// FromXYZ converts XYZ relative to D50 to this space's coordinates.
	FromXYZ func(Vector) Vector
}

// HueIndex returns the index of the first angular channel, or -1 when
// the space has none.
func (s *Space) HueIndex() int {
	for i, ch := range s.Channels {
		if ch.Kind == Angular {
			return i
		}
	}
	return -1
}

// checkLen verifies that a coordinate vector matches the space's channel
// count.
func (s *Space) checkLen(coords Vector) error {
	if len(coords) != len(s.Channels) {
		return fmt.Errorf("%w: space %q wants %d channels, got %d",
			ErrChannelCount, s.ID, len(s.Channels), len(coords))
	}
	return nil
}

// normalizeHues wraps every angular channel into [0, 360) in place.
// Negative values wrap forward; undefined hues are left alone.
func (s *Space) normalizeHues(coords Vector) {
	for i, ch := range s.Channels {
		if ch.Kind != Angular || IsUndefined(coords[i]) {
			continue
		}
		if v := coords[i]; v < 0 || v >= 360 {
			v = math.Mod(v, 360)
			if v < 0 {
				v += 360
			}
			coords[i] = v
		}
	}
}
