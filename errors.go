package chroma

import "errors"

// ErrUnknownSpace is returned when a space identifier has not been
// registered. The failure is fatal to the call and never retried.
var ErrUnknownSpace = errors.New("chroma: unknown color space")

// ErrChannelCount is returned when a coordinate vector's length does not
// match the channel count of the space it is used with.
var ErrChannelCount = errors.New("chroma: channel count mismatch")

// ErrDuplicateSpace is returned when registering a space whose identifier
// is already taken.
var ErrDuplicateSpace = errors.New("chroma: space already registered")

// ErrNoStops is returned when an interpolation is requested over an
// empty stop list.
var ErrNoStops = errors.New("chroma: interpolation requires at least one stop")

// ErrMalformed is returned when a color string cannot be parsed.
var ErrMalformed = errors.New("chroma: malformed color string")

// ErrUnknownName is returned when a named-color lookup finds no entry.
var ErrUnknownName = errors.New("chroma: unknown color name")
