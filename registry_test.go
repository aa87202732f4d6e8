package chroma

import (
	"errors"
	"testing"
)

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	r := DefaultRegistry()
	builtins := []string{
		SRGB, SRGBLinear, HSL, HSV, HWB, Lab, LCH, XYZ,
		DisplayP3, A98RGB, ProPhoto, Rec2020,
	}
	for _, id := range builtins {
		if _, err := r.Space(id); err != nil {
			t.Errorf("Space(%q): %v", id, err)
		}
	}
	if got := len(r.IDs()); got != len(builtins) {
		t.Errorf("IDs: got %d spaces, want %d", got, len(builtins))
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	s := &Space{
		ID:       "test",
		Channels: []Channel{BoundedChannel("v", 0, 1)},
		ToXYZ:    func(v Vector) Vector { return Vector{v[0], v[0], v[0]} },
		FromXYZ:  func(v Vector) Vector { return Vector{v[1]} },
	}
	if err := r.Register(s); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(s); !errors.Is(err, ErrDuplicateSpace) {
		t.Errorf("got %v, want ErrDuplicateSpace", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); err == nil {
		t.Error("nil space: want an error")
	}
	if err := r.Register(&Space{ID: "x"}); err == nil {
		t.Error("space without conversions: want an error")
	}
}

func TestCustomRegistryIsolated(t *testing.T) {
	// A custom registry starts empty and never sees the built-ins.
	r := NewRegistry()
	if _, err := r.Space(SRGB); !errors.Is(err, ErrUnknownSpace) {
		t.Errorf("got %v, want ErrUnknownSpace", err)
	}

	gray := &Space{
		ID:       "gray",
		Channels: []Channel{BoundedChannel("lightness", 0, 1)},
		ToXYZ:    func(v Vector) Vector { return Vector{v[0], v[0], v[0]} },
		FromXYZ:  func(v Vector) Vector { return Vector{v[1]} },
	}
	if err := r.Register(gray); err != nil {
		t.Fatalf("Register: %v", err)
	}

	out, err := r.Convert(Vector{0.5}, "gray", "gray")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if out[0] != 0.5 {
		t.Errorf("got %v, want 0.5", out[0])
	}

	if _, err := DefaultRegistry().Space("gray"); !errors.Is(err, ErrUnknownSpace) {
		t.Error("custom space leaked into the default registry")
	}
}

func TestSpaceHueIndex(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		space string
		want  int
	}{
		{HSL, 0},
		{LCH, 2},
		{SRGB, -1},
		{Lab, -1},
	}
	for _, tt := range tests {
		s, err := r.Space(tt.space)
		if err != nil {
			t.Fatalf("Space(%q): %v", tt.space, err)
		}
		if got := s.HueIndex(); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.space, got, tt.want)
		}
	}
}
