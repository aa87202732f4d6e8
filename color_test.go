package chroma

import (
	"errors"
	"testing"
)

func TestNewValidates(t *testing.T) {
	if _, err := New("nope", Vector{0, 0, 0}, 1); !errors.Is(err, ErrUnknownSpace) {
		t.Errorf("got %v, want ErrUnknownSpace", err)
	}
	if _, err := New(SRGB, Vector{0, 0}, 1); !errors.Is(err, ErrChannelCount) {
		t.Errorf("got %v, want ErrChannelCount", err)
	}

	c, err := New(SRGB, Vector{1, 0, 0}, 1.5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Alpha != 1 {
		t.Errorf("alpha: got %v, want clamped to 1", c.Alpha)
	}

	c, err = New(SRGB, Vector{1, 0, 0}, Undefined())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !IsUndefined(c.Alpha) {
		t.Errorf("alpha: got %v, want undefined preserved", c.Alpha)
	}
}

func TestNewCopiesCoords(t *testing.T) {
	in := Vector{1, 0, 0}
	c, err := New(SRGB, in, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in[0] = 0
	if c.Coords[0] != 1 {
		t.Error("New shares the caller's slice, want a copy")
	}
}

func TestColorConvert(t *testing.T) {
	red, err := New(SRGB, Vector{1, 0, 0}, 0.5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	hsl, err := red.Convert(HSL)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if hsl.Space != HSL {
		t.Errorf("space: got %q, want %q", hsl.Space, HSL)
	}
	if h := hsl.Coords[0]; !floatNear(h, 0, 1e-4) && !floatNear(h, 360, 1e-4) {
		t.Errorf("hue: got %v, want 0", h)
	}
	if !floatNear(hsl.Coords[1], 100, 1e-4) || !floatNear(hsl.Coords[2], 50, 1e-4) {
		t.Errorf("coords: got %v, want [0 100 50]", hsl.Coords)
	}
	if hsl.Alpha != 0.5 {
		t.Errorf("alpha: got %v, want carried through", hsl.Alpha)
	}
}

func TestColorCloneIndependent(t *testing.T) {
	c, err := New(SRGB, Vector{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d := c.Clone()
	d.Coords[0] = 0
	if c.Coords[0] != 1 {
		t.Error("Clone shares coordinates with the original")
	}
}

func TestColorFitAndInGamut(t *testing.T) {
	c := Color{Space: SRGB, Coords: Vector{1.2, 0.5, -0.1}, Alpha: 1}
	ok, err := c.InGamut()
	if err != nil {
		t.Fatalf("InGamut: %v", err)
	}
	if ok {
		t.Fatal("out-of-range color reported in gamut")
	}

	fitted, err := c.Fit(Clip{})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	ok, err = fitted.InGamut()
	if err != nil {
		t.Fatalf("InGamut: %v", err)
	}
	if !ok {
		t.Errorf("fitted color %v not in gamut", fitted.Coords)
	}
	if fitted.Alpha != 1 {
		t.Errorf("alpha: got %v, want untouched", fitted.Alpha)
	}
}
