package chroma

import (
	"errors"
	"image/color"
	"testing"
)

func TestByName(t *testing.T) {
	c, err := ByName("rebeccapurple")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	want := Vector{102.0 / 255, 51.0 / 255, 153.0 / 255}
	if !vecNear(c.Coords, want, 1e-9) {
		t.Errorf("got %v, want %v", c.Coords, want)
	}
	if c.Alpha != 1 {
		t.Errorf("alpha: got %v, want 1", c.Alpha)
	}

	if _, err := ByName("notacolor"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("got %v, want ErrUnknownName", err)
	}
}

func TestFromStandard(t *testing.T) {
	c := FromStandard(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if !vecNear(c.Coords, Vector{1, 0, 0}, 1e-9) {
		t.Errorf("coords: got %v, want [1 0 0]", c.Coords)
	}
	if !floatNear(c.Alpha, 128.0/255, 1e-9) {
		t.Errorf("alpha: got %v, want %v", c.Alpha, 128.0/255)
	}

	transparent := FromStandard(color.NRGBA{})
	if transparent.Alpha != 0 {
		t.Errorf("transparent alpha: got %v, want 0", transparent.Alpha)
	}
}

func TestToStandard(t *testing.T) {
	c, err := New(SRGB, Vector{0.4, 0.2, 0.6}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := ToStandard(c)
	if err != nil {
		t.Fatalf("ToStandard: %v", err)
	}
	want := color.NRGBA64{R: 0x6666, G: 0x3333, B: 0x9999, A: 0xffff}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestToStandardClipsGamut(t *testing.T) {
	c := Color{Space: SRGB, Coords: Vector{1.5, -0.2, 0.5}, Alpha: 1}
	got, err := ToStandard(c)
	if err != nil {
		t.Fatalf("ToStandard: %v", err)
	}
	if got.R != 0xffff || got.G != 0 {
		t.Errorf("got %+v, want red clamped to 0xffff and green to 0", got)
	}
}

func TestStandardRoundTrip(t *testing.T) {
	in := color.NRGBA64{R: 0x1234, G: 0x5678, B: 0x9abc, A: 0xffff}
	got, err := ToStandard(FromStandard(in))
	if err != nil {
		t.Fatalf("ToStandard: %v", err)
	}
	if got != in {
		t.Errorf("got %+v, want %+v", got, in)
	}
}
