package chroma

import "testing"

func TestDeltaE2000Identity(t *testing.T) {
	c := Vector{0.8, 0.4, 0.2}
	got, err := DeltaE2000(c, SRGB, c, SRGB)
	if err != nil {
		t.Fatalf("DeltaE2000: %v", err)
	}
	if !floatNear(got, 0, 1e-9) {
		t.Errorf("got %v, want 0", got)
	}
}

func TestDeltaE2000BlackWhite(t *testing.T) {
	got, err := DeltaE2000(Vector{0, 0, 0}, SRGB, Vector{1, 1, 1}, SRGB)
	if err != nil {
		t.Fatalf("DeltaE2000: %v", err)
	}
	if !floatNear(got, 100, 0.01) {
		t.Errorf("got %v, want 100", got)
	}
}

func TestDeltaE2000Symmetric(t *testing.T) {
	c1 := Vector{0.9, 0.1, 0.2}
	c2 := Vector{0.2, 0.5, 0.8}
	a, err := DeltaE2000(c1, SRGB, c2, SRGB)
	if err != nil {
		t.Fatalf("DeltaE2000: %v", err)
	}
	b, err := DeltaE2000(c2, SRGB, c1, SRGB)
	if err != nil {
		t.Fatalf("DeltaE2000: %v", err)
	}
	if !floatNear(a, b, 1e-9) {
		t.Errorf("not symmetric: %v vs %v", a, b)
	}
}

func TestDeltaE2000AcrossSpaces(t *testing.T) {
	// The same color given in two spaces must measure as identical.
	red := Vector{1, 0, 0}
	lab, err := Convert(red, SRGB, Lab)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	got, err := DeltaE2000(red, SRGB, lab, Lab)
	if err != nil {
		t.Fatalf("DeltaE2000: %v", err)
	}
	if !floatNear(got, 0, 1e-6) {
		t.Errorf("got %v, want 0", got)
	}
}

func TestDeltaE2000SmallStepIsSmall(t *testing.T) {
	got, err := DeltaE2000(Vector{0.5, 0.5, 0.5}, SRGB, Vector{0.51, 0.5, 0.5}, SRGB)
	if err != nil {
		t.Fatalf("DeltaE2000: %v", err)
	}
	if got <= 0 || got >= 5 {
		t.Errorf("got %v, want a small positive difference", got)
	}
}
