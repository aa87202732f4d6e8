package chroma

import (
	"math"
	"testing"
)

func TestLuminanceEndpoints(t *testing.T) {
	white, err := Luminance(Vector{1, 1, 1}, SRGB)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	if !floatNear(white, 1, 1e-6) {
		t.Errorf("white: got %v, want 1", white)
	}

	black, err := Luminance(Vector{0, 0, 0}, SRGB)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	if !floatNear(black, 0, 1e-6) {
		t.Errorf("black: got %v, want 0", black)
	}
}

func TestLuminanceAnySpace(t *testing.T) {
	srgb, err := Luminance(Vector{0.8, 0.4, 0.2}, SRGB)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	viaLab, err := Convert(Vector{0.8, 0.4, 0.2}, SRGB, Lab)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	lab, err := Luminance(viaLab, Lab)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	if !floatNear(srgb, lab, 1e-6) {
		t.Errorf("luminance differs by space: srgb %v, lab %v", srgb, lab)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	if a, b := ContrastRatio(0.2, 0.7), ContrastRatio(0.7, 0.2); a != b {
		t.Errorf("ContrastRatio not symmetric: %v vs %v", a, b)
	}
	if got := ContrastRatio(1, 0); !floatNear(got, 21, 1e-12) {
		t.Errorf("white on black: got %v, want 21", got)
	}
	if got := ContrastRatio(0.4, 0.4); !floatNear(got, 1, 1e-12) {
		t.Errorf("equal luminances: got %v, want 1", got)
	}
}

func TestAdjustToContrastConverges(t *testing.T) {
	gray := Vector{0.3, 0.3, 0.3}
	black := Vector{0, 0, 0}

	got, err := AdjustToContrast(gray, SRGB, black, SRGB, 4.5)
	if err != nil {
		t.Fatalf("AdjustToContrast: %v", err)
	}

	lum, err := Luminance(got, SRGB)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	blackLum, err := Luminance(black, SRGB)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	if ratio := ContrastRatio(lum, blackLum); ratio < 4.5-0.01 {
		t.Errorf("ratio after adjustment: got %v, want >= 4.49", ratio)
	}
}

func TestAdjustToContrastNoChangeNeeded(t *testing.T) {
	white := Vector{1, 1, 1}
	black := Vector{0, 0, 0}

	got, err := AdjustToContrast(white, SRGB, black, SRGB, 4.5)
	if err != nil {
		t.Fatalf("AdjustToContrast: %v", err)
	}
	if !vecNear(got, white, 0) {
		t.Errorf("got %v, want %v unchanged", got, white)
	}

	got, err = AdjustToContrast(white, SRGB, black, SRGB, 0.5)
	if err != nil {
		t.Fatalf("AdjustToContrast: %v", err)
	}
	if !vecNear(got, white, 0) {
		t.Errorf("target below 1: got %v, want %v unchanged", got, white)
	}
}

func TestAdjustToContrastRoundTripsSpace(t *testing.T) {
	// The adjustment works in sRGB internally but must come back in the
	// caller's space.
	gray, err := Convert(Vector{0.3, 0.3, 0.3}, SRGB, Lab)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	got, err := AdjustToContrast(gray, Lab, Vector{0, 0, 0}, SRGB, 4.5)
	if err != nil {
		t.Fatalf("AdjustToContrast: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d channels, want 3", len(got))
	}
	if got[0] <= gray[0] {
		t.Errorf("lightness %v did not increase from %v", got[0], gray[0])
	}
}

func TestIsDarkIsLight(t *testing.T) {
	r := DefaultRegistry()

	dark, err := r.IsDark(Vector{0.1, 0.1, 0.1}, SRGB)
	if err != nil {
		t.Fatalf("IsDark: %v", err)
	}
	if !dark {
		t.Error("near-black should be dark")
	}

	light, err := r.IsLight(Vector{1, 1, 1}, SRGB)
	if err != nil {
		t.Fatalf("IsLight: %v", err)
	}
	if !light {
		t.Error("white should be light")
	}
}

func TestColorContrastRatio(t *testing.T) {
	white, err := New(SRGB, Vector{1, 1, 1}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	black, err := New(SRGB, Vector{0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := white.ContrastRatio(black)
	if err != nil {
		t.Fatalf("ContrastRatio: %v", err)
	}
	if math.Abs(got-21) > 1e-4 {
		t.Errorf("got %v, want 21", got)
	}
}
