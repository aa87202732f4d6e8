package chroma

import "testing"

func TestIsAchromatic(t *testing.T) {
	tests := []struct {
		name   string
		coords Vector
		space  string
		want   bool
	}{
		{"mid gray", Vector{0.5, 0.5, 0.5}, SRGB, true},
		{"white", Vector{1, 1, 1}, SRGB, true},
		{"black", Vector{0, 0, 0}, SRGB, true},
		{"red", Vector{1, 0, 0}, SRGB, false},
		{"washed out but chromatic", Vector{0.5, 0.5, 0.52}, SRGB, false},
		{"hsl gray", Vector{200, 0, 50}, HSL, true},
		{"lab gray", Vector{60, 0, 0}, Lab, true},
		{"lch chromatic", Vector{60, 40, 120}, LCH, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAchromatic(tt.coords, tt.space)
			if err != nil {
				t.Fatalf("IsAchromatic: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAchromaticUndefinedHue(t *testing.T) {
	// An undefined hue must not break the check; a gray stays a gray.
	got, err := IsAchromatic(Vector{Undefined(), 0, 50}, HSL)
	if err != nil {
		t.Fatalf("IsAchromatic: %v", err)
	}
	if !got {
		t.Error("gray with undefined hue should be achromatic")
	}
}

func TestColorGrayscale(t *testing.T) {
	red, err := New(SRGB, Vector{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	gray, err := red.Grayscale()
	if err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	if gray.Space != SRGB {
		t.Errorf("space: got %q, want %q", gray.Space, SRGB)
	}
	if !floatNear(gray.Coords[0], gray.Coords[1], 1e-4) || !floatNear(gray.Coords[1], gray.Coords[2], 1e-4) {
		t.Errorf("channels not equal: %v", gray.Coords)
	}
	ok, err := gray.IsAchromatic()
	if err != nil {
		t.Fatalf("IsAchromatic: %v", err)
	}
	if !ok {
		t.Error("grayscaled color should be achromatic")
	}
}
