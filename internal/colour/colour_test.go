package colour

import "testing"

func TestColour_Operations(t *testing.T) {
	tests := []struct {
		name     string
		got      Colour
		expected Colour
	}{
		{"add", New(0.9, 0.6, 0.75).Add(New(0.7, 0.1, 0.25)), New(1.6, 0.7, 1.0)},
		{"sub", New(0.9, 0.6, 0.75).Sub(New(0.7, 0.1, 0.25)), New(0.2, 0.5, 0.5)},
		{"scale", New(0.2, 0.3, 0.4).Scale(2), New(0.4, 0.6, 0.8)},
		{"hadamard", New(1, 0.2, 0.4).Mul(New(0.9, 1, 0.1)), New(0.9, 0.2, 0.04)},
		{"lerp midpoint", White.Lerp(Black, 0.5), New(0.5, 0.5, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestColour_Quantize(t *testing.T) {
	tests := []struct {
		name    string
		c       Colour
		r, g, b int
	}{
		{"in range", New(1.5, 0, 0), 255, 0, 0},
		{"half", New(0, 0.5, 0), 0, 128, 0},
		{"negative clamps", New(-0.5, 0, 1), 0, 0, 255},
		{"rounding", New(0.8, 0.6, 0.75), 204, 153, 191},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.Quantize(255)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}
