package overlay

import (
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestFromRGB(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float32
		want       Color
	}{
		{"red", 1, 0, 0, 1, Color{0, 1, 0.5, 1}},
		{"green", 0, 1, 0, 1, Color{120, 1, 0.5, 1}},
		{"blue", 0, 0, 1, 0.5, Color{240, 1, 0.5, 0.5}},
		{"white", 1, 1, 1, 1, Color{0, 0, 1, 1}},
		{"black", 0, 0, 0, 1, Color{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRGB(tt.r, tt.g, tt.b, tt.a)
			for i := range got {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("FromRGB = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestColorRGBARoundTrip(t *testing.T) {
	orig := [4]float32{0.8, 0.25, 0.1, 0.75}
	c := FromRGB(orig[0], orig[1], orig[2], orig[3])
	r, g, b, a := c.RGBA()
	got := [4]float32{r, g, b, a}
	for i := range got {
		if !approxEqual(got[i], orig[i]) {
			t.Errorf("round trip = %v, want %v", got, orig)
			break
		}
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := HSLA(200, 0.5, 0.5, 1)
	got := c.WithAlpha(0.25)
	if got[3] != 0.25 {
		t.Errorf("alpha = %v, want 0.25", got[3])
	}
	if got[0] != c[0] || got[1] != c[1] || got[2] != c[2] {
		t.Errorf("WithAlpha changed HSL components: %v", got)
	}
	if c[3] != 1 {
		t.Error("WithAlpha mutated the receiver")
	}
}

func TestColorLerp(t *testing.T) {
	a := HSLA(0, 0, 0, 0)
	b := HSLA(100, 1, 0.5, 1)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (Color{50, 0.5, 0.25, 0.5}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp clamps above 1: got %v, want %v", got, b)
	}
}
