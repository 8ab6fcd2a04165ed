// Package overlay renders what a physics engine "sees" as colored debug
// lines. The physics side walks its scene and emits line segments; this
// package decides which of them are drawn and in what color, scales them
// from physics units to display units, and hands them to a draw sink.
package overlay

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSLA color: hue in degrees [0, 360), saturation, lightness
// and alpha in [0, 1]. This matches the encoding physics debug pipelines
// use for their default coloring rules, so defaults pass through untouched.
type Color [4]float32

// HSLA creates a color from hue/saturation/lightness/alpha components.
func HSLA(h, s, l, a float32) Color {
	return Color{h, s, l, a}
}

// FromRGB converts RGB components in [0, 1] to an HSLA color.
func FromRGB(r, g, b, a float32) Color {
	h, s, l := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.Hsl()
	return Color{float32(h), float32(s), float32(l), a}
}

// RGBA returns the color as RGBA components in [0, 1].
func (c Color) RGBA() (r, g, b, a float32) {
	col := colorful.Hsl(float64(c[0]), float64(c[1]), float64(c[2]))
	return float32(col.R), float32(col.G), float32(col.B), c[3]
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Lerp linearly interpolates each component toward other. t is clamped
// to [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	var out Color
	for i := range c {
		out[i] = c[i] + (other[i]-c[i])*t
	}
	return out
}
