package pulse

import (
	"math"

	"github.com/cogentcore/webgpu/wgpu"
)

// ColorCornflowerBlue is the classic clear color of XNA style frameworks.
var ColorCornflowerBlue = ColorRGBA8(100, 149, 237, 255)

// Color is a straight rgba color value. The components are passed to the
// render target as they are, so their meaning depends on the target format.
type Color struct {
	R, G, B, A float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorRGBA8 creates a Color from 8 bit components.
func ColorRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
// Use this if you picked a color from a jpeg image and render to an srgb target.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(r, g, b, a).Linearized()
}

// Components returns the color components.
func (c Color) Components() (r, g, b, a float32) {
	return c.R, c.G, c.B, c.A
}

// WithAlpha returns a new color with the alpha component set to the given value.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// Linearized interprets the color as srgb encoded and returns its linear
// rgb value. Needed when rendering to a target that encodes on write.
func (c Color) Linearized() Color {
	return Color{R: degamma(c.R), G: degamma(c.G), B: degamma(c.B), A: c.A}
}

func (c Color) ToWGPU() wgpu.Color {
	return wgpu.Color{
		R: float64(c.R),
		G: float64(c.G),
		B: float64(c.B),
		A: float64(c.A),
	}
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}
