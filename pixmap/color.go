package pixmap

import (
	"image/color"
	"math"
)

// Color is a straight-alpha color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from straight-alpha components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= clampUnit(a)
	return c
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiply converts c to an 8-bit premultiplied pixel.
func (c Color) Premultiply() Pixel {
	a := clampUnit(c.A)
	return Pixel{
		R: unitToByte(clampUnit(c.R) * a),
		G: unitToByte(clampUnit(c.G) * a),
		B: unitToByte(clampUnit(c.B) * a),
		A: unitToByte(a),
	}
}

// Pixel is a premultiplied 8-bit RGBA value, the storage format of Pixmap.
type Pixel struct {
	R, G, B, A uint8
}

// Scale multiplies every channel by a/255.
func (p Pixel) Scale(a uint8) Pixel {
	if a == 255 {
		return p
	}
	return Pixel{
		R: MulDiv255(p.R, a),
		G: MulDiv255(p.G, a),
		B: MulDiv255(p.B, a),
		A: MulDiv255(p.A, a),
	}
}

// Unpremultiply converts p back to a straight-alpha color.
func (p Pixel) Unpremultiply() Color {
	if p.A == 0 {
		return Color{}
	}
	a := float64(p.A) / 255
	return Color{
		R: clampUnit(float64(p.R) / 255 / a),
		G: clampUnit(float64(p.G) / 255 / a),
		B: clampUnit(float64(p.B) / 255 / a),
		A: a,
	}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// MulDiv255 returns a*b/255 rounded to nearest.
func MulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// OpacityByte converts an opacity in [0, 1] to 0-255.
func OpacityByte(opacity float64) uint8 {
	return unitToByte(clampUnit(opacity))
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
