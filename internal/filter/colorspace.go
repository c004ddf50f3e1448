package filter

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/ggsvg/pixmap"
)

// Conversion tables between sRGB and linearRGB color components.
var (
	toLinear   [256]uint8
	fromLinear [256]uint8
)

func init() {
	for i := range 256 {
		v := float64(i) / 255
		r, _, _ := colorful.Color{R: v, G: v, B: v}.LinearRgb()
		toLinear[i] = unit8(r)
		fromLinear[i] = unit8(colorful.LinearRgb(v, v, v).R)
	}
}

// ToLinearRGB converts pm from sRGB to linearRGB in place.
func ToLinearRGB(pm *pixmap.Pixmap) {
	convert(pm, &toLinear)
}

// ToSRGB converts pm from linearRGB to sRGB in place.
func ToSRGB(pm *pixmap.Pixmap) {
	convert(pm, &fromLinear)
}

// convert maps the straight color components through t, leaving alpha
// untouched.
func convert(pm *pixmap.Pixmap, t *[256]uint8) {
	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		a := data[i+3]
		switch a {
		case 0:
			continue
		case 255:
			data[i], data[i+1], data[i+2] = t[data[i]], t[data[i+1]], t[data[i+2]]
			continue
		}
		px := pixmap.Pixel{R: data[i], G: data[i+1], B: data[i+2], A: a}
		s := px.Unpremultiply()
		c := pixmap.RGB8(t[unit8(s.R)], t[unit8(s.G)], t[unit8(s.B)]).WithAlpha(s.A).Premultiply()
		data[i], data[i+1], data[i+2] = c.R, c.G, c.B
	}
}
