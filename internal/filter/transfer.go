package filter

import "github.com/gogpu/ggsvg/pixmap"

// TransferFunc maps a straight color component in [0, 1]. A nil function
// is the identity.
type TransferFunc func(v float64) float64

// ComponentTransfer applies a transfer function per channel to the straight
// colors of pm. Each function is sampled into a 256-entry table.
func ComponentTransfer(pm *pixmap.Pixmap, r, g, b, a TransferFunc) {
	if r == nil && g == nil && b == nil && a == nil {
		return
	}
	luts := [4]*[256]uint8{lut(r), lut(g), lut(b), lut(a)}

	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		px := pixmap.Pixel{R: data[i], G: data[i+1], B: data[i+2], A: data[i+3]}
		s := px.Unpremultiply()
		c := [4]uint8{unit8(s.R), unit8(s.G), unit8(s.B), unit8(s.A)}
		for ch, t := range luts {
			if t != nil {
				c[ch] = t[c[ch]]
			}
		}
		out := pixmap.RGB8(c[0], c[1], c[2]).WithAlpha(float64(c[3]) / 255).Premultiply()
		data[i], data[i+1], data[i+2], data[i+3] = out.R, out.G, out.B, out.A
	}
}

func lut(fn TransferFunc) *[256]uint8 {
	if fn == nil {
		return nil
	}
	var t [256]uint8
	for i := range t {
		t[i] = unit8(fn(float64(i) / 255))
	}
	return &t
}

func unit8(v float64) uint8 {
	v = min(max(v, 0), 1)
	return uint8(v*255 + 0.5)
}
