package filter

import "github.com/gogpu/ggsvg/pixmap"

// ColorMatrix applies a 4x5 row-major matrix to the straight colors of pm:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// Components are in [0, 1]; the fifth column is an offset in the same unit.
func ColorMatrix(pm *pixmap.Pixmap, m [20]float64) {
	mapStraight(pm, func(c *[4]float64) {
		r, g, b, a := c[0], c[1], c[2], c[3]
		c[0] = m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
		c[1] = m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
		c[2] = m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
		c[3] = m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
	})
}

// mapStraight unpremultiplies every pixel of pm, passes its components
// to fn and stores the clamped, premultiplied result.
func mapStraight(pm *pixmap.Pixmap, fn func(c *[4]float64)) {
	data := pm.Data()
	var c [4]float64
	for i := 0; i < len(data); i += 4 {
		px := pixmap.Pixel{R: data[i], G: data[i+1], B: data[i+2], A: data[i+3]}
		s := px.Unpremultiply()
		c = [4]float64{s.R, s.G, s.B, s.A}
		fn(&c)
		out := pixmap.RGBA(c[0], c[1], c[2], c[3]).Premultiply()
		data[i], data[i+1], data[i+2], data[i+3] = out.R, out.G, out.B, out.A
	}
}
