package filter

import "github.com/gogpu/ggsvg/pixmap"

// Arithmetic writes k1*i1*i2 + k2*i1 + k3*i2 + k4 into dst, computed per
// premultiplied component in [0, 1]. All pixmaps must have the same size;
// dst may alias in2.
func Arithmetic(dst, in1, in2 *pixmap.Pixmap, k1, k2, k3, k4 float64) {
	a, b, out := in1.Data(), in2.Data(), dst.Data()
	for i := 0; i < len(out); i += 4 {
		var px [4]float64
		for c := range 4 {
			i1 := float64(a[i+c]) / 255
			i2 := float64(b[i+c]) / 255
			px[c] = min(max(k1*i1*i2+k2*i1+k3*i2+k4, 0), 1)
		}
		alpha := px[3]
		out[i] = unit8(min(px[0], alpha))
		out[i+1] = unit8(min(px[1], alpha))
		out[i+2] = unit8(min(px[2], alpha))
		out[i+3] = unit8(alpha)
	}
}
