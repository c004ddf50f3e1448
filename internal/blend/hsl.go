package blend

// Non-separable blend modes (W3C Compositing Level 1, section 5.9).
// These operate on the whole RGB triplet instead of per channel.

// lum returns the luminance of a color using BT.601 coefficients.
func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// sat returns max(r, g, b) - min(r, g, b).
func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor pulls out-of-range components toward the luminance.
func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 && l != n {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 && x != l {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float32) (float32, float32, float32) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid = 0
		*hi = 0
	}
	*lo = 0
	return r, g, b
}

// sortRGB returns pointers to r, g, b ordered by value.
func sortRGB(r, g, b *float32) (lo, mid, hi *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

func blendHue(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb [3]float32) (float32, float32, float32) {
		r, g, b := setSat(cs[0], cs[1], cs[2], sat(cb[0], cb[1], cb[2]))
		return setLum(r, g, b, lum(cb[0], cb[1], cb[2]))
	})
}

func blendSaturation(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb [3]float32) (float32, float32, float32) {
		r, g, b := setSat(cb[0], cb[1], cb[2], sat(cs[0], cs[1], cs[2]))
		return setLum(r, g, b, lum(cb[0], cb[1], cb[2]))
	})
}

func blendColor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb [3]float32) (float32, float32, float32) {
		return setLum(cs[0], cs[1], cs[2], lum(cb[0], cb[1], cb[2]))
	})
}

func blendLuminosity(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb [3]float32) (float32, float32, float32) {
		return setLum(cb[0], cb[1], cb[2], lum(cs[0], cs[1], cs[2]))
	})
}

// nonSeparableBlend unpremultiplies both colors, applies f and composites:
//
//	Co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
func nonSeparableBlend(
	sr, sg, sb, sa, dr, dg, db, da byte,
	f func(cs, cb [3]float32) (float32, float32, float32),
) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	cs := [3]float32{
		float32(unpremul(sr, sa)) / 255,
		float32(unpremul(sg, sa)) / 255,
		float32(unpremul(sb, sa)) / 255,
	}
	cb := [3]float32{
		float32(unpremul(dr, da)) / 255,
		float32(unpremul(dg, da)) / 255,
		float32(unpremul(db, da)) / 255,
	}
	br, bg, bb := f(cs, cb)

	as := float32(sa) / 255
	ab := float32(da) / 255
	mix := func(s, d byte, b float32) byte {
		v := (1-as)*float32(d)/255 + (1-ab)*float32(s)/255 + as*ab*clampUnit(b)
		return byte(clampUnit(v)*255 + 0.5)
	}
	return mix(sr, dr, br), mix(sg, dg, bg), mix(sb, db, bb), addDiv255(sa, mulDiv255(da, 255-sa))
}
