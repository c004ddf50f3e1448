package blend

import "math"

// separableBlend applies a per-channel blend function B(Cb, Cs) on
// unpremultiplied values and composites the result:
//
//	Co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cb, Cs)
//	Ao = Sa + Da - Sa*Da
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, f func(cb, cs float32) float32) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	as := float32(sa) / 255
	ab := float32(da) / 255

	channel := func(s, d byte) byte {
		cs := float32(unpremul(s, sa)) / 255
		cb := float32(unpremul(d, da)) / 255
		mixed := clampUnit(f(cb, cs))
		v := (1-as)*float32(d)/255 + (1-ab)*float32(s)/255 + as*ab*mixed
		return byte(clampUnit(v)*255 + 0.5)
	}

	ao := as + ab - as*ab
	return channel(sr, dr), channel(sg, dg), channel(sb, db), byte(clampUnit(ao)*255 + 0.5)
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return cb * cs
	})
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, screen)
}

func screen(cb, cs float32) float32 {
	return cb + cs - cb*cs
}

// blendOverlay is hard-light with the layers swapped.
func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return hardLight(cs, cb)
	})
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return min(cb, cs)
	})
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return max(cb, cs)
	})
}

func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		switch {
		case cb == 0:
			return 0
		case cs >= 1:
			return 1
		default:
			return min(1, cb/(1-cs))
		}
	})
}

func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		switch {
		case cb >= 1:
			return 1
		case cs <= 0:
			return 0
		default:
			return 1 - min(1, (1-cb)/cs)
		}
	})
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, hardLight)
}

func hardLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return cb * 2 * cs
	}
	return screen(cb, 2*cs-1)
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float32
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = float32(math.Sqrt(float64(cb)))
		}
		return cb + (2*cs-1)*(d-cb)
	})
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		if cb > cs {
			return cb - cs
		}
		return cs - cb
	})
}

func blendExclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return cb + cs - 2*cb*cs
	})
}
