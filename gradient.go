package ggsvg

import (
	"math"
	"slices"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// lutSize is the number of precomputed colors per gradient.
const lutSize = 256

// gradientShader colors pixels by mapping their centers into gradient space
// and looking up the parameter t in a color table.
type gradientShader struct {
	inv    geom.Matrix
	spread tree.SpreadMethod
	lut    [lutSize]pixmap.Pixel
	param  func(p geom.Point) (float64, bool)
}

// ShadeRow implements raster.Shader.
func (g *gradientShader) ShadeRow(x, y int, dst []pixmap.Pixel) {
	p := g.inv.TransformPoint(geom.Pt(float64(x)+0.5, float64(y)+0.5))
	step := g.inv.TransformVector(geom.Pt(1, 0))
	for i := range dst {
		t, ok := g.param(p)
		if !ok {
			dst[i] = pixmap.Pixel{}
		} else {
			t = applySpread(t, g.spread)
			dst[i] = g.lut[int(t*(lutSize-1)+0.5)]
		}
		p = p.Add(step)
	}
}

// gradientSpace returns the matrix from gradient space to device space, or
// false when an objectBoundingBox gradient is applied to a flat bbox.
func gradientSpace(base *tree.BaseGradient, bbox geom.Rect, ts geom.Matrix) (geom.Matrix, bool) {
	m := ts
	if base.Units == tree.ObjectBoundingBox {
		if !bbox.HasArea() {
			return geom.Matrix{}, false
		}
		m = m.Multiply(bbox.BBoxTransform())
	}
	m = m.Multiply(base.Transform)
	if !m.IsInvertible() {
		return geom.Matrix{}, false
	}
	return m, true
}

// normalizeStops clamps offsets to [0, 1] and makes them non-decreasing.
func normalizeStops(stops []tree.Stop) []tree.Stop {
	out := slices.Clone(stops)
	prev := 0.0
	for i := range out {
		o := min(max(out[i].Offset, prev), 1)
		out[i].Offset = o
		prev = o
	}
	return out
}

// buildLUT samples the stops at lutSize evenly spaced offsets. Colors are
// interpolated with straight alpha in sRGB and premultiplied afterwards.
func buildLUT(stops []tree.Stop, opacity float64) [lutSize]pixmap.Pixel {
	var lut [lutSize]pixmap.Pixel
	for i := range lut {
		c := colorAt(stops, float64(i)/(lutSize-1))
		lut[i] = c.WithAlpha(opacity).Premultiply()
	}
	return lut
}

func colorAt(stops []tree.Stop, t float64) pixmap.Color {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t > s1.Offset {
			continue
		}
		if s1.Offset == s0.Offset {
			return s1.Color
		}
		return s0.Color.Lerp(s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
	}
	return stops[len(stops)-1].Color
}

// applySpread maps t into [0, 1].
func applySpread(t float64, spread tree.SpreadMethod) float64 {
	switch spread {
	case tree.SpreadRepeat:
		t -= math.Floor(t)
	case tree.SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int64(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = min(max(t, 0), 1)
	}
	return t
}

// lastStopSolid returns the solid paint used when a gradient degenerates to
// a single color.
func lastStopSolid(stops []tree.Stop, opacity float64) raster.Solid {
	c := stops[len(stops)-1].Color
	return raster.Solid(c.WithAlpha(opacity).Premultiply())
}
