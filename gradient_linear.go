package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/tree"
)

// newLinearShader projects each pixel onto the gradient vector:
// t = dot(P - Start, End - Start) / |End - Start|².
func newLinearShader(g *tree.LinearGradient, opacity float64, bbox geom.Rect, ts geom.Matrix) (raster.Shader, bool) {
	stops := normalizeStops(g.Stops)
	if len(stops) == 0 {
		return nil, false
	}
	dx, dy := g.X2-g.X1, g.Y2-g.Y1
	lengthSq := dx*dx + dy*dy
	if len(stops) == 1 || lengthSq == 0 {
		return lastStopSolid(stops, opacity), true
	}

	m, ok := gradientSpace(&g.BaseGradient, bbox, ts)
	if !ok {
		return nil, false
	}
	inv, _ := m.Invert()
	return &gradientShader{
		inv:    inv,
		spread: g.Spread,
		lut:    buildLUT(stops, opacity),
		param: func(p geom.Point) (float64, bool) {
			return ((p.X-g.X1)*dx + (p.Y-g.Y1)*dy) / lengthSq, true
		},
	}, true
}
