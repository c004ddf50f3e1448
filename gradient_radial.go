package ggsvg

import (
	"math"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/tree"
)

// newRadialShader interpolates from the focal circle (FX, FY, FR) to the
// end circle (CX, CY, R).
func newRadialShader(g *tree.RadialGradient, opacity float64, bbox geom.Rect, ts geom.Matrix) (raster.Shader, bool) {
	stops := normalizeStops(g.Stops)
	if len(stops) == 0 || g.R <= 0 {
		return nil, false
	}
	if len(stops) == 1 || g.R <= g.FR {
		return lastStopSolid(stops, opacity), true
	}

	m, ok := gradientSpace(&g.BaseGradient, bbox, ts)
	if !ok {
		return nil, false
	}
	inv, _ := m.Invert()

	rg := radialParams{
		center: geom.Pt(g.CX, g.CY),
		focus:  geom.Pt(g.FX, g.FY),
		r0:     max(g.FR, 0),
		r1:     g.R,
	}
	param := rg.focal
	if rg.center == rg.focus {
		param = rg.simple
	}
	return &gradientShader{
		inv:    inv,
		spread: g.Spread,
		lut:    buildLUT(stops, opacity),
		param:  param,
	}, true
}

type radialParams struct {
	center, focus geom.Point
	r0, r1        float64
}

// simple handles concentric circles: t = (distance - r0) / (r1 - r0).
func (g radialParams) simple(p geom.Point) (float64, bool) {
	return (p.Sub(g.center).Length() - g.r0) / (g.r1 - g.r0), true
}

// focal solves for the circle interpolated between the focal and end
// circles that passes through p, taking the larger root. Points not covered
// by any circle with a non-negative radius are left unpainted.
func (g radialParams) focal(p geom.Point) (float64, bool) {
	// Circle(t): center c0 + t*cd, radius r0 + t*dr.
	cd := g.center.Sub(g.focus)
	dr := g.r1 - g.r0
	pd := p.Sub(g.focus)

	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.r0*dr
	c := pd.Dot(pd) - g.r0*g.r0

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, g.r0+t*dr >= 0
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (b + sq) / a
	t2 := (b - sq) / a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if g.r0+t1*dr >= 0 {
		return t1, true
	}
	if g.r0+t2*dr >= 0 {
		return t2, true
	}
	return 0, false
}
