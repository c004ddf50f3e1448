package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// strokeTolerance is the flattening tolerance of stroke outlines in device
// pixels.
const strokeTolerance = 0.25

func fillPath(p *tree.FillPath, ctx *Context, ts geom.Matrix, pm *pixmap.Pixmap, mode pixmap.BlendMode) {
	if p.Path.IsEmpty() || p.Paint == nil {
		return
	}
	sh, ok := newShader(p.Paint, p.Opacity, p.Path.Bounds(), ts, ctx)
	if !ok {
		return
	}
	raster.FillPath(pm, p.Path, ts, p.Rule, p.AntiAlias, sh, mode)
}

// strokePath expands the outline of p in user space and fills it with the
// nonzero rule. Paint servers use the geometry bbox, not the stroke bbox.
func strokePath(p *tree.StrokePath, ctx *Context, ts geom.Matrix, pm *pixmap.Pixmap, mode pixmap.BlendMode) {
	s := p.Stroke
	if p.Path.IsEmpty() || s.Paint == nil || s.Width <= 0 {
		return
	}
	sx, sy := ts.ScaleFactors()
	scale := max(sx, sy)
	if scale <= 0 {
		return
	}
	outline := p.Path.Stroke(s.Style(), strokeTolerance/scale)
	if outline == nil {
		return
	}
	sh, ok := newShader(s.Paint, s.Opacity, p.Path.Bounds(), ts, ctx)
	if !ok {
		return
	}
	raster.FillPath(pm, outline, ts, geom.NonZero, p.AntiAlias, sh, mode)
}
