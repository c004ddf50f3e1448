package ggsvg

import (
	"math"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// patternShader repeats a pre-rendered tile over the plane.
type patternShader struct {
	tile    *pixmap.Pixmap
	inv     geom.Matrix
	opacity uint8
}

// ShadeRow implements raster.Shader.
func (s *patternShader) ShadeRow(x, y int, dst []pixmap.Pixel) {
	w, h := s.tile.Width(), s.tile.Height()
	p := s.inv.TransformPoint(geom.Pt(float64(x)+0.5, float64(y)+0.5))
	step := s.inv.TransformVector(geom.Pt(1, 0))
	for i := range dst {
		tx := wrap(int(math.Floor(p.X)), w)
		ty := wrap(int(math.Floor(p.Y)), h)
		dst[i] = s.tile.Pixel(tx, ty).Scale(s.opacity)
		p = p.Add(step)
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// newPatternShader renders one tile of p at device resolution and returns
// a shader repeating it.
func newPatternShader(p *tree.Pattern, opacity float64, bbox geom.Rect, ts geom.Matrix, ctx *Context) (raster.Shader, bool) {
	rect := p.Rect
	if p.Units == tree.ObjectBoundingBox {
		if !bbox.HasArea() {
			return nil, false
		}
		r, ok := rect.Transform(bbox.BBoxTransform())
		if !ok {
			return nil, false
		}
		rect = r
	}
	if !rect.HasArea() {
		return nil, false
	}

	total := ts.Multiply(p.Transform)
	sx, sy := total.ScaleFactors()
	bound := ctx.MaxBBox()
	w := min(int(math.Ceil(rect.Width()*sx)), bound.W)
	h := min(int(math.Ceil(rect.Height()*sy)), bound.H)
	if w <= 0 || h <= 0 {
		return nil, false
	}

	tile, err := ctx.newLayer(w, h)
	if err != nil {
		Logger().Warn("ggsvg: pattern skipped", "id", p.ID, "err", err)
		return nil, false
	}

	// Tile pixels map to the pattern rect, which sits at rect.Min in
	// pattern space.
	scale := geom.Scale(float64(w)/rect.Width(), float64(h)/rect.Height())
	var content geom.Matrix
	switch {
	case p.ViewBox != nil:
		content = p.ViewBox.Transform(geom.Size{Width: rect.Width(), Height: rect.Height()})
	case p.ContentUnits == tree.ObjectBoundingBox:
		if !bbox.HasArea() {
			return nil, false
		}
		content = geom.Scale(bbox.Width(), bbox.Height())
	default:
		content = geom.Identity()
	}
	RenderNodes(p.Children, ctx.derive(w, h), scale.Multiply(content), tile)

	toDevice := total.
		Multiply(geom.Translate(rect.MinX, rect.MinY)).
		Multiply(geom.Scale(rect.Width()/float64(w), rect.Height()/float64(h)))
	inv, ok := toDevice.Invert()
	if !ok {
		return nil, false
	}
	return &patternShader{tile: tile, inv: inv, opacity: pixmap.OpacityByte(opacity)}, true
}
