package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// newShader returns the shader painting paint with the given opacity. bbox
// is the object bounding box of the painted element in user space and ts
// maps user space to the target. The result is false when nothing should be
// drawn.
func newShader(paint tree.Paint, opacity float64, bbox geom.Rect, ts geom.Matrix, ctx *Context) (raster.Shader, bool) {
	if opacity <= 0 {
		return nil, false
	}
	opacity = min(opacity, 1)

	switch p := paint.(type) {
	case tree.Color:
		c := pixmap.Color(p)
		px := c.WithAlpha(opacity).Premultiply()
		if px.A == 0 {
			return nil, false
		}
		return raster.Solid(px), true
	case *tree.LinearGradient:
		return newLinearShader(p, opacity, bbox, ts)
	case *tree.RadialGradient:
		return newRadialShader(p, opacity, bbox, ts)
	case *tree.Pattern:
		return newPatternShader(p, opacity, bbox, ts, ctx)
	}
	return nil, false
}
