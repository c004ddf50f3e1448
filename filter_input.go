package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// prepareFilterPaint renders paint over a full width×height rectangle for
// use as the FillPaint or StrokePaint filter input. It returns nil when
// paint is nil or the buffer cannot be allocated.
//
// The paint covers the whole buffer uniformly rather than only the painted
// geometry of the group.
func prepareFilterPaint(paint tree.Paint, ctx *Context, width, height int) *pixmap.Pixmap {
	if paint == nil {
		return nil
	}
	pm, err := ctx.newLayer(width, height)
	if err != nil {
		Logger().Warn("ggsvg: filter paint skipped", "err", err)
		return nil
	}

	rect := geom.RectXYWH(0, 0, float64(width), float64(height))
	fill := &tree.FillPath{
		Path:      geom.NewRectPath(rect),
		Paint:     paint,
		Opacity:   1,
		Rule:      geom.NonZero,
		AntiAlias: true,
	}
	fillPath(fill, ctx, geom.Identity(), pm, pixmap.BlendNormal)
	return pm
}
