package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// applyMask modulates layer by the luminance or alpha of the rendered mask
// content. bbox and ts are as for applyClipPath.
func applyMask(m *tree.Mask, bbox geom.Rect, ctx *Context, ts geom.Matrix, layer *pixmap.Pixmap) {
	cov, err := maskCoverage(m, bbox, ctx, ts, layer.Width(), layer.Height())
	if err != nil {
		Logger().Warn("ggsvg: mask failed", "id", m.ID, "err", err)
		layer.Clear()
		return
	}
	if cov == nil {
		layer.Clear()
		return
	}
	layer.ApplyMask(cov)
}

// maskCoverage renders the content of m, restricted to its region, and
// reduces it to coverage. It returns nil when the mask covers nothing.
func maskCoverage(m *tree.Mask, bbox geom.Rect, ctx *Context, ts geom.Matrix, width, height int) (*pixmap.Mask, error) {
	rect := m.Rect
	if m.Units == tree.ObjectBoundingBox {
		if !bbox.HasArea() {
			return nil, nil
		}
		r, ok := rect.Transform(bbox.BBoxTransform())
		if !ok {
			return nil, nil
		}
		rect = r
	}

	content, err := ctx.newLayer(width, height)
	if err != nil {
		return nil, err
	}
	region, err := NewRectMask(width, height, ts, rect)
	if err != nil {
		return nil, err
	}

	cts := ts
	if m.ContentUnits == tree.ObjectBoundingBox {
		if !bbox.HasArea() {
			return nil, nil
		}
		cts = cts.Multiply(bbox.BBoxTransform())
	}
	RenderNodes(m.Children, ctx, cts, content)
	content.ApplyMask(region)

	if m.Mask != nil {
		applyMask(m.Mask, bbox, ctx, ts, content)
	}
	return pixmap.NewMaskFromPixmap(content, m.Kind), nil
}
