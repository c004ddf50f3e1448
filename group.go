package ggsvg

import (
	"fmt"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// aaPad is the bleed added around non-filter layers so anti-aliased edges
// are not cut off by integer rounding.
const aaPad = 2

// renderGroup draws g into pm, isolating it in a layer unless it only
// changes the coordinate system. A non-nil error means the subtree was
// skipped; pm is unchanged by it.
func renderGroup(g *tree.Group, ctx *Context, ts geom.Matrix, pm *pixmap.Pixmap) error {
	if g.BBox.IsEmpty() {
		return ErrInvalidBBox
	}
	if ctx.depth >= ctx.maxDepth {
		return fmt.Errorf("%w: limit %d", ErrTooDeep, ctx.maxDepth)
	}
	ctx.depth++
	defer func() { ctx.depth-- }()

	transform := ts.Multiply(g.Transform)

	if g.IsTransformOnly() {
		RenderNodes(g.Children, ctx, transform, pm)
		return nil
	}

	ibbox, shift, err := layerRect(g.BBox, transform, g.HasFilters(), ctx.maxBBox)
	if err != nil {
		return err
	}
	Logger().Debug("ggsvg: group layer", "id", g.ID, "rect", ibbox)

	layer, err := ctx.newLayer(ibbox.W, ibbox.H)
	if err != nil {
		return fmt.Errorf("%w: %dx%d: %w", ErrLayerAlloc, ibbox.W, ibbox.H, err)
	}

	transform = shift.Multiply(transform)
	RenderNodes(g.Children, ctx, transform, layer)

	if g.HasFilters() {
		fill := prepareFilterPaint(g.FilterFill, ctx, layer.Width(), layer.Height())
		stroke := prepareFilterPaint(g.FilterStroke, ctx, layer.Width(), layer.Height())
		for _, f := range g.Filters {
			applyFilter(f, ctx, transform, fill, stroke, layer)
		}
	}

	if g.ClipPath != nil {
		applyClipPath(g.ClipPath, g.ObjectBBox(), ctx, transform, layer)
	}

	if g.Mask != nil {
		applyMask(g.Mask, g.ObjectBBox(), ctx, transform, layer)
	}

	pm.DrawPixmap(ibbox.X, ibbox.Y, layer, pixmap.PixmapPaint{
		Opacity: g.Opacity,
		Blend:   g.BlendMode,
	})
	return nil
}

// layerRect maps an object-space bbox through ts and returns the integer
// device rectangle of the layer together with the translation that moves
// device space into layer space.
//
// Non-filter layers are padded by aaPad pixels per side before rounding;
// filter layers are not, since the filter region already bounds them. The
// result is clamped to bound. The shift keeps the fractional offset of the
// content relative to the layer origin.
func layerRect(bbox geom.Rect, ts geom.Matrix, hasFilters bool, bound geom.IntRect) (geom.IntRect, geom.Matrix, error) {
	dev, ok := bbox.Transform(ts)
	if !ok {
		return geom.IntRect{}, geom.Identity(), ErrDegenerateTransform
	}
	if !hasFilters {
		dev = dev.Outset(aaPad)
	}

	// Clamping before rounding gives the same result as rounding first and
	// keeps huge regions inside the integer range.
	dev = dev.Intersect(bound.ToRect())
	ir, ok := dev.RoundOut()
	if !ok {
		return geom.IntRect{}, geom.Identity(), ErrEmptyLayer
	}
	ir, ok = ir.Fit(bound)
	if !ok {
		return geom.IntRect{}, geom.Identity(), ErrEmptyLayer
	}
	return ir, geom.Translate(-float64(ir.X), -float64(ir.Y)), nil
}
