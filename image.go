package ggsvg

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// drawImage places raster or nested vector content into the image's view
// rectangle. Content overflowing the view rectangle (slice) is clipped.
func drawImage(n *tree.Image, ctx *Context, ts geom.Matrix, pm *pixmap.Pixmap) {
	view := n.ViewRect
	if !view.HasArea() {
		return
	}

	var size geom.Size
	switch {
	case n.Raster != nil:
		b := n.Raster.Bounds()
		size = geom.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	case n.Tree != nil:
		size = n.Tree.Size
	default:
		return
	}
	if !size.IsValid() {
		return
	}

	// The layer covers the view rect on the target.
	ir, shift, err := layerRect(view, ts, false, geom.IntRect{W: pm.Width(), H: pm.Height()})
	if err != nil {
		return
	}
	layer, err := ctx.newLayer(ir.W, ir.H)
	if err != nil {
		Logger().Warn("ggsvg: image skipped", "id", n.ID, "err", err)
		return
	}

	fit := tree.ViewBoxTransform(geom.RectXYWH(0, 0, size.Width, size.Height), n.Aspect,
		geom.Size{Width: view.Width(), Height: view.Height()})
	toLayer := shift.Multiply(ts).Multiply(geom.Translate(view.MinX, view.MinY)).Multiply(fit)

	if n.Raster != nil {
		drawRaster(layer, n.Raster, toLayer, n.Rendering)
	} else {
		RenderNodes(n.Tree.Children, ctx, toLayer.Multiply(n.Tree.ViewBoxTransform()), layer)
	}

	clip, err := NewRectMask(ir.W, ir.H, shift.Multiply(ts), view)
	if err != nil {
		return
	}
	layer.ApplyMask(clip)
	pm.DrawPixmap(ir.X, ir.Y, layer, pixmap.DefaultPixmapPaint())
}

// drawRaster resamples img into dst. m maps image pixel space, with the
// origin at the image's top-left corner, onto dst.
func drawRaster(dst *pixmap.Pixmap, img image.Image, m geom.Matrix, rendering tree.ImageRendering) {
	b := img.Bounds()
	m = m.Multiply(geom.Translate(-float64(b.Min.X), -float64(b.Min.Y)))

	var interp draw.Interpolator = draw.CatmullRom
	if rendering == tree.OptimizeSpeed {
		interp = draw.NearestNeighbor
	}
	if m.IsTranslation() && m.C == float64(int(m.C)) && m.F == float64(int(m.F)) {
		// Pixel-aligned placement needs no resampling.
		r := b.Add(image.Pt(int(m.C), int(m.F)))
		draw.Draw(dst.Image(), r, img, b.Min, draw.Over)
		return
	}
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	interp.Transform(dst.Image(), s2d, img, b, draw.Over, nil)
}
