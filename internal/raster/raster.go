// Package raster converts paths into pixel coverage and paints it into
// pixmaps and masks.
//
// Coverage is computed by the freetype span rasterizer; this package adds
// the affine transform, fill rule selection, shading and blending.
package raster

import (
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

// coordLimit keeps device coordinates inside the 26.6 fixed-point range.
const coordLimit = 1 << 24

// Shader produces premultiplied colors for a run of pixels.
type Shader interface {
	// ShadeRow fills dst with the colors of pixels (x, y) .. (x+len(dst)-1, y).
	// Pixel centers are at half-integer coordinates.
	ShadeRow(x, y int, dst []pixmap.Pixel)
}

// Solid is a Shader painting a single premultiplied color.
type Solid pixmap.Pixel

// ShadeRow implements Shader.
func (s Solid) ShadeRow(_, _ int, dst []pixmap.Pixel) {
	for i := range dst {
		dst[i] = pixmap.Pixel(s)
	}
}

// FillPath fills p, transformed by ts, into dst using sh for color and mode
// for compositing.
func FillPath(dst *pixmap.Pixmap, p *geom.Path, ts geom.Matrix, rule geom.FillRule, antiAlias bool, sh Shader, mode pixmap.BlendMode) {
	if p.IsEmpty() || !ts.IsFinite() {
		return
	}
	r := raster.NewRasterizer(dst.Width(), dst.Height())
	r.UseNonZeroWinding = rule == geom.NonZero
	addPath(r, p, ts)

	painter := &pixmapPainter{
		dst:       dst,
		shader:    sh,
		antiAlias: antiAlias,
		normal:    mode == pixmap.BlendNormal,
		blend:     mode.Blender(),
	}
	r.Rasterize(painter)
}

// FillMask adds the coverage of p, transformed by ts, to m. Existing
// coverage is combined with the new one as a union.
func FillMask(m *pixmap.Mask, p *geom.Path, ts geom.Matrix, rule geom.FillRule, antiAlias bool) {
	if p.IsEmpty() || !ts.IsFinite() {
		return
	}
	r := raster.NewRasterizer(m.Width(), m.Height())
	r.UseNonZeroWinding = rule == geom.NonZero
	addPath(r, p, ts)
	r.Rasterize(&maskPainter{dst: m, antiAlias: antiAlias})
}

// addPath feeds the transformed path into the rasterizer, closing every
// subpath since fills are implicitly closed.
func addPath(r *raster.Rasterizer, p *geom.Path, ts geom.Matrix) {
	var start, cur fixed.Point26_6
	open := false
	closeSub := func() {
		if open && cur != start {
			r.Add1(start)
		}
		cur = start
		open = false
	}
	pt := func(q geom.Point) fixed.Point26_6 {
		return toFixed(ts.TransformPoint(q))
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case geom.MoveTo:
			closeSub()
			start = pt(e.Point)
			cur = start
			r.Start(start)
			open = true
		case geom.LineTo:
			cur = pt(e.Point)
			r.Add1(cur)
		case geom.QuadTo:
			cur = pt(e.Point)
			r.Add2(pt(e.Control), cur)
		case geom.CubicTo:
			cur = pt(e.Point)
			r.Add3(pt(e.Control1), pt(e.Control2), cur)
		case geom.Close:
			closeSub()
		}
	}
	closeSub()
}

func toFixed(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed1(p.X), Y: toFixed1(p.Y)}
}

func toFixed1(v float64) fixed.Int26_6 {
	if math.IsNaN(v) {
		return 0
	}
	v = max(-coordLimit, min(coordLimit, v))
	return fixed.Int26_6(math.Round(v * 64))
}

// coverage converts a span alpha (0..0xffff) to 0..255.
func coverage(alpha uint32, antiAlias bool) uint8 {
	if !antiAlias {
		if alpha >= 0x8000 {
			return 255
		}
		return 0
	}
	return uint8(alpha >> 8)
}

// clipSpan restricts a span to [0, w) x [0, h).
func clipSpan(s raster.Span, w, h int) (raster.Span, bool) {
	if s.Y < 0 || s.Y >= h {
		return s, false
	}
	s.X0 = max(s.X0, 0)
	s.X1 = min(s.X1, w)
	return s, s.X0 < s.X1
}

type pixmapPainter struct {
	dst       *pixmap.Pixmap
	shader    Shader
	antiAlias bool
	normal    bool
	blend     func(src, dst pixmap.Pixel) pixmap.Pixel
	row       []pixmap.Pixel
}

func (pp *pixmapPainter) Paint(ss []raster.Span, _ bool) {
	w, h := pp.dst.Width(), pp.dst.Height()
	data := pp.dst.Data()
	for _, s := range ss {
		s, ok := clipSpan(s, w, h)
		if !ok {
			continue
		}
		cov := coverage(s.Alpha, pp.antiAlias)
		if cov == 0 {
			continue
		}
		n := s.X1 - s.X0
		if cap(pp.row) < n {
			pp.row = make([]pixmap.Pixel, n)
		}
		row := pp.row[:n]
		pp.shader.ShadeRow(s.X0, s.Y, row)

		i := (s.Y*w + s.X0) * 4
		for _, c := range row {
			c = c.Scale(cov)
			if pp.normal && c.A == 255 {
				data[i], data[i+1], data[i+2], data[i+3] = c.R, c.G, c.B, c.A
			} else if !pp.normal || c.A != 0 {
				d := pixmap.Pixel{R: data[i], G: data[i+1], B: data[i+2], A: data[i+3]}
				out := pp.blend(c, d)
				data[i], data[i+1], data[i+2], data[i+3] = out.R, out.G, out.B, out.A
			}
			i += 4
		}
	}
}

type maskPainter struct {
	dst       *pixmap.Mask
	antiAlias bool
}

func (mp *maskPainter) Paint(ss []raster.Span, _ bool) {
	w, h := mp.dst.Width(), mp.dst.Height()
	data := mp.dst.Data()
	for _, s := range ss {
		s, ok := clipSpan(s, w, h)
		if !ok {
			continue
		}
		cov := coverage(s.Alpha, mp.antiAlias)
		if cov == 0 {
			continue
		}
		row := data[s.Y*w+s.X0 : s.Y*w+s.X1]
		for i, v := range row {
			row[i] = v + pixmap.MulDiv255(cov, 255-v)
		}
	}
}
