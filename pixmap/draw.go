package pixmap

import "image"

// PixmapPaint controls how DrawPixmap composites its source.
type PixmapPaint struct {
	Opacity float64
	Blend   BlendMode
}

// DefaultPixmapPaint is opaque source-over.
func DefaultPixmapPaint() PixmapPaint {
	return PixmapPaint{Opacity: 1, Blend: BlendNormal}
}

// DrawPixmap composites src onto p with its top-left corner at (x, y),
// pixel for pixel, scaling src by paint.Opacity and combining with
// paint.Blend. Only the overlap of the two pixmaps is touched.
func (p *Pixmap) DrawPixmap(x, y int, src *Pixmap, paint PixmapPaint) {
	op := OpacityByte(paint.Opacity)
	if op == 0 && !paint.Blend.AffectsTransparent() {
		return
	}
	dstRect := image.Rect(x, y, x+src.width, y+src.height).Intersect(p.Rect())
	if dstRect.Empty() {
		return
	}

	normal := paint.Blend == BlendNormal
	blendFn := paint.Blend.Blender()
	for dy := dstRect.Min.Y; dy < dstRect.Max.Y; dy++ {
		sRow := src.data[(dy-y)*src.width*4:]
		dRow := p.data[dy*p.width*4:]
		for dx := dstRect.Min.X; dx < dstRect.Max.X; dx++ {
			si := (dx - x) * 4
			di := dx * 4
			s := Pixel{R: sRow[si], G: sRow[si+1], B: sRow[si+2], A: sRow[si+3]}.Scale(op)
			if normal {
				if s.A == 0 {
					continue
				}
				if s.A == 255 {
					dRow[di], dRow[di+1], dRow[di+2], dRow[di+3] = s.R, s.G, s.B, s.A
					continue
				}
			}
			d := Pixel{R: dRow[di], G: dRow[di+1], B: dRow[di+2], A: dRow[di+3]}
			out := blendFn(s, d)
			dRow[di], dRow[di+1], dRow[di+2], dRow[di+3] = out.R, out.G, out.B, out.A
		}
	}
}

// ApplyMask multiplies every pixel of p by the coverage of m
// (destination-in). m must have the same size as p.
func (p *Pixmap) ApplyMask(m *Mask) {
	for i, c := range m.data[:p.width*p.height] {
		switch c {
		case 255:
			continue
		case 0:
			clear(p.data[i*4 : i*4+4])
		default:
			p.data[i*4] = MulDiv255(p.data[i*4], c)
			p.data[i*4+1] = MulDiv255(p.data[i*4+1], c)
			p.data[i*4+2] = MulDiv255(p.data[i*4+2], c)
			p.data[i*4+3] = MulDiv255(p.data[i*4+3], c)
		}
	}
}
