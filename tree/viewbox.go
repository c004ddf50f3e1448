package tree

import (
	"strings"

	"github.com/gogpu/ggsvg/geom"
)

// Align is the preserveAspectRatio alignment.
type Align uint8

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = [...]string{
	AlignNone:     "none",
	AlignXMinYMin: "xMinYMin",
	AlignXMidYMin: "xMidYMin",
	AlignXMaxYMin: "xMaxYMin",
	AlignXMinYMid: "xMinYMid",
	AlignXMidYMid: "xMidYMid",
	AlignXMaxYMid: "xMaxYMid",
	AlignXMinYMax: "xMinYMax",
	AlignXMidYMax: "xMidYMax",
	AlignXMaxYMax: "xMaxYMax",
}

// AspectRatio is a parsed preserveAspectRatio value.
type AspectRatio struct {
	Align Align
	Slice bool
}

// DefaultAspectRatio is "xMidYMid meet".
func DefaultAspectRatio() AspectRatio {
	return AspectRatio{Align: AlignXMidYMid}
}

// ParseAspectRatio parses "<align> [meet|slice]".
func ParseAspectRatio(s string) (AspectRatio, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return DefaultAspectRatio(), false
	}
	ar := AspectRatio{}
	found := false
	for i, name := range alignNames {
		if name == fields[0] {
			ar.Align = Align(i)
			found = true
			break
		}
	}
	if !found {
		return DefaultAspectRatio(), false
	}
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			ar.Slice = true
		default:
			return DefaultAspectRatio(), false
		}
	}
	return ar, true
}

// ViewBox is a view box rectangle with its aspect ratio policy.
type ViewBox struct {
	Rect   geom.Rect
	Aspect AspectRatio
}

// Transform returns the matrix mapping the view box onto a viewport of the
// given size at the origin. An invalid view box yields the identity.
func (vb ViewBox) Transform(size geom.Size) geom.Matrix {
	return ViewBoxTransform(vb.Rect, vb.Aspect, size)
}

// ViewBoxTransform maps view onto a viewport of the given size.
func ViewBoxTransform(view geom.Rect, aspect AspectRatio, size geom.Size) geom.Matrix {
	if !view.HasArea() || !size.IsValid() {
		return geom.Identity()
	}
	sx := size.Width / view.Width()
	sy := size.Height / view.Height()

	if aspect.Align == AlignNone {
		return geom.Scale(sx, sy).Multiply(geom.Translate(-view.MinX, -view.MinY))
	}

	s := min(sx, sy)
	if aspect.Slice {
		s = max(sx, sy)
	}
	x := -view.MinX * s
	y := -view.MinY * s
	w := size.Width - view.Width()*s
	h := size.Height - view.Height()*s

	switch aspect.Align {
	case AlignXMidYMin, AlignXMidYMid, AlignXMidYMax:
		x += w / 2
	case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
		x += w
	}
	switch aspect.Align {
	case AlignXMinYMid, AlignXMidYMid, AlignXMaxYMid:
		y += h / 2
	case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
		y += h
	}
	return geom.Matrix{A: s, C: x, E: s, F: y}
}

// FitRect returns the rectangle that content of the given size occupies
// when placed into dst under aspect.
func FitRect(content geom.Size, dst geom.Rect, aspect AspectRatio) geom.Rect {
	if aspect.Align == AlignNone || !content.IsValid() {
		return dst
	}
	m := ViewBoxTransform(geom.RectXYWH(0, 0, content.Width, content.Height), aspect,
		geom.Size{Width: dst.Width(), Height: dst.Height()})
	r, ok := geom.RectXYWH(0, 0, content.Width, content.Height).Transform(geom.Translate(dst.MinX, dst.MinY).Multiply(m))
	if !ok {
		return dst
	}
	return r
}
