package geom

import (
	"iter"

	"honnef.co/go/curve"
)

// LineCap is the shape of open subpath endpoints.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape drawn where two segments meet.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in user units.
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	MiterLimit float64

	// Dashes holds alternating dash and gap lengths. nil means solid.
	Dashes []float64

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultStroke returns a solid 1-unit stroke with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// NormalizeDashes applies the SVG dash array rules: an array with a negative
// entry or a non-positive sum disables dashing, and an odd-length array is
// repeated once.
func NormalizeDashes(dashes []float64) []float64 {
	if len(dashes) == 0 {
		return nil
	}
	sum := 0.0
	for _, d := range dashes {
		if d < 0 {
			return nil
		}
		sum += d
	}
	if sum <= 0 {
		return nil
	}
	if len(dashes)%2 == 1 {
		out := make([]float64, 0, len(dashes)*2)
		out = append(out, dashes...)
		return append(out, dashes...)
	}
	return dashes
}

// Stroke expands the outline of p under style into a fillable path.
// The result is filled with the nonzero rule. A non-positive width yields
// nil.
func (p *Path) Stroke(style Stroke, tolerance float64) *Path {
	if style.Width <= 0 || p.IsEmpty() {
		return nil
	}

	elems := p.curveElements()
	if dashes := NormalizeDashes(style.Dashes); dashes != nil {
		elems = curve.Dash(elems, style.DashOffset, dashes)
	}

	miter := style.MiterLimit
	if miter < 1 {
		miter = 1
	}
	cs := curve.Stroke{
		Width:      style.Width,
		StartCap:   curveCap(style.Cap),
		EndCap:     curveCap(style.Cap),
		Join:       curveJoin(style.Join),
		MiterLimit: miter,
	}
	stroked := curve.StrokePath(elems, cs, curve.StrokeOpts{}, tolerance)
	return pathFromCurve(stroked)
}

func curveCap(c LineCap) curve.Cap {
	switch c {
	case LineCapRound:
		return curve.RoundCap
	case LineCapSquare:
		return curve.SquareCap
	default:
		return curve.ButtCap
	}
}

func curveJoin(j LineJoin) curve.Join {
	switch j {
	case LineJoinRound:
		return curve.RoundJoin
	case LineJoinBevel:
		return curve.BevelJoin
	default:
		return curve.MiterJoin
	}
}

func toCurve(p Point) curve.Point {
	return curve.Point{X: p.X, Y: p.Y}
}

// curveElements adapts the path to the curve package's element stream.
func (p *Path) curveElements() iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for _, elem := range p.elements {
			var ce curve.PathElement
			switch e := elem.(type) {
			case MoveTo:
				ce = curve.PathElement{Kind: curve.MoveToKind, P0: toCurve(e.Point)}
			case LineTo:
				ce = curve.PathElement{Kind: curve.LineToKind, P0: toCurve(e.Point)}
			case QuadTo:
				ce = curve.PathElement{Kind: curve.QuadToKind, P0: toCurve(e.Control), P1: toCurve(e.Point)}
			case CubicTo:
				ce = curve.PathElement{
					Kind: curve.CubicToKind,
					P0:   toCurve(e.Control1),
					P1:   toCurve(e.Control2),
					P2:   toCurve(e.Point),
				}
			case Close:
				ce = curve.PathElement{Kind: curve.ClosePathKind}
			default:
				continue
			}
			if !yield(ce) {
				return
			}
		}
	}
}

func pathFromCurve(elems iter.Seq[curve.PathElement]) *Path {
	out := NewPath()
	for el := range elems {
		switch el.Kind {
		case curve.MoveToKind:
			out.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			out.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			out.QuadTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			out.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			out.Close()
		}
	}
	return out
}
