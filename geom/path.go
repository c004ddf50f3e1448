package geom

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FillRule selects how path winding maps to coverage.
type FillRule uint8

const (
	// NonZero fills regions with a nonzero winding number.
	NonZero FillRule = iota
	// EvenOdd fills regions with an odd winding number.
	EvenOdd
)

// String returns the SVG keyword of the rule.
func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Path is an immutable-after-construction sequence of path elements.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// NewRectPath returns a closed path tracing r clockwise.
func NewRectPath(r Rect) *Path {
	p := NewPath()
	p.Rectangle(r.MinX, r.MinY, r.Width(), r.Height())
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ensureStart()
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureStart()
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureStart()
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	if _, ok := p.elements[len(p.elements)-1].(Close); ok {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// ensureStart inserts an implicit MoveTo to the current point when a drawing
// command follows a Close or starts the path.
func (p *Path) ensureStart() {
	if len(p.elements) == 0 {
		p.elements = append(p.elements, MoveTo{Point: p.current})
		p.start = p.current
		return
	}
	if _, ok := p.elements[len(p.elements)-1].(Close); ok {
		p.elements = append(p.elements, MoveTo{Point: p.current})
		p.start = p.current
	}
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the end point of the last element.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no drawing segments.
func (p *Path) IsEmpty() bool {
	if p == nil {
		return true
	}
	for _, e := range p.elements {
		switch e.(type) {
		case LineTo, QuadTo, CubicTo:
			return false
		}
	}
	return true
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds a closed ellipse to the path using cubic Bezier curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case Close:
			result.elements = append(result.elements, Close{})
		}
	}
	result.start = m.TransformPoint(p.start)
	result.current = m.TransformPoint(p.current)
	return result
}

// Bounds returns the exact bounding box of the path geometry, including
// curve extrema. An empty path yields EmptyRect.
func (p *Path) Bounds() Rect {
	b := EmptyRect()
	var cur Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			cur = e.Point
			b = b.UnionPoint(cur)
		case LineTo:
			cur = e.Point
			b = b.UnionPoint(cur)
		case QuadTo:
			b = b.UnionPoint(e.Point)
			for _, t := range quadExtrema(cur, e.Control, e.Point) {
				b = b.UnionPoint(evalQuad(cur, e.Control, e.Point, t))
			}
			cur = e.Point
		case CubicTo:
			b = b.UnionPoint(e.Point)
			for _, t := range cubicExtrema(cur, e.Control1, e.Control2, e.Point) {
				b = b.UnionPoint(evalCubic(cur, e.Control1, e.Control2, e.Point, t))
			}
			cur = e.Point
		}
	}
	return b
}

func evalQuad(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return p0.Mul(mt * mt).Add(p1.Mul(2 * mt * t)).Add(p2.Mul(t * t))
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	return p0.Mul(mt * mt * mt).
		Add(p1.Mul(3 * mt * mt * t)).
		Add(p2.Mul(3 * mt * t * t)).
		Add(p3.Mul(t * t * t))
}

// quadExtrema returns parameters in (0, 1) where the derivative of either
// coordinate vanishes.
func quadExtrema(p0, p1, p2 Point) []float64 {
	var ts []float64
	for _, c := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		d := c[0] - 2*c[1] + c[2]
		if d == 0 {
			continue
		}
		if t := (c[0] - c[1]) / d; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

func cubicExtrema(p0, p1, p2, p3 Point) []float64 {
	var ts []float64
	for _, c := range [2][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// Derivative coefficients: a t^2 + b t + c.
		a := -c[0] + 3*c[1] - 3*c[2] + c[3]
		b := 2 * (c[0] - 2*c[1] + c[2])
		cc := c[1] - c[0]
		for _, t := range solveQuadratic(a, b, cc) {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

func solveQuadratic(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}
