package geom

import "math"

// Rect is an axis-aligned rectangle in floating-point coordinates.
//
// The zero-extent rectangle is valid; a rectangle whose minimum exceeds its
// maximum on either axis is empty (see EmptyRect).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectXYWH creates a rectangle from its origin and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// EmptyRect returns the empty sentinel: a rectangle that contains nothing
// and acts as the identity for Union.
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// IsEmpty reports whether r is inverted on either axis or contains NaN.
func (r Rect) IsEmpty() bool {
	return !(r.MinX <= r.MaxX && r.MinY <= r.MaxY)
}

// HasArea reports whether r is finite with positive width and height.
func (r Rect) HasArea() bool {
	return !r.IsEmpty() && r.Width() > 0 && r.Height() > 0 &&
		!math.IsInf(r.MinX, 0) && !math.IsInf(r.MinY, 0) &&
		!math.IsInf(r.MaxX, 0) && !math.IsInf(r.MaxY, 0)
}

// X returns the left edge.
func (r Rect) X() float64 { return r.MinX }

// Y returns the top edge.
func (r Rect) Y() float64 { return r.MinY }

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		MinX: min(r.MinX, p.X),
		MinY: min(r.MinY, p.Y),
		MaxX: max(r.MaxX, p.X),
		MaxY: max(r.MaxY, p.Y),
	}
}

// Intersect returns the overlap of r and other. The result is empty when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		MinX: max(r.MinX, other.MinX),
		MinY: max(r.MinY, other.MinY),
		MaxX: min(r.MaxX, other.MaxX),
		MaxY: min(r.MaxY, other.MaxY),
	}
}

// Outset grows the rectangle by d on every side.
func (r Rect) Outset(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Transform maps the four corners of r through m and returns their bounds.
// ok is false if m is not invertible or the result has no area.
func (r Rect) Transform(m Matrix) (Rect, bool) {
	if r.IsEmpty() || !m.IsInvertible() {
		return EmptyRect(), false
	}
	out := EmptyRect()
	for _, p := range [4]Point{
		{r.MinX, r.MinY}, {r.MaxX, r.MinY},
		{r.MaxX, r.MaxY}, {r.MinX, r.MaxY},
	} {
		out = out.UnionPoint(m.TransformPoint(p))
	}
	if !out.HasArea() {
		return EmptyRect(), false
	}
	return out, true
}

// BBoxTransform returns the matrix mapping the unit square onto r, used for
// objectBoundingBox units.
func (r Rect) BBoxTransform() Matrix {
	return Matrix{A: r.Width(), C: r.MinX, E: r.Height(), F: r.MinY}
}

// RoundOut returns the smallest integer rectangle enclosing r.
// ok is false if the result has no area or does not fit in 32 bits.
func (r Rect) RoundOut() (IntRect, bool) {
	if !r.HasArea() {
		return IntRect{}, false
	}
	x0, y0 := math.Floor(r.MinX), math.Floor(r.MinY)
	x1, y1 := math.Ceil(r.MaxX), math.Ceil(r.MaxY)
	if !fitsInt32(x0) || !fitsInt32(y0) || !fitsInt32(x1) || !fitsInt32(y1) {
		return IntRect{}, false
	}
	ir := IntRect{X: int(x0), Y: int(y0), W: int(x1 - x0), H: int(y1 - y0)}
	if ir.IsEmpty() {
		return IntRect{}, false
	}
	return ir, true
}

func fitsInt32(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
