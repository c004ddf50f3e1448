package geom

// IntRect is an integer rectangle in device pixels.
type IntRect struct {
	X, Y int
	W, H int
}

// IntRectXYWH creates an integer rectangle.
func IntRectXYWH(x, y, w, h int) IntRect {
	return IntRect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r IntRect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r IntRect) Bottom() int { return r.Y + r.H }

// IsEmpty reports whether r covers no pixels.
func (r IntRect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Area returns W*H, or 0 for an empty rectangle.
func (r IntRect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and other. ok is false if they do not
// overlap.
func (r IntRect) Intersect(other IntRect) (IntRect, bool) {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return IntRect{}, false
	}
	return IntRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Fit clamps r to bound. It is idempotent for rectangles already inside
// bound and never grows r.
func (r IntRect) Fit(bound IntRect) (IntRect, bool) {
	return r.Intersect(bound)
}

// Contains reports whether other lies entirely inside r.
func (r IntRect) Contains(other IntRect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r IntRect) Translate(dx, dy int) IntRect {
	return IntRect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ToRect converts r to a float rectangle.
func (r IntRect) ToRect() Rect {
	return RectXYWH(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
}
