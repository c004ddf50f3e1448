package geom

import "math"

// ArcTo adds an SVG elliptical arc from the current point to (x, y),
// approximated by cubic Bezier curves. xRot is the ellipse rotation in
// degrees. Radii that are too small to span the endpoints are scaled up;
// a zero radius degrades to a straight line.
func (p *Path) ArcTo(rx, ry, xRot float64, large, sweep bool, x, y float64) {
	p.ensureStart()
	start := p.current
	if start == Pt(x, y) {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(x, y)
		return
	}

	phi := xRot * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Endpoint to center parameterization.
	dx2 := (start.X - x) / 2
	dy2 := (start.Y - y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (start.X+x)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (start.Y+y)/2

	theta := vectorAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := vectorAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	// At most a quarter turn per curve.
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	onEllipse := func(ux, uy float64) (float64, float64) {
		return cx + rx*ux*cosPhi - ry*uy*sinPhi, cy + rx*ux*sinPhi + ry*uy*cosPhi
	}
	for i := range n {
		a0 := theta + float64(i)*step
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)

		c1x, c1y := onEllipse(c0-k*s0, s0+k*c0)
		c2x, c2y := onEllipse(c1+k*s1, s1-k*c1)
		ex, ey := onEllipse(c1, s1)
		if i == n-1 {
			ex, ey = x, y
		}
		p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
	}
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// RoundedRectangle adds a closed rectangle with elliptical corners. Radii
// are clamped to half the side lengths.
func (p *Path) RoundedRectangle(x, y, w, h, rx, ry float64) {
	rx = min(math.Abs(rx), w/2)
	ry = min(math.Abs(ry), h/2)
	if rx == 0 || ry == 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.ArcTo(rx, ry, 0, false, true, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.ArcTo(rx, ry, 0, false, true, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.ArcTo(rx, ry, 0, false, true, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.ArcTo(rx, ry, 0, false, true, x+rx, y)
	p.Close()
}
