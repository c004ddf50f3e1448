// Package geom provides the geometric value types shared by the renderer:
// affine matrices, points, float and integer rectangles, and paths.
package geom

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Skew creates a skew matrix from two angles in radians.
func Skew(ax, ay float64) Matrix {
	return Matrix{A: 1, B: math.Tan(ax), D: math.Tan(ay), E: 1}
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PreTranslate returns m * Translate(x, y).
func (m Matrix) PreTranslate(x, y float64) Matrix {
	return m.Multiply(Translate(x, y))
}

// PreScale returns m * Scale(x, y).
func (m Matrix) PreScale(x, y float64) Matrix {
	return m.Multiply(Scale(x, y))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsInvertible reports whether the matrix is finite and has a usable inverse.
func (m Matrix) IsInvertible() bool {
	det := m.Determinant()
	return m.IsFinite() && !math.IsNaN(det) && math.Abs(det) > 1e-12
}

// Invert returns the inverse matrix. ok is false if the matrix is singular.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	if !m.IsInvertible() {
		return Identity(), false
	}
	invDet := 1.0 / m.Determinant()
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsFinite reports whether all components are finite.
func (m Matrix) IsFinite() bool {
	for _, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ScaleFactors returns the lengths of the transformed unit vectors.
func (m Matrix) ScaleFactors() (sx, sy float64) {
	return math.Hypot(m.A, m.D), math.Hypot(m.B, m.E)
}
