package scenefile

import (
	"math"
	"strings"

	"github.com/gogpu/ggsvg/geom"
)

// ParseTransform parses an SVG transform list such as
// "translate(10 20) rotate(45 5 5) scale(2)". The leftmost transform is
// the outermost.
func ParseTransform(s string) (geom.Matrix, error) {
	m := geom.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return geom.Identity(), invalid("transform", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumbers(rest[open+1 : end])
		if err != nil {
			return geom.Identity(), invalid("transform", s)
		}
		t, ok := transformFunc(name, args)
		if !ok {
			return geom.Identity(), invalid("transform", s)
		}
		m = m.Multiply(t)
		rest = strings.TrimLeft(rest[end+1:], " \t\n\r,")
	}
	return m, nil
}

func transformFunc(name string, a []float64) (geom.Matrix, bool) {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	switch {
	case name == "matrix" && len(a) == 6:
		return geom.Matrix{A: a[0], B: a[2], C: a[4], D: a[1], E: a[3], F: a[5]}, true
	case name == "translate" && len(a) == 1:
		return geom.Translate(a[0], 0), true
	case name == "translate" && len(a) == 2:
		return geom.Translate(a[0], a[1]), true
	case name == "scale" && len(a) == 1:
		return geom.Scale(a[0], a[0]), true
	case name == "scale" && len(a) == 2:
		return geom.Scale(a[0], a[1]), true
	case name == "rotate" && len(a) == 1:
		return geom.Rotate(rad(a[0])), true
	case name == "rotate" && len(a) == 3:
		return geom.Translate(a[1], a[2]).
			Multiply(geom.Rotate(rad(a[0]))).
			Multiply(geom.Translate(-a[1], -a[2])), true
	case name == "skewX" && len(a) == 1:
		return geom.Skew(rad(a[0]), 0), true
	case name == "skewY" && len(a) == 1:
		return geom.Skew(0, rad(a[0])), true
	}
	return geom.Matrix{}, false
}
