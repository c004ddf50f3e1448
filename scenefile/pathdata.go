package scenefile

import (
	"github.com/gogpu/ggsvg/geom"
)

// ParsePathData parses SVG path data ("M10 10 h20 a5 5 0 0 1 5 5 z").
// All commands, absolute and relative, are supported.
func ParsePathData(d string) (*geom.Path, error) {
	sc := &scanner{s: d}
	p := geom.NewPath()

	var (
		cmd      byte
		cur      geom.Point
		start    geom.Point
		ctrl     geom.Point // last control point, for S and T
		prevKind byte       // upper-case kind of the previous segment
	)
	for !sc.done() {
		c := sc.s[sc.pos]
		switch {
		case isCommand(c):
			cmd = c
			sc.pos++
		case cmd == 0:
			return nil, sc.errorf("path data must start with a command")
		case cmd == 'Z' || cmd == 'z':
			return nil, sc.errorf("unexpected %q after close", c)
		}

		rel := cmd >= 'a'
		var base geom.Point
		if rel {
			base = cur
		}
		point := func() (geom.Point, error) {
			var x, y float64
			if err := sc.numbers(&x, &y); err != nil {
				return geom.Point{}, err
			}
			return base.Add(geom.Pt(x, y)), nil
		}

		kind := cmd &^ 0x20 // upper case
		switch kind {
		case 'M':
			pt, err := point()
			if err != nil {
				return nil, err
			}
			p.MoveTo(pt.X, pt.Y)
			cur, start = pt, pt
			// Further coordinate pairs are implicit line-tos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			pt, err := point()
			if err != nil {
				return nil, err
			}
			p.LineTo(pt.X, pt.Y)
			cur = pt
		case 'H':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur.X = x
			p.LineTo(cur.X, cur.Y)
		case 'V':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur.Y = y
			p.LineTo(cur.X, cur.Y)
		case 'C', 'S':
			c1 := cur
			if kind == 'C' {
				pt, err := point()
				if err != nil {
					return nil, err
				}
				c1 = pt
			} else if prevKind == 'C' || prevKind == 'S' {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			c2, err := point()
			if err != nil {
				return nil, err
			}
			end, err := point()
			if err != nil {
				return nil, err
			}
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, cur = c2, end
		case 'Q', 'T':
			q := cur
			if kind == 'Q' {
				pt, err := point()
				if err != nil {
					return nil, err
				}
				q = pt
			} else if prevKind == 'Q' || prevKind == 'T' {
				q = cur.Mul(2).Sub(ctrl)
			}
			end, err := point()
			if err != nil {
				return nil, err
			}
			p.QuadTo(q.X, q.Y, end.X, end.Y)
			ctrl, cur = q, end
		case 'A':
			var rx, ry, rot float64
			if err := sc.numbers(&rx, &ry, &rot); err != nil {
				return nil, err
			}
			large, err := sc.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := sc.flag()
			if err != nil {
				return nil, err
			}
			end, err := point()
			if err != nil {
				return nil, err
			}
			p.ArcTo(rx, ry, rot, large, sweep, end.X, end.Y)
			cur = end
		case 'Z':
			p.Close()
			cur = start
		}
		prevKind = kind
	}
	return p, nil
}

func isCommand(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}
