package scenefile

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/gogpu/ggsvg/pixmap"
)

// ParseColor parses a CSS color: #rgb, #rrggbb, rgb(), rgba(), a named
// color or "transparent".
func ParseColor(s string) (pixmap.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "transparent":
		return pixmap.RGBA(0, 0, 0, 0), nil
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return pixmap.Color{}, invalid("color", s)
		}
		return pixmap.RGB(c.R, c.G, c.B), nil
	case strings.HasPrefix(v, "rgb"):
		return parseRGBFunc(v, s)
	}
	if c, ok := colornames.Map[v]; ok {
		return pixmap.RGB8(c.R, c.G, c.B), nil
	}
	return pixmap.Color{}, invalid("color", s)
}

func parseRGBFunc(v, orig string) (pixmap.Color, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return pixmap.Color{}, invalid("color", orig)
	}
	parts := strings.FieldsFunc(v[open+1:len(v)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return pixmap.Color{}, invalid("color", orig)
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		scale := 255.0
		if i == 3 {
			scale = 1
		}
		if pct, ok := strings.CutSuffix(p, "%"); ok {
			p = pct
			scale = 100
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return pixmap.Color{}, invalid("color", orig)
		}
		ch[i] = min(max(f/scale, 0), 1)
	}
	return pixmap.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}
