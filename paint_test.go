package ggsvg

import (
	"testing"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

func gradientStops() []tree.Stop {
	return []tree.Stop{{Offset: 0, Color: red}, {Offset: 1, Color: blue}}
}

func fillWith(t *testing.T, paint tree.Paint, w, h int) *pixmap.Pixmap {
	t.Helper()
	f := rectFill(0, 0, float64(w), float64(h), red)
	f.Paint = paint
	pm := newPixmap(t, w, h)
	Render(newTree(float64(w), float64(h), f), geom.Identity(), pm)
	return pm
}

func TestLinearGradient(t *testing.T) {
	g := &tree.LinearGradient{
		BaseGradient: tree.BaseGradient{Transform: geom.Identity(), Stops: gradientStops()},
		X2:           100,
	}
	pm := fillWith(t, g, 100, 4)

	assertPixel(t, pm, 0, 1, pixmap.Pixel{R: 254, B: 1, A: 255}, 2)
	assertPixel(t, pm, 50, 1, pixmap.Pixel{R: 127, B: 128, A: 255}, 3)
	assertPixel(t, pm, 99, 1, pixmap.Pixel{R: 1, B: 254, A: 255}, 2)
}

func TestLinearGradientObjectBoundingBox(t *testing.T) {
	g := &tree.LinearGradient{
		BaseGradient: tree.BaseGradient{
			Units:     tree.ObjectBoundingBox,
			Transform: geom.Identity(),
			Stops:     []tree.Stop{{Offset: 0.5, Color: red}, {Offset: 0.5, Color: blue}},
		},
		X2: 1,
	}
	f := rectFill(20, 0, 40, 10, red)
	f.Paint = g
	pm := newPixmap(t, 80, 10)
	Render(newTree(80, 10, f), geom.Identity(), pm)

	assertPixel(t, pm, 30, 5, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 50, 5, pixmap.Pixel{B: 255, A: 255}, 0)
	assertPixel(t, pm, 70, 5, pixmap.Pixel{}, 0)
}

func TestGradientSpread(t *testing.T) {
	tests := []struct {
		spread tree.SpreadMethod
		want   pixmap.Pixel // at x = 15, a quarter past the end
	}{
		{tree.SpreadPad, pixmap.Pixel{B: 255, A: 255}},
		{tree.SpreadRepeat, pixmap.Pixel{R: 191, B: 64, A: 255}},
		{tree.SpreadReflect, pixmap.Pixel{R: 64, B: 191, A: 255}},
	}
	for _, tt := range tests {
		g := &tree.LinearGradient{
			BaseGradient: tree.BaseGradient{Transform: geom.Identity(), Spread: tt.spread, Stops: gradientStops()},
			X2:           10,
		}
		pm := fillWith(t, g, 20, 1)
		assertPixel(t, pm, 12, 0, tt.want, 4)
	}
}

func TestRadialGradient(t *testing.T) {
	g := &tree.RadialGradient{
		BaseGradient: tree.BaseGradient{Transform: geom.Identity(), Stops: gradientStops()},
		CX:           50, CY: 50, R: 50,
		FX: 50, FY: 50,
	}
	pm := fillWith(t, g, 100, 100)

	assertPixel(t, pm, 50, 50, pixmap.Pixel{R: 255, A: 255}, 6)
	assertPixel(t, pm, 0, 0, pixmap.Pixel{B: 255, A: 255}, 0)
}

func TestRadialGradientFocal(t *testing.T) {
	g := &tree.RadialGradient{
		BaseGradient: tree.BaseGradient{Transform: geom.Identity(), Stops: gradientStops()},
		CX:           50, CY: 50, R: 50,
		FX: 25, FY: 50,
	}
	pm := fillWith(t, g, 100, 100)

	// Red at the focus, blue on the end circle on both sides.
	assertPixel(t, pm, 25, 50, pixmap.Pixel{R: 255, A: 255}, 6)
	assertPixel(t, pm, 0, 50, pixmap.Pixel{B: 255, A: 255}, 12)
	assertPixel(t, pm, 98, 50, pixmap.Pixel{B: 255, A: 255}, 12)
}

func TestGradientDegenerate(t *testing.T) {
	single := &tree.LinearGradient{
		BaseGradient: tree.BaseGradient{Transform: geom.Identity(), Stops: []tree.Stop{{Color: green}}},
		X2:           10,
	}
	assertPixel(t, fillWith(t, single, 4, 4), 2, 2, pixmap.Pixel{G: 255, A: 255}, 0)

	zeroLength := &tree.LinearGradient{
		BaseGradient: tree.BaseGradient{Transform: geom.Identity(), Stops: gradientStops()},
	}
	assertPixel(t, fillWith(t, zeroLength, 4, 4), 2, 2, pixmap.Pixel{B: 255, A: 255}, 0)

	noStops := &tree.RadialGradient{BaseGradient: tree.BaseGradient{Transform: geom.Identity()}, R: 5}
	assertPixel(t, fillWith(t, noStops, 4, 4), 2, 2, pixmap.Pixel{}, 0)
}

func TestGradientStopAlpha(t *testing.T) {
	g := &tree.LinearGradient{
		BaseGradient: tree.BaseGradient{
			Transform: geom.Identity(),
			Stops:     []tree.Stop{{Color: red.WithAlpha(0.5)}, {Offset: 1, Color: red.WithAlpha(0.5)}},
		},
		X2: 4,
	}
	assertPixel(t, fillWith(t, g, 4, 4), 2, 2, pixmap.Pixel{R: 128, A: 128}, 1)
}

func TestPaintOpacity(t *testing.T) {
	f := rectFill(0, 0, 4, 4, red)
	f.Opacity = 0.5
	pm := newPixmap(t, 4, 4)
	Render(newTree(4, 4, f), geom.Identity(), pm)
	assertPixel(t, pm, 2, 2, pixmap.Pixel{R: 128, A: 128}, 1)
}

func TestPattern(t *testing.T) {
	p := &tree.Pattern{
		Transform: geom.Identity(),
		Rect:      geom.RectXYWH(0, 0, 10, 10),
		Children:  []tree.Node{rectFill(0, 0, 5, 5, red)},
	}
	pm := fillWith(t, p, 30, 30)

	assertPixel(t, pm, 2, 2, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 7, 7, pixmap.Pixel{}, 0)
	assertPixel(t, pm, 12, 12, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 22, 3, pixmap.Pixel{R: 255, A: 255}, 0)
}

func TestPatternScaled(t *testing.T) {
	p := &tree.Pattern{
		Transform: geom.Identity(),
		Rect:      geom.RectXYWH(0, 0, 10, 10),
		Children:  []tree.Node{rectFill(0, 0, 5, 5, red)},
	}
	f := rectFill(0, 0, 20, 20, red)
	f.Paint = p
	pm := newPixmap(t, 40, 40)
	Render(newTree(40, 40, f), geom.Scale(2, 2), pm)

	assertPixel(t, pm, 8, 8, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 12, 12, pixmap.Pixel{}, 0)
	assertPixel(t, pm, 22, 22, pixmap.Pixel{R: 255, A: 255}, 0)
}

func TestStroke(t *testing.T) {
	line := func(width float64, dashes []float64) *tree.StrokePath {
		p := geom.NewPath()
		p.MoveTo(0, 10)
		p.LineTo(40, 10)
		return &tree.StrokePath{
			Path: p,
			Stroke: tree.Stroke{
				Paint:      tree.Color(red),
				Opacity:    1,
				Width:      width,
				MiterLimit: 4,
				Dasharray:  dashes,
			},
			AntiAlias: true,
		}
	}

	t.Run("solid", func(t *testing.T) {
		pm := newPixmap(t, 40, 20)
		Render(newTree(40, 20, line(4, nil)), geom.Identity(), pm)
		assertPixel(t, pm, 5, 9, pixmap.Pixel{R: 255, A: 255}, 0)
		assertPixel(t, pm, 35, 10, pixmap.Pixel{R: 255, A: 255}, 0)
		assertPixel(t, pm, 5, 13, pixmap.Pixel{}, 0)
	})
	t.Run("zero width", func(t *testing.T) {
		pm := newPixmap(t, 40, 20)
		Render(newTree(40, 20, line(0, nil)), geom.Identity(), pm)
		for _, v := range pm.Data() {
			if v != 0 {
				t.Fatal("zero-width stroke drew pixels")
			}
		}
	})
	t.Run("dashed", func(t *testing.T) {
		pm := newPixmap(t, 40, 20)
		Render(newTree(40, 20, line(4, []float64{10, 10})), geom.Identity(), pm)
		assertPixel(t, pm, 5, 10, pixmap.Pixel{R: 255, A: 255}, 0)
		assertPixel(t, pm, 15, 10, pixmap.Pixel{}, 0)
		assertPixel(t, pm, 25, 10, pixmap.Pixel{R: 255, A: 255}, 0)
	})
}
