package raster

import (
	"testing"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

var red = Solid(pixmap.Pixel{R: 255, A: 255})

func newPixmap(t *testing.T, w, h int) *pixmap.Pixmap {
	t.Helper()
	pm, err := pixmap.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return pm
}

func TestFillPathFullCoverage(t *testing.T) {
	pm := newPixmap(t, 10, 10)
	FillPath(pm, geom.NewRectPath(geom.RectXYWH(0, 0, 10, 10)), geom.Identity(), geom.NonZero, true, red, pixmap.BlendNormal)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := pm.Pixel(x, y); got != (pixmap.Pixel{R: 255, A: 255}) {
				t.Fatalf("Pixel(%d, %d) = %+v, want opaque red", x, y, got)
			}
		}
	}
}

func TestFillPathTransform(t *testing.T) {
	pm := newPixmap(t, 10, 10)
	ts := geom.Translate(4, 4).Multiply(geom.Scale(2, 2))
	FillPath(pm, geom.NewRectPath(geom.RectXYWH(0, 0, 1, 1)), ts, geom.NonZero, true, red, pixmap.BlendNormal)

	if pm.Pixel(4, 4).A != 255 || pm.Pixel(5, 5).A != 255 {
		t.Error("transformed square not filled")
	}
	if pm.Pixel(3, 3).A != 0 || pm.Pixel(6, 6).A != 0 {
		t.Error("fill leaked outside the transformed square")
	}
}

func TestFillPathAntiAlias(t *testing.T) {
	rect := geom.NewRectPath(geom.RectXYWH(0.5, 0, 1, 4))

	aa := newPixmap(t, 4, 4)
	FillPath(aa, rect, geom.Identity(), geom.NonZero, true, red, pixmap.BlendNormal)
	if a := aa.Pixel(0, 1).A; a < 120 || a > 135 {
		t.Errorf("half-covered pixel alpha = %d, want about 128", a)
	}

	hard := newPixmap(t, 4, 4)
	FillPath(hard, rect, geom.Identity(), geom.NonZero, false, red, pixmap.BlendNormal)
	for x := 0; x < 2; x++ {
		if a := hard.Pixel(x, 1).A; a != 0 && a != 255 {
			t.Errorf("aliased pixel %d alpha = %d, want 0 or 255", x, a)
		}
	}
}

func TestFillRule(t *testing.T) {
	p := geom.NewPath()
	p.Rectangle(0, 0, 10, 10)
	p.Rectangle(3, 3, 4, 4)

	nonzero := newPixmap(t, 10, 10)
	FillPath(nonzero, p, geom.Identity(), geom.NonZero, true, red, pixmap.BlendNormal)
	if nonzero.Pixel(5, 5).A != 255 {
		t.Error("nonzero: inner square should be filled")
	}

	evenodd := newPixmap(t, 10, 10)
	FillPath(evenodd, p, geom.Identity(), geom.EvenOdd, true, red, pixmap.BlendNormal)
	if evenodd.Pixel(5, 5).A != 0 {
		t.Error("evenodd: inner square should be a hole")
	}
	if evenodd.Pixel(1, 1).A != 255 {
		t.Error("evenodd: outer ring should be filled")
	}
}

func TestFillPathOffCanvas(t *testing.T) {
	pm := newPixmap(t, 4, 4)
	FillPath(pm, geom.NewRectPath(geom.RectXYWH(-1e5, -1e5, 2e5, 2e5)), geom.Identity(), geom.NonZero, true, red, pixmap.BlendNormal)
	if pm.Pixel(2, 2).A != 255 {
		t.Error("huge rectangle did not cover the canvas")
	}
}

func TestFillMaskUnion(t *testing.T) {
	m, err := pixmap.NewMask(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	FillMask(m, geom.NewRectPath(geom.RectXYWH(0, 0, 4, 1)), geom.Identity(), geom.NonZero, true)
	FillMask(m, geom.NewRectPath(geom.RectXYWH(2, 0, 4, 1)), geom.Identity(), geom.NonZero, true)

	for x, want := range []uint8{255, 255, 255, 255, 255, 255, 0, 0, 0, 0} {
		if got := m.At(x, 0); got != want {
			t.Errorf("At(%d) = %d, want %d", x, got, want)
		}
	}
}
