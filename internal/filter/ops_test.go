package filter

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/ggsvg/pixmap"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		dx, dy int
		at     image.Point
	}{
		{2, 1, image.Pt(3, 2)},
		{-1, -1, image.Pt(0, 0)},
		{0, 3, image.Pt(1, 4)},
	}
	for _, tt := range tests {
		p := createTestPixmap(t, 5, 5, pixmap.Transparent)
		p.SetPixel(1, 1, pixmap.Pixel{A: 255})

		Offset(p, tt.dx, tt.dy)

		if got := p.Pixel(tt.at.X, tt.at.Y).A; got != 255 {
			t.Errorf("Offset(%d, %d): alpha at %v = %d, want 255", tt.dx, tt.dy, tt.at, got)
		}
		if tt.at != image.Pt(1, 1) && p.Pixel(1, 1).A != 0 {
			t.Errorf("Offset(%d, %d): source pixel not cleared", tt.dx, tt.dy)
		}
	}
}

func TestOffsetBeyondBounds(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
	}{
		{"right", 10, 0},
		{"left", -4, 0},
		{"down", 0, 4},
		{"min int x", math.MinInt, 0},
		{"min int y", 0, math.MinInt},
		{"max int", math.MaxInt, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPixmap(t, 4, 4, pixmap.Black)
			Offset(p, tt.dx, tt.dy)
			for _, v := range p.Data() {
				if v != 0 {
					t.Fatal("pixmap not cleared")
				}
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := createTestPixmap(t, 1, 1, pixmap.RGBA(1, 0, 0, 1))
	b := createTestPixmap(t, 1, 1, pixmap.RGBA(0, 0, 1, 1))
	dst := createTestPixmap(t, 1, 1, pixmap.Transparent)

	// k2=k3=0.5 averages the inputs.
	Arithmetic(dst, a, b, 0, 0.5, 0.5, 0)

	want := pixmap.Pixel{R: 128, G: 0, B: 128, A: 255}
	if got := dst.Pixel(0, 0); !pixelApproxEqual(got, want, 1) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestArithmeticClampsToAlpha(t *testing.T) {
	a := createTestPixmap(t, 1, 1, pixmap.Transparent)
	dst := createTestPixmap(t, 1, 1, pixmap.Transparent)

	Arithmetic(dst, a, a, 0, 0, 0, 0.5)

	got := dst.Pixel(0, 0)
	if got.A != 128 || got.R > got.A {
		t.Errorf("got %v, want premultiplied with alpha 128", got)
	}
}

func TestMorphology(t *testing.T) {
	p := createTestPixmap(t, 11, 11, pixmap.Transparent)
	p.SetPixel(5, 5, pixmap.Pixel{A: 255})

	Dilate(p, 2)
	if p.Pixel(6, 5).A != 255 || p.Pixel(5, 6).A != 255 {
		t.Error("dilate did not grow the dot")
	}
	if p.Pixel(0, 0).A != 0 {
		t.Error("dilate reached the corner")
	}

	Erode(p, 2)
	if p.Pixel(5, 5).A != 255 {
		t.Error("erode removed the center")
	}
	if p.Pixel(9, 9).A != 0 {
		t.Error("erode left far pixels")
	}
}

func TestTile(t *testing.T) {
	p := createTestPixmap(t, 6, 6, pixmap.Transparent)
	p.SetPixel(2, 2, pixmap.Pixel{A: 255})

	Tile(p, p, image.Rect(2, 2, 4, 4))

	for _, pt := range []image.Point{{0, 0}, {2, 2}, {4, 4}, {0, 4}} {
		if p.Pixel(pt.X, pt.Y).A != 255 {
			t.Errorf("alpha at %v = %d, want 255", pt, p.Pixel(pt.X, pt.Y).A)
		}
	}
	if p.Pixel(1, 1).A != 0 || p.Pixel(3, 3).A != 0 {
		t.Error("tile copied the wrong pixels")
	}
}

func TestDropShadow(t *testing.T) {
	p := createTestPixmap(t, 10, 10, pixmap.Transparent)
	p.SetPixel(2, 2, pixmap.RGB(1, 1, 1).Premultiply())

	DropShadow(p, 3, 3, 0, 0, pixmap.RGB(1, 0, 0))

	if got := p.Pixel(2, 2); got != (pixmap.Pixel{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("source pixel = %v, want white", got)
	}
	if got := p.Pixel(5, 5); got != (pixmap.Pixel{R: 255, A: 255}) {
		t.Errorf("shadow pixel = %v, want red", got)
	}
}

func TestExtractAlpha(t *testing.T) {
	p := createTestPixmap(t, 1, 1, pixmap.RGBA(1, 1, 1, 0.5))
	ExtractAlpha(p)
	if got := p.Pixel(0, 0); got != (pixmap.Pixel{A: 128}) {
		t.Errorf("got %v", got)
	}
}
