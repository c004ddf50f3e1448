package filter

import (
	"testing"

	"github.com/gogpu/ggsvg/pixmap"
)

func TestColorMatrix(t *testing.T) {
	identity := [20]float64{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
	swapRB := [20]float64{
		0, 0, 1, 0, 0,
		0, 1, 0, 0, 0,
		1, 0, 0, 0, 0,
		0, 0, 0, 1, 0,
	}
	halfAlpha := [20]float64{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0.5, 0,
	}
	tests := []struct {
		name   string
		matrix [20]float64
		in     pixmap.Color
		want   pixmap.Pixel
	}{
		{"identity", identity, pixmap.RGBA(1, 0.5, 0, 1), pixmap.Pixel{R: 255, G: 128, B: 0, A: 255}},
		{"swap red and blue", swapRB, pixmap.RGB(1, 0, 0), pixmap.Pixel{R: 0, G: 0, B: 255, A: 255}},
		{"half alpha", halfAlpha, pixmap.RGB(0, 0, 1), pixmap.Pixel{R: 0, G: 0, B: 128, A: 128}},
		{"offset column", [20]float64{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0}, pixmap.Black, pixmap.Pixel{R: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPixmap(t, 2, 2, tt.in)
			ColorMatrix(p, tt.matrix)
			if got := p.Pixel(1, 1); !pixelApproxEqual(got, tt.want, 1) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComponentTransfer(t *testing.T) {
	p := createTestPixmap(t, 1, 1, pixmap.RGB(0.2, 0.4, 0.6))
	invert := func(v float64) float64 { return 1 - v }

	ComponentTransfer(p, invert, nil, nil, nil)

	got := p.Pixel(0, 0)
	want := pixmap.Pixel{R: 204, G: 102, B: 153, A: 255}
	if !pixelApproxEqual(got, want, 1) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLinearRGBRoundTrip(t *testing.T) {
	p := createTestPixmap(t, 1, 1, pixmap.RGB(0.5, 0.5, 0.5))

	ToLinearRGB(p)
	if got := p.Pixel(0, 0).R; got < 50 || got > 58 {
		t.Errorf("linear mid gray = %d, want about 55", got)
	}
	ToSRGB(p)
	if got := p.Pixel(0, 0); !pixelApproxEqual(got, pixmap.Pixel{R: 128, G: 128, B: 128, A: 255}, 2) {
		t.Errorf("round trip = %v", got)
	}
}
