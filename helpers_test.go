package ggsvg

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

var (
	red   = pixmap.RGB(1, 0, 0)
	green = pixmap.RGB(0, 1, 0)
	blue  = pixmap.RGB(0, 0, 1)
	white = pixmap.RGB(1, 1, 1)
)

func newPixmap(t *testing.T, w, h int) *pixmap.Pixmap {
	t.Helper()
	pm, err := pixmap.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return pm
}

// rectFill returns an anti-aliased, opaque nonzero fill of the rectangle.
func rectFill(x, y, w, h float64, c pixmap.Color) *tree.FillPath {
	return &tree.FillPath{
		Path:      geom.NewRectPath(geom.RectXYWH(x, y, w, h)),
		Paint:     tree.Color(c),
		Opacity:   1,
		Rule:      geom.NonZero,
		AntiAlias: true,
	}
}

func newTree(w, h float64, children ...tree.Node) *tree.Tree {
	return &tree.Tree{
		Size:     geom.Size{Width: w, Height: h},
		Children: children,
	}
}

// captureLog installs a debug-level text logger for the duration of the
// test and returns its output buffer.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func pixelNear(a, b pixmap.Pixel, tolerance int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff <= tolerance && diff >= -tolerance
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func assertPixel(t *testing.T, pm *pixmap.Pixmap, x, y int, want pixmap.Pixel, tolerance int) {
	t.Helper()
	if got := pm.Pixel(x, y); !pixelNear(got, want, tolerance) {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

func assertSameData(t *testing.T, got, want *pixmap.Pixmap, tolerance int) {
	t.Helper()
	g, w := got.Data(), want.Data()
	for i := range g {
		diff := int(g[i]) - int(w[i])
		if diff > tolerance || diff < -tolerance {
			t.Fatalf("byte %d (pixel %d) = %d, want %d", i, i/4, g[i], w[i])
		}
	}
}
