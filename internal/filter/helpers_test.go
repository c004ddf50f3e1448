package filter

import (
	"testing"

	"github.com/gogpu/ggsvg/pixmap"
)

// createTestPixmap creates a pixmap filled with the given color.
func createTestPixmap(t *testing.T, w, h int, c pixmap.Color) *pixmap.Pixmap {
	t.Helper()
	p, err := pixmap.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	p.Fill(c)
	return p
}

// pixelApproxEqual compares two pixels channel by channel with tolerance.
func pixelApproxEqual(a, b pixmap.Pixel, tolerance int) bool {
	return absi(int(a.R)-int(b.R)) <= tolerance &&
		absi(int(a.G)-int(b.G)) <= tolerance &&
		absi(int(a.B)-int(b.B)) <= tolerance &&
		absi(int(a.A)-int(b.A)) <= tolerance
}

func absi(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
