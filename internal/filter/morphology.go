package filter

import (
	"github.com/anthonynsimon/bild/effect"

	"github.com/gogpu/ggsvg/pixmap"
)

// Dilate replaces every pixel of pm by the component-wise maximum of its
// neighborhood of the given radius.
func Dilate(pm *pixmap.Pixmap, radius float64) {
	if radius <= 0 {
		return
	}
	replace(pm, effect.Dilate(pm.Image(), radius).Pix)
}

// Erode replaces every pixel of pm by the component-wise minimum of its
// neighborhood of the given radius.
func Erode(pm *pixmap.Pixmap, radius float64) {
	if radius <= 0 {
		return
	}
	replace(pm, effect.Erode(pm.Image(), radius).Pix)
}

func replace(pm *pixmap.Pixmap, pix []uint8) {
	copy(pm.Data(), pix)
}
