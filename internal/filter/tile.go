package filter

import (
	"image"

	"github.com/gogpu/ggsvg/pixmap"
)

// Tile fills dst by repeating the src pixels inside r, with the copy at r
// anchored at the same position in dst. src and dst must have the same size
// and may be the same pixmap.
func Tile(dst, src *pixmap.Pixmap, r image.Rectangle) {
	r = r.Intersect(src.Rect())
	if r.Empty() {
		clear(dst.Data())
		return
	}
	tile, err := src.CopyRect(r)
	if err != nil {
		return
	}
	tw, th := r.Dx(), r.Dy()
	w, h := dst.Width(), dst.Height()
	data, t := dst.Data(), tile.Data()
	for y := range h {
		ty := wrap(y-r.Min.Y, th)
		for x := range w {
			tx := wrap(x-r.Min.X, tw)
			copy(data[(y*w+x)*4:(y*w+x)*4+4], t[(ty*tw+tx)*4:])
		}
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
