package filter

import "github.com/gogpu/ggsvg/pixmap"

// Offset moves the content of pm by (dx, dy) pixels in place. Uncovered
// pixels become transparent.
func Offset(pm *pixmap.Pixmap, dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	w, h := pm.Width(), pm.Height()
	data := pm.Data()
	if dx >= w || dx <= -w || dy >= h || dy <= -h {
		clear(data)
		return
	}
	src := make([]uint8, len(data))
	copy(src, data)
	clear(data)

	x0, x1 := max(0, dx), min(w, w+dx)
	n := (x1 - x0) * 4
	for y := max(0, dy); y < min(h, h+dy); y++ {
		d := (y*w + x0) * 4
		s := ((y-dy)*w + x0 - dx) * 4
		copy(data[d:d+n], src[s:s+n])
	}
}
