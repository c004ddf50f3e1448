package filter

import "github.com/gogpu/ggsvg/pixmap"

// DropShadow draws a blurred, offset and colorized copy of the alpha of pm
// beneath pm, in place.
//
// The steps are:
//  1. Fill the shadow with c scaled by the source alpha.
//  2. Blur the shadow with (sigmaX, sigmaY).
//  3. Offset it by (dx, dy).
//  4. Composite the source over the shadow.
func DropShadow(pm *pixmap.Pixmap, dx, dy int, sigmaX, sigmaY float64, c pixmap.Color) {
	shadow := pm.Clone()
	Colorize(shadow, c)
	Blur(shadow, sigmaX, sigmaY)
	Offset(shadow, dx, dy)
	shadow.DrawPixmap(0, 0, pm, pixmap.DefaultPixmapPaint())
	copy(pm.Data(), shadow.Data())
}

// Colorize replaces the color of every pixel with c, keeping the pixel
// alpha as coverage.
func Colorize(pm *pixmap.Pixmap, c pixmap.Color) {
	px := c.Premultiply()
	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		a := data[i+3]
		data[i] = pixmap.MulDiv255(px.R, a)
		data[i+1] = pixmap.MulDiv255(px.G, a)
		data[i+2] = pixmap.MulDiv255(px.B, a)
		data[i+3] = pixmap.MulDiv255(px.A, a)
	}
}

// ExtractAlpha keeps the alpha channel of pm and sets the color to black.
func ExtractAlpha(pm *pixmap.Pixmap) {
	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2] = 0, 0, 0
	}
}
