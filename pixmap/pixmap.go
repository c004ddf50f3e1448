// Package pixmap provides premultiplied RGBA8 pixel buffers, A8 coverage
// masks, blend modes and the pixmap-onto-pixmap compositing primitive.
package pixmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// MaxPixels bounds the area of a single pixmap or mask.
const MaxPixels = 1 << 28

// ErrInvalidSize is returned when a buffer would have a non-positive or
// excessive size.
var ErrInvalidSize = errors.New("pixmap: invalid size")

// Pixmap is a rectangular buffer of premultiplied RGBA8 pixels.
// The memory layout matches image.RGBA.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// New creates a transparent pixmap with the given dimensions.
func New(width, height int) (*Pixmap, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// FromImage copies img into a new pixmap.
func FromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	pm, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(pm.Image(), pm.Image().Bounds(), img, b.Min, draw.Src)
	return pm, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Rect returns the pixmap bounds with origin (0, 0).
func (p *Pixmap) Rect() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Pixel returns the pixel at (x, y), or transparent if out of bounds.
func (p *Pixmap) Pixel(x, y int) Pixel {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Pixel{}
	}
	i := (y*p.width + x) * 4
	return Pixel{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// SetPixel stores a premultiplied pixel at (x, y).
func (p *Pixmap) SetPixel(x, y int, px Pixel) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i], p.data[i+1], p.data[i+2], p.data[i+3] = px.R, px.G, px.B, px.A
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c Color) {
	px := c.Premultiply()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i], p.data[i+1], p.data[i+2], p.data[i+3] = px.R, px.G, px.B, px.A
	}
}

// Clear makes every pixel transparent.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// ClearOutside makes every pixel outside r transparent.
func (p *Pixmap) ClearOutside(r image.Rectangle) {
	r = r.Intersect(p.Rect())
	for y := 0; y < p.height; y++ {
		row := p.data[y*p.width*4 : (y+1)*p.width*4]
		if y < r.Min.Y || y >= r.Max.Y {
			clear(row)
			continue
		}
		clear(row[:r.Min.X*4])
		clear(row[r.Max.X*4:])
	}
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// CopyRect returns a new pixmap holding the pixels of r.
func (p *Pixmap) CopyRect(r image.Rectangle) (*Pixmap, error) {
	out, err := New(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(out.Image(), out.Image().Bounds(), p.Image(), r.Min, draw.Src)
	return out, nil
}

// Image returns an *image.RGBA view sharing the pixmap memory.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   p.Rect(),
	}
}

// EncodePNG writes the pixmap as a PNG image.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.Image())
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	px := p.Pixel(x, y)
	return color.RGBA{R: px.R, G: px.G, B: px.B, A: px.A}
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.Rect()
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
