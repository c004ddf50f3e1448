package scenefile

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Registered raster decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
)

// loadImage decodes the raster image at path. Decoded images are shared
// between all elements referencing the same file.
func (d *decoder) loadImage(path string) (image.Image, error) {
	if img, ok := d.images[path]; ok {
		return img, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.images[path] = img
	return img, nil
}

// decodeImage sniffs the content type before decoding so that non-image
// files are reported by type rather than as a decoder failure.
func decodeImage(buf []byte) (*image.RGBA, error) {
	if !filetype.IsImage(buf) {
		kind, _ := filetype.Match(buf)
		return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedImage, kind.MIME.Value)
	}
	img, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", ErrUnsupportedImage, format)
	}
	return clone.AsRGBA(img), nil
}
