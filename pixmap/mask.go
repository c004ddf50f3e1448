package pixmap

import "image"

// MaskType selects how a pixmap is reduced to coverage.
type MaskType uint8

const (
	// MaskLuminance uses the linearRGB luminance times alpha.
	MaskLuminance MaskType = iota
	// MaskAlpha uses the alpha channel.
	MaskAlpha
)

// Mask represents an alpha mask for compositing operations.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) (*Mask, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}, nil
}

// NewMaskFromPixmap reduces pm to coverage according to typ.
func NewMaskFromPixmap(pm *Pixmap, typ MaskType) *Mask {
	m := &Mask{width: pm.width, height: pm.height, data: make([]uint8, pm.width*pm.height)}
	src := pm.data
	for i := range m.data {
		r, g, b, a := src[i*4], src[i*4+1], src[i*4+2], src[i*4+3]
		if typ == MaskAlpha {
			m.data[i] = a
			continue
		}
		// Premultiplied components already carry the alpha factor.
		l := 0.2125*float64(r) + 0.7154*float64(g) + 0.0721*float64(b)
		m.data[i] = uint8(min(255, l+0.5))
	}
	return m
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the coverage at (x, y), or 0 if out of bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the coverage at (x, y).
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill sets all coverage values.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert replaces each value v with 255-v.
func (m *Mask) Invert() {
	for i, v := range m.data {
		m.data[i] = 255 - v
	}
}

// Intersect multiplies m by other. Both masks must have the same size.
func (m *Mask) Intersect(other *Mask) {
	for i, v := range other.data[:len(m.data)] {
		m.data[i] = MulDiv255(m.data[i], v)
	}
}

// Union combines m with other as coverage union: v + o*(255-v).
func (m *Mask) Union(other *Mask) {
	for i, o := range other.data[:len(m.data)] {
		v := m.data[i]
		m.data[i] = v + MulDiv255(o, 255-v)
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	data := make([]uint8, len(m.data))
	copy(data, m.data)
	return &Mask{width: m.width, height: m.height, data: data}
}

// Data returns the underlying coverage data.
func (m *Mask) Data() []uint8 {
	return m.data
}
