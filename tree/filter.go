package tree

import (
	"math"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

// Filter is a resolved filter effect. Rect and primitive subregions are in
// the user space of the filtered element.
type Filter struct {
	ID         string
	Rect       geom.Rect
	Primitives []Primitive
}

// ColorInterpolation is the color space a primitive operates in.
type ColorInterpolation uint8

const (
	SRGB ColorInterpolation = iota
	LinearRGB
)

// Primitive is one step of a filter.
type Primitive struct {
	// Subregion limits the primitive; nil means the whole filter region.
	Subregion          *geom.Rect
	ColorInterpolation ColorInterpolation
	// Result names the output so later primitives can reference it.
	Result string
	Kind   PrimitiveKind
}

// InputKind selects the image a primitive reads.
type InputKind uint8

const (
	// InputDefault is the previous primitive's result, or SourceGraphic for
	// the first primitive.
	InputDefault InputKind = iota
	InputSourceGraphic
	InputSourceAlpha
	InputFillPaint
	InputStrokePaint
	InputReference
)

// Input is a primitive input.
type Input struct {
	Kind InputKind
	// Name is the referenced result for InputReference.
	Name string
}

// PrimitiveKind is implemented by the primitive types below.
type PrimitiveKind interface {
	isPrimitive()
}

type GaussianBlur struct {
	In               Input
	StdDevX, StdDevY float64
}

type Offset struct {
	In     Input
	DX, DY float64
}

type Flood struct {
	Color pixmap.Color
}

// ColorMatrix applies a 4x5 row-major matrix to straight-alpha colors.
type ColorMatrix struct {
	In     Input
	Matrix [20]float64
}

// TransferKind is a feComponentTransfer function type.
type TransferKind uint8

const (
	TransferIdentity TransferKind = iota
	TransferTable
	TransferDiscrete
	TransferLinear
	TransferGamma
)

// TransferFunc maps one channel.
type TransferFunc struct {
	Kind        TransferKind
	TableValues []float64
	Slope       float64
	Intercept   float64
	Amplitude   float64
	Exponent    float64
	Offset      float64
}

type ComponentTransfer struct {
	In         Input
	R, G, B, A TransferFunc
}

// CompositeOperator is an feComposite operator.
type CompositeOperator uint8

const (
	CompositeOver CompositeOperator = iota
	CompositeIn
	CompositeOut
	CompositeAtop
	CompositeXor
	CompositeArithmetic
)

type Composite struct {
	In1, In2       Input
	Operator       CompositeOperator
	K1, K2, K3, K4 float64
}

type Blend struct {
	In1, In2 Input
	Mode     pixmap.BlendMode
}

type Merge struct {
	Inputs []Input
}

// MorphologyOperator is erode or dilate.
type MorphologyOperator uint8

const (
	Erode MorphologyOperator = iota
	Dilate
)

type Morphology struct {
	In               Input
	Operator         MorphologyOperator
	RadiusX, RadiusY float64
}

type DropShadow struct {
	In               Input
	DX, DY           float64
	StdDevX, StdDevY float64
	Color            pixmap.Color
}

// Tile repeats the input's subregion across the primitive subregion.
type Tile struct {
	In Input
}

func (*GaussianBlur) isPrimitive()      {}
func (*Offset) isPrimitive()            {}
func (*Flood) isPrimitive()             {}
func (*ColorMatrix) isPrimitive()       {}
func (*ComponentTransfer) isPrimitive() {}
func (*Composite) isPrimitive()         {}
func (*Blend) isPrimitive()             {}
func (*Merge) isPrimitive()             {}
func (*Morphology) isPrimitive()        {}
func (*DropShadow) isPrimitive()        {}
func (*Tile) isPrimitive()              {}

// IdentityMatrix is the feColorMatrix identity.
func IdentityMatrix() [20]float64 {
	return [20]float64{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SaturateMatrix returns the feColorMatrix type="saturate" matrix.
func SaturateMatrix(s float64) [20]float64 {
	s = max(0, s)
	return [20]float64{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotateMatrix returns the feColorMatrix type="hueRotate" matrix.
func HueRotateMatrix(degrees float64) [20]float64 {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return [20]float64{
		0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928, 0, 0,
		0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283, 0, 0,
		0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// LuminanceToAlphaMatrix returns the feColorMatrix type="luminanceToAlpha"
// matrix.
func LuminanceToAlphaMatrix() [20]float64 {
	return [20]float64{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0.2125, 0.7154, 0.0721, 0, 0,
	}
}
