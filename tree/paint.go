package tree

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

// Paint is one of Color, *LinearGradient, *RadialGradient or *Pattern.
type Paint interface {
	isPaint()
}

// Color is a solid color paint.
type Color pixmap.Color

func (Color) isPaint() {}

// Units selects the coordinate system of a paint server, clip path or mask.
type Units uint8

const (
	UserSpaceOnUse Units = iota
	ObjectBoundingBox
)

// SpreadMethod controls gradient behavior outside [0, 1].
type SpreadMethod uint8

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// Stop is a gradient color stop. Stop opacity is folded into Color.A.
type Stop struct {
	Offset float64
	Color  pixmap.Color
}

// BaseGradient holds the fields shared by linear and radial gradients.
type BaseGradient struct {
	ID        string
	Units     Units
	Transform geom.Matrix
	Spread    SpreadMethod
	Stops     []Stop
}

// LinearGradient interpolates along the line (X1, Y1)-(X2, Y2).
type LinearGradient struct {
	BaseGradient
	X1, Y1, X2, Y2 float64
}

func (*LinearGradient) isPaint() {}

// RadialGradient interpolates from the focal circle (FX, FY, FR) to the
// end circle (CX, CY, R).
type RadialGradient struct {
	BaseGradient
	CX, CY, R  float64
	FX, FY, FR float64
}

func (*RadialGradient) isPaint() {}

// Pattern tiles its children over the painted area.
type Pattern struct {
	ID           string
	Units        Units
	ContentUnits Units
	Transform    geom.Matrix
	Rect         geom.Rect
	ViewBox      *ViewBox
	Children     []Node
}

func (*Pattern) isPaint() {}
