package tree

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

// ClipPath restricts drawing to the union of its children's geometry.
type ClipPath struct {
	ID        string
	Units     Units
	Transform geom.Matrix

	// ClipPath, when set, is intersected with this clip path.
	ClipPath *ClipPath

	// Children are paths and groups; only geometry and fill rules are used.
	Children []Node
}

// Mask modulates a layer by the luminance or alpha of its rendered children.
type Mask struct {
	ID           string
	Units        Units
	ContentUnits Units

	// Rect limits the mask region, in Units.
	Rect geom.Rect
	Kind pixmap.MaskType

	// Mask, when set, is applied to this mask's own content.
	Mask *Mask

	Children []Node
}
