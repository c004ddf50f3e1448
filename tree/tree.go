// Package tree defines the resolved scene graph consumed by the renderer.
//
// A Tree is built once (for example by package scenefile) and is read-only
// afterwards. Every node is exclusively owned by its parent's child slice;
// the graph has no cycles. Decoded images may be shared between nodes.
package tree

import (
	"image"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

// Tree is the root of a scene.
type Tree struct {
	// Size is the intrinsic size of the scene in user units.
	Size geom.Size

	// ViewBox maps user space onto Size.
	ViewBox ViewBox

	// Children are drawn in order.
	Children []Node
}

// ViewBoxTransform returns the transform fitting the view box into Size.
func (t *Tree) ViewBoxTransform() geom.Matrix {
	return t.ViewBox.Transform(t.Size)
}

// Node is one of *Group, *FillPath, *StrokePath or *Image.
type Node interface {
	// NodeID returns the element id, which may be empty.
	NodeID() string
	isNode()
}

// Group is a container that may require an isolation layer.
type Group struct {
	ID        string
	Transform geom.Matrix
	Opacity   float64
	BlendMode pixmap.BlendMode

	// BBox is the layer bounding box in the children's coordinate space,
	// including stroke and filter regions. EmptyRect marks an unknown or
	// empty box.
	BBox geom.Rect

	ClipPath *ClipPath
	Mask     *Mask
	Filters  []*Filter

	// FilterFill and FilterStroke are the paints used for the FillPaint and
	// StrokePaint filter inputs.
	FilterFill   Paint
	FilterStroke Paint

	Children []Node
}

// NewGroup returns an opaque, untransformed group with normal blending.
func NewGroup(children ...Node) *Group {
	g := &Group{
		Transform: geom.Identity(),
		Opacity:   1,
		BlendMode: pixmap.BlendNormal,
		BBox:      geom.EmptyRect(),
		Children:  children,
	}
	g.BBox = g.ComputeBBox()
	return g
}

// NodeID implements Node.
func (g *Group) NodeID() string { return g.ID }

func (*Group) isNode() {}

// IsTransformOnly reports whether the group only changes the coordinate
// system and can be drawn without an isolation layer.
func (g *Group) IsTransformOnly() bool {
	return g.Opacity == 1 &&
		g.BlendMode == pixmap.BlendNormal &&
		g.ClipPath == nil &&
		g.Mask == nil &&
		len(g.Filters) == 0
}

// HasFilters reports whether the group carries filter effects.
func (g *Group) HasFilters() bool {
	return len(g.Filters) > 0
}

// ComputeBBox returns the union of the children's bounding boxes in the
// group's coordinate space. When filters are present the union of their
// regions is returned instead.
func (g *Group) ComputeBBox() geom.Rect {
	if len(g.Filters) > 0 {
		r := geom.EmptyRect()
		for _, f := range g.Filters {
			r = r.Union(f.Rect)
		}
		return r
	}
	r := geom.EmptyRect()
	for _, c := range g.Children {
		r = r.Union(NodeBBox(c))
	}
	return r
}

// NodeBBox returns the bounding box of n in its parent's coordinate space,
// including stroke outlines.
func NodeBBox(n Node) geom.Rect {
	return nodeBounds(n, true)
}

// NodeObjectBBox returns the geometry-only bounding box of n in its parent's
// coordinate space, as used for objectBoundingBox units.
func NodeObjectBBox(n Node) geom.Rect {
	return nodeBounds(n, false)
}

// ObjectBBox returns the geometry-only bounding box of the group's children
// in the group's coordinate space.
func (g *Group) ObjectBBox() geom.Rect {
	r := geom.EmptyRect()
	for _, c := range g.Children {
		r = r.Union(NodeObjectBBox(c))
	}
	return r
}

func nodeBounds(n Node, withStroke bool) geom.Rect {
	switch n := n.(type) {
	case *Group:
		inner := n.BBox
		if !withStroke {
			inner = n.ObjectBBox()
		}
		if inner.IsEmpty() {
			return inner
		}
		r, ok := inner.Transform(n.Transform)
		if !ok {
			return geom.EmptyRect()
		}
		return r
	case *FillPath:
		return n.Path.Bounds()
	case *StrokePath:
		b := n.Path.Bounds()
		if !withStroke || b.IsEmpty() {
			return b
		}
		// Half the width on every side, scaled by the miter limit for
		// miter joins.
		pad := n.Stroke.Width / 2
		if n.Stroke.LineJoin == geom.LineJoinMiter {
			pad *= max(1, n.Stroke.MiterLimit)
		}
		return b.Outset(pad)
	case *Image:
		return n.ViewRect
	}
	return geom.EmptyRect()
}

// FillPath is a filled path.
type FillPath struct {
	ID        string
	Path      *geom.Path
	Paint     Paint
	Opacity   float64
	Rule      geom.FillRule
	AntiAlias bool
}

// NodeID implements Node.
func (p *FillPath) NodeID() string { return p.ID }

func (*FillPath) isNode() {}

// Stroke describes how a path outline is painted.
type Stroke struct {
	Paint      Paint
	Opacity    float64
	Width      float64
	LineCap    geom.LineCap
	LineJoin   geom.LineJoin
	MiterLimit float64
	Dasharray  []float64
	Dashoffset float64
}

// Style converts the stroke to the geometry-level description.
func (s Stroke) Style() geom.Stroke {
	return geom.Stroke{
		Width:      s.Width,
		Cap:        s.LineCap,
		Join:       s.LineJoin,
		MiterLimit: s.MiterLimit,
		Dashes:     s.Dasharray,
		DashOffset: s.Dashoffset,
	}
}

// StrokePath is a stroked path.
type StrokePath struct {
	ID        string
	Path      *geom.Path
	Stroke    Stroke
	AntiAlias bool
}

// NodeID implements Node.
func (p *StrokePath) NodeID() string { return p.ID }

func (*StrokePath) isNode() {}

// ImageRendering selects the resampling quality of raster images.
type ImageRendering uint8

const (
	OptimizeQuality ImageRendering = iota
	OptimizeSpeed
)

// Image places raster or nested vector content into a view rectangle.
// Exactly one of Raster and Tree is set.
type Image struct {
	ID        string
	ViewRect  geom.Rect
	Aspect    AspectRatio
	Rendering ImageRendering

	Raster image.Image
	Tree   *Tree
}

// NodeID implements Node.
func (i *Image) NodeID() string { return i.ID }

func (*Image) isNode() {}
