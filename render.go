package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// Render draws t into pm. ts is applied on top of the tree's view box
// transform.
//
// Render never fails: subtrees that cannot be drawn are skipped with a
// warning on the package logger, and an empty image is a valid result.
func Render(t *tree.Tree, ts geom.Matrix, pm *pixmap.Pixmap, opts ...Option) {
	if t == nil || pm == nil {
		Logger().Warn("ggsvg: nothing to render", "tree", t != nil, "pixmap", pm != nil)
		return
	}
	ctx := NewContext(pm.Width(), pm.Height(), opts...)
	root := ts.Multiply(t.ViewBoxTransform())
	RenderNodes(t.Children, ctx, root, pm)
}

// RenderNodes draws nodes in order into pm, each over the previous ones.
// It is the entry point for rendering subtrees into offscreen buffers.
func RenderNodes(nodes []tree.Node, ctx *Context, ts geom.Matrix, pm *pixmap.Pixmap) {
	for _, n := range nodes {
		renderNode(n, ctx, ts, pm)
	}
}

func renderNode(n tree.Node, ctx *Context, ts geom.Matrix, pm *pixmap.Pixmap) {
	switch n := n.(type) {
	case *tree.Group:
		if err := renderGroup(n, ctx, ts, pm); err != nil {
			Logger().Warn("ggsvg: group skipped", "id", n.ID, "err", err)
		}
	case *tree.FillPath:
		fillPath(n, ctx, ts, pm, pixmap.BlendNormal)
	case *tree.StrokePath:
		strokePath(n, ctx, ts, pm, pixmap.BlendNormal)
	case *tree.Image:
		drawImage(n, ctx, ts, pm)
	}
}
