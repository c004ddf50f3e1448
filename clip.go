package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// applyClipPath keeps the parts of layer covered by cp. bbox is the object
// bounding box of the clipped element in its user space, which ts maps to
// the layer.
func applyClipPath(cp *tree.ClipPath, bbox geom.Rect, ctx *Context, ts geom.Matrix, layer *pixmap.Pixmap) {
	m, err := clipMask(cp, bbox, ts, layer.Width(), layer.Height())
	if err != nil {
		Logger().Warn("ggsvg: clip path failed", "id", cp.ID, "err", err)
		layer.Clear()
		return
	}
	layer.ApplyMask(m)
}

// clipMask returns the coverage of cp, intersected with its own clip path.
// An objectBoundingBox clip path on an element without area covers nothing.
func clipMask(cp *tree.ClipPath, bbox geom.Rect, ts geom.Matrix, width, height int) (*pixmap.Mask, error) {
	m, err := pixmap.NewMask(width, height)
	if err != nil {
		return nil, err
	}

	cts := ts.Multiply(cp.Transform)
	if cp.Units == tree.ObjectBoundingBox {
		if !bbox.HasArea() {
			return m, nil
		}
		cts = cts.Multiply(bbox.BBoxTransform())
	}
	if err := addClipNodes(m, cp.Children, cts); err != nil {
		return nil, err
	}

	if cp.ClipPath != nil {
		outer, err := clipMask(cp.ClipPath, bbox, ts, width, height)
		if err != nil {
			return nil, err
		}
		m.Intersect(outer)
	}
	return m, nil
}

// addClipNodes adds the fill geometry of nodes to m. Strokes, images and
// paint do not contribute to a clip.
func addClipNodes(m *pixmap.Mask, nodes []tree.Node, ts geom.Matrix) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *tree.FillPath:
			raster.FillMask(m, n.Path, ts, n.Rule, n.AntiAlias)
		case *tree.Group:
			gts := ts.Multiply(n.Transform)
			if n.ClipPath == nil {
				if err := addClipNodes(m, n.Children, gts); err != nil {
					return err
				}
				continue
			}
			// A clipped child is rendered separately and intersected with
			// its own clip before joining the union.
			child, err := pixmap.NewMask(m.Width(), m.Height())
			if err != nil {
				return err
			}
			if err := addClipNodes(child, n.Children, gts); err != nil {
				return err
			}
			inner, err := clipMask(n.ClipPath, n.ObjectBBox(), gts, m.Width(), m.Height())
			if err != nil {
				return err
			}
			child.Intersect(inner)
			m.Union(child)
		}
	}
	return nil
}
