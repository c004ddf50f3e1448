package scenefile

import (
	"fmt"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

func (d *decoder) clipPath(id string) (*tree.ClipPath, error) {
	if cp, ok := d.clips[id]; ok {
		return cp, nil
	}
	doc, ok := d.clipPaths[id]
	if !ok {
		return nil, fmt.Errorf("%w: clip path %q", ErrUnknownReference, id)
	}
	key := "clipPath:" + id
	if err := d.enter(key); err != nil {
		return nil, err
	}
	defer d.leave(key)

	cp, err := d.buildClipPath(doc)
	if err != nil {
		return nil, wrapAt("defs.clipPaths["+id+"]", err)
	}
	d.clips[id] = cp
	return cp, nil
}

func (d *decoder) buildClipPath(doc *clipPathDoc) (*tree.ClipPath, error) {
	cp := &tree.ClipPath{ID: doc.ID, Transform: geom.Identity()}
	var err error
	if cp.Units, err = parseUnits(doc.Units, tree.UserSpaceOnUse); err != nil {
		return nil, err
	}
	if doc.Transform != "" {
		if cp.Transform, err = ParseTransform(doc.Transform); err != nil {
			return nil, err
		}
	}
	if doc.ClipPath != "" {
		if cp.ClipPath, err = d.clipPath(refID(doc.ClipPath)); err != nil {
			return nil, err
		}
	}
	if cp.Children, err = d.nodes(doc.Children, defaultStyle(), "defs.clipPaths["+doc.ID+"].children"); err != nil {
		return nil, err
	}
	return cp, nil
}

func (d *decoder) mask(id string) (*tree.Mask, error) {
	if m, ok := d.maskCache[id]; ok {
		return m, nil
	}
	doc, ok := d.masks[id]
	if !ok {
		return nil, fmt.Errorf("%w: mask %q", ErrUnknownReference, id)
	}
	key := "mask:" + id
	if err := d.enter(key); err != nil {
		return nil, err
	}
	defer d.leave(key)

	m, err := d.buildMask(doc)
	if err != nil {
		return nil, wrapAt("defs.masks["+id+"]", err)
	}
	d.maskCache[id] = m
	return m, nil
}

func (d *decoder) buildMask(doc *maskDoc) (*tree.Mask, error) {
	m := &tree.Mask{ID: doc.ID}
	var err error
	if m.Units, err = parseUnits(doc.Units, tree.ObjectBoundingBox); err != nil {
		return nil, err
	}
	if m.ContentUnits, err = parseUnits(doc.ContentUnits, tree.UserSpaceOnUse); err != nil {
		return nil, err
	}
	switch doc.Type {
	case "", "luminance":
		m.Kind = pixmap.MaskLuminance
	case "alpha":
		m.Kind = pixmap.MaskAlpha
	default:
		return nil, invalid("type", doc.Type)
	}

	m.Rect = defaultRegion(m.Units, d.viewport, doc.X, doc.Y, doc.Width, doc.Height)
	if doc.Mask != "" {
		if m.Mask, err = d.mask(refID(doc.Mask)); err != nil {
			return nil, err
		}
	}
	if m.Children, err = d.nodes(doc.Children, defaultStyle(), "defs.masks["+doc.ID+"].children"); err != nil {
		return nil, err
	}
	return m, nil
}

// defaultRegion fills unset components of a mask or filter region with
// -10%, -10%, 120%, 120% of the bounding box or, in user space, of the
// viewport.
func defaultRegion(units tree.Units, viewport geom.Rect, x, y, w, h *float64) geom.Rect {
	ref := geom.RectXYWH(0, 0, 1, 1)
	if units == tree.UserSpaceOnUse {
		ref = viewport
	}
	return geom.RectXYWH(
		orDefault(x, ref.X()-0.1*ref.Width()),
		orDefault(y, ref.Y()-0.1*ref.Height()),
		orDefault(w, 1.2*ref.Width()),
		orDefault(h, 1.2*ref.Height()),
	)
}
