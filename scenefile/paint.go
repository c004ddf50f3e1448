package scenefile

import (
	"fmt"
	"strings"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/tree"
)

// paint resolves a fill or stroke value. "none" and the empty string
// yield a nil paint.
func (d *decoder) paint(s string) (tree.Paint, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "none":
		return nil, nil
	case strings.HasPrefix(s, "url("):
		return d.paintServer(refID(s))
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil, err
	}
	return tree.Color(c), nil
}

func (d *decoder) paintServer(id string) (tree.Paint, error) {
	if p, ok := d.paints[id]; ok {
		return p, nil
	}
	var (
		p   tree.Paint
		err error
	)
	if g, ok := d.gradients[id]; ok {
		p, err = d.gradient(g)
		err = wrapAt("defs.gradients["+id+"]", err)
	} else if pat, ok := d.patterns[id]; ok {
		p, err = d.pattern(pat)
		err = wrapAt("defs.patterns["+id+"]", err)
	} else {
		return nil, fmt.Errorf("%w: paint %q", ErrUnknownReference, id)
	}
	if err != nil {
		return nil, err
	}
	d.paints[id] = p
	return p, nil
}

func (d *decoder) gradient(doc *gradientDoc) (tree.Paint, error) {
	base := tree.BaseGradient{ID: doc.ID, Transform: geom.Identity()}

	var err error
	if base.Units, err = parseUnits(doc.Units, tree.ObjectBoundingBox); err != nil {
		return nil, err
	}
	if doc.Transform != "" {
		if base.Transform, err = ParseTransform(doc.Transform); err != nil {
			return nil, err
		}
	}
	switch doc.Spread {
	case "", "pad":
		base.Spread = tree.SpreadPad
	case "reflect":
		base.Spread = tree.SpreadReflect
	case "repeat":
		base.Spread = tree.SpreadRepeat
	default:
		return nil, invalid("spread", doc.Spread)
	}
	for _, s := range doc.Stops {
		c, err := ParseColor(s.Color)
		if err != nil {
			return nil, err
		}
		base.Stops = append(base.Stops, tree.Stop{
			Offset: clamp01(s.Offset),
			Color:  c.WithAlpha(orDefault(s.Opacity, 1)),
		})
	}

	switch doc.Type {
	case "", "linear":
		return &tree.LinearGradient{
			BaseGradient: base,
			X1:           orDefault(doc.X1, 0),
			Y1:           orDefault(doc.Y1, 0),
			X2:           orDefault(doc.X2, 1),
			Y2:           orDefault(doc.Y2, 0),
		}, nil
	case "radial":
		cx, cy := orDefault(doc.CX, 0.5), orDefault(doc.CY, 0.5)
		return &tree.RadialGradient{
			BaseGradient: base,
			CX:           cx,
			CY:           cy,
			R:            orDefault(doc.R, 0.5),
			FX:           orDefault(doc.FX, cx),
			FY:           orDefault(doc.FY, cy),
			FR:           orDefault(doc.FR, 0),
		}, nil
	}
	return nil, invalid("type", doc.Type)
}

func (d *decoder) pattern(doc *patternDoc) (tree.Paint, error) {
	key := "pattern:" + doc.ID
	if err := d.enter(key); err != nil {
		return nil, err
	}
	defer d.leave(key)

	p := &tree.Pattern{
		ID:        doc.ID,
		Transform: geom.Identity(),
		Rect:      geom.RectXYWH(doc.X, doc.Y, doc.Width, doc.Height),
	}
	var err error
	if p.Units, err = parseUnits(doc.Units, tree.ObjectBoundingBox); err != nil {
		return nil, err
	}
	if p.ContentUnits, err = parseUnits(doc.ContentUnits, tree.UserSpaceOnUse); err != nil {
		return nil, err
	}
	if doc.Transform != "" {
		if p.Transform, err = ParseTransform(doc.Transform); err != nil {
			return nil, err
		}
	}
	if doc.ViewBox != "" {
		r, err := parseViewBox(doc.ViewBox)
		if err != nil {
			return nil, err
		}
		vb := &tree.ViewBox{Rect: r, Aspect: tree.DefaultAspectRatio()}
		if doc.PreserveAspectRatio != "" {
			ar, ok := tree.ParseAspectRatio(doc.PreserveAspectRatio)
			if !ok {
				return nil, invalid("preserveAspectRatio", doc.PreserveAspectRatio)
			}
			vb.Aspect = ar
		}
		p.ViewBox = vb
	}
	if p.Children, err = d.nodes(doc.Children, defaultStyle(), "defs.patterns["+doc.ID+"].children"); err != nil {
		return nil, err
	}
	return p, nil
}
