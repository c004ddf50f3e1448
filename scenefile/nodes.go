package scenefile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

func (d *decoder) nodes(docs []nodeDoc, st style, path string) ([]tree.Node, error) {
	var out []tree.Node
	for i := range docs {
		p := fmt.Sprintf("%s[%d]", path, i)
		nodes, err := d.node(&docs[i], st, p)
		if err != nil {
			return nil, wrapAt(p, err)
		}
		out = append(out, nodes...)
	}
	return out, nil
}

// node converts one element. It may yield no node (empty geometry), one,
// or a fill and a stroke for the same shape.
func (d *decoder) node(doc *nodeDoc, parent style, path string) ([]tree.Node, error) {
	st, err := parent.inherit(&doc.styleDoc)
	if err != nil {
		return nil, err
	}

	var content []tree.Node
	switch doc.Type {
	case "group":
		content, err = d.nodes(doc.Children, st, path+".children")
	case "image":
		var img *tree.Image
		img, err = d.imageNode(doc, st)
		if img != nil {
			content = []tree.Node{img}
		}
	case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
		content, err = d.shape(doc, st)
	default:
		err = invalid("type", doc.Type)
	}
	if err != nil {
		return nil, err
	}

	if doc.Type != "group" && !hasGroupAttrs(doc) {
		for _, n := range content {
			setID(n, doc.ID)
		}
		return content, nil
	}
	if len(content) == 0 && len(doc.Filter) == 0 {
		return nil, nil
	}
	g, err := d.group(doc, st, content)
	if err != nil || g == nil {
		return nil, err
	}
	return []tree.Node{g}, nil
}

func hasGroupAttrs(doc *nodeDoc) bool {
	return doc.Transform != "" || doc.Opacity != nil || doc.Blend != "" ||
		doc.ClipPath != "" || doc.Mask != "" || len(doc.Filter) > 0
}

func setID(n tree.Node, id string) {
	switch n := n.(type) {
	case *tree.FillPath:
		n.ID = id
	case *tree.StrokePath:
		n.ID = id
	case *tree.Image:
		n.ID = id
	}
}

// group wraps children with the element's group-level attributes. A nil
// group means the element is not rendered.
func (d *decoder) group(doc *nodeDoc, st style, children []tree.Node) (*tree.Group, error) {
	g := tree.NewGroup(children...)
	g.ID = doc.ID

	if doc.Transform != "" {
		m, err := ParseTransform(doc.Transform)
		if err != nil {
			return nil, err
		}
		g.Transform = m
	}
	if doc.Opacity != nil {
		g.Opacity = clamp01(*doc.Opacity)
	}
	if doc.Blend != "" {
		mode, ok := pixmap.ParseBlendMode(doc.Blend)
		if !ok {
			return nil, invalid("blend", doc.Blend)
		}
		g.BlendMode = mode
	}
	if doc.ClipPath != "" {
		cp, err := d.clipPath(refID(doc.ClipPath))
		if err != nil {
			return nil, err
		}
		g.ClipPath = cp
	}
	if doc.Mask != "" {
		m, err := d.mask(refID(doc.Mask))
		if err != nil {
			return nil, err
		}
		g.Mask = m
	}
	if len(doc.Filter) > 0 {
		bbox := g.ObjectBBox()
		for _, ref := range doc.Filter {
			f, err := d.filter(refID(ref), bbox)
			if err != nil {
				return nil, err
			}
			if f == nil {
				// An objectBoundingBox filter on an element without area
				// disables the element.
				return nil, nil
			}
			g.Filters = append(g.Filters, f)
		}
		var err error
		if g.FilterFill, err = d.paint(st.fill); err != nil {
			return nil, err
		}
		if g.FilterStroke, err = d.paint(st.stroke); err != nil {
			return nil, err
		}
		g.BBox = g.ComputeBBox()
	}
	return g, nil
}

// shape emits the fill and stroke of a basic shape, in that order.
func (d *decoder) shape(doc *nodeDoc, st style) ([]tree.Node, error) {
	p, err := shapePath(doc)
	if err != nil || p.IsEmpty() {
		return nil, err
	}

	var out []tree.Node
	if doc.Type != "line" {
		fill, err := d.paint(st.fill)
		if err != nil {
			return nil, err
		}
		if fill != nil {
			out = append(out, &tree.FillPath{
				Path:      p,
				Paint:     fill,
				Opacity:   st.fillOpacity,
				Rule:      st.fillRule,
				AntiAlias: st.antiAlias,
			})
		}
	}

	stroke, err := d.paint(st.stroke)
	if err != nil {
		return nil, err
	}
	if stroke != nil && st.strokeWidth > 0 {
		out = append(out, &tree.StrokePath{
			Path: p,
			Stroke: tree.Stroke{
				Paint:      stroke,
				Opacity:    st.strokeOpacity,
				Width:      st.strokeWidth,
				LineCap:    st.lineCap,
				LineJoin:   st.lineJoin,
				MiterLimit: st.miterLimit,
				Dasharray:  st.dashes,
				Dashoffset: st.dashOffset,
			},
			AntiAlias: st.antiAlias,
		})
	}
	return out, nil
}

// shapePath builds the outline of a basic shape. Shapes with a zero or
// negative size yield an empty path.
func shapePath(doc *nodeDoc) (*geom.Path, error) {
	p := geom.NewPath()
	switch doc.Type {
	case "path":
		return ParsePathData(doc.D)
	case "rect":
		if doc.Width <= 0 || doc.Height <= 0 {
			return p, nil
		}
		rx, ry := cornerRadii(doc.RX, doc.RY)
		p.RoundedRectangle(doc.X, doc.Y, doc.Width, doc.Height, rx, ry)
	case "circle":
		if doc.R > 0 {
			p.Ellipse(doc.CX, doc.CY, doc.R, doc.R)
		}
	case "ellipse":
		rx, ry := cornerRadii(doc.RX, doc.RY)
		if rx > 0 && ry > 0 {
			p.Ellipse(doc.CX, doc.CY, rx, ry)
		}
	case "line":
		p.MoveTo(doc.X1, doc.Y1)
		p.LineTo(doc.X2, doc.Y2)
	case "polyline", "polygon":
		for i, pt := range doc.Points {
			if len(pt) != 2 {
				return nil, invalid("points", fmt.Sprint(pt))
			}
			if i == 0 {
				p.MoveTo(pt[0], pt[1])
			} else {
				p.LineTo(pt[0], pt[1])
			}
		}
		if doc.Type == "polygon" && len(doc.Points) > 0 {
			p.Close()
		}
	}
	return p, nil
}

// cornerRadii applies the auto rule: a missing radius equals the other.
func cornerRadii(rx, ry *float64) (float64, float64) {
	switch {
	case rx == nil && ry == nil:
		return 0, 0
	case rx == nil:
		return *ry, *ry
	case ry == nil:
		return *rx, *rx
	}
	return *rx, *ry
}

// imageNode resolves an image reference. A missing width or height takes
// the content's intrinsic size.
func (d *decoder) imageNode(doc *nodeDoc, st style) (*tree.Image, error) {
	if doc.Href == "" {
		return nil, fmt.Errorf("%w: image without href", ErrInvalidValue)
	}
	ref := doc.Href
	if !filepath.IsAbs(ref) {
		ref = filepath.Join(d.dir, ref)
	}

	img := &tree.Image{
		Aspect:    tree.DefaultAspectRatio(),
		Rendering: st.rendering,
	}
	if doc.PreserveAspectRatio != "" {
		ar, ok := tree.ParseAspectRatio(doc.PreserveAspectRatio)
		if !ok {
			return nil, invalid("preserveAspectRatio", doc.PreserveAspectRatio)
		}
		img.Aspect = ar
	}

	var size geom.Size
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml":
		t, err := d.child(filepath.Dir(ref)).load(ref)
		if err != nil {
			return nil, err
		}
		img.Tree = t
		size = t.Size
	default:
		raster, err := d.loadImage(ref)
		if err != nil {
			return nil, err
		}
		img.Raster = raster
		b := raster.Bounds()
		size = geom.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	}

	w, h := doc.Width, doc.Height
	if w <= 0 {
		w = size.Width
	}
	if h <= 0 {
		h = size.Height
	}
	img.ViewRect = geom.RectXYWH(doc.X, doc.Y, w, h)
	return img, nil
}
