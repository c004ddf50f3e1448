package scenefile

import (
	"fmt"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// filter resolves a filter for an element with the given object bounding
// box. It returns nil when the region is relative to a bbox without area.
func (d *decoder) filter(id string, bbox geom.Rect) (*tree.Filter, error) {
	doc, ok := d.filters[id]
	if !ok {
		return nil, fmt.Errorf("%w: filter %q", ErrUnknownReference, id)
	}
	f, err := d.buildFilter(doc, bbox)
	return f, wrapAt("defs.filters["+id+"]", err)
}

func (d *decoder) buildFilter(doc *filterDoc, bbox geom.Rect) (*tree.Filter, error) {
	units, err := parseUnits(doc.Units, tree.ObjectBoundingBox)
	if err != nil {
		return nil, err
	}
	primUnits, err := parseUnits(doc.PrimitiveUnits, tree.UserSpaceOnUse)
	if err != nil {
		return nil, err
	}
	if (units == tree.ObjectBoundingBox || primUnits == tree.ObjectBoundingBox) && !bbox.HasArea() {
		return nil, nil
	}

	region := defaultRegion(units, d.viewport, doc.X, doc.Y, doc.Width, doc.Height)
	if units == tree.ObjectBoundingBox {
		region, _ = region.Transform(bbox.BBoxTransform())
	}
	f := &tree.Filter{ID: doc.ID, Rect: region}

	pc := primitiveContext{units: primUnits, bbox: bbox, region: region}
	for i := range doc.Primitives {
		p, err := pc.primitive(&doc.Primitives[i])
		if err != nil {
			return nil, wrapAt(fmt.Sprintf("primitives[%d]", i), err)
		}
		f.Primitives = append(f.Primitives, p)
	}
	return f, nil
}

// primitiveContext maps primitive attributes into user space.
type primitiveContext struct {
	units  tree.Units
	bbox   geom.Rect
	region geom.Rect
}

// lengths scales a horizontal and a vertical length.
func (pc primitiveContext) lengths(x, y float64) (float64, float64) {
	if pc.units == tree.ObjectBoundingBox {
		return x * pc.bbox.Width(), y * pc.bbox.Height()
	}
	return x, y
}

func (pc primitiveContext) subregion(doc *primitiveDoc) *geom.Rect {
	if doc.X == nil && doc.Y == nil && doc.Width == nil && doc.Height == nil {
		return nil
	}
	var r geom.Rect
	if pc.units == tree.ObjectBoundingBox {
		rel := geom.RectXYWH(orDefault(doc.X, 0), orDefault(doc.Y, 0),
			orDefault(doc.Width, 1), orDefault(doc.Height, 1))
		r, _ = rel.Transform(pc.bbox.BBoxTransform())
		// Unset components keep the filter region's.
		if doc.X == nil {
			r.MinX = pc.region.MinX
		}
		if doc.Y == nil {
			r.MinY = pc.region.MinY
		}
		if doc.Width == nil {
			r.MaxX = pc.region.MaxX
		}
		if doc.Height == nil {
			r.MaxY = pc.region.MaxY
		}
	} else {
		x := orDefault(doc.X, pc.region.X())
		y := orDefault(doc.Y, pc.region.Y())
		r = geom.RectXYWH(x, y,
			orDefault(doc.Width, pc.region.MaxX-x),
			orDefault(doc.Height, pc.region.MaxY-y))
	}
	return &r
}

// pair reads a one- or two-number attribute such as stdDeviation.
func pair(v []float64, def float64) (float64, float64, error) {
	switch len(v) {
	case 0:
		return def, def, nil
	case 1:
		return v[0], v[0], nil
	case 2:
		return v[0], v[1], nil
	}
	return 0, 0, invalid("number pair", fmt.Sprint(v))
}

func parseInput(s string) tree.Input {
	switch s {
	case "":
		return tree.Input{Kind: tree.InputDefault}
	case "SourceGraphic":
		return tree.Input{Kind: tree.InputSourceGraphic}
	case "SourceAlpha":
		return tree.Input{Kind: tree.InputSourceAlpha}
	case "FillPaint":
		return tree.Input{Kind: tree.InputFillPaint}
	case "StrokePaint":
		return tree.Input{Kind: tree.InputStrokePaint}
	}
	return tree.Input{Kind: tree.InputReference, Name: s}
}

func floodColor(s string, opacity *float64) (pixmap.Color, error) {
	c := pixmap.RGB(0, 0, 0)
	if s != "" {
		var err error
		if c, err = ParseColor(s); err != nil {
			return c, err
		}
	}
	return c.WithAlpha(clamp01(orDefault(opacity, 1))), nil
}

func (pc primitiveContext) primitive(doc *primitiveDoc) (tree.Primitive, error) {
	p := tree.Primitive{
		Subregion:          pc.subregion(doc),
		ColorInterpolation: tree.LinearRGB,
		Result:             doc.Result,
	}
	switch doc.ColorInterpolation {
	case "", "linearRGB":
	case "sRGB":
		p.ColorInterpolation = tree.SRGB
	default:
		return p, invalid("colorInterpolation", doc.ColorInterpolation)
	}

	in := parseInput(doc.In)
	var err error
	switch doc.Type {
	case "blur":
		sx, sy, err := pair(doc.StdDeviation, 0)
		if err != nil {
			return p, err
		}
		sx, sy = pc.lengths(sx, sy)
		p.Kind = &tree.GaussianBlur{In: in, StdDevX: sx, StdDevY: sy}
	case "offset":
		dx, dy := pc.lengths(doc.DX, doc.DY)
		p.Kind = &tree.Offset{In: in, DX: dx, DY: dy}
	case "flood":
		c, err := floodColor(doc.Color, doc.Opacity)
		if err != nil {
			return p, err
		}
		p.Kind = &tree.Flood{Color: c}
	case "colorMatrix":
		m, err := colorMatrix(doc.MatrixType, doc.Values)
		if err != nil {
			return p, err
		}
		p.Kind = &tree.ColorMatrix{In: in, Matrix: m}
	case "componentTransfer":
		ct := &tree.ComponentTransfer{In: in}
		for _, f := range []struct {
			doc *transferDoc
			dst *tree.TransferFunc
		}{{doc.FuncR, &ct.R}, {doc.FuncG, &ct.G}, {doc.FuncB, &ct.B}, {doc.FuncA, &ct.A}} {
			if *f.dst, err = transferFunc(f.doc); err != nil {
				return p, err
			}
		}
		p.Kind = ct
	case "composite":
		op, err := compositeOperator(doc.Operator)
		if err != nil {
			return p, err
		}
		p.Kind = &tree.Composite{
			In1: in, In2: parseInput(doc.In2), Operator: op,
			K1: doc.K1, K2: doc.K2, K3: doc.K3, K4: doc.K4,
		}
	case "blend":
		mode := pixmap.BlendNormal
		if doc.Mode != "" {
			var ok bool
			if mode, ok = pixmap.ParseBlendMode(doc.Mode); !ok {
				return p, invalid("mode", doc.Mode)
			}
		}
		p.Kind = &tree.Blend{In1: in, In2: parseInput(doc.In2), Mode: mode}
	case "merge":
		m := &tree.Merge{}
		for _, s := range doc.Inputs {
			m.Inputs = append(m.Inputs, parseInput(s))
		}
		p.Kind = m
	case "morphology":
		op := tree.Erode
		switch doc.Operator {
		case "", "erode":
		case "dilate":
			op = tree.Dilate
		default:
			return p, invalid("operator", doc.Operator)
		}
		rx, ry, err := pair(doc.Radius, 0)
		if err != nil {
			return p, err
		}
		rx, ry = pc.lengths(rx, ry)
		p.Kind = &tree.Morphology{In: in, Operator: op, RadiusX: rx, RadiusY: ry}
	case "dropShadow":
		sx, sy, err := pair(doc.StdDeviation, 2)
		if err != nil {
			return p, err
		}
		c, err := floodColor(doc.Color, doc.Opacity)
		if err != nil {
			return p, err
		}
		dx, dy := doc.DX, doc.DY
		if dx == 0 && dy == 0 {
			dx, dy = 2, 2
		}
		dx, dy = pc.lengths(dx, dy)
		sx, sy = pc.lengths(sx, sy)
		p.Kind = &tree.DropShadow{In: in, DX: dx, DY: dy, StdDevX: sx, StdDevY: sy, Color: c}
	case "tile":
		p.Kind = &tree.Tile{In: in}
	default:
		return p, invalid("type", doc.Type)
	}
	return p, nil
}

func colorMatrix(kind string, values []float64) ([20]float64, error) {
	first := func(def float64) float64 {
		if len(values) > 0 {
			return values[0]
		}
		return def
	}
	switch kind {
	case "", "matrix":
		if len(values) == 0 {
			return tree.IdentityMatrix(), nil
		}
		if len(values) != 20 {
			return [20]float64{}, invalid("values", fmt.Sprint(values))
		}
		return [20]float64(values), nil
	case "saturate":
		return tree.SaturateMatrix(first(1)), nil
	case "hueRotate":
		return tree.HueRotateMatrix(first(0)), nil
	case "luminanceToAlpha":
		return tree.LuminanceToAlphaMatrix(), nil
	}
	return [20]float64{}, invalid("matrixType", kind)
}

func transferFunc(doc *transferDoc) (tree.TransferFunc, error) {
	if doc == nil {
		return tree.TransferFunc{Kind: tree.TransferIdentity}, nil
	}
	f := tree.TransferFunc{
		TableValues: doc.TableValues,
		Slope:       orDefault(doc.Slope, 1),
		Intercept:   doc.Intercept,
		Amplitude:   orDefault(doc.Amplitude, 1),
		Exponent:    orDefault(doc.Exponent, 1),
		Offset:      doc.Offset,
	}
	switch doc.Type {
	case "", "identity":
		f.Kind = tree.TransferIdentity
	case "table":
		f.Kind = tree.TransferTable
	case "discrete":
		f.Kind = tree.TransferDiscrete
	case "linear":
		f.Kind = tree.TransferLinear
	case "gamma":
		f.Kind = tree.TransferGamma
	default:
		return f, invalid("type", doc.Type)
	}
	return f, nil
}

func compositeOperator(s string) (tree.CompositeOperator, error) {
	switch s {
	case "", "over":
		return tree.CompositeOver, nil
	case "in":
		return tree.CompositeIn, nil
	case "out":
		return tree.CompositeOut, nil
	case "atop":
		return tree.CompositeAtop, nil
	case "xor":
		return tree.CompositeXor, nil
	case "arithmetic":
		return tree.CompositeArithmetic, nil
	}
	return tree.CompositeOver, invalid("operator", s)
}
