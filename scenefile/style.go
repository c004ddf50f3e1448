package scenefile

import (
	"slices"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/tree"
)

// style is the resolved set of inheritable attributes.
type style struct {
	fill          string
	fillOpacity   float64
	fillRule      geom.FillRule
	stroke        string
	strokeOpacity float64
	strokeWidth   float64
	lineCap       geom.LineCap
	lineJoin      geom.LineJoin
	miterLimit    float64
	dashes        []float64
	dashOffset    float64
	antiAlias     bool
	rendering     tree.ImageRendering
}

func defaultStyle() style {
	return style{
		fill:          "black",
		fillOpacity:   1,
		stroke:        "none",
		strokeOpacity: 1,
		strokeWidth:   1,
		miterLimit:    4,
		antiAlias:     true,
	}
}

// inherit returns s overridden by the attributes set in doc.
func (s style) inherit(doc *styleDoc) (style, error) {
	if doc.Fill != nil {
		s.fill = *doc.Fill
	}
	if doc.FillOpacity != nil {
		s.fillOpacity = clamp01(*doc.FillOpacity)
	}
	if doc.FillRule != nil {
		switch *doc.FillRule {
		case "nonzero":
			s.fillRule = geom.NonZero
		case "evenodd":
			s.fillRule = geom.EvenOdd
		default:
			return s, invalid("fillRule", *doc.FillRule)
		}
	}
	if doc.Stroke != nil {
		s.stroke = *doc.Stroke
	}
	if doc.StrokeOpacity != nil {
		s.strokeOpacity = clamp01(*doc.StrokeOpacity)
	}
	if doc.StrokeWidth != nil {
		s.strokeWidth = *doc.StrokeWidth
	}
	if doc.StrokeLinecap != nil {
		switch *doc.StrokeLinecap {
		case "butt":
			s.lineCap = geom.LineCapButt
		case "round":
			s.lineCap = geom.LineCapRound
		case "square":
			s.lineCap = geom.LineCapSquare
		default:
			return s, invalid("strokeLinecap", *doc.StrokeLinecap)
		}
	}
	if doc.StrokeLinejoin != nil {
		switch *doc.StrokeLinejoin {
		case "miter", "miter-clip":
			s.lineJoin = geom.LineJoinMiter
		case "round":
			s.lineJoin = geom.LineJoinRound
		case "bevel":
			s.lineJoin = geom.LineJoinBevel
		default:
			return s, invalid("strokeLinejoin", *doc.StrokeLinejoin)
		}
	}
	if doc.StrokeMiterlimit != nil {
		s.miterLimit = max(*doc.StrokeMiterlimit, 1)
	}
	if doc.StrokeDasharray != nil {
		s.dashes = slices.Clone(doc.StrokeDasharray)
	}
	if doc.StrokeDashoffset != nil {
		s.dashOffset = *doc.StrokeDashoffset
	}
	if doc.ShapeRendering != nil {
		switch *doc.ShapeRendering {
		case "auto", "geometricPrecision":
			s.antiAlias = true
		case "crispEdges", "optimizeSpeed":
			s.antiAlias = false
		default:
			return s, invalid("shapeRendering", *doc.ShapeRendering)
		}
	}
	if doc.ImageRendering != nil {
		switch *doc.ImageRendering {
		case "auto", "optimizeQuality", "smooth":
			s.rendering = tree.OptimizeQuality
		case "optimizeSpeed", "pixelated", "crisp-edges":
			s.rendering = tree.OptimizeSpeed
		default:
			return s, invalid("imageRendering", *doc.ImageRendering)
		}
	}
	return s, nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
