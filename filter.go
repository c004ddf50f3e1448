package ggsvg

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/filter"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

var errInvalidRegion = errors.New("ggsvg: invalid filter region")

// filterImage is a primitive input or result, cropped to the filter region.
type filterImage struct {
	pm *pixmap.Pixmap
	// area is the valid part of pm, in region coordinates.
	area  image.Rectangle
	space tree.ColorInterpolation
}

// filterRun holds the state of one filter application.
type filterRun struct {
	ctx    *Context
	ts     geom.Matrix
	region image.Rectangle // in layer coordinates

	source, fill, stroke *pixmap.Pixmap
	results              map[string]filterImage
	last                 *filterImage
}

// applyFilter runs the primitives of f over layer. ts maps the filtered
// element's user space to the layer. Everything outside the filter region
// is cleared; a filter that cannot run leaves the layer transparent.
func applyFilter(f *tree.Filter, ctx *Context, ts geom.Matrix, fill, stroke, layer *pixmap.Pixmap) {
	if err := runFilter(f, ctx, ts, fill, stroke, layer); err != nil {
		Logger().Warn("ggsvg: filter failed", "id", f.ID, "err", err)
		layer.Clear()
	}
}

func runFilter(f *tree.Filter, ctx *Context, ts geom.Matrix, fill, stroke, layer *pixmap.Pixmap) error {
	region, ok := deviceRect(f.Rect, ts, layer.Rect())
	if !ok {
		return errInvalidRegion
	}

	run := &filterRun{
		ctx:     ctx,
		ts:      ts,
		region:  region,
		results: make(map[string]filterImage),
	}
	var err error
	if run.source, err = layer.CopyRect(region); err != nil {
		return err
	}
	if fill != nil {
		if run.fill, err = fill.CopyRect(region); err != nil {
			return err
		}
	}
	if stroke != nil {
		if run.stroke, err = stroke.CopyRect(region); err != nil {
			return err
		}
	}

	for i := range f.Primitives {
		res, err := run.apply(&f.Primitives[i])
		if err != nil {
			return err
		}
		if name := f.Primitives[i].Result; name != "" {
			run.results[name] = res
		}
		run.last = &res
	}

	layer.Clear()
	if run.last == nil {
		return nil
	}
	out := run.last.pm
	if run.last.space == tree.LinearRGB {
		filter.ToSRGB(out)
	}
	draw.Draw(layer.Image(), region, out.Image(), image.Point{}, draw.Src)
	return nil
}

// deviceRect maps r through ts, rounds it out and clips it to bound.
func deviceRect(r geom.Rect, ts geom.Matrix, bound image.Rectangle) (image.Rectangle, bool) {
	dev, ok := r.Transform(ts)
	if !ok {
		return image.Rectangle{}, false
	}
	ir, ok := dev.Intersect(geom.RectXYWH(
		float64(bound.Min.X), float64(bound.Min.Y), float64(bound.Dx()), float64(bound.Dy()),
	)).RoundOut()
	if !ok {
		return image.Rectangle{}, false
	}
	rect := image.Rect(ir.X, ir.Y, ir.Right(), ir.Bottom()).Intersect(bound)
	return rect, !rect.Empty()
}

func (run *filterRun) local() image.Rectangle {
	return image.Rect(0, 0, run.region.Dx(), run.region.Dy())
}

func (run *filterRun) newImage() (*pixmap.Pixmap, error) {
	return run.ctx.newLayer(run.region.Dx(), run.region.Dy())
}

// subregion returns the primitive subregion in region coordinates.
func (run *filterRun) subregion(p *tree.Primitive) image.Rectangle {
	if p.Subregion == nil {
		return run.local()
	}
	r, ok := deviceRect(*p.Subregion, run.ts, run.region)
	if !ok {
		return image.Rectangle{}
	}
	return r.Sub(run.region.Min)
}

// input returns a private copy of in converted to space.
func (run *filterRun) input(in tree.Input, space tree.ColorInterpolation) (filterImage, error) {
	var src filterImage
	switch in.Kind {
	case tree.InputSourceGraphic:
		src = filterImage{pm: run.source, area: run.local()}
	case tree.InputSourceAlpha:
		pm := run.source.Clone()
		filter.ExtractAlpha(pm)
		return filterImage{pm: pm, area: run.local(), space: space}, nil
	case tree.InputFillPaint, tree.InputStrokePaint:
		paint := run.fill
		if in.Kind == tree.InputStrokePaint {
			paint = run.stroke
		}
		if paint == nil {
			pm, err := run.newImage()
			return filterImage{pm: pm, area: run.local(), space: space}, err
		}
		src = filterImage{pm: paint, area: run.local()}
	case tree.InputReference:
		if res, ok := run.results[in.Name]; ok {
			src = res
			break
		}
		// Unknown names fall back to the default input.
		return run.input(tree.Input{}, space)
	default:
		if run.last == nil {
			return run.input(tree.Input{Kind: tree.InputSourceGraphic}, space)
		}
		src = *run.last
	}

	out := filterImage{pm: src.pm.Clone(), area: src.area, space: space}
	switch {
	case src.space == tree.SRGB && space == tree.LinearRGB:
		filter.ToLinearRGB(out.pm)
	case src.space == tree.LinearRGB && space == tree.SRGB:
		filter.ToSRGB(out.pm)
	}
	return out, nil
}

// apply runs one primitive and returns its result, cleared outside the
// primitive subregion.
func (run *filterRun) apply(p *tree.Primitive) (filterImage, error) {
	space := p.ColorInterpolation
	sub := run.subregion(p)
	sx, sy := run.ts.ScaleFactors()

	var res filterImage
	var err error
	switch k := p.Kind.(type) {
	case *tree.GaussianBlur:
		res, err = run.input(k.In, space)
		if err == nil {
			blur(res.pm, k.StdDevX*sx, k.StdDevY*sy)
		}
	case *tree.Offset:
		res, err = run.input(k.In, space)
		if err == nil {
			dx, dy := run.shift(k.DX, k.DY, res.pm)
			filter.Offset(res.pm, dx, dy)
		}
	case *tree.Flood:
		var pm *pixmap.Pixmap
		pm, err = run.newImage()
		if err == nil {
			pm.Fill(k.Color)
			res = filterImage{pm: pm, space: tree.SRGB}
		}
	case *tree.ColorMatrix:
		res, err = run.input(k.In, space)
		if err == nil {
			filter.ColorMatrix(res.pm, k.Matrix)
		}
	case *tree.ComponentTransfer:
		res, err = run.input(k.In, space)
		if err == nil {
			filter.ComponentTransfer(res.pm,
				transferFunc(k.R), transferFunc(k.G), transferFunc(k.B), transferFunc(k.A))
		}
	case *tree.Composite:
		res, err = run.composite(k, space)
	case *tree.Blend:
		res, err = run.blend(k.In1, k.In2, k.Mode, space)
	case *tree.Merge:
		res, err = run.merge(k, space)
	case *tree.Morphology:
		res, err = run.input(k.In, space)
		if err == nil {
			morphology(res.pm, k, sx, sy)
		}
	case *tree.DropShadow:
		res, err = run.input(k.In, space)
		if err == nil {
			dx, dy := run.shift(k.DX, k.DY, res.pm)
			filter.DropShadow(res.pm, dx, dy,
				max(k.StdDevX*sx, 0), max(k.StdDevY*sy, 0), k.Color)
		}
	case *tree.Tile:
		res, err = run.tile(k, space)
	default:
		res, err = run.input(tree.Input{}, space)
	}
	if err != nil {
		return filterImage{}, err
	}

	res.pm.ClearOutside(sub)
	res.area = sub
	return res, nil
}

// blur applies a Gaussian blur; a negative deviation makes the result
// transparent.
func blur(pm *pixmap.Pixmap, sigmaX, sigmaY float64) {
	if sigmaX < 0 || sigmaY < 0 {
		pm.Clear()
		return
	}
	filter.Blur(pm, sigmaX, sigmaY)
}

// shift maps a user-space offset to whole device pixels. Offsets beyond
// the image size move everything out, so they are clamped to it before
// conversion.
func (run *filterRun) shift(dx, dy float64, pm *pixmap.Pixmap) (int, int) {
	d := run.ts.TransformVector(geom.Pt(dx, dy))
	return clampShift(d.X, pm.Width()), clampShift(d.Y, pm.Height())
}

func clampShift(v float64, limit int) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(max(-float64(limit), min(v, float64(limit)))))
}

// morphology uses the larger of the two radii for both axes.
func morphology(pm *pixmap.Pixmap, m *tree.Morphology, sx, sy float64) {
	rx, ry := m.RadiusX*sx, m.RadiusY*sy
	if rx < 0 || ry < 0 {
		pm.Clear()
		return
	}
	radius := min(max(rx, ry), float64(max(pm.Width(), pm.Height())))
	if m.Operator == tree.Dilate {
		filter.Dilate(pm, radius)
	} else {
		filter.Erode(pm, radius)
	}
}

var compositeModes = [...]pixmap.BlendMode{
	tree.CompositeOver: pixmap.BlendNormal,
	tree.CompositeIn:   pixmap.BlendSourceIn,
	tree.CompositeOut:  pixmap.BlendSourceOut,
	tree.CompositeAtop: pixmap.BlendSourceAtop,
	tree.CompositeXor:  pixmap.BlendXor,
}

func (run *filterRun) composite(c *tree.Composite, space tree.ColorInterpolation) (filterImage, error) {
	if c.Operator != tree.CompositeArithmetic {
		return run.blend(c.In1, c.In2, compositeModes[c.Operator], space)
	}
	in1, err := run.input(c.In1, space)
	if err != nil {
		return filterImage{}, err
	}
	in2, err := run.input(c.In2, space)
	if err != nil {
		return filterImage{}, err
	}
	filter.Arithmetic(in2.pm, in1.pm, in2.pm, c.K1, c.K2, c.K3, c.K4)
	return in2, nil
}

// blend draws in1 onto in2 with mode.
func (run *filterRun) blend(in1, in2 tree.Input, mode pixmap.BlendMode, space tree.ColorInterpolation) (filterImage, error) {
	src, err := run.input(in1, space)
	if err != nil {
		return filterImage{}, err
	}
	dst, err := run.input(in2, space)
	if err != nil {
		return filterImage{}, err
	}
	dst.pm.DrawPixmap(0, 0, src.pm, pixmap.PixmapPaint{Opacity: 1, Blend: mode})
	return dst, nil
}

func (run *filterRun) merge(m *tree.Merge, space tree.ColorInterpolation) (filterImage, error) {
	pm, err := run.newImage()
	if err != nil {
		return filterImage{}, err
	}
	for _, in := range m.Inputs {
		src, err := run.input(in, space)
		if err != nil {
			return filterImage{}, err
		}
		pm.DrawPixmap(0, 0, src.pm, pixmap.DefaultPixmapPaint())
	}
	return filterImage{pm: pm, space: space}, nil
}

func (run *filterRun) tile(t *tree.Tile, space tree.ColorInterpolation) (filterImage, error) {
	in, err := run.input(t.In, space)
	if err != nil {
		return filterImage{}, err
	}
	filter.Tile(in.pm, in.pm, in.area)
	return in, nil
}

// transferFunc converts a component transfer function to a closure over
// [0, 1]. The identity maps to nil.
func transferFunc(f tree.TransferFunc) filter.TransferFunc {
	switch f.Kind {
	case tree.TransferTable:
		n := len(f.TableValues)
		if n == 0 {
			return nil
		}
		values := f.TableValues
		return func(c float64) float64 {
			if n == 1 || c >= 1 {
				return values[n-1]
			}
			k := int(c * float64(n-1))
			v0, v1 := values[k], values[k+1]
			return v0 + (c*float64(n-1)-float64(k))*(v1-v0)
		}
	case tree.TransferDiscrete:
		n := len(f.TableValues)
		if n == 0 {
			return nil
		}
		values := f.TableValues
		return func(c float64) float64 {
			return values[min(int(c*float64(n)), n-1)]
		}
	case tree.TransferLinear:
		return func(c float64) float64 {
			return f.Slope*c + f.Intercept
		}
	case tree.TransferGamma:
		return func(c float64) float64 {
			return f.Amplitude*math.Pow(c, f.Exponent) + f.Offset
		}
	}
	return nil
}
