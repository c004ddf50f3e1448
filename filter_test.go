package ggsvg

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

// filteredGroup wraps children in a group carrying one filter over rect.
func filteredGroup(rect geom.Rect, prims []tree.Primitive, children ...tree.Node) *tree.Group {
	g := tree.NewGroup(children...)
	g.Filters = []*tree.Filter{{Rect: rect, Primitives: prims}}
	g.BBox = g.ComputeBBox()
	return g
}

func TestPrepareFilterPaint(t *testing.T) {
	ctx := NewContext(10, 10)
	if pm := prepareFilterPaint(nil, ctx, 7, 5); pm != nil {
		t.Fatal("nil paint should produce no image")
	}

	pm := prepareFilterPaint(tree.Color(green), ctx, 7, 5)
	if pm == nil {
		t.Fatal("got nil image")
	}
	if pm.Width() != 7 || pm.Height() != 5 {
		t.Fatalf("size = %dx%d, want 7x5", pm.Width(), pm.Height())
	}
	want := pixmap.Pixel{G: 255, A: 255}
	for y := range 5 {
		for x := range 7 {
			if got := pm.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFilterFillPaintInput(t *testing.T) {
	g := filteredGroup(geom.RectXYWH(0, 0, 20, 20), []tree.Primitive{{
		Kind: &tree.Offset{In: tree.Input{Kind: tree.InputFillPaint}},
	}}, rectFill(5, 5, 2, 2, red))
	g.FilterFill = tree.Color(blue)

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)

	// The source content is replaced by the uniform paint.
	assertPixel(t, pm, 6, 6, pixmap.Pixel{B: 255, A: 255}, 0)
	assertPixel(t, pm, 15, 15, pixmap.Pixel{B: 255, A: 255}, 0)
}

func TestFilterBlurSpreads(t *testing.T) {
	g := filteredGroup(geom.RectXYWH(0, 0, 40, 40), []tree.Primitive{{
		Kind: &tree.GaussianBlur{StdDevX: 2, StdDevY: 2},
	}}, rectFill(10, 10, 20, 20, red))

	pm := newPixmap(t, 40, 40)
	Render(newTree(40, 40, g), geom.Identity(), pm)

	if a := pm.Pixel(8, 20).A; a == 0 {
		t.Error("blur did not spread outside the shape")
	}
	if a := pm.Pixel(11, 20).A; a == 255 || a == 0 {
		t.Errorf("edge alpha = %d, want partial", a)
	}
	assertPixel(t, pm, 20, 20, pixmap.Pixel{R: 255, A: 255}, 1)
	assertPixel(t, pm, 0, 0, pixmap.Pixel{}, 0)
}

func TestFilterScalesWithTransform(t *testing.T) {
	g := filteredGroup(geom.RectXYWH(0, 0, 20, 20), []tree.Primitive{{
		Kind: &tree.Offset{DX: 3},
	}}, rectFill(0, 0, 2, 2, red))
	g.Transform = geom.Scale(2, 2)

	pm := newPixmap(t, 40, 40)
	Render(newTree(40, 40, g), geom.Identity(), pm)

	assertPixel(t, pm, 1, 1, pixmap.Pixel{}, 0)
	assertPixel(t, pm, 7, 1, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 10, 1, pixmap.Pixel{}, 0)
}

func TestFilterRegionOutsideLayerClears(t *testing.T) {
	layer := newPixmap(t, 10, 10)
	layer.Fill(red)
	f := &tree.Filter{
		Rect:       geom.RectXYWH(50, 50, 10, 10),
		Primitives: []tree.Primitive{{Kind: &tree.Offset{}}},
	}
	captureLog(t)
	applyFilter(f, NewContext(10, 10), geom.Identity(), nil, nil, layer)
	for _, v := range layer.Data() {
		if v != 0 {
			t.Fatal("layer not cleared")
		}
	}
}

func TestFilterClearsOutsideRegion(t *testing.T) {
	layer := newPixmap(t, 10, 10)
	layer.Fill(red)
	f := &tree.Filter{
		Rect:       geom.RectXYWH(2, 2, 4, 4),
		Primitives: []tree.Primitive{{Kind: &tree.Offset{}}},
	}
	applyFilter(f, NewContext(10, 10), geom.Identity(), nil, nil, layer)

	assertPixel(t, layer, 3, 3, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, layer, 1, 1, pixmap.Pixel{}, 0)
	assertPixel(t, layer, 7, 7, pixmap.Pixel{}, 0)
}

func TestFilterSubregionAndResults(t *testing.T) {
	sub := geom.RectXYWH(0, 0, 5, 10)
	f := &tree.Filter{
		Rect: geom.RectXYWH(0, 0, 10, 10),
		Primitives: []tree.Primitive{
			{Result: "left", Subregion: &sub, Kind: &tree.Flood{Color: red}},
			{Kind: &tree.Flood{Color: blue}},
			{Kind: &tree.Merge{Inputs: []tree.Input{
				{Kind: tree.InputDefault},
				{Kind: tree.InputReference, Name: "left"},
			}}},
		},
	}
	layer := newPixmap(t, 10, 10)
	applyFilter(f, NewContext(10, 10), geom.Identity(), nil, nil, layer)

	assertPixel(t, layer, 2, 5, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, layer, 7, 5, pixmap.Pixel{B: 255, A: 255}, 0)
}

func TestFilterComposite(t *testing.T) {
	tests := []struct {
		name string
		op   tree.CompositeOperator
		want pixmap.Pixel
	}{
		{"in keeps the source where the backdrop is", tree.CompositeIn, pixmap.Pixel{R: 255, A: 255}},
		{"out removes it", tree.CompositeOut, pixmap.Pixel{}},
		{"over", tree.CompositeOver, pixmap.Pixel{R: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &tree.Filter{
				Rect: geom.RectXYWH(0, 0, 4, 4),
				Primitives: []tree.Primitive{
					{Result: "backdrop", Kind: &tree.Flood{Color: blue}},
					{Kind: &tree.Composite{
						In1:      tree.Input{Kind: tree.InputSourceGraphic},
						In2:      tree.Input{Kind: tree.InputReference, Name: "backdrop"},
						Operator: tt.op,
					}},
				},
			}
			layer := newPixmap(t, 4, 4)
			layer.Fill(red)
			applyFilter(f, NewContext(4, 4), geom.Identity(), nil, nil, layer)
			assertPixel(t, layer, 1, 1, tt.want, 0)
		})
	}
}

func TestFilterArithmetic(t *testing.T) {
	f := &tree.Filter{
		Rect: geom.RectXYWH(0, 0, 4, 4),
		Primitives: []tree.Primitive{
			{Result: "b", Kind: &tree.Flood{Color: blue}},
			{Kind: &tree.Composite{
				In1:      tree.Input{Kind: tree.InputSourceGraphic},
				In2:      tree.Input{Kind: tree.InputReference, Name: "b"},
				Operator: tree.CompositeArithmetic,
				K2:       1,
				K3:       1,
			}},
		},
	}
	layer := newPixmap(t, 4, 4)
	layer.Fill(red)
	applyFilter(f, NewContext(4, 4), geom.Identity(), nil, nil, layer)
	assertPixel(t, layer, 1, 1, pixmap.Pixel{R: 255, B: 255, A: 255}, 0)
}

func TestFilterLinearRGBRoundTrip(t *testing.T) {
	f := &tree.Filter{
		Rect: geom.RectXYWH(0, 0, 4, 4),
		Primitives: []tree.Primitive{{
			ColorInterpolation: tree.LinearRGB,
			Kind:               &tree.ColorMatrix{Matrix: tree.IdentityMatrix()},
		}},
	}
	layer := newPixmap(t, 4, 4)
	layer.Fill(pixmap.RGB(0.5, 0.25, 0.75))
	want := layer.Pixel(0, 0)
	applyFilter(f, NewContext(4, 4), geom.Identity(), nil, nil, layer)
	assertPixel(t, layer, 2, 2, want, 3)
}

func TestFilterSourceAlphaAndComponentTransfer(t *testing.T) {
	f := &tree.Filter{
		Rect: geom.RectXYWH(0, 0, 4, 4),
		Primitives: []tree.Primitive{{
			Kind: &tree.ComponentTransfer{
				In: tree.Input{Kind: tree.InputSourceAlpha},
				R:  tree.TransferFunc{Kind: tree.TransferLinear, Slope: 0, Intercept: 1},
				A:  tree.TransferFunc{Kind: tree.TransferTable, TableValues: []float64{0, 0.5}},
			},
		}},
	}
	layer := newPixmap(t, 4, 4)
	layer.Fill(blue)
	applyFilter(f, NewContext(4, 4), geom.Identity(), nil, nil, layer)
	assertPixel(t, layer, 1, 1, pixmap.Pixel{R: 128, A: 128}, 1)
}

func TestTransferFunc(t *testing.T) {
	tests := []struct {
		name string
		f    tree.TransferFunc
		in   float64
		want float64
	}{
		{"table", tree.TransferFunc{Kind: tree.TransferTable, TableValues: []float64{0, 1, 0}}, 0.25, 0.5},
		{"table end", tree.TransferFunc{Kind: tree.TransferTable, TableValues: []float64{0, 1, 0}}, 1, 0},
		{"discrete", tree.TransferFunc{Kind: tree.TransferDiscrete, TableValues: []float64{0.2, 0.8}}, 0.4, 0.2},
		{"discrete end", tree.TransferFunc{Kind: tree.TransferDiscrete, TableValues: []float64{0.2, 0.8}}, 1, 0.8},
		{"linear", tree.TransferFunc{Kind: tree.TransferLinear, Slope: 2, Intercept: 0.1}, 0.2, 0.5},
		{"gamma", tree.TransferFunc{Kind: tree.TransferGamma, Amplitude: 1, Exponent: 2}, 0.5, 0.25},
	}
	for _, tt := range tests {
		fn := transferFunc(tt.f)
		if got := fn(tt.in); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("%s: f(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
	if transferFunc(tree.TransferFunc{}) != nil {
		t.Error("identity should map to nil")
	}
}

func TestFilterHugeBlurIsBounded(t *testing.T) {
	g := filteredGroup(geom.RectXYWH(0, 0, 100, 100), []tree.Primitive{{
		Kind: &tree.GaussianBlur{StdDevX: 1e5, StdDevY: 1e5},
	}}, rectFill(25, 25, 50, 50, green))

	pm := newPixmap(t, 100, 100)
	start := time.Now()
	Render(newTree(100, 100, g), geom.Identity(), pm)
	if d := time.Since(start); d > 2*time.Second {
		t.Errorf("render took %v", d)
	}
	assertPixel(t, pm, 50, 50, pixmap.Pixel{}, 0)
}

func TestFilterOffsetBeyondRange(t *testing.T) {
	opaque := pixmap.Pixel{G: 255, A: 255}
	tests := []struct {
		name   string
		kind   tree.PrimitiveKind
		center pixmap.Pixel
	}{
		{"offset right", &tree.Offset{DX: 1e20}, pixmap.Pixel{}},
		{"offset left", &tree.Offset{DX: -1e20}, pixmap.Pixel{}},
		{"offset down", &tree.Offset{DY: 1e20}, pixmap.Pixel{}},
		{"offset infinite", &tree.Offset{DX: math.Inf(-1)}, pixmap.Pixel{}},
		{"shadow moves away", &tree.DropShadow{DX: 1e20, DY: 1e20, Color: pixmap.Black}, opaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := filteredGroup(geom.RectXYWH(0, 0, 100, 100),
				[]tree.Primitive{{Kind: tt.kind}}, rectFill(25, 25, 50, 50, green))

			pm := newPixmap(t, 100, 100)
			Render(newTree(100, 100, g), geom.Identity(), pm)

			assertPixel(t, pm, 50, 50, tt.center, 0)
			assertPixel(t, pm, 10, 10, pixmap.Pixel{}, 0)
		})
	}
}

func TestClampShift(t *testing.T) {
	tests := []struct {
		v     float64
		limit int
		want  int
	}{
		{2.4, 10, 2},
		{-2.6, 10, -3},
		{1e20, 10, 10},
		{-1e20, 10, -10},
		{math.Inf(1), 7, 7},
		{math.NaN(), 7, 0},
	}
	for _, tt := range tests {
		if got := clampShift(tt.v, tt.limit); got != tt.want {
			t.Errorf("clampShift(%g, %d) = %d, want %d", tt.v, tt.limit, got, tt.want)
		}
	}
}
