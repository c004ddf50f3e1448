package ggsvg

import (
	"testing"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/tree"
)

func TestNewRectMask(t *testing.T) {
	m, err := NewRectMask(10, 10, geom.Identity(), geom.RectXYWH(2, 2, 4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.At(3, 3); got != 255 {
		t.Errorf("inside = %d, want 255", got)
	}
	if got := m.At(7, 7); got != 0 {
		t.Errorf("outside = %d, want 0", got)
	}

	m, err = NewRectMask(10, 10, geom.Translate(0.5, 0), geom.RectXYWH(2, 2, 4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.At(2, 3); got < 120 || got > 135 {
		t.Errorf("half-covered edge = %d, want about 128", got)
	}

	if _, err := NewRectMask(0, 10, geom.Identity(), geom.RectXYWH(0, 0, 1, 1)); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestClipPath(t *testing.T) {
	g := tree.NewGroup(rectFill(0, 0, 20, 20, red))
	g.ClipPath = &tree.ClipPath{
		Transform: geom.Identity(),
		Children:  []tree.Node{rectFill(0, 0, 10, 20, white)},
	}

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)

	assertPixel(t, pm, 5, 10, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 15, 10, pixmap.Pixel{}, 0)
}

func TestClipPathObjectBoundingBox(t *testing.T) {
	g := tree.NewGroup(rectFill(10, 10, 20, 20, red))
	g.ClipPath = &tree.ClipPath{
		Units:     tree.ObjectBoundingBox,
		Transform: geom.Identity(),
		Children:  []tree.Node{rectFill(0, 0, 0.5, 1, white)},
	}

	pm := newPixmap(t, 40, 40)
	Render(newTree(40, 40, g), geom.Identity(), pm)

	assertPixel(t, pm, 15, 20, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 25, 20, pixmap.Pixel{}, 0)
}

func TestClipPathNested(t *testing.T) {
	g := tree.NewGroup(rectFill(0, 0, 20, 20, red))
	g.ClipPath = &tree.ClipPath{
		Transform: geom.Identity(),
		Children:  []tree.Node{rectFill(0, 0, 10, 20, white)},
		ClipPath: &tree.ClipPath{
			Transform: geom.Identity(),
			Children:  []tree.Node{rectFill(0, 0, 20, 10, white)},
		},
	}

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)

	assertPixel(t, pm, 5, 5, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 5, 15, pixmap.Pixel{}, 0)
	assertPixel(t, pm, 15, 5, pixmap.Pixel{}, 0)
}

func TestClipPathGroupChildren(t *testing.T) {
	child := tree.NewGroup(rectFill(0, 0, 5, 20, white))
	child.Transform = geom.Translate(10, 0)
	child.ClipPath = &tree.ClipPath{
		Transform: geom.Identity(),
		Children:  []tree.Node{rectFill(0, 0, 5, 10, white)},
	}

	g := tree.NewGroup(rectFill(0, 0, 20, 20, red))
	g.ClipPath = &tree.ClipPath{
		Transform: geom.Identity(),
		Children:  []tree.Node{rectFill(0, 0, 5, 20, white), child},
	}

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)

	assertPixel(t, pm, 2, 15, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 12, 5, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 12, 15, pixmap.Pixel{}, 0)
	assertPixel(t, pm, 7, 5, pixmap.Pixel{}, 0)
}

func TestMaskLuminance(t *testing.T) {
	g := tree.NewGroup(rectFill(0, 0, 20, 20, red))
	g.Mask = &tree.Mask{
		Rect: geom.RectXYWH(0, 0, 20, 20),
		Kind: pixmap.MaskLuminance,
		Children: []tree.Node{
			rectFill(0, 0, 10, 20, white),
			rectFill(10, 0, 10, 20, pixmap.Black),
		},
	}

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)

	assertPixel(t, pm, 5, 10, pixmap.Pixel{R: 255, A: 255}, 1)
	assertPixel(t, pm, 15, 10, pixmap.Pixel{}, 0)
}

func TestMaskAlphaAndRegion(t *testing.T) {
	g := tree.NewGroup(rectFill(0, 0, 20, 20, red))
	g.Mask = &tree.Mask{
		Rect:     geom.RectXYWH(0, 0, 20, 10),
		Kind:     pixmap.MaskAlpha,
		Children: []tree.Node{rectFill(0, 0, 20, 20, pixmap.Black.WithAlpha(0.5))},
	}

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)

	assertPixel(t, pm, 10, 5, pixmap.Pixel{R: 128, A: 128}, 1)
	assertPixel(t, pm, 10, 15, pixmap.Pixel{}, 0)
}

func TestMaskObjectBoundingBoxOnFlatElement(t *testing.T) {
	captureLog(t)
	// A horizontal line has no area, so an objectBoundingBox mask hides it.
	line := &tree.StrokePath{
		Path: func() *geom.Path {
			p := geom.NewPath()
			p.MoveTo(0, 10)
			p.LineTo(20, 10)
			return p
		}(),
		Stroke:    tree.Stroke{Paint: tree.Color(red), Opacity: 1, Width: 4, MiterLimit: 4},
		AntiAlias: true,
	}
	g := tree.NewGroup(line)
	g.Mask = &tree.Mask{
		Units:    tree.ObjectBoundingBox,
		Rect:     geom.RectXYWH(0, 0, 1, 1),
		Kind:     pixmap.MaskAlpha,
		Children: []tree.Node{rectFill(0, 0, 20, 20, white)},
	}

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)
	assertPixel(t, pm, 10, 10, pixmap.Pixel{}, 0)
}

func TestNestedMask(t *testing.T) {
	g := tree.NewGroup(rectFill(0, 0, 20, 20, red))
	g.Mask = &tree.Mask{
		Rect:     geom.RectXYWH(0, 0, 20, 20),
		Kind:     pixmap.MaskAlpha,
		Children: []tree.Node{rectFill(0, 0, 10, 20, white)},
		Mask: &tree.Mask{
			Rect:     geom.RectXYWH(0, 0, 20, 20),
			Kind:     pixmap.MaskAlpha,
			Children: []tree.Node{rectFill(0, 0, 20, 10, white)},
		},
	}

	pm := newPixmap(t, 20, 20)
	Render(newTree(20, 20, g), geom.Identity(), pm)

	assertPixel(t, pm, 5, 5, pixmap.Pixel{R: 255, A: 255}, 0)
	assertPixel(t, pm, 5, 15, pixmap.Pixel{}, 0)
	assertPixel(t, pm, 15, 5, pixmap.Pixel{}, 0)
}
