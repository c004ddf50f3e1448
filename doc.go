// Package ggsvg renders resolved vector scene graphs into raster images.
//
// # Overview
//
// A scene is a [tree.Tree] of groups, filled and stroked paths and images,
// typically produced from an SVG document by an upstream parser or loaded
// with package scenefile. Render walks the tree depth-first in painter's
// order and draws every primitive into a premultiplied RGBA
// [pixmap.Pixmap].
//
// # Quick Start
//
//	t, err := scenefile.Load("scene.yaml")
//	if err != nil {
//	    return err
//	}
//	pm, err := pixmap.New(512, 512)
//	if err != nil {
//	    return err
//	}
//	ggsvg.Render(t, geom.Identity(), pm)
//	return pm.EncodePNG(w)
//
// # Layers
//
// Groups that only change the coordinate system are drawn directly into
// their parent. Every other group (opacity, blend mode, clip path, mask or
// filters) is drawn into an offscreen layer covering its device bounding
// box, which is then filtered, clipped, masked and composited back with the
// group's opacity and blend mode. Layers of groups without filters get a
// two-pixel margin for anti-aliasing. All layers are clamped to a region
// bound of four times the target size.
//
// # Errors
//
// Render does not return errors. Subtrees that cannot be drawn (empty
// bounding box, singular transform, failed allocation, excessive nesting)
// are skipped and reported through the logger configured with SetLogger.
//
// # Coordinate System
//
// Origin at the top-left, x to the right, y down. Pixel centers are at
// half-integer coordinates.
package ggsvg
