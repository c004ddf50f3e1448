package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/internal/raster"
	"github.com/gogpu/ggsvg/pixmap"
)

// NewRectMask returns a width×height coverage mask that is opaque inside r
// mapped through ts and transparent outside, with anti-aliased edges.
func NewRectMask(width, height int, ts geom.Matrix, r geom.Rect) (*pixmap.Mask, error) {
	m, err := pixmap.NewMask(width, height)
	if err != nil {
		return nil, err
	}
	if r.HasArea() {
		raster.FillMask(m, geom.NewRectPath(r), ts, geom.NonZero, true)
	}
	return m, nil
}
