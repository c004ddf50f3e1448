package ggsvg

import (
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

// Context carries the state of a single render call. It is not safe for
// concurrent use; concurrent renders each create their own Context.
type Context struct {
	// maxBBox bounds every layer and filter region.
	maxBBox geom.IntRect

	depth    int
	maxDepth int
	alloc    func(width, height int) (*pixmap.Pixmap, error)
}

// NewContext returns a Context for a target of the given size. Its region
// bound spans four times the target in each axis, offset by twice the size,
// so any plausibly transformed content stays representable.
func NewContext(width, height int, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		maxBBox:  geom.IntRect{X: -2 * width, Y: -2 * height, W: 4 * width, H: 4 * height},
		maxDepth: o.maxDepth,
		alloc:    o.alloc,
	}
}

// MaxBBox returns the region bound.
func (c *Context) MaxBBox() geom.IntRect {
	return c.maxBBox
}

// derive returns a Context for rendering into an offscreen buffer of the
// given size (pattern tiles, mask content, nested images). Nesting depth and
// allocation policy carry over.
func (c *Context) derive(width, height int) *Context {
	return &Context{
		maxBBox:  geom.IntRect{X: -2 * width, Y: -2 * height, W: 4 * width, H: 4 * height},
		depth:    c.depth,
		maxDepth: c.maxDepth,
		alloc:    c.alloc,
	}
}

// newLayer allocates an offscreen buffer through the configured allocator.
func (c *Context) newLayer(width, height int) (*pixmap.Pixmap, error) {
	return c.alloc(width, height)
}
