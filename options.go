package ggsvg

import "github.com/gogpu/ggsvg/pixmap"

// DefaultMaxDepth is the default limit on group nesting.
const DefaultMaxDepth = 1024

// Option configures a render call or a Context.
//
// Example:
//
//	ggsvg.Render(t, geom.Identity(), pm, ggsvg.WithMaxDepth(64))
type Option func(*options)

// options holds optional configuration for a render call.
type options struct {
	maxDepth int
	alloc    func(width, height int) (*pixmap.Pixmap, error)
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		maxDepth: DefaultMaxDepth,
		alloc:    pixmap.New,
	}
}

// WithMaxDepth limits how deeply groups may nest. Groups beyond the limit
// are skipped with a warning. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithAllocator replaces the function that allocates offscreen layers, for
// example to enforce a memory budget. A nil function is ignored.
func WithAllocator(alloc func(width, height int) (*pixmap.Pixmap, error)) Option {
	return func(o *options) {
		if alloc != nil {
			o.alloc = alloc
		}
	}
}
