package ggsvg

import "errors"

// Errors reported (as warnings) when a group subtree is skipped. Rendering
// of siblings and ancestors always continues.
var (
	// ErrInvalidBBox is reported for a group whose bounding box is the
	// empty sentinel.
	ErrInvalidBBox = errors.New("ggsvg: invalid group bounding box")

	// ErrDegenerateTransform is reported when a group's bounding box cannot
	// be mapped to device space.
	ErrDegenerateTransform = errors.New("ggsvg: degenerate transform")

	// ErrEmptyLayer is reported when a layer falls entirely outside the
	// region bound.
	ErrEmptyLayer = errors.New("ggsvg: empty layer")

	// ErrLayerAlloc is reported when a layer buffer cannot be allocated.
	ErrLayerAlloc = errors.New("ggsvg: layer allocation failed")

	// ErrTooDeep is reported for groups nested beyond the configured limit.
	ErrTooDeep = errors.New("ggsvg: group nesting too deep")
)
