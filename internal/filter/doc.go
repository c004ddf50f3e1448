// Package filter implements the pixel math of filter primitives on
// premultiplied RGBA pixmaps.
//
// Functions operate on whole pixmaps; callers crop to the filter region
// first. Pixels outside a pixmap are transparent black.
//
// Primitives that work on straight colors (color matrix, component
// transfer) unpremultiply, transform and premultiply again. Conversion
// between sRGB and linearRGB is table driven.
package filter
