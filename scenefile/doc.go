// Package scenefile decodes YAML scene descriptions into render trees.
//
// A scene file mirrors the subset of SVG the renderer understands, with
// every reference resolved at load time:
//
//	width: 200
//	height: 100
//	viewBox: 0 0 200 100
//	defs:
//	  gradients:
//	    - id: sky
//	      type: linear
//	      stops:
//	        - {offset: 0, color: "#87ceeb"}
//	        - {offset: 1, color: white}
//	  filters:
//	    - id: soft
//	      primitives:
//	        - {type: blur, stdDeviation: [3]}
//	children:
//	  - type: rect
//	    width: 200
//	    height: 100
//	    fill: url(#sky)
//	  - type: group
//	    filter: [soft]
//	    children:
//	      - {type: circle, cx: 100, cy: 50, r: 30, fill: tomato}
//
// Node types are group, path, rect, circle, ellipse, line, polyline,
// polygon and image. Paint, stroke and fill-rule attributes are inherited
// from enclosing groups. Shapes that carry group-level attributes
// (opacity, blend, clipPath, mask, filter, transform) are wrapped in a
// group of their own.
//
// Images reference files relative to the scene file. Raster formats are
// PNG, JPEG, GIF, BMP, TIFF and WebP; a .yaml reference embeds another
// scene.
package scenefile
