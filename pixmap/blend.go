package pixmap

import "github.com/gogpu/ggsvg/internal/blend"

// BlendMode selects how a source is combined with a destination.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	// Porter-Duff operators used internally by clip, mask and filter code.
	BlendClear
	BlendSource
	BlendDestinationOver
	BlendSourceIn
	BlendDestinationIn
	BlendSourceOut
	BlendDestinationOut
	BlendSourceAtop
	BlendDestinationAtop
	BlendXor
	BlendPlus
)

var blendNames = [...]string{
	BlendNormal:          "normal",
	BlendMultiply:        "multiply",
	BlendScreen:          "screen",
	BlendOverlay:         "overlay",
	BlendDarken:          "darken",
	BlendLighten:         "lighten",
	BlendColorDodge:      "color-dodge",
	BlendColorBurn:       "color-burn",
	BlendHardLight:       "hard-light",
	BlendSoftLight:       "soft-light",
	BlendDifference:      "difference",
	BlendExclusion:       "exclusion",
	BlendHue:             "hue",
	BlendSaturation:      "saturation",
	BlendColor:           "color",
	BlendLuminosity:      "luminosity",
	BlendClear:           "clear",
	BlendSource:          "source",
	BlendDestinationOver: "destination-over",
	BlendSourceIn:        "source-in",
	BlendDestinationIn:   "destination-in",
	BlendSourceOut:       "source-out",
	BlendDestinationOut:  "destination-out",
	BlendSourceAtop:      "source-atop",
	BlendDestinationAtop: "destination-atop",
	BlendXor:             "xor",
	BlendPlus:            "plus",
}

// String returns the CSS keyword of the mode.
func (m BlendMode) String() string {
	if int(m) < len(blendNames) {
		return blendNames[m]
	}
	return "unknown"
}

// ParseBlendMode returns the mode named by a CSS keyword.
func ParseBlendMode(s string) (BlendMode, bool) {
	for i, name := range blendNames {
		if name == s {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}

var blendOps = [...]blend.Mode{
	BlendNormal:          blend.ModeSourceOver,
	BlendMultiply:        blend.ModeMultiply,
	BlendScreen:          blend.ModeScreen,
	BlendOverlay:         blend.ModeOverlay,
	BlendDarken:          blend.ModeDarken,
	BlendLighten:         blend.ModeLighten,
	BlendColorDodge:      blend.ModeColorDodge,
	BlendColorBurn:       blend.ModeColorBurn,
	BlendHardLight:       blend.ModeHardLight,
	BlendSoftLight:       blend.ModeSoftLight,
	BlendDifference:      blend.ModeDifference,
	BlendExclusion:       blend.ModeExclusion,
	BlendHue:             blend.ModeHue,
	BlendSaturation:      blend.ModeSaturation,
	BlendColor:           blend.ModeColor,
	BlendLuminosity:      blend.ModeLuminosity,
	BlendClear:           blend.ModeClear,
	BlendSource:          blend.ModeSource,
	BlendDestinationOver: blend.ModeDestinationOver,
	BlendSourceIn:        blend.ModeSourceIn,
	BlendDestinationIn:   blend.ModeDestinationIn,
	BlendSourceOut:       blend.ModeSourceOut,
	BlendDestinationOut:  blend.ModeDestinationOut,
	BlendSourceAtop:      blend.ModeSourceAtop,
	BlendDestinationAtop: blend.ModeDestinationAtop,
	BlendXor:             blend.ModeXor,
	BlendPlus:            blend.ModePlus,
}

// Blender returns a function compositing a source pixel onto a destination
// pixel under m. Unknown modes behave as BlendNormal.
func (m BlendMode) Blender() func(src, dst Pixel) Pixel {
	op := blend.ModeSourceOver
	if int(m) < len(blendOps) {
		op = blendOps[m]
	}
	f := blend.Get(op)
	return func(s, d Pixel) Pixel {
		r, g, b, a := f(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
		return Pixel{R: r, G: g, B: b, A: a}
	}
}

// AffectsTransparent reports whether m changes the destination where the
// source is fully transparent.
func (m BlendMode) AffectsTransparent() bool {
	switch m {
	case BlendClear, BlendSource, BlendSourceIn, BlendDestinationIn,
		BlendSourceOut, BlendDestinationAtop:
		return true
	}
	return false
}
