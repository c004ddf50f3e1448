package blend

import "testing"

type rgba [4]byte

func apply(mode Mode, s, d rgba) rgba {
	r, g, b, a := Get(mode)(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
	return rgba{r, g, b, a}
}

func near(a, b rgba, tol int) bool {
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b byte
		want byte
	}{
		{0, 0, 0},
		{0, 255, 0},
		{255, 255, 255},
		{128, 128, 64},
		{255, 128, 128},
		{1, 1, 0},
		{100, 100, 39},
		{200, 200, 157},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddDiv255(t *testing.T) {
	tests := []struct {
		a, b byte
		want byte
	}{
		{0, 0, 0},
		{100, 100, 200},
		{200, 100, 255},
		{255, 255, 255},
	}
	for _, tt := range tests {
		if got := addDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("addDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPorterDuff(t *testing.T) {
	red := rgba{255, 0, 0, 255}
	blue := rgba{0, 0, 255, 255}
	halfRed := rgba{128, 0, 0, 128}
	clear := rgba{}

	tests := []struct {
		name string
		mode Mode
		s, d rgba
		want rgba
	}{
		{"clear", ModeClear, red, blue, clear},
		{"source", ModeSource, halfRed, blue, halfRed},
		{"source-over opaque", ModeSourceOver, red, blue, red},
		{"source-over translucent", ModeSourceOver, halfRed, blue, rgba{128, 0, 127, 255}},
		{"source-over onto empty", ModeSourceOver, halfRed, clear, halfRed},
		{"destination-over", ModeDestinationOver, red, blue, blue},
		{"source-in empty dst", ModeSourceIn, red, clear, clear},
		{"destination-in", ModeDestinationIn, halfRed, rgba{200, 100, 50, 255}, rgba{100, 50, 25, 128}},
		{"destination-in opaque mask", ModeDestinationIn, red, blue, blue},
		{"source-out opaque dst", ModeSourceOut, red, blue, clear},
		{"destination-out opaque src", ModeDestinationOut, red, blue, clear},
		{"source-atop", ModeSourceAtop, red, blue, red},
		{"destination-atop", ModeDestinationAtop, red, blue, blue},
		{"xor opaque", ModeXor, red, blue, clear},
		{"plus", ModePlus, red, blue, rgba{255, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(tt.mode, tt.s, tt.d); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeparable(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		s, d rgba
		want rgba
	}{
		{"multiply", ModeMultiply, rgba{255, 128, 0, 255}, rgba{128, 255, 255, 255}, rgba{128, 128, 0, 255}},
		{"screen white", ModeScreen, rgba{255, 255, 255, 255}, rgba{10, 20, 30, 255}, rgba{255, 255, 255, 255}},
		{"darken", ModeDarken, rgba{100, 200, 50, 255}, rgba{150, 100, 60, 255}, rgba{100, 100, 50, 255}},
		{"lighten", ModeLighten, rgba{100, 200, 50, 255}, rgba{150, 100, 60, 255}, rgba{150, 200, 60, 255}},
		{"difference", ModeDifference, rgba{255, 0, 100, 255}, rgba{55, 0, 150, 255}, rgba{200, 0, 50, 255}},
		{"exclusion black", ModeExclusion, rgba{0, 0, 0, 255}, rgba{10, 20, 30, 255}, rgba{10, 20, 30, 255}},
		{"transparent source keeps dst", ModeMultiply, rgba{}, rgba{10, 20, 30, 255}, rgba{10, 20, 30, 255}},
		{"empty dst takes src", ModeScreen, rgba{10, 20, 30, 40}, rgba{}, rgba{10, 20, 30, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(tt.mode, tt.s, tt.d); !near(got, tt.want, 1) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNonSeparable(t *testing.T) {
	gray200 := rgba{200, 200, 200, 255}
	gray50 := rgba{50, 50, 50, 255}

	if got := apply(ModeLuminosity, gray200, gray50); !near(got, gray200, 1) {
		t.Errorf("luminosity = %v, want %v", got, gray200)
	}
	if got := apply(ModeColor, gray200, gray50); !near(got, gray50, 1) {
		t.Errorf("color = %v, want %v", got, gray50)
	}
	// Hue of a gray source has zero saturation, so the result stays gray at the backdrop luminance.
	if got := apply(ModeHue, gray200, gray50); !near(got, gray50, 1) {
		t.Errorf("hue = %v, want %v", got, gray50)
	}
	if got := apply(ModeSaturation, rgba{}, gray50); got != gray50 {
		t.Errorf("saturation with transparent source = %v, want %v", got, gray50)
	}
}

func TestGetUnknownFallsBackToSourceOver(t *testing.T) {
	s := rgba{128, 0, 0, 128}
	d := rgba{0, 0, 255, 255}
	if got, want := apply(Mode(250), s, d), apply(ModeSourceOver, s, d); got != want {
		t.Errorf("unknown mode = %v, want %v", got, want)
	}
}
