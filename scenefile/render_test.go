package scenefile

import (
	"testing"

	"github.com/gogpu/ggsvg"
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
)

func TestRenderDecodedScene(t *testing.T) {
	tr := decodeString(t, `
width: 40
height: 20
viewBox: 0 0 20 10
children:
  - {type: rect, width: 10, height: 10, fill: "#00ff00"}
  - type: group
    opacity: 0.5
    children:
      - {type: rect, x: 10, width: 10, height: 10, fill: blue}
`)
	pm, err := pixmap.New(40, 20)
	if err != nil {
		t.Fatal(err)
	}
	ggsvg.Render(tr, geom.Identity(), pm)

	if got := pm.Pixel(5, 10); got != (pixmap.Pixel{G: 255, A: 255}) {
		t.Errorf("opaque rect pixel = %v", got)
	}
	if got := pm.Pixel(30, 10); got.R != 0 || got.G != 0 || got.B < 127 || got.B > 128 || got.A != got.B {
		t.Errorf("half-opaque group pixel = %v", got)
	}
}
