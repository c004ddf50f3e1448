package geom

import (
	"math"
	"testing"
)

func TestEmptyRect(t *testing.T) {
	e := EmptyRect()
	if !e.IsEmpty() {
		t.Fatal("EmptyRect is not empty")
	}
	r := RectXYWH(1, 2, 3, 4)
	if got := e.Union(r); got != r {
		t.Errorf("EmptyRect().Union(r) = %+v, want %+v", got, r)
	}
	if _, ok := e.Transform(Identity()); ok {
		t.Error("transforming the empty sentinel succeeded")
	}
	nan := Rect{MinX: math.NaN(), MaxX: 1, MaxY: 1}
	if !nan.IsEmpty() {
		t.Error("NaN rect is not empty")
	}
}

func TestRectTransform(t *testing.T) {
	r := RectXYWH(0, 0, 10, 20)

	got, ok := r.Transform(Translate(5, 5).Multiply(Scale(2, 0.5)))
	if !ok {
		t.Fatal("Transform failed")
	}
	if want := RectXYWH(5, 5, 20, 10); got != want {
		t.Errorf("Transform = %+v, want %+v", got, want)
	}

	got, ok = RectXYWH(0, 0, 10, 10).Transform(Rotate(math.Pi / 4))
	if !ok {
		t.Fatal("rotated Transform failed")
	}
	if w := got.Width(); math.Abs(w-10*math.Sqrt2) > 1e-9 {
		t.Errorf("rotated width = %v, want %v", w, 10*math.Sqrt2)
	}

	if _, ok := r.Transform(Scale(0, 1)); ok {
		t.Error("singular transform succeeded")
	}
	if _, ok := RectXYWH(0, 0, 0, 10).Transform(Identity()); ok {
		t.Error("zero-width transform succeeded")
	}
}

func TestRoundOut(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		want   IntRect
		wantOK bool
	}{
		{"aligned", RectXYWH(0, 0, 10, 10), IntRect{0, 0, 10, 10}, true},
		{"fractional", RectXYWH(0.5, 1.25, 1, 2), IntRect{0, 1, 2, 3}, true},
		{"negative", RectXYWH(-1.5, -0.1, 1, 0.2), IntRect{-2, -1, 2, 2}, true},
		{"zero width", RectXYWH(1, 1, 0, 3), IntRect{}, false},
		{"huge", RectXYWH(0, 0, 1e12, 1), IntRect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.RoundOut()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("RoundOut = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIntRectFit(t *testing.T) {
	bound := IntRect{X: -200, Y: -200, W: 400, H: 400}

	inside := IntRect{X: 10, Y: 10, W: 50, H: 50}
	got, ok := inside.Fit(bound)
	if !ok || got != inside {
		t.Errorf("Fit(inside) = %+v, %v; want unchanged", got, ok)
	}
	again, _ := got.Fit(bound)
	if again != got {
		t.Errorf("Fit is not idempotent: %+v then %+v", got, again)
	}

	huge := IntRect{X: -1000, Y: -50, W: 5000, H: 100}
	got, ok = huge.Fit(bound)
	if !ok {
		t.Fatal("Fit(huge) failed")
	}
	if want := (IntRect{X: -200, Y: -50, W: 400, H: 100}); got != want {
		t.Errorf("Fit(huge) = %+v, want %+v", got, want)
	}
	if got.Area() > huge.Area() || !bound.Contains(got) {
		t.Errorf("Fit grew the rectangle or left the bound: %+v", got)
	}

	if _, ok := (IntRect{X: 500, Y: 500, W: 10, H: 10}).Fit(bound); ok {
		t.Error("Fit of a disjoint rectangle succeeded")
	}
}
