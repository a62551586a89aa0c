package utils

import (
	"image/color"
	"testing"
)

func TestBlendRGB(t *testing.T) {
	from := [3]float64{255, 180, 220}
	to := [3]float64{170, 160, 190}

	if got := BlendRGB(from, to, 0); got != (color.NRGBA{R: 255, G: 180, B: 220, A: 255}) {
		t.Errorf("t=0 should return the start color, got %+v", got)
	}
	if got := BlendRGB(from, to, 1); got != (color.NRGBA{R: 170, G: 160, B: 190, A: 255}) {
		t.Errorf("t=1 should return the end color, got %+v", got)
	}

	mid := BlendRGB(from, to, 0.5)
	if mid.R < 211 || mid.R > 213 {
		t.Errorf("expected red channel near 212, got %d", mid.R)
	}
}

func TestBlendRGBClampsOverflow(t *testing.T) {
	// 170+110t 在 t=1 时为 280，超出部分应被截断
	got := BlendRGB([3]float64{280, 0, 0}, [3]float64{280, 0, 0}, 0.5)
	if got.R != 255 {
		t.Errorf("expected clamped red 255, got %d", got.R)
	}
}

func TestNRGBAAndWithAlpha(t *testing.T) {
	c := NRGBA(300, -5, 127.6, 210)
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 210 {
		t.Errorf("unexpected NRGBA result %+v", c)
	}
	if WithAlpha(c, 12).A != 12 {
		t.Error("WithAlpha did not replace alpha")
	}
}
