package utils

import (
	"image/color"
	"testing"
)

func TestRenderPanelFillsInterior(t *testing.T) {
	fill := color.NRGBA{R: 43, G: 158, B: 75, A: 255}
	img, err := RenderPanel(PanelStyle{
		W: 112, H: 47, Radius: 11,
		Fill:        fill,
		Stroke:      color.NRGBA{R: 255, G: 244, B: 255, A: 255},
		StrokeWidth: 2,
	})
	if err != nil {
		t.Fatalf("RenderPanel failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 112 || b.Dy() != 47 {
		t.Fatalf("unexpected bounds %v", b)
	}

	r, g, bl, a := img.At(56, 23).RGBA()
	if uint8(r>>8) != fill.R || uint8(g>>8) != fill.G || uint8(bl>>8) != fill.B || uint8(a>>8) != 255 {
		t.Errorf("center pixel = (%d,%d,%d,%d), want fill %+v", r>>8, g>>8, bl>>8, a>>8, fill)
	}

	// 圆角外侧的角点保持透明
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner pixel should be transparent, alpha=%d", a>>8)
	}
}

func TestRenderPanelWithLabel(t *testing.T) {
	img, err := RenderPanel(PanelStyle{
		W: 112, H: 47, Radius: 11,
		Fill:       color.NRGBA{R: 41, G: 139, B: 231, A: 255},
		Label:      "Wishes",
		LabelColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		LabelSize:  19,
	})
	if err != nil {
		t.Fatalf("RenderPanel failed: %v", err)
	}

	// 文字区域内应出现接近白色的像素
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 > 230 && g>>8 > 230 && bl>>8 > 230 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected label pixels in rendered panel")
	}
}

func TestRenderPanelRejectsEmptySize(t *testing.T) {
	if _, err := RenderPanel(PanelStyle{W: 0, H: 10}); err == nil {
		t.Error("expected error for zero width")
	}
}
