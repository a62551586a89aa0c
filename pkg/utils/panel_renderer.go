package utils

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// PanelStyle 圆角面板（按钮、弹窗底板、输入框）的外观
// 结构体可比较，可直接作为缓存键
type PanelStyle struct {
	W, H        int
	Radius      float64
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
	Label       string
	LabelColor  color.NRGBA
	LabelSize   float64
}

var panelFont *truetype.Font

// loadPanelFont 解析内置的 Go Mono 字体（只解析一次）
func loadPanelFont() (*truetype.Font, error) {
	if panelFont != nil {
		return panelFont, nil
	}
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse panel font: %w", err)
	}
	panelFont = f
	return f, nil
}

// RenderPanel 用 gg 栅格化一个圆角面板
//
// 描边画在面板内侧，避免被图片边缘裁掉。
// Label 非空时居中绘制文字。
func RenderPanel(style PanelStyle) (image.Image, error) {
	if style.W <= 0 || style.H <= 0 {
		return nil, fmt.Errorf("invalid panel size %dx%d", style.W, style.H)
	}

	dc := gg.NewContext(style.W, style.H)
	inset := style.StrokeWidth / 2
	w, h := float64(style.W)-2*inset, float64(style.H)-2*inset
	// 圆角不超过短边的一半
	radius := math.Min(style.Radius, math.Min(w, h)/2)
	dc.DrawRoundedRectangle(inset, inset, w, h, radius)
	dc.SetColor(style.Fill)
	if style.StrokeWidth > 0 {
		dc.FillPreserve()
		dc.SetColor(style.Stroke)
		dc.SetLineWidth(style.StrokeWidth)
		dc.Stroke()
	} else {
		dc.Fill()
	}

	if style.Label != "" {
		f, err := loadPanelFont()
		if err != nil {
			return nil, err
		}
		face := truetype.NewFace(f, &truetype.Options{
			Size:    style.LabelSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetColor(style.LabelColor)
		dc.DrawStringAnchored(style.Label, float64(style.W)/2, float64(style.H)/2, 0.5, 0.35)
	}

	return dc.Image(), nil
}
