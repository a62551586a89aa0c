package utils

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendRGB 在 RGB 空间按 t 混合两种颜色（等价于 p5 的 lerpColor）
// 分量先被限制在 0~255，alpha 取 255
func BlendRGB(from, to [3]float64, t float64) color.NRGBA {
	c1 := colorful.Color{R: clampChannel(from[0]), G: clampChannel(from[1]), B: clampChannel(from[2])}
	c2 := colorful.Color{R: clampChannel(to[0]), G: clampChannel(to[1]), B: clampChannel(to[2])}
	r, g, b := c1.BlendRgb(c2, Clamp01(t)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// NRGBA 由浮点分量构造非预乘颜色，分量会被限制在 0~255
func NRGBA(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: channel(a)}
}

// WithAlpha 替换颜色的 alpha
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = channel(a)
	return c
}

func clampChannel(v float64) float64 {
	return Clamp(v, 0, 255) / 255
}

func channel(v float64) uint8 {
	return uint8(Clamp(v, 0, 255) + 0.5)
}
