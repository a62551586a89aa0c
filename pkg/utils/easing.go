package utils

import "github.com/tanema/gween/ease"

// Easing Functions (缓动函数)
//
// 缓动曲线统一使用 gween/ease，本文件把 gween 的 (t, b, c, d) 签名
// 适配成 [0, 1] → [0, 1] 的归一化形式，便于在按时间计算的动画里直接使用。

// Ease 以归一化进度调用 gween 缓动函数
// 输入会先被限制在 [0, 1]
func Ease(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(Clamp01(t)), 0, 1, 1))
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³，光环亮度从头部向后衰减时使用
func EaseOutCubic(t float64) float64 {
	return Ease(ease.OutCubic, t)
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp 将值限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp 线性插值，t 不做限制
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
