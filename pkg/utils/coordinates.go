// Package utils 提供贺卡各模块共用的工具函数
//
// coordinates.go 提供画布坐标系下的矩形与点击检测。
// 画布坐标以左上角为原点，单位为逻辑像素，与窗口实际大小无关。
package utils

// Rect 画布上的轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

// NewRect 构造矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains 判断点是否严格落在矩形内部（边界上的点不算命中）
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredRect 以 (cx, cy) 为中心构造矩形
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
