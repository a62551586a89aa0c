package components

import "image/color"

// RingPoint 心形轮廓上的固定光点位置
// 亮起与否、大小与颜色都由时间计算，不保存状态
type RingPoint struct {
	X, Y float64
}

// RingGlow 本帧需要绘制的光点
type RingGlow struct {
	X, Y  float64
	Size  float64
	Color color.NRGBA
}

// HeartBlob 组成大心形的圆点，每帧大小与颜色轻微抖动
type HeartBlob struct {
	X, Y  float64
	W, H  float64
	Color color.NRGBA
}
