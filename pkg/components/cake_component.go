package components

import "image/color"

// CakeSprinkle 蛋糕上的彩色糖粒，每帧重新随机
type CakeSprinkle struct {
	X, Y  float64
	Color color.NRGBA
}

// CakeState 蛋糕本帧的动画状态
type CakeState struct {
	CenterX, CenterY float64
	Sprinkles        []CakeSprinkle
	Flicker          float64 // 火焰跳动 0~1
}
