package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 App 每帧驱动的画面
type Scene interface {
	// Update 推进一帧，deltaTime 为秒
	Update(deltaTime float64)

	// Draw 绘制到逻辑画布（900×640）
	Draw(screen *ebiten.Image)
}
