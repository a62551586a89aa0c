package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/bdaygreet/pkg/utils"
)

// InputSource 每帧的指针与键盘输入
type InputSource interface {
	// Click 本帧是否发生点击或触摸，以及画布坐标
	Click() (bool, float64, float64)
	// Keyboard 本帧的文字与按键输入
	Keyboard() utils.KeyboardState
	// ToggleKeys 本帧是否按下彩纸开关 (c) 与背景模式开关 (m)
	ToggleKeys() (confetti, backdrop bool)
}

// ebitenInput 从 Ebitengine 读取输入
type ebitenInput struct {
	runeBuf []rune
}

// NewEbitenInput 创建读取真实键鼠/触摸的输入源
func NewEbitenInput() InputSource {
	return &ebitenInput{runeBuf: make([]rune, 0, 16)}
}

func (in *ebitenInput) Click() (bool, float64, float64) {
	ok, x, y := utils.IsJustTouchedOrClicked()
	return ok, float64(x), float64(y)
}

func (in *ebitenInput) Keyboard() utils.KeyboardState {
	state := utils.ReadKeyboard(in.runeBuf)
	in.runeBuf = state.Runes
	return state
}

func (in *ebitenInput) ToggleKeys() (bool, bool) {
	return inpututil.IsKeyJustPressed(ebiten.KeyC), inpututil.IsKeyJustPressed(ebiten.KeyM)
}
