package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置，触摸优先
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// KeyboardState 当前帧的键盘输入
type KeyboardState struct {
	Runes     []rune // 本帧输入的可打印字符
	Enter     bool
	Backspace bool
	Escape    bool
}

// Empty 本帧没有任何键盘输入
func (k KeyboardState) Empty() bool {
	return len(k.Runes) == 0 && !k.Enter && !k.Backspace && !k.Escape
}

// ReadKeyboard 读取当前帧的键盘输入
// 退格键按住时先响应一次，30 帧后每 3 帧重复一次
func ReadKeyboard(runeBuf []rune) KeyboardState {
	state := KeyboardState{
		Runes:  ebiten.AppendInputChars(runeBuf[:0]),
		Enter:  inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	backspaceDuration := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	state.Backspace = backspaceDuration == 1 || (backspaceDuration >= 30 && backspaceDuration%3 == 0)

	return state
}
