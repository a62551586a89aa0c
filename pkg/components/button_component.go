package components

import (
	"image/color"

	"github.com/decker502/bdaygreet/pkg/utils"
)

// ButtonAction 按钮动作
// 按钮只记录动作标签，由场景用 switch 分发
type ButtonAction int

const (
	// ActionReplay 整体重置并重新播放
	ActionReplay ButtonAction = iota
	// ActionExit 打开告别弹窗并停止音乐
	ActionExit
	// ActionWishes 打开愿望输入弹窗
	ActionWishes
	// ActionFun 打开选歌弹窗
	ActionFun
)

// UIButton 右侧的功能按钮
type UIButton struct {
	Label  string
	Rect   utils.Rect
	Color  color.NRGBA
	Action ButtonAction
}
