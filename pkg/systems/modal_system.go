package systems

import (
	"log"
	"net/url"
	"strings"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/utils"
)

// AudioController 弹窗需要的音频能力
type AudioController interface {
	PlaySong(i int) bool
	StopAll()
	SongCount() int
}

// LinkOpener 打开外部链接
type LinkOpener interface {
	OpenURL(url string) error
}

// ClipboardWriter 写入剪贴板
type ClipboardWriter interface {
	WriteText(text string) error
}

// ModalController 弹窗控制
//
// 同一时间最多一个弹窗。弹窗打开时独占指针和键盘输入：
//   - SongChoice：点击歌曲行播放该曲目并关闭；Escape/q 关闭
//   - Exit：打开时停止所有音频；Escape/q 关闭，音频不会自动恢复
//   - WishEntry：输入愿望，Enter 提交（非空时打开分享链接），Escape 取消
type ModalController struct {
	active       components.ModalKind
	buffer       components.WishBuffer
	audio        AudioController
	links        LinkOpener
	clipboard    ClipboardWriter
	shareBaseURL string
	songRows     []utils.Rect

	// DismissOnOutsideTap 点击面板外部时关闭弹窗（移动端没有 Escape 键）
	DismissOnOutsideTap bool
}

// NewModalController 创建弹窗控制器
//
// 参数：
//   - audio: 音频控制（选歌、停止）
//   - links: 外部链接打开器
//   - clipboard: 剪贴板（可为 nil）
//   - shareBaseURL: 愿望分享地址前缀，提交时拼接 URL 编码后的文字
func NewModalController(audio AudioController, links LinkOpener, clipboard ClipboardWriter, shareBaseURL string) *ModalController {
	count := audio.SongCount()
	if count > config.MaxSongs {
		count = config.MaxSongs
	}
	rows := make([]utils.Rect, count)
	for i := range rows {
		rows[i] = SongRowRect(i)
	}
	return &ModalController{
		audio:        audio,
		links:        links,
		clipboard:    clipboard,
		shareBaseURL: shareBaseURL,
		songRows:     rows,
	}
}

// SongRowRect 选歌弹窗第 i 行的点击区域
func SongRowRect(i int) utils.Rect {
	return utils.NewRect(
		config.SongRowX,
		config.SongRowFirstY+float64(i)*config.SongRowStep,
		config.SongRowWidth,
		config.SongRowHeight,
	)
}

// ModalPanelRect 各弹窗面板的位置
func ModalPanelRect(kind components.ModalKind) utils.Rect {
	cx, cy := config.CanvasCenterX, config.CanvasCenterY
	switch kind {
	case components.ModalSongChoice:
		return utils.NewRect(cx-200, cy-168, 400, 312)
	case components.ModalExit:
		return utils.NewRect(cx-210, cy-65, 420, 130)
	case components.ModalWishEntry:
		return utils.NewRect(cx-242, cy-72, 484, 136)
	}
	return utils.Rect{}
}

// Active 当前弹窗
func (mc *ModalController) Active() components.ModalKind {
	return mc.active
}

// IsOpen 是否有弹窗打开
func (mc *ModalController) IsOpen() bool {
	return mc.active != components.ModalNone
}

// WishText 当前输入的愿望
func (mc *ModalController) WishText() string {
	return mc.buffer.String()
}

// SongRows 歌曲行点击区域
func (mc *ModalController) SongRows() []utils.Rect {
	return mc.songRows
}

// ExitMessage 退出弹窗的文字，提示如何关闭弹窗并用 Replay 重新开始
func (mc *ModalController) ExitMessage() string {
	if mc.DismissOnOutsideTap {
		return "Goodbye!\nTap outside to close,\nthen Replay to start again."
	}
	return "Goodbye!\nPress Esc to close,\nthen Replay to start again."
}

// Open 打开弹窗，替换当前弹窗
func (mc *ModalController) Open(kind components.ModalKind) {
	switch kind {
	case components.ModalExit:
		mc.audio.StopAll()
	case components.ModalWishEntry:
		mc.buffer.Clear()
	}
	mc.active = kind
	log.Printf("[ModalController] Opened %s", kind)
}

// Close 关闭弹窗并清空输入
func (mc *ModalController) Close() {
	if mc.active != components.ModalNone {
		log.Printf("[ModalController] Closed %s", mc.active)
	}
	mc.active = components.ModalNone
	mc.buffer.Clear()
}

// HandleClick 处理点击
// 有弹窗时点击总是被消费（返回 true），不会落到按钮上
func (mc *ModalController) HandleClick(x, y float64) bool {
	if mc.active == components.ModalNone {
		return false
	}

	if mc.active == components.ModalSongChoice {
		for i, row := range mc.songRows {
			if row.Contains(x, y) {
				mc.selectSong(i)
				return true
			}
		}
	}

	if mc.DismissOnOutsideTap && !ModalPanelRect(mc.active).Contains(x, y) {
		mc.Close()
	}
	return true
}

func (mc *ModalController) selectSong(i int) {
	if mc.audio.PlaySong(i) {
		log.Printf("[ModalController] Selected song %d", i)
	}
	mc.Close()
}

// HandleKeyboard 处理本帧键盘输入
// 有弹窗时返回 true
func (mc *ModalController) HandleKeyboard(k utils.KeyboardState) bool {
	switch mc.active {
	case components.ModalNone:
		return false

	case components.ModalSongChoice, components.ModalExit:
		if k.Escape || containsRune(k.Runes, 'q') {
			mc.Close()
		}

	case components.ModalWishEntry:
		if k.Escape {
			mc.Close()
			return true
		}
		mc.buffer.Append(k.Runes...)
		if k.Backspace {
			mc.buffer.Backspace()
		}
		if k.Enter {
			mc.submitWish()
		}
	}
	return true
}

// submitWish 提交愿望：非空时打开分享链接并复制到剪贴板，然后关闭
func (mc *ModalController) submitWish() {
	if !mc.buffer.IsBlank() {
		text := mc.buffer.String()
		link := ShareURL(mc.shareBaseURL, text)
		if err := mc.links.OpenURL(link); err != nil {
			log.Printf("[ModalController] Warning: failed to open share link: %v", err)
		}
		if mc.clipboard != nil {
			if err := mc.clipboard.WriteText(text); err != nil {
				log.Printf("[ModalController] Warning: failed to copy wish: %v", err)
			}
		}
		log.Printf("[ModalController] Wish submitted (%d chars)", len([]rune(text)))
	}
	mc.Close()
}

// uriComponent 把 QueryEscape 的结果改成 encodeURIComponent 的形式：
// 空格为 %20，!'()* 保持原样
var uriComponent = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ShareURL 拼接分享链接
func ShareURL(base, text string) string {
	return base + uriComponent.Replace(url.QueryEscape(text))
}

func containsRune(rs []rune, target rune) bool {
	for _, r := range rs {
		if r == target {
			return true
		}
	}
	return false
}
