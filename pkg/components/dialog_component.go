package components

// ModalKind 当前打开的弹窗
// 同一时间最多只有一个弹窗
type ModalKind int

const (
	// ModalNone 没有弹窗
	ModalNone ModalKind = iota
	// ModalSongChoice 选歌弹窗（Little Fun）
	ModalSongChoice
	// ModalExit 告别确认
	ModalExit
	// ModalWishEntry 输入愿望
	ModalWishEntry
)

// String 返回弹窗名称（用于日志）
func (m ModalKind) String() string {
	switch m {
	case ModalNone:
		return "None"
	case ModalSongChoice:
		return "SongChoice"
	case ModalExit:
		return "Exit"
	case ModalWishEntry:
		return "WishEntry"
	default:
		return "Unknown"
	}
}
