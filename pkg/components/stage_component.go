package components

// Stage 贺卡序列所处的阶段
// 阶段只会向前推进，唯一的回退入口是 Replay（整体重置回倒计时）
type Stage int

const (
	// StageStart 等待首次点击
	StageStart Stage = iota
	// StageCountdown 3-2-1 倒计时
	StageCountdown
	// StageBirthdayMessage "Happy Birthday" 标题
	StageBirthdayMessage
	// StageWishMessage 祝愿文字
	StageWishMessage
	// StageClosing 结束语（终态）
	StageClosing
)

// String 返回阶段名称（用于日志）
func (s Stage) String() string {
	switch s {
	case StageStart:
		return "Start"
	case StageCountdown:
		return "Countdown"
	case StageBirthdayMessage:
		return "BirthdayMessage"
	case StageWishMessage:
		return "WishMessage"
	case StageClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Valid 是否为五个合法阶段之一
func (s Stage) Valid() bool {
	return s >= StageStart && s <= StageClosing
}

// ShowsHeart 该阶段是否显示心形、彩纸、蛋糕等庆祝元素
func (s Stage) ShowsHeart() bool {
	return s == StageBirthdayMessage || s == StageWishMessage || s == StageClosing
}
