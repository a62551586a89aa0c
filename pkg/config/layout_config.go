package config

// 布局配置常量
// 本文件定义了贺卡画布的尺寸以及按钮、弹窗、心形等元素的位置参数
// 所有坐标均为逻辑像素（画布左上角为原点），不随窗口缩放变化

// Canvas Configuration (画布配置)
const (
	// GameWindowWidth 画布逻辑宽度
	GameWindowWidth = 900

	// GameWindowHeight 画布逻辑高度
	GameWindowHeight = 640

	// CanvasCenterX 画布中心 X
	CanvasCenterX = float64(GameWindowWidth) / 2

	// CanvasCenterY 画布中心 Y
	CanvasCenterY = float64(GameWindowHeight) / 2
)

// UI Buttons (右侧竖排按钮)
const (
	// ButtonX 按钮左上角 X（距右边缘 138）
	ButtonX = float64(GameWindowWidth) - 138

	// ButtonWidth 按钮宽度
	ButtonWidth = 112.0

	// ButtonHeight 按钮高度
	ButtonHeight = 47.0

	// ButtonCornerRadius 按钮圆角
	ButtonCornerRadius = 11.0
)

// ButtonYs 四个按钮的 Y 坐标：Replay, Exit, Wishes, Little Fun
var ButtonYs = [4]float64{38, 90, 142, 194}

// Song Choice Modal (选歌弹窗)
const (
	// SongRowX 歌曲行左上角 X
	SongRowX = CanvasCenterX - 152

	// SongRowFirstY 第一行歌曲左上角 Y
	SongRowFirstY = CanvasCenterY - 56

	// SongRowStep 相邻两行的间距
	SongRowStep = 66.0

	// SongRowWidth 歌曲行宽度
	SongRowWidth = 294.0

	// SongRowHeight 歌曲行高度
	SongRowHeight = 56.0

	// MaxSongs 弹窗最多容纳的歌曲数
	MaxSongs = 4
)

// Heart Outline (心形轮廓)
const (
	// HeartScale 心形曲线缩放系数
	HeartScale = 13.0

	// HeartCenterYOffset 心形中心相对画布中心的 Y 偏移
	HeartCenterYOffset = -10.0

	// HeartSampleStepDeg 心形曲线采样步长（角度）
	HeartSampleStepDeg = 8

	// RingSampleStride 光环取点间隔（每 2 个采样点保留 1 个）
	RingSampleStride = 2
)

// Message Layout (文字布局)
const (
	// BirthdayMessageY 生日祝福标题 Y
	BirthdayMessageY = 108.0

	// WishMessageY 愿望文字 Y
	WishMessageY = 184.0

	// ClosingMessageY 结束语第一行 Y
	ClosingMessageY = CanvasCenterY + 138

	// ClosingWrapWidth 结束语换行宽度（左右各留 60）
	ClosingWrapWidth = float64(GameWindowWidth) - 120

	// CakeCenterY 蛋糕中心 Y
	CakeCenterY = CanvasCenterY + 46
)

// Backdrop (字符雨背景)
const (
	// GlyphFontSize 字符雨字号
	GlyphFontSize = 28.0

	// GlyphColumnGap 字符列额外间距
	GlyphColumnGap = 4.0

	// MinGlyphColumns 最少列数
	MinGlyphColumns = 26

	// BackdropFadeAlpha 每帧覆盖的黑色半透明遮罩 alpha
	BackdropFadeAlpha = 210
)

// GlyphColumnCount 根据画布宽度计算字符雨列数
func GlyphColumnCount() int {
	return glyphColumnsFor(float64(GameWindowWidth))
}

// glyphColumnsFor 按给定宽度计算列数，不足 MinGlyphColumns 时取最小值
func glyphColumnsFor(w float64) int {
	perWidth := int(w / (GlyphFontSize + GlyphColumnGap))
	if perWidth < MinGlyphColumns {
		return MinGlyphColumns
	}
	return perWidth
}
