package components

import (
	"image/color"
	"math"
)

// ParticleKind 粒子类型
// 每种类型有各自的生成、更新与剔除规则
type ParticleKind int

const (
	// ParticleConfetti 彩纸（固定数量，循环复用）
	ParticleConfetti ParticleKind = iota
	// ParticleRisingHeart 上浮的小爱心
	ParticleRisingHeart
	// ParticleSpark 倒计时数字消散火花
	ParticleSpark
	// ParticleBalloon 气球
	ParticleBalloon
)

// String 返回粒子类型名称
func (k ParticleKind) String() string {
	switch k {
	case ParticleConfetti:
		return "confetti"
	case ParticleRisingHeart:
		return "rising-heart"
	case ParticleSpark:
		return "spark"
	case ParticleBalloon:
		return "balloon"
	default:
		return "unknown"
	}
}

// ConfettiFlake 彩纸片
// 越过画布底部后回到顶部随机位置，不会被移除
type ConfettiFlake struct {
	X, Y  float64
	Size  float64
	Speed float64 // 每帧下落距离
	Sway  float64 // 摆动相位
	Color color.NRGBA
}

// RisingHeart 上浮爱心
type RisingHeart struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  float64 // 0~255，每帧衰减
	Color  color.NRGBA
}

// Spark 倒计时数字的消散火花
type Spark struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Color  color.NRGBA
}

// BalloonKind 气球来源
type BalloonKind int

const (
	// BalloonCount 倒计时每跳一次放出的气球
	BalloonCount BalloonKind = iota
	// BalloonBirthday 生日标题阶段放出的气球
	BalloonBirthday
	// BalloonWish 愿望阶段放出的气球
	BalloonWish
)

// Balloon 气球
// 匀速上升，水平摆动由 Age 计算
type Balloon struct {
	X, Y   float64
	VX, VY float64
	Age    float64 // 已存活帧数
	Kind   BalloonKind
	Color  color.NRGBA
}

// Sway 当前水平摆动偏移
func (b *Balloon) Sway() float64 {
	return 7 * math.Sin(b.Age/43)
}
