package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/utils"
)

// RingWindow 光环头部及其后方亮起的点数
const RingWindow = 6

// RingAnimator 心形光环
//
// 心形曲线按固定角度采样：全部采样点构成大心形的圆点，
// 每隔一个采样点取一个作为光环点。光环有一个随时间前进的“头部”，
// 头部及其后 5 个点亮起，亮度按距离缓出衰减。
type RingAnimator struct {
	rng     *rand.Rand
	step    time.Duration
	points  []components.RingPoint
	outline []components.RingPoint
	blobs   []components.HeartBlob
	glows   []components.RingGlow
	glowBuf []components.RingGlow
}

// NewRingAnimator 创建光环动画，step 为头部前进一格的时间
func NewRingAnimator(rng *rand.Rand, step time.Duration) *RingAnimator {
	ra := &RingAnimator{rng: rng, step: step}
	ra.outline = HeartOutline()
	for i := 0; i < len(ra.outline); i += config.RingSampleStride {
		ra.points = append(ra.points, ra.outline[i])
	}
	ra.blobs = make([]components.HeartBlob, len(ra.outline))
	ra.glowBuf = make([]components.RingGlow, 0, RingWindow)
	return ra
}

// HeartOutline 按 8° 步长采样心形曲线，返回画布坐标
//
//	x = 16·sin³t
//	y = 13·cos t − 5·cos 2t − 2·cos 3t − cos 4t
func HeartOutline() []components.RingPoint {
	cx := config.CanvasCenterX
	cy := config.CanvasCenterY + config.HeartCenterYOffset
	points := make([]components.RingPoint, 0, 360/config.HeartSampleStepDeg)
	for a := 0; a < 360; a += config.HeartSampleStepDeg {
		t := float64(a) * math.Pi / 180
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		points = append(points, components.RingPoint{
			X: cx + x*config.HeartScale,
			Y: cy - y*config.HeartScale,
		})
	}
	return points
}

// Points 光环点（固定位置）
func (ra *RingAnimator) Points() []components.RingPoint {
	return ra.points
}

// Head 返回 now 时刻光环头部所在的点索引
func (ra *RingAnimator) Head(now time.Duration) int {
	n := len(ra.points)
	if n == 0 || ra.step <= 0 {
		return 0
	}
	return int(now/ra.step) % n
}

// Distance 点 i 相对头部的前向距离
func (ra *RingAnimator) Distance(i, head int) int {
	n := len(ra.points)
	return ((i-head)%n + n) % n
}

// Update 计算本帧的大心形圆点与光环亮点
func (ra *RingAnimator) Update(now time.Duration) {
	for i, p := range ra.outline {
		ra.blobs[i] = components.HeartBlob{
			X:     p.X,
			Y:     p.Y,
			W:     22 + ra.rand(-4, 4),
			H:     22 + ra.rand(-4, 4),
			Color: utils.NRGBA(255, 70+ra.rand(0, 80), 110+ra.rand(0, 80), 210),
		}
	}

	head := ra.Head(now)
	ms := float64(now) / float64(time.Millisecond)
	ra.glows = ra.glowBuf[:0]
	for i, p := range ra.points {
		d := ra.Distance(i, head)
		if d >= RingWindow {
			continue
		}
		intensity := RingIntensity(d)
		alpha := 215 * intensity * intensity
		size := math.Trunc(10 + 12*intensity*intensity + ra.rand(-2, 2))
		pulse := 1 + 0.1*math.Sin(ms/158+float64(d)*1.9)
		ra.glows = append(ra.glows, components.RingGlow{
			X:    p.X,
			Y:    p.Y,
			Size: size,
			Color: utils.NRGBA(
				255,
				120+84*intensity*pulse*ra.rand(0.7, 1),
				150+110*intensity*pulse*ra.rand(0.8, 1),
				alpha*ra.rand(0.8, 1),
			),
		})
	}
}

// RingIntensity 距离头部 d 格的点的亮度，d 超出窗口时为 0
func RingIntensity(d int) float64 {
	if d < 0 || d >= RingWindow {
		return 0
	}
	return utils.EaseOutCubic(1 - float64(d)/RingWindow)
}

// Glows 本帧亮起的光环点
func (ra *RingAnimator) Glows() []components.RingGlow {
	return ra.glows
}

// Blobs 本帧大心形圆点
func (ra *RingAnimator) Blobs() []components.HeartBlob {
	return ra.blobs
}

func (ra *RingAnimator) rand(lo, hi float64) float64 {
	return lo + ra.rng.Float64()*(hi-lo)
}
