package systems

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
)

// 蛋糕尺寸
const (
	CakeWidth     = 193.0
	CakeHeight    = 90.0
	CakeLayerStep = 18.0
	CakeSprinkles = 18
)

// CakeLayerColors 四层蛋糕的颜色，自上而下
var CakeLayerColors = [4]color.NRGBA{
	{R: 250, G: 200, B: 230, A: 255},
	{R: 240, G: 170, B: 210, A: 255},
	{R: 255, G: 220, B: 200, A: 255},
	{R: 245, G: 200, B: 255, A: 255},
}

var sprinkleColors = [4]color.NRGBA{
	{R: 255, G: 120, B: 180, A: 255},
	{R: 255, G: 200, B: 80, A: 255},
	{R: 180, G: 255, B: 220, A: 255},
	{R: 200, G: 200, B: 255, A: 255},
}

// CakeAnimator 蛋糕动画：糖粒每帧重新撒，烛火随时间跳动
type CakeAnimator struct {
	rng   *rand.Rand
	state components.CakeState
}

// NewCakeAnimator 创建蛋糕动画
func NewCakeAnimator(rng *rand.Rand) *CakeAnimator {
	return &CakeAnimator{
		rng: rng,
		state: components.CakeState{
			CenterX:   config.CanvasCenterX,
			CenterY:   config.CakeCenterY,
			Sprinkles: make([]components.CakeSprinkle, CakeSprinkles),
		},
	}
}

// Update 重新撒糖粒并计算烛火跳动
func (ca *CakeAnimator) Update(now time.Duration) {
	cx, cy := ca.state.CenterX, ca.state.CenterY
	for i := range ca.state.Sprinkles {
		ca.state.Sprinkles[i] = components.CakeSprinkle{
			X:     cx - CakeWidth/2 + 28 + ca.rng.Float64()*(CakeWidth-56),
			Y:     cy - 3 + ca.rng.Float64()*(CakeHeight-18),
			Color: sprinkleColors[ca.rng.Intn(len(sprinkleColors))],
		}
	}
	ca.state.Flicker = FlameFlicker(now)
}

// FlameFlicker 烛火跳动幅度 (sin(t/180ms)+1)/2，范围 0~1
func FlameFlicker(now time.Duration) float64 {
	ms := float64(now) / float64(time.Millisecond)
	return (math.Sin(ms/180) + 1) / 2
}

// State 本帧蛋糕状态
func (ca *CakeAnimator) State() *components.CakeState {
	return &ca.state
}
