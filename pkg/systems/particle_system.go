package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
)

// 粒子上限与生成节奏（按 60 FPS 的帧计）
const (
	MaxConfetti     = 140
	MaxRisingHearts = 18
	MaxSparks       = 72
	MaxBalloons     = 12

	ConfettiPerFrame    = 4
	HeartSpawnInterval  = 7.0 // 每 7 帧生成一颗上浮爱心
	SparkBatchSize      = 36
	SparkBatchThreshold = 30 // 存活火花少于该值时才补充一批

	sparkFadePerFrame = 9.0
	heartFadePerFrame = 0.77
	heartMinAlpha     = 22.0
	balloonCeilingY   = -120.0
)

// ParticleSystem manages the four particle pools of the greeting:
// confetti, rising hearts, countdown sparks and balloons.
//
// Per-frame steps are scaled by dt*60, so the motion matches the
// 60 FPS pacing regardless of the actual tick rate. Drawing only reads
// pool state; all mutation happens in Update and the Spawn* helpers.
type ParticleSystem struct {
	rng           *rand.Rand
	width, height float64

	Confetti *Pool[components.ConfettiFlake]
	Hearts   *Pool[components.RisingHeart]
	Sparks   *Pool[components.Spark]
	Balloons *Pool[components.Balloon]

	frame           float64 // 累计帧数，彩纸摆动使用
	heartTimer      float64
	confettiEnabled bool
}

// NewParticleSystem creates the particle pools for a canvas of the configured size.
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		rng:             rng,
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
		Confetti:        NewPool[components.ConfettiFlake](MaxConfetti),
		Hearts:          NewPool[components.RisingHeart](MaxRisingHearts),
		Sparks:          NewPool[components.Spark](MaxSparks),
		Balloons:        NewPool[components.Balloon](MaxBalloons),
		confettiEnabled: true,
	}
}

// Update advances every pool by dt seconds.
//
// Balloons always move. Sparks only live during the countdown; confetti and
// rising hearts only spawn and move while the stage shows the heart.
func (ps *ParticleSystem) Update(dt float64, stage components.Stage) {
	step := dt * 60
	ps.frame += step

	ps.updateBalloons(step)

	if stage == components.StageCountdown {
		ps.updateSparks(step)
	}

	if stage.ShowsHeart() {
		ps.updateHearts(step)
		if ps.confettiEnabled {
			ps.updateConfetti(step)
		}
	}
}

// Frame returns the accumulated frame counter used for confetti sway.
func (ps *ParticleSystem) Frame() float64 {
	return ps.frame
}

// ConfettiEnabled 彩纸是否开启
func (ps *ParticleSystem) ConfettiEnabled() bool {
	return ps.confettiEnabled
}

// ToggleConfetti 开关彩纸，关闭时清空彩纸池
func (ps *ParticleSystem) ToggleConfetti() bool {
	ps.confettiEnabled = !ps.confettiEnabled
	if !ps.confettiEnabled {
		ps.Confetti.Clear()
	}
	return ps.confettiEnabled
}

// Clear empties all pools and resets the frame-based timers.
func (ps *ParticleSystem) Clear() {
	ps.Confetti.Clear()
	ps.Hearts.Clear()
	ps.Sparks.Clear()
	ps.Balloons.Clear()
	ps.heartTimer = 0
}

// Count 某类粒子的存活数量
func (ps *ParticleSystem) Count(kind components.ParticleKind) int {
	switch kind {
	case components.ParticleConfetti:
		return ps.Confetti.Len()
	case components.ParticleRisingHeart:
		return ps.Hearts.Len()
	case components.ParticleSpark:
		return ps.Sparks.Len()
	case components.ParticleBalloon:
		return ps.Balloons.Len()
	}
	return 0
}

// ClearSparks removes all countdown sparks.
func (ps *ParticleSystem) ClearSparks() {
	ps.Sparks.Clear()
}

func (ps *ParticleSystem) updateConfetti(step float64) {
	if ps.Confetti.Len() < MaxConfetti {
		for i := 0; i < ConfettiPerFrame; i++ {
			ps.Confetti.Spawn(components.ConfettiFlake{
				X:     ps.rand(0, ps.width),
				Y:     ps.rand(-ps.height, 0),
				Size:  ps.rand(3, 8),
				Speed: ps.rand(1.2, 3.7),
				Sway:  ps.rand(0, 2*math.Pi),
				Color: ps.randColor(200, 255, 70, 255, 70, 255, 255),
			})
		}
	}

	ps.Confetti.ForEach(func(c *components.ConfettiFlake) {
		c.Y += c.Speed * step
		if c.Y > ps.height+8 {
			c.Y = ps.rand(-60, 0)
			c.X = ps.rand(0, ps.width)
		}
	})
}

func (ps *ParticleSystem) updateHearts(step float64) {
	ps.heartTimer += step
	for ps.heartTimer >= HeartSpawnInterval {
		ps.heartTimer -= HeartSpawnInterval
		if ps.Hearts.Len() < MaxRisingHearts {
			ps.Hearts.Spawn(components.RisingHeart{
				X:     ps.rand(ps.width*0.16, ps.width*0.85),
				Y:     ps.height + ps.rand(8, 60),
				VX:    ps.rand(-0.5, 0.5),
				VY:    -ps.rand(1.05, 2.8),
				Size:  ps.rand(4, 8),
				Alpha: 255,
				Color: ps.randColor(255, 255, 90, 150, 120, 200, 255),
			})
		}
	}

	floor := ps.height/2 - 23
	ps.Hearts.UpdateAndCull(func(h *components.RisingHeart) bool {
		h.X += h.VX * step
		h.Y += h.VY * step
		h.Alpha -= heartFadePerFrame * step
		return h.Y > floor && h.Alpha > heartMinAlpha
	})
}

func (ps *ParticleSystem) updateSparks(step float64) {
	ps.Sparks.UpdateAndCull(func(s *components.Spark) bool {
		s.X += s.VX * step
		s.Y += s.VY * step
		s.Alpha -= sparkFadePerFrame * step
		return s.Alpha > 0
	})
}

func (ps *ParticleSystem) updateBalloons(step float64) {
	ps.Balloons.UpdateAndCull(func(b *components.Balloon) bool {
		b.X += b.VX * step
		b.Y += b.VY * step
		b.Age += step
		return b.Y > balloonCeilingY
	})
}

// SpawnSparkBatch spawns a batch of sparks around the countdown digit.
// Returns the number actually spawned; the pool cap may truncate the batch.
func (ps *ParticleSystem) SpawnSparkBatch() int {
	cx, cy := config.CanvasCenterX, config.CanvasCenterY
	spawned := 0
	for i := 0; i < SparkBatchSize; i++ {
		ok := ps.Sparks.Spawn(components.Spark{
			X:     cx + ps.rand(-22, 22),
			Y:     cy + ps.rand(-24, 24),
			VX:    ps.rand(-2.5, 2.5),
			VY:    ps.rand(-3.5, -0.8),
			Alpha: 255,
			Color: ps.randColor(170, 255, 80, 200, 100, 220, 255),
		})
		if !ok {
			break
		}
		spawned++
	}
	return spawned
}

// NeedsSparks 火花数量低于阈值，可以补充一批
func (ps *ParticleSystem) NeedsSparks() bool {
	return ps.Sparks.Len() < SparkBatchThreshold
}

// SpawnBalloon releases a balloon of the given kind from its stage-specific origin.
func (ps *ParticleSystem) SpawnBalloon(kind components.BalloonKind) bool {
	b := components.Balloon{Kind: kind}
	switch kind {
	case components.BalloonCount:
		b.X = config.CanvasCenterX + ps.rand(-18, 18)
		b.Y = config.CanvasCenterY + 40
		b.VX = ps.rand(-2.4, 2.4)
		b.VY = -ps.rand(1.2, 2.2)
		b.Color = ps.randColor(230, 255, 90, 200, 100, 190, 255)
	case components.BalloonBirthday:
		b.X = config.CanvasCenterX
		b.Y = config.BirthdayMessageY
		b.VX = ps.rand(-2, 2)
		b.VY = -ps.rand(1, 2)
		b.Color = color.NRGBA{R: 239, G: 185, B: 240, A: 180}
	case components.BalloonWish:
		b.X = config.CanvasCenterX
		b.Y = config.WishMessageY
		b.VX = ps.rand(-2, 2)
		b.VY = -ps.rand(1, 2)
		b.Color = color.NRGBA{R: 180, G: 226, B: 255, A: 180}
	default:
		return false
	}
	return ps.Balloons.Spawn(b)
}

// ApplyStageEvents 根据序列器本帧的事件放出气球与火花
//
// 倒计时每跳一次放一个计数气球并清掉火花；生日/愿望气球同一时间只存在一个。
// sparksDue 为 true 且火花不足时补一批火花。
func (ps *ParticleSystem) ApplyStageEvents(events []StageEvent, sparksDue bool) {
	for _, ev := range events {
		switch ev.Kind {
		case EventCountdownTick:
			ps.SpawnBalloon(components.BalloonCount)
			ps.ClearSparks()
		case EventBirthdayBalloonDue:
			ps.spawnSingleBalloon(components.BalloonBirthday)
		case EventWishBalloonDue:
			ps.spawnSingleBalloon(components.BalloonWish)
		}
	}
	if sparksDue && ps.NeedsSparks() {
		ps.SpawnSparkBatch()
	}
}

func (ps *ParticleSystem) spawnSingleBalloon(kind components.BalloonKind) {
	if !ps.HasBalloon(kind) {
		ps.SpawnBalloon(kind)
	}
}

// HasBalloon 是否已有该类型的气球存活
func (ps *ParticleSystem) HasBalloon(kind components.BalloonKind) bool {
	return ps.Balloons.Any(func(b *components.Balloon) bool {
		return b.Kind == kind
	})
}

func (ps *ParticleSystem) rand(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

func (ps *ParticleSystem) randColor(rlo, rhi, glo, ghi, blo, bhi float64, a uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8(ps.rand(rlo, rhi)),
		G: uint8(ps.rand(glo, ghi)),
		B: uint8(ps.rand(blo, bhi)),
		A: a,
	}
}
