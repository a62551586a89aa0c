package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
)

const testFrame = 1.0 / 60

func newTestParticleSystem() *ParticleSystem {
	return NewParticleSystem(rand.New(rand.NewSource(1)))
}

func TestConfettiFillsToCap(t *testing.T) {
	ps := newTestParticleSystem()

	ps.Update(testFrame, components.StageBirthdayMessage)
	if ps.Confetti.Len() != ConfettiPerFrame {
		t.Errorf("expected %d confetti after one frame, got %d", ConfettiPerFrame, ps.Confetti.Len())
	}

	for i := 0; i < 200; i++ {
		ps.Update(testFrame, components.StageClosing)
	}
	if ps.Confetti.Len() != MaxConfetti {
		t.Errorf("expected confetti to settle at %d, got %d", MaxConfetti, ps.Confetti.Len())
	}

	// 彩纸循环复用，始终在画布范围附近
	ps.Confetti.ForEach(func(c *components.ConfettiFlake) {
		if c.Y > config.GameWindowHeight+8+c.Speed {
			t.Errorf("confetti fell past the bottom: y=%.1f", c.Y)
		}
	})
}

func TestConfettiOnlyDuringHeartStages(t *testing.T) {
	ps := newTestParticleSystem()

	for i := 0; i < 30; i++ {
		ps.Update(testFrame, components.StageCountdown)
	}
	if ps.Confetti.Len() != 0 {
		t.Errorf("countdown should not spawn confetti, got %d", ps.Confetti.Len())
	}
	if ps.Hearts.Len() != 0 {
		t.Errorf("countdown should not spawn hearts, got %d", ps.Hearts.Len())
	}
}

func TestToggleConfetti(t *testing.T) {
	ps := newTestParticleSystem()
	for i := 0; i < 10; i++ {
		ps.Update(testFrame, components.StageWishMessage)
	}

	if ps.ToggleConfetti() {
		t.Fatal("first toggle should disable confetti")
	}
	if ps.Confetti.Len() != 0 {
		t.Errorf("disabling confetti should clear the pool, got %d", ps.Confetti.Len())
	}

	ps.Update(testFrame, components.StageWishMessage)
	if ps.Confetti.Len() != 0 {
		t.Error("disabled confetti should not spawn")
	}

	if !ps.ToggleConfetti() {
		t.Fatal("second toggle should enable confetti")
	}
	ps.Update(testFrame, components.StageWishMessage)
	if ps.Confetti.Len() == 0 {
		t.Error("re-enabled confetti should spawn again")
	}
}

func TestRisingHeartsCapAndCull(t *testing.T) {
	ps := newTestParticleSystem()

	for i := 0; i < 5; i++ {
		ps.Update(testFrame, components.StageClosing)
	}
	if ps.Hearts.Len() != 0 {
		t.Errorf("no heart expected before %v frames, got %d", HeartSpawnInterval, ps.Hearts.Len())
	}
	for i := 0; i < 3; i++ {
		ps.Update(testFrame, components.StageClosing)
	}
	if ps.Hearts.Len() != 1 {
		t.Errorf("expected one heart after 8 frames, got %d", ps.Hearts.Len())
	}

	floor := config.CanvasCenterY - 23
	for i := 0; i < 1200; i++ {
		ps.Update(testFrame, components.StageClosing)
		if ps.Hearts.Len() > MaxRisingHearts {
			t.Fatalf("frame %d: %d hearts exceeds cap %d", i, ps.Hearts.Len(), MaxRisingHearts)
		}
		ps.Hearts.ForEach(func(h *components.RisingHeart) {
			if h.Alpha <= heartMinAlpha || h.Y <= floor {
				t.Fatalf("frame %d: heart should have been culled (alpha=%.1f y=%.1f)", i, h.Alpha, h.Y)
			}
		})
	}
}

func TestSparkBatches(t *testing.T) {
	ps := newTestParticleSystem()

	if !ps.NeedsSparks() {
		t.Fatal("empty spark pool should need sparks")
	}
	if n := ps.SpawnSparkBatch(); n != SparkBatchSize {
		t.Errorf("first batch: got %d, want %d", n, SparkBatchSize)
	}
	if ps.NeedsSparks() {
		t.Error("a full batch is above the refill threshold")
	}
	if n := ps.SpawnSparkBatch(); n != SparkBatchSize {
		t.Errorf("second batch: got %d, want %d", n, SparkBatchSize)
	}
	if n := ps.SpawnSparkBatch(); n != 0 {
		t.Errorf("pool at cap should spawn nothing, got %d", n)
	}

	// 火花只在倒计时阶段更新
	ps.Update(testFrame, components.StageBirthdayMessage)
	if ps.Sparks.Len() != MaxSparks {
		t.Errorf("sparks should freeze outside countdown, got %d", ps.Sparks.Len())
	}

	for i := 0; i < 30; i++ {
		ps.Update(testFrame, components.StageCountdown)
	}
	if ps.Sparks.Len() != 0 {
		t.Errorf("sparks should fade out within 30 frames, %d left", ps.Sparks.Len())
	}
}

func TestBalloons(t *testing.T) {
	ps := newTestParticleSystem()

	if ps.HasBalloon(components.BalloonBirthday) {
		t.Fatal("no balloon expected initially")
	}
	if !ps.SpawnBalloon(components.BalloonBirthday) {
		t.Fatal("SpawnBalloon failed")
	}
	if !ps.HasBalloon(components.BalloonBirthday) {
		t.Error("expected birthday balloon")
	}
	if ps.HasBalloon(components.BalloonWish) {
		t.Error("wish balloon should not exist")
	}
	if ps.SpawnBalloon(components.BalloonKind(99)) {
		t.Error("unknown balloon kind should be rejected")
	}

	// 气球在任何阶段都会上升，越过顶部后移除
	for i := 0; i < 400; i++ {
		ps.Update(testFrame, components.StageStart)
	}
	if ps.Balloons.Len() != 0 {
		t.Errorf("balloon should float away, %d left", ps.Balloons.Len())
	}

	for i := 0; i < MaxBalloons+5; i++ {
		ps.SpawnBalloon(components.BalloonCount)
	}
	if ps.Balloons.Len() != MaxBalloons {
		t.Errorf("expected balloons capped at %d, got %d", MaxBalloons, ps.Balloons.Len())
	}
}

func TestApplyStageEvents(t *testing.T) {
	ps := newTestParticleSystem()
	tick := StageEvent{Kind: EventCountdownTick, Stage: components.StageCountdown, Countdown: 2}

	// 没到补充时机时不放火花
	ps.ApplyStageEvents(nil, false)
	if ps.Sparks.Len() != 0 {
		t.Fatalf("no sparks expected before they are due, got %d", ps.Sparks.Len())
	}
	ps.ApplyStageEvents(nil, true)
	if ps.Sparks.Len() != SparkBatchSize {
		t.Fatalf("expected one spark batch, got %d", ps.Sparks.Len())
	}

	// 倒计时跳动：放出计数气球并清空火花
	ps.ApplyStageEvents([]StageEvent{tick}, false)
	if ps.Sparks.Len() != 0 {
		t.Errorf("countdown tick should clear sparks, %d left", ps.Sparks.Len())
	}
	if !ps.HasBalloon(components.BalloonCount) {
		t.Error("countdown tick should release a count balloon")
	}

	// 生日/愿望气球每帧都会到期，但同类只保留一个
	due := []StageEvent{{Kind: EventBirthdayBalloonDue}, {Kind: EventWishBalloonDue}}
	for i := 0; i < 5; i++ {
		ps.ApplyStageEvents(due, false)
	}
	if got := ps.Count(components.ParticleBalloon); got != 3 {
		t.Errorf("expected count + birthday + wish balloons, got %d", got)
	}

	// 阶段切换事件不产生粒子
	ps.ApplyStageEvents([]StageEvent{{Kind: EventStageEntered}}, false)
	if got := ps.Count(components.ParticleBalloon); got != 3 {
		t.Errorf("stage entry should not spawn balloons, got %d", got)
	}
}

func TestParticleClear(t *testing.T) {
	ps := newTestParticleSystem()
	for i := 0; i < 20; i++ {
		ps.Update(testFrame, components.StageClosing)
	}
	ps.SpawnSparkBatch()
	ps.SpawnBalloon(components.BalloonWish)

	if ps.Count(components.ParticleSpark) != SparkBatchSize {
		t.Errorf("Count(spark) = %d, want %d", ps.Count(components.ParticleSpark), SparkBatchSize)
	}
	if ps.Count(components.ParticleBalloon) != 1 {
		t.Errorf("Count(balloon) = %d, want 1", ps.Count(components.ParticleBalloon))
	}

	ps.Clear()

	for _, kind := range []components.ParticleKind{
		components.ParticleConfetti,
		components.ParticleRisingHeart,
		components.ParticleSpark,
		components.ParticleBalloon,
	} {
		if n := ps.Count(kind); n != 0 {
			t.Errorf("Clear should empty the %s pool, %d left", kind, n)
		}
	}
}
