// Package main provides an effects viewer for previewing the greeting
// animations without audio or the start overlay.
//
// Usage:
//
//	go run ./cmd/effects_viewer [flags]
//
// Flags:
//
//	--seed <n>     Random seed (default 1)
//	--verbose      Enable verbose logging
//
// Controls:
//
//	Space        - Pause / resume the clock
//	Right Arrow  - Skip 500ms forward
//	S            - Spawn a spark batch
//	B            - Release a countdown balloon
//	C            - Toggle confetti
//	M            - Toggle calm backdrop
//	R            - Restart the sequence
//	Q/Escape     - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/game"
	"github.com/decker502/bdaygreet/pkg/systems"
)

var (
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// EffectsViewer implements ebiten.Game for the effects preview
type EffectsViewer struct {
	clock     *game.ManualClock
	sequencer *systems.StageSequencer
	particles *systems.ParticleSystem
	ring      *systems.RingAnimator
	backdrop  *systems.GlyphBackdrop
	cake      *systems.CakeAnimator
	renderer  *systems.RenderSystem

	paused bool
}

// nopAudio 预览工具不播放声音
type nopAudio struct{ songs int }

func (a nopAudio) PlaySong(i int) bool { return i >= 0 && i < a.songs }
func (nopAudio) StopAll()              {}
func (a nopAudio) SongCount() int      { return a.songs }

type nopLinks struct{}

func (nopLinks) OpenURL(url string) error {
	log.Printf("[EffectsViewer] Would open %s", url)
	return nil
}

// NewEffectsViewer creates the viewer with its own copy of every animation system
func NewEffectsViewer(greeting *config.GreetingConfig, seed int64) *EffectsViewer {
	rng := rand.New(rand.NewSource(seed))
	timings := greeting.Timing.Durations()

	v := &EffectsViewer{
		clock:     &game.ManualClock{},
		sequencer: systems.NewStageSequencer(timings),
		particles: systems.NewParticleSystem(rng),
		ring:      systems.NewRingAnimator(rng, timings.RingStep),
		backdrop:  systems.NewGlyphBackdrop(rng),
		cake:      systems.NewCakeAnimator(rng),
	}
	modals := systems.NewModalController(nopAudio{songs: len(greeting.Songs)}, nopLinks{}, nil, greeting.Share.BaseURL)
	v.renderer = systems.NewRenderSystem(game.NewResourceManager(nil), greeting, systems.RenderSources{
		Sequencer: v.sequencer,
		Particles: v.particles,
		Ring:      v.ring,
		Backdrop:  v.backdrop,
		Cake:      v.cake,
		Modals:    modals,
	})
	v.sequencer.Start(0)
	return v
}

// Update handles the controls and advances the preview clock
func (v *EffectsViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	frame := time.Duration(dt * float64(time.Second))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.clock.Advance(500 * time.Millisecond)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		log.Printf("[EffectsViewer] Spawned %d sparks", v.particles.SpawnSparkBatch())
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		v.particles.SpawnBalloon(components.BalloonCount)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.particles.ToggleConfetti()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		v.backdrop.ToggleCalm()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.sequencer.Reset(v.clock.Now())
		v.particles.Clear()
		v.backdrop.Regenerate()
	}

	if v.paused {
		return nil
	}

	v.clock.Advance(frame)
	now := v.clock.Now()
	v.backdrop.Update(dt, now)
	events := v.sequencer.Advance(now)
	v.particles.ApplyStageEvents(events, v.sequencer.SparksDue(now))
	v.particles.Update(dt, v.sequencer.Stage())
	v.ring.Update(now)
	v.cake.Update(now)
	return nil
}

// Draw renders the preview and a status line
func (v *EffectsViewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen, v.clock.Now())

	status := fmt.Sprintf("%s  t=%v  calm=%v paused=%v", v.sequencer.Stage(),
		v.clock.Now().Truncate(time.Millisecond), v.backdrop.Calm(), v.paused)
	for _, kind := range []components.ParticleKind{
		components.ParticleConfetti,
		components.ParticleRisingHeart,
		components.ParticleSpark,
		components.ParticleBalloon,
	} {
		status += fmt.Sprintf("  %s=%d", kind, v.particles.Count(kind))
	}
	ebitenutil.DebugPrintAt(screen, status, 8, config.GameWindowHeight-20)
}

// Layout returns the fixed canvas size
func (v *EffectsViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	// 预览工具直接读取磁盘上的默认配置
	greeting, err := config.LoadGreetingConfig(config.DefaultConfigPath)
	if err != nil {
		log.Fatalf("failed to load greeting config: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Greeting Effects Viewer")

	if err := ebiten.RunGame(NewEffectsViewer(greeting, *seedFlag)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
