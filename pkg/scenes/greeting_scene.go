package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/game"
	"github.com/decker502/bdaygreet/pkg/systems"
	"github.com/decker502/bdaygreet/pkg/utils"
)

// GreetingAudio 场景需要的音频能力（由 game.AudioManager 实现）
type GreetingAudio interface {
	systems.AudioController
	PlayBackground()
	RestartBackground()
}

// buttonDefs 右侧按钮的标签、底色与动作
var buttonDefs = [4]struct {
	label  string
	color  string
	action components.ButtonAction
}{
	{"Replay", "#2b9e4b", components.ActionReplay},
	{"Exit", "#c03538", components.ActionExit},
	{"Wishes", "#298be7", components.ActionWishes},
	{"Little Fun", "#ad49d3", components.ActionFun},
}

// GreetingSceneOptions 场景的可替换协作者，零值使用真实实现
type GreetingSceneOptions struct {
	Clock     game.Clock
	Rand      *rand.Rand
	Input     InputSource
	Links     systems.LinkOpener
	Clipboard systems.ClipboardWriter
}

// GreetingScene is the single scene of the greeting.
// It owns every system, routes input and turns stage events into
// particle spawns.
//
// Pointer priority: start overlay → active modal → UI buttons.
// Keyboard input only reaches the modal controller; with no modal open,
// c toggles confetti and m toggles the calm backdrop.
type GreetingScene struct {
	cfg   *config.GreetingConfig
	clock game.Clock
	input InputSource
	audio GreetingAudio

	sequencer *systems.StageSequencer
	particles *systems.ParticleSystem
	ring      *systems.RingAnimator
	backdrop  *systems.GlyphBackdrop
	cake      *systems.CakeAnimator
	modals    *systems.ModalController
	renderer  *systems.RenderSystem
	buttons   []components.UIButton
}

// NewGreetingScene creates the greeting scene.
//
// Parameters:
//   - rm: resource manager for fonts and panels
//   - cfg: greeting config (texts, share link, timings)
//   - audio: background and song playback
//   - opts: replaceable collaborators, zero values fall back to the real ones
func NewGreetingScene(rm *game.ResourceManager, cfg *config.GreetingConfig, audio GreetingAudio, opts GreetingSceneOptions) *GreetingScene {
	if opts.Clock == nil {
		opts.Clock = game.NewMonotonicClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Input == nil {
		opts.Input = NewEbitenInput()
	}
	if opts.Links == nil {
		opts.Links = utils.SystemLinkOpener{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = utils.SystemClipboard{}
	}

	timings := cfg.Timing.Durations()
	gs := &GreetingScene{
		cfg:       cfg,
		clock:     opts.Clock,
		input:     opts.Input,
		audio:     audio,
		sequencer: systems.NewStageSequencer(timings),
		particles: systems.NewParticleSystem(opts.Rand),
		ring:      systems.NewRingAnimator(opts.Rand, timings.RingStep),
		backdrop:  systems.NewGlyphBackdrop(opts.Rand),
		cake:      systems.NewCakeAnimator(opts.Rand),
		modals:    systems.NewModalController(audio, opts.Links, opts.Clipboard, cfg.Share.BaseURL),
		buttons:   newButtons(),
	}
	gs.modals.DismissOnOutsideTap = utils.IsMobile()

	gs.renderer = systems.NewRenderSystem(rm, cfg, systems.RenderSources{
		Sequencer: gs.sequencer,
		Particles: gs.particles,
		Ring:      gs.ring,
		Backdrop:  gs.backdrop,
		Cake:      gs.cake,
		Modals:    gs.modals,
		Buttons:   gs.buttons,
	})

	log.Printf("[GreetingScene] Created for %q (%d songs)", cfg.Name, audio.SongCount())
	return gs
}

func newButtons() []components.UIButton {
	buttons := make([]components.UIButton, len(buttonDefs))
	for i, def := range buttonDefs {
		c, err := config.ParseHexColor(def.color)
		if err != nil {
			log.Printf("[GreetingScene] Warning: %v", err)
		}
		buttons[i] = components.UIButton{
			Label:  def.label,
			Rect:   utils.NewRect(config.ButtonX, config.ButtonYs[i], config.ButtonWidth, config.ButtonHeight),
			Color:  c,
			Action: def.action,
		}
	}
	return buttons
}

// Update advances input, stage timers and every animation.
func (gs *GreetingScene) Update(deltaTime float64) {
	now := gs.clock.Now()

	gs.handleInput(now)
	gs.backdrop.Update(deltaTime, now)

	if !gs.sequencer.Started() {
		return
	}

	events := gs.sequencer.Advance(now)
	gs.particles.ApplyStageEvents(events, gs.sequencer.SparksDue(now))

	stage := gs.sequencer.Stage()
	gs.particles.Update(deltaTime, stage)
	if stage.ShowsHeart() {
		gs.ring.Update(now)
		gs.cake.Update(now)
	}
}

// Draw renders the current frame.
func (gs *GreetingScene) Draw(screen *ebiten.Image) {
	gs.renderer.Draw(screen, gs.clock.Now())
}

func (gs *GreetingScene) handleInput(now time.Duration) {
	keys := gs.input.Keyboard()
	if gs.modals.IsOpen() {
		gs.modals.HandleKeyboard(keys)
	} else if gs.sequencer.Started() {
		confetti, backdrop := gs.input.ToggleKeys()
		if confetti {
			log.Printf("[GreetingScene] Confetti enabled: %v", gs.particles.ToggleConfetti())
		}
		if backdrop {
			log.Printf("[GreetingScene] Calm backdrop: %v", gs.backdrop.ToggleCalm())
		}
	}

	clicked, x, y := gs.input.Click()
	if !clicked {
		return
	}
	gs.handleClick(x, y, now)
}

func (gs *GreetingScene) handleClick(x, y float64, now time.Duration) {
	if !gs.sequencer.Started() {
		gs.start(now)
		return
	}
	if gs.modals.HandleClick(x, y) {
		return
	}
	if !gs.sequencer.ShowButtons() {
		return
	}
	for _, btn := range gs.buttons {
		if btn.Rect.Contains(x, y) {
			gs.runAction(btn.Action, now)
			return
		}
	}
}

func (gs *GreetingScene) runAction(action components.ButtonAction, now time.Duration) {
	switch action {
	case components.ActionReplay:
		gs.replay(now)
	case components.ActionExit:
		gs.modals.Open(components.ModalExit)
	case components.ActionWishes:
		gs.modals.Open(components.ModalWishEntry)
	case components.ActionFun:
		gs.modals.Open(components.ModalSongChoice)
	}
}

// start 首次点击：开始倒计时与背景音乐
func (gs *GreetingScene) start(now time.Duration) {
	gs.sequencer.Start(now)
	gs.particles.Clear()
	gs.audio.PlayBackground()
}

// replay 整体重置：清空粒子、关闭弹窗、重新生成字符雨并从头播放背景音乐
func (gs *GreetingScene) replay(now time.Duration) {
	gs.sequencer.Reset(now)
	gs.particles.Clear()
	gs.modals.Close()
	gs.backdrop.Regenerate()
	gs.audio.RestartBackground()
}

// Stage 当前阶段
func (gs *GreetingScene) Stage() components.Stage {
	return gs.sequencer.Stage()
}

// Modal 当前弹窗
func (gs *GreetingScene) Modal() components.ModalKind {
	return gs.modals.Active()
}

// Buttons 右侧按钮
func (gs *GreetingScene) Buttons() []components.UIButton {
	return gs.buttons
}
