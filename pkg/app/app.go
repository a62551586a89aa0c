// Package app 提供贺卡应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/game"
	"github.com/decker502/bdaygreet/pkg/scenes"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 以全屏启动
	Fullscreen bool
	// Seed 随机种子，0 表示按当前时间
	Seed int64
	// Greeting 已加载并校验的贺卡配置
	Greeting *config.GreetingConfig
}

// App 是贺卡应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene                    game.Scene
	audioManager             *game.AudioManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化贺卡应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 音频文件缺失不会导致失败，对应曲目以静音代替。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Greeting == nil {
		return nil, fmt.Errorf("greeting config is required")
	}
	greeting := cfg.Greeting

	// 初始化音频上下文
	audioContext := audio.NewContext(SampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 加载背景音乐与可选曲目
	volume := greeting.Audio.Volume
	background := resourceManager.LoadTrackOrSilent(greeting.Audio.Background, volume, true)
	songs := make([]game.Track, len(greeting.Songs))
	for i, song := range greeting.Songs {
		songs[i] = resourceManager.LoadTrackOrSilent(song.File, volume, false)
	}
	audioManager := game.NewAudioManager(background, songs)
	log.Printf("[App] AudioManager initialized with %d songs", len(songs))

	opts := scenes.GreetingSceneOptions{}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Seed))
		log.Printf("[App] Using random seed %d", cfg.Seed)
	}

	scene := scenes.NewGreetingScene(resourceManager, greeting, audioManager, opts)

	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		scene:        scene,
		audioManager: audioManager,
	}, nil
}

// Update 更新贺卡逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧留黑，画面线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回固定的逻辑画布尺寸，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 停止所有音频
func (a *App) Shutdown() {
	a.audioManager.StopAll()
}
