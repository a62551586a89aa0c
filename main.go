package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/bdaygreet/pkg/app"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/embedded"
)

var (
	configFlag     = flag.String("config", config.DefaultConfigPath, "Greeting config file (embedded default if not found on disk)")
	nameFlag       = flag.String("name", "", "Override the birthday person's name")
	dobFlag        = flag.String("dob", "", "Override the date of birth (e.g. 12-05-1990)")
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode (F11 toggles)")
	seedFlag       = flag.Int64("seed", 0, "Random seed for the particle effects (0 = time based)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	greeting, err := loadGreeting(*configFlag, *nameFlag, *dobFlag)
	if err != nil {
		log.Fatalf("贺卡配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Fullscreen: *fullscreenFlag,
		Seed:       *seedFlag,
		Greeting:   greeting,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(greeting.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadGreeting 读取配置并应用命令行覆盖
func loadGreeting(path, name, dob string) (*config.GreetingConfig, error) {
	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	greeting, err := config.ParseGreetingConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if n := config.NormalizeName(name); n != "" {
		greeting.Name = n
	}
	if dob != "" {
		normalized, err := config.NormalizeDOB(dob)
		if err != nil {
			return nil, err
		}
		greeting.DOB = normalized
	}
	if greeting.Title == "" {
		greeting.Title = greeting.BirthdayMessage()
	}
	return greeting, nil
}
