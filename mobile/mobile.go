//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.bdaygreet -o build/android/bdaygreet.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/BdayGreet.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/bdaygreet/pkg/app"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		log.Fatalf("贺卡配置读取失败: %v", err)
	}
	greeting, err := config.ParseGreetingConfig(data)
	if err != nil {
		log.Fatalf("贺卡配置解析失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:  true, // Enable verbose logging for debugging
		Greeting: greeting,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
