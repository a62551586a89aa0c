package main

import (
	"fmt"
	"os"

	"github.com/decker502/bdaygreet/pkg/config"
)

// 用法：go run tools/validate_config.go [config.yaml ...]
// 默认检查 data/greeting.yaml，并确认引用的音频文件存在
func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.DefaultConfigPath}
	}

	failed := 0
	for _, path := range paths {
		if !validate(path) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件未通过校验\n", failed)
		os.Exit(1)
	}
}

func validate(path string) bool {
	cfg, err := config.LoadGreetingConfig(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		return false
	}

	fmt.Printf("✅ %s: 名字=%s 曲目=%d\n", path, cfg.Name, len(cfg.Songs))
	if cfg.DOB != "" {
		fmt.Printf("   出生日期: %s\n", cfg.DOB)
	}

	ok := true
	files := []string{cfg.Audio.Background}
	for _, song := range cfg.Songs {
		files = append(files, song.File)
	}
	for _, f := range files {
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); err != nil {
			fmt.Printf("❌ 音频文件不存在: %s\n", f)
			ok = false
		}
	}

	t := cfg.Timing.Durations()
	fmt.Printf("   阶段时长: 倒计时 %v×3, 生日 %v, 愿望 %v\n",
		t.CountdownInterval, t.BirthdayDuration(), t.WishDuration())
	return ok
}
