package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内嵌默认贺卡配置的路径
const DefaultConfigPath = "data/greeting.yaml"

// GreetingConfig 贺卡配置
// 文字内容、曲目列表、分享地址与各阶段时长都来自该配置
type GreetingConfig struct {
	Title   string        `yaml:"title"`   // 窗口标题
	Name    string        `yaml:"name"`    // 寿星名字
	DOB     string        `yaml:"dob"`     // 出生日期（可选，dd-mm-yyyy）
	Wish    string        `yaml:"wish"`    // 第二阶段的祝愿文字
	Closing ClosingConfig `yaml:"closing"` // 结束语
	Share   ShareConfig   `yaml:"share"`   // 愿望分享链接
	Audio   AudioConfig   `yaml:"audio"`   // 背景音乐
	Songs   []SongConfig  `yaml:"songs"`   // 可选曲目（Little Fun）
	Timing  TimingConfig  `yaml:"timing"`  // 阶段时长（毫秒）
}

// ClosingConfig 结束阶段文字
type ClosingConfig struct {
	Message string `yaml:"message"`
	SignOff string `yaml:"signOff"`
}

// ShareConfig 愿望分享配置
// 提交愿望时打开 BaseURL + URL 编码后的文字
type ShareConfig struct {
	BaseURL string `yaml:"baseURL"`
}

// AudioConfig 背景音乐配置
type AudioConfig struct {
	Background string  `yaml:"background"` // 背景音乐文件路径
	Volume     float64 `yaml:"volume"`     // 0.0 ~ 1.0
}

// SongConfig 单首可选曲目
type SongConfig struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Color string `yaml:"color"` // 选歌弹窗中该行的底色（#rrggbb）
}

// TimingConfig 阶段时长配置，单位毫秒
type TimingConfig struct {
	CountdownIntervalMs int `yaml:"countdownIntervalMs"` // 倒计时每个数字的持续时间
	BirthdayFadeMs      int `yaml:"birthdayFadeMs"`      // BDAY_FADE
	BirthdayTailMs      int `yaml:"birthdayTailMs"`      // 生日标题淡出后的停留
	WishFadeMs          int `yaml:"wishFadeMs"`          // WISH_FADE
	WishTailMs          int `yaml:"wishTailMs"`          // 愿望文字淡出后的停留
	FadeInMs            int `yaml:"fadeInMs"`
	BirthdayFadeOutMs   int `yaml:"birthdayFadeOutMs"`
	WishFadeOutMs       int `yaml:"wishFadeOutMs"`
	RingStepMs          int `yaml:"ringStepMs"` // 光环头部前进一格的时间
}

// Timings 换算成 time.Duration 后的阶段时长
type Timings struct {
	CountdownInterval time.Duration
	BirthdayFade      time.Duration
	BirthdayTail      time.Duration
	WishFade          time.Duration
	WishTail          time.Duration
	FadeIn            time.Duration
	BirthdayFadeOut   time.Duration
	WishFadeOut       time.Duration
	RingStep          time.Duration
}

// DefaultTimingConfig 返回默认时长
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		CountdownIntervalMs: 1200,
		BirthdayFadeMs:      3800,
		BirthdayTailMs:      300,
		WishFadeMs:          3500,
		WishTailMs:          200,
		FadeInMs:            700,
		BirthdayFadeOutMs:   800,
		WishFadeOutMs:       850,
		RingStepMs:          290,
	}
}

// DefaultTimings 返回默认时长（Duration 形式）
func DefaultTimings() Timings {
	return DefaultTimingConfig().Durations()
}

// Durations 将毫秒配置换算为 time.Duration
func (tc TimingConfig) Durations() Timings {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Timings{
		CountdownInterval: ms(tc.CountdownIntervalMs),
		BirthdayFade:      ms(tc.BirthdayFadeMs),
		BirthdayTail:      ms(tc.BirthdayTailMs),
		WishFade:          ms(tc.WishFadeMs),
		WishTail:          ms(tc.WishTailMs),
		FadeIn:            ms(tc.FadeInMs),
		BirthdayFadeOut:   ms(tc.BirthdayFadeOutMs),
		WishFadeOut:       ms(tc.WishFadeOutMs),
		RingStep:          ms(tc.RingStepMs),
	}
}

// BirthdayDuration 生日标题阶段总时长（BDAY_FADE + 300）
func (t Timings) BirthdayDuration() time.Duration {
	return t.BirthdayFade + t.BirthdayTail
}

// WishDuration 愿望阶段总时长（WISH_FADE + 200）
func (t Timings) WishDuration() time.Duration {
	return t.WishFade + t.WishTail
}

// LoadGreetingConfig 从 YAML 文件加载贺卡配置
func LoadGreetingConfig(filePath string) (*GreetingConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read greeting config file: %w", err)
	}
	return ParseGreetingConfig(data)
}

// ParseGreetingConfig 解析 YAML 数据
// 未填写的时长字段使用默认值，名字会被规范化为首字母大写
func ParseGreetingConfig(data []byte) (*GreetingConfig, error) {
	cfg := GreetingConfig{Timing: DefaultTimingConfig()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse greeting config YAML: %w", err)
	}

	cfg.Name = NormalizeName(cfg.Name)
	if cfg.DOB != "" {
		dob, err := NormalizeDOB(cfg.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid greeting config: %w", err)
		}
		cfg.DOB = dob
	}
	if cfg.Audio.Volume == 0 {
		cfg.Audio.Volume = 0.8
	}

	if err := validateGreetingConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid greeting config: %w", err)
	}

	return &cfg, nil
}

// validateGreetingConfig 验证配置的有效性
func validateGreetingConfig(cfg *GreetingConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(cfg.Share.BaseURL) == "" {
		return fmt.Errorf("share.baseURL cannot be empty")
	}
	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %.2f", cfg.Audio.Volume)
	}

	if len(cfg.Songs) == 0 {
		return fmt.Errorf("songs cannot be empty")
	}
	if len(cfg.Songs) > MaxSongs {
		return fmt.Errorf("at most %d songs fit the song picker, got %d", MaxSongs, len(cfg.Songs))
	}
	for i, song := range cfg.Songs {
		if song.Name == "" {
			return fmt.Errorf("songs[%d].name cannot be empty", i)
		}
		if song.File == "" {
			return fmt.Errorf("songs[%d].file cannot be empty", i)
		}
		if _, err := ParseHexColor(song.Color); err != nil {
			return fmt.Errorf("songs[%d].color: %w", i, err)
		}
	}

	tc := cfg.Timing
	for name, v := range map[string]int{
		"countdownIntervalMs": tc.CountdownIntervalMs,
		"birthdayFadeMs":      tc.BirthdayFadeMs,
		"wishFadeMs":          tc.WishFadeMs,
		"fadeInMs":            tc.FadeInMs,
		"birthdayFadeOutMs":   tc.BirthdayFadeOutMs,
		"wishFadeOutMs":       tc.WishFadeOutMs,
		"ringStepMs":          tc.RingStepMs,
	} {
		if v <= 0 {
			return fmt.Errorf("timing.%s must be positive, got %d", name, v)
		}
	}
	if tc.BirthdayTailMs < 0 || tc.WishTailMs < 0 {
		return fmt.Errorf("timing tails cannot be negative")
	}
	if tc.FadeInMs+tc.BirthdayFadeOutMs > tc.BirthdayFadeMs {
		return fmt.Errorf("timing.fadeInMs + birthdayFadeOutMs (%d) exceeds birthdayFadeMs (%d)",
			tc.FadeInMs+tc.BirthdayFadeOutMs, tc.BirthdayFadeMs)
	}
	if tc.FadeInMs+tc.WishFadeOutMs > tc.WishFadeMs {
		return fmt.Errorf("timing.fadeInMs + wishFadeOutMs (%d) exceeds wishFadeMs (%d)",
			tc.FadeInMs+tc.WishFadeOutMs, tc.WishFadeMs)
	}

	return nil
}

// NormalizeName 去除首尾空白并按单词首字母大写
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return cases.Title(language.Und).String(name)
}

// ParseHexColor 解析 #rrggbb 颜色
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// SongColor 返回第 i 首歌的行底色，解析失败时返回白色
func (cfg *GreetingConfig) SongColor(i int) color.NRGBA {
	if i < 0 || i >= len(cfg.Songs) {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	c, err := ParseHexColor(cfg.Songs[i].Color)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}

// BirthdayMessage 第一阶段的标题
func (cfg *GreetingConfig) BirthdayMessage() string {
	return "Happy Birthday, " + cfg.Name + "!"
}

// ClosingMessage 结束语，{name} 会被替换为寿星名字
func (cfg *GreetingConfig) ClosingMessage() string {
	return strings.ReplaceAll(cfg.Closing.Message, "{name}", cfg.Name)
}
