package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validGreetingYAML = `
title: "Happy Birthday"
name: "achai"
wish: "Wishing you a year full of joy and adventure!"
closing:
  message: "Warm hugs."
  signOff: "With all my love"
share:
  baseURL: "https://wa.me/?text="
audio:
  background: "assets/audio/background.au"
songs:
  - name: "Birthday Song 1"
    file: "assets/audio/song1.au"
    color: "#ffe09e"
  - name: "Birthday Song 2"
    file: "assets/audio/song2.au"
    color: "#a9f5e4"
`

func TestParseGreetingConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GreetingConfig)
	}{
		{
			name:        "valid config uses default timings",
			yamlContent: validGreetingYAML,
			validate: func(t *testing.T, cfg *GreetingConfig) {
				if cfg.Name != "Achai" {
					t.Errorf("expected name to be title-cased to Achai, got %q", cfg.Name)
				}
				if cfg.Timing != DefaultTimingConfig() {
					t.Errorf("expected default timing, got %+v", cfg.Timing)
				}
				if cfg.Audio.Volume != 0.8 {
					t.Errorf("expected default volume 0.8, got %.2f", cfg.Audio.Volume)
				}
				if len(cfg.Songs) != 2 {
					t.Errorf("expected 2 songs, got %d", len(cfg.Songs))
				}
				if got := cfg.BirthdayMessage(); got != "Happy Birthday, Achai!" {
					t.Errorf("unexpected birthday message %q", got)
				}
			},
		},
		{
			name:        "timing override",
			yamlContent: validGreetingYAML + "timing:\n  birthdayFadeMs: 5000\n",
			validate: func(t *testing.T, cfg *GreetingConfig) {
				if cfg.Timing.BirthdayFadeMs != 5000 {
					t.Errorf("expected birthdayFadeMs 5000, got %d", cfg.Timing.BirthdayFadeMs)
				}
				if cfg.Timing.WishFadeMs != 3500 {
					t.Errorf("unset fields should keep defaults, got wishFadeMs %d", cfg.Timing.WishFadeMs)
				}
			},
		},
		{
			name:        "dob normalised",
			yamlContent: validGreetingYAML + "dob: \"1990/5/12\"\n",
			validate: func(t *testing.T, cfg *GreetingConfig) {
				if cfg.DOB != "12-05-1990" {
					t.Errorf("expected dob 12-05-1990, got %q", cfg.DOB)
				}
			},
		},
		{
			name:        "missing name",
			yamlContent: strings.Replace(validGreetingYAML, `name: "achai"`, `name: "  "`, 1),
			wantErr:     true,
			errContains: "name cannot be empty",
		},
		{
			name:        "missing share url",
			yamlContent: strings.Replace(validGreetingYAML, `baseURL: "https://wa.me/?text="`, `baseURL: ""`, 1),
			wantErr:     true,
			errContains: "share.baseURL",
		},
		{
			name:        "bad song color",
			yamlContent: strings.Replace(validGreetingYAML, `"#ffe09e"`, `"pink"`, 1),
			wantErr:     true,
			errContains: "songs[0].color",
		},
		{
			name:        "fades longer than stage",
			yamlContent: validGreetingYAML + "timing:\n  birthdayFadeMs: 1000\n",
			wantErr:     true,
			errContains: "exceeds birthdayFadeMs",
		},
		{
			name:        "non-positive interval",
			yamlContent: validGreetingYAML + "timing:\n  countdownIntervalMs: 0\n",
			wantErr:     true,
			errContains: "countdownIntervalMs",
		},
		{
			name: "too many songs",
			yamlContent: validGreetingYAML + `  - {name: "3", file: "3.mp3", color: "#ffffff"}
  - {name: "4", file: "4.mp3", color: "#ffffff"}
  - {name: "5", file: "5.mp3", color: "#ffffff"}
`,
			wantErr:     true,
			errContains: "at most 4 songs",
		},
		{
			name:        "malformed yaml",
			yamlContent: "name: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGreetingConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGreetingConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.yaml")
	if err := os.WriteFile(path, []byte(validGreetingYAML), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadGreetingConfig(path)
	if err != nil {
		t.Fatalf("LoadGreetingConfig failed: %v", err)
	}
	if cfg.Share.BaseURL != "https://wa.me/?text=" {
		t.Errorf("unexpected base url %q", cfg.Share.BaseURL)
	}

	if _, err := LoadGreetingConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestDefaultGreetingFile 仓库自带的默认配置必须能通过校验
func TestDefaultGreetingFile(t *testing.T) {
	cfg, err := LoadGreetingConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("default greeting config is invalid: %v", err)
	}
	if len(cfg.Songs) != MaxSongs {
		t.Errorf("expected %d default songs, got %d", MaxSongs, len(cfg.Songs))
	}
}

func TestTimingsDurations(t *testing.T) {
	tm := DefaultTimings()
	if tm.BirthdayDuration() != 4100*time.Millisecond {
		t.Errorf("expected birthday duration 4100ms, got %v", tm.BirthdayDuration())
	}
	if tm.WishDuration() != 3700*time.Millisecond {
		t.Errorf("expected wish duration 3700ms, got %v", tm.WishDuration())
	}
	if tm.CountdownInterval != 1200*time.Millisecond {
		t.Errorf("expected countdown interval 1200ms, got %v", tm.CountdownInterval)
	}
}

func TestSongColor(t *testing.T) {
	cfg, err := ParseGreetingConfig([]byte(validGreetingYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cfg.SongColor(0)
	if c.R != 0xff || c.G != 0xe0 || c.B != 0x9e || c.A != 0xff {
		t.Errorf("unexpected song color %+v", c)
	}
	if out := cfg.SongColor(9); out.R != 255 || out.G != 255 || out.B != 255 {
		t.Errorf("out of range index should fall back to white, got %+v", out)
	}
}

func TestClosingMessageSubstitutesName(t *testing.T) {
	cfg := &GreetingConfig{Name: "Mina", Closing: ClosingConfig{Message: "Dear {name}, happy day {name}!"}}
	if got := cfg.ClosingMessage(); got != "Dear Mina, happy day Mina!" {
		t.Errorf("ClosingMessage() = %q", got)
	}

	cfg.Closing.Message = "No placeholder"
	if got := cfg.ClosingMessage(); got != "No placeholder" {
		t.Errorf("ClosingMessage() = %q", got)
	}
}
