package config

import "testing"

func TestGlyphColumnCount(t *testing.T) {
	// 900 / (28+4) = 28 列，高于最少 26 列
	if got := GlyphColumnCount(); got != 28 {
		t.Errorf("GlyphColumnCount() = %d, want 28", got)
	}
}

func TestGlyphColumnsFor(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{900, 28},  // 28.125 向下取整
		{1000, 31}, // 31.25
		{320, MinGlyphColumns},
		{0, MinGlyphColumns},
	}
	for _, tt := range tests {
		if got := glyphColumnsFor(tt.width); got != tt.want {
			t.Errorf("glyphColumnsFor(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestButtonsFitCanvas(t *testing.T) {
	for i, y := range ButtonYs {
		if ButtonX+ButtonWidth > GameWindowWidth {
			t.Errorf("button %d exceeds canvas width", i)
		}
		if y+ButtonHeight > GameWindowHeight {
			t.Errorf("button %d exceeds canvas height", i)
		}
		if i > 0 && y < ButtonYs[i-1]+ButtonHeight {
			t.Errorf("button %d overlaps previous button", i)
		}
	}
}

func TestSongRowsFitCanvas(t *testing.T) {
	lastBottom := SongRowFirstY + float64(MaxSongs-1)*SongRowStep + SongRowHeight
	if lastBottom > GameWindowHeight {
		t.Errorf("song rows overflow canvas: bottom=%.1f", lastBottom)
	}
}
