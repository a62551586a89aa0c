package systems

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/decker502/bdaygreet/pkg/config"
)

func TestGlyphBackdropLayout(t *testing.T) {
	gb := NewGlyphBackdrop(rand.New(rand.NewSource(3)))
	cols := gb.Columns()

	if len(cols) != config.GlyphColumnCount() {
		t.Fatalf("expected %d columns, got %d", config.GlyphColumnCount(), len(cols))
	}
	for i, col := range cols {
		if n := len(col.Cells); n < 10 || n > 21 {
			t.Errorf("column %d: %d cells, want 10..21", i, n)
		}
		for k, cell := range col.Cells {
			if cell.Head != (k == len(col.Cells)-1) {
				t.Errorf("column %d cell %d: only the last cell is the head", i, k)
			}
			if !strings.ContainsRune(glyphCharset, cell.Char) {
				t.Errorf("column %d cell %d: unexpected char %q", i, k, cell.Char)
			}
		}
		if col.Speed < 1.85 || col.Speed > 3.8 {
			t.Errorf("column %d: speed %.2f outside cinematic range", i, col.Speed)
		}
	}
}

func TestGlyphBackdropToggleCalm(t *testing.T) {
	gb := NewGlyphBackdrop(rand.New(rand.NewSource(3)))

	if !gb.ToggleCalm() || !gb.Calm() {
		t.Fatal("first toggle should enable calm mode")
	}
	for i, col := range gb.Columns() {
		if col.Speed < 0.6 || col.Speed > 1.6 {
			t.Errorf("column %d: speed %.2f outside calm range", i, col.Speed)
		}
	}
	if gb.ToggleCalm() {
		t.Error("second toggle should disable calm mode")
	}
}

func TestGlyphBackdropWraps(t *testing.T) {
	gb := NewGlyphBackdrop(rand.New(rand.NewSource(5)))

	var now time.Duration
	for i := 0; i < 600; i++ {
		now += time.Second / 60
		gb.Update(1.0/60, now)
	}

	for i, col := range gb.Columns() {
		for k, cell := range col.Cells {
			if cell.Y > config.GameWindowHeight+36 {
				t.Errorf("column %d cell %d: y=%.1f should have wrapped", i, k, cell.Y)
			}
			if cell.Color.A == 0 {
				t.Errorf("column %d cell %d: colour not assigned", i, k)
			}
		}
	}
}
