package systems

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/utils"
)

const glyphCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

// GlyphBackdrop 字符雨背景
//
// 每列若干字符以列速度下落，越过底部后回到顶部上方并换一个字符。
// 列的最后一个字符是“头部”，颜色更亮、字号更大。
// 背景与阶段和弹窗无关，每帧都更新和绘制。
type GlyphBackdrop struct {
	rng           *rand.Rand
	width, height float64
	columns       []components.GlyphColumn
	calm          bool
	frame         float64
}

// NewGlyphBackdrop 创建并生成字符雨
func NewGlyphBackdrop(rng *rand.Rand) *GlyphBackdrop {
	gb := &GlyphBackdrop{
		rng:    rng,
		width:  config.GameWindowWidth,
		height: config.GameWindowHeight,
	}
	gb.Regenerate()
	return gb
}

// Regenerate 重新生成所有列
func (gb *GlyphBackdrop) Regenerate() {
	count := config.GlyphColumnCount()
	gb.columns = make([]components.GlyphColumn, count)
	for i := range gb.columns {
		cells := make([]components.GlyphCell, 10+gb.rng.Intn(12))
		for k := range cells {
			cells[k] = components.GlyphCell{
				Y:    gb.rand(-gb.height*2.2, gb.height),
				Char: gb.randomChar(),
				Head: k == len(cells)-1,
			}
		}
		gb.columns[i] = components.GlyphColumn{
			X:        float64(i) * (gb.width / float64(count)),
			Speed:    gb.columnSpeed(),
			FontSize: config.GlyphFontSize,
			Cells:    cells,
		}
	}
}

// Calm 是否为舒缓模式（更慢的下落速度）
func (gb *GlyphBackdrop) Calm() bool {
	return gb.calm
}

// ToggleCalm 切换舒缓/电影模式，并按新模式重新分配列速度
func (gb *GlyphBackdrop) ToggleCalm() bool {
	gb.calm = !gb.calm
	for i := range gb.columns {
		gb.columns[i].Speed = gb.columnSpeed()
	}
	return gb.calm
}

// Columns 当前所有列（只读）
func (gb *GlyphBackdrop) Columns() []components.GlyphColumn {
	return gb.columns
}

// Update 推进字符雨
func (gb *GlyphBackdrop) Update(dt float64, now time.Duration) {
	step := dt * 60
	gb.frame += step
	ms := float64(now) / float64(time.Millisecond)

	for ci := range gb.columns {
		col := &gb.columns[ci]
		last := len(col.Cells) - 1
		wave := 1.03 + 0.46*math.Sin(ms/660+col.X)
		for k := range col.Cells {
			cell := &col.Cells[k]
			t := 0.0
			if last > 0 {
				t = float64(k) / float64(last)
			}
			cell.Color = gb.cellColor(cell.Head, t, col.X)

			cell.Y += col.Speed * wave * step
			if cell.Y > gb.height+36 {
				cell.Y = gb.rand(-240, -20)
				cell.Char = gb.randomChar()
			}

			rerollChance := 0.042
			if cell.Head {
				rerollChance += 0.03
			}
			if gb.rng.Float64() < rerollChance {
				cell.Char = gb.randomChar()
			}
		}
	}
}

// cellColor 头部偏白或粉色，其余字符在两种色调间按位置渐变
func (gb *GlyphBackdrop) cellColor(head bool, t, x float64) color.NRGBA {
	switch {
	case head && gb.rng.Float64() < 0.75:
		return color.NRGBA{R: 250, G: 240, B: 255, A: 225}
	case head && gb.rng.Float64() < 0.30:
		return color.NRGBA{R: 255, G: 210, B: 239, A: 205}
	case gb.rng.Float64() < 0.055:
		return utils.NRGBA(255, 220, 240, 145+gb.rand(0, 60))
	}
	mix := t*0.7 + 0.09*math.Abs(math.Sin(gb.frame/27+x))
	return utils.BlendRGB(
		[3]float64{255, 180 - 60*t, 220 - 50*t},
		[3]float64{170, 160 + 110*t, 190 + 40*t},
		mix,
	)
}

func (gb *GlyphBackdrop) columnSpeed() float64 {
	if gb.calm {
		return gb.rand(0.6, 1.6)
	}
	return gb.rand(1.85, 3.8)
}

func (gb *GlyphBackdrop) randomChar() rune {
	return rune(glyphCharset[gb.rng.Intn(len(glyphCharset))])
}

func (gb *GlyphBackdrop) rand(lo, hi float64) float64 {
	return lo + gb.rng.Float64()*(hi-lo)
}
