package components

import "image/color"

// GlyphCell 字符雨中的一个字符
type GlyphCell struct {
	Y     float64
	Char  rune
	Head  bool // 是否为列底部的“头部”字符
	Color color.NRGBA
}

// GlyphColumn 一列下落的字符
type GlyphColumn struct {
	X        float64
	Speed    float64
	FontSize float64
	Cells    []GlyphCell
}
