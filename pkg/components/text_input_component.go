package components

import (
	"strings"
	"unicode"
)

// WishMaxLength 愿望文字的最大字符数
const WishMaxLength = 80

// WishBuffer 愿望输入缓冲区
// 只接受可打印字符，按 rune 计数
type WishBuffer struct {
	runes []rune
}

// Append 追加字符，返回实际追加的数量
// 不可打印字符被忽略，超过上限的部分被丢弃
func (b *WishBuffer) Append(rs ...rune) int {
	added := 0
	for _, r := range rs {
		if !unicode.IsPrint(r) {
			continue
		}
		if len(b.runes) >= WishMaxLength {
			break
		}
		b.runes = append(b.runes, r)
		added++
	}
	return added
}

// Backspace 删除最后一个字符
func (b *WishBuffer) Backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Clear 清空缓冲区
func (b *WishBuffer) Clear() {
	b.runes = b.runes[:0]
}

// String 当前文字
func (b *WishBuffer) String() string {
	return string(b.runes)
}

// Len 当前字符数
func (b *WishBuffer) Len() int {
	return len(b.runes)
}

// IsBlank 是否为空或只含空白
func (b *WishBuffer) IsBlank() bool {
	return strings.TrimSpace(string(b.runes)) == ""
}
