package utils

import "strings"

// WrapText 按宽度把一段文字折成多行
//
// measure 返回字符串的渲染宽度（通常是 text.Advance）。
// 单个超宽单词独占一行，不会被截断。
func WrapText(s string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Split(s, " ")
	lines := make([]string, 0, 4)
	line := ""
	for i, word := range words {
		candidate := line + word + " "
		if measure(candidate) > maxWidth && i > 0 {
			lines = append(lines, strings.TrimSpace(line))
			line = word + " "
			continue
		}
		line = candidate
	}
	return append(lines, strings.TrimSpace(line))
}
