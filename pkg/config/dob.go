package config

import (
	"fmt"
	"regexp"
	"strconv"
)

var nonDigits = regexp.MustCompile(`\D+`)

// NormalizeDOB 将出生日期规范化为 dd-mm-yyyy
//
// 接受任意非数字分隔符，例如 "12-05-1990"、"12/5/1990"、"1990/05/12"。
// 第一段为 4 位数字时视为 yyyy-mm-dd 顺序。
//
// 返回：
//   - string: dd-mm-yyyy 格式的日期
//   - error: 无法识别三段数字，或日/月超出范围
func NormalizeDOB(raw string) (string, error) {
	parts := nonDigits.Split(raw, -1)
	fields := make([]string, 0, 3)
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	if len(fields) < 3 {
		return "", fmt.Errorf("date of birth %q: expected day, month and year", raw)
	}

	day, month, year := fields[0], fields[1], fields[2]
	if len(day) == 4 {
		day, year = fields[2], fields[0]
	}

	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	if d < 1 || d > 31 {
		return "", fmt.Errorf("date of birth %q: day %d out of range", raw, d)
	}
	if m < 1 || m > 12 {
		return "", fmt.Errorf("date of birth %q: month %d out of range", raw, m)
	}
	if y < 1 {
		return "", fmt.Errorf("date of birth %q: invalid year", raw)
	}

	return fmt.Sprintf("%02d-%02d-%s", d, m, year), nil
}
