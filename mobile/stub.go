//go:build !mobile

// Package mobile 是 ebitenmobile 绑定入口
//
// 贺卡的移动端代码只在 -tags mobile 时编译（mobile.go、embed.go），
// 普通构建只保留这个空函数，让包仍可被 go vet / go list 识别。
package mobile

// Dummy 占位导出
func Dummy() {}
