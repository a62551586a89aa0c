// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// pick 根据路径前缀选择文件系统，返回规范化后的路径
func pick(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// embed.FS 使用正斜杠，且不接受 "./" 前缀
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	var fsys fs.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		fsys = assetsFS
	case strings.HasPrefix(path, "data/"):
		fsys = dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}
	if fsys == nil {
		return nil, "", fmt.Errorf("no embedded file system for %s", path)
	}
	return fsys, path, nil
}

// Open 根据路径前缀选择正确的文件系统并打开文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(path string) (fs.File, error) {
	fsys, p, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(p)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	fsys, p, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, p)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// ReadFileOrDisk 优先读取嵌入资源，找不到时回退到磁盘文件
// 用于 --config 指定的外部配置及其引用的音频
func ReadFileOrDisk(path string) ([]byte, error) {
	if data, err := ReadFile(path); err == nil {
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource %s not embedded and not on disk: %w", path, err)
	}
	return data, nil
}
