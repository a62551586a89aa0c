package utils

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// SystemLinkOpener 调用操作系统默认浏览器打开链接
type SystemLinkOpener struct{}

// OpenURL 打开外部链接
// 命令以非阻塞方式启动，不等待浏览器退出
func (SystemLinkOpener) OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("[LinkOpener] Warning: browser command exited with error: %v", err)
		}
	}()
	return nil
}

// SystemClipboard 写入系统剪贴板
type SystemClipboard struct{}

// WriteText 复制文字到剪贴板
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
