package app

import (
	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/utils"
)

// WindowSize 返回桌面窗口尺寸
// 模拟移动端时使用逻辑尺寸，否则按比例缩小以适应常见显示器高度
func WindowSize() (int, int) {
	if utils.IsMobile() {
		return config.ScreenWidth, config.ScreenHeight
	}
	scale := config.DesktopWindowScale
	return int(float64(config.ScreenWidth) * scale), int(float64(config.ScreenHeight) * scale)
}
