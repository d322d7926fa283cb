package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动模式运行（用于本地调试）
const MobileEmulateEnv = "CART_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 移动端构建（-tags mobile）始终返回 true；桌面端取决于 MobileEmulateEnv
func IsMobile() bool {
	return mobileBuild || os.Getenv(MobileEmulateEnv) == "1"
}
