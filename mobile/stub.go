//go:build !mobile

// 桌面构建下 mobile 包只保留导出符号，
// 绑定入口见 mobile.go（需 -tags mobile）。
package mobile

// Bound 报告当前构建是否注册了 ebitenmobile 游戏
const Bound = false

// Dummy 保持与移动端构建相同的导出符号
func Dummy() {}
