package components

import "github.com/decker502/flycart/pkg/utils"

// MeasuredComponent 存储元素的测量结果（屏幕坐标）
//
// Known=false 表示尚未完成测量，此时 Origin 无意义。
// 测量结果是一次快照：元素之后滚动不会更新它。
type MeasuredComponent struct {
	Known  bool
	Origin utils.ScreenPoint
}
