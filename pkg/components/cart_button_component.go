package components

import "github.com/decker502/flycart/pkg/utils"

// CartButtonComponent "加入购物车"按钮的视觉状态
//
// 宽度由 WidthProgress 在 [CollapsedWidth, FullWidth] 之间插值：
// 1 = 完整宽度，0 = 收缩为直径 CollapsedWidth 的圆形。按钮始终水平居中。
type CartButtonComponent struct {
	Label string

	FullWidth      float64
	CollapsedWidth float64
	Height         float64

	// WidthProgress 展开程度 [0, 1]
	WidthProgress float64
	// Opacity 按钮整体不透明度
	Opacity float64
	// LabelOpacity 文字不透明度（随收缩淡出）
	LabelOpacity float64
}

// Width 返回按钮当前宽度
func (b *CartButtonComponent) Width() float64 {
	return utils.Lerp(b.CollapsedWidth, b.FullWidth, b.WidthProgress)
}

// Visible 按钮是否可见（不可见时不响应点击）
func (b *CartButtonComponent) Visible() bool {
	return b.Opacity > 0
}
