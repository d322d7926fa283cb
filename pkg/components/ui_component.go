package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// TapTargetComponent 标记实体可以被点击/触摸
// 可点击区域由 LayoutComponent 决定；带 CartButtonComponent 的实体使用按钮当前的实际宽度
type TapTargetComponent struct {
	// Enabled 是否响应点击
	Enabled bool
	// State 当前交互状态
	State UIState
	// OnTap 释放时触发的回调
	OnTap func()
}
