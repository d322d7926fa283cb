package systems

import (
	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/decker502/flycart/pkg/utils"
)

// ButtonSystem 点击交互系统
// 负责处理可点击实体的按下、释放等交互逻辑
//
// 职责：
//   - 检测指针按下（更新状态为 UIClicked）
//   - 检测指针释放（在区域内释放时触发 OnTap 回调）
//   - 拖拽滚动结束时的释放不触发回调
//   - 不可见或禁用的按钮不响应
//   - 可见区域之外的滚动内容不响应
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerReader
	isDragging    func() bool
}

// NewButtonSystem 创建点击交互系统
// isDragging 可以为 nil（没有滚动内容时）
func NewButtonSystem(em *ecs.EntityManager, pointer utils.PointerReader, isDragging func() bool) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointer:       pointer,
		isDragging:    isDragging,
	}
}

// Update 更新点击交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	p := s.pointer()
	px, py := float64(p.X), float64(p.Y)
	dragging := s.isDragging != nil && s.isDragging()
	scroll := findScroll(s.entityManager)
	offset := 0.0
	if scroll != nil {
		offset = scroll.Offset
	}

	entities := ecs.GetEntitiesWith2[*components.TapTargetComponent, *components.LayoutComponent](s.entityManager)

	for _, id := range entities {
		target, _ := ecs.GetComponent[*components.TapTargetComponent](s.entityManager, id)

		// 禁用状态不响应交互
		if !target.Enabled {
			target.State = components.UIDisabled
			continue
		}

		x, y, w, h, ok := TapRect(s.entityManager, id, offset)
		if !ok {
			target.State = components.UIDisabled
			continue
		}

		// 被顶部栏/导航栏遮住的滚动内容不可点击
		if scroll != nil && isScrolling(s.entityManager, id) && (py < scroll.ViewportTop || py > scroll.ViewportBottom) {
			target.State = components.UINormal
			continue
		}

		if !utils.PointInRect(px, py, x, y, w, h) {
			target.State = components.UINormal
			continue
		}

		switch {
		case p.Pressed && !dragging:
			target.State = components.UIClicked
		case p.JustReleased && !dragging:
			// 释放瞬间触发回调
			target.State = components.UIHovered
			if target.OnTap != nil {
				target.OnTap()
			}
		default:
			target.State = components.UIHovered
		}
	}
}

// TapRect 返回实体当前的可点击屏幕矩形
// 带 CartButtonComponent 的实体使用按钮实际宽度（水平居中）；按钮不可见时返回 ok=false
func TapRect(em *ecs.EntityManager, id ecs.EntityID, scrollOffset float64) (x, y, w, h float64, ok bool) {
	layout, found := ecs.GetComponent[*components.LayoutComponent](em, id)
	if !found {
		return 0, 0, 0, 0, false
	}

	x, y, w, h = layout.X, layout.Y, layout.Width, layout.Height
	if layout.Scrolls {
		y -= scrollOffset
	}

	if button, isButton := ecs.GetComponent[*components.CartButtonComponent](em, id); isButton {
		if !button.Visible() {
			return 0, 0, 0, 0, false
		}
		centerX := layout.X + layout.Width/2
		w = button.Width()
		x = centerX - w/2
		h = button.Height
	}
	return x, y, w, h, true
}

// isScrolling 实体是否随内容滚动
func isScrolling(em *ecs.EntityManager, id ecs.EntityID) bool {
	layout, ok := ecs.GetComponent[*components.LayoutComponent](em, id)
	return ok && layout.Scrolls
}
