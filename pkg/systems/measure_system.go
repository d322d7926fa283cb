package systems

import (
	"log"

	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/decker502/flycart/pkg/utils"
)

// measureRequest 一次待处理的测量请求
type measureRequest struct {
	id       ecs.EntityID
	callback func(utils.ScreenPoint)
}

// MeasureSystem 元素位置测量系统
//
// 模拟宿主 UI 的异步 measure 能力：
//   - 请求排队，在页面至少绘制一次之后的下一次 Update 中统一处理
//   - 结果是元素布局盒左上角的屏幕坐标（滚动内容会减去当前滚动偏移）
//   - 结果写入实体的 MeasuredComponent 并通过回调返回
type MeasureSystem struct {
	entityManager *ecs.EntityManager
	drawn         bool
	pending       []measureRequest
}

// NewMeasureSystem 创建测量系统
func NewMeasureSystem(em *ecs.EntityManager) *MeasureSystem {
	return &MeasureSystem{
		entityManager: em,
	}
}

// MarkDrawn 标记页面已完成首次绘制（之后测量请求才会被处理）
func (s *MeasureSystem) MarkDrawn() {
	s.drawn = true
}

// IsDrawn 页面是否已完成首次绘制
func (s *MeasureSystem) IsDrawn() bool {
	return s.drawn
}

// Measure 请求测量实体的屏幕位置，结果异步通过 callback 返回
// callback 可以为 nil（仅更新 MeasuredComponent）
func (s *MeasureSystem) Measure(id ecs.EntityID, callback func(utils.ScreenPoint)) {
	s.pending = append(s.pending, measureRequest{id: id, callback: callback})
}

// MeasureOnce 仅在实体尚未测量时请求测量（只需要测量一次的固定元素，如购物车图标）
func (s *MeasureSystem) MeasureOnce(id ecs.EntityID) {
	if m, ok := ecs.GetComponent[*components.MeasuredComponent](s.entityManager, id); ok && m.Known {
		return
	}
	for _, req := range s.pending {
		if req.id == id && req.callback == nil {
			return
		}
	}
	s.Measure(id, nil)
}

// Pending 返回待处理的测量请求数量
func (s *MeasureSystem) Pending() int {
	return len(s.pending)
}

// Update 处理待测量请求
func (s *MeasureSystem) Update(deltaTime float64) {
	if !s.drawn || len(s.pending) == 0 {
		return
	}

	// 回调中可能发起新的测量请求，留到下一帧处理
	requests := s.pending
	s.pending = nil

	offset := currentScrollOffset(s.entityManager)
	for _, req := range requests {
		origin, ok := ScreenOrigin(s.entityManager, req.id, offset)
		if !ok {
			log.Printf("[Measure] Warning: entity %d has no layout, request dropped", req.id)
			continue
		}

		measured, ok := ecs.GetComponent[*components.MeasuredComponent](s.entityManager, req.id)
		if !ok {
			measured = &components.MeasuredComponent{}
			s.entityManager.AddComponent(req.id, measured)
		}
		measured.Known = true
		measured.Origin = origin
		log.Printf("[Measure] entity %d origin = (%.0f, %.0f)", req.id, origin.X, origin.Y)

		if req.callback != nil {
			req.callback(origin)
		}
	}
}

// ScreenOrigin 返回实体布局盒左上角的屏幕坐标
func ScreenOrigin(em *ecs.EntityManager, id ecs.EntityID, scrollOffset float64) (utils.ScreenPoint, bool) {
	layout, ok := ecs.GetComponent[*components.LayoutComponent](em, id)
	if !ok {
		return utils.ScreenPoint{}, false
	}
	y := layout.Y
	if layout.Scrolls {
		y -= scrollOffset
	}
	return utils.ScreenPoint{X: layout.X, Y: y}, true
}

// currentScrollOffset 返回页面滚动偏移（没有滚动容器时为 0）
func currentScrollOffset(em *ecs.EntityManager) float64 {
	if scroll := findScroll(em); scroll != nil {
		return scroll.Offset
	}
	return 0
}

// findScroll 返回页面的滚动容器状态
func findScroll(em *ecs.EntityManager) *components.ScrollComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.ScrollComponent](em) {
		if scroll, ok := ecs.GetComponent[*components.ScrollComponent](em, id); ok {
			return scroll
		}
	}
	return nil
}
