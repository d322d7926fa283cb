package systems

import (
	"math"

	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/decker502/flycart/pkg/utils"
)

// ScrollSystem 滚动内容系统
// 鼠标滚轮和拖拽（触摸/鼠标按住移动）滚动页面内容，偏移限制在 [0, MaxOffset]
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerReader
	drag          utils.DragTracker
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager, pointer utils.PointerReader) *ScrollSystem {
	return &ScrollSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// IsDragging 当前指针是否处于拖拽中（拖拽释放不应触发按钮点击）
func (s *ScrollSystem) IsDragging() bool {
	return s.drag.IsDragging()
}

// Update 根据滚轮和拖拽更新滚动偏移
func (s *ScrollSystem) Update(deltaTime float64) {
	scroll := findScroll(s.entityManager)
	if scroll == nil {
		return
	}

	p := s.pointer()
	delta := -s.drag.Update(p)
	delta -= p.WheelY * config.ScrollWheelSpeed

	if delta != 0 {
		scroll.Offset = math.Max(0, math.Min(scroll.MaxOffset, scroll.Offset+delta))
	}
}
