package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/decker502/flycart/pkg/utils"
)

var (
	// ErrCartNotMeasured 购物车图标位置尚未测量，无法确定飞行终点
	ErrCartNotMeasured = errors.New("cart icon position has not been measured yet")
	// ErrNotIdle 动画已经开始（或已结束），忽略重复点击
	ErrNotIdle = errors.New("add-to-cart animation is not idle")
)

// Measurer 异步测量元素屏幕位置的能力（由 MeasureSystem 提供）
type Measurer interface {
	Measure(id ecs.EntityID, callback func(utils.ScreenPoint))
}

// AddToCartSystem 加入购物车动画序列
//
// 职责：
//   - Tap：校验前置条件（空闲、购物车位置已知），请求测量按钮位置
//   - 测量完成：开始按钮收缩补间
//   - Update：推进收缩/飞行补间，在收缩完成时切换到飞行阶段
//   - 飞行阶段：标记位置由二次贝塞尔曲线计算，缩放从 1 线性变化到 EndScale
type AddToCartSystem struct {
	entityManager *ecs.EntityManager
	measurer      Measurer
	screenWidth   float64
}

// NewAddToCartSystem 创建加入购物车动画系统
func NewAddToCartSystem(em *ecs.EntityManager, measurer Measurer, screenWidth float64) *AddToCartSystem {
	return &AddToCartSystem{
		entityManager: em,
		measurer:      measurer,
		screenWidth:   screenWidth,
	}
}

// Tap 处理按钮点击
//
// 只有 Idle 阶段接受点击；购物车位置未测量时拒绝点击并保持 Idle。
func (s *AddToCartSystem) Tap(stateID ecs.EntityID) error {
	state, ok := ecs.GetComponent[*components.AddToCartComponent](s.entityManager, stateID)
	if !ok {
		return fmt.Errorf("entity %d has no AddToCartComponent", stateID)
	}

	if state.Phase != components.PhaseIdle {
		log.Printf("[AddToCart] Tap ignored in phase %s", state.Phase)
		return ErrNotIdle
	}

	cart, ok := ecs.GetComponent[*components.MeasuredComponent](s.entityManager, state.CartEntity)
	if !ok || !cart.Known {
		log.Printf("[AddToCart] Tap rejected: cart not measured yet")
		return ErrCartNotMeasured
	}

	state.CartOrigin = cart.Origin
	state.Phase = components.PhaseMeasuring
	state.Runs++

	if button, ok := ecs.GetComponent[*components.TapTargetComponent](s.entityManager, state.ButtonEntity); ok {
		button.Enabled = false
	}

	log.Printf("[AddToCart] Tap accepted, measuring button (cart at %.0f, %.0f)", cart.Origin.X, cart.Origin.Y)
	s.measurer.Measure(state.ButtonEntity, func(origin utils.ScreenPoint) {
		s.beginCollapse(state, origin)
	})
	return nil
}

// beginCollapse 按钮位置测量完成，开始收缩阶段
func (s *AddToCartSystem) beginCollapse(state *components.AddToCartComponent, buttonOrigin utils.ScreenPoint) {
	if state.Phase != components.PhaseMeasuring {
		return
	}

	// 标记起点：收缩后的圆形按钮（水平居中）
	state.ButtonOrigin = utils.ScreenPoint{
		X: config.CollapsedMarkerX(s.screenWidth),
		Y: buttonOrigin.Y,
	}
	state.CollapseProgress = 1
	state.Collapse = utils.NewTween(1, 0, config.CollapseDuration, config.CollapseEasing())
	state.Phase = components.PhaseCollapsing

	if marker, ok := ecs.GetComponent[*components.MarkerComponent](s.entityManager, state.MarkerEntity); ok {
		marker.X = state.ButtonOrigin.X
		marker.Y = state.ButtonOrigin.Y
		marker.Scale = 1
	}

	log.Printf("[AddToCart] Collapsing, marker origin = (%.0f, %.0f)", state.ButtonOrigin.X, state.ButtonOrigin.Y)
}

// Update 推进所有页面的动画
func (s *AddToCartSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.AddToCartComponent](s.entityManager)

	for _, id := range entities {
		state, ok := ecs.GetComponent[*components.AddToCartComponent](s.entityManager, id)
		if !ok {
			continue
		}

		switch state.Phase {
		case components.PhaseCollapsing:
			s.updateCollapse(state, deltaTime)
		case components.PhaseFlying:
			s.updateFlight(state, deltaTime)
		}
	}
}

// updateCollapse 推进收缩补间；完成时瞬间切换到飞行阶段
func (s *AddToCartSystem) updateCollapse(state *components.AddToCartComponent, deltaTime float64) {
	value, finished := state.Collapse.Update(deltaTime)
	state.CollapseProgress = value

	button, hasButton := ecs.GetComponent[*components.CartButtonComponent](s.entityManager, state.ButtonEntity)
	if hasButton {
		button.WidthProgress = value
		button.LabelOpacity = value
	}

	if !finished {
		return
	}

	// 收缩完成：标记显示，按钮隐藏，开始飞行
	if marker, ok := ecs.GetComponent[*components.MarkerComponent](s.entityManager, state.MarkerEntity); ok {
		marker.Opacity = 1
	}
	if hasButton {
		button.Opacity = 0
	}

	state.Progress = 0
	state.Flight = utils.NewTween(0, 1, config.FlightDuration, config.FlightEasing())
	state.Phase = components.PhaseFlying
	log.Printf("[AddToCart] Collapse finished, flying to cart")
}

// updateFlight 推进飞行补间，更新标记位置和缩放
func (s *AddToCartSystem) updateFlight(state *components.AddToCartComponent, deltaTime float64) {
	progress, finished := state.Flight.Update(deltaTime)
	state.Progress = progress

	marker, ok := ecs.GetComponent[*components.MarkerComponent](s.entityManager, state.MarkerEntity)
	if ok {
		pos := utils.FlightPosition(progress, state.ButtonOrigin, state.CartOrigin)
		marker.X = pos.X
		marker.Y = pos.Y
		marker.Scale = utils.Lerp(1, state.EndScale, progress)
	}

	if !finished {
		return
	}

	// 到达购物车：标记淡出，按钮保持收缩隐藏
	if ok {
		marker.Opacity = 0
	}
	state.Phase = components.PhaseDone
	log.Printf("[AddToCart] Marker reached cart at (%.0f, %.0f)", state.CartOrigin.X, state.CartOrigin.Y)
}
