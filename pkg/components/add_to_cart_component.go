package components

import (
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/decker502/flycart/pkg/utils"
)

// AddToCartPhase 加入购物车动画阶段
type AddToCartPhase int

const (
	// PhaseIdle 按钮完整显示，等待点击
	PhaseIdle AddToCartPhase = iota
	// PhaseMeasuring 已点击，等待按钮位置测量结果
	PhaseMeasuring
	// PhaseCollapsing 按钮正在收缩为圆形
	PhaseCollapsing
	// PhaseFlying 标记正在飞向购物车
	PhaseFlying
	// PhaseDone 标记已到达购物车（没有反向过渡）
	PhaseDone
)

// String 返回阶段名称（用于日志）
func (p AddToCartPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMeasuring:
		return "measuring"
	case PhaseCollapsing:
		return "collapsing"
	case PhaseFlying:
		return "flying"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// AddToCartComponent 一个商品页面的加入购物车动画状态
//
// 每个页面实例拥有自己的状态实体，不共享任何全局动画值。
//
// 工作流程：
//  1. ButtonSystem 点击按钮 → AddToCartSystem.Tap 请求测量按钮位置（Measuring）
//  2. 测量完成 → 记录起点，开始收缩补间（Collapsing）
//  3. 收缩完成 → 标记显示、按钮隐藏，开始飞行补间（Flying）
//  4. 飞行完成 → 标记以终点缩放停在购物车并淡出（Done）
type AddToCartComponent struct {
	Phase AddToCartPhase

	// 关联实体
	ButtonEntity ecs.EntityID
	MarkerEntity ecs.EntityID
	CartEntity   ecs.EntityID

	// ButtonOrigin 标记起点（收缩后圆形按钮的左上角）
	ButtonOrigin utils.ScreenPoint
	// CartOrigin 购物车图标左上角
	CartOrigin utils.ScreenPoint

	// CollapseProgress 按钮展开程度（1 → 0）
	CollapseProgress float64
	// Progress 飞行进度（0 → 1，已缓动）
	Progress float64

	// EndScale 标记到达购物车时的缩放
	EndScale float64

	Collapse *utils.Tween
	Flight   *utils.Tween

	// Runs 已启动的动画次数（同一页面最多 1 次）
	Runs int
}
