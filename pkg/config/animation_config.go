package config

import (
	"image/color"

	"github.com/decker502/flycart/pkg/utils"
)

// 加入购物车动画配置
//
// 两个阶段：
//  1. 按钮收缩：宽度从完整宽度缩到 ButtonSize（缓入曲线）
//  2. 标记飞行：圆形标记沿二次贝塞尔曲线飞向购物车图标（缓入曲线）
const (
	// CollapseDuration 按钮收缩时长（秒）
	CollapseDuration = 0.3

	// FlightDuration 标记飞行时长（秒）
	FlightDuration = 0.9

	// DefaultMarkerEndScale 标记到达购物车时的缩放（商品未配置时使用）
	DefaultMarkerEndScale = 0.5
)

// CollapseEasingPoints 收缩阶段 cubic-bezier 控制点 (x1, y1, x2, y2)
var CollapseEasingPoints = [4]float64{0.11, 0, 0.5, 0}

// FlightEasingPoints 飞行阶段 cubic-bezier 控制点 (x1, y1, x2, y2)
var FlightEasingPoints = [4]float64{0.12, 0, 0.39, 0}

// CollapseEasing 返回收缩阶段的缓动函数
func CollapseEasing() utils.EasingFunc {
	p := CollapseEasingPoints
	return utils.CubicBezier(p[0], p[1], p[2], p[3])
}

// FlightEasing 返回飞行阶段的缓动函数
func FlightEasing() utils.EasingFunc {
	p := FlightEasingPoints
	return utils.CubicBezier(p[0], p[1], p[2], p[3])
}

// 颜色配置
var (
	// ButtonColor 按钮与标记的颜色
	ButtonColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

	// ButtonLabelColor 按钮文字颜色
	ButtonLabelColor = color.White

	// HeaderColor 顶部栏/导航栏背景（rgba(0,0,0,0.2)）
	HeaderColor = color.RGBA{R: 0, G: 0, B: 0, A: 51}

	// PageBackgroundColor 页面背景
	PageBackgroundColor = color.White

	// BodyTextColor 正文颜色
	BodyTextColor = color.Black
)
