package components

import "image/color"

// MarkerComponent 飞向购物车的圆形标记（"小球"）
//
// X/Y 为标记左上角的屏幕坐标，缩放以圆心为基准。
type MarkerComponent struct {
	Diameter float64
	X        float64
	Y        float64
	Scale    float64
	Opacity  float64
	Color    color.Color
}
