package utils

import "math"

// ScreenPoint 屏幕坐标（像素，相对于游戏窗口左上角）
type ScreenPoint struct {
	X float64
	Y float64
}

// RoundPixel 四舍五入到整数像素
// 与 JavaScript Math.round 语义一致：.5 总是向 +∞ 方向取整（-2.5 → -2）
func RoundPixel(v float64) float64 {
	return math.Floor(v + 0.5)
}

// QuadraticBezier 二次贝塞尔插值，结果取整到像素
//
// 公式：value(t) = (1-t)²·p0 + 2(1-t)t·p1 + t²·p2
//
// 不校验 t 的范围，调用方保证 t ∈ [0, 1]。
func QuadraticBezier(t, p0, p1, p2 float64) float64 {
	u := 1 - t
	return RoundPixel(u*u*p0 + 2*u*t*p1 + t*t*p2)
}

// FlightPosition 计算飞行标记在进度 t 时的屏幕位置
//
// 两个轴分别插值：
//   - X 使用 (origin.X, origin.X, target.X)：无弯曲，加速靠近目标
//   - Y 使用 (origin.Y, target.Y, target.Y)：控制点与终点重合，形成弧线
//
// 两轴控制点的不对称让标记沿弧线而非直线飞行。
func FlightPosition(t float64, origin, target ScreenPoint) ScreenPoint {
	return ScreenPoint{
		X: QuadraticBezier(t, origin.X, origin.X, target.X),
		Y: QuadraticBezier(t, origin.Y, target.Y, target.Y),
	}
}
