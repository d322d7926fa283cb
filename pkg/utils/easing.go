package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/ 以及 CSS cubic-bezier() 时间函数

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// cubic-bezier 求解参数
const (
	bezierNewtonIterations = 8
	bezierNewtonMinSlope   = 0.001
	bezierPrecision        = 1e-7
	bezierMaxBisections    = 32
)

// CubicBezier 创建 CSS 风格的三次贝塞尔时间曲线
//
// 曲线端点固定为 (0,0) 和 (1,1)，(x1,y1)、(x2,y2) 为两个控制点。
// 对输入 t 先求解参数 s 使 X(s) = t（Newton-Raphson，斜率过小时退化为二分），
// 再返回 Y(s)。
//
// 例如 CubicBezier(0.12, 0, 0.39, 0) 等价于 CSS 的 easeInCubic 近似曲线。
//
// 参数：
//   - x1, y1: 第一个控制点（x1 应在 [0,1] 内）
//   - x2, y2: 第二个控制点（x2 应在 [0,1] 内）
//
// 返回：
//   - EasingFunc: 满足 f(0)=0、f(1)=1 的缓动函数
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	// 线性曲线无需求解
	if x1 == y1 && x2 == y2 {
		return EaseLinear
	}

	// 多项式系数：B(s) = ((a*s + b)*s + c)*s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solveS := func(x float64) float64 {
		// Newton-Raphson
		s := x
		for i := 0; i < bezierNewtonIterations; i++ {
			diff := sampleX(s) - x
			if math.Abs(diff) < bezierPrecision {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < bezierNewtonMinSlope {
				break
			}
			s -= diff / d
		}

		// 二分法兜底
		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < bezierMaxBisections; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < bezierPrecision {
				return s
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solveS(t))
	}
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 精确返回 a，t=1 精确返回 b
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
