package utils

// Tween 补间动画
//
// 给定起止值、时长和缓动函数，每帧根据累计时间计算当前值。
// 累计时间首次达到时长时 Update 返回 finished=true（仅一次），此时值精确等于 To。
//
// 使用方式：
//
//	tw := NewTween(1, 0, 0.3, CubicBezier(0.11, 0, 0.5, 0))
//	value, finished := tw.Update(deltaTime)
type Tween struct {
	From     float64
	To       float64
	Duration float64 // 秒
	Easing   EasingFunc

	elapsed  float64
	value    float64
	done     bool
	notified bool
}

// NewTween 创建补间动画，初始值为 from
// easing 为 nil 时使用线性缓动
func NewTween(from, to, duration float64, easing EasingFunc) *Tween {
	if easing == nil {
		easing = EaseLinear
	}
	return &Tween{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
		value:    from,
	}
}

// Update 推进补间动画
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
//
// 返回：
//   - value: 当前值
//   - finished: 本次调用是否是完成事件（只在第一次到达终点时为 true）
func (tw *Tween) Update(deltaTime float64) (value float64, finished bool) {
	if tw.done {
		return tw.value, false
	}

	tw.elapsed += deltaTime
	if tw.Duration <= 0 || tw.elapsed >= tw.Duration {
		tw.elapsed = tw.Duration
		tw.value = tw.To
		tw.done = true
	} else {
		tw.value = Lerp(tw.From, tw.To, tw.Easing(tw.elapsed/tw.Duration))
	}

	if tw.done && !tw.notified {
		tw.notified = true
		return tw.value, true
	}
	return tw.value, false
}

// Value 返回当前值
func (tw *Tween) Value() float64 {
	return tw.value
}

// Elapsed 返回已经过的时间（秒）
func (tw *Tween) Elapsed() float64 {
	return tw.elapsed
}

// Done 补间是否已经结束
func (tw *Tween) Done() bool {
	return tw.done
}
