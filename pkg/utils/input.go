// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSnapshot 存储当前帧的指针状态
// 用于统一处理鼠标和触摸输入
type PointerSnapshot struct {
	// Pressed 指针是否处于按下状态
	Pressed bool
	// JustPressed 本帧刚刚按下
	JustPressed bool
	// JustReleased 本帧刚刚释放
	JustReleased bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// WheelY 鼠标滚轮本帧的垂直滚动量
	WheelY float64
}

// PointerReader 读取当前帧指针状态的函数
// 系统通过注入该函数实现与 ebiten 输入解耦（便于测试）
type PointerReader func() PointerSnapshot

// 保存最后一次触摸位置（触摸释放时 ebiten 已无法查询位置）
var lastTouchX, lastTouchY int

// ReadPointer 获取当前帧的指针状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func ReadPointer() PointerSnapshot {
	s := PointerSnapshot{}
	_, s.WheelY = ebiten.Wheel()

	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		s.Pressed = true
		s.X, s.Y = ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = s.X, s.Y
		s.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return s
	}

	// 触摸刚刚释放：使用保存的最后触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		s.JustReleased = true
		s.X, s.Y = lastTouchX, lastTouchY
		return s
	}

	// 其次检查鼠标输入（桌面设备）
	s.X, s.Y = ebiten.CursorPosition()
	s.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return s
}

// IsBackJustPressed 检查返回键（Escape / Android 返回键 / 退格）是否刚刚按下
func IsBackJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

// PointInRect 判断点是否在矩形内（含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// ============================================================================
// 拖拽跟踪 - 用于移动端内容滚动
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
)

// dragThreshold 超过该距离（像素）才算拖拽，避免与点击冲突
const dragThreshold = 6.0

// DragTracker 跟踪指针拖拽
type DragTracker struct {
	State DragState

	startY   int
	lastY    int
	tracking bool
}

// Update 根据指针状态更新拖拽，返回本帧的垂直位移（像素）
func (d *DragTracker) Update(p PointerSnapshot) float64 {
	switch {
	case p.JustPressed:
		d.tracking = true
		d.startY, d.lastY = p.Y, p.Y
		d.State = DragStateNone
		return 0
	case p.Pressed && d.tracking:
		if d.State == DragStateNone {
			dy := float64(p.Y - d.startY)
			if dy > dragThreshold || dy < -dragThreshold {
				d.State = DragStateDragging
			}
		}
		if d.State != DragStateDragging {
			return 0
		}
		delta := float64(p.Y - d.lastY)
		d.lastY = p.Y
		return delta
	default:
		d.tracking = false
		return 0
	}
}

// IsDragging 是否正在拖拽
func (d *DragTracker) IsDragging() bool {
	return d.State == DragStateDragging
}
