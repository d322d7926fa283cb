package components

// LayoutComponent 存储页面元素的布局盒
//
// 坐标系统：
//   - Scrolls=false：屏幕坐标（顶部栏、导航栏、购物车图标）
//   - Scrolls=true：内容坐标，等于滚动偏移为 0 时的屏幕坐标
//     实际屏幕 Y = Y - ScrollComponent.Offset
type LayoutComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Scrolls 是否随内容滚动
	Scrolls bool
}

// ScrollComponent 滚动容器状态（每个页面一个）
type ScrollComponent struct {
	// Offset 当前滚动偏移（像素，0 = 顶部）
	Offset float64
	// MaxOffset 最大滚动偏移
	MaxOffset float64
	// ViewportTop, ViewportBottom 可见区域的屏幕 Y 范围
	ViewportTop    float64
	ViewportBottom float64
}
