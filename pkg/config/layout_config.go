package config

// 布局配置常量
// 本文件定义了商品页面的布局参数，所有尺寸单位为逻辑像素。
// 逻辑屏幕尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放。

// Screen Configuration (屏幕配置)
const (
	// ScreenWidth 逻辑屏幕宽度（竖屏手机）
	ScreenWidth = 390

	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 844

	// DesktopWindowScale 桌面端窗口相对逻辑尺寸的缩放
	DesktopWindowScale = 0.9
)

// Header Configuration (顶部栏配置)
const (
	// HeaderTopMargin 顶部栏上边距（状态栏留白）
	HeaderTopMargin = 30.0

	// HeaderPaddingX 顶部栏水平内边距
	HeaderPaddingX = 20.0

	// HeaderPaddingY 顶部栏垂直内边距
	HeaderPaddingY = 10.0

	// CartIconSize 购物车图标尺寸
	CartIconSize = 20.0

	// HeaderHeight 顶部栏总高度（不含上边距）
	HeaderHeight = CartIconSize + 2*HeaderPaddingY

	// BackHitWidth 顶部栏左侧"返回"点击区域宽度
	BackHitWidth = 80.0
)

// NavBar Configuration (底部导航栏配置)
const (
	// NavBarHeight 底部导航栏高度
	NavBarHeight = 56.0

	// NavBarSlots 底部导航栏图标数量，购物车位于最后一个
	NavBarSlots = 4
)

// Content Configuration (滚动内容配置)
const (
	// ContentPaddingX 内容水平内边距
	ContentPaddingX = 20.0

	// ContentPaddingY 内容垂直内边距
	ContentPaddingY = 30.0

	// ProductImageHeight 商品图片高度
	ProductImageHeight = 300.0

	// TitleSpacing 标题与描述之间的间距
	TitleSpacing = 12.0

	// LineHeight 正文行高
	LineHeight = 18.0

	// ScrollWheelSpeed 滚轮每格滚动的像素数
	ScrollWheelSpeed = 40.0
)

// Button Configuration (加入购物车按钮配置)
const (
	// ButtonSize 按钮高度，也是收缩后圆形标记的直径
	ButtonSize = 36.0

	// ButtonTopMargin 按钮上边距
	ButtonTopMargin = 20.0

	// ButtonHorizontalInset 按钮完整宽度 = 屏幕宽度 - 该值
	ButtonHorizontalInset = 100.0

	// ButtonLabel 按钮文字
	ButtonLabel = "Add to Cart"
)

// FullButtonWidth 返回按钮展开时的宽度
func FullButtonWidth(screenWidth float64) float64 {
	return screenWidth - ButtonHorizontalInset
}

// CollapsedMarkerX 返回按钮收缩为圆形后的左上角 X 坐标（水平居中）
func CollapsedMarkerX(screenWidth float64) float64 {
	return screenWidth/2 - ButtonSize/2
}

// ViewportBounds 返回滚动内容可见区域的 Y 范围
//
// 参数：
//   - placement: 购物车图标位置（决定是否存在底部导航栏）
//
// 返回：
//   - top: 可见区域顶部（顶部栏下方）
//   - bottom: 可见区域底部（屏幕底部或导航栏上方）
func ViewportBounds(placement CartPlacement) (top, bottom float64) {
	top = HeaderTopMargin + HeaderHeight
	bottom = ScreenHeight
	if placement == CartInNavBar {
		bottom -= NavBarHeight
	}
	return top, bottom
}
