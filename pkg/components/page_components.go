package components

import "image/color"

// BarKind 固定栏类型
type BarKind int

const (
	// BarHeader 顶部栏
	BarHeader BarKind = iota
	// BarNav 底部导航栏
	BarNav
)

// BarComponent 固定在屏幕上的背景栏
type BarComponent struct {
	Kind  BarKind
	Color color.Color
}

// CartIconComponent 购物车图标（飞行标记的目的地）
type CartIconComponent struct{}

// NavIconComponent 底部导航栏中的装饰图标
type NavIconComponent struct {
	Index int
}

// BackLinkComponent 顶部栏左侧的"返回"链接
type BackLinkComponent struct {
	Label string
}

// ProductImageComponent 商品占位图（程序绘制，无位图资源）
type ProductImageComponent struct {
	// ProductID 决定绘制的轮廓（chair / headphones / 其他为通用方块）
	ProductID string
	Color     color.RGBA
}

// TextBlockComponent 多行文本
type TextBlockComponent struct {
	Lines      []string
	LineHeight float64
	Color      color.Color
}
