package systems

import (
	"math"

	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/utils"
)

// Box 布局矩形
type Box struct {
	X, Y, Width, Height float64
}

// Bottom 返回矩形底边 Y
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// PageLayout 商品页面的布局结果
//
// 滚动内容中的矩形使用内容坐标（滚动偏移为 0 时的屏幕坐标）。
type PageLayout struct {
	Placement config.CartPlacement

	// 固定元素（屏幕坐标）
	Header   Box
	NavBar   Box // Placement 为 navbar 时有效
	NavIcons []Box
	Cart     Box
	Back     Box

	// 滚动内容（内容坐标）
	Image     Box
	Title     Box
	Body      Box
	BodyLines []string
	Button    Box

	// 可见区域与滚动范围
	ViewportTop    float64
	ViewportBottom float64
	MaxScroll      float64
}

// ComputePageLayout 计算商品页面布局
//
// 参数：
//   - product: 商品配置
//   - measure: 正文宽度测量函数（用于自动换行）
//   - screenWidth: 逻辑屏幕宽度
func ComputePageLayout(product *config.ProductConfig, measure utils.TextMeasurer, screenWidth float64) PageLayout {
	placement := product.CartPlacementOrDefault()
	top, bottom := config.ViewportBounds(placement)

	l := PageLayout{
		Placement:      placement,
		ViewportTop:    top,
		ViewportBottom: bottom,
	}

	// 顶部栏
	l.Header = Box{X: 0, Y: config.HeaderTopMargin, Width: screenWidth, Height: config.HeaderHeight}
	l.Back = Box{X: 0, Y: l.Header.Y, Width: config.BackHitWidth, Height: l.Header.Height}

	// 购物车图标：顶部栏右侧，或导航栏最后一个位置
	if placement == config.CartInNavBar {
		l.NavBar = Box{X: 0, Y: bottom, Width: screenWidth, Height: config.NavBarHeight}
		slot := screenWidth / config.NavBarSlots
		for i := 0; i < config.NavBarSlots; i++ {
			l.NavIcons = append(l.NavIcons, Box{
				X:      float64(i)*slot + slot/2 - config.CartIconSize/2,
				Y:      l.NavBar.Y + config.NavBarHeight/2 - config.CartIconSize/2,
				Width:  config.CartIconSize,
				Height: config.CartIconSize,
			})
		}
		l.Cart = l.NavIcons[len(l.NavIcons)-1]
		l.NavIcons = l.NavIcons[:len(l.NavIcons)-1]
	} else {
		l.Cart = Box{
			X:      screenWidth - config.HeaderPaddingX - config.CartIconSize,
			Y:      l.Header.Y + config.HeaderPaddingY,
			Width:  config.CartIconSize,
			Height: config.CartIconSize,
		}
	}

	// 滚动内容
	contentWidth := screenWidth - 2*config.ContentPaddingX
	y := top + config.ContentPaddingY

	l.Image = Box{X: config.ContentPaddingX, Y: y, Width: contentWidth, Height: config.ProductImageHeight}
	y = l.Image.Bottom() + config.TitleSpacing

	l.Title = Box{X: config.ContentPaddingX, Y: y, Width: contentWidth, Height: config.LineHeight}
	y = l.Title.Bottom() + config.TitleSpacing

	l.BodyLines = trimTrailingBlank(utils.WrapText(product.Description, measure, contentWidth))
	l.Body = Box{
		X:      config.ContentPaddingX,
		Y:      y,
		Width:  contentWidth,
		Height: float64(len(l.BodyLines)) * config.LineHeight,
	}
	y = l.Body.Bottom() + config.ButtonTopMargin

	fullWidth := config.FullButtonWidth(screenWidth)
	l.Button = Box{X: (screenWidth - fullWidth) / 2, Y: y, Width: fullWidth, Height: config.ButtonSize}

	contentBottom := l.Button.Bottom() + config.ContentPaddingY
	l.MaxScroll = math.Max(0, contentBottom-bottom)

	return l
}

// trimTrailingBlank 去掉末尾空行（YAML 块文本以换行结尾）
func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
