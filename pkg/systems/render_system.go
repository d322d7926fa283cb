package systems

import (
	"image"
	"image/color"

	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 商品页面渲染系统
//
// 绘制顺序：
//  1. 页面背景
//  2. 滚动内容（裁剪到可见区域）：商品图、文字、按钮
//  3. 固定栏：顶部栏、导航栏及其图标
//  4. 飞行标记（位于最上层）
type RenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, face text.Face) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		face:          face,
	}
}

// Draw 渲染整个页面
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.PageBackgroundColor)

	offset := 0.0
	content := screen
	if scroll := findScroll(s.entityManager); scroll != nil {
		offset = scroll.Offset
		bounds := screen.Bounds()
		clip := image.Rect(bounds.Min.X, int(scroll.ViewportTop), bounds.Max.X, int(scroll.ViewportBottom))
		content = screen.SubImage(clip).(*ebiten.Image)
	}

	s.drawProductImages(content, offset)
	s.drawTextBlocks(content, offset)
	s.drawCartButtons(content, offset)

	s.drawBars(screen)
	s.drawBackLinks(screen)
	s.drawNavIcons(screen)
	s.drawCartIcons(screen)

	s.drawMarkers(screen)
}

// drawProductImages 绘制商品占位图
func (s *RenderSystem) drawProductImages(dst *ebiten.Image, offset float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ProductImageComponent, *components.LayoutComponent](s.entityManager) {
		img, _ := ecs.GetComponent[*components.ProductImageComponent](s.entityManager, id)
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)

		x, y := float32(layout.X), float32(layout.Y-offset)
		w, h := float32(layout.Width), float32(layout.Height)

		// 浅色背景
		vector.DrawFilledRect(dst, x, y, w, h, color.RGBA{R: 242, G: 242, B: 242, A: 255}, false)

		cx, cy := x+w/2, y+h/2
		switch img.ProductID {
		case "chair":
			drawChair(dst, cx, cy, img.Color)
		case "headphones":
			drawHeadphones(dst, cx, cy, img.Color)
		default:
			vector.DrawFilledRect(dst, cx-60, cy-60, 120, 120, img.Color, true)
		}
	}
}

// drawChair 绘制椅子轮廓：靠背、坐垫、四条腿
func drawChair(dst *ebiten.Image, cx, cy float32, c color.Color) {
	vector.DrawFilledRect(dst, cx-60, cy-100, 120, 90, c, true) // 靠背
	vector.DrawFilledRect(dst, cx-75, cy-10, 150, 30, c, true)  // 坐垫
	for _, lx := range []float32{cx - 70, cx + 60} {
		vector.DrawFilledRect(dst, lx, cy+20, 10, 90, c, true)
	}
}

// drawHeadphones 绘制耳机轮廓：头梁弧线和两个耳罩
func drawHeadphones(dst *ebiten.Image, cx, cy float32, c color.Color) {
	// 头梁：两段二次曲线，用折线近似
	const segments = 16
	arc := func(t, p0, p1, p2 float32) float32 {
		u := 1 - t
		return u*u*p0 + 2*u*t*p1 + t*t*p2
	}
	halves := [][3][2]float32{
		{{cx - 70, cy + 20}, {cx - 70, cy - 110}, {cx, cy - 110}},
		{{cx, cy - 110}, {cx + 70, cy - 110}, {cx + 70, cy + 20}},
	}
	for _, h := range halves {
		prevX, prevY := h[0][0], h[0][1]
		for i := 1; i <= segments; i++ {
			t := float32(i) / segments
			x := arc(t, h[0][0], h[1][0], h[2][0])
			y := arc(t, h[0][1], h[1][1], h[2][1])
			vector.StrokeLine(dst, prevX, prevY, x, y, 12, c, true)
			prevX, prevY = x, y
		}
	}

	vector.DrawFilledRect(dst, cx-90, cy, 40, 80, c, true)
	vector.DrawFilledRect(dst, cx+50, cy, 40, 80, c, true)
}

// drawTextBlocks 绘制多行文本
func (s *RenderSystem) drawTextBlocks(dst *ebiten.Image, offset float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextBlockComponent, *components.LayoutComponent](s.entityManager) {
		block, _ := ecs.GetComponent[*components.TextBlockComponent](s.entityManager, id)
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)

		y := layout.Y
		if layout.Scrolls {
			y -= offset
		}
		for _, line := range block.Lines {
			s.drawText(dst, line, layout.X, y, block.Color, 1)
			y += block.LineHeight
		}
	}
}

// drawCartButtons 绘制"加入购物车"按钮（胶囊形，文字超出部分被裁剪）
func (s *RenderSystem) drawCartButtons(dst *ebiten.Image, offset float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.CartButtonComponent, *components.LayoutComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.CartButtonComponent](s.entityManager, id)
		if !button.Visible() {
			continue
		}

		x, y, w, h, ok := TapRect(s.entityManager, id, offset)
		if !ok {
			continue
		}

		fill := fadeColor(config.ButtonColor, button.Opacity)
		if target, ok := ecs.GetComponent[*components.TapTargetComponent](s.entityManager, id); ok && target.State == components.UIClicked {
			fill = fadeColor(config.ButtonColor, button.Opacity*0.8)
		}
		drawCapsule(dst, float32(x), float32(y), float32(w), float32(h), fill)

		// 文字宽度固定为完整按钮宽度，居中；超出当前按钮宽度的部分被裁剪
		if button.LabelOpacity <= 0 {
			continue
		}
		clip := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(dst.Bounds())
		if clip.Empty() {
			continue
		}
		labelDst := dst.SubImage(clip).(*ebiten.Image)
		labelW := text.Advance(button.Label, s.face)
		_, labelH := text.Measure(button.Label, s.face, 0)
		centerX := x + w/2
		s.drawText(labelDst, button.Label, centerX-labelW/2, y+(h-labelH)/2, config.ButtonLabelColor, button.Opacity*button.LabelOpacity)
	}
}

// drawBars 绘制顶部栏和导航栏背景
func (s *RenderSystem) drawBars(dst *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BarComponent, *components.LayoutComponent](s.entityManager) {
		bar, _ := ecs.GetComponent[*components.BarComponent](s.entityManager, id)
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)
		vector.DrawFilledRect(dst, float32(layout.X), float32(layout.Y), float32(layout.Width), float32(layout.Height), bar.Color, false)
	}
}

// drawBackLinks 绘制"返回"链接
func (s *RenderSystem) drawBackLinks(dst *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BackLinkComponent, *components.LayoutComponent](s.entityManager) {
		link, _ := ecs.GetComponent[*components.BackLinkComponent](s.entityManager, id)
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)
		_, h := text.Measure(link.Label, s.face, 0)
		s.drawText(dst, link.Label, layout.X+config.HeaderPaddingX, layout.Y+(layout.Height-h)/2, config.BodyTextColor, 1)
	}
}

// drawNavIcons 绘制导航栏装饰图标（圆形）
func (s *RenderSystem) drawNavIcons(dst *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.NavIconComponent, *components.LayoutComponent](s.entityManager) {
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)
		r := float32(layout.Width / 2)
		vector.StrokeCircle(dst, float32(layout.X)+r, float32(layout.Y)+r, r-1, 2, config.BodyTextColor, true)
	}
}

// drawCartIcons 绘制购物车图标（篮子 + 把手 + 两个轮子）
func (s *RenderSystem) drawCartIcons(dst *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CartIconComponent, *components.LayoutComponent](s.entityManager) {
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)
		x, y := float32(layout.X), float32(layout.Y)
		size := float32(layout.Width)
		c := config.BodyTextColor

		vector.StrokeLine(dst, x, y+size*0.1, x+size*0.2, y+size*0.1, 2, c, true)
		vector.StrokeLine(dst, x+size*0.2, y+size*0.1, x+size*0.3, y+size*0.65, 2, c, true)
		vector.StrokeLine(dst, x+size*0.3, y+size*0.65, x+size*0.9, y+size*0.65, 2, c, true)
		vector.StrokeLine(dst, x+size*0.9, y+size*0.65, x+size, y+size*0.3, 2, c, true)
		vector.StrokeLine(dst, x+size, y+size*0.3, x+size*0.25, y+size*0.3, 2, c, true)
		vector.DrawFilledCircle(dst, x+size*0.4, y+size*0.88, size*0.09, c, true)
		vector.DrawFilledCircle(dst, x+size*0.82, y+size*0.88, size*0.09, c, true)
	}
}

// drawMarkers 绘制飞行标记（以圆心缩放）
func (s *RenderSystem) drawMarkers(dst *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.MarkerComponent](s.entityManager) {
		marker, _ := ecs.GetComponent[*components.MarkerComponent](s.entityManager, id)
		if marker.Opacity <= 0 {
			continue
		}
		r := marker.Diameter / 2
		vector.DrawFilledCircle(dst, float32(marker.X+r), float32(marker.Y+r), float32(r*marker.Scale), fadeColor(marker.Color, marker.Opacity), true)
	}
}

// drawText 在 (x, y) 处（左上角）绘制一行文字
func (s *RenderSystem) drawText(dst *ebiten.Image, str string, x, y float64, c color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale = colorScale(c, alpha)
	text.Draw(dst, str, s.face, op)
}

// drawCapsule 绘制胶囊形（圆角半径为高度一半）
func drawCapsule(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	r := h / 2
	if w <= h {
		vector.DrawFilledCircle(dst, x+w/2, y+r, r, c, true)
		return
	}
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, c, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, c, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, c, true)
}

// fadeColor 按不透明度缩放颜色（预乘 alpha）
func fadeColor(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}

// colorScale 将颜色和不透明度转换为 ColorScale
func colorScale(c color.Color, alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(c)
	cs.ScaleAlpha(float32(alpha))
	return cs
}
