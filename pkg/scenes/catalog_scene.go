package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/utils"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CatalogTitle 目录页面标题
const CatalogTitle = "Products"

// CatalogEntry 目录中的一个商品条目
type CatalogEntry struct {
	ProductID string
	Label     string
}

// CatalogScene 商品目录页面
// 列出所有商品，点击后进入对应的商品页面
type CatalogScene struct {
	entries  []CatalogEntry
	onSelect func(productID string)
	face     text.Face

	// UI 在首次 Update/Draw 时构建（需要创建 ebiten 图像）
	ui *ebitenui.UI
}

// NewCatalogScene 创建目录场景
func NewCatalogScene(catalog *config.CatalogConfig, face text.Face, onSelect func(productID string)) *CatalogScene {
	if face == nil {
		face = utils.DefaultFace()
	}
	return &CatalogScene{
		entries:  CatalogEntries(catalog),
		onSelect: onSelect,
		face:     face,
	}
}

// CatalogEntries 根据目录配置生成列表条目（保持配置中的顺序）
func CatalogEntries(catalog *config.CatalogConfig) []CatalogEntry {
	if catalog == nil {
		return nil
	}
	entries := make([]CatalogEntry, 0, len(catalog.Products))
	for i := range catalog.Products {
		p := &catalog.Products[i]
		label := p.Title
		if p.Price != "" {
			label = fmt.Sprintf("%s  %s", p.Title, p.Price)
		}
		entries = append(entries, CatalogEntry{ProductID: p.ID, Label: label})
	}
	return entries
}

// Entries 返回目录条目
func (s *CatalogScene) Entries() []CatalogEntry {
	return s.entries
}

// Select 选择商品（等同于点击列表按钮）
func (s *CatalogScene) Select(productID string) {
	log.Printf("[CatalogScene] Selected %s", productID)
	if s.onSelect != nil {
		s.onSelect(productID)
	}
}

// buildUI 构建目录界面：居中的纵向按钮列表
func (s *CatalogScene) buildUI() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0xff, A: 0xff})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0xb0, A: 0xff})

	face := s.face
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	title := widget.NewText(
		widget.TextOpts.Text(CatalogTitle, &face, color.NRGBA{A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(config.FullButtonWidth(config.ScreenWidth)), 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	for _, entry := range s.entries {
		productID := entry.ProductID
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnPressed}),
			widget.ButtonOpts.Text(entry.Label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(0, int(config.ButtonSize)),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.Select(productID)
			}),
		)
		panel.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// Update 更新目录界面
func (s *CatalogScene) Update(deltaTime float64) {
	if s.ui == nil {
		s.ui = s.buildUI()
	}
	s.ui.Update()
}

// Draw 绘制目录界面
func (s *CatalogScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.PageBackgroundColor)
	if s.ui == nil {
		s.ui = s.buildUI()
	}
	s.ui.Draw(screen)
}
