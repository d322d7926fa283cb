package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/decker502/flycart/pkg/systems"
	"github.com/decker502/flycart/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// BackLinkLabel 顶部栏返回链接文字
const BackLinkLabel = "< Back"

// ProductSceneOptions 商品页面的外部依赖
// 所有字段都可以为空，为空时使用 ebiten 的实际输入和默认字体
type ProductSceneOptions struct {
	// Pointer 读取指针状态（测试中注入）
	Pointer utils.PointerReader
	// BackPressed 返回键是否刚刚按下
	BackPressed func() bool
	// OnBack 点击返回链接或按下返回键时调用
	OnBack func()
	// Face 页面字体
	Face text.Face
}

// ProductScene 商品详情页面
//
// 页面结构：
//   - 顶部栏（返回链接，购物车图标可能位于右侧）
//   - 可滚动内容：商品图、标题价格、描述、加入购物车按钮
//   - 底部导航栏（仅当购物车位于导航栏时）
//   - 飞行标记（最上层）
//
// 每次创建都是全新的动画状态，"重新挂载"即重新创建场景。
type ProductScene struct {
	product *config.ProductConfig
	layout  systems.PageLayout

	entityManager   *ecs.EntityManager
	scrollSystem    *systems.ScrollSystem
	buttonSystem    *systems.ButtonSystem
	measureSystem   *systems.MeasureSystem
	addToCartSystem *systems.AddToCartSystem
	renderSystem    *systems.RenderSystem

	// 每帧只读取一次指针，所有系统共享同一份快照
	readPointer utils.PointerReader
	frame       utils.PointerSnapshot

	backPressed func() bool
	onBack      func()

	stateEntity  ecs.EntityID
	buttonEntity ecs.EntityID
	markerEntity ecs.EntityID
	cartEntity   ecs.EntityID

	disposed bool
}

// NewProductScene 创建商品页面场景
func NewProductScene(product *config.ProductConfig, opts ProductSceneOptions) (*ProductScene, error) {
	if product == nil {
		return nil, errors.New("product config is nil")
	}

	face := opts.Face
	if face == nil {
		face = utils.DefaultFace()
	}
	readPointer := opts.Pointer
	if readPointer == nil {
		readPointer = utils.ReadPointer
	}
	backPressed := opts.BackPressed
	if backPressed == nil {
		backPressed = utils.IsBackJustPressed
	}

	s := &ProductScene{
		product:       product,
		entityManager: ecs.NewEntityManager(),
		readPointer:   readPointer,
		backPressed:   backPressed,
		onBack:        opts.OnBack,
	}

	s.layout = systems.ComputePageLayout(product, utils.FaceMeasurer(face), config.ScreenWidth)

	// 初始化系统
	currentPointer := func() utils.PointerSnapshot { return s.frame }
	s.scrollSystem = systems.NewScrollSystem(s.entityManager, currentPointer)
	s.buttonSystem = systems.NewButtonSystem(s.entityManager, currentPointer, s.scrollSystem.IsDragging)
	s.measureSystem = systems.NewMeasureSystem(s.entityManager)
	s.addToCartSystem = systems.NewAddToCartSystem(s.entityManager, s.measureSystem, config.ScreenWidth)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, face)

	s.initEntities()

	// 购物车图标位置在首次绘制后测量一次
	s.measureSystem.MeasureOnce(s.cartEntity)

	log.Printf("[ProductScene] Created %s (cart in %s, max scroll %.0f)", product.ID, s.layout.Placement, s.layout.MaxScroll)
	return s, nil
}

// initEntities 根据布局创建页面实体
func (s *ProductScene) initEntities() {
	em := s.entityManager
	l := s.layout

	scroll := em.CreateEntity()
	em.AddComponent(scroll, &components.ScrollComponent{
		MaxOffset:      l.MaxScroll,
		ViewportTop:    l.ViewportTop,
		ViewportBottom: l.ViewportBottom,
	})

	// 顶部栏（背景覆盖状态栏留白）
	header := em.CreateEntity()
	em.AddComponent(header, &components.LayoutComponent{Width: l.Header.Width, Height: l.Header.Bottom()})
	em.AddComponent(header, &components.BarComponent{Kind: components.BarHeader, Color: config.HeaderColor})

	back := em.CreateEntity()
	em.AddComponent(back, boxLayout(l.Back, false))
	em.AddComponent(back, &components.BackLinkComponent{Label: BackLinkLabel})
	em.AddComponent(back, &components.TapTargetComponent{Enabled: true, OnTap: s.goBack})

	if l.Placement == config.CartInNavBar {
		nav := em.CreateEntity()
		em.AddComponent(nav, boxLayout(l.NavBar, false))
		em.AddComponent(nav, &components.BarComponent{Kind: components.BarNav, Color: config.HeaderColor})

		for i, icon := range l.NavIcons {
			id := em.CreateEntity()
			em.AddComponent(id, boxLayout(icon, false))
			em.AddComponent(id, &components.NavIconComponent{Index: i})
		}
	}

	s.cartEntity = em.CreateEntity()
	em.AddComponent(s.cartEntity, boxLayout(l.Cart, false))
	em.AddComponent(s.cartEntity, &components.CartIconComponent{})

	// 滚动内容
	image := em.CreateEntity()
	em.AddComponent(image, boxLayout(l.Image, true))
	em.AddComponent(image, &components.ProductImageComponent{ProductID: s.product.ID, Color: s.product.ImageRGBA()})

	title := em.CreateEntity()
	em.AddComponent(title, boxLayout(l.Title, true))
	em.AddComponent(title, &components.TextBlockComponent{
		Lines:      []string{titleLine(s.product)},
		LineHeight: config.LineHeight,
		Color:      config.BodyTextColor,
	})

	body := em.CreateEntity()
	em.AddComponent(body, boxLayout(l.Body, true))
	em.AddComponent(body, &components.TextBlockComponent{
		Lines:      l.BodyLines,
		LineHeight: config.LineHeight,
		Color:      config.BodyTextColor,
	})

	s.buttonEntity = em.CreateEntity()
	em.AddComponent(s.buttonEntity, boxLayout(l.Button, true))
	em.AddComponent(s.buttonEntity, &components.CartButtonComponent{
		Label:          config.ButtonLabel,
		FullWidth:      l.Button.Width,
		CollapsedWidth: config.ButtonSize,
		Height:         config.ButtonSize,
		WidthProgress:  1,
		Opacity:        1,
		LabelOpacity:   1,
	})
	em.AddComponent(s.buttonEntity, &components.TapTargetComponent{Enabled: true, OnTap: s.onButtonTap})

	// 标记初始隐藏
	s.markerEntity = em.CreateEntity()
	em.AddComponent(s.markerEntity, &components.MarkerComponent{
		Diameter: config.ButtonSize,
		Scale:    1,
		Color:    config.ButtonColor,
	})

	s.stateEntity = em.CreateEntity()
	em.AddComponent(s.stateEntity, &components.AddToCartComponent{
		ButtonEntity: s.buttonEntity,
		MarkerEntity: s.markerEntity,
		CartEntity:   s.cartEntity,
		EndScale:     s.product.EndScale(),
	})
}

// boxLayout 将布局矩形转换为布局组件
func boxLayout(b systems.Box, scrolls bool) *components.LayoutComponent {
	return &components.LayoutComponent{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height, Scrolls: scrolls}
}

// titleLine 标题行（标题 + 价格）
func titleLine(p *config.ProductConfig) string {
	if p.Price == "" {
		return p.Title
	}
	return fmt.Sprintf("%s  %s", p.Title, p.Price)
}

// onButtonTap 加入购物车按钮被点击
func (s *ProductScene) onButtonTap() {
	if err := s.Tap(); err != nil {
		log.Printf("[ProductScene] %s: %v", s.product.ID, err)
	}
}

// goBack 返回目录
func (s *ProductScene) goBack() {
	if s.onBack != nil {
		s.onBack()
	}
}

// Tap 触发加入购物车（等同于点击按钮）
func (s *ProductScene) Tap() error {
	return s.addToCartSystem.Tap(s.stateEntity)
}

// Update 更新页面
func (s *ProductScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}

	if s.backPressed() {
		s.goBack()
		return
	}

	s.frame = s.readPointer()

	// 测量先于点击处理：本帧点击发起的测量在下一帧返回
	s.scrollSystem.Update(deltaTime)
	s.measureSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
	s.addToCartSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制页面
// 首次绘制完成后，测量请求才会在下一次 Update 中得到结果
func (s *ProductScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.MarkDrawn()
}

// MarkDrawn 标记页面已完成绘制
// 无窗口运行（命令行验证工具、测试）时代替 Draw 调用
func (s *ProductScene) MarkDrawn() {
	s.measureSystem.MarkDrawn()
}

// Dispose 释放场景，之后的 Update 不再推进动画
func (s *ProductScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	state := s.State()
	log.Printf("[ProductScene] Disposed %s (phase %s, runs %d)", s.product.ID, state.Phase, state.Runs)
}

// Product 返回页面对应的商品配置
func (s *ProductScene) Product() *config.ProductConfig {
	return s.product
}

// Layout 返回页面布局
func (s *ProductScene) Layout() systems.PageLayout {
	return s.layout
}

// State 返回加入购物车动画状态
func (s *ProductScene) State() *components.AddToCartComponent {
	state, _ := ecs.GetComponent[*components.AddToCartComponent](s.entityManager, s.stateEntity)
	return state
}

// Phase 返回当前动画阶段
func (s *ProductScene) Phase() components.AddToCartPhase {
	return s.State().Phase
}

// Marker 返回飞行标记状态
func (s *ProductScene) Marker() *components.MarkerComponent {
	marker, _ := ecs.GetComponent[*components.MarkerComponent](s.entityManager, s.markerEntity)
	return marker
}

// Button 返回加入购物车按钮状态
func (s *ProductScene) Button() *components.CartButtonComponent {
	button, _ := ecs.GetComponent[*components.CartButtonComponent](s.entityManager, s.buttonEntity)
	return button
}

// ScrollOffset 返回当前滚动偏移
func (s *ProductScene) ScrollOffset() float64 {
	for _, id := range ecs.GetEntitiesWith1[*components.ScrollComponent](s.entityManager) {
		scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, id)
		return scroll.Offset
	}
	return 0
}
