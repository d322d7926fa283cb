package systems

import (
	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/ecs"
	"github.com/decker502/flycart/pkg/utils"
)

// testTick 测试帧间隔（2 的幂分数，避免浮点累计误差）
const testTick = 1.0 / 64.0

// testPage 测试用的最小页面：按钮、标记、购物车、状态实体、滚动容器
type testPage struct {
	em      *ecs.EntityManager
	measure *MeasureSystem
	system  *AddToCartSystem

	state  ecs.EntityID
	button ecs.EntityID
	marker ecs.EntityID
	cart   ecs.EntityID
	scroll ecs.EntityID
}

// newTestPage 创建测试页面
// 按钮布局盒位于内容坐标 (50, buttonY)，购物车位于屏幕坐标 (cartX, cartY)
func newTestPage(buttonY, cartX, cartY, endScale float64) *testPage {
	em := ecs.NewEntityManager()
	measure := NewMeasureSystem(em)
	p := &testPage{
		em:      em,
		measure: measure,
		system:  NewAddToCartSystem(em, measure, config.ScreenWidth),
	}

	p.scroll = em.CreateEntity()
	em.AddComponent(p.scroll, &components.ScrollComponent{MaxOffset: 200, ViewportTop: 70, ViewportBottom: config.ScreenHeight})

	p.cart = em.CreateEntity()
	em.AddComponent(p.cart, &components.LayoutComponent{X: cartX, Y: cartY, Width: config.CartIconSize, Height: config.CartIconSize})
	em.AddComponent(p.cart, &components.CartIconComponent{})

	fullWidth := config.FullButtonWidth(config.ScreenWidth)
	p.button = em.CreateEntity()
	em.AddComponent(p.button, &components.LayoutComponent{X: (config.ScreenWidth - fullWidth) / 2, Y: buttonY, Width: fullWidth, Height: config.ButtonSize, Scrolls: true})
	em.AddComponent(p.button, &components.CartButtonComponent{
		Label:          config.ButtonLabel,
		FullWidth:      fullWidth,
		CollapsedWidth: config.ButtonSize,
		Height:         config.ButtonSize,
		WidthProgress:  1,
		Opacity:        1,
		LabelOpacity:   1,
	})
	em.AddComponent(p.button, &components.TapTargetComponent{Enabled: true})

	p.marker = em.CreateEntity()
	em.AddComponent(p.marker, &components.MarkerComponent{Diameter: config.ButtonSize, Scale: 1})

	p.state = em.CreateEntity()
	em.AddComponent(p.state, &components.AddToCartComponent{
		ButtonEntity: p.button,
		MarkerEntity: p.marker,
		CartEntity:   p.cart,
		EndScale:     endScale,
	})

	return p
}

// layoutDone 模拟首次绘制完成并测量购物车位置
func (p *testPage) layoutDone() {
	p.measure.MeasureOnce(p.cart)
	p.measure.MarkDrawn()
	p.measure.Update(testTick)
}

// tick 推进一帧（测量系统先于动画系统，与场景中的顺序一致）
func (p *testPage) tick() {
	p.measure.Update(testTick)
	p.system.Update(testTick)
}

func (p *testPage) stateComp() *components.AddToCartComponent {
	c, _ := ecs.GetComponent[*components.AddToCartComponent](p.em, p.state)
	return c
}

func (p *testPage) buttonComp() *components.CartButtonComponent {
	c, _ := ecs.GetComponent[*components.CartButtonComponent](p.em, p.button)
	return c
}

func (p *testPage) markerComp() *components.MarkerComponent {
	c, _ := ecs.GetComponent[*components.MarkerComponent](p.em, p.marker)
	return c
}

// fixedPointer 返回固定指针状态的 PointerReader
func fixedPointer(snapshot *utils.PointerSnapshot) utils.PointerReader {
	return func() utils.PointerSnapshot {
		return *snapshot
	}
}

func getTapTarget(p *testPage) (*components.TapTargetComponent, bool) {
	return ecs.GetComponent[*components.TapTargetComponent](p.em, p.button)
}
