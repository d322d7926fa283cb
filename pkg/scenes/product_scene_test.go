package scenes

import (
	"errors"
	"strings"
	"testing"

	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/systems"
	"github.com/decker502/flycart/pkg/utils"
)

const testTick = 1.0 / 64.0

// sceneHarness 注入指针与返回键的测试环境
type sceneHarness struct {
	scene   *ProductScene
	pointer utils.PointerSnapshot
	back    bool
	backs   int
}

func newHarness(t *testing.T, product *config.ProductConfig) *sceneHarness {
	t.Helper()
	h := &sceneHarness{}
	scene, err := NewProductScene(product, ProductSceneOptions{
		Pointer:     func() utils.PointerSnapshot { return h.pointer },
		BackPressed: func() bool { return h.back },
		OnBack:      func() { h.backs++ },
	})
	if err != nil {
		t.Fatalf("NewProductScene() error = %v", err)
	}
	h.scene = scene
	return h
}

// firstDraw 模拟首次绘制（不需要 GPU）
func (h *sceneHarness) firstDraw() {
	h.scene.MarkDrawn()
	h.tick()
}

func (h *sceneHarness) tick() {
	h.scene.Update(testTick)
	h.pointer = utils.PointerSnapshot{X: h.pointer.X, Y: h.pointer.Y}
}

// tapAt 模拟一次完整的点击（按下 + 释放）
func (h *sceneHarness) tapAt(x, y float64) {
	h.pointer = utils.PointerSnapshot{Pressed: true, JustPressed: true, X: int(x), Y: int(y)}
	h.tick()
	h.pointer = utils.PointerSnapshot{JustReleased: true, X: int(x), Y: int(y)}
	h.tick()
}

// tapButton 点击加入购物车按钮中心
func (h *sceneHarness) tapButton() {
	b := h.scene.Layout().Button
	h.tapAt(b.X+b.Width/2, b.Y+b.Height/2-h.scene.ScrollOffset())
}

func chairProduct() *config.ProductConfig {
	return &config.ProductConfig{ID: "chair", Title: "Oak Chair", Price: "$249", Description: "Solid oak.", MarkerEndScale: 0.5}
}

func headphonesProduct() *config.ProductConfig {
	return &config.ProductConfig{ID: "headphones", Title: "Headphones", Price: "$179", Description: "Wireless.", MarkerEndScale: 0.2, Placement: config.CartInNavBar}
}

// TestProductSceneFullRun 点击按钮后完整播放动画并停在购物车
func TestProductSceneFullRun(t *testing.T) {
	tests := []struct {
		name     string
		product  *config.ProductConfig
		endScale float64
	}{
		{"椅子-顶部栏", chairProduct(), 0.5},
		{"耳机-导航栏", headphonesProduct(), 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.product)
			h.firstDraw()

			h.tapButton()
			if h.scene.Phase() != components.PhaseMeasuring {
				t.Fatalf("点击后阶段 = %s, want measuring", h.scene.Phase())
			}

			for i := 0; i < 200 && h.scene.Phase() != components.PhaseDone; i++ {
				h.tick()
			}
			if h.scene.Phase() != components.PhaseDone {
				t.Fatalf("动画未结束, phase = %s", h.scene.Phase())
			}

			marker := h.scene.Marker()
			cart := h.scene.Layout().Cart
			if marker.X != utils.RoundPixel(cart.X) || marker.Y != utils.RoundPixel(cart.Y) {
				t.Errorf("标记终点 = (%v, %v), want (%v, %v)", marker.X, marker.Y, cart.X, cart.Y)
			}
			if marker.Scale != tt.endScale {
				t.Errorf("标记缩放 = %v, want %v", marker.Scale, tt.endScale)
			}
			if h.scene.Button().Visible() {
				t.Error("结束后按钮应保持隐藏")
			}
			if h.scene.State().Runs != 1 {
				t.Errorf("Runs = %d, want 1", h.scene.State().Runs)
			}
		})
	}
}

// TestProductSceneSecondTapIgnored 动画期间再次点击不会启动第二次动画
func TestProductSceneSecondTapIgnored(t *testing.T) {
	h := newHarness(t, chairProduct())
	h.firstDraw()

	h.tapButton()
	h.tick()
	h.tapButton()
	if err := h.scene.Tap(); !errors.Is(err, systems.ErrNotIdle) {
		t.Errorf("Tap() error = %v, want ErrNotIdle", err)
	}
	if h.scene.State().Runs != 1 {
		t.Errorf("Runs = %d, want 1", h.scene.State().Runs)
	}
}

// TestProductSceneTapBeforeFirstDraw 首次绘制前购物车位置未知，点击被拒绝
func TestProductSceneTapBeforeFirstDraw(t *testing.T) {
	h := newHarness(t, chairProduct())
	if err := h.scene.Tap(); !errors.Is(err, systems.ErrCartNotMeasured) {
		t.Fatalf("Tap() error = %v, want ErrCartNotMeasured", err)
	}
	if h.scene.Phase() != components.PhaseIdle {
		t.Errorf("phase = %s, want idle", h.scene.Phase())
	}
}

// TestProductSceneBack 返回键和返回链接都会回到目录
func TestProductSceneBack(t *testing.T) {
	h := newHarness(t, chairProduct())

	h.back = true
	h.tick()
	h.back = false
	if h.backs != 1 {
		t.Fatalf("返回键: backs = %d, want 1", h.backs)
	}

	back := h.scene.Layout().Back
	h.tapAt(back.X+10, back.Y+back.Height/2)
	if h.backs != 2 {
		t.Errorf("返回链接: backs = %d, want 2", h.backs)
	}
}

// TestProductSceneScroll 长描述可以滚动，按钮起点使用滚动后的位置
func TestProductSceneScroll(t *testing.T) {
	product := chairProduct()
	product.Description = strings.Repeat("line\n", 40)

	h := newHarness(t, product)
	if h.scene.Layout().MaxScroll <= 0 {
		t.Fatalf("MaxScroll = %v, want > 0", h.scene.Layout().MaxScroll)
	}
	h.firstDraw()

	h.pointer = utils.PointerSnapshot{WheelY: -100}
	h.tick()
	if got := h.scene.ScrollOffset(); got != h.scene.Layout().MaxScroll {
		t.Fatalf("ScrollOffset() = %v, want %v", got, h.scene.Layout().MaxScroll)
	}

	h.tapButton()
	h.tick()
	state := h.scene.State()
	wantY := h.scene.Layout().Button.Y - h.scene.Layout().MaxScroll
	if state.ButtonOrigin.Y != wantY {
		t.Errorf("ButtonOrigin.Y = %v, want %v", state.ButtonOrigin.Y, wantY)
	}
}

// TestProductSceneDispose 释放后不再推进动画
func TestProductSceneDispose(t *testing.T) {
	h := newHarness(t, chairProduct())
	h.firstDraw()
	if err := h.scene.Tap(); err != nil {
		t.Fatal(err)
	}

	h.scene.Dispose()
	h.tick()
	if h.scene.Phase() != components.PhaseMeasuring {
		t.Errorf("释放后 phase = %s, want measuring", h.scene.Phase())
	}
}

// TestNewProductSceneNil 空配置返回错误
func TestNewProductSceneNil(t *testing.T) {
	if _, err := NewProductScene(nil, ProductSceneOptions{}); err == nil {
		t.Error("NewProductScene(nil) 应返回错误")
	}
}
