package systems

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/decker502/flycart/pkg/config"
)

// monoMeasurer 等宽测量：每个字符 7 像素
func monoMeasurer(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 7
}

// TestComputePageLayoutCartPlacement 购物车图标位置取决于配置
func TestComputePageLayoutCartPlacement(t *testing.T) {
	tests := []struct {
		name       string
		placement  config.CartPlacement
		wantCartX  float64
		wantCartY  float64
		wantBottom float64
		wantIcons  int
	}{
		{"顶部栏", config.CartInHeader, 350, 40, config.ScreenHeight, 0},
		{"底部导航栏", config.CartInNavBar, 331.25, 806, config.ScreenHeight - config.NavBarHeight, config.NavBarSlots - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &config.ProductConfig{ID: "p", Title: "P", Placement: tt.placement, Description: "short"}
			l := ComputePageLayout(product, monoMeasurer, config.ScreenWidth)

			if l.Cart.X != tt.wantCartX || l.Cart.Y != tt.wantCartY {
				t.Errorf("Cart = (%v, %v), want (%v, %v)", l.Cart.X, l.Cart.Y, tt.wantCartX, tt.wantCartY)
			}
			if l.ViewportBottom != tt.wantBottom {
				t.Errorf("ViewportBottom = %v, want %v", l.ViewportBottom, tt.wantBottom)
			}
			if len(l.NavIcons) != tt.wantIcons {
				t.Errorf("NavIcons = %d, want %d", len(l.NavIcons), tt.wantIcons)
			}
			if l.Placement != tt.placement {
				t.Errorf("Placement = %q, want %q", l.Placement, tt.placement)
			}
		})
	}
}

// TestComputePageLayoutContent 内容从上到下依次排列，按钮水平居中
func TestComputePageLayoutContent(t *testing.T) {
	product := &config.ProductConfig{ID: "p", Title: "P", Description: "line one\n\nline two\n"}
	l := ComputePageLayout(product, monoMeasurer, config.ScreenWidth)

	if l.ViewportTop != 70 {
		t.Errorf("ViewportTop = %v, want 70", l.ViewportTop)
	}
	if l.Image.Y != 100 || l.Image.Height != config.ProductImageHeight {
		t.Errorf("Image = %+v", l.Image)
	}
	if !(l.Image.Bottom() < l.Title.Y && l.Title.Bottom() < l.Body.Y && l.Body.Bottom() < l.Button.Y) {
		t.Errorf("内容顺序错误: image %+v, title %+v, body %+v, button %+v", l.Image, l.Title, l.Body, l.Button)
	}

	// 末尾空行被去掉，中间空段落保留
	want := []string{"line one", "", "line two"}
	if strings.Join(l.BodyLines, "|") != strings.Join(want, "|") {
		t.Errorf("BodyLines = %q, want %q", l.BodyLines, want)
	}

	if l.Button.X != 50 || l.Button.Width != 290 || l.Button.Height != config.ButtonSize {
		t.Errorf("Button = %+v, want x=50 width=290", l.Button)
	}
	if l.MaxScroll != 0 {
		t.Errorf("短内容 MaxScroll = %v, want 0", l.MaxScroll)
	}
}

// TestComputePageLayoutMaxScroll 内容超出可见区域时可以滚动
func TestComputePageLayoutMaxScroll(t *testing.T) {
	description := strings.Repeat("a\n", 30)

	tests := []struct {
		name      string
		placement config.CartPlacement
		want      float64
	}{
		// 内容底部 = 528 + 30*18 = 1068
		{"顶部栏", config.CartInHeader, 1068 - 844},
		{"底部导航栏", config.CartInNavBar, 1068 - 788},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &config.ProductConfig{ID: "p", Title: "P", Placement: tt.placement, Description: description}
			l := ComputePageLayout(product, monoMeasurer, config.ScreenWidth)
			if len(l.BodyLines) != 30 {
				t.Fatalf("BodyLines = %d, want 30", len(l.BodyLines))
			}
			if l.MaxScroll != tt.want {
				t.Errorf("MaxScroll = %v, want %v", l.MaxScroll, tt.want)
			}
		})
	}
}
