package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/flycart/pkg/embedded"
)

const validCatalogYAML = `
products:
  - id: chair
    title: Lounge Chair
    price: "$249"
    imageColor: [200, 162, 122]
    markerEndScale: 0.5
    cartPlacement: header
    description: oak
  - id: headphones
    title: Studio Headphones
    price: "$179"
    markerEndScale: 0.2
    cartPlacement: navbar
`

// TestParseCatalogConfig 测试目录解析
func TestParseCatalogConfig(t *testing.T) {
	catalog, err := ParseCatalogConfig([]byte(validCatalogYAML))
	if err != nil {
		t.Fatalf("ParseCatalogConfig() error = %v", err)
	}

	if len(catalog.Products) != 2 {
		t.Fatalf("期望 2 个商品, got %d", len(catalog.Products))
	}

	chair, err := catalog.Product("chair")
	if err != nil {
		t.Fatalf("Product(chair) error = %v", err)
	}
	if chair.EndScale() != 0.5 {
		t.Errorf("chair EndScale = %v, want 0.5", chair.EndScale())
	}
	if chair.CartPlacementOrDefault() != CartInHeader {
		t.Errorf("chair placement = %v, want header", chair.CartPlacementOrDefault())
	}
	if c := chair.ImageRGBA(); c.R != 200 || c.G != 162 || c.B != 122 || c.A != 255 {
		t.Errorf("chair ImageRGBA = %v", c)
	}

	phones, _ := catalog.Product("headphones")
	if phones.EndScale() != 0.2 {
		t.Errorf("headphones EndScale = %v, want 0.2", phones.EndScale())
	}
	if phones.CartPlacementOrDefault() != CartInNavBar {
		t.Errorf("headphones placement = %v, want navbar", phones.CartPlacementOrDefault())
	}

	if _, err := catalog.Product("sofa"); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("Product(sofa) error = %v, want ErrUnknownProduct", err)
	}
}

// TestProductDefaults 未配置的字段使用默认值
func TestProductDefaults(t *testing.T) {
	p := ProductConfig{ID: "lamp"}
	if p.EndScale() != DefaultMarkerEndScale {
		t.Errorf("EndScale() = %v, want %v", p.EndScale(), DefaultMarkerEndScale)
	}
	if p.CartPlacementOrDefault() != CartInHeader {
		t.Errorf("CartPlacementOrDefault() = %v, want header", p.CartPlacementOrDefault())
	}
}

// TestCatalogValidate 测试目录校验规则
func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "空目录",
			yaml:    "products: []",
			wantErr: ErrNoProducts,
		},
		{
			name:    "重复 ID",
			yaml:    "products:\n  - id: a\n  - id: a\n",
			wantErr: ErrDuplicateProduct,
		},
		{
			name:    "空 ID",
			yaml:    "products:\n  - title: x\n",
			wantMsg: "id cannot be empty",
		},
		{
			name:    "缩放超出范围",
			yaml:    "products:\n  - id: a\n    markerEndScale: 1.5\n",
			wantMsg: "markerEndScale",
		},
		{
			name:    "未知购物车位置",
			yaml:    "products:\n  - id: a\n    cartPlacement: footer\n",
			wantMsg: "unknown cartPlacement",
		},
		{
			name:    "颜色超出范围",
			yaml:    "products:\n  - id: a\n    imageColor: [0, 300, 0]\n",
			wantMsg: "imageColor",
		},
		{
			name:    "YAML 语法错误",
			yaml:    "products: [",
			wantMsg: "failed to parse catalog YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalogConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, 应包含 %q", err, tt.wantMsg)
			}
		})
	}
}

// TestLoadCatalogConfig 从内嵌文件系统加载目录
func TestLoadCatalogConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		CatalogConfigPath: {Data: []byte(validCatalogYAML)},
	})

	catalog, err := LoadCatalogConfig(CatalogConfigPath)
	if err != nil {
		t.Fatalf("LoadCatalogConfig() error = %v", err)
	}
	if len(catalog.Products) != 2 {
		t.Errorf("期望 2 个商品, got %d", len(catalog.Products))
	}

	if _, err := LoadCatalogConfig("data/missing.yaml"); err == nil {
		t.Error("加载不存在的文件应返回错误")
	}
}

// TestLayoutHelpers 测试布局辅助函数
func TestLayoutHelpers(t *testing.T) {
	if got := FullButtonWidth(ScreenWidth); got != ScreenWidth-100 {
		t.Errorf("FullButtonWidth = %v, want %v", got, ScreenWidth-100)
	}
	if got := CollapsedMarkerX(390); got != 177 {
		t.Errorf("CollapsedMarkerX(390) = %v, want 177", got)
	}

	top, bottom := ViewportBounds(CartInHeader)
	if top != HeaderTopMargin+HeaderHeight || bottom != ScreenHeight {
		t.Errorf("header viewport = (%v, %v)", top, bottom)
	}
	_, bottom = ViewportBounds(CartInNavBar)
	if bottom != ScreenHeight-NavBarHeight {
		t.Errorf("navbar viewport bottom = %v, want %v", bottom, ScreenHeight-NavBarHeight)
	}
}

// TestAnimationEasings 动画缓动曲线端点
func TestAnimationEasings(t *testing.T) {
	for name, ease := range map[string]func(float64) float64{
		"collapse": CollapseEasing(),
		"flight":   FlightEasing(),
	} {
		if ease(0) != 0 || ease(1) != 1 {
			t.Errorf("%s easing endpoints = (%v, %v)", name, ease(0), ease(1))
		}
		if ease(0.5) >= 0.5 {
			t.Errorf("%s easing 应为缓入曲线, f(0.5) = %v", name, ease(0.5))
		}
	}
}

// TestCatalogWatcher 修改 YAML 文件时发送事件，其他文件被忽略
func TestCatalogWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewCatalogWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(target, []byte(validCatalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "catalog.yaml" {
			t.Errorf("event for %q, want catalog.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for catalog change event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// 重复关闭不应 panic
	_ = w.Close()
}
