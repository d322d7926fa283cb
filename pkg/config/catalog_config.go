package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/flycart/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// CatalogConfigPath 内嵌商品目录配置路径
const CatalogConfigPath = "data/catalog.yaml"

var (
	// ErrNoProducts 目录中没有任何商品
	ErrNoProducts = errors.New("catalog must contain at least one product")
	// ErrDuplicateProduct 商品 ID 重复
	ErrDuplicateProduct = errors.New("duplicate product id")
	// ErrUnknownProduct 查询的商品 ID 不存在
	ErrUnknownProduct = errors.New("unknown product id")
)

// CartPlacement 购物车图标所在位置
type CartPlacement string

const (
	// CartInHeader 购物车位于顶部栏右侧（椅子页面）
	CartInHeader CartPlacement = "header"
	// CartInNavBar 购物车位于底部导航栏（耳机页面）
	CartInNavBar CartPlacement = "navbar"
)

// ProductConfig 单个商品页面的配置
type ProductConfig struct {
	ID          string        `yaml:"id"`          // 商品 ID（命令行 -product 使用）
	Title       string        `yaml:"title"`       // 标题
	Price       string        `yaml:"price"`       // 价格文本（如 "$129"）
	Description string        `yaml:"description"` // 描述正文
	ImageColor  [3]int        `yaml:"imageColor"`  // 商品占位图的主色 (R, G, B)，0~255
	Placement   CartPlacement `yaml:"cartPlacement"`

	// MarkerEndScale 标记到达购物车时的缩放，0 表示使用默认值
	MarkerEndScale float64 `yaml:"markerEndScale"`
}

// EndScale 返回标记终点缩放（未配置时为 DefaultMarkerEndScale）
func (p *ProductConfig) EndScale() float64 {
	if p.MarkerEndScale == 0 {
		return DefaultMarkerEndScale
	}
	return p.MarkerEndScale
}

// CartPlacementOrDefault 返回购物车位置（未配置时位于顶部栏）
func (p *ProductConfig) CartPlacementOrDefault() CartPlacement {
	if p.Placement == "" {
		return CartInHeader
	}
	return p.Placement
}

// ImageRGBA 返回占位图颜色
func (p *ProductConfig) ImageRGBA() color.RGBA {
	return color.RGBA{R: uint8(p.ImageColor[0]), G: uint8(p.ImageColor[1]), B: uint8(p.ImageColor[2]), A: 255}
}

// CatalogConfig 商品目录配置文件结构
type CatalogConfig struct {
	Products []ProductConfig `yaml:"products"`
}

// Product 按 ID 查找商品
func (c *CatalogConfig) Product(id string) (*ProductConfig, error) {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, id)
}

// Validate 验证目录配置的完整性和合法性
func (c *CatalogConfig) Validate() error {
	if len(c.Products) == 0 {
		return ErrNoProducts
	}

	seen := make(map[string]bool, len(c.Products))
	for i, p := range c.Products {
		if p.ID == "" {
			return fmt.Errorf("product #%d: id cannot be empty", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = true

		if p.MarkerEndScale < 0 || p.MarkerEndScale > 1 {
			return fmt.Errorf("product %s: markerEndScale must be in (0, 1], got %v", p.ID, p.MarkerEndScale)
		}
		for _, c := range p.ImageColor {
			if c < 0 || c > 255 {
				return fmt.Errorf("product %s: imageColor component out of range: %d", p.ID, c)
			}
		}
		switch p.Placement {
		case "", CartInHeader, CartInNavBar:
		default:
			return fmt.Errorf("product %s: unknown cartPlacement %q", p.ID, p.Placement)
		}
	}
	return nil
}

// ParseCatalogConfig 解析并验证 YAML 格式的目录配置
func ParseCatalogConfig(data []byte) (*CatalogConfig, error) {
	var config CatalogConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog config: %w", err)
	}
	return &config, nil
}

// LoadCatalogConfig 从资源文件加载商品目录配置
// 参数：
//
//	filepath - 配置文件路径（以 data/ 开头，优先读取磁盘覆盖目录）
//
// 返回：
//
//	*CatalogConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadCatalogConfig(filepath string) (*CatalogConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filepath, err)
	}

	config, err := ParseCatalogConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return config, nil
}
