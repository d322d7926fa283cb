package game

import (
	"fmt"
	"sync"

	"github.com/decker502/flycart/pkg/config"
)

// CatalogState 存储当前生效的商品目录
// 热重载在监听协程之外替换目录，场景只在创建时读取一次
type CatalogState struct {
	mu      sync.RWMutex
	catalog *config.CatalogConfig
	version int
}

// NewCatalogState 创建目录状态（目录必须通过校验）
func NewCatalogState(catalog *config.CatalogConfig) (*CatalogState, error) {
	s := &CatalogState{}
	if err := s.Replace(catalog); err != nil {
		return nil, err
	}
	return s, nil
}

// Catalog 返回当前目录
func (s *CatalogState) Catalog() *config.CatalogConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Version 返回目录被替换的次数（初始为 1）
func (s *CatalogState) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Product 查找商品配置
func (s *CatalogState) Product(id string) (*config.ProductConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Product(id)
}

// Replace 替换目录；校验失败时保留旧目录
func (s *CatalogState) Replace(catalog *config.CatalogConfig) error {
	if catalog == nil {
		return config.ErrNoProducts
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
	s.version++
	return nil
}
