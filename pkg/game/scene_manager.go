package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoSceneFactory 场景工厂未设置
var ErrNoSceneFactory = errors.New("scene factory is not set")

// SceneFactory 场景工厂函数类型
// 用于创建指定商品ID的商品页面场景，避免循环依赖
type SceneFactory func(productID string) (Scene, error)

// CatalogFactory 创建商品目录场景
type CatalogFactory func() Scene

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene   Scene
	currentProduct string // 当前商品页面的ID，显示目录时为空

	sceneFactory   SceneFactory   // 商品页面场景工厂
	catalogFactory CatalogFactory // 目录场景工厂
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置商品页面场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetCatalogFactory 设置目录场景工厂函数
func (sm *SceneManager) SetCatalogFactory(factory CatalogFactory) {
	sm.catalogFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if d, ok := sm.currentScene.(Disposable); ok && sm.currentScene != scene {
		d.Dispose()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentProduct 返回当前商品页面的ID（显示目录时为空字符串）
func (sm *SceneManager) CurrentProduct() string {
	return sm.currentProduct
}

// LoadProduct 加载指定ID的商品页面
// 每次调用都会创建全新的场景（动画状态从空闲开始）
func (sm *SceneManager) LoadProduct(productID string) error {
	log.Printf("[SceneManager] Loading product: %s", productID)

	if sm.sceneFactory == nil {
		return ErrNoSceneFactory
	}

	newScene, err := sm.sceneFactory(productID)
	if err != nil {
		return fmt.Errorf("failed to create product scene %q: %w", productID, err)
	}

	sm.SwitchTo(newScene)
	sm.currentProduct = productID
	log.Printf("[SceneManager] Switched to product: %s", productID)
	return nil
}

// ShowCatalog 切换到商品目录场景
func (sm *SceneManager) ShowCatalog() error {
	if sm.catalogFactory == nil {
		return ErrNoSceneFactory
	}
	sm.SwitchTo(sm.catalogFactory())
	sm.currentProduct = ""
	log.Printf("[SceneManager] Switched to catalog")
	return nil
}

// Reload 重新创建当前场景（配置热重载后调用）
// 当前商品已不存在时回到目录
func (sm *SceneManager) Reload() error {
	if sm.currentProduct == "" {
		return sm.ShowCatalog()
	}
	if err := sm.LoadProduct(sm.currentProduct); err != nil {
		log.Printf("[SceneManager] Reload of %s failed: %v, falling back to catalog", sm.currentProduct, err)
		return sm.ShowCatalog()
	}
	return nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
