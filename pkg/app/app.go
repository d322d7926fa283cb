// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/embedded"
	"github.com/decker502/flycart/pkg/game"
	"github.com/decker502/flycart/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Product 启动时直接打开的商品ID，为空则显示商品目录
	Product string
	// WatchDir 开发模式：从该目录读取 data/ 并在配置变化时热重载（仅桌面端）
	WatchDir string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	catalog      *game.CatalogState
	watcher      *config.CatalogWatcher
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.WatchDir != "" {
		embedded.SetOverrideDir(cfg.WatchDir)
		log.Printf("[App] Reading data/ from %s", cfg.WatchDir)
	}

	catalogConfig, err := config.LoadCatalogConfig(config.CatalogConfigPath)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed: %w", err)
	}
	catalog, err := game.NewCatalogState(catalogConfig)
	if err != nil {
		return nil, err
	}
	log.Printf("[Catalog] Loaded %d products", len(catalogConfig.Products))

	a := &App{
		sceneManager: game.NewSceneManager(),
		catalog:      catalog,
		verbose:      cfg.Verbose,
	}

	// 场景工厂：每次进入商品页面都创建全新的场景
	a.sceneManager.SetSceneFactory(func(productID string) (game.Scene, error) {
		product, err := a.catalog.Product(productID)
		if err != nil {
			return nil, err
		}
		return scenes.NewProductScene(product, scenes.ProductSceneOptions{
			OnBack: a.showCatalog,
		})
	})
	a.sceneManager.SetCatalogFactory(func() game.Scene {
		return scenes.NewCatalogScene(a.catalog.Catalog(), nil, a.openProduct)
	})

	// 根据配置决定启动场景
	if cfg.Product != "" {
		if err := a.sceneManager.LoadProduct(cfg.Product); err != nil {
			return nil, err
		}
	} else if err := a.sceneManager.ShowCatalog(); err != nil {
		return nil, err
	}

	if cfg.WatchDir != "" {
		watcher, err := config.NewCatalogWatcher(filepath.Join(cfg.WatchDir, "data"))
		if err != nil {
			// 热重载只是开发辅助，失败不影响运行
			log.Printf("[App] Warning: hot reload disabled: %v", err)
		} else {
			a.watcher = watcher
			log.Printf("[App] Watching %s for catalog changes", filepath.Join(cfg.WatchDir, "data"))
		}
	}

	return a, nil
}

// openProduct 从目录进入商品页面
func (a *App) openProduct(productID string) {
	if err := a.sceneManager.LoadProduct(productID); err != nil {
		log.Printf("[App] Failed to open %s: %v", productID, err)
	}
}

// showCatalog 从商品页面返回目录
func (a *App) showCatalog() {
	if err := a.sceneManager.ShowCatalog(); err != nil {
		log.Printf("[App] Failed to show catalog: %v", err)
	}
}

// ReloadCatalog 从磁盘重新加载商品目录并重建当前场景
// 加载或校验失败时保留旧目录，当前场景不变
func (a *App) ReloadCatalog() error {
	catalogConfig, err := config.LoadCatalogConfig(config.CatalogConfigPath)
	if err != nil {
		return fmt.Errorf("catalog reload failed: %w", err)
	}
	if err := a.catalog.Replace(catalogConfig); err != nil {
		return err
	}
	log.Printf("[Catalog] Reloaded %d products (version %d)", len(catalogConfig.Products), a.catalog.Version())
	return a.sceneManager.Reload()
}

// pollWatcher 非阻塞地处理文件变化事件
func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}

	changed := false
	for {
		select {
		case path := <-a.watcher.Events:
			log.Printf("[App] Catalog file changed: %s", path)
			changed = true
			continue
		case err := <-a.watcher.Errors:
			log.Printf("[App] Watcher error: %v", err)
			continue
		default:
		}
		break
	}

	if changed {
		if err := a.ReloadCatalog(); err != nil {
			log.Printf("[App] %v (keeping previous catalog)", err)
		}
	}
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.pollWatcher()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close 停止配置监听
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Catalog 返回当前商品目录状态
func (a *App) Catalog() *game.CatalogState {
	return a.catalog
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
