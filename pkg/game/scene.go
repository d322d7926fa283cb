package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene (e.g., catalog list, product page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被替换时释放自身持有的资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - 切换到其他场景
//   - 配置热重载后重建当前场景
type Disposable interface {
	Dispose()
}
