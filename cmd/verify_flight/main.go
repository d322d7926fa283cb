// verify_flight 无窗口运行商品页面，输出加入购物车动画的标记轨迹
//
// 用法（在项目根目录运行）：
//
//	go run ./cmd/verify_flight -product headphones -every 4
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/flycart/pkg/components"
	"github.com/decker502/flycart/pkg/config"
	"github.com/decker502/flycart/pkg/embedded"
	"github.com/decker502/flycart/pkg/scenes"
	"github.com/decker502/flycart/pkg/utils"
)

var (
	productFlag = flag.String("product", "chair", "Product ID to simulate")
	tpsFlag     = flag.Int("tps", 60, "Simulated ticks per second")
	everyFlag   = flag.Int("every", 1, "Print every N ticks")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
	if *tpsFlag <= 0 || *everyFlag <= 0 {
		fmt.Fprintln(os.Stderr, "tps and every must be positive")
		os.Exit(2)
	}

	embedded.Init(os.DirFS("."))

	catalog, err := config.LoadCatalogConfig(config.CatalogConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	product, err := catalog.Product(*productFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	scene, err := scenes.NewProductScene(product, scenes.ProductSceneOptions{
		Pointer:     func() utils.PointerSnapshot { return utils.PointerSnapshot{} },
		BackPressed: func() bool { return false },
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	dt := 1.0 / float64(*tpsFlag)

	// 首次绘制后测量购物车位置
	scene.MarkDrawn()
	scene.Update(dt)

	if err := scene.Tap(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ tap rejected: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== %s: cart in %s, end scale %.2f ===\n", product.ID, product.CartPlacementOrDefault(), product.EndScale())
	fmt.Println("tick,time,phase,progress,x,y,scale,opacity")

	const maxTicks = 10000
	tick := 0
	for ; tick < maxTicks && scene.Phase() != components.PhaseDone; tick++ {
		scene.Update(dt)

		if tick%*everyFlag == 0 || scene.Phase() == components.PhaseDone {
			state := scene.State()
			marker := scene.Marker()
			fmt.Printf("%d,%.3f,%s,%.4f,%.0f,%.0f,%.3f,%.1f\n",
				tick+1, float64(tick+1)*dt, state.Phase, state.Progress, marker.X, marker.Y, marker.Scale, marker.Opacity)
		}
	}

	if scene.Phase() != components.PhaseDone {
		fmt.Fprintf(os.Stderr, "❌ animation did not finish after %d ticks\n", maxTicks)
		os.Exit(1)
	}

	state := scene.State()
	fmt.Printf("✅ finished after %d ticks (%.2fs): %+v -> %+v\n", tick, float64(tick)*dt, state.ButtonOrigin, state.CartOrigin)
}
