package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/flycart/pkg/app"
	"github.com/decker502/flycart/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	productFlag = flag.String("product", "", "Open a product page directly (e.g., chair, headphones)")
	watchFlag   = flag.String("watch", "", "Read data/ from this directory and hot-reload the catalog on change")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:  *verboseFlag,
		Product:  *productFlag,
		WatchDir: *watchFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer a.Close()

	w, h := app.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Add to Cart")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
