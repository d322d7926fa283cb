// validate_catalog 校验商品目录 YAML（编辑 data/catalog.yaml 后运行）
//
//	go run ./cmd/validate_catalog [path]
package main

import (
	"fmt"
	"os"

	"github.com/decker502/flycart/pkg/config"
)

func main() {
	path := config.CatalogConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	catalog, err := config.ParseCatalogConfig(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 商品数量: %d\n", len(catalog.Products))
	for _, p := range catalog.Products {
		fmt.Printf("   - %-12s %-8s cart=%-6s endScale=%.2f color=%v\n",
			p.ID, p.Price, p.CartPlacementOrDefault(), p.EndScale(), p.ImageColor)
	}
}
