// validate_map 检查 Tiled 地图和建筑目录
//
// 用法：
//
//	go run ./cmd/validate_map --map data/maps/park.json --buildings data/buildings.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/utils"
)

var (
	mapPath       = flag.String("map", "data/maps/park.json", "Tiled 地图路径")
	buildingsPath = flag.String("buildings", "data/buildings.yaml", "建筑目录路径，为空则跳过")
)

func main() {
	flag.Parse()
	if problems := validate(os.Stdout, *mapPath, *buildingsPath); problems > 0 {
		fmt.Printf("❌ 发现 %d 个问题\n", problems)
		os.Exit(1)
	}
	fmt.Printf("✅ 全部检查通过\n")
}

// validate 输出检查结果，返回问题数量
func validate(w io.Writer, mapFile, buildingsFile string) int {
	problems := 0
	fail := func(format string, args ...any) {
		problems++
		fmt.Fprintf(w, "❌ "+format+"\n", args...)
	}

	m, err := config.LoadMapConfig(mapFile)
	if err != nil {
		fail("地图加载失败: %v", err)
		return problems
	}
	fmt.Fprintf(w, "✅ 地图 %dx%d 格，格子 %dx%d\n", m.Width, m.Height, m.TileWidth, m.TileHeight)

	for _, name := range []string{config.BaseLayerName, config.PathsLayerName} {
		layer, ok := m.Layer(name)
		if !ok {
			fail("缺少图层 %s", name)
			continue
		}
		if layer.Type != config.TileLayerType {
			fail("图层 %s 不是瓦片层 (%s)", name, layer.Type)
			continue
		}
		if want := m.Width * m.Height; len(layer.Data) != want {
			fail("图层 %s 有 %d 个瓦片，应为 %d", name, len(layer.Data), want)
		}
	}

	for _, ts := range m.Tilesets {
		if _, ok := config.TilesetImageKeys[ts.Name]; !ok {
			fail("图块集 %s 没有对应的图片资源", ts.Name)
		}
	}

	zones, err := m.Zones()
	if err != nil {
		fail("%v", err)
		return problems
	}
	mapRect := utils.Rect{W: m.WidthInPixels(), H: m.HeightInPixels()}
	seen := make(map[string]int)
	for i, z := range zones {
		size, err := z.SizeClass()
		if err != nil {
			fail("区域 %d: %v", i+1, err)
			continue
		}
		fp := z.Footprint()
		if fp.W <= 0 || fp.H <= 0 {
			fail("区域 %d (%s) 尺寸为空", i+1, z.Name)
			continue
		}
		if !utils.ContainsRect(mapRect, fp) {
			fail("区域 %d (%s) 超出地图范围", i+1, z.Name)
		}
		if z.Name != "" {
			seen[z.Name]++
		}
		fmt.Fprintf(w, "   区域 %-12s size=%d  (%.0f,%.0f) %.0fx%.0f\n", z.Name, size, fp.X, fp.Y, fp.W, fp.H)
	}
	for name, n := range seen {
		if n > 1 {
			fmt.Fprintf(w, "⚠️  区域名称 %s 重复 %d 次\n", name, n)
		}
	}
	fmt.Fprintf(w, "✅ 可建造区域: %d\n", len(zones))

	if buildingsFile == "" {
		return problems
	}
	catalogue, err := config.LoadBuildingCatalogue(buildingsFile)
	if err != nil {
		fail("建筑目录加载失败: %v", err)
		return problems
	}
	fmt.Fprintf(w, "✅ 建筑类型: %d\n", len(catalogue.Buildings))
	for _, b := range catalogue.Buildings {
		if !fitsAnyZone(b, zones) {
			fail("建筑 %s (%.0fx%.0f) 放不进任何区域", b.Type, b.Width, b.Height)
		}
	}
	return problems
}

// fitsAnyZone 建筑在某个旋转角度下能放进至少一个区域
func fitsAnyZone(b config.BuildingSpec, zones []config.ZoneDescriptor) bool {
	for _, z := range zones {
		fp := z.Footprint()
		if (b.Width <= fp.W && b.Height <= fp.H) || (b.Height <= fp.W && b.Width <= fp.H) {
			return true
		}
	}
	return false
}
