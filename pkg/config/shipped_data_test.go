package config

import (
	"os"
	"testing"

	"github.com/gonewx/parktycoon/pkg/utils"
)

// 检查随游戏发布的 data/ 配置

func skipIfMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Skipf("%s not present: %v", path, err)
	}
}

func TestShippedParkConfig(t *testing.T) {
	path := "../../data/park.yaml"
	skipIfMissing(t, path)

	cfg, err := LoadParkConfig(path)
	if err != nil {
		t.Fatalf("LoadParkConfig() error: %v", err)
	}
	if cfg.StartingCash <= 0 {
		t.Errorf("startingCash should be positive, got %d", cfg.StartingCash)
	}
	if cfg.MapPath != "data/maps/park.json" {
		t.Errorf("mapPath: got %q", cfg.MapPath)
	}
}

func TestShippedBuildingCatalogue(t *testing.T) {
	path := "../../data/buildings.yaml"
	skipIfMissing(t, path)

	catalogue, err := LoadBuildingCatalogue(path)
	if err != nil {
		t.Fatalf("LoadBuildingCatalogue() error: %v", err)
	}
	if _, err := catalogue.Lookup("kiosk"); err != nil {
		t.Errorf("kiosk should be in the catalogue: %v", err)
	}
	if len(catalogue.Buildings) > 9 {
		t.Errorf("buy modal only lists 9 buildings, catalogue has %d", len(catalogue.Buildings))
	}
}

func TestShippedMap(t *testing.T) {
	path := "../../data/maps/park.json"
	skipIfMissing(t, path)

	m, err := LoadMapConfig(path)
	if err != nil {
		t.Fatalf("LoadMapConfig() error: %v", err)
	}
	for _, name := range []string{BaseLayerName, PathsLayerName} {
		layer, ok := m.Layer(name)
		if !ok || layer.Type != TileLayerType {
			t.Fatalf("missing tile layer %s", name)
		}
		if len(layer.Data) != m.Width*m.Height {
			t.Errorf("layer %s: %d tiles, want %d", name, len(layer.Data), m.Width*m.Height)
		}
	}
	for _, ts := range m.Tilesets {
		if _, ok := TilesetImageKeys[ts.Name]; !ok {
			t.Errorf("tileset %s has no image key", ts.Name)
		}
	}

	zones, err := m.Zones()
	if err != nil {
		t.Fatalf("Zones() error: %v", err)
	}
	if len(zones) == 0 {
		t.Fatal("map has no buildable zones")
	}
	mapRect := utils.Rect{W: m.WidthInPixels(), H: m.HeightInPixels()}
	for _, z := range zones {
		if _, err := z.SizeClass(); err != nil {
			t.Errorf("zone %s: %v", z.Name, err)
		}
		if !utils.ContainsRect(mapRect, z.Footprint()) {
			t.Errorf("zone %s lies outside the map", z.Name)
		}
	}
}
