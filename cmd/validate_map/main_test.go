package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const mapTemplate = `{
  "width": 4, "height": 4, "tilewidth": 16, "tileheight": 16,
  "layers": [
    {"name": "base", "type": "tilelayer", "width": 4, "height": 4,
     "data": [1,1,1,1, 1,1,1,1, 1,1,1,1, 1,1,1,1]},
    {"name": "paths", "type": "tilelayer", "width": 4, "height": 4,
     "data": [0,0,0,0, 0,0,0,0, 0,0,0,0, 0,0,0,0]},
    {"name": "buildable_zone", "type": "objectgroup", "objects": [
      {"id": 1, "name": "a", "x": 0, "y": 0, "width": 32, "height": 16,
       "properties": [{"name": "size", "type": "string", "value": "SIZE"}]}
    ]}
  ],
  "tilesets": [{"firstgid": 1, "name": "tiles", "columns": 4, "tilecount": 16}]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateGoodMap(t *testing.T) {
	dir := t.TempDir()
	mapFile := writeFile(t, dir, "park.json", strings.Replace(mapTemplate, "SIZE", "2", 1))
	buildings := writeFile(t, dir, "buildings.yaml", "buildings:\n  - type: kiosk\n    cost: 10\n    width: 16\n    height: 32\n")

	var out bytes.Buffer
	if n := validate(&out, mapFile, buildings); n != 0 {
		t.Fatalf("expected no problems, got %d:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "可建造区域: 1") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestValidateBadSize(t *testing.T) {
	dir := t.TempDir()
	mapFile := writeFile(t, dir, "park.json", strings.Replace(mapTemplate, "SIZE", "huge", 1))

	var out bytes.Buffer
	if n := validate(&out, mapFile, ""); n != 1 {
		t.Errorf("expected 1 problem, got %d:\n%s", n, out.String())
	}
}

func TestValidateBuildingTooLarge(t *testing.T) {
	dir := t.TempDir()
	mapFile := writeFile(t, dir, "park.json", strings.Replace(mapTemplate, "SIZE", "1", 1))
	buildings := writeFile(t, dir, "buildings.yaml", "buildings:\n  - type: hotel\n    cost: 10\n    width: 48\n    height: 48\n")

	var out bytes.Buffer
	if n := validate(&out, mapFile, buildings); n != 1 {
		t.Errorf("expected 1 problem, got %d:\n%s", n, out.String())
	}
}

func TestValidateMissingMap(t *testing.T) {
	var out bytes.Buffer
	if n := validate(&out, filepath.Join(t.TempDir(), "none.json"), ""); n != 1 {
		t.Errorf("expected 1 problem, got %d", n)
	}
}
