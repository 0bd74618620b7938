package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gonewx/parktycoon/pkg/embedded"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// 地图图层名称
const (
	BaseLayerName    = "base"
	PathsLayerName   = "paths"
	ZonesLayerName   = "buildable_zone"
	ZoneSizeProperty = "size"
	TileLayerType    = "tilelayer"
	objectGroupType  = "objectgroup"
)

var (
	// ErrMissingZoneSize 可建造区域缺少 size 属性（地图数据损坏）
	ErrMissingZoneSize = errors.New("buildable zone has no size property")
	// ErrInvalidZoneSize 可建造区域的 size 属性无法解析为数字
	ErrInvalidZoneSize = errors.New("buildable zone size is not an integer")
	// ErrMissingLayer 地图缺少必需的图层
	ErrMissingLayer = errors.New("map layer not found")
)

// MapConfig Tiled 地图（JSON 导出格式）
type MapConfig struct {
	Width      int             `json:"width"`      // 地图宽度（格子数）
	Height     int             `json:"height"`     // 地图高度（格子数）
	TileWidth  int             `json:"tilewidth"`  // 格子宽度（像素）
	TileHeight int             `json:"tileheight"` // 格子高度（像素）
	Layers     []MapLayer      `json:"layers"`
	Tilesets   []TilesetConfig `json:"tilesets"`
}

// MapLayer Tiled 图层（瓦片层或对象层）
type MapLayer struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"` // "tilelayer" 或 "objectgroup"
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Data    []int       `json:"data"`    // 瓦片层：全局瓦片ID（0 表示空）
	Objects []MapObject `json:"objects"` // 对象层：对象列表
	Visible *bool       `json:"visible"`
}

// MapObject Tiled 对象
type MapObject struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	GID        int           `json:"gid"` // 非 0 表示瓦片对象（y 为底边）
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Properties []MapProperty `json:"properties"`
}

// MapProperty Tiled 自定义属性
// 数字和布尔值也按字符串读取
type MapProperty struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// UnmarshalJSON 接受字符串、数字或布尔类型的 value
func (p *MapProperty) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Name, p.Type, p.Value = raw.Name, raw.Type, ""

	value := bytes.TrimSpace(raw.Value)
	switch {
	case len(value) == 0 || bytes.Equal(value, []byte("null")):
	case value[0] == '"':
		if err := json.Unmarshal(value, &p.Value); err != nil {
			return fmt.Errorf("property %q: %w", raw.Name, err)
		}
	default:
		p.Value = string(value)
	}
	return nil
}

// TilesetConfig Tiled 图块集
type TilesetConfig struct {
	FirstGID    int    `json:"firstgid"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
	Columns     int    `json:"columns"`
	TileCount   int    `json:"tilecount"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
}

// ZoneDescriptor 可建造区域描述（来自 buildable_zone 对象层）
type ZoneDescriptor struct {
	Name       string
	X, Y       float64
	Width      float64
	Height     float64
	IsTile     bool // 瓦片对象的 Y 是底边
	Properties map[string]string
}

// LoadMapConfig 从文件加载 Tiled 地图
func LoadMapConfig(path string) (*MapConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	m, err := ParseMapConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map %s: %w", path, err)
	}
	return m, nil
}

// ParseMapConfig 解析 Tiled JSON 数据
func ParseMapConfig(data []byte) (*MapConfig, error) {
	var m MapConfig
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map data: %w", err)
	}

	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %dx%d", m.TileWidth, m.TileHeight)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("map size must be positive, got %dx%d", m.Width, m.Height)
	}

	return &m, nil
}

// WidthInPixels 地图像素宽度
func (m *MapConfig) WidthInPixels() float64 {
	return float64(m.Width * m.TileWidth)
}

// HeightInPixels 地图像素高度
func (m *MapConfig) HeightInPixels() float64 {
	return float64(m.Height * m.TileHeight)
}

// Center 地图几何中心（世界坐标）
func (m *MapConfig) Center() utils.Point {
	return utils.Point{X: m.WidthInPixels() / 2, Y: m.HeightInPixels() / 2}
}

// Layer 按名称查找图层
func (m *MapConfig) Layer(name string) (*MapLayer, bool) {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i], true
		}
	}
	return nil, false
}

// TilesetFor 返回全局瓦片ID所属的图块集（FirstGID 不大于 gid 的最大者）
func (m *MapConfig) TilesetFor(gid int) (*TilesetConfig, bool) {
	var best *TilesetConfig
	for i := range m.Tilesets {
		ts := &m.Tilesets[i]
		if ts.FirstGID <= gid && (best == nil || ts.FirstGID > best.FirstGID) {
			best = ts
		}
	}
	return best, best != nil && gid > 0
}

// Zones 返回 buildable_zone 对象层中的所有区域（按对象顺序）
func (m *MapConfig) Zones() ([]ZoneDescriptor, error) {
	layer, ok := m.Layer(ZonesLayerName)
	if !ok || layer.Type != objectGroupType {
		return nil, fmt.Errorf("%w: %s", ErrMissingLayer, ZonesLayerName)
	}

	zones := make([]ZoneDescriptor, 0, len(layer.Objects))
	for _, obj := range layer.Objects {
		props := make(map[string]string, len(obj.Properties))
		for _, p := range obj.Properties {
			props[p.Name] = p.Value
		}
		zones = append(zones, ZoneDescriptor{
			Name:       obj.Name,
			X:          obj.X,
			Y:          obj.Y,
			Width:      obj.Width,
			Height:     obj.Height,
			IsTile:     obj.GID != 0,
			Properties: props,
		})
	}
	return zones, nil
}

// Footprint 区域的世界坐标矩形
func (z ZoneDescriptor) Footprint() utils.Rect {
	top := z.Y
	if z.IsTile {
		top = z.Y - z.Height
	}
	return utils.Rect{X: z.X, Y: top, W: z.Width, H: z.Height}
}

// SizeClass 解析 size 属性
func (z ZoneDescriptor) SizeClass() (int, error) {
	raw, ok := z.Properties[ZoneSizeProperty]
	if !ok {
		return 0, fmt.Errorf("zone %q at (%.0f, %.0f): %w", z.Name, z.X, z.Y, ErrMissingZoneSize)
	}
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	// Tiled 的 float 类型属性，只接受整数值
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("zone %q size %q: %w", z.Name, raw, ErrInvalidZoneSize)
	}
	return int(f), nil
}
