package systems

import (
	"image"
	"image/color"
	"log"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tiledFlipMask 去掉 Tiled 全局瓦片ID高位的翻转标记
const tiledFlipMask = 0x1FFFFFFF

// ImageSource 按资源ID提供整张图片，ResourceManager 实现
type ImageSource interface {
	GetImageByID(resourceID string) *ebiten.Image
}

// 图块集图片缺失时各图层的占位颜色
var layerPlaceholderColors = map[string]color.RGBA{
	config.BaseLayerName:  {R: 0x5b, G: 0x8c, B: 0x3a, A: 0xff},
	config.PathsLayerName: {R: 0xc8, G: 0xb0, B: 0x7a, A: 0xff},
}

// TileMapRenderSystem 绘制地图的静态瓦片层（base、paths）
//
// 瓦片层不会变化，第一次绘制时合成到一张离屏图像，之后每帧只绘制这一张。
type TileMapRenderSystem struct {
	mapConfig *config.MapConfig
	images    ImageSource // 可为 nil
	camera    *utils.Camera
	baked     *ebiten.Image
}

// NewTileMapRenderSystem 创建瓦片层渲染系统
func NewTileMapRenderSystem(m *config.MapConfig, images ImageSource, camera *utils.Camera) *TileMapRenderSystem {
	return &TileMapRenderSystem{
		mapConfig: m,
		images:    images,
		camera:    camera,
	}
}

// Draw 绘制瓦片层
func (s *TileMapRenderSystem) Draw(screen *ebiten.Image) {
	if s.baked == nil {
		s.baked = s.bake()
	}

	op := &ebiten.DrawImageOptions{}
	if s.camera != nil {
		op.GeoM.Translate(-s.camera.CenterX, -s.camera.CenterY)
		op.GeoM.Scale(s.camera.Zoom, s.camera.Zoom)
		op.GeoM.Translate(s.camera.ViewWidth/2, s.camera.ViewHeight/2)
	}
	screen.DrawImage(s.baked, op)
}

func (s *TileMapRenderSystem) bake() *ebiten.Image {
	m := s.mapConfig
	w, h := int(m.WidthInPixels()), int(m.HeightInPixels())
	target := ebiten.NewImage(w, h)

	missing := make(map[string]bool)
	for _, name := range []string{config.BaseLayerName, config.PathsLayerName} {
		layer, ok := m.Layer(name)
		if !ok || layer.Type != config.TileLayerType {
			continue
		}
		if layer.Visible != nil && !*layer.Visible {
			continue
		}

		for i, raw := range layer.Data {
			gid := raw & tiledFlipMask
			if gid == 0 || layer.Width <= 0 {
				continue
			}
			x := float64((i % layer.Width) * m.TileWidth)
			y := float64((i / layer.Width) * m.TileHeight)

			tile := s.tileImage(gid, missing)
			if tile == nil {
				vector.FillRect(target, float32(x), float32(y),
					float32(m.TileWidth), float32(m.TileHeight), layerPlaceholderColors[name], false)
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			target.DrawImage(tile, op)
		}
	}

	for key := range missing {
		log.Printf("[TileMapRenderSystem] Warning: tileset image %s not loaded, using placeholder", key)
	}
	return target
}

// tileImage 返回 gid 对应的瓦片图像，图块集图片未加载时返回 nil
func (s *TileMapRenderSystem) tileImage(gid int, missing map[string]bool) *ebiten.Image {
	ts, ok := s.mapConfig.TilesetFor(gid)
	if !ok || s.images == nil {
		return nil
	}
	key, ok := config.TilesetImageKeys[ts.Name]
	if !ok {
		key = ts.Name
	}
	sheet := s.images.GetImageByID(key)
	if sheet == nil {
		missing[key] = true
		return nil
	}

	rect, ok := TileSourceRect(ts, gid, s.mapConfig.TileWidth, s.mapConfig.TileHeight)
	if !ok || !rect.In(sheet.Bounds()) {
		return nil
	}
	return sheet.SubImage(rect).(*ebiten.Image)
}

// TileSourceRect 计算 gid 在图块集图片中的区域
// 图块集未声明瓦片尺寸时使用地图的格子尺寸
func TileSourceRect(ts *config.TilesetConfig, gid, mapTileW, mapTileH int) (image.Rectangle, bool) {
	local := gid - ts.FirstGID
	if local < 0 || (ts.TileCount > 0 && local >= ts.TileCount) {
		return image.Rectangle{}, false
	}

	tw, th := ts.TileWidth, ts.TileHeight
	if tw <= 0 || th <= 0 {
		tw, th = mapTileW, mapTileH
	}
	columns := ts.Columns
	if columns <= 0 && ts.ImageWidth > 0 {
		columns = ts.ImageWidth / tw
	}
	if columns <= 0 {
		return image.Rectangle{}, false
	}

	x := (local % columns) * tw
	y := (local / columns) * th
	return image.Rect(x, y, x+tw, y+th), true
}
