package systems

import (
	"image"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FrameSource 按资源ID和帧索引提供图像，ResourceManager 实现
type FrameSource interface {
	GetSpriteFrame(resourceID string, frame int) *ebiten.Image
}

// placeholderColor 资源缺失时占位矩形的颜色
var placeholderColor = color.RGBA{R: 0x9a, G: 0x7b, B: 0x4f, A: 0xff}

// RenderSystem 绘制公园世界中的精灵和浮动文字
//
// 所有实体使用世界坐标，通过摄像机变换到屏幕。
// 绘制顺序：Depth 升序，同层按创建顺序；浮动文字始终在最上层。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	frames        FrameSource // 可为 nil，此时全部使用占位矩形
	camera        *utils.Camera
	textFace      *text.GoTextFace
	pixel         *ebiten.Image // 1x1 白色像素，首次绘制时创建
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, frames FrameSource, camera *utils.Camera, textFace *text.GoTextFace) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		frames:        frames,
		camera:        camera,
		textFace:      textFace,
	}
}

// Draw 绘制全部精灵和浮动文字
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		s.drawSprite(screen, id)
	}
	s.drawFloatingTexts(screen)
}

// drawOrder 返回按 Depth 排序的精灵实体
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)
	depth := make(map[ecs.EntityID]int, len(ids))
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		depth[id] = sprite.Depth
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return depth[ids[i]] < depth[ids[j]]
	})
	return ids
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite.Alpha <= 0 {
		return
	}

	var img *ebiten.Image
	if s.frames != nil && sprite.ImageKey != "" {
		img = s.frames.GetSpriteFrame(sprite.ImageKey, sprite.Frame)
	}

	if img != nil && sprite.Tiled {
		s.drawTiled(screen, img, pos, sprite)
		return
	}

	tint := sprite.Tint
	if img == nil {
		img = s.whitePixel()
		if !sprite.Tinted {
			tint = placeholderColor
		}
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(pos, sprite, float64(b.Dx()), float64(b.Dy()))
	s.applyCamera(&op.GeoM)
	applySpriteColor(&op.ColorScale, sprite, tint, img == s.pixel)
	screen.DrawImage(img, op)
}

// drawTiled 在精灵范围内平铺帧图像（地块），不支持旋转
func (s *RenderSystem) drawTiled(screen *ebiten.Image, img *ebiten.Image, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	b := img.Bounds()
	tw, th := float64(b.Dx()), float64(b.Dy())
	if tw <= 0 || th <= 0 {
		return
	}

	left := pos.X - sprite.OriginX*sprite.Width
	top := pos.Y - sprite.OriginY*sprite.Height

	for y := 0.0; y < sprite.Height; y += th {
		for x := 0.0; x < sprite.Width; x += tw {
			w := math.Min(tw, sprite.Width-x)
			h := math.Min(th, sprite.Height-y)
			tile := img
			if w < tw || h < th {
				tile = img.SubImage(image.Rect(
					b.Min.X, b.Min.Y, b.Min.X+int(math.Ceil(w)), b.Min.Y+int(math.Ceil(h)),
				)).(*ebiten.Image)
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(left+x, top+y)
			s.applyCamera(&op.GeoM)
			applySpriteColor(&op.ColorScale, sprite, sprite.Tint, false)
			screen.DrawImage(tile, op)
		}
	}
}

// spriteGeoM 计算精灵的世界变换：缩放到显示尺寸，绕锚点旋转，平移到位置
func spriteGeoM(pos *components.PositionComponent, sprite *components.SpriteComponent, imgW, imgH float64) ebiten.GeoM {
	var geo ebiten.GeoM
	if imgW <= 0 || imgH <= 0 {
		return geo
	}

	w, h := sprite.Width, sprite.Height
	if w <= 0 || h <= 0 {
		w, h = imgW, imgH
	}

	geo.Scale(w/imgW, h/imgH)
	geo.Translate(-sprite.OriginX*w, -sprite.OriginY*h)
	if scale := sprite.EffectiveScale(); scale != 1 {
		geo.Scale(scale, scale)
	}
	if sprite.Angle != 0 {
		geo.Rotate(sprite.Angle * math.Pi / 180)
	}
	geo.Translate(pos.X, pos.Y)
	return geo
}

func applySpriteColor(cs *ebiten.ColorScale, sprite *components.SpriteComponent, tint color.RGBA, placeholder bool) {
	if sprite.Tinted || placeholder {
		cs.ScaleWithColor(tint)
	}
	cs.ScaleAlpha(float32(sprite.Alpha))
}

// applyCamera 追加世界 → 屏幕变换
func (s *RenderSystem) applyCamera(geo *ebiten.GeoM) {
	if s.camera == nil {
		return
	}
	geo.Translate(-s.camera.CenterX, -s.camera.CenterY)
	geo.Scale(s.camera.Zoom, s.camera.Zoom)
	geo.Translate(s.camera.ViewWidth/2, s.camera.ViewHeight/2)
}

func (s *RenderSystem) whitePixel() *ebiten.Image {
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}
	return s.pixel
}

// drawFloatingTexts 白色文字加黑色描边，按换行宽度折行
func (s *RenderSystem) drawFloatingTexts(screen *ebiten.Image) {
	if s.textFace == nil {
		return
	}

	ids := ecs.GetEntitiesWith2[*components.FloatingTextComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		lineHeight := s.textFace.Size * 1.2
		for i, line := range WrapText(ft.Text, s.textFace, config.FloatingTextWrapWidth) {
			s.drawStrokedText(screen, line, pos.X, pos.Y+float64(i)*lineHeight)
		}
	}
}

var strokeDirections = [...]struct{ dx, dy float64 }{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (s *RenderSystem) drawStrokedText(screen *ebiten.Image, str string, x, y float64) {
	stroke := config.FloatingTextStroke / 2
	for _, d := range strokeDirections {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+d.dx*stroke, y+d.dy*stroke)
		s.applyCamera(&op.GeoM)
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, str, s.textFace, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	s.applyCamera(&op.GeoM)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, str, s.textFace, op)
}

// WrapText 按单词折行，使每行宽度不超过 width（单个过长的单词独占一行）
func WrapText(str string, face text.Face, width float64) []string {
	words := strings.Fields(str)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 1)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if w, _ := text.Measure(candidate, face, 0); w > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
