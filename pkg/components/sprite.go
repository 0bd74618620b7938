package components

import "image/color"

// SpriteComponent 存储实体的视觉表现
//
// 图像通过资源ID（和精灵表帧索引）在渲染时解析，
// 资源缺失时渲染系统以 Width*Height 的占位矩形代替。
type SpriteComponent struct {
	ImageKey string // 资源ID，如 "tiles_sprites"
	Frame    int    // 精灵表帧索引，普通图片为 0

	// Width/Height 显示尺寸（世界坐标，未缩放、未旋转）
	Width  float64
	Height float64

	// OriginX/OriginY 锚点（0-1），0.5,0.5 为中心，0.5,1 为底边中点
	OriginX float64
	OriginY float64

	Angle float64 // 旋转角度（度）
	Scale float64 // 缩放，0 按 1 处理
	Alpha float64 // 透明度 0-1

	// Tint 着色，Tinted 为 false 时忽略
	Tint   color.RGBA
	Tinted bool

	// Tiled 为 true 时帧图像在 Width*Height 范围内平铺而不是拉伸
	Tiled bool

	Depth int // 渲染层级，越大越靠上
}

// EffectiveScale 返回实际缩放值
func (s *SpriteComponent) EffectiveScale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// SetTint 设置着色
func (s *SpriteComponent) SetTint(c color.RGBA) {
	s.Tint = c
	s.Tinted = true
}

// ClearTint 清除着色
func (s *SpriteComponent) ClearTint() {
	s.Tint = color.RGBA{}
	s.Tinted = false
}
