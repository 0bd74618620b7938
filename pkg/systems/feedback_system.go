package systems

import (
	"math/rand/v2"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/entities"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// SoundPlayer 按资源ID播放音效
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// FeedbackSystem 选中框、浮动文字和抖动等短暂视觉反馈
type FeedbackSystem struct {
	entityManager *ecs.EntityManager
	sounds        SoundPlayer // 可为 nil
	marker        ecs.EntityID
	randInt       func(n int) int // [0, n)
}

// NewFeedbackSystem 创建反馈系统，sounds 可为 nil
func NewFeedbackSystem(em *ecs.EntityManager, sounds SoundPlayer) *FeedbackSystem {
	return &FeedbackSystem{
		entityManager: em,
		sounds:        sounds,
		randInt:       rand.IntN,
	}
}

// SetRandomSource 替换抖动偏移的随机源（测试用）
func (s *FeedbackSystem) SetRandomSource(randInt func(n int) int) {
	s.randInt = randInt
}

// Marker 返回选中框实体，尚未创建时返回 false
func (s *FeedbackSystem) Marker() (ecs.EntityID, bool) {
	if s.marker == 0 || !s.entityManager.IsAlive(s.marker) {
		return 0, false
	}
	return s.marker, true
}

// ShowSelectionMarker 将选中框移动到 p 并播放提示音
// 第一次调用时创建选中框，之后只移动
func (s *FeedbackSystem) ShowSelectionMarker(p utils.Point, plot ecs.EntityID) ecs.EntityID {
	if _, ok := s.Marker(); !ok {
		s.marker = entities.NewSelectionMarkerEntity(s.entityManager, p.X, p.Y, plot)
	} else {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.marker); ok {
			pos.X = p.X
			pos.Y = p.Y
		}
		if marker, ok := ecs.GetComponent[*components.SelectionMarkerComponent](s.entityManager, s.marker); ok {
			marker.Plot = plot
		}
	}
	s.play(config.SoundStep)
	return s.marker
}

// ShowFloatingText 在 (x, y) 显示浮动文字，duration <= 0 时使用默认 1.5 秒
func (s *FeedbackSystem) ShowFloatingText(x, y float64, text string, duration float64) ecs.EntityID {
	return entities.NewFloatingTextEntity(s.entityManager, x, y, text, duration)
}

// Shake 播放错误音效并让实体短暂抖动
// 实体正在抖动时重新开始计数，原点不变
func (s *FeedbackSystem) Shake(id ecs.EntityID) {
	s.play(config.SoundError)

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	originX, originY := pos.X, pos.Y
	if shake, ok := ecs.GetComponent[*components.ShakeComponent](s.entityManager, id); ok {
		originX, originY = shake.OriginX, shake.OriginY
	}

	span := 2*config.ShakeMaxOffset + 1
	shake := &components.ShakeComponent{
		OriginX:      originX,
		OriginY:      originY,
		OffsetX:      float64(s.randInt(span) - config.ShakeMaxOffset),
		OffsetY:      float64(s.randInt(span) - config.ShakeMaxOffset),
		CycleSeconds: config.ShakeCycleSeconds,
		CyclesLeft:   1 + config.ShakeRepeats,
	}
	ecs.AddComponent(s.entityManager, id, shake)

	pos.X = originX + shake.OffsetX
	pos.Y = originY + shake.OffsetY
}

// Update 推进选中框脉冲、浮动文字上升和抖动
func (s *FeedbackSystem) Update(deltaTime float64) {
	s.updatePulses(deltaTime)
	s.updateFloatingTexts()
	s.updateShakes(deltaTime)
}

func (s *FeedbackSystem) updatePulses(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PulseComponent, *components.SpriteComponent](s.entityManager) {
		pulse, _ := ecs.GetComponent[*components.PulseComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if pulse.Duration <= 0 {
			continue
		}

		pulse.Elapsed += deltaTime
		for pulse.Elapsed >= pulse.Duration {
			pulse.Elapsed -= pulse.Duration
			pulse.Reverse = !pulse.Reverse
		}

		t := pulse.Elapsed / pulse.Duration
		if pulse.Easing != nil {
			t = pulse.Easing(t)
		}
		if pulse.Reverse {
			sprite.Scale = utils.Lerp(pulse.To, pulse.From, t)
		} else {
			sprite.Scale = utils.Lerp(pulse.From, pulse.To, t)
		}
	}
}

// updateFloatingTexts 位置由生命进度决定，销毁交给 LifetimeSystem
func (s *FeedbackSystem) updateFloatingTexts() {
	ids := ecs.GetEntitiesWith3[
		*components.FloatingTextComponent,
		*components.LifetimeComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range ids {
		text, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		t := lifetime.Progress()
		if text.Easing != nil {
			t = text.Easing(t)
		}
		pos.Y = text.StartY - text.Rise*t
	}
}

func (s *FeedbackSystem) updateShakes(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ShakeComponent, *components.PositionComponent](s.entityManager) {
		shake, _ := ecs.GetComponent[*components.ShakeComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		shake.Elapsed += deltaTime
		for shake.Elapsed >= shake.CycleSeconds && shake.CyclesLeft > 0 {
			shake.Elapsed -= shake.CycleSeconds
			shake.CyclesLeft--
		}

		if shake.CyclesLeft <= 0 || shake.CycleSeconds <= 0 {
			pos.X = shake.OriginX
			pos.Y = shake.OriginY
			ecs.RemoveComponent[*components.ShakeComponent](s.entityManager, id)
			continue
		}

		remaining := 1 - shake.Elapsed/shake.CycleSeconds
		pos.X = shake.OriginX + shake.OffsetX*remaining
		pos.Y = shake.OriginY + shake.OffsetY*remaining
	}
}

func (s *FeedbackSystem) play(soundID string) {
	if s.sounds != nil {
		s.sounds.PlaySound(soundID)
	}
}
