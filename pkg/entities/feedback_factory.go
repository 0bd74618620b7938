package entities

import (
	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// markerSize 选中框的显示尺寸
const markerSize = 16.0

// NewSelectionMarkerEntity 创建选中框实体
// 选中框以 (x, y) 为中心，缩放在 0.5 和 1 之间阶梯往复
func NewSelectionMarkerEntity(em *ecs.EntityManager, x, y float64, plot ecs.EntityID) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.SpriteComponent{
		ImageKey: config.ImageSelected,
		Width:    markerSize,
		Height:   markerSize,
		OriginX:  0.5,
		OriginY:  0.5,
		Alpha:    1,
		Scale:    config.MarkerStartScale,
		Depth:    config.DepthMarker,
	})
	em.AddComponent(entityID, &components.SelectionMarkerComponent{Plot: plot})
	em.AddComponent(entityID, &components.PulseComponent{
		From:     config.MarkerStartScale,
		To:       config.MarkerEndScale,
		Duration: config.MarkerPulseSeconds,
		Easing:   utils.Stepped(config.MarkerPulseSteps),
	})

	return entityID
}

// NewFloatingTextEntity 创建浮动文字实体
//
// 文字锚点在 (x+FloatingTextOffsetX, y)，显示期间阶梯上升，
// duration 秒后由 LifetimeSystem 销毁。duration <= 0 时使用默认时长。
func NewFloatingTextEntity(em *ecs.EntityManager, x, y float64, text string, duration float64) ecs.EntityID {
	if duration <= 0 {
		duration = config.FloatingTextDefaultSeconds
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: x + config.FloatingTextOffsetX,
		Y: y,
	})
	em.AddComponent(entityID, &components.FloatingTextComponent{
		Text:   text,
		StartY: y,
		Rise:   config.FloatingTextRise,
		Easing: utils.Stepped(config.FloatingTextSteps),
	})
	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: duration,
	})

	return entityID
}
