package entities

import (
	"log"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
)

// NewBuildingEntity 创建放置预览建筑实体
//
// 预览以 (centerX, centerY) 为中心，初始为不可放置状态（红色），透明度 0.3。
// 购买确认后由 BuildingSystem.Commit 转为正式建筑。
func NewBuildingEntity(em *ecs.EntityManager, centerX, centerY float64, spec config.BuildingSpec) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: centerX,
		Y: centerY,
	})

	sprite := &components.SpriteComponent{
		ImageKey: config.ImageTilesSprites,
		Frame:    spec.Frame,
		Width:    spec.Width,
		Height:   spec.Height,
		OriginX:  0.5,
		OriginY:  0.5,
		Alpha:    config.PreviewAlpha,
		Depth:    config.DepthBuilding,
	}
	sprite.SetTint(config.PreviewInvalidTint)
	em.AddComponent(entityID, sprite)

	em.AddComponent(entityID, &components.BuildingComponent{
		Type:         spec.Type,
		Spec:         spec,
		DisplayState: components.DisplayPreviewInvalid,
	})

	log.Printf("[BuildingFactory] Created preview %s (ID: %d) at (%.1f, %.1f)",
		spec.Type, entityID, centerX, centerY)

	return entityID
}
