package entities

import (
	"fmt"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// NewPlotEntity 创建可建造地块实体
//
// 地块精灵锚定在范围的底边中点，plot 帧在整个范围内平铺显示。
//
// 参数:
//   - em: 实体管理器
//   - id: 地块唯一标识
//   - name: 地图对象名（可为空）
//   - sizeClass: 地块规格
//   - bounds: 地块范围（世界坐标）
//
// 返回:
//   - ecs.EntityID: 创建的地块实体ID
//   - error: 范围为空时返回错误
func NewPlotEntity(em *ecs.EntityManager, id, name string, sizeClass int, bounds utils.Rect) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if bounds.W <= 0 || bounds.H <= 0 {
		return 0, fmt.Errorf("plot %s has empty bounds %+v", id, bounds)
	}

	entityID := em.CreateEntity()

	anchor := bounds.BottomCenter()
	em.AddComponent(entityID, &components.PositionComponent{
		X: anchor.X,
		Y: anchor.Y,
	})

	em.AddComponent(entityID, &components.SpriteComponent{
		ImageKey: config.ImageTilesSprites,
		Frame:    config.SpriteIndexPlot,
		Width:    bounds.W,
		Height:   bounds.H,
		OriginX:  0.5,
		OriginY:  1,
		Alpha:    1,
		Tiled:    true,
		Depth:    config.DepthPlot,
	})

	em.AddComponent(entityID, &components.PlotComponent{
		ID:        id,
		Name:      name,
		SizeClass: sizeClass,
		Bounds:    bounds,
	})

	return entityID, nil
}
