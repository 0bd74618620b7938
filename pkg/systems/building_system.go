package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/entities"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// BuildingSystem 操作建筑实体（放置预览和已购买建筑）
//
// 对不存在的实体调用 SetRotation 以外的方法会被忽略，
// 非法旋转角度和重复销毁属于编程错误，直接 panic。
type BuildingSystem struct {
	entityManager *ecs.EntityManager
}

// NewBuildingSystem 创建建筑系统
func NewBuildingSystem(em *ecs.EntityManager) *BuildingSystem {
	return &BuildingSystem{entityManager: em}
}

// Spawn 在 (centerX, centerY) 创建放置预览
func (s *BuildingSystem) Spawn(centerX, centerY float64, spec config.BuildingSpec) ecs.EntityID {
	return entities.NewBuildingEntity(s.entityManager, centerX, centerY, spec)
}

// Building 获取建筑组件
func (s *BuildingSystem) Building(id ecs.EntityID) (*components.BuildingComponent, bool) {
	return ecs.GetComponent[*components.BuildingComponent](s.entityManager, id)
}

// Position 返回建筑中心点
func (s *BuildingSystem) Position(id ecs.EntityID) (utils.Point, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return utils.Point{}, false
	}
	return utils.Point{X: pos.X, Y: pos.Y}, true
}

// SetPosition 移动建筑中心点，同时结束正在进行的抖动
func (s *BuildingSystem) SetPosition(id ecs.EntityID, x, y float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	ecs.RemoveComponent[*components.ShakeComponent](s.entityManager, id)
	pos.X = x
	pos.Y = y
}

// SetRotation 设置旋转角度，只接受 0 和 90
func (s *BuildingSystem) SetRotation(id ecs.EntityID, rotation int) {
	if rotation != 0 && rotation != 90 {
		panic(fmt.Sprintf("building %d: unsupported rotation %d", id, rotation))
	}
	building, ok := s.Building(id)
	if !ok {
		return
	}
	building.Rotation = rotation
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Angle = float64(rotation)
	}
}

// ToggleRotation 在 0 和 90 度之间切换，返回新角度
func (s *BuildingSystem) ToggleRotation(id ecs.EntityID) int {
	building, ok := s.Building(id)
	if !ok {
		return 0
	}
	next := 90
	if building.Rotation == 90 {
		next = 0
	}
	s.SetRotation(id, next)
	return next
}

// SetPreviewState 设置预览着色：可放置为绿色，否则为红色
func (s *BuildingSystem) SetPreviewState(id ecs.EntityID, valid bool) {
	building, ok := s.Building(id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return
	}
	if valid {
		building.DisplayState = components.DisplayPreviewValid
		sprite.SetTint(config.PreviewValidTint)
	} else {
		building.DisplayState = components.DisplayPreviewInvalid
		sprite.SetTint(config.PreviewInvalidTint)
	}
}

// ClearPreviewVisual 清除预览着色并恢复不透明
func (s *BuildingSystem) ClearPreviewVisual(id ecs.EntityID) {
	building, ok := s.Building(id)
	if !ok {
		return
	}
	building.DisplayState = components.DisplayNormal
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.ClearTint()
		sprite.Alpha = 1
	}
}

// RestorePreviewVisual 恢复半透明预览显示（购买被拒绝后继续放置）
func (s *BuildingSystem) RestorePreviewVisual(id ecs.EntityID, valid bool) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Alpha = config.PreviewAlpha
	}
	s.SetPreviewState(id, valid)
}

// Commit 将预览转为已购买建筑
func (s *BuildingSystem) Commit(id ecs.EntityID, committedID string, plot ecs.EntityID) {
	building, ok := s.Building(id)
	if !ok {
		return
	}
	s.ClearPreviewVisual(id)
	building.ID = committedID
	building.Committed = true
	building.Plot = plot
	log.Printf("[BuildingSystem] Committed %s as %s (entity %d, plot %d)", building.Type, committedID, id, plot)
}

// Destroy 销毁建筑实体，重复销毁 panic
func (s *BuildingSystem) Destroy(id ecs.EntityID) {
	building, ok := s.Building(id)
	if !ok {
		panic(fmt.Sprintf("destroy of unknown building entity %d", id))
	}
	if building.Destroyed {
		panic(fmt.Sprintf("building %d destroyed twice", id))
	}
	building.Destroyed = true
	s.entityManager.DestroyEntity(id)
}

// Bounds 返回建筑当前的轴对齐包围盒（90 度时宽高互换）
func (s *BuildingSystem) Bounds(id ecs.EntityID) (utils.Rect, bool) {
	building, ok := s.Building(id)
	if !ok {
		return utils.Rect{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.RotatedBounds(pos.X, pos.Y, building.Spec.Width, building.Spec.Height, building.Rotation), true
}

// BuildingAt 返回包含 (x, y) 的第一个已购买建筑
func (s *BuildingSystem) BuildingAt(x, y float64) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.BuildingComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		building, _ := s.Building(id)
		if !building.Committed || building.Destroyed {
			continue
		}
		if bounds, ok := s.Bounds(id); ok && bounds.ContainsPoint(x, y) {
			return id, true
		}
	}
	return 0, false
}
