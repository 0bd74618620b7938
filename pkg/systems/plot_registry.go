package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/entities"
	"github.com/google/uuid"
)

// PlotRegistry 管理场景中的可建造地块
//
// 地块在 Initialize 时一次性创建，之后只修改占用状态。
// Plots() 按注册顺序返回，FindContainingPlot 依赖该顺序决定优先级。
type PlotRegistry struct {
	entityManager *ecs.EntityManager
	plots         []ecs.EntityID
	byID          map[string]ecs.EntityID
	newID         func() string
}

// NewPlotRegistry 创建地块注册表
func NewPlotRegistry(em *ecs.EntityManager) *PlotRegistry {
	return &PlotRegistry{
		entityManager: em,
		byID:          make(map[string]ecs.EntityID),
		newID:         uuid.NewString,
	}
}

// SetIDGenerator 替换地块 ID 生成器（测试用）
func (r *PlotRegistry) SetIDGenerator(gen func() string) {
	r.newID = gen
}

// Initialize 根据地图的可建造区域创建地块
//
// 任何区域缺少或无法解析 size 属性都视为地图数据错误，
// 此时不会创建任何地块。
func (r *PlotRegistry) Initialize(zones []config.ZoneDescriptor) ([]ecs.EntityID, error) {
	if len(r.plots) > 0 {
		return nil, fmt.Errorf("plot registry already initialized with %d plots", len(r.plots))
	}

	sizes := make([]int, len(zones))
	for i, zone := range zones {
		size, err := zone.SizeClass()
		if err != nil {
			return nil, fmt.Errorf("plot registry: %w", err)
		}
		sizes[i] = size
	}

	created := make([]ecs.EntityID, 0, len(zones))
	for i, zone := range zones {
		id := r.newID()
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("duplicate plot id %s", id)
		}

		entity, err := entities.NewPlotEntity(r.entityManager, id, zone.Name, sizes[i], zone.Footprint())
		if err != nil {
			return nil, fmt.Errorf("zone %d (%q): %w", i, zone.Name, err)
		}
		r.plots = append(r.plots, entity)
		r.byID[id] = entity
		created = append(created, entity)
	}

	log.Printf("[PlotRegistry] Registered %d plots", len(created))
	return created, nil
}

// Plots 返回所有地块实体（注册顺序）
func (r *PlotRegistry) Plots() []ecs.EntityID {
	return append([]ecs.EntityID(nil), r.plots...)
}

// Len 地块数量
func (r *PlotRegistry) Len() int {
	return len(r.plots)
}

// Plot 获取地块组件
func (r *PlotRegistry) Plot(entity ecs.EntityID) (*components.PlotComponent, bool) {
	return ecs.GetComponent[*components.PlotComponent](r.entityManager, entity)
}

// PlotAt 返回包含世界坐标 (x, y) 的第一个地块
func (r *PlotRegistry) PlotAt(x, y float64) (ecs.EntityID, bool) {
	for _, entity := range r.plots {
		plot, ok := r.Plot(entity)
		if ok && plot.Bounds.ContainsPoint(x, y) {
			return entity, true
		}
	}
	return 0, false
}

// PlotByID 按地块 ID 查找
func (r *PlotRegistry) PlotByID(id string) (ecs.EntityID, bool) {
	entity, ok := r.byID[id]
	return entity, ok
}

// SetOccupant 记录占用地块的建筑
func (r *PlotRegistry) SetOccupant(plotEntity, building ecs.EntityID) bool {
	plot, ok := r.Plot(plotEntity)
	if !ok {
		return false
	}
	plot.Occupant = building
	return true
}

// ClearOccupant 清除地块占用
func (r *PlotRegistry) ClearOccupant(plotEntity ecs.EntityID) {
	if plot, ok := r.Plot(plotEntity); ok {
		plot.Occupant = 0
	}
}
