package components

import (
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// PlotComponent 可建造地块
//
// 地块在场景初始化时根据地图的 buildable_zone 对象层创建，场景存续期间不销毁。
type PlotComponent struct {
	// ID 地块唯一标识（uuid），创建后不变
	ID string

	// Name 地图中的对象名（可为空，仅用于日志）
	Name string

	// SizeClass 地块规格，来自地图对象的 size 属性
	SizeClass int

	// Bounds 地块范围（世界坐标）
	Bounds utils.Rect

	// Occupant 占用地块的已购买建筑实体，0 表示空闲
	Occupant ecs.EntityID
}

// IsOccupied 地块是否已被占用
func (p *PlotComponent) IsOccupied() bool {
	return p.Occupant != 0
}
