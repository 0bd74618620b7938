package systems

import (
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// FindContainingPlot 返回完全包含 bounds 的第一个地块（注册顺序）
//
// 不按重叠面积排序，也不考虑地块是否已被占用。
func FindContainingPlot(registry *PlotRegistry, bounds utils.Rect) (ecs.EntityID, bool) {
	for _, entity := range registry.plots {
		plot, ok := registry.Plot(entity)
		if !ok {
			continue
		}
		if utils.ContainsRect(plot.Bounds, bounds) {
			return entity, true
		}
	}
	return 0, false
}
