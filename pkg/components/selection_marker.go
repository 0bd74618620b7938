package components

import "github.com/gonewx/parktycoon/pkg/ecs"

// SelectionMarkerComponent 标记悬停地块的选中框
// 场景中最多只有一个
type SelectionMarkerComponent struct {
	// Plot 当前标记的地块实体
	Plot ecs.EntityID
}
