package components

import "github.com/gonewx/parktycoon/pkg/utils"

// FloatingTextComponent 短暂显示的浮动文字
// 位置由 PositionComponent 表示，显示时长由 LifetimeComponent 控制
type FloatingTextComponent struct {
	Text   string
	StartY float64 // 初始 Y 坐标
	Rise   float64 // 整个显示期间上升的距离
	Easing utils.EasingFunc
}
