package components

import "github.com/gonewx/parktycoon/pkg/utils"

// PulseComponent 在 From 和 To 之间往复变化精灵缩放
type PulseComponent struct {
	From, To float64
	Duration float64 // 单程时长（秒）
	Elapsed  float64
	Reverse  bool // 当前处于回程
	Easing   utils.EasingFunc
}
