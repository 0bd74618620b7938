package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseStepped 阶梯缓动，将进度量化为 steps 个台阶
//
// t <= 0 返回 0，t >= 1 返回 1，其余返回 (floor(steps*t)+1)/steps。
// steps < 1 按 1 处理。
func EaseStepped(t float64, steps int) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if steps < 1 {
		steps = 1
	}
	n := float64(steps)
	return (math.Floor(n*t) + 1) / n
}

// Stepped 返回固定台阶数的阶梯缓动函数
func Stepped(steps int) EasingFunc {
	return func(t float64) float64 {
		return EaseStepped(t, steps)
	}
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
