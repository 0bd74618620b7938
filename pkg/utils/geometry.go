package utils

// Point 二维点（世界坐标）
type Point struct {
	X, Y float64
}

// Rect 轴对齐矩形，X/Y 为左上角
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRectFromCenter 以中心点和尺寸构造矩形
func NewRectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center 返回中心点
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// BottomCenter 返回底边中点
func (r Rect) BottomCenter() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H}
}

// ContainsPoint 检查点是否在矩形内（含边界）
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ContainsRect 检查 inner 是否完全位于 outer 内（含边界）
//
// 等价于 inner 的四个角都在 outer 内。
// 零尺寸矩形与所有矩形互不包含。
func ContainsRect(outer, inner Rect) bool {
	if outer.W <= 0 || outer.H <= 0 || inner.W <= 0 || inner.H <= 0 {
		return false
	}
	return inner.X >= outer.X &&
		inner.Y >= outer.Y &&
		inner.Right() <= outer.Right() &&
		inner.Bottom() <= outer.Bottom()
}

// RotatedBounds 计算以 (cx, cy) 为中心、尺寸 w*h 的精灵在给定旋转角度下的轴对齐包围盒
//
// 只支持 0 和 90 度；90 度时宽高互换。
func RotatedBounds(cx, cy, w, h float64, rotation int) Rect {
	if rotation == 90 {
		w, h = h, w
	}
	return NewRectFromCenter(cx, cy, w, h)
}
