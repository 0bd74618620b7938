package utils

// Camera 描述世界坐标到屏幕坐标的映射
//
// 摄像机以 (CenterX, CenterY) 为视口中心，按 Zoom 缩放。
type Camera struct {
	CenterX, CenterY float64
	Zoom             float64
	ViewWidth        float64
	ViewHeight       float64
}

// NewCamera 创建摄像机，zoom <= 0 时按 1 处理
func NewCamera(viewWidth, viewHeight, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		Zoom:       zoom,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
	}
}

// CenterOn 将视口中心移动到世界坐标 (x, y)
func (c *Camera) CenterOn(x, y float64) {
	c.CenterX = x
	c.CenterY = y
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-c.ViewWidth/2)/c.Zoom + c.CenterX
	wy := (sy-c.ViewHeight/2)/c.Zoom + c.CenterY
	return wx, wy
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.CenterX)*c.Zoom + c.ViewWidth/2
	sy := (wy-c.CenterY)*c.Zoom + c.ViewHeight/2
	return sx, sy
}
