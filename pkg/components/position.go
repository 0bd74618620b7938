package components

// PositionComponent 实体在世界坐标系中的位置
// 具体含义（中心点或底边中点）由 SpriteComponent 的锚点决定
type PositionComponent struct {
	X, Y float64
}
