package components

// ShakeComponent 抖动反馈
//
// 每次抖动实体从 (OriginX+OffsetX, OriginY+OffsetY) 回到原点，
// 全部结束后位置恢复到原点，组件被移除。
type ShakeComponent struct {
	OriginX, OriginY float64
	OffsetX, OffsetY float64
	CycleSeconds     float64 // 每次抖动时长
	CyclesLeft       int     // 剩余抖动次数（含当前）
	Elapsed          float64 // 当前这次抖动已经过的时间
}
