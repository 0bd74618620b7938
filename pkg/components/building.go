package components

import (
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
)

// BuildingDisplayState 建筑的显示状态
type BuildingDisplayState int

const (
	// DisplayNormal 已购买建筑的正常显示
	DisplayNormal BuildingDisplayState = iota
	// DisplayPreviewValid 预览位于某个地块内（绿色）
	DisplayPreviewValid
	// DisplayPreviewInvalid 预览不在任何地块内（红色）
	DisplayPreviewInvalid
)

func (s BuildingDisplayState) String() string {
	switch s {
	case DisplayNormal:
		return "normal"
	case DisplayPreviewValid:
		return "preview_valid"
	case DisplayPreviewInvalid:
		return "preview_invalid"
	default:
		return "unknown"
	}
}

// BuildingComponent 建筑（放置预览或已购买的建筑）
//
// 预览建筑的 Committed 为 false、ID 为空；
// 购买确认后 Commit 写入存储分配的 ID。
type BuildingComponent struct {
	ID   string // 已购买建筑的 ID，预览为空
	Type string
	Spec config.BuildingSpec

	Rotation     int // 0 或 90
	DisplayState BuildingDisplayState

	Committed bool
	Destroyed bool

	// Plot 已购买建筑所在地块实体，0 表示无
	Plot ecs.EntityID
}
