// Package scenes 游戏场景
package scenes

import (
	"github.com/gonewx/parktycoon/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var _ game.Closer = (*ParkScene)(nil)
