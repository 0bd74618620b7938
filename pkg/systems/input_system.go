package systems

import (
	"github.com/gonewx/parktycoon/pkg/utils"
)

// PointerHandler 接收世界坐标的指针输入，ParkController 实现
type PointerHandler interface {
	PointerMoved(x, y float64)
	PointerDown(x, y float64)
	ShiftDown()
}

// FrameInput 一帧的原始输入
type FrameInput struct {
	Pointer utils.InputState
	Shift   bool
}

// InputSystem 采样鼠标/触摸和键盘，转换为世界坐标后交给 PointerHandler
//
// 指针位置不变时不会重复调用 PointerMoved。
type InputSystem struct {
	handler PointerHandler
	camera  *utils.Camera

	hasLast      bool
	lastX, lastY int
}

// NewInputSystem 创建输入系统
func NewInputSystem(handler PointerHandler, camera *utils.Camera) *InputSystem {
	return &InputSystem{handler: handler, camera: camera}
}

// Update 读取本帧输入并分发
func (s *InputSystem) Update() {
	s.Handle(FrameInput{
		Pointer: utils.GetInputState(),
		Shift:   utils.IsShiftJustPressed(),
	})
}

// Handle 分发一帧输入：先移动，再按下，最后 Shift
func (s *InputSystem) Handle(in FrameInput) {
	wx, wy := float64(in.Pointer.X), float64(in.Pointer.Y)
	if s.camera != nil {
		wx, wy = s.camera.ScreenToWorld(wx, wy)
	}

	if !s.hasLast || in.Pointer.X != s.lastX || in.Pointer.Y != s.lastY {
		s.hasLast = true
		s.lastX, s.lastY = in.Pointer.X, in.Pointer.Y
		s.handler.PointerMoved(wx, wy)
	}
	if in.Pointer.JustPressed {
		s.handler.PointerDown(wx, wy)
	}
	if in.Shift {
		s.handler.ShiftDown()
	}
}
