package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// dragRadius 触摸/鼠标拖拽推满摇杆所需的像素距离
const dragRadius = 80

// EbitenSource 从 ebiten 读取键盘、手柄、触摸和鼠标拖拽
//
// 优先级：拖拽 > 手柄 > 键盘。每个 tick 开始时调用一次 Poll。
type EbitenSource struct {
	steering mgl32.Vec2

	// 拖拽状态（触摸或鼠标左键）
	dragging    bool
	touchID     ebiten.TouchID
	usingTouch  bool
	dragOriginX int
	dragOriginY int

	gamepadIDs []ebiten.GamepadID
}

// NewEbitenSource 创建输入源
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll 采样本 tick 的输入
func (s *EbitenSource) Poll() {
	if v, ok := s.pollDrag(); ok {
		s.steering = v
		return
	}
	if v, ok := s.pollGamepad(); ok {
		s.steering = v
		return
	}
	s.steering = s.pollKeyboard()
}

// Steering 返回最近一次 Poll 的结果
func (s *EbitenSource) Steering() mgl32.Vec2 {
	return s.steering
}

// DragOrigin 返回虚拟摇杆中心（拖拽起点）
//
// 返回：
//   - x, y: 屏幕坐标
//   - ok: 当前是否正在拖拽
func (s *EbitenSource) DragOrigin() (x, y int, ok bool) {
	return s.dragOriginX, s.dragOriginY, s.dragging
}

func (s *EbitenSource) pollKeyboard() mgl32.Vec2 {
	return DirectionVector(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	)
}

// pollGamepad 读取第一个提供标准布局且摇杆离开死区的手柄
func (s *EbitenSource) pollGamepad() (mgl32.Vec2, bool) {
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	for _, id := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := GamepadVector(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		if v.Len() > 0 {
			return v, true
		}
	}
	return mgl32.Vec2{}, false
}

// pollDrag 以按下位置为中心的虚拟摇杆
func (s *EbitenSource) pollDrag() (mgl32.Vec2, bool) {
	if !s.dragging {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			s.dragging = true
			s.usingTouch = true
			s.touchID = ids[0]
			s.dragOriginX, s.dragOriginY = ebiten.TouchPosition(s.touchID)
		} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			s.dragging = true
			s.usingTouch = false
			s.dragOriginX, s.dragOriginY = ebiten.CursorPosition()
		} else {
			return mgl32.Vec2{}, false
		}
	}

	var x, y int
	if s.usingTouch {
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.dragging = false
			return mgl32.Vec2{}, false
		}
		x, y = ebiten.TouchPosition(s.touchID)
	} else {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			s.dragging = false
			return mgl32.Vec2{}, false
		}
		x, y = ebiten.CursorPosition()
	}

	return DragVector(s.dragOriginX, s.dragOriginY, x, y, dragRadius), true
}
