package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// TerminalSource 终端按键输入源
//
// 终端只上报按下（含自动重复），不上报松开：方向在最后一次按键后保持
// holdTicks 个 tick，随后回中。
type TerminalSource struct {
	direction mgl32.Vec2
	holdTicks int
	remaining int
}

// NewTerminalSource 创建终端输入源
//
// 参数：
//   - holdTicks: 一次按键保持的 tick 数，应略长于终端的按键重复间隔
func NewTerminalSource(holdTicks int) *TerminalSource {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &TerminalSource{holdTicks: holdTicks}
}

// HandleKey 处理一次按键事件
//
// 返回 true 表示按键被用作方向输入（方向键、WASD、空格回中）。
func (s *TerminalSource) HandleKey(ev *tcell.EventKey) bool {
	var dir mgl32.Vec2
	switch ev.Key() {
	case tcell.KeyLeft:
		dir = mgl32.Vec2{-1, 0}
	case tcell.KeyRight:
		dir = mgl32.Vec2{1, 0}
	case tcell.KeyUp:
		dir = mgl32.Vec2{0, 1}
	case tcell.KeyDown:
		dir = mgl32.Vec2{0, -1}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			dir = mgl32.Vec2{-1, 0}
		case 'd', 'D':
			dir = mgl32.Vec2{1, 0}
		case 'w', 'W':
			dir = mgl32.Vec2{0, 1}
		case 's', 'S':
			dir = mgl32.Vec2{0, -1}
		case ' ':
			s.Center()
			return true
		default:
			return false
		}
	default:
		return false
	}

	s.Press(dir)
	return true
}

// Press 设置方向并重置保持计时
func (s *TerminalSource) Press(direction mgl32.Vec2) {
	s.direction = ClampToUnit(direction)
	s.remaining = s.holdTicks
}

// Center 立即回中
func (s *TerminalSource) Center() {
	s.direction = mgl32.Vec2{}
	s.remaining = 0
}

// Advance 每个 tick 结束时调用，保持时间耗尽后回中
func (s *TerminalSource) Advance() {
	if s.remaining == 0 {
		return
	}
	s.remaining--
	if s.remaining == 0 {
		s.direction = mgl32.Vec2{}
	}
}

// Steering 当前方向
func (s *TerminalSource) Steering() mgl32.Vec2 {
	return s.direction
}
