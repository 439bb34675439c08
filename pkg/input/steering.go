// Package input 把键盘、手柄、触摸和终端按键转换为摇杆向量
//
// 所有输入源都实现 Steering() mgl32.Vec2，返回值位于单位圆内，
// X 向右为正，Y 向上为正。
package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Source 每个 tick 提供一个摇杆向量
type Source interface {
	Steering() mgl32.Vec2
}

// gamepadDeadzone 手柄摇杆漂移阈值
const gamepadDeadzone = 0.15

// DirectionVector 把四个方向键的状态合成为单位向量
//
// 相反方向同时按下时互相抵消；斜向时长度仍为 1。
func DirectionVector(left, right, up, down bool) mgl32.Vec2 {
	var v mgl32.Vec2
	if left {
		v[0]--
	}
	if right {
		v[0]++
	}
	if up {
		v[1]++
	}
	if down {
		v[1]--
	}
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// ApplyDeadzone 长度不超过 deadzone 的向量视为零
func ApplyDeadzone(v mgl32.Vec2, deadzone float32) mgl32.Vec2 {
	if v.Len() <= deadzone {
		return mgl32.Vec2{}
	}
	return v
}

// ClampToUnit 把向量长度限制在 1 以内，方向不变
func ClampToUnit(v mgl32.Vec2) mgl32.Vec2 {
	if v.Len() > 1 {
		return v.Normalize()
	}
	return v
}

// DragVector 把屏幕上的拖拽转换为摇杆向量
//
// 参数：
//   - originX, originY: 按下时的屏幕坐标
//   - x, y: 当前屏幕坐标（Y 向下）
//   - radius: 拖拽多少像素视为推满
func DragVector(originX, originY, x, y int, radius float32) mgl32.Vec2 {
	if radius <= 0 {
		return mgl32.Vec2{}
	}
	v := mgl32.Vec2{
		float32(x-originX) / radius,
		float32(originY-y) / radius,
	}
	return ClampToUnit(v)
}

// GamepadVector 把手柄标准布局的左摇杆读数转换为摇杆向量
//
// 手柄的竖直轴向下为正，这里翻转为向上为正。
func GamepadVector(horizontal, vertical float64) mgl32.Vec2 {
	v := mgl32.Vec2{float32(horizontal), float32(-vertical)}
	return ClampToUnit(ApplyDeadzone(v, gamepadDeadzone))
}
