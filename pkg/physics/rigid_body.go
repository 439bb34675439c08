// Package physics 提供冲浪板使用的最小刚体模拟
//
// 只做会话需要的部分：速度积分、可开关的竖直重力、绕任意轴的朝向。
// 碰撞、角速度、阻尼均不模拟。
package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RigidBody 刚体
//
// 每个固定 tick 中，会话系统先修改速度/重力开关，随后调用 Step 积分位置。
type RigidBody struct {
	position    mgl32.Vec3
	velocity    mgl32.Vec3
	orientation mgl32.Quat
	useGravity  bool
	gravity     float32
}

// NewRigidBody 创建刚体
//
// 参数:
//   - position: 初始位置
//   - gravity: 竖直重力加速度（负值向下），仅在 useGravity 为 true 时生效
func NewRigidBody(position mgl32.Vec3, gravity float32) *RigidBody {
	return &RigidBody{
		position:    position,
		orientation: mgl32.QuatIdent(),
		gravity:     gravity,
	}
}

// Position 当前位置
func (b *RigidBody) Position() mgl32.Vec3 {
	return b.position
}

// Velocity 当前速度
func (b *RigidBody) Velocity() mgl32.Vec3 {
	return b.velocity
}

// SetVelocity 设置速度
func (b *RigidBody) SetVelocity(v mgl32.Vec3) {
	b.velocity = v
}

// UseGravity 重力是否启用
func (b *RigidBody) UseGravity() bool {
	return b.useGravity
}

// SetUseGravity 开关重力
func (b *RigidBody) SetUseGravity(enabled bool) {
	b.useGravity = enabled
}

// Orientation 当前朝向
func (b *RigidBody) Orientation() mgl32.Quat {
	return b.orientation
}

// SetOrientation 设置朝向（自动归一化）
func (b *RigidBody) SetOrientation(q mgl32.Quat) {
	b.orientation = q.Normalize()
}

// Teleport 瞬移到指定位置和朝向，并清零速度
func (b *RigidBody) Teleport(position mgl32.Vec3, orientation mgl32.Quat) {
	b.position = position
	b.orientation = orientation.Normalize()
	b.velocity = mgl32.Vec3{}
}

// Step 积分一个固定步长（半隐式欧拉：先速度后位置）
func (b *RigidBody) Step(dt float32) {
	if b.useGravity {
		b.velocity[1] += b.gravity * dt
	}
	b.position = b.position.Add(b.velocity.Mul(dt))
}
