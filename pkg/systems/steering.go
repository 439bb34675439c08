package systems

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// 输入阈值（摇杆向量长度或分量）
const (
	// steeringDeadzone 低于此长度不转向
	steeringDeadzone = 0.1

	// trickInputMagnitude 低于此长度的输入不计入旋转技巧
	trickInputMagnitude = 0.5

	// inputGateReopenMagnitude 摇杆回中判定，低于此长度重新开放输入
	inputGateReopenMagnitude = 0.2

	// launchTriggerY 出发判定：摇杆 Y 分量低于此值
	launchTriggerY = -0.7

	// boostInputY 上推加速判定：摇杆 Y 分量高于此值
	boostInputY = 0.2
)

var (
	axisZ     = mgl32.Vec3{0, 0, 1}
	axisRight = mgl32.Vec3{1, 0, 0}
	downward  = mgl32.Vec2{0, -1}
)

// normalizeDegrees 把角度归一化到 [0, 360)
func normalizeDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// wrapDeltaDegrees 把角度差折叠到 (-180, 180]，避免跨越 0/360 时按长边计算
func wrapDeltaDegrees(delta float32) float32 {
	for delta > 180 {
		delta -= 360
	}
	for delta <= -180 {
		delta += 360
	}
	return delta
}

// SteeringAngleDegrees 返回摇杆向量对应的朝向角 atan2(-y, -x)，范围 [0, 360)
//
// 朝向角 θ 使冲浪板沿 (-cosθ, -sinθ) 前进，即摇杆指向哪里就往哪里走。
func SteeringAngleDegrees(steering mgl32.Vec2) float32 {
	return normalizeDegrees(mgl32.RadToDeg(math32.Atan2(-steering.Y(), -steering.X())))
}

// SteeringForAngle 是 SteeringAngleDegrees 的逆运算，返回单位长度的摇杆向量
func SteeringForAngle(deg float32) mgl32.Vec2 {
	rad := mgl32.DegToRad(deg)
	return mgl32.Vec2{-math32.Cos(rad), -math32.Sin(rad)}
}

// HeadingQuat 返回绕 Z 轴旋转 deg 度的朝向
func HeadingQuat(deg float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(deg), axisZ)
}

// HeadingDegrees 返回朝向绕 Z 轴的角度，范围 [0, 360)
func HeadingDegrees(orientation mgl32.Quat) float32 {
	right := orientation.Rotate(axisRight)
	return normalizeDegrees(mgl32.RadToDeg(math32.Atan2(right.Y(), right.X())))
}

// Forward 返回冲浪板的前进方向（朝向的负 right 轴）
func Forward(orientation mgl32.Quat) mgl32.Vec3 {
	return orientation.Rotate(axisRight).Mul(-1)
}

// FacingDirection 返回前进方向在 XY 平面上的投影
func FacingDirection(orientation mgl32.Quat) mgl32.Vec2 {
	return Forward(orientation).Vec2()
}

// TurnToward 以球面插值把朝向转向目标角度
//
// amount 会被限制在 [0, 1]；amount == 1 时直接到达目标。
func TurnToward(current mgl32.Quat, targetDeg, amount float32) mgl32.Quat {
	target := HeadingQuat(targetDeg)
	amount = mgl32.Clamp(amount, 0, 1)
	if amount >= 1 {
		return target
	}

	// 走最短弧
	if current.Dot(target) < 0 {
		target = target.Scale(-1)
	}
	return mgl32.QuatSlerp(current, target, amount).Normalize()
}

// EntryAngleDegrees 返回方向向量与正下方的夹角，范围 [0, 180]
//
// 正下方为 0°，水平为 90°。零向量返回 90°（视为水平）。
func EntryAngleDegrees(direction mgl32.Vec2) float32 {
	length := direction.Len()
	if length == 0 {
		return 90
	}
	cos := mgl32.Clamp(direction.Dot(downward)/length, -1, 1)
	return mgl32.RadToDeg(math32.Acos(cos))
}

// clampSteering 把输入向量的每个分量限制在 [-1, 1]
func clampSteering(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{mgl32.Clamp(v.X(), -1, 1), mgl32.Clamp(v.Y(), -1, 1)}
}
