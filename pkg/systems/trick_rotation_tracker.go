package systems

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gonewx/wavesurf/pkg/components"
)

// TrickRotationTracker 空中旋转技巧追踪器
//
// 起跳时 Start，腾空期间每个 tick Sample，入水时 Stop 取回累计角度。
// 累计的是角行程（每次变化量的绝对值之和），来回摆动同样计数。
type TrickRotationTracker struct {
	state components.TrickState
}

// NewTrickRotationTracker 创建处于 Idle 状态的追踪器
func NewTrickRotationTracker() *TrickRotationTracker {
	return &TrickRotationTracker{}
}

// Start 进入 Tracking 状态并清空上一次跳跃的数据
func (t *TrickRotationTracker) Start() {
	t.state = components.TrickState{Phase: components.TrickTracking}
}

// Sample 采样一次摇杆方向
//
// 仅在 Tracking 状态且摇杆长度超过 0.5 时生效。
// 第一次有效采样只建立基准角，之后每次累加折叠到 (-180, 180] 的角度差的绝对值。
func (t *TrickRotationTracker) Sample(steering mgl32.Vec2) {
	if t.state.Phase != components.TrickTracking || steering.Len() <= trickInputMagnitude {
		return
	}

	angle := SteeringAngleDegrees(steering)
	if !t.state.HasBaseline {
		t.state.LastAngleDegrees = angle
		t.state.HasBaseline = true
		return
	}

	delta := wrapDeltaDegrees(angle - t.state.LastAngleDegrees)
	t.state.TotalRotationDegrees += math32.Abs(delta)
	t.state.LastAngleDegrees = angle
}

// Stop 回到 Idle 状态，返回本次跳跃的累计旋转角度
// 在 Idle 状态调用返回 0
func (t *TrickRotationTracker) Stop() float32 {
	if t.state.Phase != components.TrickTracking {
		return 0
	}
	total := t.state.TotalRotationDegrees
	t.state = components.TrickState{}
	return total
}

// IsTracking 是否处于 Tracking 状态
func (t *TrickRotationTracker) IsTracking() bool {
	return t.state.Phase == components.TrickTracking
}

// TotalRotation 当前累计角度（Idle 时为 0）
func (t *TrickRotationTracker) TotalRotation() float32 {
	return t.state.TotalRotationDegrees
}

// State 返回状态副本
func (t *TrickRotationTracker) State() components.TrickState {
	return t.state
}
