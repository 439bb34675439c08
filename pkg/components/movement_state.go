package components

import "github.com/go-gl/mathgl/mgl32"

// MovementPhase 冲浪板的运动阶段
type MovementPhase int

const (
	// PhasePreLaunch 出发前：静止，可调整朝向，等待下推摇杆出发
	PhasePreLaunch MovementPhase = iota

	// PhaseRiding 在浪面上滑行（无重力，沿朝向匀速/加速）
	PhaseRiding

	// PhaseAirborne 腾空（受重力影响，追踪高度与旋转）
	PhaseAirborne

	// PhaseDeathLocked 坠毁锁定：静止并显示死亡文本
	PhaseDeathLocked
)

// String 返回 MovementPhase 的字符串表示
func (p MovementPhase) String() string {
	switch p {
	case PhasePreLaunch:
		return "PreLaunch"
	case PhaseRiding:
		return "Riding"
	case PhaseAirborne:
		return "Airborne"
	case PhaseDeathLocked:
		return "DeathLocked"
	default:
		return "Unknown"
	}
}

// MovementState 运动状态（由 SessionSystem 独占修改）
//
// 不变式：
//   - 任意 tick 恰好处于一个 MovementPhase
//   - 0 <= CurrentSpeed <= MaxSpeed
type MovementState struct {
	Phase MovementPhase

	// CurrentSpeed 当前速度标量
	CurrentSpeed float32

	// LastAirVelocity 最近一次腾空 tick 记录的刚体速度，入水时用于继承水平速度
	LastAirVelocity mgl32.Vec3

	// 边沿检测标志
	WasRidingLastTick   bool
	WasAirborneLastTick bool

	// InputGateOpen 为 false 时忽略输入，直到摇杆回到中心
	InputGateOpen bool

	// DeathLockElapsed 坠毁锁定已经过的模拟时间（秒）
	DeathLockElapsed float32
}

// LastAirHorizontalSpeed 返回腾空速度在水平面（XZ）上的分量大小
func (m *MovementState) LastAirHorizontalSpeed() float32 {
	return mgl32.Vec2{m.LastAirVelocity.X(), m.LastAirVelocity.Z()}.Len()
}

// ResetTransient 清空复位时需要清除的瞬态字段（不改变 Phase 和输入闸门）
func (m *MovementState) ResetTransient() {
	m.CurrentSpeed = 0
	m.LastAirVelocity = mgl32.Vec3{}
	m.WasRidingLastTick = false
	m.WasAirborneLastTick = false
}
