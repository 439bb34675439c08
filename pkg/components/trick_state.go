package components

// TrickPhase 旋转追踪器的内部状态
type TrickPhase int

const (
	// TrickIdle 未在追踪（不在空中，或本次跳跃已结算）
	TrickIdle TrickPhase = iota

	// TrickTracking 正在累计旋转角度
	TrickTracking
)

// String 返回 TrickPhase 的字符串表示
func (p TrickPhase) String() string {
	if p == TrickTracking {
		return "Tracking"
	}
	return "Idle"
}

// TrickState 单次跳跃的旋转追踪数据，每次起跳时原地重置
//
// TotalRotationDegrees 是每个 tick 角度变化绝对值之和（累计角行程），
// 不是净旋转：顺时针一圈再逆时针一圈记为 720°。
// 仅在 Phase == TrickTracking 时有意义。
type TrickState struct {
	Phase                TrickPhase
	HasBaseline          bool
	LastAngleDegrees     float32 // [0, 360)
	TotalRotationDegrees float32
}

// HeightState 单次跳跃的高度追踪数据
type HeightState struct {
	IsTracking bool

	// MaxHeightReached 本次跳跃的最高高度，起跳时以当前高度为种子
	MaxHeightReached float32
}
