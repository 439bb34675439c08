package systems

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/config"
)

// PhysicsBody 会话驱动的刚体
//
// 会话每个 tick 读取位置/朝向，写入速度、重力开关与朝向；积分由外部完成。
type PhysicsBody interface {
	Position() mgl32.Vec3
	Velocity() mgl32.Vec3
	SetVelocity(v mgl32.Vec3)
	SetUseGravity(enabled bool)
	Orientation() mgl32.Quat
	SetOrientation(q mgl32.Quat)
	Teleport(position mgl32.Vec3, orientation mgl32.Quat)
}

// InputSource 每个 tick 提供一个 [-1,1]² 的摇杆向量
type InputSource interface {
	Steering() mgl32.Vec2
}

// SessionSnapshot 会话状态的只读副本（供渲染和调试使用）
type SessionSnapshot struct {
	Tick           uint64
	Paused         bool
	Movement       components.MovementState
	Trick          components.TrickState
	Height         components.HeightState
	Score          components.ScoreState
	Lives          components.LivesState
	Position       mgl32.Vec3
	HeadingDegrees float32
}

// SessionSystem 冲浪会话状态机
//
// 唯一持有并修改 MovementState，按固定顺序调用高度追踪、旋转追踪和计分系统。
// 状态流转：
//
//	PreLaunch --(摇杆下推)--> Riding --(高度>=分界线)--> Airborne
//	Airborne --(高度<分界线，入水检查通过)--> Riding
//	任意 --(低于死亡高度 / 入水角度过平)--> DeathLocked --(计时结束)--> PreLaunch
type SessionSystem struct {
	cfg     *config.SessionConfig
	body    PhysicsBody
	input   InputSource
	display DisplaySink

	scoring *ScoringSystem
	trick   *TrickRotationTracker
	height  *HeightTracker

	movement components.MovementState
	tick     uint64

	paused bool
	// 暂停前的速度与重力，输入闸门重新打开时恢复
	pendingRestore  bool
	restoreVelocity mgl32.Vec3
	restoreGravity  bool
}

// NewSessionSystem 创建会话并初始化 HUD
//
// 参数:
//   - cfg: 已校验的会话配置（调用方负责 Validate）
//   - body: 刚体适配器
//   - input: 输入源
//   - display: HUD 输出
func NewSessionSystem(cfg *config.SessionConfig, body PhysicsBody, input InputSource, display DisplaySink) *SessionSystem {
	s := &SessionSystem{
		cfg:     cfg,
		body:    body,
		input:   input,
		display: display,
		scoring: NewScoringSystem(cfg, display),
		trick:   NewTrickRotationTracker(),
		height:  NewHeightTracker(cfg.WaveHeightThreshold),
		movement: components.MovementState{
			Phase:         components.PhasePreLaunch,
			InputGateOpen: true,
		},
	}

	s.display.SetVisible(components.TextDeathAnnouncement, false)
	s.display.SetVisible(components.TextJumpHeight, false)
	s.scoring.Reset()

	log.Printf("[SessionSystem] Session created: lives=%d, wave=%.1f, death=%.1f",
		cfg.MaxLives, cfg.WaveHeightThreshold, cfg.DeathHeight)
	return s
}

// Update 推进一个固定 tick
//
// 参数:
//   - deltaTime: 固定步长（秒）
func (s *SessionSystem) Update(deltaTime float32) {
	if s.paused {
		s.holdStationary()
		return
	}
	s.tick++

	s.scoring.Update(deltaTime)

	if s.movement.Phase == components.PhaseDeathLocked {
		s.movement.DeathLockElapsed += deltaTime
		if s.movement.DeathLockElapsed < s.cfg.DeathLockDurationSeconds {
			s.holdStationary()
			return
		}
		s.display.SetVisible(components.TextDeathAnnouncement, false)
		s.movement.DeathLockElapsed = 0
		s.setPhase(components.PhasePreLaunch)
	}

	altitude := s.body.Position().Y()
	if altitude < s.cfg.DeathHeight {
		s.die(fmt.Sprintf("altitude %.2f below death height %.2f", altitude, s.cfg.DeathHeight))
		return
	}

	steering := clampSteering(s.input.Steering())

	if !s.movement.InputGateOpen {
		if steering.Len() < inputGateReopenMagnitude {
			s.openInputGate()
		} else {
			s.holdStationary()
		}
		return
	}

	if s.movement.Phase == components.PhasePreLaunch {
		s.holdStationary()
		if steering.Y() < launchTriggerY {
			s.movement.CurrentSpeed = 0
			s.setPhase(components.PhaseRiding)
		}
		// 出发前也允许调整朝向
		s.steer(steering, deltaTime)
		return
	}

	s.steer(steering, deltaTime)

	if altitude < s.cfg.WaveHeightThreshold {
		s.ride(steering, deltaTime)
	} else {
		s.fly(steering, altitude)
	}
}

// steer 把朝向转向摇杆方向，死区内保持不变
func (s *SessionSystem) steer(steering mgl32.Vec2, deltaTime float32) {
	if steering.Len() <= steeringDeadzone {
		return
	}
	target := SteeringAngleDegrees(steering)
	s.body.SetOrientation(TurnToward(s.body.Orientation(), target, s.cfg.RotationTurnRate*deltaTime))
}

// ride 浪面滑行
func (s *SessionSystem) ride(steering mgl32.Vec2, deltaTime float32) {
	s.body.SetUseGravity(false)

	if s.movement.WasAirborneLastTick {
		if !s.enterWater(steering) {
			return
		}
	}
	if s.movement.Phase != components.PhaseRiding {
		s.setPhase(components.PhaseRiding)
	}

	m := &s.movement
	if m.CurrentSpeed < s.cfg.BaseSpeed {
		m.CurrentSpeed = math32.Min(m.CurrentSpeed+s.cfg.AccelerationRate*deltaTime, s.cfg.BaseSpeed)
	}
	if steering.Y() > boostInputY {
		m.CurrentSpeed = math32.Min(m.CurrentSpeed+s.cfg.AccelerationRate*steering.Y()*deltaTime, s.cfg.MaxSpeed)
	}

	s.body.SetVelocity(Forward(s.body.Orientation()).Mul(m.CurrentSpeed))
	m.WasRidingLastTick = true
}

// enterWater 入水协议，在 Airborne→Riding 的边沿执行一次
//
// 返回 false 表示入水角度过平，已触发坠毁。
func (s *SessionSystem) enterWater(steering mgl32.Vec2) bool {
	direction := steering
	if steering.Len() <= steeringDeadzone {
		direction = FacingDirection(s.body.Orientation())
	}

	if s.movement.Phase != components.PhasePreLaunch {
		entryAngle := EntryAngleDegrees(direction)
		if entryAngle > 90-s.cfg.MinSafeEntryAngleDegrees {
			s.die(fmt.Sprintf("entry angle %.1f° exceeds %.1f°", entryAngle, 90-s.cfg.MinSafeEntryAngleDegrees))
			return false
		}
	}

	s.movement.WasAirborneLastTick = false

	heightScore := s.height.Stop()
	s.display.SetVisible(components.TextJumpHeight, false)
	rotation := s.trick.Stop()
	result := s.scoring.SettleJump(heightScore, rotation)
	log.Printf("[SessionSystem] Landed: height +%d, rotation %.0f° (+%d)",
		result.HeightPoints, rotation, result.RotationPoints)

	// 落水不损失空中积累的水平速度
	airSpeed := s.movement.LastAirHorizontalSpeed()
	s.movement.CurrentSpeed = math32.Min(math32.Max(airSpeed, s.movement.CurrentSpeed), s.cfg.MaxSpeed)
	s.body.SetVelocity(Forward(s.body.Orientation()).Mul(s.movement.CurrentSpeed))
	return true
}

// fly 腾空阶段
func (s *SessionSystem) fly(steering mgl32.Vec2, altitude float32) {
	s.body.SetUseGravity(true)

	launching := s.movement.WasRidingLastTick
	if launching {
		s.height.Start(altitude)
		s.trick.Start()
		s.display.SetText(components.TextJumpHeight, formatJumpHeight(0))
		s.display.SetVisible(components.TextJumpHeight, true)
	} else if s.height.IsTracking() {
		if peak, raised := s.height.Update(altitude); raised {
			s.display.SetText(components.TextJumpHeight, formatJumpHeight(peak))
		}
		s.trick.Sample(steering)
	}

	s.movement.LastAirVelocity = s.body.Velocity()
	s.movement.WasAirborneLastTick = true
	if s.movement.Phase != components.PhaseAirborne {
		s.setPhase(components.PhaseAirborne)
	}

	if launching {
		s.movement.WasRidingLastTick = false
		// 保留水平速度，竖直分量交给重力
		horizontal := Forward(s.body.Orientation()).Mul(s.movement.CurrentSpeed)
		vertical := s.body.Velocity().Y()
		s.body.SetVelocity(mgl32.Vec3{horizontal.X(), vertical, horizontal.Z()})
	}
}

// die 坠毁：复位刚体，清空单次跳跃数据，扣命并进入 DeathLocked
func (s *SessionSystem) die(reason string) {
	log.Printf("[SessionSystem] Wipeout in %s: %s", s.movement.Phase, reason)

	s.body.Teleport(s.cfg.StartPositionVec(), mgl32.QuatIdent())
	s.body.SetUseGravity(false)

	s.movement.ResetTransient()
	s.movement.InputGateOpen = false
	s.movement.DeathLockElapsed = 0
	s.pendingRestore = false

	s.height.Stop()
	s.trick.Stop()
	s.display.SetVisible(components.TextJumpHeight, false)

	if s.scoring.OnDeath() {
		log.Printf("[SessionSystem] Lives replenished to %d", s.cfg.MaxLives)
	}
	s.setPhase(components.PhaseDeathLocked)
}

// holdStationary 关闭重力并清零速度
func (s *SessionSystem) holdStationary() {
	s.body.SetUseGravity(false)
	s.body.SetVelocity(mgl32.Vec3{})
}

func (s *SessionSystem) openInputGate() {
	s.movement.InputGateOpen = true
	if s.pendingRestore {
		s.body.SetVelocity(s.restoreVelocity)
		s.body.SetUseGravity(s.restoreGravity)
		s.pendingRestore = false
		return
	}
	s.holdStationary()
}

func (s *SessionSystem) setPhase(phase components.MovementPhase) {
	log.Printf("[SessionSystem] %s → %s (tick %d)", s.movement.Phase, phase, s.tick)
	s.movement.Phase = phase
}

// Pause 冻结会话；刚体速度被保存，恢复后在摇杆回中时还原
func (s *SessionSystem) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	if s.movement.Phase == components.PhaseRiding || s.movement.Phase == components.PhaseAirborne {
		s.pendingRestore = true
		s.restoreVelocity = s.body.Velocity()
		s.restoreGravity = s.movement.Phase == components.PhaseAirborne
	}
	s.holdStationary()
	log.Printf("[SessionSystem] Paused in %s", s.movement.Phase)
}

// Resume 继续会话，与坠毁复位相同，需要摇杆回中后才接受输入
func (s *SessionSystem) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.movement.InputGateOpen = false
	log.Printf("[SessionSystem] Resumed, waiting for centered input")
}

// Paused 会话是否暂停
func (s *SessionSystem) Paused() bool {
	return s.paused
}

// Phase 当前运动阶段
func (s *SessionSystem) Phase() components.MovementPhase {
	return s.movement.Phase
}

// Scoring 返回计分系统
func (s *SessionSystem) Scoring() *ScoringSystem {
	return s.scoring
}

// Snapshot 返回当前会话状态副本
func (s *SessionSystem) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		Tick:           s.tick,
		Paused:         s.paused,
		Movement:       s.movement,
		Trick:          s.trick.State(),
		Height:         s.height.State(),
		Score:          s.scoring.Score(),
		Lives:          s.scoring.Lives(),
		Position:       s.body.Position(),
		HeadingDegrees: HeadingDegrees(s.body.Orientation()),
	}
}

func formatJumpHeight(meters int) string {
	return fmt.Sprintf("%dm", meters)
}
