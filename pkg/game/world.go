package game

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gonewx/wavesurf/pkg/config"
	"github.com/gonewx/wavesurf/pkg/physics"
	"github.com/gonewx/wavesurf/pkg/systems"
)

// World 一个冲浪会话及其刚体
//
// 前端（ebiten 窗口或终端）每个固定 tick 调用一次 Tick：
// 会话先修改速度与重力开关，随后刚体积分位置。
type World struct {
	cfg     *config.SessionConfig
	body    *physics.RigidBody
	session *systems.SessionSystem
}

// NewWorld 创建世界
//
// 参数：
//   - cfg: 已校验的会话配置
//   - input: 输入源
//   - display: HUD 输出
func NewWorld(cfg *config.SessionConfig, input systems.InputSource, display systems.DisplaySink) *World {
	body := physics.NewRigidBody(cfg.StartPositionVec(), cfg.Gravity)
	w := &World{
		cfg:     cfg,
		body:    body,
		session: systems.NewSessionSystem(cfg, body, input, display),
	}
	log.Printf("[World] Created at %v, %d ticks/s", cfg.StartPosition, cfg.TickRate)
	return w
}

// Tick 推进一个固定步长
func (w *World) Tick() {
	dt := w.cfg.FixedDeltaTime()
	w.session.Update(dt)
	if w.session.Paused() {
		return
	}
	w.body.Step(dt)
}

// TogglePause 切换暂停状态，返回切换后是否暂停
func (w *World) TogglePause() bool {
	if w.session.Paused() {
		w.session.Resume()
		return false
	}
	w.session.Pause()
	return true
}

// Snapshot 当前会话状态
func (w *World) Snapshot() systems.SessionSnapshot {
	return w.session.Snapshot()
}

// Session 返回会话状态机
func (w *World) Session() *systems.SessionSystem {
	return w.session
}

// Body 返回刚体
func (w *World) Body() *physics.RigidBody {
	return w.body
}

// Config 返回会话配置
func (w *World) Config() *config.SessionConfig {
	return w.cfg
}

// CraftPosition 冲浪板位置
func (w *World) CraftPosition() mgl32.Vec3 {
	return w.body.Position()
}
