package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/config"
)

// scriptedInput 由测试逐 tick 设置的输入
type scriptedInput struct {
	steering mgl32.Vec2
}

func (s *scriptedInput) Steering() mgl32.Vec2 {
	return s.steering
}

// recordingDisplay 记录最近一次文本与可见性
type recordingDisplay struct {
	texts   map[components.TextField]string
	visible map[components.TextField]bool
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		texts:   make(map[components.TextField]string),
		visible: make(map[components.TextField]bool),
	}
}

func (d *recordingDisplay) SetVisible(field components.TextField, visible bool) {
	d.visible[field] = visible
}

func (d *recordingDisplay) SetText(field components.TextField, text string) {
	d.texts[field] = text
}

// TestWorldFullJump 出发、爬升到浪顶、腾空、竖直入水，整个过程由刚体积分驱动
func TestWorldFullJump(t *testing.T) {
	cfg := config.DefaultSessionConfig()
	input := &scriptedInput{}
	display := newRecordingDisplay()
	world := NewWorld(cfg, input, display)

	up := mgl32.Vec2{0, 1}
	down := mgl32.Vec2{0, -1}

	sawAirborne := false
	landed := false
	for i := 0; i < 1000 && !landed; i++ {
		snap := world.Snapshot()
		switch snap.Movement.Phase {
		case components.PhasePreLaunch:
			input.steering = down
		case components.PhaseRiding:
			if sawAirborne {
				landed = true
				continue
			}
			input.steering = up
		case components.PhaseAirborne:
			sawAirborne = true
			if world.Body().Velocity().Y() < 0 {
				input.steering = down
			} else {
				input.steering = up
			}
		case components.PhaseDeathLocked:
			t.Fatalf("tick %d: unexpected wipeout at %v", i, world.CraftPosition())
		}
		world.Tick()
	}

	if !sawAirborne {
		t.Fatal("craft never left the wave")
	}
	if !landed {
		t.Fatal("craft never landed")
	}

	snap := world.Snapshot()
	if snap.Lives.CurrentLives != cfg.MaxLives {
		t.Errorf("lives: got %d, want %d", snap.Lives.CurrentLives, cfg.MaxLives)
	}
	if snap.Score.TotalScore <= 0 {
		t.Errorf("score after a jump over the wave: got %d, want > 0", snap.Score.TotalScore)
	}
	if display.visible[components.TextJumpHeight] {
		t.Error("jump height should be hidden after landing")
	}
	if snap.Movement.CurrentSpeed > cfg.MaxSpeed {
		t.Errorf("speed %v exceeds max %v", snap.Movement.CurrentSpeed, cfg.MaxSpeed)
	}
}

// TestWorldDiveToDeath 一直向下滑行会跌破死亡高度
func TestWorldDiveToDeath(t *testing.T) {
	cfg := config.DefaultSessionConfig()
	input := &scriptedInput{steering: mgl32.Vec2{0, -1}}
	display := newRecordingDisplay()
	world := NewWorld(cfg, input, display)

	died := false
	for i := 0; i < 2000; i++ {
		world.Tick()
		if world.Session().Phase() == components.PhaseDeathLocked {
			died = true
			break
		}
	}

	if !died {
		t.Fatal("diving straight down never reached the death height")
	}
	if got := world.Snapshot().Lives.CurrentLives; got != cfg.MaxLives-1 {
		t.Errorf("lives after wipeout: got %d, want %d", got, cfg.MaxLives-1)
	}
	if pos := world.CraftPosition(); pos != cfg.StartPositionVec() {
		t.Errorf("craft should respawn at %v, got %v", cfg.StartPositionVec(), pos)
	}
	if display.texts[components.TextDeathAnnouncement] != "WIPEOUT!" || !display.visible[components.TextDeathAnnouncement] {
		t.Error("death announcement should be shown")
	}
}

// TestWorldPauseFreezesBody 暂停期间刚体不移动
func TestWorldPauseFreezesBody(t *testing.T) {
	cfg := config.DefaultSessionConfig()
	input := &scriptedInput{steering: mgl32.Vec2{0, -1}}
	world := NewWorld(cfg, input, newRecordingDisplay())

	for i := 0; i < 30; i++ {
		world.Tick()
	}
	if !world.TogglePause() {
		t.Fatal("TogglePause() should report paused")
	}

	frozen := world.CraftPosition()
	for i := 0; i < 30; i++ {
		world.Tick()
	}
	if got := world.CraftPosition(); got != frozen {
		t.Errorf("position moved while paused: %v -> %v", frozen, got)
	}

	if world.TogglePause() {
		t.Error("second TogglePause() should report running")
	}
}
