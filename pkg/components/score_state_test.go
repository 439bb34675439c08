package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAnnouncementTimer_Advance(t *testing.T) {
	var timer AnnouncementTimer

	if timer.Advance(1, 2) {
		t.Fatalf("inactive timer should never expire")
	}

	timer.Start()
	if timer.Advance(1.5, 2) {
		t.Errorf("timer expired early at 1.5s")
	}
	if !timer.Advance(0.5, 2) {
		t.Errorf("timer should expire at exactly 2s")
	}
	if timer.Active {
		t.Errorf("timer should stop after expiring")
	}
	if timer.Advance(5, 2) {
		t.Errorf("expired timer must not fire twice")
	}
}

func TestMovementState_LastAirHorizontalSpeed(t *testing.T) {
	m := MovementState{LastAirVelocity: mgl32.Vec3{-12, -30, 0}}
	if got := m.LastAirHorizontalSpeed(); got != 12 {
		t.Errorf("LastAirHorizontalSpeed() = %v, want 12 (vertical component ignored)", got)
	}

	m.LastAirVelocity = mgl32.Vec3{3, 100, 4}
	if got := m.LastAirHorizontalSpeed(); got != 5 {
		t.Errorf("LastAirHorizontalSpeed() = %v, want 5", got)
	}
}

func TestMovementPhase_String(t *testing.T) {
	tests := []struct {
		phase MovementPhase
		want  string
	}{
		{PhasePreLaunch, "PreLaunch"},
		{PhaseRiding, "Riding"},
		{PhaseAirborne, "Airborne"},
		{PhaseDeathLocked, "DeathLocked"},
		{MovementPhase(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("MovementPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
