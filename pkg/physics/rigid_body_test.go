package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRigidBody_StepWithoutGravity(t *testing.T) {
	body := NewRigidBody(mgl32.Vec3{0, 1, 0}, -10)
	body.SetVelocity(mgl32.Vec3{2, 0, 0})

	for i := 0; i < 10; i++ {
		body.Step(0.1)
	}

	if !body.Position().ApproxEqualThreshold(mgl32.Vec3{2, 1, 0}, 1e-4) {
		t.Errorf("position = %v, want [2 1 0]", body.Position())
	}
	if body.Velocity() != (mgl32.Vec3{2, 0, 0}) {
		t.Errorf("velocity changed without gravity: %v", body.Velocity())
	}
}

func TestRigidBody_GravityOnlyAffectsVertical(t *testing.T) {
	body := NewRigidBody(mgl32.Vec3{}, -10)
	body.SetUseGravity(true)
	body.SetVelocity(mgl32.Vec3{3, 5, 0})

	body.Step(0.5)

	v := body.Velocity()
	if v.X() != 3 || v.Z() != 0 {
		t.Errorf("horizontal velocity changed: %v", v)
	}
	if v.Y() != 0 {
		t.Errorf("vertical velocity = %v, want 0", v.Y())
	}
	// 半隐式欧拉：位置使用更新后的速度
	if got := body.Position().Y(); got != 0 {
		t.Errorf("altitude = %v, want 0", got)
	}
}

func TestRigidBody_Teleport(t *testing.T) {
	body := NewRigidBody(mgl32.Vec3{}, -10)
	body.SetVelocity(mgl32.Vec3{1, 1, 1})
	body.SetOrientation(mgl32.QuatRotate(1, mgl32.Vec3{0, 0, 1}))

	body.Teleport(mgl32.Vec3{5, 0, 0}, mgl32.QuatIdent())

	if body.Position() != (mgl32.Vec3{5, 0, 0}) {
		t.Errorf("position = %v, want [5 0 0]", body.Position())
	}
	if body.Velocity() != (mgl32.Vec3{}) {
		t.Errorf("velocity = %v, want zero", body.Velocity())
	}
	if !body.Orientation().ApproxEqual(mgl32.QuatIdent()) {
		t.Errorf("orientation = %v, want identity", body.Orientation())
	}
}
