package systems

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/config"
)

// fakeDisplay 记录 HUD 的最新状态和调用次数
type fakeDisplay struct {
	texts   map[components.TextField]string
	visible map[components.TextField]bool
	calls   int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		texts:   make(map[components.TextField]string),
		visible: make(map[components.TextField]bool),
	}
}

func (d *fakeDisplay) SetVisible(field components.TextField, visible bool) {
	d.visible[field] = visible
	d.calls++
}

func (d *fakeDisplay) SetText(field components.TextField, text string) {
	d.texts[field] = text
	d.calls++
}

// fakeInput 固定返回设置的摇杆向量
type fakeInput struct {
	steering mgl32.Vec2
}

func (i *fakeInput) Steering() mgl32.Vec2 {
	return i.steering
}

// fakeBody 不做积分的刚体，测试直接设置高度
type fakeBody struct {
	position    mgl32.Vec3
	velocity    mgl32.Vec3
	orientation mgl32.Quat
	useGravity  bool
	teleports   int
}

func newFakeBody() *fakeBody {
	return &fakeBody{orientation: mgl32.QuatIdent()}
}

func (b *fakeBody) Position() mgl32.Vec3 {
	return b.position
}

func (b *fakeBody) Velocity() mgl32.Vec3 {
	return b.velocity
}

func (b *fakeBody) SetVelocity(v mgl32.Vec3) {
	b.velocity = v
}

func (b *fakeBody) SetUseGravity(enabled bool) {
	b.useGravity = enabled
}

func (b *fakeBody) Orientation() mgl32.Quat {
	return b.orientation
}

func (b *fakeBody) SetOrientation(q mgl32.Quat) {
	b.orientation = q
}

func (b *fakeBody) setAltitude(y float32) {
	b.position[1] = y
}

func (b *fakeBody) Teleport(p mgl32.Vec3, q mgl32.Quat) {
	b.position = p
	b.orientation = q
	b.velocity = mgl32.Vec3{}
	b.teleports++
}

type sessionFixture struct {
	cfg     *config.SessionConfig
	body    *fakeBody
	input   *fakeInput
	display *fakeDisplay
	session *SessionSystem
}

const testDT = float32(0.02)

func newSessionFixture(mutate func(*config.SessionConfig)) *sessionFixture {
	cfg := config.DefaultSessionConfig()
	if mutate != nil {
		mutate(cfg)
	}
	f := &sessionFixture{
		cfg:     cfg,
		body:    newFakeBody(),
		input:   &fakeInput{},
		display: newFakeDisplay(),
	}
	f.session = NewSessionSystem(cfg, f.body, f.input, f.display)
	return f
}

// tick 以给定输入和高度推进一个 tick
func (f *sessionFixture) tick(steering mgl32.Vec2, altitude float32) {
	f.input.steering = steering
	f.body.setAltitude(altitude)
	f.session.Update(testDT)
}

// launchAndRide 从 PreLaunch 出发并在浪面上滑行一个 tick，朝向正下方
func (f *sessionFixture) launchAndRide() {
	f.tick(mgl32.Vec2{0, -1}, 0)
	f.tick(mgl32.Vec2{0, -1}, 0)
}

// steeringAt 返回朝向角 deg 对应的满幅摇杆向量
func steeringAt(deg float32) mgl32.Vec2 {
	return SteeringForAngle(deg)
}

func approxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
