package app

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/config"
	"github.com/gonewx/wavesurf/pkg/hud"
	"github.com/gonewx/wavesurf/pkg/systems"
)

// 绘制参数
const (
	craftLengthMeters = 1.6
	craftStrokeWidth  = 4
	markerSpacing     = 5 // 浪面刻度间隔（米）
	markerHeight      = 6
	touchStickRadius  = 80 // 与 input 包的拖拽半径一致
)

var (
	skyColor       = color.RGBA{R: 135, G: 200, B: 235, A: 255}
	waveBodyColor  = color.RGBA{R: 30, G: 110, B: 170, A: 255}
	waveCrestColor = color.RGBA{R: 235, G: 245, B: 255, A: 255}
	deathLineColor = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	craftColor     = color.RGBA{R: 250, G: 160, B: 30, A: 255}
	lockedColor    = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// drawScene 绘制天空、浪体、浪顶线、死亡线和冲浪板
func drawScene(screen *ebiten.Image, cfg *config.SessionConfig, snap systems.SessionSnapshot, orientation mgl32.Quat) {
	screen.Fill(skyColor)

	cameraX := snap.Position.X()
	_, crestY := config.WorldToScreen(0, cfg.WaveHeightThreshold, cameraX)
	_, deathY := config.WorldToScreen(0, cfg.DeathHeight, cameraX)
	width := float32(config.GameWindowWidth)

	vector.DrawFilledRect(screen, 0, crestY, width, float32(config.GameWindowHeight)-crestY, waveBodyColor, true)
	vector.StrokeLine(screen, 0, crestY, width, crestY, 2, waveCrestColor, true)
	vector.StrokeLine(screen, 0, deathY, width, deathY, 1, deathLineColor, true)

	for _, x := range markerScreenXs(cameraX) {
		vector.StrokeLine(screen, x, crestY, x, crestY+markerHeight, 1, waveCrestColor, true)
	}

	x0, y0, x1, y1 := craftSegment(snap.Position, orientation)
	clr := craftColor
	if snap.Movement.Phase == components.PhaseDeathLocked {
		clr = lockedColor
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, craftStrokeWidth, clr, true)
}

// craftSegment 返回冲浪板在屏幕上的线段，第二个端点为板头（前进方向）
func craftSegment(position mgl32.Vec3, orientation mgl32.Quat) (x0, y0, x1, y1 float32) {
	half := systems.Forward(orientation).Mul(craftLengthMeters / 2)
	cameraX := position.X()
	x0, y0 = config.WorldToScreen(position.X()-half.X(), position.Y()-half.Y(), cameraX)
	x1, y1 = config.WorldToScreen(position.X()+half.X(), position.Y()+half.Y(), cameraX)
	return x0, y0, x1, y1
}

// markerScreenXs 返回当前屏幕内浪面刻度的横坐标，刻度固定在世界坐标上，用来体现水平移动
func markerScreenXs(cameraX float32) []float32 {
	leftWorld := cameraX - float32(config.CraftScreenX)/config.PixelsPerMeter
	rightWorld := cameraX + float32(config.GameWindowWidth-config.CraftScreenX)/config.PixelsPerMeter

	first := math32.Ceil(leftWorld/markerSpacing) * markerSpacing
	var xs []float32
	for wx := first; wx <= rightWorld; wx += markerSpacing {
		sx, _ := config.WorldToScreen(wx, 0, cameraX)
		xs = append(xs, sx)
	}
	return xs
}

// drawTouchStick 在拖拽起点绘制虚拟摇杆底座和当前推杆位置
func drawTouchStick(screen *ebiten.Image, originX, originY int, steering mgl32.Vec2) {
	cx, cy := float32(originX), float32(originY)
	vector.StrokeCircle(screen, cx, cy, touchStickRadius, 2, waveCrestColor, true)
	kx, ky := touchStickKnob(cx, cy, steering)
	vector.DrawFilledCircle(screen, kx, ky, touchStickRadius/4, craftColor, true)
}

// touchStickKnob 摇杆向量（Y 向上）对应的屏幕位置（Y 向下）
func touchStickKnob(cx, cy float32, steering mgl32.Vec2) (x, y float32) {
	return cx + steering.X()*touchStickRadius, cy - steering.Y()*touchStickRadius
}

// drawHUD 按注册顺序绘制可见文本
func drawHUD(screen *ebiten.Image, entries []hud.TextEntry) {
	for _, entry := range entries {
		ebitenutil.DebugPrintAt(screen, entry.Text, entry.X, entry.Y)
	}
}

// drawDebugOverlay 左下角显示会话内部状态
func drawDebugOverlay(screen *ebiten.Image, snap systems.SessionSnapshot, tps float64) {
	ebitenutil.DebugPrintAt(screen, debugOverlayText(snap, tps), 10, config.GameWindowHeight-90)
}

func debugOverlayText(snap systems.SessionSnapshot, tps float64) string {
	paused := ""
	if snap.Paused {
		paused = " [PAUSED]"
	}
	return fmt.Sprintf("TPS: %.0f  tick: %d%s\nphase: %s  gate: %v\nspeed: %.2f  heading: %.0f\npos: (%.2f, %.2f)  trick: %.0f",
		tps, snap.Tick, paused,
		snap.Movement.Phase, snap.Movement.InputGateOpen,
		snap.Movement.CurrentSpeed, snap.HeadingDegrees,
		snap.Position.X(), snap.Position.Y(), snap.Trick.TotalRotationDegrees)
}
