// Package app 提供冲浪会话的 ebiten 应用包装器
//
// 该包把会话、输入、HUD、提示音和设置组装为 ebiten.Game，
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/wavesurf/pkg/audio"
	"github.com/gonewx/wavesurf/pkg/config"
	"github.com/gonewx/wavesurf/pkg/game"
	"github.com/gonewx/wavesurf/pkg/hud"
	"github.com/gonewx/wavesurf/pkg/input"
	"github.com/gonewx/wavesurf/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Session 已校验的会话配置，为 nil 时使用内置默认值
	Session *config.SessionConfig
	// Settings 偏好设置，为 nil 时仅使用内存中的默认设置
	Settings *game.SettingsManager
}

// cueVolumeStep -/= 键每次调整的音量
const cueVolumeStep = 0.1

// App 冲浪应用，实现 ebiten.Game 接口
type App struct {
	world    *game.World
	input    *input.EbitenSource
	hud      *hud.TextRegistry
	cues     *audio.CuePlayer
	settings *game.SettingsManager
	mobile   bool // 显示触摸摇杆

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	session := cfg.Session
	if session == nil {
		session = config.DefaultSessionConfig()
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	prefs := settings.Settings()

	registry := hud.NewDefaultTextRegistry()
	cues := audio.NewCuePlayer(registry, prefs.CueVolume)
	cues.SetEnabled(prefs.SoundEnabled)

	src := input.NewEbitenSource()
	world := game.NewWorld(session, src, cues)

	ebiten.SetTPS(session.TickRate)
	if prefs.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	log.Printf("[App] Running at %d TPS, sound=%v", session.TickRate, cues.Enabled())

	return &App{
		world:    world,
		input:    src,
		hud:      registry,
		cues:     cues,
		settings: settings,
		mobile:   utils.IsMobile(),
	}, nil
}

// Update 推进一个固定 tick
// ebiten 的 TPS 等于会话的 TickRate，每次调用对应一个模拟步长
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.settings.ToggleDebugOverlay()
		a.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settings.SetSoundEnabled(!a.settings.Settings().SoundEnabled)
		a.cues.SetEnabled(a.settings.Settings().SoundEnabled)
		a.saveSettings()
		log.Printf("[App] Sound cues: %v", a.cues.Enabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.adjustCueVolume(-cueVolumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.adjustCueVolume(cueVolumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.world.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return ebiten.Termination
	}

	a.input.Poll()
	a.world.Tick()
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

func (a *App) adjustCueVolume(delta float64) {
	volume := a.settings.AdjustCueVolume(delta)
	a.cues.SetVolume(volume)
	a.saveSettings()
	log.Printf("[App] Cue volume: %.1f", volume)
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.world.Snapshot()
	cfg := a.world.Config()

	drawScene(screen, cfg, snap, a.world.Body().Orientation())
	drawHUD(screen, a.hud.VisibleEntries())
	if a.mobile {
		if x, y, ok := a.input.DragOrigin(); ok {
			drawTouchStick(screen, x, y, a.input.Steering())
		}
	}
	if a.settings.Settings().ShowDebugOverlay {
		drawDebugOverlay(screen, snap, ebiten.ActualTPS())
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放音频设备
func (a *App) Close() {
	a.cues.Close()
}
