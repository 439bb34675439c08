// wavesurf-tui 在终端里运行冲浪会话
//
// 用法：
//
//	go run ./cmd/wavesurf-tui [-config data/session.yaml] [-sound] [-log wavesurf.log]
//
// 方向键或 WASD 控制，空格回中，p 暂停，Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/wavesurf/pkg/audio"
	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/config"
	"github.com/gonewx/wavesurf/pkg/game"
	"github.com/gonewx/wavesurf/pkg/hud"
	"github.com/gonewx/wavesurf/pkg/input"
	"github.com/gonewx/wavesurf/pkg/systems"
)

var (
	configPath = flag.String("config", "", "会话配置文件路径（为空时使用内置默认值）")
	sound      = flag.Bool("sound", true, "播放提示音")
	logPath    = flag.String("log", "", "日志文件路径（终端被界面占用，日志只能写入文件）")
	holdTicks  = flag.Int("hold", 12, "一次按键保持的 tick 数")
)

// TUI 终端前端
type TUI struct {
	screen tcell.Screen
	world  *game.World
	source *input.TerminalSource
	hud    *hud.TextRegistry
	cues   *audio.CuePlayer

	width, height int
}

// NewTUI 初始化终端与会话
func NewTUI(cfg *config.SessionConfig) (*TUI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	registry := hud.NewTextRegistry()
	for _, field := range components.AllTextFields {
		registry.Register(field, 0, 0)
	}

	var sink systems.DisplaySink = registry
	var cues *audio.CuePlayer
	if *sound {
		cues = audio.NewCuePlayer(registry, 0.6)
		sink = cues
	}

	source := input.NewTerminalSource(*holdTicks)
	t := &TUI{
		screen: screen,
		world:  game.NewWorld(cfg, source, sink),
		source: source,
		hud:    registry,
		cues:   cues,
	}
	t.resize()
	return t, nil
}

// resize 按终端尺寸重新摆放 HUD 字段
func (t *TUI) resize() {
	t.width, t.height = t.screen.Size()
	for field, pos := range hudLayout(t.width, t.height) {
		t.hud.Register(field, pos[0], pos[1])
	}
}

// handleEvent 处理终端事件，返回 false 表示退出
func (t *TUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P') {
			t.world.TogglePause()
			return true
		}
		t.source.HandleKey(ev)

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

// run 事件与固定 tick 在同一个 goroutine 中处理
func (t *TUI) run() {
	tickInterval := time.Duration(float64(time.Second) * float64(t.world.Config().FixedDeltaTime()))
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(t.screen.PollEvent, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			t.world.Tick()
			t.source.Advance()
			t.draw()
		}
	}
}

func (t *TUI) draw() {
	t.screen.Clear()

	cfg := t.world.Config()
	snap := t.world.Snapshot()
	cameraX := snap.Position.X()

	crestRow := worldToRow(cfg.WaveHeightThreshold, t.height)
	deathRow := worldToRow(cfg.DeathHeight, t.height)
	waterStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for x := 0; x < t.width; x++ {
		t.screen.SetContent(x, crestRow, '~', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		for y := crestRow + 1; y < t.height && y < deathRow; y++ {
			if (x+int(cameraX*colsPerMeter))%7 == 0 {
				t.screen.SetContent(x, y, '.', nil, waterStyle)
			}
		}
		if deathRow < t.height {
			t.screen.SetContent(x, deathRow, '_', nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
		}
	}

	craftStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if snap.Movement.Phase == components.PhaseDeathLocked {
		craftStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	t.screen.SetContent(t.width/3, worldToRow(snap.Position.Y(), t.height), craftGlyph(snap.HeadingDegrees), nil, craftStyle)

	for _, entry := range t.hud.VisibleEntries() {
		for i, line := range strings.Split(entry.Text, "\n") {
			t.putStr(entry.X, entry.Y+i, line, tcell.StyleDefault.Bold(true))
		}
	}

	status := fmt.Sprintf(" %s  speed %.1f ", snap.Movement.Phase, snap.Movement.CurrentSpeed)
	if snap.Paused {
		status += " PAUSED "
	}
	t.putStr(0, t.height-1, status, tcell.StyleDefault.Reverse(true))

	t.screen.Show()
}

func (t *TUI) putStr(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= t.width {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *TUI) cleanup() {
	if t.cues != nil {
		t.cues.Close()
	}
	t.screen.Fini()
}

func loadSessionConfig() (*config.SessionConfig, error) {
	if *configPath == "" {
		return config.DefaultSessionConfig(), nil
	}
	return config.LoadSessionConfig(*configPath)
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadSessionConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load session config: %v\n", err)
		os.Exit(1)
	}

	tui, err := NewTUI(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer tui.cleanup()

	tui.run()
}
