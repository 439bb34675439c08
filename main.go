package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/wavesurf/pkg/app"
	"github.com/gonewx/wavesurf/pkg/config"
	"github.com/gonewx/wavesurf/pkg/embedded"
	"github.com/gonewx/wavesurf/pkg/game"
)

const appName = "wavesurf"

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "会话配置文件路径（默认使用内置的 data/session.yaml）")
)

// loadSessionConfig 优先读取 -config 指定的文件，否则使用内置配置
func loadSessionConfig() (*config.SessionConfig, error) {
	if *configPath != "" {
		log.Printf("[Main] Loading session config from %s", *configPath)
		return config.LoadSessionConfig(*configPath)
	}

	data, err := embedded.ReadFile(embedded.DefaultSessionConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseSessionConfig(data)
}

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	sessionCfg, err := loadSessionConfig()
	if err != nil {
		log.Fatalf("会话配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Session:  sessionCfg,
		Settings: game.OpenSettingsManager(appName),
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Wave Surf")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
