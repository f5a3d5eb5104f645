package main

import (
	"errors"
	"flag"

	"github.com/decker502/roadhop/pkg/app"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/embedded"
	"github.com/decker502/roadhop/pkg/input"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	mode       = flag.String("mode", "", "启动模式：hopper 或 runner（默认使用配置文件）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用配置文件或当前时间")
	configPath = flag.String("config", "", "配置文件路径，为空时使用嵌入的 data/config.yaml")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// loadConfig 读取 -config 指定的文件，未指定时读取嵌入的默认配置
func loadConfig() (*config.GameConfig, error) {
	if *configPath != "" {
		return config.LoadGameConfig(*configPath)
	}
	data, err := embedded.ReadFile(embedded.ConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameConfig(data)
}

func main() {
	flag.Parse()
	logger.Init(*verbose)
	embedded.Init(dataFS)

	cfg, err := loadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load configuration")
	}
	if *seed != 0 {
		cfg.Window.Seed = *seed
	}
	if *mode != "" {
		cfg.Window.Mode = *mode
		if err := cfg.Validate(); err != nil {
			logger.Log.WithError(err).Fatal("invalid -mode")
		}
	}
	if _, err := input.NewKeyMap(cfg.Input); err != nil {
		logger.Log.WithError(err).Fatal("invalid key bindings")
	}

	gameApp, err := app.NewApp(app.Config{Game: cfg})
	if err != nil {
		logger.Log.WithError(err).Fatal("game initialization failed")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("game exited with error")
	}
}
