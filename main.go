package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/app"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/embedded"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "magnumopus: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
		fileCfg.MaxBackups = cfg.Logging.MaxBackups
		fileCfg.MaxAgeDays = cfg.Logging.MaxAgeDays
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)
	data, err := embedded.ReadFile(config.ContentPath)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	content, err := config.ParseContent(data)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	a, err := app.NewApp(cfg, content)
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("[Main] running", zap.String("scene", cfg.Scene), zap.String("title", cfg.Window.Title))
	return ebiten.RunGame(a)
}
