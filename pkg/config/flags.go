package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging and FPS overlay")
	flagScene     = flag.String("scene", "", "Start scene: page | alchemy")
	flagSeed      = flag.Int64("seed", 0, "Random seed for ring layout and particles (0 = time based)")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagParticles = flag.Int("particles", 0, "Particle pool size")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file (rotated)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowFPS = true
	}
	if *flagScene != "" {
		cfg.Scene = *flagScene
	}
	if *flagSeed != 0 {
		cfg.Geometry.Seed = *flagSeed
		cfg.Alchemy.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagParticles > 0 {
		cfg.Alchemy.Particles = *flagParticles
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
