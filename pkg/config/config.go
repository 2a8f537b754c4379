// Package config handles settings loading and validation.
//
// Settings are resolved with priority defaults < config file < CLI flags.
// Static page copy lives separately in content.yaml (see Content).
package config

import (
	"errors"
	"fmt"

	"github.com/gonewx/magnumopus/pkg/alchemy"
	"github.com/gonewx/magnumopus/pkg/helix"
	"github.com/gonewx/magnumopus/pkg/scroll"
)

// ErrInvalidConfig 所有校验错误都包装此哨兵错误
var ErrInvalidConfig = errors.New("invalid config")

// Scene names accepted by Config.Scene.
const (
	ScenePage    = "page"
	SceneAlchemy = "alchemy"
)

// Config holds all settings.
type Config struct {
	Scene    string         `yaml:"scene"`
	Window   WindowConfig   `yaml:"window"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Geometry GeometryConfig `yaml:"geometry"`
	Helix    HelixConfig    `yaml:"helix"`
	Alchemy  AlchemyConfig  `yaml:"alchemy"`
	Reveal   RevealConfig   `yaml:"reveal"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	ShowFPS   bool   `yaml:"show_fps"`
}

// SectionHeights 各区块高度（视口高度的倍数）
type SectionHeights struct {
	Hero          float64 `yaml:"hero"`
	Geometry      float64 `yaml:"geometry"`
	Separator     float64 `yaml:"separator"`
	Symbols       float64 `yaml:"symbols"`
	Archive       float64 `yaml:"archive"`
	Transmutation float64 `yaml:"transmutation"`
	Footer        float64 `yaml:"footer"`
}

// ScrollConfig holds page scrolling settings.
type ScrollConfig struct {
	WheelStep      float64        `yaml:"wheel_step"`      // 每格滚轮滚动像素
	KeyStep        float64        `yaml:"key_step"`        // 方向键滚动像素
	SmoothDuration float64        `yaml:"smooth_duration"` // 平滑滚动时长（秒），0 为立即
	Sections       SectionHeights `yaml:"sections"`
}

// GeometryConfig holds the reassembly section settings.
type GeometryConfig struct {
	Phrase           string  `yaml:"phrase"`
	GlowInitialDelay float64 `yaml:"glow_initial_delay"` // 秒
	Seed             int64   `yaml:"seed"`               // 0 表示随机
}

// HelixConfig holds the spiral layout.
type HelixConfig struct {
	SpacingY        float64 `yaml:"spacing_y"`
	AngleStep       float64 `yaml:"angle_step"`
	RadiusBase      float64 `yaml:"radius_base"`
	RotationPerItem float64 `yaml:"rotation_per_item"`
	Perspective     float64 `yaml:"perspective"`
}

// AlchemyConfig holds the particle field tuning.
type AlchemyConfig struct {
	Particles          int     `yaml:"particles"`
	Radius             float64 `yaml:"radius"`
	BondDistance       float64 `yaml:"bond_distance"`
	SparkChance        float64 `yaml:"spark_chance"`
	PointerSparkChance float64 `yaml:"pointer_spark_chance"`
	CountsInterval     float64 `yaml:"counts_interval"` // 统计刷新间隔（秒）
	Seed               int64   `yaml:"seed"`
}

// RevealConfig holds the one-shot reveal trigger settings.
type RevealConfig struct {
	Threshold    float64 `yaml:"threshold"`
	RootMargin   string  `yaml:"root_margin"`
	FadeDuration float64 `yaml:"fade_duration"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: ScenePage,
		Window: WindowConfig{
			Title:     "Magnum Opus",
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
		Scroll: ScrollConfig{
			WheelStep:      120,
			KeyStep:        60,
			SmoothDuration: 0.25,
			Sections: SectionHeights{
				Hero:          1,
				Geometry:      5,
				Separator:     0.2,
				Symbols:       10,
				Archive:       1.5,
				Transmutation: 1,
				Footer:        0.3,
			},
		},
		Geometry: GeometryConfig{
			Phrase:           "VISITA • INTERIORA • TERRAE • RECTIFICANDO • INVENIES • OCCULTUM • LAPIDEM • ",
			GlowInitialDelay: 0.5,
		},
		Helix: HelixConfig{
			SpacingY:        800,
			AngleStep:       180,
			RadiusBase:      0.3,
			RotationPerItem: 360,
			Perspective:     1000,
		},
		Alchemy: AlchemyConfig{
			Particles:          200,
			Radius:             100,
			BondDistance:       80,
			SparkChance:        0.005,
			PointerSparkChance: 0.3,
			CountsInterval:     0.1,
		},
		Reveal: RevealConfig{
			Threshold:    0.1,
			RootMargin:   "0px 0px -50px 0px",
			FadeDuration: 1,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Validate 检查所有字段的取值范围，返回的错误包装 ErrInvalidConfig
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Scene != ScenePage && c.Scene != SceneAlchemy {
		bad("scene must be %q or %q, got %q", ScenePage, SceneAlchemy, c.Scene)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scroll.WheelStep <= 0 || c.Scroll.KeyStep <= 0 {
		bad("scroll steps must be positive")
	}
	if c.Scroll.SmoothDuration < 0 {
		bad("scroll.smooth_duration must be >= 0, got %v", c.Scroll.SmoothDuration)
	}
	s := c.Scroll.Sections
	for _, h := range []struct {
		name string
		v    float64
	}{
		{"hero", s.Hero}, {"geometry", s.Geometry}, {"separator", s.Separator}, {"symbols", s.Symbols},
		{"archive", s.Archive}, {"transmutation", s.Transmutation}, {"footer", s.Footer},
	} {
		if h.v < 0 {
			bad("scroll.sections.%s must be >= 0, got %v", h.name, h.v)
		}
	}
	if s.Geometry <= 1 || s.Symbols <= 1 {
		bad("scroll-driven sections must be taller than the viewport")
	}
	if c.Geometry.Phrase == "" {
		bad("geometry.phrase is required")
	}
	if c.Helix.SpacingY <= 0 || c.Helix.RadiusBase < 0 || c.Helix.Perspective < 0 {
		bad("helix spacing must be positive, radius and perspective non-negative")
	}
	if c.Alchemy.CountsInterval <= 0 {
		bad("alchemy.counts_interval must be > 0, got %v", c.Alchemy.CountsInterval)
	}
	if err := c.AlchemyEngineConfig().Validate(); err != nil {
		bad("alchemy: %v", err)
	}
	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		bad("reveal.threshold must be in [0, 1], got %v", c.Reveal.Threshold)
	}
	if _, err := scroll.ParseRootMargin(c.Reveal.RootMargin); err != nil {
		bad("reveal.root_margin: %v", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		bad("logging.level must be debug|info|warn|error, got %q", c.Logging.Level)
	}

	return errors.Join(errs...)
}

// HelixParams 转换为螺旋布局参数
func (c *Config) HelixParams() helix.Params {
	return helix.Params{
		SpacingY:        c.Helix.SpacingY,
		AngleStep:       c.Helix.AngleStep,
		RadiusBase:      c.Helix.RadiusBase,
		RotationPerItem: c.Helix.RotationPerItem,
		Perspective:     c.Helix.Perspective,
	}
}

// AlchemyEngineConfig 在默认调参之上覆盖配置文件中的字段
func (c *Config) AlchemyEngineConfig() alchemy.Config {
	cfg := alchemy.DefaultConfig()
	cfg.Particles = c.Alchemy.Particles
	cfg.Radius = c.Alchemy.Radius
	cfg.BondDistance = c.Alchemy.BondDistance
	cfg.SparkChance = c.Alchemy.SparkChance
	cfg.PointerSparkChance = c.Alchemy.PointerSparkChance
	cfg.Seed = c.Alchemy.Seed
	return cfg
}

// RevealOptions 转换为显现触发器参数
func (c *Config) RevealOptions() scroll.RevealOptions {
	return scroll.RevealOptions{Threshold: c.Reveal.Threshold, RootMargin: c.Reveal.RootMargin}
}
