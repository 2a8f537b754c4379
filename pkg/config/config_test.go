package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("默认配置应当有效，得到: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{"未知场景", func(c *Config) { c.Scene = "menu" }, "scene"},
		{"窗口尺寸为零", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"区块高度为负", func(c *Config) { c.Scroll.Sections.Footer = -1 }, "scroll.sections.footer"},
		{"滚动区块不高于视口", func(c *Config) { c.Scroll.Sections.Geometry = 1 }, "taller than the viewport"},
		{"空文字环", func(c *Config) { c.Geometry.Phrase = "" }, "geometry.phrase"},
		{"火花概率越界", func(c *Config) { c.Alchemy.SparkChance = 2 }, "spark chance"},
		{"阈值越界", func(c *Config) { c.Reveal.Threshold = 1.5 }, "reveal.threshold"},
		{"错误的 root margin", func(c *Config) { c.Reveal.RootMargin = "1px 2px" }, "reveal.root_margin"},
		{"未知日志级别", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("期望错误包装 ErrInvalidConfig，得到 %v", err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("期望错误包含 %q，得到 %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Scene = "x"
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("期望返回错误")
	}
	for _, want := range []string{"scene", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("期望错误包含 %q，得到 %q", want, err.Error())
		}
	}
}

func TestLoadFileMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
scene: alchemy
window:
  width: 800
alchemy:
  particles: 50
  seed: 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile 失败: %v", err)
	}
	if cfg.Scene != SceneAlchemy {
		t.Errorf("期望 scene = alchemy，得到 %q", cfg.Scene)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 720 {
		t.Errorf("期望窗口 800x720，得到 %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Alchemy.Particles != 50 || cfg.Alchemy.Radius != 100 {
		t.Errorf("期望 particles=50 radius=100，得到 %d / %v", cfg.Alchemy.Particles, cfg.Alchemy.Radius)
	}

	ec := cfg.AlchemyEngineConfig()
	if ec.Particles != 50 || ec.Seed != 7 || ec.SparksPerTransmutation != 3 {
		t.Errorf("引擎配置转换错误: %+v", ec)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("期望 os.ErrNotExist，得到 %v", err)
		}
	})

	t.Run("YAML 语法错误", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("window: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("期望解析错误")
		}
	})

	t.Run("取值无效", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("reveal:\n  threshold: 3\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("期望 ErrInvalidConfig，得到 %v", err)
		}
	})
}

func TestHelixParams(t *testing.T) {
	cfg := Default()
	cfg.Helix.SpacingY = 600
	p := cfg.HelixParams()
	if p.SpacingY != 600 || p.AngleStep != 180 || p.Perspective != 1000 {
		t.Errorf("螺旋参数转换错误: %+v", p)
	}
}

func TestRevealOptions(t *testing.T) {
	opts := Default().RevealOptions()
	if opts.Threshold != 0.1 || opts.RootMargin != "0px 0px -50px 0px" {
		t.Errorf("显现参数转换错误: %+v", opts)
	}
}

func TestConfigDir(t *testing.T) {
	if dir := ConfigDir(); !strings.Contains(strings.ToLower(dir), "magnumopus") {
		t.Errorf("期望配置目录包含 magnumopus，得到 %q", dir)
	}
}
