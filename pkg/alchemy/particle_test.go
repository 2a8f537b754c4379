package alchemy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/magnumopus/pkg/utils"
)

var testBounds = utils.Viewport{Width: 800, Height: 600}

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.SparkChance = 0
	return cfg
}

func TestAdvanceTransmutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := Particle{Pos: utils.Point{X: 100, Y: 100}, Size: 2}
	ptr := Pointer{Pos: utils.Point{X: 150, Y: 100}, Present: true}

	next, spawned := Advance(p, ptr, testBounds, quietConfig(), rng)
	if !next.Transmuted {
		t.Fatal("距离 50 < 半径 100，应完成嬗变")
	}
	if spawned != 3 {
		t.Errorf("spawned = %d, 期望 3", spawned)
	}
	if math.Abs(next.Progress-0.05) > 1e-12 {
		t.Errorf("Progress = %v, 期望 0.05", next.Progress)
	}
	if math.Abs(next.Vel.X-0.005) > 1e-12 || next.Vel.Y != 0 {
		t.Errorf("Vel = %+v, 期望 (0.005, 0)", next.Vel)
	}

	// 默认配置下同一 tick 还可能额外生成一个火花
	_, spawned = Advance(p, ptr, testBounds, DefaultConfig(), rng)
	if spawned != 3 && spawned != 4 {
		t.Errorf("默认配置 spawned = %d, 期望 3 或 4", spawned)
	}
}

func TestAdvanceRadiusIsStrict(t *testing.T) {
	p := Particle{Pos: utils.Point{X: 100, Y: 100}}
	ptr := Pointer{Pos: utils.Point{X: 200, Y: 100}, Present: true}
	next, spawned := Advance(p, ptr, testBounds, quietConfig(), rand.New(rand.NewSource(1)))
	if next.Transmuted || spawned != 0 {
		t.Errorf("距离恰为半径时不应嬗变: %+v spawned=%d", next, spawned)
	}
	if next.Vel != (utils.Point{}) {
		t.Errorf("半径外不应受吸引: Vel = %+v", next.Vel)
	}
}

func TestAdvanceTransmutationIsOneWay(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cfg := quietConfig()
	p := Particle{Pos: utils.Point{X: 400, Y: 300}}
	p, _ = Advance(p, Pointer{Pos: utils.Point{X: 410, Y: 300}, Present: true}, testBounds, cfg, rng)

	for i := 0; i < 30; i++ {
		var spawned int
		p, spawned = Advance(p, Pointer{}, testBounds, cfg, rng)
		if !p.Transmuted {
			t.Fatalf("tick %d: 嬗变状态被撤销", i)
		}
		if spawned != 0 {
			t.Fatalf("tick %d: 已嬗变粒子不应再生成 3 个火花, spawned=%d", i, spawned)
		}
	}
	if p.Progress != 1 {
		t.Errorf("Progress = %v, 期望封顶 1", p.Progress)
	}
}

func TestAdvanceReflectsAtBounds(t *testing.T) {
	tests := []struct {
		name    string
		pos     utils.Point
		vel     utils.Point
		wantVel utils.Point
	}{
		{"右边界", utils.Point{X: 799.9, Y: 300}, utils.Point{X: 0.5, Y: 0.1}, utils.Point{X: -0.5, Y: 0.1}},
		{"左边界", utils.Point{X: 0.1, Y: 300}, utils.Point{X: -0.2, Y: 0}, utils.Point{X: 0.2, Y: 0}},
		{"上边界", utils.Point{X: 10, Y: 0.1}, utils.Point{X: 0, Y: -0.3}, utils.Point{X: 0, Y: 0.3}},
		{"下边界", utils.Point{X: 10, Y: 599.9}, utils.Point{X: 0, Y: 0.3}, utils.Point{X: 0, Y: -0.3}},
		{"内部", utils.Point{X: 10, Y: 10}, utils.Point{X: 0.3, Y: 0.3}, utils.Point{X: 0.3, Y: 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Pos: tt.pos, Vel: tt.vel}
			next, _ := Advance(p, Pointer{}, testBounds, quietConfig(), rand.New(rand.NewSource(1)))
			if next.Vel != tt.wantVel {
				t.Errorf("Vel = %+v, 期望 %+v", next.Vel, tt.wantVel)
			}
			want := tt.pos.Add(tt.vel)
			if next.Pos != want {
				t.Errorf("Pos = %+v, 期望 %+v（不修正位置）", next.Pos, want)
			}
		})
	}
}

func TestNewParticleRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		p := NewParticle(testBounds, rng)
		if p.Pos.X < 0 || p.Pos.X >= 800 || p.Pos.Y < 0 || p.Pos.Y >= 600 {
			t.Fatalf("位置越界: %+v", p.Pos)
		}
		if math.Abs(p.Vel.X) > 0.25 || math.Abs(p.Vel.Y) > 0.25 {
			t.Fatalf("速度越界: %+v", p.Vel)
		}
		if p.Size < 1 || p.Size >= 3 {
			t.Fatalf("Size = %v", p.Size)
		}
		if p.LeadAlpha < 0.2 || p.LeadAlpha >= 0.7 || p.GoldAlpha < 0.2 || p.GoldAlpha >= 1 {
			t.Fatalf("Alpha 越界: %v / %v", p.LeadAlpha, p.GoldAlpha)
		}
		if p.Transmuted || p.Progress != 0 {
			t.Fatal("新粒子应为铅")
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"默认配置", func(*Config) {}, false},
		{"超过推荐数量仅警告", func(c *Config) { c.Particles = 500 }, false},
		{"负粒子数", func(c *Config) { c.Particles = -1 }, true},
		{"概率越界", func(c *Config) { c.PointerSparkChance = 1.5 }, true},
		{"进度步长为 0", func(c *Config) { c.ProgressStep = 0 }, true},
		{"负半径", func(c *Config) { c.Radius = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
