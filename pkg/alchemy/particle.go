// Package alchemy simulates the "lead into gold" particle field.
//
// The simulation is split into a stateless transition function (Advance,
// AdvanceSpark), an Engine that owns the particle pool for one view
// lifetime, and a Render projection onto an abstract Surface. The Engine
// never touches a window; any frame scheduler can drive it through Start.
package alchemy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// RecommendedMaxParticles 超过此数量时键合计算（O(n²)）开销明显
const RecommendedMaxParticles = 200

// Config 粒子场参数
type Config struct {
	Particles              int     // 粒子池大小，生命周期内不变
	Radius                 float64 // 指针交互半径
	Attraction             float64 // 半径内每 tick 的速度冲量系数
	ProgressStep           float64 // 嬗变进度每 tick 增量
	SparkChance            float64 // 已嬗变粒子每 tick 额外火花概率
	PointerSparkChance     float64 // 每次指针移动产生火花的概率
	SparksPerTransmutation int
	BondDistance           float64
	BondAlpha              float64
	SparkDrift             float64 // 火花每 tick 上浮距离
	Seed                   int64   // 0 表示使用时间种子
}

// DefaultConfig returns the tuning of the transmutation section.
func DefaultConfig() Config {
	return Config{
		Particles:              200,
		Radius:                 100,
		Attraction:             0.0001,
		ProgressStep:           0.05,
		SparkChance:            0.005,
		PointerSparkChance:     0.3,
		SparksPerTransmutation: 3,
		BondDistance:           80,
		BondAlpha:              0.2,
		SparkDrift:             0.5,
	}
}

// Validate checks the ranges of every field. A pool larger than
// RecommendedMaxParticles is allowed but logged.
func (c Config) Validate() error {
	var errs []error
	if c.Particles < 0 {
		errs = append(errs, fmt.Errorf("particles must be >= 0, got %d", c.Particles))
	}
	if c.Radius < 0 || c.BondDistance < 0 {
		errs = append(errs, fmt.Errorf("radius and bond distance must be >= 0, got %v / %v", c.Radius, c.BondDistance))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spark chance", c.SparkChance},
		{"pointer spark chance", c.PointerSparkChance},
		{"bond alpha", c.BondAlpha},
	} {
		if f.v < 0 || f.v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", f.name, f.v))
		}
	}
	if c.ProgressStep <= 0 {
		errs = append(errs, fmt.Errorf("progress step must be > 0, got %v", c.ProgressStep))
	}
	if c.SparksPerTransmutation < 0 {
		errs = append(errs, fmt.Errorf("sparks per transmutation must be >= 0, got %d", c.SparksPerTransmutation))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	if c.Particles > RecommendedMaxParticles {
		logger.Warn("[Alchemy] particle pool exceeds recommended size, bond pass is O(n²)",
			zap.Int("particles", c.Particles),
			zap.Int("recommended", RecommendedMaxParticles))
	}
	return nil
}

// Particle is one unit of matter. Transmuted is one-way: once set it never
// clears.
type Particle struct {
	Pos  utils.Point
	Vel  utils.Point
	Size float64

	LeadAlpha float64
	GoldAlpha float64

	Transmuted bool
	Progress   float64 // 嬗变视觉进度 [0,1]
}

// Alpha 当前状态对应的透明度
func (p Particle) Alpha() float64 {
	if p.Transmuted {
		return p.GoldAlpha
	}
	return p.LeadAlpha
}

// Radius 绘制半径，随嬗变进度放大至 1.5 倍
func (p Particle) Radius() float64 {
	return p.Size * (1 + p.Progress*0.5)
}

// Pointer is the last known pointer position in canvas-local coordinates.
type Pointer struct {
	Pos     utils.Point
	Present bool
}

// NewParticle 在画布范围内随机生成一个铅粒子
func NewParticle(bounds utils.Viewport, rng *rand.Rand) Particle {
	return Particle{
		Pos:       utils.Point{X: rng.Float64() * bounds.Width, Y: rng.Float64() * bounds.Height},
		Vel:       utils.Point{X: (rng.Float64() - 0.5) * 0.5, Y: (rng.Float64() - 0.5) * 0.5},
		Size:      rng.Float64()*2 + 1,
		LeadAlpha: rng.Float64()*0.5 + 0.2,
		GoldAlpha: rng.Float64()*0.8 + 0.2,
	}
}

// Advance 计算粒子的下一 tick 状态，返回新状态与需要在其位置生成的火花数
//
// 顺序：移动，越界反弹，指针交互（首次进入半径即嬗变，半径内持续吸引），
// 嬗变进度递增，已嬗变粒子按概率额外生成火花。
func Advance(p Particle, ptr Pointer, bounds utils.Viewport, cfg Config, rng *rand.Rand) (Particle, int) {
	spawned := 0

	p.Pos = p.Pos.Add(p.Vel)
	// 只翻转速度，不修正位置
	if p.Pos.X < 0 || p.Pos.X > bounds.Width {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > bounds.Height {
		p.Vel.Y = -p.Vel.Y
	}

	if ptr.Present {
		d := ptr.Pos.Sub(p.Pos)
		if math.Hypot(d.X, d.Y) < cfg.Radius {
			if !p.Transmuted {
				p.Transmuted = true
				spawned += cfg.SparksPerTransmutation
			}
			p.Vel = p.Vel.Add(d.Scale(cfg.Attraction))
		}
	}

	if p.Transmuted {
		if p.Progress < 1 {
			p.Progress = math.Min(1, p.Progress+cfg.ProgressStep)
		}
		if rng.Float64() < cfg.SparkChance {
			spawned++
		}
	}
	return p, spawned
}
