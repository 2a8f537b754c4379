package alchemy

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// AggregateCounts 粒子池统计，每 tick 全量重算
type AggregateCounts struct {
	Transmuted    int
	Untransformed int
}

// Engine is the simulation context of one transmutation view. It is created
// when the view mounts and closed when it unmounts.
//
// Engine is not safe for concurrent use: pointer events and ticks must be
// delivered from the same goroutine.
type Engine struct {
	id     uuid.UUID
	cfg    Config
	bounds utils.Viewport
	rng    *rand.Rand

	particles []Particle
	sparks    []Spark
	bonds     []Bond
	pointer   Pointer
	counts    AggregateCounts
	ticks     uint64

	loop    *loop
	stopped bool
}

// NewEngine 校验配置并在 bounds 内生成粒子池
func NewEngine(cfg Config, bounds utils.Viewport) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid alchemy config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		id:     uuid.New(),
		cfg:    cfg,
		bounds: bounds,
		rng:    rand.New(rand.NewSource(seed)),
	}
	e.particles = make([]Particle, cfg.Particles)
	for i := range e.particles {
		e.particles[i] = NewParticle(bounds, e.rng)
	}
	e.counts = AggregateCounts{Untransformed: cfg.Particles}

	logger.Info("[Alchemy] engine created",
		zap.String("id", e.id.String()),
		zap.Int("particles", cfg.Particles),
		zap.Float64("width", bounds.Width),
		zap.Float64("height", bounds.Height),
		zap.Int64("seed", seed))
	return e, nil
}

// ID 模拟上下文标识，用于日志关联
func (e *Engine) ID() uuid.UUID { return e.id }

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Bounds() utils.Viewport { return e.bounds }

// Ticks 已执行的 tick 数
func (e *Engine) Ticks() uint64 { return e.ticks }

// Tick advances the simulation by one frame: bonds are collected over the
// pre-move state, then every particle advances (spawning sparks at its new
// position), then all sparks advance and expired ones are dropped, and
// finally counts are recomputed from the whole pool.
func (e *Engine) Tick() {
	e.ticks++

	e.bonds = ComputeBonds(e.particles, e.cfg.BondDistance, e.cfg.BondAlpha)

	for i := range e.particles {
		next, spawned := Advance(e.particles[i], e.pointer, e.bounds, e.cfg, e.rng)
		e.particles[i] = next
		for range spawned {
			e.sparks = append(e.sparks, NewSpark(next.Pos, false, e.rng))
		}
	}

	alive := e.sparks[:0]
	for _, s := range e.sparks {
		s = AdvanceSpark(s, e.cfg.SparkDrift)
		if s.Alive() {
			alive = append(alive, s)
		}
	}
	clear(e.sparks[len(alive):])
	e.sparks = alive

	e.counts = countParticles(e.particles)
}

func countParticles(particles []Particle) AggregateCounts {
	var c AggregateCounts
	for _, p := range particles {
		if p.Transmuted {
			c.Transmuted++
		}
	}
	c.Untransformed = len(particles) - c.Transmuted
	return c
}

// PointerMove records the pointer in canvas-local coordinates and, with
// PointerSparkChance, spawns a white spark under it.
func (e *Engine) PointerMove(x, y float64) {
	e.pointer = Pointer{Pos: utils.Point{X: x, Y: y}, Present: true}
	if e.rng.Float64() < e.cfg.PointerSparkChance {
		e.sparks = append(e.sparks, NewSpark(e.pointer.Pos, true, e.rng))
	}
}

// PointerLeave 指针离开画布，停止交互
func (e *Engine) PointerLeave() {
	e.pointer = Pointer{}
}

// Pointer 当前指针状态
func (e *Engine) Pointer() Pointer { return e.pointer }

// Counts 返回上一次 tick 计算的统计
func (e *Engine) Counts() AggregateCounts { return e.counts }

// Particles returns a copy of the pool.
func (e *Engine) Particles() []Particle { return slices.Clone(e.particles) }

// Sparks returns a copy of the live sparks.
func (e *Engine) Sparks() []Spark { return slices.Clone(e.sparks) }

// Bonds returns the bonds collected by the last tick.
func (e *Engine) Bonds() []Bond { return slices.Clone(e.bonds) }

// Close stops the frame loop, if any. A closed engine cannot be restarted.
func (e *Engine) Close() {
	if e.stopped {
		return
	}
	if e.loop != nil {
		e.loop.cancel()
	}
	e.stopped = true
	logger.Info("[Alchemy] engine closed",
		zap.String("id", e.id.String()),
		zap.Uint64("ticks", e.ticks),
		zap.Int("transmuted", e.counts.Transmuted))
}
