package geometry

import (
	"math/rand"
)

// Glow flicker timing, in seconds.
const (
	GlowDuration = 2.0
	GlowDelayMin = 0.1
	GlowDelayMax = 0.8
)

// GlowScheduler lights a random figure stroke for GlowDuration, then picks
// the next one after a random 100–800 ms delay. Several strokes may be lit at
// the same time.
//
// It is driven purely by Update(dt); nothing happens between calls.
type GlowScheduler struct {
	strokes int
	rng     *rand.Rand

	now      float64
	nextAt   float64
	litUntil map[int]float64
}

// NewGlowScheduler 创建调度器。initialDelay 秒后第一次触发；strokes 为 0 时永不触发。
func NewGlowScheduler(strokes int, initialDelay float64, rng *rand.Rand) *GlowScheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &GlowScheduler{
		strokes:  strokes,
		rng:      rng,
		nextAt:   max(0, initialDelay),
		litUntil: make(map[int]float64),
	}
}

// Update advances the scheduler clock by dt seconds.
func (g *GlowScheduler) Update(dt float64) {
	if dt < 0 {
		return
	}
	g.now += dt

	for i, until := range g.litUntil {
		if g.now >= until {
			delete(g.litUntil, i)
		}
	}

	if g.strokes <= 0 {
		return
	}
	// 一帧过长时可能错过多次触发，逐个补齐
	for g.now >= g.nextAt {
		idx := g.rng.Intn(g.strokes)
		until := g.nextAt + GlowDuration
		if until > g.now {
			g.litUntil[idx] = max(g.litUntil[idx], until)
		}
		g.nextAt += GlowDelayMin + g.rng.Float64()*(GlowDelayMax-GlowDelayMin)
	}
}

// Active reports whether stroke i is currently lit.
func (g *GlowScheduler) Active(i int) bool {
	_, ok := g.litUntil[i]
	return ok
}

// ActiveCount 当前发光的笔画数
func (g *GlowScheduler) ActiveCount() int {
	return len(g.litUntil)
}
