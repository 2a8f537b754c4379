package alchemy

import (
	"github.com/gonewx/magnumopus/pkg/utils"
)

// Stroke widths used by the projection.
const (
	BondWidth  = 0.5
	SparkWidth = 1.0
	GlowBlur   = 10.0
)

// Surface receives the draw calls of one frame. Implementations exist for
// Ebitengine (pkg/systems) and the terminal viewer (cmd/alchemy-term).
type Surface interface {
	Clear()
	Line(from, to utils.Point, width float64, paint utils.Paint)
	// Disc 绘制实心圆；glow > 0 时在其外围叠加 glow 半径的柔光
	Disc(center utils.Point, radius float64, paint utils.Paint, glow float64)
}

// ParticlePaint 粒子当前颜色：铅灰或金色，透明度为各自的随机值
func ParticlePaint(p Particle) utils.Paint {
	if p.Transmuted {
		return utils.GoldMetallic.WithAlpha(p.GoldAlpha)
	}
	return utils.LeadGrey.WithAlpha(p.LeadAlpha)
}

// SparkPaint 火花颜色，透明度随寿命衰减
func SparkPaint(s Spark) utils.Paint {
	c := utils.GoldBright
	if s.Pointer {
		c = utils.White
	}
	return c.WithAlpha(max(0, s.Life))
}

// Render projects the current engine state onto s: clear, bonds, particles,
// then sparks drawn as a small cross with a dot.
func (e *Engine) Render(s Surface) {
	s.Clear()

	for _, b := range e.bonds {
		s.Line(b.From, b.To, BondWidth, utils.GoldMetallic.WithAlpha(b.Alpha))
	}

	for _, p := range e.particles {
		glow := 0.0
		if p.Transmuted {
			glow = GlowBlur * p.Progress
		}
		s.Disc(p.Pos, p.Radius(), ParticlePaint(p), glow)
	}

	for _, sp := range e.sparks {
		paint := SparkPaint(sp)
		s.Line(utils.Point{X: sp.Pos.X, Y: sp.Pos.Y - sp.Size}, utils.Point{X: sp.Pos.X, Y: sp.Pos.Y + sp.Size}, SparkWidth, paint)
		s.Line(utils.Point{X: sp.Pos.X - sp.Size, Y: sp.Pos.Y}, utils.Point{X: sp.Pos.X + sp.Size, Y: sp.Pos.Y}, SparkWidth, paint)
		s.Disc(sp.Pos, sp.Size/2, paint, 0)
	}
}
