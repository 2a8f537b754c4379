package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// drawSeparator 两侧渐隐金线中间一枚菱形徽记，cy 为中线
func drawSeparator(screen *ebiten.Image, vp utils.Viewport, cy, elapsed float64) {
	const (
		opacity = 0.8
		iconK   = 32.0 / 24 // 24×24 图标画到 32px
		gap     = 16.0
	)
	c := utils.Point{X: vp.Width / 2, Y: cy}
	lineW := math.Max(0, math.Min(320, vp.Width/2-gap-16-24))

	fade := gold500.WithAlpha(0)
	mid := gold500.WithAlpha(0.5 * opacity)
	end := gold300.WithAlpha(opacity)
	left := c.X - 16 - gap
	right := c.X + 16 + gap
	utils.GradientLine(screen, utils.Point{X: left - lineW, Y: cy}, utils.Point{X: left, Y: cy}, 1, fade, mid, end)
	utils.GradientLine(screen, utils.Point{X: right + lineW, Y: cy}, utils.Point{X: right, Y: cy}, 1, fade, mid, end)

	softGlow(screen, c, 22, gold500.WithAlpha(0.1*pulseSlow(elapsed)))

	stroke := gold300.WithAlpha(opacity)
	utils.StrokePolyline(screen, diamond(c, 10*iconK), true, 1.5, stroke)
	utils.StrokePolyline(screen, diamond(c, 6*iconK), true, 1.5, stroke.WithAlpha(0.6*opacity))
	utils.FillCircle(screen, c, 2*iconK, stroke)
}
