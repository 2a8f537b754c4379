package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/magnumopus/pkg/alchemy"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// glowSteps 柔光的层数
const glowSteps = 3

// Halo 一层柔光
type Halo struct {
	Radius float64
	Paint  utils.Paint
}

// GlowHalos 计算粒子外围的柔光层（近似 canvas shadowBlur）
//
// 颜色向亮金偏移，透明度由内向外递减；glow <= 0 时没有柔光。
func GlowHalos(radius float64, paint utils.Paint, glow float64) []Halo {
	if glow <= 0 || paint.A <= 0 {
		return nil
	}
	tint := utils.BlendPaint(paint, utils.GoldBright, 0.5)
	halos := make([]Halo, 0, glowSteps)
	for i := glowSteps; i >= 1; i-- {
		k := float64(i) / glowSteps
		halos = append(halos, Halo{
			Radius: radius + glow*k,
			Paint:  tint.WithAlpha(paint.A * 0.3 * (1 - k*0.6)),
		})
	}
	return halos
}

// AlchemySurface 把粒子引擎的绘制调用落到 Ebitengine 图像上
//
// 画布位于屏幕 Origin 处，尺寸为 Size；坐标按画布本地坐标给出。
type AlchemySurface struct {
	Target     *ebiten.Image
	Origin     utils.Point
	Size       utils.Viewport
	Background utils.Paint
}

var _ alchemy.Surface = (*AlchemySurface)(nil)

// Clear 用背景色填充画布区域
func (s *AlchemySurface) Clear() {
	if s.Target == nil {
		return
	}
	utils.FillRect(s.Target, s.Origin.X, s.Origin.Y, s.Size.Width, s.Size.Height, s.Background)
}

// Line 绘制线段
func (s *AlchemySurface) Line(from, to utils.Point, width float64, paint utils.Paint) {
	if s.Target == nil {
		return
	}
	utils.StrokeLine(s.Target, from.Add(s.Origin), to.Add(s.Origin), width, paint)
}

// Disc 绘制实心圆与柔光
func (s *AlchemySurface) Disc(center utils.Point, radius float64, paint utils.Paint, glow float64) {
	if s.Target == nil {
		return
	}
	c := center.Add(s.Origin)
	for _, h := range GlowHalos(radius, paint, glow) {
		utils.FillCircle(s.Target, c, h.Radius, h.Paint)
	}
	utils.FillCircle(s.Target, c, radius, paint)
}
