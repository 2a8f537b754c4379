package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gonewx/magnumopus/pkg/alchemy"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 每个字符格对应的画布像素
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

const (
	runeBond  = '·'
	runeGlow  = '░'
	runeLead  = '•'
	runeGold  = '●'
	runeBlank = ' '
)

// termSurface 把粒子引擎的绘制调用落到字符格上
//
// 画布占据屏幕的前 rows 行；同一格内后绘制的覆盖先绘制的，
// 柔光与连线只写入空格子。
type termSurface struct {
	screen     tcell.Screen
	cols, rows int
	background utils.Paint
	occupied   []bool
}

var _ alchemy.Surface = (*termSurface)(nil)

func newTermSurface(screen tcell.Screen, cols, rows int) *termSurface {
	s := &termSurface{screen: screen, background: utils.Void}
	s.Resize(cols, rows)
	return s
}

// Resize 更新可绘制的字符格范围
func (s *termSurface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.occupied = make([]bool, s.cols*s.rows)
}

// CanvasBounds 字符格范围对应的画布尺寸
func (s *termSurface) CanvasBounds() utils.Viewport {
	return utils.Viewport{Width: float64(s.cols) * cellWidth, Height: float64(s.rows) * cellHeight}
}

// CellAt 画布坐标所在的字符格
func CellAt(p utils.Point) (x, y int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

// CellCenter 字符格中心的画布坐标
func CellCenter(x, y int) utils.Point {
	return utils.Point{X: (float64(x) + 0.5) * cellWidth, Y: (float64(y) + 0.5) * cellHeight}
}

// termColor 按透明度与背景混合后转换为终端真彩色
func termColor(paint, background utils.Paint) tcell.Color {
	c := utils.BlendPaint(background, paint.WithAlpha(1), paint.A)
	r, g, b := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (s *termSurface) style(paint utils.Paint) tcell.Style {
	return tcell.StyleDefault.
		Foreground(termColor(paint, s.background)).
		Background(termColor(s.background, s.background))
}

func (s *termSurface) set(x, y int, r rune, paint utils.Paint, overwrite bool) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	i := y*s.cols + x
	if s.occupied[i] && !overwrite {
		return
	}
	s.occupied[i] = true
	s.screen.SetContent(x, y, r, nil, s.style(paint))
}

// Clear 清空画布区域
func (s *termSurface) Clear() {
	st := s.style(s.background)
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.screen.SetContent(x, y, runeBlank, nil, st)
		}
	}
	clear(s.occupied)
}

// Line 沿线段逐格采样
func (s *termSurface) Line(from, to utils.Point, _ float64, paint utils.Paint) {
	d := to.Sub(from)
	steps := int(math.Ceil(math.Max(math.Abs(d.X)/cellWidth, math.Abs(d.Y)/cellHeight)))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x, y := CellAt(from.Add(d.Scale(t)))
		s.set(x, y, runeBond, paint, false)
	}
}

// Disc 中心格画粒子，柔光覆盖半径内的空格
func (s *termSurface) Disc(center utils.Point, radius float64, paint utils.Paint, glow float64) {
	cx, cy := CellAt(center)
	if glow > 0 {
		reach := radius + glow
		rx := int(math.Ceil(reach / cellWidth))
		ry := int(math.Ceil(reach / cellHeight))
		halo := utils.BlendPaint(paint, utils.GoldBright, 0.5).WithAlpha(paint.A * 0.3)
		for y := cy - ry; y <= cy+ry; y++ {
			for x := cx - rx; x <= cx+rx; x++ {
				if (x != cx || y != cy) && CellCenter(x, y).Dist(center) <= reach {
					s.set(x, y, runeGlow, halo, false)
				}
			}
		}
	}

	s.set(cx, cy, discRune(paint), paint, true)
}

// discRune 铅粒子用小圆点，金色粒子与火花用实心圆
func discRune(paint utils.Paint) rune {
	if paint.WithAlpha(1) == utils.LeadGrey.WithAlpha(1) {
		return runeLead
	}
	return runeGold
}
