package scenes

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/scroll"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// newFace 创建字体，失败时返回 nil，对应文本不绘制
func newFace(style utils.FontStyle, size float64) *text.GoTextFace {
	face, err := utils.NewFace(style, size)
	if err != nil {
		logger.Warn("[Scene] font unavailable", zap.Float64("size", size), zap.Error(err))
		return nil
	}
	return face
}

func upper(s string) string {
	return strings.ToUpper(s)
}

func boxContains(b scroll.Box, p utils.Point) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// pillOutline 圆角胶囊轮廓（两端为半圆）
func pillOutline(x, y, w, h float64) []utils.Point {
	const arcSteps = 12
	r := math.Min(h/2, w/2)
	pts := make([]utils.Point, 0, 2*(arcSteps+1))
	right := utils.Point{X: x + w - r, Y: y + r}
	left := utils.Point{X: x + r, Y: y + r}
	for i := 0; i <= arcSteps; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/arcSteps
		pts = append(pts, utils.Point{X: right.X + r*math.Cos(a), Y: right.Y + r*math.Sin(a)})
	}
	for i := 0; i <= arcSteps; i++ {
		a := math.Pi/2 + math.Pi*float64(i)/arcSteps
		pts = append(pts, utils.Point{X: left.X + r*math.Cos(a), Y: left.Y + r*math.Sin(a)})
	}
	return pts
}

func fillPill(dst *ebiten.Image, x, y, w, h float64, paint utils.Paint) {
	r := math.Min(h/2, w/2)
	utils.FillRect(dst, x+r, y, w-2*r, h, paint)
	utils.FillCircle(dst, utils.Point{X: x + r, Y: y + r}, r, paint)
	utils.FillCircle(dst, utils.Point{X: x + w - r, Y: y + r}, r, paint)
}

func strokePill(dst *ebiten.Image, x, y, w, h, width float64, paint utils.Paint) {
	utils.StrokePolyline(dst, pillOutline(x, y, w, h), true, width, paint)
}

// diamond 以 c 为中心、半对角线 r 的菱形
func diamond(c utils.Point, r float64) []utils.Point {
	return []utils.Point{
		{X: c.X, Y: c.Y - r},
		{X: c.X + r, Y: c.Y},
		{X: c.X, Y: c.Y + r},
		{X: c.X - r, Y: c.Y},
	}
}

// drawArrowDown 向下的箭头图标，(cx, cy) 为中心
func drawArrowDown(dst *ebiten.Image, cx, cy, size float64, paint utils.Paint) {
	h := size / 2
	utils.StrokeLine(dst, utils.Point{X: cx, Y: cy - h}, utils.Point{X: cx, Y: cy + h}, 1.5, paint)
	utils.StrokeLine(dst, utils.Point{X: cx - h*0.7, Y: cy + h*0.3}, utils.Point{X: cx, Y: cy + h}, 1.5, paint)
	utils.StrokeLine(dst, utils.Point{X: cx + h*0.7, Y: cy + h*0.3}, utils.Point{X: cx, Y: cy + h}, 1.5, paint)
}

// softGlow 以多层同心圆近似 blur 光晕
func softGlow(dst *ebiten.Image, c utils.Point, r float64, paint utils.Paint) {
	const layers = 6
	for i := 0; i < layers; i++ {
		k := 1 - 0.8*float64(i)/layers
		utils.FillCircle(dst, c, r*k, paint.WithAlpha(paint.A/layers*2))
	}
}

// pulseSlow tailwind animate-pulse（4 秒周期，透明度 1→0.5→1）
func pulseSlow(t float64) float64 {
	return 0.75 + 0.25*math.Cos(2*math.Pi*t/4)
}

// textWidth 测量单行文本宽度
func textWidth(s string, face *text.GoTextFace) float64 {
	if face == nil || s == "" {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

// drawTextLeft 以 (x, y) 为左上角绘制文本
func drawTextLeft(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, paint utils.Paint) {
	if face == nil || paint.A <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(paint.NRGBA())
	text.Draw(dst, s, face, op)
}

// spacedWidth DrawSpacedText 绘制后的总宽度
func spacedWidth(s string, face *text.GoTextFace, spacing float64) float64 {
	if face == nil || s == "" {
		return 0
	}
	total := 0.0
	n := 0
	for _, r := range s {
		w, _ := text.Measure(string(r), face, 0)
		total += w
		n++
	}
	return total + spacing*float64(n-1)
}
