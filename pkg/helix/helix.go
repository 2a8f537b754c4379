// Package helix lays out a column of cards on a 3D spiral and derives the
// focus-driven transforms from scroll progress.
//
// The whole group translates and rotates so that the "focus" index sits at
// the viewport center. Every per-item value is a function of the item's
// distance from focus, so DeriveFrame is pure and can be called on every
// scroll tick.
package helix

import (
	"math"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// Focus range bounds. For n cards the focus sweeps [-0.5, n+0.5], so the
// first card enters from below and the last one leaves the viewport.
const (
	FocusStart  = -0.5
	FocusMargin = 0.5
)

// Per-item falloff thresholds on distance from focus.
const (
	GlowRange    = 0.3
	GlowExponent = 0.6

	QuoteRange    = 0.25
	QuoteExponent = 0.5
	QuoteSlide    = 20.0

	FullOpacityRange = 0.8
)

// Params 螺旋布局参数
type Params struct {
	SpacingY        float64 // 相邻卡片垂直间距（像素）
	AngleStep       float64 // 相邻卡片绕轴角度（度）
	RadiusBase      float64 // 半径 = vmin × RadiusBase
	RotationPerItem float64 // 每经过一张卡片整体旋转的角度（度）
	Perspective     float64 // 透视距离（像素）
}

// DefaultParams returns the layout used by the symbols section.
func DefaultParams() Params {
	return Params{
		SpacingY:        800,
		AngleStep:       180,
		RadiusBase:      0.3,
		RotationPerItem: 360,
		Perspective:     1000,
	}
}

// GroupTransform is applied to the whole helix (cards and guide path).
type GroupTransform struct {
	TranslateY float64
	RotateY    float64 // 度
}

// ItemFrame is one card's state, in group-local coordinates.
type ItemFrame struct {
	Index int

	X, Y, Z float64
	RotateY float64

	Distance     float64
	Glow         float64
	QuoteOpacity float64
	QuoteOffset  float64
	Opacity      float64
	Scale        float64

	Style CardStyle
}

// Frame is the derived state of the whole helix for one progress value.
type Frame struct {
	Progress float64
	Focus    float64
	Radius   float64
	Group    GroupTransform
	Items    []ItemFrame
}

// Focus 将 [0,1] 进度映射到焦点索引，范围 [FocusStart, FocusEnd(n)]
func Focus(p float64, n int) float64 {
	p = utils.Clamp01(p)
	end := FocusEnd(n)
	return FocusStart + (end-FocusStart)*p
}

// FocusEnd is the focus reached at p = 1 for n items.
func FocusEnd(n int) float64 {
	return float64(max(n, 0)) + FocusMargin
}

// Glow intensity at distance d from focus.
func Glow(d float64) float64 {
	if d >= GlowRange {
		return 0
	}
	return math.Pow(1-d/GlowRange, GlowExponent)
}

// QuoteOpacity 引文透明度，只在焦点附近出现
func QuoteOpacity(d float64) float64 {
	if d >= QuoteRange {
		return 0
	}
	return math.Pow(1-d/QuoteRange, QuoteExponent)
}

// ItemOpacity 卡片透明度：0.8 以内完全不透明，之后按平方衰减
func ItemOpacity(d float64) float64 {
	if d < FullOpacityRange {
		return 1
	}
	return utils.Clamp01(1 - math.Pow(d-FullOpacityRange, 2))
}

// DeriveFrame computes the helix state for progress p with n cards.
func DeriveFrame(p float64, n int, vp utils.Viewport, params Params) Frame {
	p = utils.Clamp01(p)
	focus := Focus(p, n)

	f := Frame{
		Progress: p,
		Focus:    focus,
		Radius:   vp.VMin() * params.RadiusBase,
		Group: GroupTransform{
			TranslateY: -focus * params.SpacingY,
			RotateY:    -focus * params.RotationPerItem,
		},
	}
	if n <= 0 {
		return f
	}

	f.Items = make([]ItemFrame, n)
	for i := range f.Items {
		rad := float64(i) * params.AngleStep * math.Pi / 180
		d := math.Abs(focus - float64(i))

		glow := Glow(d)
		quote := QuoteOpacity(d)
		opacity := ItemOpacity(d)

		f.Items[i] = ItemFrame{
			Index:        i,
			X:            f.Radius * math.Cos(rad),
			Y:            float64(i) * params.SpacingY,
			Z:            f.Radius * math.Sin(rad),
			RotateY:      float64(i) * params.RotationPerItem,
			Distance:     d,
			Glow:         glow,
			QuoteOpacity: quote,
			QuoteOffset:  (1 - quote) * QuoteSlide,
			Opacity:      opacity,
			Scale:        0.6 + 0.4*opacity + 0.02*glow,
			Style:        Style(glow),
		}
	}
	return f
}

// Nearest 返回距离焦点最近的卡片索引；没有卡片时返回 -1
func (f *Frame) Nearest() int {
	best, bestD := -1, math.Inf(1)
	for _, it := range f.Items {
		if it.Distance < bestD {
			best, bestD = it.Index, it.Distance
		}
	}
	return best
}
