package geometry

import (
	"math"
	"math/rand"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// RingRadiusVMin 文字环半径（vmin 的百分比）
const RingRadiusVMin = 42.0

// RingGlyph holds the fixed endpoints of one glyph's flight, relative to the
// ring center.
type RingGlyph struct {
	Rune             rune
	StartX, StartY   float64
	StartRot         float64
	TargetX, TargetY float64
	TargetRot        float64
}

// RingLayout is computed once when the section mounts. It is never
// recomputed on resize.
type RingLayout struct {
	Viewport utils.Viewport
	Radius   float64
	Glyphs   []RingGlyph
}

// NewRingLayout 为短语中的每个字符计算起点与目标点
//
// 起点在 1.5 倍视口范围内均匀随机，目标点均匀分布在半径 42vmin 的圆上，
// 第一个字符位于正上方。rng 为 nil 时使用固定种子。
func NewRingLayout(vp utils.Viewport, phrase string, rng *rand.Rand) *RingLayout {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	runes := []rune(phrase)
	layout := &RingLayout{
		Viewport: vp,
		Radius:   RingRadiusVMin * vp.VMin() / 100,
		Glyphs:   make([]RingGlyph, len(runes)),
	}
	if len(runes) == 0 {
		return layout
	}

	step := 360.0 / float64(len(runes))
	for i, r := range runes {
		theta := (float64(i)*step - 90) * math.Pi / 180
		layout.Glyphs[i] = RingGlyph{
			Rune:      r,
			TargetX:   layout.Radius * math.Cos(theta),
			TargetY:   layout.Radius * math.Sin(theta),
			TargetRot: float64(i) * step,
			StartX:    (rng.Float64() - 0.5) * vp.Width * 1.5,
			StartY:    (rng.Float64() - 0.5) * vp.Height * 1.5,
			StartRot:  rng.Float64() * 360,
		}
	}
	return layout
}
