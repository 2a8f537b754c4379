package helix

import (
	"github.com/gonewx/magnumopus/pkg/utils"
)

// StyleThreshold 高于此发光强度时使用强化样式
const StyleThreshold = 0.01

// Z-order of a card.
const (
	ZBaseline    = 10
	ZIntensified = 100
)

// Shadow is one box-shadow layer of a card.
type Shadow struct {
	Inset   bool
	OffsetY float64
	Blur    float64
	Paint   utils.Paint
}

// CardStyle is the visual style of a symbol card. There are exactly two
// branches: baseline and intensified.
type CardStyle struct {
	Intensified bool

	Shadows    []Shadow
	Border     utils.Paint
	Background utils.Paint
	Z          int

	HeadingUppercase bool
	HeadingPaint     utils.Paint
	LetterSpacing    float64
	HeadingGlow      float64 // 标题外发光半径，0 表示无
	HeadingGlowPaint utils.Paint
}

var (
	cardSurfaceLit  = utils.Paint{R: 20, G: 20, B: 20, A: 1}
	cardSurfaceBase = utils.Paint{R: 10, G: 10, B: 10, A: 1}
	black           = utils.Paint{A: 1}
)

// Style 根据发光强度选择卡片样式
func Style(glow float64) CardStyle {
	if glow > StyleThreshold {
		return CardStyle{
			Intensified: true,
			Shadows: []Shadow{
				{Inset: true, Blur: 15 * glow, Paint: utils.GoldCore.WithAlpha(glow * 0.9)},
				{Blur: 2 * glow, Paint: utils.GoldRim.WithAlpha(glow * 0.7)},
				{Blur: 25 * glow, Paint: utils.GoldRim.WithAlpha(glow * 0.7)},
			},
			Border:           utils.GoldBright.WithAlpha(0.4 + 0.6*glow),
			Background:       cardSurfaceLit.WithAlpha(0.3 + 0.4*glow),
			Z:                ZIntensified,
			HeadingUppercase: true,
			HeadingPaint:     utils.White,
			LetterSpacing:    2 + glow,
			HeadingGlow:      10 * glow,
			HeadingGlowPaint: utils.GoldBright.WithAlpha(0.6),
		}
	}

	return CardStyle{
		Shadows: []Shadow{
			{Inset: true, Blur: 20, Paint: utils.White.WithAlpha(0.03)},
			{OffsetY: 4, Blur: 10, Paint: black.WithAlpha(0.6)},
		},
		Border:        utils.GoldMetallic.WithAlpha(0.1),
		Background:    cardSurfaceBase.WithAlpha(0.3),
		Z:             ZBaseline,
		HeadingPaint:  utils.GoldMetallic,
		LetterSpacing: 2,
	}
}
