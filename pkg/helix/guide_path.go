package helix

import (
	"github.com/gonewx/magnumopus/pkg/utils"
)

// Guide path sampling.
const (
	GuideSegments    = 400
	GuideItemsSpan   = 6
	GuideDepthOffset = 40.0
	GuideStrokeWidth = 0.5
	GuideOpacity     = 0.3
)

// GuidePath is the decorative spiral line drawn behind the cards. It is
// sampled once on mount; callers decide when to resample.
type GuidePath struct {
	Viewport utils.Viewport
	Points   []utils.Point
}

// NewGuidePath 按当前视口采样引导线，返回 GuideSegments+1 个点
func NewGuidePath(vp utils.Viewport, params Params) *GuidePath {
	return &GuidePath{
		Viewport: vp,
		Points: utils.SampleSpiralPath(vp, utils.SpiralPathParams{
			SpacingY:     params.SpacingY,
			RadiusBase:   params.RadiusBase,
			AngleStepDeg: params.AngleStep,
			ItemsSpan:    GuideItemsSpan,
			Points:       GuideSegments,
			DepthOffset:  GuideDepthOffset,
		}),
	}
}

// GradientAt 沿路径位置 t∈[0,1] 的三段金色渐变
func GradientAt(t float64) utils.Paint {
	return utils.GradientAt(guideStops, t).WithAlpha(GuideOpacity)
}

var guideStops = []utils.Paint{utils.GuideStart, utils.GuideMid, utils.GuideEnd}
