package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// mustFace 创建字体，失败时返回 nil（文本绘制会被跳过）
func mustFace(style utils.FontStyle, size float64) *text.GoTextFace {
	face, err := utils.NewFace(style, size)
	if err != nil {
		logger.Warn("[Render] font unavailable, text will be skipped", zap.Float64("size", size), zap.Error(err))
		return nil
	}
	return face
}

// pulse 0.5~1 之间往复的透明度（周期 2 秒）
func pulse(t float64) float64 {
	return 0.75 + 0.25*math.Cos(t*math.Pi)
}
