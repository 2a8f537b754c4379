package components

import "github.com/gonewx/magnumopus/pkg/utils"

// SmokePuffComponent 背景烟雾中的一团
//
// 位置与半径以视口为单位（X、Y 为宽高的比例，Radius 为 vmin 的比例），
// 窗口缩放后无需重新计算。
type SmokePuffComponent struct {
	Anchor int // 所属锚点
	X, Y   float64
	Radius float64
	// NoiseOffset 在噪声场中的采样偏移，使每团漂移轨迹不同
	NoiseOffset float64
	MaxAlpha    float64
	Paint       utils.Paint
}
