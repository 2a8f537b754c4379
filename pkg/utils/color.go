package utils

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Paint 带浮点透明度的颜色
//
// 动画里透明度是连续计算的（如 0.2×(1-d/80)），保留 float64 便于测试精确比较，
// 只有在真正绘制时才量化为 color.NRGBA。
type Paint struct {
	R, G, B uint8
	A       float64
}

// NRGBA 转换为可绘制的非预乘颜色
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(math.Round(Clamp01(p.A) * 255))}
}

// WithAlpha 返回替换透明度后的颜色
func (p Paint) WithAlpha(a float64) Paint {
	p.A = a
	return p
}

// MustHex 解析 "#RRGGBB"，解析失败时 panic（仅用于包级常量调色板）
func MustHex(hex string) Paint {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return Paint{R: r, G: g, B: b, A: 1}
}

// BlendPaint 在 Lab 空间内混合两种颜色，透明度线性插值
func BlendPaint(a, b Paint, t float64) Paint {
	t = Clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return Paint{R: r, G: g, B: bl, A: Lerp(a.A, b.A, t)}
}

// Palette 金色主题调色板
var (
	GoldMetallic = MustHex("#D4AF37")
	GoldBright   = MustHex("#FFD700")
	GoldCore     = MustHex("#FFDF00")
	GoldRim      = MustHex("#B8860B")
	GoldLight    = MustHex("#F3E5AB")
	GoldDeep     = MustHex("#8A6D1F")
	GuideStart   = MustHex("#BF953F")
	GuideMid     = MustHex("#B38728")
	GuideEnd     = MustHex("#AA771C")
	LeadGrey     = MustHex("#505050")
	Void         = MustHex("#050505")
	Charcoal     = MustHex("#121212")
	White        = MustHex("#FFFFFF")
)
