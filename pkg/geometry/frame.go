// Package geometry derives the "solve et coagula" reassembly sequence from a
// single scroll progress scalar.
//
// The sequence has three fixed phases on the master progress p:
//
//	[0, 0.6]    reassembly: scattered figure parts converge, ring glyphs fly in
//	(0.6, 0.8]  wipe: a circular clip opens over the figure
//	(0.8, 0.98] video: the cinematic layer fades and scales in
//
// DeriveFrame is a pure function of p and the (immutable) ring layout; the
// adapter in pkg/systems applies the result to visual nodes.
package geometry

import (
	"github.com/gonewx/magnumopus/pkg/utils"
)

// Phase boundaries on the master progress.
const (
	ReassemblyEnd = 0.6
	WipeStart     = 0.6
	WipeEnd       = 0.8
	VideoStart    = 0.8
	VideoEnd      = 0.98

	// ClipOvershoot 圆形裁剪半径上限（百分比），超过 100 以覆盖视口四角
	ClipOvershoot = 150.0
)

// Transform is the 2D transform + opacity applied to one figure part, around
// the figure's center.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Rotation   float64 // 度
	Scale      float64
	Opacity    float64
}

// GlyphFrame is the interpolated state of one ring glyph, relative to the
// ring center.
type GlyphFrame struct {
	Rune     rune
	X, Y     float64
	Rotation float64
	Opacity  float64
}

// WipeFrame 圆形擦除阶段
type WipeFrame struct {
	Progress     float64 // 线性
	Eased        float64 // smoothstep
	ClipRadius   float64 // 百分比
	LayerOpacity float64 // 圆环/SVG/标题层透明度，按线性进度淡出
}

// VideoFrame 影像显现阶段
type VideoFrame struct {
	Progress       float64
	Opacity        float64
	Scale          float64
	CaptionOpacity float64
}

// Frame is every visual parameter of the section for one progress value.
type Frame struct {
	Progress   float64
	Reassembly float64 // clamp(p/0.6)
	Eased      float64 // smoothstep(Reassembly)

	Outer     Transform
	TriangleA Transform
	TriangleB Transform
	Square    Transform
	Center    Transform
	Scatter   Transform

	Glyphs []GlyphFrame
	Wipe   WipeFrame
	Video  VideoFrame
}

// Part returns the transform of one figure part.
func (f *Frame) Part(p Part) (Transform, bool) {
	switch p {
	case PartOuter:
		return f.Outer, true
	case PartTriangleA:
		return f.TriangleA, true
	case PartTriangleB:
		return f.TriangleB, true
	case PartSquare:
		return f.Square, true
	case PartCenter:
		return f.Center, true
	case PartScatter:
		return f.Scatter, true
	}
	return Transform{}, false
}

// DeriveFrame 根据主进度计算整段动画的视觉参数
//
// 纯函数：相同的 p 与 layout 总是得到相同结果。layout 为 nil 时不输出字符帧。
func DeriveFrame(p float64, layout *RingLayout) Frame {
	p = utils.Clamp01(p)

	reassembly := utils.Phase(p, 0, ReassemblyEnd)
	e := utils.Smoothstep(reassembly)
	inv := 1 - e

	f := Frame{
		Progress:   p,
		Reassembly: reassembly,
		Eased:      e,

		Outer: Transform{Rotation: inv * 180, Scale: 1 + inv*0.5, Opacity: e},
		// 两个三角形从相反方向汇合
		TriangleA: Transform{TranslateY: inv * -200, Scale: 1, Opacity: e},
		TriangleB: Transform{TranslateY: inv * 200, Scale: 1, Opacity: e},
		Square:    Transform{Rotation: inv * -90, Scale: e, Opacity: e},
		Scatter:   Transform{Rotation: e * 360, Scale: 1 + e*2, Opacity: 1 - e},
	}

	// 中心标记只在重组阶段后半段出现
	centerP := utils.Clamp01((reassembly - 0.5) * 2)
	f.Center = Transform{Scale: centerP, Opacity: centerP}

	if layout != nil {
		glyphOpacity := min(1, e*2)
		f.Glyphs = make([]GlyphFrame, len(layout.Glyphs))
		for i, g := range layout.Glyphs {
			f.Glyphs[i] = GlyphFrame{
				Rune:     g.Rune,
				X:        utils.Lerp(g.StartX, g.TargetX, e),
				Y:        utils.Lerp(g.StartY, g.TargetY, e),
				Rotation: utils.Lerp(g.StartRot, g.TargetRot, e),
				Opacity:  glyphOpacity,
			}
		}
	}

	wipeP := utils.Phase(p, WipeStart, WipeEnd)
	ew := utils.Smoothstep(wipeP)
	f.Wipe = WipeFrame{
		Progress:     wipeP,
		Eased:        ew,
		ClipRadius:   ew * ClipOvershoot,
		LayerOpacity: 1 - wipeP,
	}

	videoP := utils.Phase(p, VideoStart, VideoEnd)
	f.Video = VideoFrame{
		Progress:       videoP,
		Opacity:        videoP,
		Scale:          0.95 + videoP*0.05,
		CaptionOpacity: videoP,
	}

	return f
}
