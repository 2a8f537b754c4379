package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Affine 二维相似变换：先缩放旋转，再平移
type Affine struct {
	origin Point   // 变换中心（屏幕坐标）
	pivot  Point   // 变换中心（局部坐标）
	k      float64 // 局部单位到像素
	scale  float64
	sin    float64
	cos    float64
	shift  Point // 局部单位的平移
}

// NewAffine 以 pivot（局部坐标）对齐到 origin（屏幕坐标），k 为局部单位到像素的比例
func NewAffine(origin, pivot Point, k, scale, rotationDeg float64, shift Point) Affine {
	sin, cos := math.Sincos(rotationDeg * math.Pi / 180)
	return Affine{origin: origin, pivot: pivot, k: k, scale: scale, sin: sin, cos: cos, shift: shift}
}

// Apply 变换一个局部坐标点
func (a Affine) Apply(p Point) Point {
	d := p.Sub(a.pivot).Scale(a.scale)
	r := Point{X: d.X*a.cos - d.Y*a.sin, Y: d.X*a.sin + d.Y*a.cos}
	return a.origin.Add(r.Add(a.shift).Scale(a.k))
}

// Length 变换一段局部长度
func (a Affine) Length(v float64) float64 {
	return v * a.scale * a.k
}

// StrokeLine 绘制抗锯齿线段，透明或零宽时跳过
func StrokeLine(dst *ebiten.Image, from, to Point, width float64, paint Paint) {
	if paint.A <= 0 || width <= 0 {
		return
	}
	vector.StrokeLine(dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), paint.NRGBA(), true)
}

// StrokePolyline 逐段绘制折线，closed 时首尾相连
func StrokePolyline(dst *ebiten.Image, pts []Point, closed bool, width float64, paint Paint) {
	for i := 1; i < len(pts); i++ {
		StrokeLine(dst, pts[i-1], pts[i], width, paint)
	}
	if closed && len(pts) > 2 {
		StrokeLine(dst, pts[len(pts)-1], pts[0], width, paint)
	}
}

// FillCircle 填充圆
func FillCircle(dst *ebiten.Image, c Point, r float64, paint Paint) {
	if paint.A <= 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(r), paint.NRGBA(), true)
}

func StrokeCircle(dst *ebiten.Image, c Point, r, width float64, paint Paint) {
	if paint.A <= 0 || r <= 0 || width <= 0 {
		return
	}
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y), float32(r), float32(width), paint.NRGBA(), true)
}

// DashedCircle 按弧长交替绘制实线与空白
func DashedCircle(dst *ebiten.Image, c Point, r, width, dash float64, paint Paint) {
	if r <= 0 || dash <= 0 {
		return
	}
	step := dash / r
	for a := 0.0; a < 2*math.Pi; a += 2 * step {
		end := math.Min(a+step, 2*math.Pi)
		const sub = 3
		prev := Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
		for i := 1; i <= sub; i++ {
			t := a + (end-a)*float64(i)/sub
			cur := Point{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
			StrokeLine(dst, prev, cur, width, paint)
			prev = cur
		}
	}
}

// FillRect 填充矩形
func FillRect(dst *ebiten.Image, x, y, w, h float64, paint Paint) {
	if paint.A <= 0 || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), paint.NRGBA(), true)
}

func StrokeRect(dst *ebiten.Image, x, y, w, h, width float64, paint Paint) {
	if paint.A <= 0 || w <= 0 || h <= 0 {
		return
	}
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), paint.NRGBA(), true)
}

// DrawSpacedText 逐字绘制带字间距的居中文本（CSS letter-spacing）
func DrawSpacedText(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y, spacing float64, paint Paint) {
	if face == nil || paint.A <= 0 || s == "" {
		return
	}
	runes := []rune(s)
	widths := make([]float64, len(runes))
	total := 0.0
	for i, r := range runes {
		widths[i], _ = text.Measure(string(r), face, 0)
		total += widths[i]
	}
	total += spacing * float64(len(runes)-1)

	x := cx - total/2
	for i, r := range runes {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(paint.NRGBA())
		text.Draw(dst, string(r), face, op)
		x += widths[i] + spacing
	}
}

// DrawRotatedText 以 (x, y) 为中心绘制旋转后的文本
func DrawRotatedText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y, rotationDeg float64, paint Paint) {
	if face == nil || paint.A <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Rotate(rotationDeg * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(paint.NRGBA())
	text.Draw(dst, s, face, op)
}

// GradientLine 沿线段绘制透明度渐变（CSS linear-gradient 的近似）
// stops 为等距分布的颜色节点，至少两个
func GradientLine(dst *ebiten.Image, from, to Point, width float64, stops ...Paint) {
	if len(stops) < 2 {
		if len(stops) == 1 {
			StrokeLine(dst, from, to, width, stops[0])
		}
		return
	}
	const segments = 24
	d := to.Sub(from)
	for i := 0; i < segments; i++ {
		t0 := float64(i) / segments
		t1 := float64(i+1) / segments
		StrokeLine(dst, from.Add(d.Scale(t0)), from.Add(d.Scale(t1)), width, GradientAt(stops, (t0+t1)/2))
	}
}

// GradientAt 在等距颜色节点上按 t∈[0,1] 取色
func GradientAt(stops []Paint, t float64) Paint {
	switch len(stops) {
	case 0:
		return Paint{}
	case 1:
		return stops[0]
	}
	t = Clamp01(t) * float64(len(stops)-1)
	i := min(int(t), len(stops)-2)
	return BlendPaint(stops[i], stops[i+1], t-float64(i))
}
