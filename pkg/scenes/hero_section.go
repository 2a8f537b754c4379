package scenes

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/scroll"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 首屏参数
const (
	HeroParallaxFactor = 0.03

	heroOuterPeriod = 60.0 // 外环一周的秒数
	heroInnerPeriod = 45.0 // 内环反向一周的秒数
	heroFloatPeriod = 6.0
	heroFloatHeight = 20.0
	heroQuoteWidth  = 672.0
	heroActionPadX  = 32.0
	heroActionH     = 44.0
	heroHoverTime   = 0.25
)

// 外环图案（500×500 视图坐标）
var (
	heroCenter       = utils.Point{X: 250, Y: 250}
	heroTriangleUp   = []utils.Point{{X: 250, Y: 50}, {X: 423, Y: 350}, {X: 77, Y: 350}}
	heroTriangleDown = []utils.Point{{X: 250, Y: 450}, {X: 423, Y: 150}, {X: 77, Y: 150}}
)

// HeroParallax 内容随指针相对区块中心的偏移反向跟随
func HeroParallax(cursor, center utils.Point) utils.Point {
	return cursor.Sub(center).Scale(HeroParallaxFactor)
}

// heroSection 首屏：旋转的圣环、视差标题与入口按钮
type heroSection struct {
	content config.HeroContent

	elapsed  float64
	parallax utils.Point
	hover    float64 // 按钮悬停过渡 0~1
	action   scroll.Box

	eyebrowFace *text.GoTextFace
	titleFace   *text.GoTextFace
	quoteFace   *text.GoTextFace
	actionFace  *text.GoTextFace
}

func newHeroSection(content config.HeroContent, vp utils.Viewport) *heroSection {
	h := &heroSection{
		content:     content,
		eyebrowFace: newFace(utils.FontRegular, 14),
		quoteFace:   newFace(utils.FontItalic, 22),
		actionFace:  newFace(utils.FontRegular, 12),
	}
	h.Resize(vp)
	return h
}

// Resize 标题字号随视口宽度变化
func (h *heroSection) Resize(vp utils.Viewport) {
	h.titleFace = newFace(utils.FontBold, utils.Clamp(vp.Width*0.1, 48, 128))
}

// Update 推进动画；cursorOK=false 或指针不在区块内时视差归零
func (h *heroSection) Update(deltaTime float64, rect scroll.Rect, vp utils.Viewport, cursor utils.Point, cursorOK bool) {
	h.elapsed += deltaTime

	inside := cursorOK && cursor.Y >= rect.Top && cursor.Y < rect.Bottom()
	if inside {
		h.parallax = HeroParallax(cursor, utils.Point{X: vp.Width / 2, Y: rect.Top + rect.Height/2})
	} else {
		h.parallax = utils.Point{}
	}

	step := deltaTime / heroHoverTime
	if cursorOK && boxContains(h.action, cursor) {
		h.hover = math.Min(1, h.hover+step)
	} else {
		h.hover = math.Max(0, h.hover-step)
	}
}

// HitAction 点击是否落在入口按钮上（使用上一帧的布局）
func (h *heroSection) HitAction(p utils.Point) bool {
	return boxContains(h.action, p)
}

// Draw 在区块 rect 内绘制首屏
func (h *heroSection) Draw(screen *ebiten.Image, vp utils.Viewport, rect scroll.Rect) {
	center := utils.Point{X: vp.Width / 2, Y: rect.Top + rect.Height/2}

	softGlow(screen, center, math.Min(400, vp.VMin()*0.6), gold600.WithAlpha(0.05*pulseSlow(h.elapsed)))
	h.drawRings(screen, vp, center)
	h.drawContent(screen, vp, center.Add(h.parallax))
}

func (h *heroSection) drawRings(screen *ebiten.Image, vp utils.Viewport, center utils.Point) {
	outerK := math.Min(800, vp.VMin()*1.1) / 500
	a := utils.NewAffine(center, heroCenter, outerK, 1, h.elapsed*360/heroOuterPeriod, utils.Point{})
	outer := gold400.WithAlpha(0.2)

	utils.StrokeCircle(screen, center, a.Length(240), a.Length(2), outer)
	utils.StrokeCircle(screen, center, a.Length(220), a.Length(1), outer)
	for _, tri := range [][]utils.Point{heroTriangleUp, heroTriangleDown} {
		pts := make([]utils.Point, len(tri))
		for i, p := range tri {
			pts[i] = a.Apply(p)
		}
		utils.StrokePolyline(screen, pts, true, a.Length(1.5), outer)
	}
	for _, p := range heroTriangleUp {
		utils.FillCircle(screen, a.Apply(p), a.Length(10), outer)
	}

	innerK := math.Min(500, vp.VMin()*0.7) / 500
	b := utils.NewAffine(center, heroCenter, innerK, 1, -h.elapsed*360/heroInnerPeriod, utils.Point{})
	inner := gold200.WithAlpha(0.2)

	utils.StrokeCircle(screen, center, b.Length(150), b.Length(2), inner)
	square := diamond(heroCenter, 75*math.Sqrt2)
	for i, p := range square {
		square[i] = b.Apply(p)
	}
	utils.StrokePolyline(screen, square, true, b.Length(1), inner)
	utils.StrokeCircle(screen, center, b.Length(50), b.Length(1), inner)
}

func (h *heroSection) drawContent(screen *ebiten.Image, vp utils.Viewport, c utils.Point) {
	var quote []string
	for _, line := range strings.Split(h.content.Quote, "\n") {
		quote = append(quote, utils.WrapText(line, h.quoteFace, math.Min(heroQuoteWidth, vp.Width-32))...)
	}

	titleSize := 0.0
	if h.titleFace != nil {
		titleSize = h.titleFace.Size
	}
	quoteLH := 22 * 1.6
	total := 14 + 16 + titleSize + 24 + float64(len(quote))*quoteLH + 40 + heroActionH + 48 + 64
	y := c.Y - total/2

	lift := heroFloatHeight * (0.5 - 0.5*math.Cos(2*math.Pi*h.elapsed/heroFloatPeriod))
	utils.DrawSpacedText(screen, upper(h.content.Eyebrow), h.eyebrowFace, c.X, y-lift, 7, gold500)
	y += 14 + 16

	utils.DrawTextCentered(screen, h.content.Title, h.titleFace, c.X, y+6, black.WithAlpha(0.6))
	utils.DrawTextCentered(screen, h.content.Title, h.titleFace, c.X, y, utils.GoldMetallic)
	y += titleSize + 24

	y = utils.DrawTextLines(screen, quote, h.quoteFace, c.X, y, quoteLH, gray400)
	y += 40

	h.drawAction(screen, c.X, y)
	y += heroActionH + 48

	utils.GradientLine(screen, utils.Point{X: c.X, Y: y}, utils.Point{X: c.X, Y: y + 64}, 1, gold300, gold300.WithAlpha(0))
}

func (h *heroSection) drawAction(screen *ebiten.Image, cx, top float64) {
	label := upper(h.content.Action)
	const spacing = 12 * 0.3
	labelW := spacedWidth(label, h.actionFace, spacing)
	const arrow = 16.0
	w := heroActionPadX*2 + labelW + 12 + arrow
	x := cx - w/2
	h.action = scroll.Box{X: x, Y: top, W: w, H: heroActionH}

	utils.FillRect(screen, x, top, w, heroActionH, utils.Void)
	utils.FillRect(screen, x, top, w*utils.EaseOutQuad(h.hover), heroActionH, gold500.WithAlpha(0.1))
	if h.hover > 0 {
		softGlow(screen, utils.Point{X: cx, Y: top + heroActionH/2}, w*0.6, gold300.WithAlpha(0.15*h.hover))
	}
	border := utils.BlendPaint(gold500.WithAlpha(0.5), gold300, h.hover)
	utils.StrokeRect(screen, x, top, w, heroActionH, 1, border)

	labelPaint := utils.BlendPaint(gold300, gold200, h.hover)
	labelCX := x + heroActionPadX + labelW/2
	utils.DrawSpacedText(screen, label, h.actionFace, labelCX, top+heroActionH/2-8, spacing, labelPaint)
	drawArrowDown(screen, x+w-heroActionPadX-arrow/2, top+heroActionH/2+4*h.hover, arrow, labelPaint)
}
