package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/scroll"
	"github.com/gonewx/magnumopus/pkg/utils"
)

const (
	footerMaxWidth = 1280.0
	footerPadX     = 24.0
	footerGlyph    = 14.0
	footerGlyphGap = 16.0
)

// footerSection 页脚：品牌、引文与三枚符号链接
type footerSection struct {
	content config.FooterContent
	compact bool

	glyphs  []scroll.Box // 上一帧符号位置
	hovered int

	brandFace *text.GoTextFace
	quoteFace *text.GoTextFace
}

func newFooterSection(content config.FooterContent, compact bool) *footerSection {
	return &footerSection{
		content:   content,
		compact:   compact,
		hovered:   -1,
		brandFace: newFace(utils.FontBold, 18),
		quoteFace: newFace(utils.FontItalic, 14),
	}
}

// Update 更新悬停的符号
func (f *footerSection) Update(cursor utils.Point, cursorOK bool) {
	f.hovered = -1
	if !cursorOK {
		return
	}
	for i, b := range f.glyphs {
		if boxContains(b, cursor) {
			f.hovered = i
		}
	}
}

// Draw 绘制页脚；紧凑模式下三部分纵向排列
func (f *footerSection) Draw(screen *ebiten.Image, vp utils.Viewport, rect scroll.Rect) {
	utils.FillRect(screen, 0, rect.Top, vp.Width, rect.Height, black)
	utils.StrokeLine(screen, utils.Point{X: 0, Y: rect.Top}, utils.Point{X: vp.Width, Y: rect.Top}, 1, gold900)

	width := math.Min(footerMaxWidth, vp.Width) - 2*footerPadX
	x0 := (vp.Width - width) / 2
	cy := rect.Top + rect.Height/2

	glyphsW := float64(len(f.content.Glyphs))*footerGlyph + float64(max(len(f.content.Glyphs)-1, 0))*footerGlyphGap
	brandW := 28 + textWidth(upper(f.content.Brand), f.brandFace)

	brandX, brandY := x0, cy
	glyphX, glyphY := x0+width-glyphsW, cy
	if f.compact {
		brandX, brandY = vp.Width/2-brandW/2, cy-48
		glyphX, glyphY = vp.Width/2-glyphsW/2, cy+32
	}
	quoteY := cy - 8

	drawSparkle(screen, utils.Point{X: brandX + 10, Y: brandY}, 9, gold700)
	drawTextLeft(screen, upper(f.content.Brand), f.brandFace, brandX+28, brandY-11, gold700)
	utils.DrawTextCentered(screen, f.content.Quote, f.quoteFace, vp.Width/2, quoteY, gray600)

	f.glyphs = f.glyphs[:0]
	for i, g := range f.content.Glyphs {
		x := glyphX + float64(i)*(footerGlyph+footerGlyphGap)
		b := scroll.Box{X: x, Y: glyphY - footerGlyph/2, W: footerGlyph, H: footerGlyph}
		f.glyphs = append(f.glyphs, b)

		paint := gray600
		if i == f.hovered {
			paint = gold500
		}
		drawGlyph(screen, g, b, paint)
	}
}

// drawGlyph 画页脚符号；已知符号用矢量绘制，其余按文本绘制
func drawGlyph(screen *ebiten.Image, g string, b scroll.Box, paint utils.Paint) {
	c := utils.Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
	r := b.W / 2
	switch g {
	case "●":
		utils.FillCircle(screen, c, r*0.8, paint)
	case "△":
		utils.StrokePolyline(screen, []utils.Point{
			{X: c.X, Y: c.Y - r}, {X: c.X + r, Y: c.Y + r*0.8}, {X: c.X - r, Y: c.Y + r*0.8},
		}, true, 1.2, paint)
	case "■":
		utils.FillRect(screen, c.X-r*0.75, c.Y-r*0.75, r*1.5, r*1.5, paint)
	default:
		face := newFace(utils.FontRegular, b.H)
		utils.DrawTextCentered(screen, g, face, c.X, b.Y, paint)
	}
}

// drawSparkle 四角星
func drawSparkle(screen *ebiten.Image, c utils.Point, r float64, paint utils.Paint) {
	pts := make([]utils.Point, 8)
	for i := range pts {
		ang := -math.Pi/2 + float64(i)*math.Pi/4
		rr := r
		if i%2 == 1 {
			rr = r * 0.3
		}
		pts[i] = utils.Point{X: c.X + rr*math.Cos(ang), Y: c.Y + rr*math.Sin(ang)}
	}
	utils.StrokePolyline(screen, pts, true, 1.2, paint)
}
