package systems

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/helix"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 卡片尺寸（像素）
const (
	CardWidth   = 260.0
	CardHeight  = 340.0
	QuoteWidth  = 240.0
	QuoteGap    = 40.0
	cardMargin  = 32.0
	orbRadius   = 44.0
	orbRings    = 12
	minCardSkew = 0.02
)

// OrbPalette 圆球的内外两色
type OrbPalette struct {
	Core utils.Paint
	Rim  utils.Paint
}

// orbPalettes 按主题名索引的圆球配色
var orbPalettes = map[string]OrbPalette{
	"lapis":   {Core: utils.MustHex("#FF6B6B"), Rim: utils.MustHex("#7A0C0C")},
	"mercury": {Core: utils.MustHex("#E8EEF5"), Rim: utils.MustHex("#4A5A70")},
	"sulphur": {Core: utils.MustHex("#FFE066"), Rim: utils.MustHex("#B35C00")},
	"salt":    {Core: utils.White, Rim: utils.MustHex("#8C8C8C")},
}

// Orb 返回主题配色，未知主题使用金色
func Orb(theme string) OrbPalette {
	if p, ok := orbPalettes[theme]; ok {
		return p
	}
	return OrbPalette{Core: utils.GoldBright, Rim: utils.GoldDeep}
}

var (
	textGrey    = utils.MustHex("#9CA3AF")
	subtleGrey  = utils.MustHex("#6B7280")
	shadowBlack = utils.Paint{A: 1}
)

// HelixRenderSystem 绘制螺旋区块：标题、引导线、卡片与引文
type HelixRenderSystem struct {
	entityManager *ecs.EntityManager
	helix         *HelixSystem
	content       config.SymbolsContent
	elapsed       float64

	titleFace       *text.GoTextFace
	subtitleFace    *text.GoTextFace
	headingFace     *text.GoTextFace
	descriptionFace *text.GoTextFace
	quoteFace       *text.GoTextFace
	sourceFace      *text.GoTextFace
	hintFace        *text.GoTextFace

	cards map[int]*ebiten.Image
}

// NewHelixRenderSystem 创建螺旋渲染系统
func NewHelixRenderSystem(em *ecs.EntityManager, hs *HelixSystem, content config.SymbolsContent) *HelixRenderSystem {
	return &HelixRenderSystem{
		entityManager:   em,
		helix:           hs,
		content:         content,
		titleFace:       mustFace(utils.FontBold, 44),
		subtitleFace:    mustFace(utils.FontRegular, 18),
		headingFace:     mustFace(utils.FontBold, 18),
		descriptionFace: mustFace(utils.FontRegular, 12),
		quoteFace:       mustFace(utils.FontItalic, 16),
		sourceFace:      mustFace(utils.FontRegular, 11),
		hintFace:        mustFace(utils.FontRegular, 12),
		cards:           make(map[int]*ebiten.Image),
	}
}

// Update 推进提示文字的呼吸动画
func (s *HelixRenderSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
}

// Draw 在 sticky 容器中绘制整个区块
func (s *HelixRenderSystem) Draw(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	if !vp.Valid() {
		return
	}
	f, ok := s.helix.Frame()
	if ok {
		s.drawGuide(screen, f.Group, vp, originY)
		s.drawCards(screen, originY)
	}
	s.drawHeader(screen, vp, originY)
	utils.DrawSpacedText(screen, s.content.Hint, s.hintFace, vp.Width/2, originY+vp.Height-52, 1.2,
		utils.GoldMetallic.WithAlpha(0.5*pulse(s.elapsed)))
}

func (s *HelixRenderSystem) drawHeader(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	cx := vp.Width / 2
	utils.DrawSpacedText(screen, s.content.Title, s.titleFace, cx, originY+48, 1, utils.GoldLight)
	utils.DrawSpacedText(screen, strings.ToUpper(s.content.Subtitle), s.subtitleFace, cx, originY+108, 3.6, subtleGrey.WithAlpha(0.6))
}

// drawGuide 引导线与卡片共享整体变换
func (s *HelixRenderSystem) drawGuide(screen *ebiten.Image, group helix.GroupTransform, vp utils.Viewport, originY float64) {
	guide := s.helix.Guide()
	if guide == nil || len(guide.Points) < 2 {
		return
	}
	persp := s.helix.Params().Perspective
	n := len(guide.Points) - 1

	prev, prevOK := helix.ProjectPoint(guide.Points[0], group, vp, persp)
	for i := 1; i <= n; i++ {
		cur, ok := helix.ProjectPoint(guide.Points[i], group, vp, persp)
		if ok && prevOK && segmentVisible(prev, cur, vp) {
			utils.StrokeLine(screen,
				utils.Point{X: prev.X, Y: prev.Y + originY},
				utils.Point{X: cur.X, Y: cur.Y + originY},
				helix.GuideStrokeWidth*2, helix.GradientAt(float64(i)/float64(n)))
		}
		prev, prevOK = cur, ok
	}
}

func segmentVisible(a, b utils.Point, vp utils.Viewport) bool {
	return math.Max(a.Y, b.Y) >= 0 && math.Min(a.Y, b.Y) <= vp.Height
}

func (s *HelixRenderSystem) drawCards(screen *ebiten.Image, originY float64) {
	entities := ecs.GetEntitiesWith1[*components.SpiralItemComponent](s.entityManager)
	items := make([]*components.SpiralItemComponent, 0, len(entities))
	for _, id := range entities {
		item, _ := ecs.GetComponent[*components.SpiralItemComponent](s.entityManager, id)
		items = append(items, item)
	}

	frames := make([]helix.ItemFrame, len(items))
	proj := make([]helix.Projection, len(items))
	for i, it := range items {
		frames[i], proj[i] = it.Frame, it.Projection
	}
	for _, i := range helix.DrawOrder(frames, proj) {
		s.drawCard(screen, items[i], originY)
	}
}

func (s *HelixRenderSystem) drawCard(screen *ebiten.Image, item *components.SpiralItemComponent, originY float64) {
	f, p := item.Frame, item.Projection
	if !p.Visible || f.Opacity <= 0 || p.Scale <= 0 {
		return
	}

	img := s.cardImage(item.Index)
	img.Clear()
	s.paintCard(img, item)

	// rotateY 以水平压缩近似
	sx := p.Scale * math.Max(p.WidthFactor, minCardSkew)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(sx, p.Scale)
	op.GeoM.Translate(p.X, p.Y+originY)
	op.ColorScale.ScaleAlpha(float32(f.Opacity))
	screen.DrawImage(img, op)

	s.drawQuote(screen, item, originY)
}

func (s *HelixRenderSystem) cardImage(index int) *ebiten.Image {
	img, ok := s.cards[index]
	if !ok {
		img = ebiten.NewImage(int(CardWidth+2*cardMargin), int(CardHeight+2*cardMargin))
		s.cards[index] = img
	}
	return img
}

// paintCard 在卡片离屏图像中绘制阴影、边框、圆球与文字
func (s *HelixRenderSystem) paintCard(img *ebiten.Image, item *components.SpiralItemComponent) {
	style := item.Frame.Style
	x, y, w, h := cardMargin, cardMargin, CardWidth, CardHeight

	for _, sh := range style.Shadows {
		drawShadow(img, x, y, w, h, sh)
	}
	utils.FillRect(img, x, y, w, h, style.Background)
	utils.StrokeRect(img, x, y, w, h, 1, style.Border)

	cx := x + w/2
	drawOrb(img, utils.Point{X: cx, Y: y + 88}, orbRadius, Orb(item.Content.Orb), item.Frame.Glow)

	heading := item.Content.Name
	if style.HeadingUppercase {
		heading = strings.ToUpper(heading)
	}
	headingY := y + 172
	if style.HeadingGlow > 0 {
		glow := style.HeadingGlowPaint.WithAlpha(style.HeadingGlowPaint.A * 0.25)
		for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			off := style.HeadingGlow / 4
			utils.DrawSpacedText(img, heading, s.headingFace, cx+d[0]*off, headingY+d[1]*off, style.LetterSpacing, glow)
		}
	}
	utils.DrawSpacedText(img, heading, s.headingFace, cx, headingY+1, style.LetterSpacing, shadowBlack.WithAlpha(0.8))
	utils.DrawSpacedText(img, heading, s.headingFace, cx, headingY, style.LetterSpacing, style.HeadingPaint)

	lines := utils.WrapText(item.Content.Description, s.descriptionFace, w-64)
	utils.DrawTextLines(img, lines, s.descriptionFace, cx, headingY+36, 18, textGrey)
}

// drawShadow 以多层半透明矩形近似 box-shadow
func drawShadow(img *ebiten.Image, x, y, w, h float64, sh helix.Shadow) {
	if sh.Paint.A <= 0 || sh.Blur <= 0 {
		return
	}
	const layers = 4
	for i := 1; i <= layers; i++ {
		spread := sh.Blur * float64(i) / layers
		a := sh.Paint.A / layers
		if sh.Inset {
			utils.StrokeRect(img, x+spread/2, y+spread/2, w-spread, h-spread, spread, sh.Paint.WithAlpha(a))
			continue
		}
		utils.StrokeRect(img, x-spread/2, y-spread/2+sh.OffsetY, w+spread, h+spread, spread, sh.Paint.WithAlpha(a))
	}
}

// drawOrb 由外向内叠加同心圆，颜色在 Lab 空间从边缘色过渡到核心色
func drawOrb(img *ebiten.Image, c utils.Point, r float64, pal OrbPalette, glow float64) {
	if glow > 0 {
		utils.FillCircle(img, c, r*(1.2+0.3*glow), pal.Core.WithAlpha(0.15*glow))
	}
	for i := 0; i < orbRings; i++ {
		t := float64(i) / (orbRings - 1)
		utils.FillCircle(img, c, r*(1-0.85*t), utils.BlendPaint(pal.Rim, pal.Core, t))
	}
}

// drawQuote 引文位于卡片一侧，随焦点淡入并上滑
func (s *HelixRenderSystem) drawQuote(screen *ebiten.Image, item *components.SpiralItemComponent, originY float64) {
	f, p := item.Frame, item.Projection
	opacity := f.QuoteOpacity * f.Opacity
	if opacity <= 0 {
		return
	}
	offset := CardWidth/2*p.Scale + QuoteGap + QuoteWidth/2
	cx := p.X + offset
	if item.Content.QuoteAlign == "left" {
		cx = p.X - offset
	}

	lines := utils.WrapText(item.Content.Quote, s.quoteFace, QuoteWidth)
	lineHeight := 22.0
	blockH := float64(len(lines))*lineHeight + 24
	top := p.Y + originY - blockH/2 + f.QuoteOffset

	bottom := utils.DrawTextLines(screen, lines, s.quoteFace, cx, top, lineHeight, utils.GoldLight.WithAlpha(opacity))
	utils.DrawSpacedText(screen, strings.ToUpper(item.Content.Source), s.sourceFace, cx, bottom+8, 2, utils.GoldMetallic.WithAlpha(0.7*opacity))
}
