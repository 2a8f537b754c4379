package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ojrac/opensimplex-go"

	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/geometry"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 影像层尺寸与噪声纹理分辨率
const (
	CinematicTop     = 120.0
	CinematicInset   = 32.0
	CinematicCorner  = 20.0
	CaptionTop       = 90.0
	cinematicTexW    = 96
	cinematicTexH    = 54
	cinematicFreq    = 0.06
	cinematicSpeed   = 0.25
	portalRingStep   = 40.0
	figureGlowExtra  = 3.0
	strokeGlowExtra  = 4.0
	figureDashLength = 10.0
)

// GeometryRenderSystem 绘制几何区块的所有层
//
// 只读取 GeometrySystem 写入的组件；闪烁调度与影像层噪声在 Update 中推进。
type GeometryRenderSystem struct {
	entityManager *ecs.EntityManager
	content       config.GeometryContent
	glow          *geometry.GlowScheduler
	noise         opensimplex.Noise
	elapsed       float64

	titleFace    *text.GoTextFace
	subtitleFace *text.GoTextFace
	glyphFace    *text.GoTextFace
	captionFace  *text.GoTextFace
	hintFace     *text.GoTextFace

	ramp      [256]color.NRGBA
	texPixels []byte
	texDirty  bool

	texture     *ebiten.Image
	portalLayer *ebiten.Image
	portalMask  *ebiten.Image
	cinematic   *ebiten.Image
}

// NewGeometryRenderSystem 创建几何渲染系统
func NewGeometryRenderSystem(em *ecs.EntityManager, content config.GeometryContent, glow *geometry.GlowScheduler, seed int64) *GeometryRenderSystem {
	s := &GeometryRenderSystem{
		entityManager: em,
		content:       content,
		glow:          glow,
		noise:         opensimplex.NewNormalized(seed),
		titleFace:     mustFace(utils.FontBold, 40),
		subtitleFace:  mustFace(utils.FontRegular, 14),
		glyphFace:     mustFace(utils.FontRegular, 14),
		captionFace:   mustFace(utils.FontBold, 13),
		hintFace:      mustFace(utils.FontRegular, 12),
		texPixels:     make([]byte, cinematicTexW*cinematicTexH*4),
	}
	// 影像层色带：虚空 → 暗金 → 亮金
	for i := range s.ramp {
		t := float64(i) / 255
		var p utils.Paint
		if t < 0.6 {
			p = utils.BlendPaint(utils.Void, utils.GoldDeep, t/0.6)
		} else {
			p = utils.BlendPaint(utils.GoldDeep, utils.GoldBright, (t-0.6)/0.4)
		}
		s.ramp[i] = p.NRGBA()
	}
	return s
}

// Update 推进闪烁调度；影像层可见时刷新噪声纹理
func (s *GeometryRenderSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.glow != nil {
		s.glow.Update(deltaTime)
	}
	if s.layerOpacity(components.LayerCinematic, 0) > 0 {
		s.fillTexture()
	}
}

// fillTexture 用两层噪声生成一帧"影像"
func (s *GeometryRenderSystem) fillTexture() {
	z := s.elapsed * cinematicSpeed
	for y := 0; y < cinematicTexH; y++ {
		for x := 0; x < cinematicTexW; x++ {
			fx, fy := float64(x)*cinematicFreq, float64(y)*cinematicFreq
			n := 0.65*s.noise.Eval3(fx, fy, z) + 0.35*s.noise.Eval3(fx*2.3, fy*2.3, z*1.7)
			c := s.ramp[uint8(utils.Clamp01(n)*255)]
			i := (y*cinematicTexW + x) * 4
			// WritePixels 需要预乘 alpha，色带不透明
			s.texPixels[i], s.texPixels[i+1], s.texPixels[i+2], s.texPixels[i+3] = c.R, c.G, c.B, 0xff
		}
	}
	s.texDirty = true
}

// layerState 查找几何区块中某一层的状态
func (s *GeometryRenderSystem) layerState(l components.Layer) (components.LayerComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.NodeComponent, *components.LayerComponent](s.entityManager) {
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
		if node.Section != GeometrySection || node.Layer != l {
			continue
		}
		layer, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, id)
		return *layer, true
	}
	return components.LayerComponent{}, false
}

// layerOpacity 层透明度；层未挂载时返回 fallback
func (s *GeometryRenderSystem) layerOpacity(l components.Layer, fallback float64) float64 {
	if st, ok := s.layerState(l); ok {
		return st.Opacity
	}
	return fallback
}

// Draw 在 sticky 容器中绘制整个区块，originY 为容器相对屏幕顶部的偏移
func (s *GeometryRenderSystem) Draw(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	if !vp.Valid() {
		return
	}
	s.drawRing(screen, vp, originY)
	s.drawFigure(screen, vp, originY)
	s.drawTitle(screen, vp, originY)
	s.drawHint(screen, vp, originY)
	s.drawPortal(screen, vp, originY)
	s.drawCinematic(screen, vp, originY)
	s.drawCaption(screen, vp, originY)
}

func (s *GeometryRenderSystem) drawRing(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	layerOpacity := s.layerOpacity(components.LayerGeometryRing, 1)
	if layerOpacity <= 0 {
		return
	}
	c := vp.Center()
	for _, id := range ecs.GetEntitiesWith2[*components.GlyphComponent, *components.TransformComponent](s.entityManager) {
		g, _ := ecs.GetComponent[*components.GlyphComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		utils.DrawRotatedText(screen, string(g.Rune), s.glyphFace,
			c.X+tr.TranslateX, originY+c.Y+tr.TranslateY, tr.Rotation,
			utils.GoldMetallic.WithAlpha(tr.Opacity*layerOpacity))
	}
}

func (s *GeometryRenderSystem) drawFigure(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	layerOpacity := s.layerOpacity(components.LayerGeometryFigure, 1)
	if layerOpacity <= 0 {
		return
	}
	c := vp.Center()
	origin := utils.Point{X: c.X, Y: originY + c.Y}
	pivot := utils.Point{X: geometry.ViewBox / 2, Y: geometry.ViewBox / 2}
	k := geometry.FigureVMin * vp.VMin() / geometry.ViewBox

	for _, id := range ecs.GetEntitiesWith2[*components.FigurePartComponent, *components.TransformComponent](s.entityManager) {
		part, _ := ecs.GetComponent[*components.FigurePartComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		opacity := tr.Opacity * layerOpacity
		if opacity <= 0 || tr.Scale <= 0 {
			continue
		}
		a := utils.NewAffine(origin, pivot, k, tr.Scale, tr.Rotation, utils.Point{X: tr.TranslateX, Y: tr.TranslateY})
		paint := part.Group.Paint.WithAlpha(part.Group.Paint.A * opacity)

		for i, shape := range part.Group.Shapes {
			if part.Group.Glow {
				drawShape(screen, shape, a, figureGlowExtra, paint.WithAlpha(paint.A*0.35))
			}
			if s.glow != nil && s.glow.Active(part.FirstStroke+i) {
				drawShape(screen, shape, a, strokeGlowExtra, utils.GoldBright.WithAlpha(0.5*opacity))
			}
			drawShape(screen, shape, a, 0, paint)
		}
	}
}

// drawShape 绘制一笔，extra 为额外的描边宽度（像素）
func drawShape(dst *ebiten.Image, shape geometry.Shape, a utils.Affine, extra float64, paint utils.Paint) {
	width := shape.Width
	if width == 0 {
		width = 1
	}
	w := a.Length(width) + extra

	switch shape.Kind {
	case geometry.ShapeCircle:
		c := a.Apply(shape.Center)
		r := a.Length(shape.Radius)
		switch {
		case shape.Fill:
			utils.FillCircle(dst, c, r+extra/2, paint)
		case shape.Dashed:
			utils.DashedCircle(dst, c, r, w, a.Length(figureDashLength), paint)
		default:
			utils.StrokeCircle(dst, c, r, w, paint)
		}
	case geometry.ShapePolyline:
		pts := make([]utils.Point, len(shape.Points))
		for i, p := range shape.Points {
			pts[i] = a.Apply(p)
		}
		utils.StrokePolyline(dst, pts, shape.Closed, w, paint)
	}
}

func (s *GeometryRenderSystem) drawTitle(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	opacity := s.layerOpacity(components.LayerGeometryTitle, 1)
	if opacity <= 0 {
		return
	}
	cx := vp.Width / 2
	top := originY + 40
	utils.FillRect(screen, cx-260, top, 520, 100, utils.Void.WithAlpha(0.3*opacity))
	utils.DrawSpacedText(screen, s.content.Title, s.titleFace, cx, top+16, 4, utils.GoldLight.WithAlpha(0.8*opacity))
	utils.DrawSpacedText(screen, s.content.Subtitle, s.subtitleFace, cx, top+68, 2.8, utils.GoldLight.WithAlpha(0.6*opacity))
}

func (s *GeometryRenderSystem) drawHint(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	utils.DrawSpacedText(screen, s.content.Hint, s.hintFace, vp.Width/2, originY+vp.Height-52, 1.2,
		utils.GoldMetallic.WithAlpha(0.5*pulse(s.elapsed)))
}

// PortalRadius 将百分比裁剪半径换算为像素（CSS circle() 的百分比基于对角线 / √2）
func PortalRadius(clip float64, vp utils.Viewport) float64 {
	return clip / 100 * math.Hypot(vp.Width, vp.Height) / math.Sqrt2
}

func (s *GeometryRenderSystem) drawPortal(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	st, ok := s.layerState(components.LayerGeometryPortal)
	r := PortalRadius(st.ClipRadius, vp)
	if !ok || r <= 0 {
		return
	}
	w, h := int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height))
	s.portalLayer = utils.EnsureLayer(s.portalLayer, w, h)
	if s.portalLayer == nil {
		return
	}
	c := vp.Center()
	s.portalLayer.Fill(utils.Void.NRGBA())
	for ring := portalRingStep; ring < math.Hypot(vp.Width, vp.Height)/2; ring += portalRingStep {
		utils.StrokeCircle(s.portalLayer, c, ring, 1, utils.GoldMetallic.WithAlpha(0.08))
	}
	s.portalMask = utils.ClipCircle(s.portalLayer, s.portalMask, c.X, c.Y, r)
	utils.CompositeLayer(screen, s.portalLayer, 0, originY, 1)
	utils.StrokeCircle(screen, utils.Point{X: c.X, Y: originY + c.Y}, r, 2, utils.GoldMetallic.WithAlpha(0.4))
}

func (s *GeometryRenderSystem) drawCinematic(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	st, ok := s.layerState(components.LayerCinematic)
	if !ok || st.Opacity <= 0 {
		return
	}
	w := vp.Width - 2*CinematicInset
	h := vp.Height - CinematicTop - CinematicInset
	if w <= 0 || h <= 0 {
		return
	}
	s.cinematic = utils.EnsureLayer(s.cinematic, int(w), int(h))
	if s.cinematic == nil {
		return
	}
	s.cinematic.Fill(color.Black)

	if s.texture == nil {
		s.texture = ebiten.NewImage(cinematicTexW, cinematicTexH)
	}
	if s.texDirty {
		s.texture.WritePixels(s.texPixels)
		s.texDirty = false
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	// object-fit: cover
	scale := math.Max(w/cinematicTexW, h/cinematicTexH)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((w-cinematicTexW*scale)/2, (h-cinematicTexH*scale)/2)
	s.cinematic.DrawImage(s.texture, op)

	utils.StrokeRect(s.cinematic, 0.5, 0.5, w-1, h-1, 1, utils.GoldMetallic.WithAlpha(0.3))
	bracket := utils.GoldLight
	for _, corner := range [][4]float64{
		{0, 0, 1, 1}, {w, 0, -1, 1}, {0, h, 1, -1}, {w, h, -1, -1},
	} {
		x, y, dx, dy := corner[0], corner[1], corner[2], corner[3]
		utils.StrokeLine(s.cinematic, utils.Point{X: x, Y: y + dy}, utils.Point{X: x + dx*CinematicCorner, Y: y + dy}, 2, bracket)
		utils.StrokeLine(s.cinematic, utils.Point{X: x + dx, Y: y}, utils.Point{X: x + dx, Y: y + dy*CinematicCorner}, 2, bracket)
	}

	scaleLayer := st.Scale
	if scaleLayer <= 0 {
		scaleLayer = 1
	}
	utils.CompositeLayerScaled(screen, s.cinematic,
		CinematicInset+w/2, originY+CinematicTop+h/2, scaleLayer, st.Opacity)
}

func (s *GeometryRenderSystem) drawCaption(screen *ebiten.Image, vp utils.Viewport, originY float64) {
	opacity := s.layerOpacity(components.LayerCinematicCaption, 0)
	if s.content.Caption == "" || opacity <= 0 {
		return
	}
	utils.DrawSpacedText(screen, s.content.Caption, s.captionFace, vp.Width/2, originY+CaptionTop, 5.2, utils.GoldLight.WithAlpha(opacity))
}
