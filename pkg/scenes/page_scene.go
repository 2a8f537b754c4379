package scenes

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/entities"
	"github.com/gonewx/magnumopus/pkg/geometry"
	"github.com/gonewx/magnumopus/pkg/scroll"
	"github.com/gonewx/magnumopus/pkg/systems"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 页面区块 ID，自上而下
const (
	SectionHero          = "hero"
	SectionGeometry      = systems.GeometrySection
	SectionSeparator     = "separator"
	SectionSymbols       = systems.SymbolsSection
	SectionArchive       = "archive"
	SectionTransmutation = "transmutation"
	SectionFooter        = "footer"
)

// pageKeyPage PageUp/PageDown 滚动的视口高度比例
const pageKeyPage = 0.9

// PageSections 按配置的高度生成区块列表
func PageSections(h config.SectionHeights) []scroll.Section {
	return []scroll.Section{
		{ID: SectionHero, HeightVH: h.Hero},
		{ID: SectionGeometry, HeightVH: h.Geometry},
		{ID: SectionSeparator, HeightVH: h.Separator},
		{ID: SectionSymbols, HeightVH: h.Symbols},
		{ID: SectionArchive, HeightVH: h.Archive},
		{ID: SectionTransmutation, HeightVH: h.Transmutation},
		{ID: SectionFooter, HeightVH: h.Footer},
	}
}

// seedOrNow 配置种子为 0 时取当前时间
func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// pageInput 一帧内收集到的输入
type pageInput struct {
	cursor   utils.Point
	cursorOK bool // 指针在窗口内

	click    bool
	clickPos utils.Point

	wheel float64 // 滚轮格数，向下为正
	lines float64 // 方向键行数
	pages float64 // 整页数
	jump  int     // -1 顶部，1 底部
	drag  float64 // 触摸拖动像素，手指上移为正

	toggleNav bool
}

// PageScene 滚动页面：七个区块纵向排列，滚动驱动几何重组与螺旋，
// 嬗变区块内运行粒子引擎
type PageScene struct {
	cfg     *config.Config
	content *config.Content
	compact bool

	entityManager *ecs.EntityManager
	page          *scroll.Page
	source        *scroll.Source
	reveal        *scroll.RevealObserver
	untrack       []func()

	geometryEntities *entities.GeometryEntities
	symbolCards      []ecs.EntityID

	geometrySystem       *systems.GeometrySystem
	geometryRenderSystem *systems.GeometryRenderSystem
	helixSystem          *systems.HelixSystem
	helixRenderSystem    *systems.HelixRenderSystem
	smokeSystem          *systems.SmokeSystem
	lifetimeSystem       *systems.LifetimeSystem

	hero          *heroSection
	archive       *archiveSection
	transmutation *transmutationPanel
	footer        *footerSection
	nav           *navigation

	touch      utils.TouchDrag
	elapsed    float64
	dispatched float64 // 上一次派发时的滚动偏移
	disposed   bool
}

// NewPageScene 挂载整个页面并做第一次滚动派发
func NewPageScene(d Deps) (*PageScene, error) {
	if d.Config == nil || d.Content == nil {
		return nil, fmt.Errorf("page scene: missing config or content")
	}
	if !d.Viewport.Valid() {
		return nil, fmt.Errorf("page scene: invalid viewport %vx%v", d.Viewport.Width, d.Viewport.Height)
	}
	cfg, content, vp := d.Config, d.Content, d.Viewport

	seed := seedOrNow(cfg.Geometry.Seed)
	rng := rand.New(rand.NewSource(seed))
	em := ecs.NewEntityManager()

	s := &PageScene{
		cfg:           cfg,
		content:       content,
		compact:       utils.IsMobile(),
		entityManager: em,
	}

	// 几何重组
	figure := geometry.Figure()
	layout := geometry.NewRingLayout(vp, cfg.Geometry.Phrase, rng)
	s.geometryEntities = entities.NewGeometryEntities(em, SectionGeometry, figure, layout)
	glow := geometry.NewGlowScheduler(geometry.StrokeCount(figure), cfg.Geometry.GlowInitialDelay, rng)
	s.geometrySystem = systems.NewGeometrySystem(em, layout)
	s.geometryRenderSystem = systems.NewGeometryRenderSystem(em, content.Geometry, glow, seed)

	// 螺旋
	s.symbolCards = entities.NewSymbolCards(em, SectionSymbols, content.Symbols.Items)
	s.helixSystem = systems.NewHelixSystem(em, cfg.HelixParams(), vp)
	s.helixRenderSystem = systems.NewHelixRenderSystem(em, s.helixSystem, content.Symbols)

	s.smokeSystem = systems.NewSmokeSystem(em, systems.DefaultSmokeAnchors(), seed)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)

	// 滚动
	s.page = scroll.NewPage(vp, PageSections(cfg.Scroll.Sections)...)
	s.page.SetSmoothDuration(cfg.Scroll.SmoothDuration)
	s.source = scroll.NewSource(vp)
	s.untrack = append(s.untrack,
		s.source.Track(SectionGeometry, s.page.Bounds(SectionGeometry), func(p float64) { s.geometrySystem.Apply(p) }),
		s.source.Track(SectionSymbols, s.page.Bounds(SectionSymbols), func(p float64) { s.helixSystem.Apply(p) }),
	)

	reveal, err := scroll.NewRevealObserver(cfg.RevealOptions())
	if err != nil {
		s.Dispose()
		return nil, fmt.Errorf("page scene: %w", err)
	}
	s.reveal = reveal

	s.hero = newHeroSection(content.Hero, vp)
	s.archive = newArchiveSection(content.Archive, s.compact)
	s.archive.Observe(s.reveal, s.page.Viewport, s.page.Bounds(SectionArchive))
	s.footer = newFooterSection(content.Footer, s.compact)
	s.nav = newNavigation(content.Nav)

	// 引擎边界固定为挂载时嬗变区块的尺寸
	bounds := utils.Viewport{Width: vp.Width, Height: cfg.Scroll.Sections.Transmutation * vp.Height}
	panel, err := newTransmutationPanel(cfg, content.Transmutation, bounds, d.Clock)
	if err != nil {
		s.Dispose()
		return nil, fmt.Errorf("page scene: %w", err)
	}
	s.transmutation = panel

	s.onScroll()

	logger.Info("[PageScene] mounted",
		zap.Int("entities", em.Count()),
		zap.Int("trackers", s.source.Len()),
		zap.Int("observing", s.reveal.Observing()),
		zap.Float64("height", s.page.Height()),
		zap.Bool("compact", s.compact))
	return s, nil
}

// Page 返回滚动页面
func (s *PageScene) Page() *scroll.Page {
	return s.page
}

// onScroll 一次 scroll 事件：派发进度并检查显现
func (s *PageScene) onScroll() {
	s.dispatched = s.page.Offset()
	s.source.Dispatch()
	s.reveal.Check(s.page.Viewport())
}

// scrollToSection 平滑滚动到区块顶部
func (s *PageScene) scrollToSection(id string) {
	top, ok := s.page.SectionTop(id)
	if !ok {
		logger.Warn("[PageScene] unknown section", zap.String("section", id))
		return
	}
	s.page.AnimateTo(top)
}

// readInput 读取本帧的 Ebitengine 输入
func (s *PageScene) readInput() pageInput {
	var in pageInput
	vp := s.page.Viewport()

	x, y := utils.GetPointerPosition()
	in.cursor = utils.Point{X: float64(x), Y: float64(y)}
	in.cursorOK = utils.IsTouchDevice() ||
		image.Pt(x, y).In(image.Rect(0, 0, int(vp.Width), int(vp.Height)))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.click = true
		in.clickPos = in.cursor
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		in.click = true
		in.clickPos = utils.Point{X: float64(tx), Y: float64(ty)}
	}

	in.wheel = utils.GetWheelDelta()
	in.lines, in.pages, in.jump = utils.GetKeyScrollDelta()
	in.drag = s.touch.Update()
	in.toggleNav = inpututil.IsKeyJustPressed(ebiten.KeyM)
	return in
}

// Update 读取输入并推进一帧
func (s *PageScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	s.step(deltaTime, s.readInput())
}

// step 按给定输入推进一帧
func (s *PageScene) step(deltaTime float64, in pageInput) {
	s.elapsed += deltaTime
	vp := s.page.Viewport()

	if in.click {
		s.handleClick(in.clickPos)
	}
	if in.toggleNav {
		s.nav.Toggle()
	}

	delta := in.wheel*s.cfg.Scroll.WheelStep + in.lines*s.cfg.Scroll.KeyStep + in.pages*pageKeyPage*vp.Height
	s.page.ScrollBy(delta)
	switch in.jump {
	case -1:
		s.page.AnimateTo(0)
	case 1:
		s.page.AnimateTo(s.page.MaxOffset())
	}

	if in.drag != 0 {
		s.page.ScrollTo(s.page.Offset() + in.drag)
	}
	s.page.Update(deltaTime)
	if s.page.Offset() != s.dispatched {
		s.onScroll()
	}

	s.reveal.Update(deltaTime)
	s.geometryRenderSystem.Update(deltaTime)
	s.helixRenderSystem.Update(deltaTime)

	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
	s.smokeSystem.Update(deltaTime)

	if r, ok := s.page.SectionRect(SectionHero); ok {
		s.hero.Update(deltaTime, r, vp, in.cursor, in.cursorOK)
	}
	s.archive.Update(deltaTime, in.cursor, in.cursorOK)
	s.footer.Update(in.cursor, in.cursorOK)
	s.nav.Update(deltaTime, vp, in.cursor, in.cursorOK)

	if r, ok := s.page.SectionRect(SectionTransmutation); ok {
		inside := in.cursorOK && in.cursor.Y >= r.Top && in.cursor.Y < r.Bottom()
		s.transmutation.Pointer(in.cursor.Sub(utils.Point{Y: r.Top}), inside)
	}
	s.transmutation.Update(deltaTime)
}

// handleClick 导航优先，其次是区块内的按钮
func (s *PageScene) handleClick(p utils.Point) {
	if section, ok := s.nav.HitNode(p); ok {
		s.nav.Toggle()
		s.scrollToSection(section)
		return
	}
	if s.nav.HitToggle(p) {
		s.nav.Toggle()
		return
	}
	if s.hero.HitAction(p) {
		s.scrollToSection(SectionGeometry)
		return
	}
	if s.archive.HitAction(p) {
		s.scrollToSection(SectionTransmutation)
	}
}

// Draw 自上而下绘制可见区块，导航最后绘制
func (s *PageScene) Draw(screen *ebiten.Image) {
	vp := s.page.Viewport()
	screen.Fill(utils.Void.NRGBA())
	s.smokeSystem.Draw(screen, vp)

	for _, sec := range s.page.Sections() {
		r, ok := s.page.SectionRect(sec.ID)
		if !ok || !r.Visible(vp.Height) {
			continue
		}
		switch sec.ID {
		case SectionHero:
			s.hero.Draw(screen, vp, r)
		case SectionGeometry:
			s.geometryRenderSystem.Draw(screen, vp, scroll.StickyOffset(r, vp.Height))
		case SectionSeparator:
			drawSeparator(screen, vp, r.Top+r.Height/2, s.elapsed)
		case SectionSymbols:
			s.helixRenderSystem.Draw(screen, vp, scroll.StickyOffset(r, vp.Height))
		case SectionArchive:
			s.archive.Draw(screen, vp, r, s.reveal, s.cfg.Reveal.FadeDuration)
		case SectionTransmutation:
			s.transmutation.Draw(screen, utils.Point{Y: r.Top}, utils.Viewport{Width: vp.Width, Height: r.Height})
		case SectionFooter:
			s.footer.Draw(screen, vp, r)
		}
	}

	s.nav.Draw(screen, vp)
}

// Resize 视口变化：区块按新的视口高度重排并重新派发
func (s *PageScene) Resize(vp utils.Viewport) {
	if s.disposed || !vp.Valid() {
		return
	}
	s.page.Resize(vp)
	s.helixSystem.Resize(vp)
	s.hero.Resize(vp)
	s.dispatched = s.page.Offset()
	s.source.Resize(vp)
	s.reveal.Check(vp)
	logger.Debug("[PageScene] resized", zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
}

// Dispose 注销跟踪器、停止粒子帧循环并销毁实体，可重复调用
func (s *PageScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for _, remove := range s.untrack {
		remove()
	}
	s.untrack = nil

	if s.transmutation != nil {
		s.transmutation.Close()
	}
	if s.geometryEntities != nil {
		entities.DestroyAll(s.entityManager, s.geometryEntities.All())
	}
	entities.DestroyAll(s.entityManager, s.symbolCards)
	s.entityManager.RemoveMarkedEntities()
	logger.Info("[PageScene] disposed")
}
