package scenes

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/scroll"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 画廊布局参数
const (
	archiveMaxWidth    = 1152.0
	archiveHeaderH     = 140.0
	archiveActionH     = 48.0
	archiveActionGap   = 48.0
	archiveItemAspect  = 0.6
	archiveMinItemH    = 48.0
	archiveRevealShift = 30.0
	archiveOddDelay    = 0.1 // 右列的显现延迟（秒）
)

// 显现触发器中的元素标识
const (
	archiveHeaderID = "archive/header"
	archiveActionID = "archive/action"
)

func archiveItemID(i int) string {
	return fmt.Sprintf("archive/item/%d", i)
}

// ArchiveLayout 画廊区块内的元素布局，y 以区块顶部为 0
type ArchiveLayout struct {
	Header scroll.Box
	Items  []scroll.Box
	Action scroll.Box
}

// LayoutArchive 两列网格：格子高度取宽高比与剩余空间中较小者，保证整块放进区块
func LayoutArchive(vp utils.Viewport, sectionHeight float64, items int, compact bool) ArchiveLayout {
	padX, padY, gap := 48.0, 96.0, 40.0
	if compact {
		padX, padY, gap = 12, 48, 12
	}
	width := math.Max(0, math.Min(archiveMaxWidth, vp.Width-2*padX))
	x0 := (vp.Width - width) / 2

	l := ArchiveLayout{Header: scroll.Box{X: x0, Y: padY, W: width, H: archiveHeaderH}}

	rows := (items + 1) / 2
	colW := (width - gap) / 2
	itemH := colW * archiveItemAspect
	if rows > 0 {
		avail := sectionHeight - 2*padY - archiveHeaderH - archiveActionGap - archiveActionH
		fit := (avail - gap*float64(rows-1)) / float64(rows)
		itemH = math.Max(archiveMinItemH, math.Min(itemH, fit))
	}

	y := padY + archiveHeaderH
	for i := 0; i < items; i++ {
		row, col := i/2, i%2
		l.Items = append(l.Items, scroll.Box{
			X: x0 + float64(col)*(colW+gap),
			Y: y + float64(row)*(itemH+gap),
			W: colW,
			H: itemH,
		})
	}
	if rows > 0 {
		y += float64(rows)*itemH + float64(rows-1)*gap
	}
	y += archiveActionGap
	l.Action = scroll.Box{X: vp.Width/2 - 120, Y: y, W: 240, H: archiveActionH}
	return l
}

func offsetBox(b scroll.Box, dy float64) scroll.Box {
	b.Y += dy
	return b
}

// archiveSection 画廊：标题、八幅画面与底部按钮，元素随显现触发器淡入上移
type archiveSection struct {
	content config.ArchiveContent
	compact bool

	elapsed     float64
	hovered     int
	actionHover bool
	layout      ArchiveLayout
	top         float64 // 上一帧区块顶部

	titleFace     *text.GoTextFace
	subtitleFace  *text.GoTextFace
	itemTitleFace *text.GoTextFace
	itemSubFace   *text.GoTextFace
	actionFace    *text.GoTextFace
}

func newArchiveSection(content config.ArchiveContent, compact bool) *archiveSection {
	itemTitle := 22.0
	if compact {
		itemTitle = 14
	}
	return &archiveSection{
		content:       content,
		compact:       compact,
		hovered:       -1,
		titleFace:     newFace(utils.FontBold, 44),
		subtitleFace:  newFace(utils.FontRegular, 13),
		itemTitleFace: newFace(utils.FontBold, itemTitle),
		itemSubFace:   newFace(utils.FontItalic, 13),
		actionFace:    newFace(utils.FontRegular, 12),
	}
}

// Layout 当前视口与区块高度下的布局
func (a *archiveSection) Layout(vp utils.Viewport, sectionHeight float64) ArchiveLayout {
	return LayoutArchive(vp, sectionHeight, len(a.content.Items), a.compact)
}

// Observe 把标题、每幅画面与按钮注册到显现触发器
// rect 返回区块当前的视口矩形
func (a *archiveSection) Observe(obs *scroll.RevealObserver, vp func() utils.Viewport, rect scroll.BoundsFunc) {
	box := func(pick func(ArchiveLayout) scroll.Box) func() (scroll.Box, bool) {
		return func() (scroll.Box, bool) {
			r, ok := rect()
			if !ok {
				return scroll.Box{}, false
			}
			return offsetBox(pick(a.Layout(vp(), r.Height)), r.Top), true
		}
	}

	obs.Observe(archiveHeaderID, box(func(l ArchiveLayout) scroll.Box { return l.Header }))
	for i := range a.content.Items {
		obs.Observe(archiveItemID(i), box(func(l ArchiveLayout) scroll.Box { return l.Items[i] }))
	}
	obs.Observe(archiveActionID, box(func(l ArchiveLayout) scroll.Box { return l.Action }))
}

// Update 根据上一帧布局更新悬停状态
func (a *archiveSection) Update(deltaTime float64, cursor utils.Point, cursorOK bool) {
	a.elapsed += deltaTime
	a.hovered = -1
	a.actionHover = false
	if !cursorOK {
		return
	}
	for i, b := range a.layout.Items {
		if boxContains(offsetBox(b, a.top), cursor) {
			a.hovered = i
		}
	}
	a.actionHover = boxContains(offsetBox(a.layout.Action, a.top), cursor)
}

// HitAction 点击是否落在底部按钮上
func (a *archiveSection) HitAction(p utils.Point) bool {
	return len(a.layout.Items) > 0 && boxContains(offsetBox(a.layout.Action, a.top), p)
}

// Draw 绘制区块
func (a *archiveSection) Draw(screen *ebiten.Image, vp utils.Viewport, rect scroll.Rect, obs *scroll.RevealObserver, fade float64) {
	a.layout = a.Layout(vp, rect.Height)
	a.top = rect.Top

	utils.FillRect(screen, 0, rect.Top, vp.Width, rect.Height, utils.Void)
	drawSeparator(screen, vp, rect.Top+24, a.elapsed)

	f := obs.Fade(archiveHeaderID, fade)
	h := offsetBox(a.layout.Header, rect.Top+(1-f)*archiveRevealShift)
	utils.DrawSpacedText(screen, a.content.Title, a.titleFace, vp.Width/2, h.Y, 4.4, gold200.WithAlpha(f))
	utils.DrawSpacedText(screen, upper(a.content.Subtitle), a.subtitleFace, vp.Width/2, h.Y+68, 4, gold100.WithAlpha(0.5*f))

	for i, item := range a.content.Items {
		delay := 0.0
		if i%2 == 1 {
			delay = archiveOddDelay
		}
		f := obs.FadeDelayed(archiveItemID(i), delay, fade)
		if f <= 0 {
			continue
		}
		b := offsetBox(a.layout.Items[i], rect.Top+(1-f)*archiveRevealShift)
		a.drawItem(screen, b, i, item, f, i == a.hovered)
	}

	f = obs.Fade(archiveActionID, fade)
	a.drawAction(screen, offsetBox(a.layout.Action, rect.Top+(1-f)*archiveRevealShift), f)
}

func (a *archiveSection) drawItem(screen *ebiten.Image, b scroll.Box, i int, item config.ArchiveItem, f float64, hover bool) {
	utils.FillRect(screen, b.X, b.Y, b.W, b.H, utils.Charcoal.WithAlpha(f))

	// 画面：按序号变化边数的旋转徽记
	c := utils.Point{X: b.X + b.W/2, Y: b.Y + b.H*0.42}
	r := math.Min(b.W, b.H) * 0.3
	sides := 3 + i%4
	dir := 1.0
	if i%2 == 1 {
		dir = -1
	}
	emblem := gold400.WithAlpha(0.15 * f)
	if hover {
		emblem = gold300.WithAlpha(0.35 * f)
	}
	pts := make([]utils.Point, sides)
	rot := dir*a.elapsed*0.1 + float64(i)
	for k := range pts {
		ang := rot + 2*math.Pi*float64(k)/float64(sides)
		pts[k] = utils.Point{X: c.X + r*math.Cos(ang), Y: c.Y + r*math.Sin(ang)}
	}
	utils.StrokePolyline(screen, pts, true, 1, emblem)
	utils.StrokeCircle(screen, c, r*1.15, 1, emblem)
	utils.StrokeCircle(screen, c, r*0.35, 1, emblem)

	if item.Video {
		// 扫描带模拟动态画面
		band := b.Y + math.Mod(a.elapsed*40+float64(i)*37, b.H)
		utils.FillRect(screen, b.X, band, b.W, 2, utils.White.WithAlpha(0.04*f))
		ic := utils.Point{X: b.X + b.W - 20, Y: b.Y + 20}
		utils.FillCircle(screen, ic, 12, black.WithAlpha(0.6*f))
		utils.StrokePolyline(screen, []utils.Point{
			{X: ic.X - 3, Y: ic.Y - 5}, {X: ic.X + 5, Y: ic.Y}, {X: ic.X - 3, Y: ic.Y + 5},
		}, true, 1.5, gold300.WithAlpha(f))
	}

	// 底部渐暗遮罩
	const strips = 8
	for k := 0; k < strips; k++ {
		sh := b.H * 0.5 / strips
		alpha := 0.8 * float64(k+1) / strips
		utils.FillRect(screen, b.X, b.Y+b.H*0.5+float64(k)*sh, b.W, sh, black.WithAlpha(alpha*f))
	}

	pad := 32.0
	if a.compact {
		pad = 16
	}
	titleY := b.Y + b.H - pad - 44
	if a.compact {
		titleY = b.Y + b.H - pad - 18
	}
	drawTextLeft(screen, item.Title, a.itemTitleFace, b.X+pad, titleY, gold300.WithAlpha(f))
	if !a.compact {
		subY := titleY + 32
		utils.StrokeLine(screen, utils.Point{X: b.X + pad, Y: subY}, utils.Point{X: b.X + pad, Y: subY + 16}, 1, gold500.WithAlpha(0.5*f))
		drawTextLeft(screen, item.Subtitle, a.itemSubFace, b.X+pad+12, subY, gray300.WithAlpha(f))
	}

	border := gold500.WithAlpha(0.1 * f)
	if hover {
		border = gold300.WithAlpha(0.5 * f)
	}
	utils.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, border)
}

func (a *archiveSection) drawAction(screen *ebiten.Image, b scroll.Box, f float64) {
	if f <= 0 {
		return
	}
	if a.actionHover {
		utils.FillRect(screen, b.X, b.Y, b.W, b.H, gold500.WithAlpha(0.1*f))
	}
	border := gold500.WithAlpha(0.3 * f)
	if a.actionHover {
		border = gold300.WithAlpha(f)
	}
	utils.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, border)

	label := a.content.Action
	w := spacedWidth(label, a.actionFace, 3.6)
	cx := b.X + b.W/2 - 10
	utils.DrawSpacedText(screen, label, a.actionFace, cx, b.Y+b.H/2-8, 3.6, gold300.WithAlpha(f))
	drawArrowDown(screen, cx+w/2+16, b.Y+b.H/2, 12, gold300.WithAlpha(f))
}
