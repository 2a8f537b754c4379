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
	navMargin     = 40.0
	navToggleSize = 48.0
	navNodeSize   = 32.0
	navChainLen   = 16.0
	navOpenTime   = 0.3
)

// navigation 左上角标题与右上角的链式导航
type navigation struct {
	content config.NavContent

	elapsed float64
	open    bool
	openT   float64
	hovered int

	toggle scroll.Box
	nodes  []scroll.Box

	brandFace *text.GoTextFace
	labelFace *text.GoTextFace
}

func newNavigation(content config.NavContent) *navigation {
	return &navigation{
		content:   content,
		hovered:   -1,
		brandFace: newFace(utils.FontBold, 20),
		labelFace: newFace(utils.FontRegular, 10),
	}
}

// Toggle 展开或收起导航
func (n *navigation) Toggle() {
	n.open = !n.open
}

// Open 导航是否处于展开状态
func (n *navigation) Open() bool {
	return n.open
}

// layout 计算开关与节点的位置
func (n *navigation) layout(vp utils.Viewport) {
	x := vp.Width - navMargin - navToggleSize
	n.toggle = scroll.Box{X: x, Y: 24, W: navToggleSize, H: navToggleSize}

	n.nodes = n.nodes[:0]
	y := 24 + navToggleSize + 8
	for range n.content.Items {
		y += navChainLen
		n.nodes = append(n.nodes, scroll.Box{X: x + (navToggleSize-navNodeSize)/2, Y: y, W: navNodeSize, H: navNodeSize})
		y += navNodeSize
	}
}

// Update 推进展开动画与悬停状态
func (n *navigation) Update(deltaTime float64, vp utils.Viewport, cursor utils.Point, cursorOK bool) {
	n.elapsed += deltaTime
	n.layout(vp)

	step := deltaTime / navOpenTime
	if n.open {
		n.openT = math.Min(1, n.openT+step)
	} else {
		n.openT = math.Max(0, n.openT-step)
	}

	n.hovered = -1
	if !cursorOK || n.openT < 1 {
		return
	}
	for i, b := range n.nodes {
		if boxContains(b, cursor) {
			n.hovered = i
		}
	}
}

// HitToggle 点击是否落在开关上
func (n *navigation) HitToggle(p utils.Point) bool {
	return boxContains(n.toggle, p)
}

// HitNode 返回被点击节点对应的区块；导航未完全展开时不响应
func (n *navigation) HitNode(p utils.Point) (string, bool) {
	if n.openT < 1 {
		return "", false
	}
	for i, b := range n.nodes {
		if boxContains(b, p) {
			return n.content.Items[i].Section, true
		}
	}
	return "", false
}

// Draw 绘制标题、开关与展开中的节点
func (n *navigation) Draw(screen *ebiten.Image, vp utils.Viewport) {
	if len(n.nodes) != len(n.content.Items) {
		n.layout(vp)
	}

	drawSparkle(screen, utils.Point{X: navMargin + 10, Y: 48}, 10, gold300.WithAlpha(pulseSlow(n.elapsed)))
	drawTextLeft(screen, upper(n.content.Brand), n.brandFace, navMargin+30, 36, utils.GoldMetallic)

	tc := utils.Point{X: n.toggle.X + n.toggle.W/2, Y: n.toggle.Y + n.toggle.H/2}
	softGlow(screen, tc, 30, utils.GoldMetallic.WithAlpha(0.25))
	outer := diamond(tc, navToggleSize/2*math.Sqrt2*0.75)
	utils.StrokePolyline(screen, outer, true, 2, gold400)
	utils.StrokePolyline(screen, diamond(tc, navToggleSize/2*math.Sqrt2*0.6), true, 1, gold500.WithAlpha(0.3))
	drawFlask(screen, tc, 9, n.openT*180, gold300)

	if n.openT <= 0 {
		return
	}
	a := utils.EaseOutCubic(n.openT)
	for i, b := range n.nodes {
		c := utils.Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
		chainTop := utils.Point{X: c.X, Y: b.Y - navChainLen}
		chainEnd := utils.Point{X: c.X, Y: b.Y - navChainLen + navChainLen*a}
		utils.GradientLine(screen, chainTop, chainEnd, 1, gold400.WithAlpha(a), gold500.WithAlpha(0.5*a))

		border := gold500.WithAlpha(0.5 * a)
		if i == n.hovered {
			border = gold300.WithAlpha(a)
			softGlow(screen, c, navNodeSize*0.8, gold500.WithAlpha(0.2))
		}
		r := navNodeSize / 2 * math.Sqrt2 * 0.8
		drawNavIcon(screen, i, c, 6, utils.MustHex("#FBBF24").WithAlpha(a))
		utils.StrokePolyline(screen, diamond(c, r), true, 1, border)

		if i == n.hovered {
			label := n.content.Items[i].Label
			w := spacedWidth(label, n.labelFace, 2.5) + 16
			lx := b.X - 16 - w
			utils.FillRect(screen, lx, c.Y-11, w, 22, black.WithAlpha(0.8))
			utils.StrokeRect(screen, lx, c.Y-11, w, 22, 1, gold500.WithAlpha(0.2))
			utils.DrawSpacedText(screen, label, n.labelFace, lx+w/2, c.Y-6, 2.5, gold200)
		}
	}
}

// drawFlask 烧瓶图标，rotation 为旋转角度
func drawFlask(screen *ebiten.Image, c utils.Point, r, rotation float64, paint utils.Paint) {
	a := utils.NewAffine(c, utils.Point{}, r, 1, rotation, utils.Point{})
	outline := []utils.Point{
		{X: -0.3, Y: -1}, {X: 0.3, Y: -1}, {X: 0.3, Y: -0.3}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -0.3, Y: -0.3},
	}
	for i, p := range outline {
		outline[i] = a.Apply(p)
	}
	utils.StrokePolyline(screen, outline, true, 1.5, paint)
	utils.StrokeLine(screen, a.Apply(utils.Point{X: -0.6, Y: 0.4}), a.Apply(utils.Point{X: 0.6, Y: 0.4}), 1, paint.WithAlpha(0.6))
}

// drawNavIcon 依次为太阳、三角、宝石、火焰
func drawNavIcon(screen *ebiten.Image, i int, c utils.Point, r float64, paint utils.Paint) {
	switch i % 4 {
	case 0:
		utils.StrokeCircle(screen, c, r*0.5, 1, paint)
		for k := 0; k < 8; k++ {
			ang := float64(k) * math.Pi / 4
			d := utils.Point{X: math.Cos(ang), Y: math.Sin(ang)}
			utils.StrokeLine(screen, c.Add(d.Scale(r*0.7)), c.Add(d.Scale(r)), 1, paint)
		}
	case 1:
		utils.StrokePolyline(screen, []utils.Point{
			{X: c.X, Y: c.Y - r}, {X: c.X + r, Y: c.Y + r*0.8}, {X: c.X - r, Y: c.Y + r*0.8},
		}, true, 1, paint)
	case 2:
		utils.StrokePolyline(screen, diamond(c, r), true, 1, paint)
		utils.FillCircle(screen, c, r*0.3, paint)
	case 3:
		utils.StrokePolyline(screen, []utils.Point{
			{X: c.X, Y: c.Y - r}, {X: c.X + r*0.7, Y: c.Y + r*0.2}, {X: c.X + r*0.4, Y: c.Y + r},
			{X: c.X - r*0.4, Y: c.Y + r}, {X: c.X - r*0.7, Y: c.Y + r*0.2},
		}, true, 1, paint)
	}
}
