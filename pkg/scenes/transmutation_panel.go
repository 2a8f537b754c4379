package scenes

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/alchemy"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/systems"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 计数面板布局
const (
	countsPillWidth   = 240.0
	countsPillHeight  = 72.0
	countsPillBottom  = 40.0
	transmutationGapY = 16.0
)

var (
	gold100 = utils.MustHex("#F9F1D0")
	gold200 = utils.MustHex("#F0E68C")
	gold300 = utils.MustHex("#D4AF37")
	gold400 = utils.MustHex("#C5A059")
	gold500 = utils.MustHex("#B8860B")
	gold600 = utils.MustHex("#AA6C39")
	gold700 = utils.MustHex("#8B6508")
	gold900 = utils.MustHex("#3A2C0F")
	gray300 = utils.MustHex("#D1D5DB")
	gray400 = utils.MustHex("#9CA3AF")
	gray500 = utils.MustHex("#6B7280")
	gray600 = utils.MustHex("#4B5563")
	black   = utils.Paint{A: 1}
)

// transmutationPanel 粒子嬗变画布与计数读数
//
// 引擎在挂载时按当时的视口创建，边界此后不变。帧循环挂在调度器上，
// Draw 读取最近一次 tick 后的状态。
type transmutationPanel struct {
	engine  *alchemy.Engine
	cancel  alchemy.CancelFunc
	content config.TransmutationContent

	countsInterval float64
	sinceCounts    float64
	shown          alchemy.AggregateCounts

	pointer   utils.Point
	pointerIn bool
	frames    uint64

	titleFace    *text.GoTextFace
	subtitleFace *text.GoTextFace
	countFace    *text.GoTextFace
	labelFace    *text.GoTextFace
}

func newTransmutationPanel(cfg *config.Config, content config.TransmutationContent, bounds utils.Viewport, sched alchemy.Scheduler) (*transmutationPanel, error) {
	engine, err := alchemy.NewEngine(cfg.AlchemyEngineConfig(), bounds)
	if err != nil {
		return nil, fmt.Errorf("create alchemy engine: %w", err)
	}

	t := &transmutationPanel{
		engine:         engine,
		content:        content,
		countsInterval: cfg.Alchemy.CountsInterval,
		shown:          engine.Counts(),
		titleFace:      newFace(utils.FontBold, 64),
		subtitleFace:   newFace(utils.FontItalic, 20),
		countFace:      newFace(utils.FontBold, 24),
		labelFace:      newFace(utils.FontRegular, 11),
	}

	cancel, err := engine.Start(sched, t.onFrame)
	if err != nil {
		engine.Close()
		return nil, fmt.Errorf("start alchemy loop: %w", err)
	}
	t.cancel = cancel
	return t, nil
}

func (t *transmutationPanel) onFrame(*alchemy.Engine) {
	t.frames++
}

// Pointer 更新指针位置（画布本地坐标），present=false 表示指针已离开
// 只有位置变化才算一次移动
func (t *transmutationPanel) Pointer(pos utils.Point, present bool) {
	if !present {
		if t.pointerIn {
			t.engine.PointerLeave()
			t.pointerIn = false
		}
		return
	}
	if t.pointerIn && pos == t.pointer {
		return
	}
	t.pointer = pos
	t.pointerIn = true
	t.engine.PointerMove(pos.X, pos.Y)
}

// Update 按固定间隔轮询引擎计数
func (t *transmutationPanel) Update(deltaTime float64) {
	t.sinceCounts += deltaTime
	if t.sinceCounts < t.countsInterval {
		return
	}
	t.sinceCounts = math.Mod(t.sinceCounts, t.countsInterval)
	t.shown = t.engine.Counts()
}

// CountLabels 返回读数文本（千位分隔）
func (t *transmutationPanel) CountLabels() (lead, gold string) {
	return humanize.Comma(int64(t.shown.Untransformed)), humanize.Comma(int64(t.shown.Transmuted))
}

// Draw 在 origin 处绘制画布，文案与计数居中于 area
func (t *transmutationPanel) Draw(screen *ebiten.Image, origin utils.Point, area utils.Viewport) {
	surface := systems.AlchemySurface{Target: screen, Origin: origin, Size: t.engine.Bounds()}
	t.engine.Render(&surface)

	cx := origin.X + area.Width/2
	cy := origin.Y + area.Height/2
	titleY := cy - 64
	utils.DrawTextCentered(screen, t.content.Title, t.titleFace, cx, titleY, gold100)
	utils.DrawTextCentered(screen, t.content.Subtitle, t.subtitleFace, cx, titleY+64+transmutationGapY, utils.White.WithAlpha(0.8))

	t.drawCounts(screen, cx, origin.Y+area.Height-countsPillBottom-countsPillHeight)
}

func (t *transmutationPanel) drawCounts(screen *ebiten.Image, cx, top float64) {
	x := cx - countsPillWidth/2
	fillPill(screen, x, top, countsPillWidth, countsPillHeight, black.WithAlpha(0.5))
	strokePill(screen, x, top, countsPillWidth, countsPillHeight, 1, gold500.WithAlpha(0.3))

	lead, gold := t.CountLabels()
	leftX := cx - countsPillWidth/4
	rightX := cx + countsPillWidth/4
	utils.DrawTextCentered(screen, lead, t.countFace, leftX, top+12, gray500)
	utils.DrawSpacedText(screen, upper(t.content.LeadLabel), t.labelFace, leftX, top+46, 2, gray600)
	utils.DrawTextCentered(screen, gold, t.countFace, rightX, top+12, gold400)
	utils.DrawSpacedText(screen, upper(t.content.GoldLabel), t.labelFace, rightX, top+46, 2, gold600)

	utils.StrokeLine(screen, utils.Point{X: cx, Y: top + 14}, utils.Point{X: cx, Y: top + countsPillHeight - 14}, 1, gold500.WithAlpha(0.3))
}

// Close 停止帧循环并关闭引擎
func (t *transmutationPanel) Close() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.engine.Close()
	logger.Debug("[Transmutation] panel closed", zap.Uint64("frames", t.frames))
}
