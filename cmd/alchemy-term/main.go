// Command alchemy-term 在终端里运行粒子嬗变场
//
// 鼠标移动即指针，q / Esc / Ctrl-C 退出。日志只写文件（--log-file），
// 标准输出归终端画面所有。
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/alchemy"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/frame"
	"github.com/gonewx/magnumopus/pkg/utils"
)

const frameInterval = time.Second / 60

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "alchemy-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v, err := newViewer(screen, cfg)
	if err != nil {
		return err
	}
	defer v.Close()

	return v.Run(ctx)
}

// viewer 终端版嬗变场：引擎、帧时钟与字符画布
type viewer struct {
	screen  tcell.Screen
	engine  *alchemy.Engine
	clock   *frame.Clock
	surface *termSurface
	cancel  alchemy.CancelFunc

	countsInterval time.Duration
	shown          alchemy.AggregateCounts
}

// newViewer 按当前终端尺寸创建引擎，最后一行留给计数
func newViewer(screen tcell.Screen, cfg *config.Config) (*viewer, error) {
	cols, rows := screen.Size()
	surface := newTermSurface(screen, cols, rows-1)

	engine, err := alchemy.NewEngine(cfg.AlchemyEngineConfig(), surface.CanvasBounds())
	if err != nil {
		return nil, fmt.Errorf("create alchemy engine: %w", err)
	}

	v := &viewer{
		screen:         screen,
		engine:         engine,
		clock:          frame.NewClock(),
		surface:        surface,
		countsInterval: time.Duration(cfg.Alchemy.CountsInterval * float64(time.Second)),
		shown:          engine.Counts(),
	}
	v.cancel, err = engine.Start(v.clock, v.draw)
	if err != nil {
		engine.Close()
		return nil, fmt.Errorf("start alchemy loop: %w", err)
	}

	logger.Info("[AlchemyTerm] started",
		zap.String("engine", engine.ID().String()),
		zap.Int("cols", cols), zap.Int("rows", rows))
	return v, nil
}

// Run 事件在 tcell 的 goroutine 上读取，经通道汇入唯一的 select 循环，
// 指针写入与 tick 因此保持有序
func (v *viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	counts := time.NewTicker(v.countsInterval)
	defer counts.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			v.clock.Pump(frameInterval.Seconds())
		case <-counts.C:
			v.shown = v.engine.Counts()
		}
	}
}

// handle 处理一个终端事件，返回 true 表示退出
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if y >= v.surface.rows {
			v.engine.PointerLeave()
			return false
		}
		p := CellCenter(x, y)
		if cur := v.engine.Pointer(); !cur.Present || cur.Pos != p {
			v.engine.PointerMove(p.X, p.Y)
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			v.engine.PointerLeave()
		}
	case *tcell.EventResize:
		// 引擎边界保持启动时的尺寸，只重排画面
		cols, rows := v.screen.Size()
		v.surface.Resize(cols, rows-1)
		v.screen.Sync()
	}
	return false
}

// draw 帧回调：绘制粒子与底部计数
func (v *viewer) draw(e *alchemy.Engine) {
	e.Render(v.surface)
	v.drawCounts()
	v.screen.Show()
}

func (v *viewer) drawCounts() {
	cols, rows := v.screen.Size()
	if rows == 0 {
		return
	}
	y := rows - 1
	lead := tcell.StyleDefault.Foreground(termColor(utils.LeadGrey, utils.Void))
	gold := tcell.StyleDefault.Foreground(termColor(utils.GoldMetallic, utils.Void))

	for x := 0; x < cols; x++ {
		v.screen.SetContent(x, y, ' ', nil, lead)
	}
	x := putText(v.screen, 1, y, "LEAD "+humanize.Comma(int64(v.shown.Untransformed)), lead)
	x = putText(v.screen, x+3, y, "GOLD "+humanize.Comma(int64(v.shown.Transmuted)), gold)
	putText(v.screen, x+3, y, "q to quit", lead)
}

// putText 逐字写入一行，返回结束列
func putText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Close 停止帧循环并关闭引擎
func (v *viewer) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.engine.Close()
}
