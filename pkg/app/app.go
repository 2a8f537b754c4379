// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/frame"
	"github.com/gonewx/magnumopus/pkg/game"
	"github.com/gonewx/magnumopus/pkg/scenes"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// tickDelta 每个 tick 的时长（Ebitengine 默认 60 TPS）
const tickDelta = 1.0 / 60.0

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.Config
	sceneManager *game.SceneManager
	clock        *frame.Clock
	viewport     utils.Viewport

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建应用并加载配置中的起始场景
//
// 调用此函数前，必须先调用 embedded.Init() 并解析好文案。
func NewApp(cfg *config.Config, content *config.Content) (*App, error) {
	if cfg == nil || content == nil {
		return nil, fmt.Errorf("app: missing config or content")
	}

	a := &App{
		cfg:          cfg,
		sceneManager: game.NewSceneManager(),
		clock:        frame.NewClock(),
		viewport:     utils.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
	}

	// 工厂在创建时读取最新视口，场景切换后按当前窗口尺寸挂载
	a.sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		return scenes.NewFactory(scenes.Deps{
			Config:   cfg,
			Content:  content,
			Clock:    a.clock,
			Viewport: a.viewport,
		})(name)
	})

	if err := a.sceneManager.Load(cfg.Scene); err != nil {
		return nil, err
	}
	logger.Info("[App] started", zap.String("scene", cfg.Scene),
		zap.Float64("width", a.viewport.Width), zap.Float64("height", a.viewport.Height))
	return a, nil
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			logger.Debug("[App] delayed SetWindowSize", zap.Int("width", a.cfg.Window.Width), zap.Int("height", a.cfg.Window.Height))
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// Tab 在页面与独立嬗变场景之间切换
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := a.sceneManager.Load(a.nextScene()); err != nil {
			logger.Error("[App] scene switch failed", zap.Error(err))
		}
	}

	a.step(tickDelta)
	return nil
}

// step 先推进场景，再泵送帧回调（相当于一次 requestAnimationFrame）
func (a *App) step(deltaTime float64) {
	a.sceneManager.Update(deltaTime)
	a.clock.Pump(deltaTime)
}

func (a *App) nextScene() string {
	if a.sceneManager.CurrentName() == config.ScenePage {
		return config.SceneAlchemy
	}
	return config.ScenePage
}

// Draw 绘制画面，每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	if a.cfg.Window.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f  frames: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), a.clock.Frames()))
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑尺寸跟随窗口尺寸，变化时通知当前场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := utils.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if vp.Valid() && vp != a.viewport {
		a.viewport = vp
		a.sceneManager.Resize(vp)
	}
	return outsideWidth, outsideHeight
}

// SceneManager 返回场景管理器
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}

// Close 卸载当前场景，停止所有帧循环
func (a *App) Close() {
	a.sceneManager.Close()
	logger.Info("[App] closed", zap.Uint64("frames", a.clock.Frames()), zap.Int("pending", a.clock.Pending()))
}
