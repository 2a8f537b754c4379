package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/systems"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// AlchemyScene 只有嬗变画布的全屏场景，背景带烟雾
type AlchemyScene struct {
	entityManager  *ecs.EntityManager
	smokeSystem    *systems.SmokeSystem
	lifetimeSystem *systems.LifetimeSystem
	panel          *transmutationPanel

	viewport utils.Viewport
	disposed bool
}

// NewAlchemyScene 以当前视口为引擎边界创建场景
func NewAlchemyScene(d Deps) (*AlchemyScene, error) {
	if d.Config == nil || d.Content == nil {
		return nil, fmt.Errorf("alchemy scene: missing config or content")
	}
	if !d.Viewport.Valid() {
		return nil, fmt.Errorf("alchemy scene: invalid viewport %vx%v", d.Viewport.Width, d.Viewport.Height)
	}

	panel, err := newTransmutationPanel(d.Config, d.Content.Transmutation, d.Viewport, d.Clock)
	if err != nil {
		return nil, fmt.Errorf("alchemy scene: %w", err)
	}

	em := ecs.NewEntityManager()
	seed := seedOrNow(d.Config.Alchemy.Seed)
	s := &AlchemyScene{
		entityManager:  em,
		smokeSystem:    systems.NewSmokeSystem(em, systems.DefaultSmokeAnchors(), seed),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		panel:          panel,
		viewport:       d.Viewport,
	}
	logger.Info("[AlchemyScene] mounted", zap.Float64("width", d.Viewport.Width), zap.Float64("height", d.Viewport.Height))
	return s, nil
}

// Update 推进烟雾、指针与计数
func (s *AlchemyScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	x, y := utils.GetPointerPosition()
	p := utils.Point{X: float64(x), Y: float64(y)}
	inside := utils.IsTouchDevice() ||
		(p.X >= 0 && p.Y >= 0 && p.X < s.viewport.Width && p.Y < s.viewport.Height)
	s.step(deltaTime, p, inside)
}

func (s *AlchemyScene) step(deltaTime float64, cursor utils.Point, inside bool) {
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
	s.smokeSystem.Update(deltaTime)

	s.panel.Pointer(cursor, inside)
	s.panel.Update(deltaTime)
}

// Draw 绘制烟雾与画布
func (s *AlchemyScene) Draw(screen *ebiten.Image) {
	screen.Fill(utils.Void.NRGBA())
	s.smokeSystem.Draw(screen, s.viewport)
	s.panel.Draw(screen, utils.Point{}, s.viewport)
}

// Resize 只影响文案与烟雾的布局，引擎边界保持挂载时的尺寸
func (s *AlchemyScene) Resize(vp utils.Viewport) {
	if vp.Valid() {
		s.viewport = vp
	}
}

// Dispose 停止帧循环，可重复调用
func (s *AlchemyScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.panel.Close()
	s.entityManager.Clear()
	logger.Info("[AlchemyScene] disposed")
}
