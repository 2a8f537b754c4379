package systems

import (
	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/helix"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// SymbolsSection 螺旋符号区块的节点标识
const SymbolsSection = "symbols"

// HelixSystem 把螺旋帧写入卡片实体
//
// 卡片数量取自当前挂载的 SpiralItemComponent 实体。引导线在创建时按视口采样一次，
// 之后视口变化不会重新采样。
type HelixSystem struct {
	entityManager *ecs.EntityManager
	params        helix.Params
	viewport      utils.Viewport
	guide         *helix.GuidePath

	frame    helix.Frame
	hasFrame bool
}

// NewHelixSystem 创建螺旋系统
func NewHelixSystem(em *ecs.EntityManager, params helix.Params, vp utils.Viewport) *HelixSystem {
	return &HelixSystem{
		entityManager: em,
		params:        params,
		viewport:      vp,
		guide:         helix.NewGuidePath(vp, params),
	}
}

// Params 返回布局参数
func (s *HelixSystem) Params() helix.Params {
	return s.params
}

// Guide 返回引导线
func (s *HelixSystem) Guide() *helix.GuidePath {
	return s.guide
}

// Resize 更新投影使用的视口（半径随之变化，引导线不变）
func (s *HelixSystem) Resize(vp utils.Viewport) {
	s.viewport = vp
}

// Frame 返回最近一次应用的帧
func (s *HelixSystem) Frame() (helix.Frame, bool) {
	return s.frame, s.hasFrame
}

// Apply 根据进度计算帧，写入每张卡片的状态与投影
func (s *HelixSystem) Apply(progress float64) helix.Frame {
	entities := ecs.GetEntitiesWith1[*components.SpiralItemComponent](s.entityManager)

	f := helix.DeriveFrame(progress, len(entities), s.viewport, s.params)
	s.frame, s.hasFrame = f, true

	for _, id := range entities {
		item, _ := ecs.GetComponent[*components.SpiralItemComponent](s.entityManager, id)
		if item.Index < 0 || item.Index >= len(f.Items) {
			continue
		}
		item.Frame = f.Items[item.Index]
		item.Projection = helix.Project(item.Frame, f.Group, s.viewport, s.params.Perspective)
	}
	return f
}
