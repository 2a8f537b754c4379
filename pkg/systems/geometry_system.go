package systems

import (
	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/geometry"
)

// GeometrySection 几何重组区块的节点标识
const GeometrySection = "geometry"

// GeometrySystem 把重组帧写入几何区块的实体
//
// Apply 由滚动进度回调驱动（每次滚动一次），不参与逐帧 Update。
// 缺少的实体直接跳过，不报错。
type GeometrySystem struct {
	entityManager *ecs.EntityManager
	layout        *geometry.RingLayout

	frame    geometry.Frame
	hasFrame bool
}

// NewGeometrySystem 创建几何系统，layout 在区块挂载时计算一次
func NewGeometrySystem(em *ecs.EntityManager, layout *geometry.RingLayout) *GeometrySystem {
	return &GeometrySystem{
		entityManager: em,
		layout:        layout,
	}
}

// Layout 返回文字环布局
func (s *GeometrySystem) Layout() *geometry.RingLayout {
	return s.layout
}

// Frame 返回最近一次应用的帧
func (s *GeometrySystem) Frame() (geometry.Frame, bool) {
	return s.frame, s.hasFrame
}

// Apply 根据主进度计算帧并写入所有相关实体
func (s *GeometrySystem) Apply(progress float64) geometry.Frame {
	f := geometry.DeriveFrame(progress, s.layout)
	s.frame, s.hasFrame = f, true

	s.applyParts(&f)
	s.applyGlyphs(&f)
	s.applyLayers(&f)
	return f
}

func (s *GeometrySystem) applyParts(f *geometry.Frame) {
	entities := ecs.GetEntitiesWith2[*components.FigurePartComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		part, _ := ecs.GetComponent[*components.FigurePartComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		t, ok := f.Part(part.Group.Part)
		if !ok {
			continue
		}
		*tr = components.TransformComponent{
			TranslateX: t.TranslateX,
			TranslateY: t.TranslateY,
			Rotation:   t.Rotation,
			Scale:      t.Scale,
			Opacity:    t.Opacity,
		}
	}
}

func (s *GeometrySystem) applyGlyphs(f *geometry.Frame) {
	entities := ecs.GetEntitiesWith2[*components.GlyphComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		glyph, _ := ecs.GetComponent[*components.GlyphComponent](s.entityManager, id)
		if glyph.Index < 0 || glyph.Index >= len(f.Glyphs) {
			continue
		}
		g := f.Glyphs[glyph.Index]
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		*tr = components.TransformComponent{
			TranslateX: g.X,
			TranslateY: g.Y,
			Rotation:   g.Rotation,
			Scale:      1,
			Opacity:    g.Opacity,
		}
	}
}

func (s *GeometrySystem) applyLayers(f *geometry.Frame) {
	entities := ecs.GetEntitiesWith2[*components.NodeComponent, *components.LayerComponent](s.entityManager)
	for _, id := range entities {
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
		if node.Section != GeometrySection {
			continue
		}
		layer, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, id)

		switch node.Layer {
		case components.LayerGeometryTitle, components.LayerGeometryFigure, components.LayerGeometryRing:
			layer.Opacity = f.Wipe.LayerOpacity
		case components.LayerGeometryPortal:
			layer.ClipRadius = f.Wipe.ClipRadius
		case components.LayerCinematic:
			layer.Opacity = f.Video.Opacity
			layer.Scale = f.Video.Scale
		case components.LayerCinematicCaption:
			layer.Opacity = f.Video.CaptionOpacity
		}
	}
}
