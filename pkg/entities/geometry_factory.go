package entities

import (
	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/geometry"
)

// geometryLayers 几何区块需要逐帧更新的层，按绘制顺序
var geometryLayers = []components.Layer{
	components.LayerGeometryRing,
	components.LayerGeometryFigure,
	components.LayerGeometryTitle,
	components.LayerGeometryHint,
	components.LayerGeometryPortal,
	components.LayerCinematic,
	components.LayerCinematicCaption,
}

// GeometryEntities 挂载后的几何区块实体
type GeometryEntities struct {
	Parts  []ecs.EntityID
	Glyphs []ecs.EntityID
	Layers map[components.Layer]ecs.EntityID
}

// All 返回全部实体 ID，用于卸载
func (g *GeometryEntities) All() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(g.Parts)+len(g.Glyphs)+len(g.Layers))
	ids = append(ids, g.Parts...)
	ids = append(ids, g.Glyphs...)
	for _, l := range geometryLayers {
		if id, ok := g.Layers[l]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// NewGeometryEntities 挂载几何区块：每个图形部件、文字环上的每个字符、每个可见层各一个实体
//
// 初始状态对应进度 0 之前（全部透明），第一次滚动派发后由 GeometrySystem 覆盖。
func NewGeometryEntities(em *ecs.EntityManager, section string, figure []geometry.PartGroup, layout *geometry.RingLayout) *GeometryEntities {
	g := &GeometryEntities{Layers: make(map[components.Layer]ecs.EntityID, len(geometryLayers))}

	stroke := 0
	for _, group := range figure {
		id := em.CreateEntity()
		em.AddComponent(id, &components.NodeComponent{Section: section, Layer: components.LayerGeometryFigure})
		em.AddComponent(id, &components.FigurePartComponent{Group: group, FirstStroke: stroke})
		em.AddComponent(id, &components.TransformComponent{Scale: 1})
		stroke += len(group.Shapes)
		g.Parts = append(g.Parts, id)
	}

	if layout != nil {
		for i, glyph := range layout.Glyphs {
			id := em.CreateEntity()
			em.AddComponent(id, &components.NodeComponent{Section: section, Layer: components.LayerGeometryRing})
			em.AddComponent(id, &components.GlyphComponent{Index: i, Rune: glyph.Rune})
			em.AddComponent(id, &components.TransformComponent{
				TranslateX: glyph.StartX,
				TranslateY: glyph.StartY,
				Rotation:   glyph.StartRot,
				Scale:      1,
			})
			g.Glyphs = append(g.Glyphs, id)
		}
	}

	for _, l := range geometryLayers {
		id := em.CreateEntity()
		em.AddComponent(id, &components.NodeComponent{Section: section, Layer: l})
		layer := &components.LayerComponent{Opacity: 1, Scale: 1}
		switch l {
		case components.LayerCinematic, components.LayerCinematicCaption:
			layer.Opacity = 0
			layer.Scale = 0.95
		}
		em.AddComponent(id, layer)
		g.Layers[l] = id
	}
	return g
}
