package entities

import (
	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/ecs"
)

// NewSymbolCards 为每个符号创建一张螺旋卡片实体，Index 即其在螺旋中的位置
func NewSymbolCards(em *ecs.EntityManager, section string, symbols []config.Symbol) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(symbols))
	for i, s := range symbols {
		id := em.CreateEntity()
		em.AddComponent(id, &components.NodeComponent{Section: section, Layer: components.LayerHelixCards})
		em.AddComponent(id, &components.SpiralItemComponent{
			Index: i,
			Content: components.SymbolContent{
				Name:        s.Name,
				Quote:       s.Quote,
				Source:      s.Source,
				QuoteAlign:  s.QuoteAlign,
				Orb:         s.Orb,
				Description: s.Description,
			},
		})
		ids = append(ids, id)
	}
	return ids
}

// DestroyAll 标记一组实体待删除
func DestroyAll(em *ecs.EntityManager, ids []ecs.EntityID) {
	for _, id := range ids {
		em.DestroyEntity(id)
	}
}
