package systems

import (
	"testing"

	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	system.Update(5.0)

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok {
		t.Fatal("期望生命周期组件存在")
	}
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("期望 CurrentLifetime=5.0，得到 %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("实体不应过期")
	}
	if got := lifetime.Fraction(); got != 0.5 {
		t.Errorf("期望 Fraction=0.5，得到 %f", got)
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	system.Update(12.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("实体应已过期")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("过期实体应被删除")
	}
}

func TestLifetimeMultipleUpdates(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 1.0})

	for i := 0; i < 3; i++ {
		system.Update(0.25)
	}
	em.RemoveMarkedEntities()
	if !em.Exists(id) {
		t.Fatal("0.75 秒后实体应仍然存在")
	}

	system.Update(0.25)
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("1 秒后实体应被删除")
	}
}
