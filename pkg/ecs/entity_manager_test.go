package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransform struct {
	X, Y, Rotation float64
}

type testNode struct {
	Name string
}

type testGlyph struct {
	Rune rune
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("实体 ID 应从 1 开始递增, got %d, %d", id1, id2)
	}
	if em.Count() != 2 || !em.Exists(id1) {
		t.Errorf("Count = %d, 期望 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransform{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransform{}))
	if !found {
		t.Fatal("组件应存在")
	}
	if tr := comp.(*testTransform); tr.X != 100 || tr.Y != 200 {
		t.Errorf("组件数据 = %+v, 期望 (100, 200)", tr)
	}

	// 同类型组件被替换
	em.AddComponent(id, &testTransform{X: 1})
	if tr, _ := GetComponent[*testTransform](em, id); tr.X != 1 {
		t.Errorf("替换后 X = %v, 期望 1", tr.X)
	}

	// 不存在的实体忽略
	em.AddComponent(999, &testNode{})
	if em.Exists(999) {
		t.Error("AddComponent 不应创建实体")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testNode{Name: "outer"})
	em.AddComponent(id2, &testNode{Name: "square"})

	em.DestroyEntity(id1)
	em.DestroyEntity(id1)
	em.DestroyEntity(42)

	if !HasComponent[*testNode](em, id1) {
		t.Error("清理前实体仍应存在")
	}
	em.RemoveMarkedEntities()
	if em.Exists(id1) || !em.Exists(id2) {
		t.Error("只有 id1 应被删除")
	}
	if len(em.entitiesToDestroy) != 0 {
		t.Error("待删除列表应被清空")
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTransform{})
		if i%2 == 0 {
			em.AddComponent(id, &testGlyph{Rune: 'A' + rune(i)})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testTransform](em)
	if len(all) != 20 {
		t.Fatalf("查询结果 = %d, 期望 20", len(all))
	}
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("结果应按 ID 升序: %v", all)
		}
	}

	glyphs := GetEntitiesWith2[*testTransform, *testGlyph](em)
	if len(glyphs) != 10 {
		t.Errorf("同时拥有两种组件的实体 = %d, 期望 10", len(glyphs))
	}
	if got := GetEntitiesWith3[*testTransform, *testGlyph, *testNode](em); len(got) != 0 {
		t.Errorf("没有实体拥有三种组件, got %v", got)
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, ok := GetComponent[*testNode](em, id); ok {
		t.Error("未添加的组件不应找到")
	}
	em.AddComponent(id, &testNode{Name: "center"})
	node, ok := GetComponent[*testNode](em, id)
	if !ok || node.Name != "center" {
		t.Errorf("GetComponent = %+v, %v", node, ok)
	}

	RemoveComponent[*testNode](em, id)
	if HasComponent[*testNode](em, id) {
		t.Error("RemoveComponent 后组件应不存在")
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.DestroyEntity(em.CreateEntity())
	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Clear 后 Count = %d", em.Count())
	}
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("Clear 不应重置 ID, got %d", id)
	}
}
