package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testProgressComponent struct {
	Progress float64
}

type testPoseComponent struct {
	X, Y, Z float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	comp := &testProgressComponent{Progress: 0.25}
	em.AddComponent(id, comp)

	// 获取组件
	got, found := em.GetComponent(id, reflect.TypeOf(&testProgressComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := got.(*testProgressComponent)
	if retrieved.Progress != 0.25 {
		t.Errorf("Component data mismatch, expected 0.25, got %f", retrieved.Progress)
	}

	// 同类型重复添加应覆盖
	em.AddComponent(id, &testProgressComponent{Progress: 0.75})
	got, _ = em.GetComponent(id, reflect.TypeOf(&testProgressComponent{}))
	if got.(*testProgressComponent).Progress != 0.75 {
		t.Error("Adding same component type should overwrite")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if em.HasComponent(id, reflect.TypeOf(&testProgressComponent{})) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testProgressComponent{})

	// 添加后应该返回true
	if !em.HasComponent(id, reflect.TypeOf(&testProgressComponent{})) {
		t.Error("Should have component after adding")
	}
}

func TestDestroyEntityDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testProgressComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.EntityExists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testProgressComponent{})) {
		t.Error("Component should be gone after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testProgressComponent{})
	em.AddComponent(id1, &testPoseComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testProgressComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testPoseComponent{})

	// 查询拥有两种组件的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testProgressComponent{}),
		reflect.TypeOf(&testPoseComponent{}),
	)
	if len(entities) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(entities))
	}
	if len(entities) > 0 && entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	// 查询拥有进度组件的实体
	progEntities := em.GetEntitiesWith(reflect.TypeOf(&testProgressComponent{}))
	if len(progEntities) != 2 {
		t.Errorf("Expected 2 entities with progress component, got %d", len(progEntities))
	}
}

// TestGetEntitiesWithDeterministicOrder 测试查询结果按ID升序稳定排列
func TestGetEntitiesWithDeterministicOrder(t *testing.T) {
	em := NewEntityManager()
	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testProgressComponent{})
		ids = append(ids, id)
	}

	for run := 0; run < 5; run++ {
		got := em.GetEntitiesWith(reflect.TypeOf(&testProgressComponent{}))
		if len(got) != len(ids) {
			t.Fatalf("run %d: expected %d entities, got %d", run, len(ids), len(got))
		}
		for i := range got {
			if got[i] != ids[i] {
				t.Fatalf("run %d: result not in ascending ID order at %d: %v", run, i, got)
			}
		}
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testProgressComponent{})
	em.AddComponent(id2, &testProgressComponent{})
	em.AddComponent(id3, &testProgressComponent{})

	// 标记两个实体删除
	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	// 验证只有id2存在
	if em.EntityExists(id1) {
		t.Error("id1 should be removed")
	}
	if !em.EntityExists(id2) {
		t.Error("id2 should still exist")
	}
	if em.EntityExists(id3) {
		t.Error("id3 should be removed")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testProgressComponent{})
	em.AddComponent(id, &testPoseComponent{})

	em.RemoveComponent(id, reflect.TypeOf(&testProgressComponent{}))

	if em.HasComponent(id, reflect.TypeOf(&testProgressComponent{})) {
		t.Error("Removed component should be gone")
	}
	if !em.HasComponent(id, reflect.TypeOf(&testPoseComponent{})) {
		t.Error("Other component should survive removal")
	}
}
