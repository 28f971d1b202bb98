package systems

import (
	"testing"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/render3d"
)

// newRenderTestScene 创建带一个可用网格槽位的渲染测试环境
func newRenderTestScene(t *testing.T) (*ecs.EntityManager, *render3d.Scene, *RenderSystem, int) {
	t.Helper()
	em := ecs.NewEntityManager()
	scene := render3d.CreateScene(4)
	slot := scene.AddMesh(render3d.Mesh{
		Vertices: []render3d.Vertex{
			{Pos: render3d.V3(0, 0, 0)},
			{Pos: render3d.V3(1, 0, 0)},
			{Pos: render3d.V3(0, 1, 0)},
		},
		Indices: []uint16{0, 1, 2},
	})
	if slot < 0 {
		t.Fatalf("AddMesh returned %d, want a valid slot", slot)
	}
	rs := NewRenderSystem(em, scene, 64, 64)
	return em, scene, rs, slot
}

// TestRenderSystemSyncsTransform 测试实体变换写入网格槽位
func TestRenderSystemSyncsTransform(t *testing.T) {
	em, scene, rs, slot := newRenderTestScene(t)

	entity := em.CreateEntity()
	tf := &components.TransformComponent{Position: render3d.V3(3, 4, 5)}
	ecs.AddComponent(em, entity, tf)
	ecs.AddComponent(em, entity, &components.MeshInstanceComponent{SlotID: slot, Visible: true})

	rs.Update(1.0 / 60.0)

	if got, want := scene.MeshTransform(slot), tf.Matrix(); got != want {
		t.Errorf("MeshTransform = %v, want %v", got, want)
	}
	if !scene.MeshEnabled(slot) {
		t.Error("MeshEnabled = false, want true")
	}

	// 实体移动后再次同步
	tf.Position = render3d.V3(-1, 2, 0)
	rs.Update(1.0 / 60.0)
	if got, want := scene.MeshTransform(slot), tf.Matrix(); got != want {
		t.Errorf("MeshTransform after move = %v, want %v", got, want)
	}
}

// TestRenderSystemVisibilityToggle 测试 Visible 开关槽位
func TestRenderSystemVisibilityToggle(t *testing.T) {
	em, scene, rs, slot := newRenderTestScene(t)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.TransformComponent{})
	mi := &components.MeshInstanceComponent{SlotID: slot, Visible: false}
	ecs.AddComponent(em, entity, mi)

	rs.Update(1.0 / 60.0)
	if scene.MeshEnabled(slot) {
		t.Error("MeshEnabled = true, want false while hidden")
	}

	mi.Visible = true
	rs.Update(1.0 / 60.0)
	if !scene.MeshEnabled(slot) {
		t.Error("MeshEnabled = false, want true after show")
	}
}

// TestRenderSystemHiddenSkipsTransform 测试隐藏实体不更新变换
func TestRenderSystemHiddenSkipsTransform(t *testing.T) {
	em, scene, rs, slot := newRenderTestScene(t)

	entity := em.CreateEntity()
	tf := &components.TransformComponent{Position: render3d.V3(9, 9, 9)}
	ecs.AddComponent(em, entity, tf)
	ecs.AddComponent(em, entity, &components.MeshInstanceComponent{SlotID: slot, Visible: false})

	before := scene.MeshTransform(slot)
	rs.Update(1.0 / 60.0)
	if got := scene.MeshTransform(slot); got != before {
		t.Errorf("MeshTransform = %v, want unchanged %v", got, before)
	}
}

// TestRenderSystemIgnoresUnboundEntity 测试负槽位实体被跳过
func TestRenderSystemIgnoresUnboundEntity(t *testing.T) {
	em, scene, rs, slot := newRenderTestScene(t)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.TransformComponent{Position: render3d.V3(1, 1, 1)})
	ecs.AddComponent(em, entity, &components.MeshInstanceComponent{SlotID: -1, Visible: true})

	before := scene.MeshTransform(slot)
	rs.Update(1.0 / 60.0)
	if got := scene.MeshTransform(slot); got != before {
		t.Errorf("MeshTransform = %v, want unchanged %v", got, before)
	}
}

// TestRenderSystemWireframeToggle 测试线框模式开关
func TestRenderSystemWireframeToggle(t *testing.T) {
	_, _, rs, _ := newRenderTestScene(t)

	if rs.Wireframe() {
		t.Error("Wireframe = true, want false by default")
	}
	rs.SetWireframe(true)
	if !rs.Wireframe() {
		t.Error("Wireframe = false, want true after SetWireframe(true)")
	}
	rs.SetWireframe(false)
	if rs.Wireframe() {
		t.Error("Wireframe = true, want false after SetWireframe(false)")
	}
}
