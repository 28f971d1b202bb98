package entities

import (
	"testing"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/track"
)

// newFactoryTestConfig 解析一条最小轨道配置，其余字段走默认值
func newFactoryTestConfig(t *testing.T) *track.Config {
	t.Helper()
	cfg, err := track.ParseConfig([]byte("id: loop\npoints: [[12, 0, 0], [0, 0, 12], [-12, 0, 0], [0, 0, -12]]"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	return cfg
}

// TestNewBallEntity 测试小球实体的组件装配
func TestNewBallEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newFactoryTestConfig(t)

	entity := NewBallEntity(em, 3, cfg)

	ride, ok := ecs.GetComponent[*components.RideComponent](em, entity)
	if !ok {
		t.Fatal("ball entity missing RideComponent")
	}
	if ride.Progress != 0 {
		t.Errorf("Progress = %v, want 0", ride.Progress)
	}
	if ride.Direction != 1 {
		t.Errorf("Direction = %v, want 1", ride.Direction)
	}
	if ride.SpeedMPS != cfg.Speed.Initial || ride.SpeedTarget != cfg.Speed.Initial {
		t.Errorf("speed = %v/%v, want initial %v", ride.SpeedMPS, ride.SpeedTarget, cfg.Speed.Initial)
	}
	if ride.SpeedMPS <= 0 {
		t.Errorf("initial speed = %v, want > 0", ride.SpeedMPS)
	}
	if ride.LookAhead != cfg.LookAhead {
		t.Errorf("LookAhead = %v, want %v", ride.LookAhead, cfg.LookAhead)
	}
	if ride.Paused {
		t.Error("ball must start unpaused")
	}

	if _, ok := ecs.GetComponent[*components.TransformComponent](em, entity); !ok {
		t.Error("ball entity missing TransformComponent")
	}

	mesh, ok := ecs.GetComponent[*components.MeshInstanceComponent](em, entity)
	if !ok {
		t.Fatal("ball entity missing MeshInstanceComponent")
	}
	if mesh.SlotID != 3 {
		t.Errorf("SlotID = %d, want 3", mesh.SlotID)
	}
	if !mesh.Visible {
		t.Error("ball mesh must start visible")
	}
}
