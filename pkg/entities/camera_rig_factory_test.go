package entities

import (
	"testing"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/track"
)

// TestNewCameraRigEntity 测试相机装配：注视点与半径取自几何，范围取自配置
func TestNewCameraRigEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newFactoryTestConfig(t)
	geo, err := track.Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	entity := NewCameraRigEntity(em, geo, 480, true)

	rig, ok := ecs.GetComponent[*components.CameraRigComponent](em, entity)
	if !ok {
		t.Fatal("rig entity missing CameraRigComponent")
	}

	if rig.Mode != components.CameraModeOrbit {
		t.Errorf("Mode = %v, want orbit", rig.Mode)
	}
	if rig.Center != geo.Center {
		t.Errorf("Center = %v, want %v", rig.Center, geo.Center)
	}

	radius := float64(geo.OrbitRadius)
	if rig.Radius != radius || rig.TargetRadius != radius || rig.DefaultRadius != radius {
		t.Errorf("radius = %v/%v/%v, want all %v", rig.Radius, rig.TargetRadius, rig.DefaultRadius, radius)
	}
	if rig.MinRadius != radius*config.OrbitMinRadiusFactor {
		t.Errorf("MinRadius = %v, want %v", rig.MinRadius, radius*config.OrbitMinRadiusFactor)
	}
	if rig.MaxRadius != radius*config.OrbitMaxRadiusFactor {
		t.Errorf("MaxRadius = %v, want %v", rig.MaxRadius, radius*config.OrbitMaxRadiusFactor)
	}

	if rig.Yaw != config.OrbitDefaultYaw || rig.TargetYaw != config.OrbitDefaultYaw {
		t.Errorf("yaw = %v/%v, want %v", rig.Yaw, rig.TargetYaw, config.OrbitDefaultYaw)
	}
	if rig.Pitch != config.OrbitDefaultPitch || rig.TargetPitch != config.OrbitDefaultPitch {
		t.Errorf("pitch = %v/%v, want %v", rig.Pitch, rig.TargetPitch, config.OrbitDefaultPitch)
	}
	if rig.MinPitch != config.OrbitMinPitch || rig.MaxPitch != config.OrbitMaxPitch {
		t.Errorf("pitch range = %v..%v, want %v..%v", rig.MinPitch, rig.MaxPitch, config.OrbitMinPitch, config.OrbitMaxPitch)
	}

	if rig.DragIgnoreBelowY != 480 {
		t.Errorf("DragIgnoreBelowY = %v, want 480", rig.DragIgnoreBelowY)
	}
	if !rig.AutoRotate {
		t.Error("AutoRotate = false, want true")
	}
	if rig.IdleDelay != config.OrbitIdleDelaySeconds {
		t.Errorf("IdleDelay = %v, want %v", rig.IdleDelay, config.OrbitIdleDelaySeconds)
	}
}

// TestNewCameraRigEntityAutoRotateOff 测试设置项关闭闲置自转
func TestNewCameraRigEntityAutoRotateOff(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newFactoryTestConfig(t)
	geo, err := track.Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	entity := NewCameraRigEntity(em, geo, 480, false)
	rig, _ := ecs.GetComponent[*components.CameraRigComponent](em, entity)
	if rig.AutoRotate {
		t.Error("AutoRotate = true, want false")
	}
}
