package systems

import (
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/remote"
	"github.com/gonewx/coaster/pkg/track"
)

// telemetryInterval 状态快照广播间隔（秒），10Hz
const telemetryInterval = 0.1

// TelemetryConn 遥测系统对远程中枢的依赖
// *remote.Hub 实现该接口；测试注入 fake 以观察快照
type TelemetryConn interface {
	Commands() <-chan remote.Command
	PublishState(snap remote.StateSnapshot)
}

// TelemetrySystem 遥测系统
// 把行驶状态定期广播给远程客户端，并把远程指令应用到游戏循环
//
// 指令只在这里消费：远程连接的读协程把指令投进缓冲通道，
// 游戏循环每帧排空，保证只有循环线程改动游戏状态
type TelemetrySystem struct {
	entityManager *ecs.EntityManager
	hub           TelemetryConn
	rideSystem    *RideSystem
	cameraSystem  *OrbitCameraSystem
	renderSystem  *RenderSystem
	trackCfg      *track.Config

	selectTrack   func(trackID string)
	sinceLastSend float64
}

// NewTelemetrySystem 创建遥测系统
func NewTelemetrySystem(
	em *ecs.EntityManager,
	hub TelemetryConn,
	ride *RideSystem,
	camera *OrbitCameraSystem,
	render *RenderSystem,
	cfg *track.Config,
) *TelemetrySystem {
	return &TelemetrySystem{
		entityManager: em,
		hub:           hub,
		rideSystem:    ride,
		cameraSystem:  camera,
		renderSystem:  render,
		trackCfg:      cfg,
		// 首帧立即广播一次
		sinceLastSend: telemetryInterval,
	}
}

// SetTrackSelector 注册轨道切换回调（切换场景只能由场景层完成）
func (s *TelemetrySystem) SetTrackSelector(fn func(trackID string)) {
	s.selectTrack = fn
}

// Update 排空指令通道并按节拍广播快照
func (s *TelemetrySystem) Update(deltaTime float64) {
	s.drainCommands()

	s.sinceLastSend += deltaTime
	if s.sinceLastSend >= telemetryInterval {
		s.sinceLastSend = 0
		s.publishSnapshot()
	}
}

// drainCommands 非阻塞地取出全部待处理指令
func (s *TelemetrySystem) drainCommands() {
	for {
		select {
		case cmd := <-s.hub.Commands():
			s.applyCommand(cmd)
		default:
			return
		}
	}
}

// applyCommand 校验并执行一条远程指令，非法指令记日志后忽略
func (s *TelemetrySystem) applyCommand(cmd remote.Command) {
	switch cmd.Type {
	case remote.CmdSetSpeed:
		var p remote.SetSpeedPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			log.Printf("[Telemetry] set_speed 载荷无效: %v", err)
			return
		}
		if math.IsNaN(p.MPS) || math.IsInf(p.MPS, 0) || p.MPS < 0 {
			log.Printf("[Telemetry] set_speed 数值越界: %v", p.MPS)
			return
		}
		// 超出轨道限速的部分由行驶系统截断
		s.rideSystem.SetSpeedTarget(p.MPS)

	case remote.CmdSetDirection:
		var p remote.SetDirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			log.Printf("[Telemetry] set_direction 载荷无效: %v", err)
			return
		}
		if p.Dir != 1 && p.Dir != -1 {
			log.Printf("[Telemetry] set_direction 只接受 ±1: %d", p.Dir)
			return
		}
		s.rideSystem.SetDirection(p.Dir)

	case remote.CmdTogglePause:
		s.rideSystem.TogglePause()

	case remote.CmdSelectTrack:
		var p remote.SelectTrackPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			log.Printf("[Telemetry] select_track 载荷无效: %v", err)
			return
		}
		if p.ID == "" || s.selectTrack == nil {
			return
		}
		s.selectTrack(p.ID)

	case remote.CmdSetCamera:
		var p remote.SetCameraPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			log.Printf("[Telemetry] set_camera 载荷无效: %v", err)
			return
		}
		switch p.Mode {
		case remote.CameraModeOrbit:
			s.cameraSystem.SetMode(components.CameraModeOrbit)
		case remote.CameraModeOnboard:
			s.cameraSystem.SetMode(components.CameraModeOnboard)
		default:
			log.Printf("[Telemetry] 未知相机模式: %s", p.Mode)
		}

	default:
		log.Printf("[Telemetry] 未知指令类型: %s", cmd.Type)
	}
}

// publishSnapshot 采样当前行驶与相机状态并广播
func (s *TelemetrySystem) publishSnapshot() {
	rides := ecs.GetEntitiesWith1[*components.RideComponent](s.entityManager)
	if len(rides) == 0 {
		return
	}
	ride, ok := ecs.GetComponent[*components.RideComponent](s.entityManager, rides[0])
	if !ok {
		return
	}

	cameraMode := remote.CameraModeOrbit
	for _, entityID := range ecs.GetEntitiesWith1[*components.CameraRigComponent](s.entityManager) {
		if rig, ok := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, entityID); ok {
			if rig.Mode == components.CameraModeOnboard {
				cameraMode = remote.CameraModeOnboard
			}
			break
		}
	}

	s.hub.PublishState(remote.StateSnapshot{
		TrackID:    s.trackCfg.ID,
		TrackName:  s.trackCfg.Name,
		Progress:   ride.Progress,
		SpeedMPS:   ride.SpeedMPS,
		Direction:  ride.Direction,
		Paused:     ride.Paused,
		Lap:        ride.Lap,
		OdometerM:  ride.Odometer,
		CameraMode: cameraMode,
		Wireframe:  s.renderSystem.Wireframe(),
		TS:         time.Now().UnixMilli(),
	})
}
