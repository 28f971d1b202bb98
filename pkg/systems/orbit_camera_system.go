package systems

import (
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/render3d"
	"github.com/gonewx/coaster/pkg/spline"
	"github.com/gonewx/coaster/pkg/utils"
)

// CameraInput 相机系统输入接口
// 用于依赖注入，支持测试时 mock
type CameraInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	Wheel() (float64, float64)
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenCameraInput Ebitengine 默认实现
type ebitenCameraInput struct{}

func (e *ebitenCameraInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenCameraInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return utils.IsPointerPressed()
}

func (e *ebitenCameraInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

func (e *ebitenCameraInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// defaultCameraInput 默认输入实例
var defaultCameraInput CameraInput = &ebitenCameraInput{}

// 交互手感参数
const (
	dragSensitivity = 0.008 // 弧度/像素
	zoomStep        = 0.10  // 每格滚轮改变半径的比例
)

// OrbitCameraSystem 相机系统
// 环绕模式下围绕轨道中心拖拽旋转、滚轮缩放；机载模式下跟随小球。
//
// 职责：
//   - 指针拖拽改写目标偏航/俯仰，滚轮按比例改写目标半径
//   - 显示值向目标值弹簧趋近，所有视角移动都经过平滑
//   - 无输入一段时间后缓慢自转（可在设置中关闭）
//   - R 键复位视角，C 键切换环绕/机载模式
//   - 每帧把相机位置写入渲染场景
type OrbitCameraSystem struct {
	entityManager *ecs.EntityManager
	scene         *render3d.Scene
	curve         *spline.Curve
	spring        harmonica.Spring
	input         CameraInput
}

// NewOrbitCameraSystem 创建相机系统
func NewOrbitCameraSystem(em *ecs.EntityManager, scene *render3d.Scene, curve *spline.Curve) *OrbitCameraSystem {
	return &OrbitCameraSystem{
		entityManager: em,
		scene:         scene,
		curve:         curve,
		spring:        harmonica.NewSpring(harmonica.FPS(60), 4.0, 1.0),
		input:         defaultCameraInput,
	}
}

// NewOrbitCameraSystemWithInput 创建带自定义输入的相机系统（用于测试）
func NewOrbitCameraSystemWithInput(em *ecs.EntityManager, scene *render3d.Scene, curve *spline.Curve, input CameraInput) *OrbitCameraSystem {
	s := NewOrbitCameraSystem(em, scene, curve)
	s.input = input
	return s
}

// Update 更新相机状态并写入场景
func (s *OrbitCameraSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.CameraRigComponent](s.entityManager)
	for _, entityID := range entities {
		rig, _ := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, entityID)
		if rig == nil {
			continue
		}

		if s.input.IsKeyJustPressed(ebiten.KeyR) {
			s.Reset(rig)
		}
		if s.input.IsKeyJustPressed(ebiten.KeyC) {
			s.ToggleMode(rig)
		}

		switch rig.Mode {
		case components.CameraModeOnboard:
			s.updateOnboard(rig)
		default:
			s.updateOrbit(rig, deltaTime)
		}
	}
}

// Reset 把视角复位到默认值
func (s *OrbitCameraSystem) Reset(rig *components.CameraRigComponent) {
	rig.TargetYaw = rig.DefaultYaw
	rig.TargetPitch = rig.DefaultPitch
	rig.TargetRadius = rig.DefaultRadius
	rig.IdleSeconds = 0
}

// ToggleMode 在环绕与机载模式之间切换
func (s *OrbitCameraSystem) ToggleMode(rig *components.CameraRigComponent) {
	if rig.Mode == components.CameraModeOrbit {
		rig.Mode = components.CameraModeOnboard
	} else {
		rig.Mode = components.CameraModeOrbit
	}
}

// SetMode 直接设置相机模式（远程指令用）
func (s *OrbitCameraSystem) SetMode(mode components.CameraMode) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.CameraRigComponent](s.entityManager) {
		if rig, ok := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, entityID); ok {
			rig.Mode = mode
		}
	}
}

// updateOrbit 环绕模式：拖拽、缩放、闲置自转、弹簧平滑
func (s *OrbitCameraSystem) updateOrbit(rig *components.CameraRigComponent, deltaTime float64) {
	mouseX, mouseY := s.input.CursorPosition()
	pressed := s.input.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, wheelY := s.input.Wheel()

	hadInput := false

	// 拖拽旋转。控制栏区域内按下不开始拖拽，避免抢走按钮点击
	if pressed {
		inUIArea := rig.DragIgnoreBelowY > 0 && float64(mouseY) >= rig.DragIgnoreBelowY
		if !rig.Dragging && !inUIArea {
			rig.Dragging = true
			rig.LastMouseX = mouseX
			rig.LastMouseY = mouseY
		}
		if rig.Dragging {
			dx := float64(mouseX - rig.LastMouseX)
			dy := float64(mouseY - rig.LastMouseY)
			if dx != 0 || dy != 0 {
				rig.TargetYaw += dx * dragSensitivity
				rig.TargetPitch = clampFloat(rig.TargetPitch+dy*dragSensitivity, rig.MinPitch, rig.MaxPitch)
				hadInput = true
			}
			rig.LastMouseX = mouseX
			rig.LastMouseY = mouseY
		}
	} else {
		rig.Dragging = false
	}

	// 滚轮缩放：每格按当前半径的固定比例推拉
	if wheelY != 0 {
		rig.TargetRadius = clampFloat(rig.TargetRadius*(1-zoomStep*wheelY), rig.MinRadius, rig.MaxRadius)
		hadInput = true
	}

	// 闲置自转
	if hadInput {
		rig.IdleSeconds = 0
	} else {
		rig.IdleSeconds += deltaTime
	}
	if rig.AutoRotate && rig.IdleSeconds >= rig.IdleDelay {
		rig.TargetYaw += rig.AutoRotateSpeed * deltaTime
	}

	// 显示值弹簧趋近目标值
	rig.Yaw, rig.YawVel = s.spring.Update(rig.Yaw, rig.YawVel, rig.TargetYaw)
	rig.Pitch, rig.PitchVel = s.spring.Update(rig.Pitch, rig.PitchVel, rig.TargetPitch)
	rig.Radius, rig.RadiusVel = s.spring.Update(rig.Radius, rig.RadiusVel, rig.TargetRadius)

	ctl := render3d.OrbitController{
		Target:    rig.Center,
		Yaw:       render3d.Scalar(rig.Yaw),
		Pitch:     render3d.Scalar(rig.Pitch),
		Radius:    render3d.Scalar(rig.Radius),
		MinRadius: render3d.Scalar(rig.MinRadius),
		MaxRadius: render3d.Scalar(rig.MaxRadius),
		MinPitch:  render3d.Scalar(rig.MinPitch),
		MaxPitch:  render3d.Scalar(rig.MaxPitch),
	}
	ctl.Apply(&s.scene.Camera)
}

// updateOnboard 机载模式：相机贴在小球上方，看向行进方向
func (s *OrbitCameraSystem) updateOnboard(rig *components.CameraRigComponent) {
	rides := ecs.GetEntitiesWith2[*components.RideComponent, *components.TransformComponent](s.entityManager)
	if len(rides) == 0 {
		return
	}
	ride, _ := ecs.GetComponent[*components.RideComponent](s.entityManager, rides[0])
	tf, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, rides[0])
	if ride == nil || tf == nil {
		return
	}

	length := s.curve.Length()
	d := render3d.Scalar(ride.Progress) * length
	ahead := d + render3d.Scalar(ride.LookAhead*float64(ride.Direction))

	// 视点在小球上方一点，看向前视点
	up := render3d.V3(0, 1, 0)
	eye := tf.Position.Add(up.Mul(1.2))
	target := s.curve.PointAtDistance(ahead).Add(up.Mul(0.6))

	s.scene.Camera.Position = eye
	s.scene.Camera.Target = target
	s.scene.Camera.Up = up
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
