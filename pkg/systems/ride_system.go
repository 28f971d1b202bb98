package systems

import (
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/render3d"
	"github.com/gonewx/coaster/pkg/spline"
	"github.com/gonewx/coaster/pkg/track"
)

// RideKeyInput 行驶系统键盘输入接口
// 用于依赖注入，支持测试时 mock
type RideKeyInput interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenRideKeyInput Ebitengine 默认实现
type ebitenRideKeyInput struct{}

func (e *ebitenRideKeyInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (e *ebitenRideKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// defaultRideKeyInput 默认键盘输入实例
var defaultRideKeyInput RideKeyInput = &ebitenRideKeyInput{}

// 小球中心相对轨道中心线的抬升比例（相对球半径）
const ballLiftFactor = 0.3

// RideSystem 轨道行驶系统
// 负责小球沿闭合曲线的运动推进与姿态计算
//
// 职责：
//   - 每帧按 progress += speed * direction * dt / length 推进进度并在 [0,1) 回绕
//   - 速度向目标值弹簧趋近（加减速平滑）
//   - 跨越起点时累计圈数（正反向都记圈）
//   - 由"看向前方曲线点"计算小球朝向，写入 TransformComponent
//   - 处理行驶快捷键：空格暂停、左右换向、上下调速
//   - 根据速度驱动风声强度
type RideSystem struct {
	entityManager *ecs.EntityManager
	curve         *spline.Curve
	speed         track.SpeedRange
	ballRadius    float64
	spring        harmonica.Spring
	input         RideKeyInput
}

// NewRideSystem 创建轨道行驶系统
func NewRideSystem(em *ecs.EntityManager, curve *spline.Curve, cfg *track.Config) *RideSystem {
	return &RideSystem{
		entityManager: em,
		curve:         curve,
		speed:         cfg.Speed,
		ballRadius:    cfg.BallRadius,
		spring:        harmonica.NewSpring(harmonica.FPS(60), 2.0, 1.0),
		input:         defaultRideKeyInput,
	}
}

// NewRideSystemWithInput 创建带自定义键盘输入的行驶系统（用于测试）
func NewRideSystemWithInput(em *ecs.EntityManager, curve *spline.Curve, cfg *track.Config, input RideKeyInput) *RideSystem {
	s := NewRideSystem(em, curve, cfg)
	s.input = input
	return s
}

// Update 推进所有行驶实体
func (s *RideSystem) Update(deltaTime float64) {
	s.handleKeys(deltaTime)

	length := float64(s.curve.Length())
	if length <= 0 {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.RideComponent, *components.TransformComponent](s.entityManager)
	for _, entityID := range entities {
		ride, _ := ecs.GetComponent[*components.RideComponent](s.entityManager, entityID)
		tf, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, entityID)
		if ride == nil || tf == nil {
			continue
		}

		// 速度弹簧趋近目标值
		ride.SpeedMPS, ride.SpeedVel = s.spring.Update(ride.SpeedMPS, ride.SpeedVel, ride.SpeedTarget)

		if !ride.Paused {
			prev := ride.Progress
			delta := ride.SpeedMPS * float64(ride.Direction) * deltaTime / length
			ride.Progress = spline.Wrap01(prev + delta)

			// 回绕即跨越起点，正反向各自记圈
			if ride.Direction > 0 && ride.Progress < prev {
				ride.Lap++
				s.playLapChime()
			} else if ride.Direction < 0 && ride.Progress > prev {
				ride.Lap++
				s.playLapChime()
			}

			ride.Odometer += ride.SpeedMPS * deltaTime
			if ride.SpeedMPS > ride.TopSpeed {
				ride.TopSpeed = ride.SpeedMPS
			}
		}

		s.applyPose(ride, tf)
		s.updateWind(ride)
	}
}

// applyPose 根据进度计算小球位置与朝向
// 朝向取"当前点 → 前方 LookAhead 米处曲线点"的方向
func (s *RideSystem) applyPose(ride *components.RideComponent, tf *components.TransformComponent) {
	length := s.curve.Length()
	d := render3d.Scalar(ride.Progress) * length

	pos := s.curve.PointAtDistance(d)
	ahead := d + render3d.Scalar(ride.LookAhead*float64(ride.Direction))
	look := s.curve.PointAtDistance(ahead)

	forward := look.Sub(pos)
	if render3d.Len(forward) < 1e-6 {
		forward = s.curve.Tangent(ride.Progress)
	}
	forward = render3d.Normalize(forward)

	right := render3d.Cross(render3d.V3(0, 1, 0), forward)
	if render3d.Len(right) < 1e-4 {
		right = render3d.Cross(render3d.V3(0, 0, 1), forward)
	}
	right = render3d.Normalize(right)
	up := render3d.Normalize(render3d.Cross(forward, right))

	lift := up.Mul(render3d.Scalar(s.ballRadius * ballLiftFactor))
	tf.Position = pos.Add(lift)
	tf.Rotation = render3d.Mat4FromBasis(right, up, forward)
}

// handleKeys 处理行驶快捷键
func (s *RideSystem) handleKeys(deltaTime float64) {
	if s.input.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if s.input.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.SetDirection(1)
	}
	if s.input.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.SetDirection(-1)
	}
	if s.input.IsKeyJustPressed(ebiten.KeyV) {
		s.ReverseDirection()
	}

	// 按住上下键连续调速
	rate := (s.speed.Max - s.speed.Min) / 2 * deltaTime
	if s.input.IsKeyPressed(ebiten.KeyArrowUp) {
		s.AdjustSpeedTarget(rate)
	}
	if s.input.IsKeyPressed(ebiten.KeyArrowDown) {
		s.AdjustSpeedTarget(-rate)
	}

	// +/- 离散步进调速
	step := (s.speed.Max - s.speed.Min) / 10
	if s.input.IsKeyJustPressed(ebiten.KeyEqual) || s.input.IsKeyJustPressed(ebiten.KeyKPAdd) {
		s.AdjustSpeedTarget(step)
	}
	if s.input.IsKeyJustPressed(ebiten.KeyMinus) || s.input.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		s.AdjustSpeedTarget(-step)
	}
}

// ===== 行驶控制接口（供UI按钮、快捷键与远程指令调用） =====

// TogglePause 切换暂停状态
func (s *RideSystem) TogglePause() {
	s.eachRide(func(ride *components.RideComponent) {
		ride.Paused = !ride.Paused
	})
}

// SetPaused 设置暂停状态
func (s *RideSystem) SetPaused(paused bool) {
	s.eachRide(func(ride *components.RideComponent) {
		ride.Paused = paused
	})
}

// SetDirection 设置行驶方向，dir 只接受 +1 或 -1
func (s *RideSystem) SetDirection(dir int) {
	if dir != 1 && dir != -1 {
		return
	}
	s.eachRide(func(ride *components.RideComponent) {
		ride.Direction = dir
	})
}

// ReverseDirection 反转行驶方向
func (s *RideSystem) ReverseDirection() {
	s.eachRide(func(ride *components.RideComponent) {
		ride.Direction = -ride.Direction
	})
}

// SetSpeedTarget 设置目标速度（米/秒），超出轨道限速会被截断
func (s *RideSystem) SetSpeedTarget(mps float64) {
	mps = s.clampSpeed(mps)
	s.eachRide(func(ride *components.RideComponent) {
		ride.SpeedTarget = mps
	})
}

// AdjustSpeedTarget 以增量方式调整目标速度
func (s *RideSystem) AdjustSpeedTarget(delta float64) {
	s.eachRide(func(ride *components.RideComponent) {
		ride.SpeedTarget = s.clampSpeed(ride.SpeedTarget + delta)
	})
}

// SetSpeedFraction 按速度区间的比例设置目标速度（滑块用），v ∈ [0,1]
func (s *RideSystem) SetSpeedFraction(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.SetSpeedTarget(s.speed.Min + v*(s.speed.Max-s.speed.Min))
}

// SpeedFraction 返回当前目标速度在速度区间中的比例
func (s *RideSystem) SpeedFraction() float64 {
	var frac float64
	span := s.speed.Max - s.speed.Min
	if span <= 0 {
		return 0
	}
	s.eachRide(func(ride *components.RideComponent) {
		frac = (ride.SpeedTarget - s.speed.Min) / span
	})
	return frac
}

func (s *RideSystem) clampSpeed(mps float64) float64 {
	if mps < s.speed.Min {
		return s.speed.Min
	}
	if mps > s.speed.Max {
		return s.speed.Max
	}
	return mps
}

func (s *RideSystem) eachRide(fn func(*components.RideComponent)) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.RideComponent](s.entityManager) {
		if ride, ok := ecs.GetComponent[*components.RideComponent](s.entityManager, entityID); ok {
			fn(ride)
		}
	}
}

// playLapChime 跨越起点时播放提示音
func (s *RideSystem) playLapChime() {
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlaySound(game.SoundLap)
	}
}

// updateWind 风声强度随速度变化，暂停时静音
func (s *RideSystem) updateWind(ride *components.RideComponent) {
	audioManager := game.GetGameState().GetAudioManager()
	if audioManager == nil {
		return
	}
	level := 0.0
	if !ride.Paused && s.speed.Max > 0 {
		level = ride.SpeedMPS / s.speed.Max
	}
	audioManager.SetWindLevel(level)
}
