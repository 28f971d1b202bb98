package components

import (
	"github.com/gonewx/coaster/pkg/render3d"
)

// CameraMode 相机模式
type CameraMode int

const (
	// CameraModeOrbit 环绕模式：围绕轨道中心拖拽旋转、滚轮缩放
	CameraModeOrbit CameraMode = iota
	// CameraModeOnboard 机载模式：相机固定在小球上随轨道飞行
	CameraModeOnboard
)

// CameraRigComponent 相机装配组件
// 环绕相机的全部状态：当前角度、弹簧目标、限制范围、闲置自转
//
// Yaw/Pitch/Radius 是显示值，向对应 Target* 弹簧趋近；
// 拖拽和滚轮只改 Target*，视角移动由弹簧平滑
type CameraRigComponent struct {
	// Mode 当前相机模式
	Mode CameraMode

	// Center 环绕目标点（世界坐标），由轨道包围盒推导
	Center render3d.Vec3

	// ===== 当前显示值 =====
	Yaw    float64 // 偏航（弧度）
	Pitch  float64 // 俯仰（弧度，负值为俯视）
	Radius float64 // 相机到目标的距离

	// ===== 弹簧目标值 =====
	TargetYaw    float64
	TargetPitch  float64
	TargetRadius float64

	// ===== 弹簧内部速度项 =====
	YawVel    float64
	PitchVel  float64
	RadiusVel float64

	// ===== 限制 =====
	MinPitch  float64
	MaxPitch  float64
	MinRadius float64
	MaxRadius float64

	// ===== 拖拽状态 =====
	Dragging   bool
	LastMouseX int
	LastMouseY int
	// DragIgnoreBelowY 屏幕 Y 不小于该值的区域属于控制栏，
	// 指针落在其中时不开始拖拽（0 表示不限制）
	DragIgnoreBelowY float64

	// ===== 闲置自转 =====
	// AutoRotate 开关（设置项）
	AutoRotate bool
	// AutoRotateSpeed 自转角速度（弧度/秒）
	AutoRotateSpeed float64
	// IdleDelay 无输入多少秒后开始自转
	IdleDelay float64
	// IdleSeconds 已闲置时长（秒），有输入时清零
	IdleSeconds float64

	// ===== 复位基准（R键） =====
	DefaultYaw    float64
	DefaultPitch  float64
	DefaultRadius float64
}
