package config

// 相机配置常量
// 环绕相机的默认姿态、角度与距离限制，以及闲置自转参数

const (
	// CameraFOVYRad 透视投影的纵向视角（弧度）
	CameraFOVYRad = 0.95

	// CameraNear 近裁剪面
	CameraNear = 0.1

	// CameraFar 远裁剪面
	CameraFar = 600.0

	// OrbitDefaultYaw 默认偏航角（弧度）
	OrbitDefaultYaw = 0.65

	// OrbitDefaultPitch 默认俯仰角（弧度，负值俯视）
	OrbitDefaultPitch = -0.42

	// OrbitMinPitch 俯仰角下限（接近正上方俯视）
	OrbitMinPitch = -1.35

	// OrbitMaxPitch 俯仰角上限（接近水平）
	OrbitMaxPitch = -0.04

	// OrbitMinRadiusFactor 最近距离 = 基准环绕半径 × 该系数
	OrbitMinRadiusFactor = 0.35

	// OrbitMaxRadiusFactor 最远距离 = 基准环绕半径 × 该系数
	OrbitMaxRadiusFactor = 3.0

	// OrbitIdleDelaySeconds 无输入多少秒后开始自动环绕
	OrbitIdleDelaySeconds = 6.0

	// OrbitAutoRotateSpeed 自动环绕角速度（弧度/秒）
	OrbitAutoRotateSpeed = 0.25
)
