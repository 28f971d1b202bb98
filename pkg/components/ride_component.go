package components

// RideComponent 轨道行驶状态组件
// 小球沿闭合曲线运动的全部状态：曲线参数、速度、方向、圈数
//
// Progress 是曲线全局参数，始终保持在 [0,1) 区间内，
// 每帧按 progress += speed * direction * dt / length 推进并回绕
type RideComponent struct {
	// Progress 曲线参数 [0,1)
	Progress float64

	// Direction 行驶方向：+1 正向，-1 反向
	Direction int

	// Paused 是否暂停（暂停时进度冻结但相机和UI照常更新）
	Paused bool

	// SpeedMPS 当前线速度（米/秒），向 SpeedTarget 弹簧趋近
	SpeedMPS float64
	// SpeedTarget 目标线速度（米/秒），由UI按钮/滑块设置
	SpeedTarget float64
	// SpeedVel 速度弹簧的内部速度项
	SpeedVel float64

	// LookAhead 姿态参考点的前视距离（米）
	// 朝向 = 从当前位置看向沿行驶方向前方 LookAhead 米处的曲线点
	LookAhead float64

	// ===== 行程统计 =====
	// Lap 完成的圈数（跨越起点记一圈，反向跨越同样记圈）
	Lap int
	// Odometer 累计里程（米）
	Odometer float64
	// TopSpeed 本次行驶达到的最高速度（米/秒）
	TopSpeed float64
}
