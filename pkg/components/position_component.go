package components

// PositionComponent 屏幕空间位置组件
// UI 实体的左上角锚点坐标（逻辑像素）
type PositionComponent struct {
	X float64
	Y float64
}
