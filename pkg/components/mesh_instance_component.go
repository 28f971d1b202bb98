package components

// MeshInstanceComponent 三维网格实例组件
// 把实体绑定到渲染场景中的一个网格槽位
// 渲染系统每帧把实体的 TransformComponent 写入该槽位
type MeshInstanceComponent struct {
	// SlotID 场景网格槽位，-1 表示尚未加入场景
	SlotID int
	// Visible 是否参与绘制
	Visible bool
}
