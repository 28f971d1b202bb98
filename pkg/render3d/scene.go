package render3d

// Material 最小化的表面描述
type Material struct {
	BaseColor Color
	Opacity   uint8 // 0..255，255 表示不透明
}

// LightMode 光照模式
type LightMode uint8

const (
	// LightOff 关闭光照，直接使用材质颜色
	LightOff LightMode = iota
	// LightAmbientDirectional 环境光 + 单方向光
	LightAmbientDirectional
)

// Light 场景光照设置
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // 指向场景的方向
	DirAmount Scalar // 0..1
}

// Topology 网格图元拓扑
type Topology uint8

const (
	// TopologyTriangles 索引按三角形列表解释（默认）
	TopologyTriangles Topology = iota
	// TopologyLines 索引按线段对解释，用于网格线等辅助几何
	TopologyLines
)

// Vertex 网格顶点
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	Color  Color
}

// Mesh 带物体变换的索引网格
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16
	Topology Topology

	Transform Mat4
	Material  Material
}

// Scene 待渲染对象集合
// 网格槽位固定容量，槽位顺序即绘制顺序
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene 创建固定容量的场景
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  V3(0, 0, 3),
			Target:    V3(0, 0, 0),
			Up:        V3(0, 1, 0),
			FOVYRad:   Scalar(1.0),
			Near:      Scalar(0.05),
			Far:       Scalar(100),
			OrthoSize: Scalar(1),
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   Scalar(0.25),
			Dir:       Normalize(V3(1, 1, 1)),
			DirAmount: Scalar(0.75),
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh 添加网格并返回槽位 id，容量不足时返回 -1
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.Opacity == 0 {
			m.Material.Opacity = 0xFF
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh 按 id 移除网格
func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled 按 id 开关网格
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Enabled = enabled
}

// MeshEnabled 查询网格是否启用
func (s *Scene) MeshEnabled(id int) bool {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return false
	}
	return s.meshes[id].Enabled
}

// UpdateMeshTransform 按 id 更新网格变换
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Transform = m
}

// MeshTransform 查询网格当前变换，id 无效时返回零矩阵
func (s *Scene) MeshTransform(id int) Mat4 {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return Mat4{}
	}
	return s.meshes[id].Transform
}

// MeshCount 当前存活网格数
func (s *Scene) MeshCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for i := range s.alive {
		if s.alive[i] {
			n++
		}
	}
	return n
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
