package render3d

import (
	"github.com/chewxy/math32"
)

// 网格图元构造
// 光栅化阶段只绘制从外侧看顶点呈顺时针的三角形（隐式背面剔除），
// 这里所有索引都按该约定缠绕：几何法线一律指向实体内部

// NewBox 构造轴对齐长方体，中心在原点
func NewBox(size Vec3, c Color) Mesh {
	hx := size.X / 2
	hy := size.Y / 2
	hz := size.Z / 2

	corners := [8]Vec3{
		{-hx, -hy, -hz},
		{hx, -hy, -hz},
		{hx, hy, -hz},
		{-hx, hy, -hz},
		{-hx, -hy, hz},
		{hx, -hy, hz},
		{hx, hy, hz},
		{-hx, hy, hz},
	}

	verts := make([]Vertex, 8)
	for i, p := range corners {
		verts[i] = Vertex{Pos: p, Normal: Normalize(p), Color: c}
	}

	indices := []uint16{
		4, 6, 5, 4, 7, 6, // +Z
		0, 1, 2, 0, 2, 3, // -Z
		1, 5, 6, 1, 6, 2, // +X
		0, 3, 7, 0, 7, 4, // -X
		3, 2, 6, 3, 6, 7, // +Y
		0, 4, 5, 0, 5, 1, // -Y
	}

	return Mesh{
		Vertices:  verts,
		Indices:   indices,
		Transform: Mat4Identity(),
		Material:  Material{BaseColor: c, Opacity: 0xFF},
	}
}

// NewUVSphere 构造经纬球，rings 为纬向分段、segments 为经向分段
func NewUVSphere(radius Scalar, rings, segments int, c Color) Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	verts := make([]Vertex, 0, (rings+1)*(segments+1))
	for i := 0; i <= rings; i++ {
		theta := math32.Pi * Scalar(i) / Scalar(rings)
		y := radius * math32.Cos(theta)
		hr := radius * math32.Sin(theta)
		for j := 0; j <= segments; j++ {
			phi := 2 * math32.Pi * Scalar(j) / Scalar(segments)
			p := Vec3{
				X: hr * math32.Cos(phi),
				Y: y,
				Z: hr * math32.Sin(phi),
			}
			verts = append(verts, Vertex{Pos: p, Normal: Normalize(p), Color: c})
		}
	}

	cols := segments + 1
	indices := make([]uint16, 0, rings*segments*6)
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a := uint16(i*cols + j)
			b := uint16((i+1)*cols + j)
			cc := uint16((i+1)*cols + j + 1)
			d := uint16(i*cols + j + 1)
			indices = append(indices, a, b, cc)
			indices = append(indices, a, cc, d)
		}
	}

	return Mesh{
		Vertices:  verts,
		Indices:   indices,
		Transform: Mat4Identity(),
		Material:  Material{BaseColor: c, Opacity: 0xFF},
	}
}

// NewCylinder 构造沿 Y 轴的圆柱，含上下端盖，中心在原点
func NewCylinder(radius, height Scalar, segments int, c Color) Mesh {
	if segments < 3 {
		segments = 3
	}

	hy := height / 2
	cols := segments + 1

	verts := make([]Vertex, 0, cols*2+2)
	for j := 0; j <= segments; j++ {
		phi := 2 * math32.Pi * Scalar(j) / Scalar(segments)
		nx := math32.Cos(phi)
		nz := math32.Sin(phi)
		n := Vec3{X: nx, Z: nz}
		verts = append(verts, Vertex{Pos: Vec3{X: radius * nx, Y: hy, Z: radius * nz}, Normal: n, Color: c})
	}
	for j := 0; j <= segments; j++ {
		phi := 2 * math32.Pi * Scalar(j) / Scalar(segments)
		nx := math32.Cos(phi)
		nz := math32.Sin(phi)
		n := Vec3{X: nx, Z: nz}
		verts = append(verts, Vertex{Pos: Vec3{X: radius * nx, Y: -hy, Z: radius * nz}, Normal: n, Color: c})
	}
	topCenter := uint16(len(verts))
	verts = append(verts, Vertex{Pos: Vec3{Y: hy}, Normal: V3(0, 1, 0), Color: c})
	bottomCenter := uint16(len(verts))
	verts = append(verts, Vertex{Pos: Vec3{Y: -hy}, Normal: V3(0, -1, 0), Color: c})

	indices := make([]uint16, 0, segments*12)
	for j := 0; j < segments; j++ {
		a := uint16(j)
		b := uint16(cols + j)
		cc := uint16(cols + j + 1)
		d := uint16(j + 1)
		// 侧面
		indices = append(indices, a, b, cc)
		indices = append(indices, a, cc, d)
		// 端盖扇面
		indices = append(indices, topCenter, a, d)
		indices = append(indices, bottomCenter, cc, b)
	}

	return Mesh{
		Vertices:  verts,
		Indices:   indices,
		Transform: Mat4Identity(),
		Material:  Material{BaseColor: c, Opacity: 0xFF},
	}
}

// NewGridLines 构造 XZ 平面上的辅助网格线，线段拓扑
// halfExtent 为半边长，step 为网格间距
func NewGridLines(halfExtent, step Scalar, c Color) Mesh {
	if step <= 0 {
		step = 1
	}
	if halfExtent <= 0 {
		halfExtent = step
	}

	var verts []Vertex
	var indices []uint16
	addLine := func(a, b Vec3) {
		base := uint16(len(verts))
		up := V3(0, 1, 0)
		verts = append(verts, Vertex{Pos: a, Normal: up, Color: c})
		verts = append(verts, Vertex{Pos: b, Normal: up, Color: c})
		indices = append(indices, base, base+1)
	}

	for x := -halfExtent; x <= halfExtent+step/2; x += step {
		addLine(V3(x, 0, -halfExtent), V3(x, 0, halfExtent))
	}
	for z := -halfExtent; z <= halfExtent+step/2; z += step {
		addLine(V3(-halfExtent, 0, z), V3(halfExtent, 0, z))
	}

	return Mesh{
		Vertices:  verts,
		Indices:   indices,
		Topology:  TopologyLines,
		Transform: Mat4Identity(),
		Material:  Material{BaseColor: c, Opacity: 0xFF},
	}
}
