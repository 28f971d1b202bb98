package components

import (
	"github.com/gonewx/coaster/pkg/render3d"
)

// TransformComponent 三维世界姿态组件
// 渲染系统按 平移 × 旋转 × 缩放 的顺序合成物体矩阵
type TransformComponent struct {
	// Position 世界坐标
	Position render3d.Vec3
	// Rotation 旋转矩阵（正交基），零值视为单位旋转
	Rotation render3d.Mat4
	// Scale 各轴缩放，零值视为 (1,1,1)
	Scale render3d.Vec3
}

// Matrix 合成物体变换矩阵
func (t *TransformComponent) Matrix() render3d.Mat4 {
	rot := t.Rotation
	if rot == (render3d.Mat4{}) {
		rot = render3d.Mat4Identity()
	}
	scale := t.Scale
	if scale == (render3d.Vec3{}) {
		scale = render3d.V3(1, 1, 1)
	}
	m := render3d.Mat4Mul(rot, render3d.Mat4Scale(scale))
	return render3d.Mat4Mul(render3d.Mat4Translate(t.Position), m)
}
