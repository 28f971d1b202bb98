package render3d

// CameraType 投影方式
type CameraType uint8

const (
	// CameraPerspective 透视投影
	CameraPerspective CameraType = iota
	// CameraOrtho 正交投影
	CameraOrtho
)

// Camera 观察变换描述
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// FOVYRad 透视投影的纵向视场角（弧度）
	FOVYRad Scalar

	// OrthoSize 正交投影的半高
	OrthoSize Scalar

	Near Scalar
	Far  Scalar
}

// View 返回视图矩阵，Up 为零值时退化为 +Y
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection 按目标宽高比返回投影矩阵
func (c Camera) Projection(aspect Scalar) Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		top := size
		bottom := -size
		right := size * aspect
		left := -right
		return Mat4Ortho(left, right, bottom, top, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = Scalar(1.0)
		}
		return Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Forward 返回相机的归一化朝向
func (c Camera) Forward() Vec3 {
	return Normalize(c.Target.Sub(c.Position))
}
