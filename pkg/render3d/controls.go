package render3d

// OrbitController 环绕式相机控制器
// 由 Yaw/Pitch/Radius 三个参数围绕 Target 推导相机位置，不依赖任何输入系统
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar

	// MinPitch/MaxPitch 俯仰角限制（弧度），同时为零表示不限制
	// 俯视轨道时限制在地平线以下、天顶以上，避免相机翻转
	MinPitch Scalar
	MaxPitch Scalar
}

// Apply 把控制器状态写入相机
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	c.clampPitch()
	r := c.Radius
	if r == 0 {
		r = Scalar(3)
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	// 由偏航/俯仰旋转把 (0,0,r) 变换到目标坐标系
	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

// Rotate 增量旋转
func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.clampPitch()
}

// Zoom 增量缩放半径
func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

func (c *OrbitController) clampPitch() {
	if c.MinPitch == 0 && c.MaxPitch == 0 {
		return
	}
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}
