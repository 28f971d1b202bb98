// Package render3d 提供软件光栅化 3D 渲染能力
// 不依赖 GPU，在 CPU 上逐像素绘制到像素缓冲，再整体上传给 Ebitengine
package render3d

import (
	"github.com/chewxy/math32"
)

// Scalar 渲染管线使用的数值类型（float32）
// 与像素缓冲、深度缓冲保持同一精度，避免 float64 往返转换
type Scalar = float32

// Vec3 三维向量
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 四维齐次向量
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 列主序 4x4 矩阵，布局与 OpenGL 惯例一致：m[col*4+row]
type Mat4 [16]Scalar

// V3 构造三维向量
func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot 点积
func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross 叉积
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Len 向量长度
func Len(v Vec3) Scalar {
	return math32.Sqrt(Dot(v, v))
}

// Normalize 归一化，零向量原样返回零值
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// Lerp 线性插值
func Lerp(a, b Vec3, t Scalar) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Clamp01 截断到 [0,1]
func Clamp01(v Scalar) Scalar {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mat4Identity 单位矩阵
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul 矩阵乘法 a*b
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

// Mat4MulV4 矩阵乘列向量
func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mat4Translate 平移矩阵
func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Mat4Scale 缩放矩阵
func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// Mat4RotateX 绕 X 轴旋转（弧度）
func Mat4RotateX(rad Scalar) Mat4 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateY 绕 Y 轴旋转（弧度）
func Mat4RotateY(rad Scalar) Mat4 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateZ 绕 Z 轴旋转（弧度）
func Mat4RotateZ(rad Scalar) Mat4 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromBasis 由三个正交基向量构造旋转矩阵（列为 right/up/forward）
// 用于把局部姿态（例如轨道行进方向）直接写成变换矩阵
func Mat4FromBasis(right, up, forward Vec3) Mat4 {
	return Mat4{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		forward.X, forward.Y, forward.Z, 0,
		0, 0, 0, 1,
	}
}

// Mat4LookAt 视图矩阵
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	f := Normalize(target.Sub(eye))
	s := Normalize(Cross(f, up))
	u := Cross(s, f)

	// 列主序
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-Dot(s, eye), -Dot(u, eye), Dot(f, eye), 1,
	}
}

// Mat4Perspective 透视投影矩阵
func Mat4Perspective(fovYRad, aspect, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / math32.Tan(fovYRad/2)
	nf := 1 / (zNear - zFar)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zFar + zNear) * nf, -1,
		0, 0, (2 * zFar * zNear) * nf, 0,
	}
}

// Mat4Ortho 正交投影矩阵
func Mat4Ortho(left, right, bottom, top, zNear, zFar Scalar) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 {
		rl = 1
	}
	if tb == 0 {
		tb = 1
	}
	if fn == 0 {
		fn = 1
	}
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(zFar + zNear) / fn, 1,
	}
}
