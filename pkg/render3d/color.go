package render3d

// Color RGBA 颜色，每通道 8 位
type Color struct {
	R, G, B, A uint8
}

// RGB 构造不透明颜色
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// RGBA 构造带透明度的颜色
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// MulScalar 按亮度系数缩放 RGB 通道，Alpha 不变
// s 截断到 [0,1]，用于平面着色的光照衰减
func (c Color) MulScalar(s Scalar) Color {
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	t := uint32(s * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// WithAlpha 返回替换了 Alpha 的副本
func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
