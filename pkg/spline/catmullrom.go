// Package spline 提供闭合 Catmull-Rom 样条曲线
// 轨道中心线由控制点序列生成，曲线保证经过每个控制点并首尾闭合
package spline

import (
	"fmt"
	"math"
	"sort"

	"github.com/chewxy/math32"

	"github.com/gonewx/coaster/pkg/render3d"
)

// 每段弧长采样数，用于长度重参数化表
const samplesPerSegment = 32

// segment 单段三次 Hermite 系数
// 由相邻四个控制点按带参数化的 Catmull-Rom 公式推导
type segment struct {
	p1, m1, p2, m2 render3d.Vec3
}

// Curve 闭合样条曲线
// 全局参数 t 的整数部分被丢弃，任何实数 t 都映射到曲线上的一点
type Curve struct {
	segs []segment

	// cum 弧长累积表，cum[k] 为从 t=0 到第 k 个采样点的长度
	cum   []render3d.Scalar
	total render3d.Scalar

	bmin, bmax render3d.Vec3
}

// NewClosed 由控制点构造闭合曲线
// alpha 为参数化指数：0 是均匀参数化，0.5 是向心参数化（推荐，不自交），1 是弦长参数化
// 控制点少于 4 个或相邻点重合（含首尾相接处）时返回错误
func NewClosed(points []render3d.Vec3, alpha render3d.Scalar) (*Curve, error) {
	n := len(points)
	if n < 4 {
		return nil, fmt.Errorf("closed spline needs at least 4 control points, got %d", n)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if points[i] == points[j] {
			return nil, fmt.Errorf("control points %d and %d coincide", i, j)
		}
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}

	c := &Curve{segs: make([]segment, n)}
	for i := 0; i < n; i++ {
		p0 := points[(i-1+n)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]
		p3 := points[(i+2)%n]
		c.segs[i] = makeSegment(p0, p1, p2, p3, alpha)
	}

	c.buildArcTable()
	return c, nil
}

// makeSegment 把四个控制点转成 p1→p2 段的 Hermite 形式
func makeSegment(p0, p1, p2, p3 render3d.Vec3, alpha render3d.Scalar) segment {
	t01 := math32.Pow(render3d.Len(p1.Sub(p0)), alpha)
	t12 := math32.Pow(render3d.Len(p2.Sub(p1)), alpha)
	t23 := math32.Pow(render3d.Len(p3.Sub(p2)), alpha)

	d12 := p2.Sub(p1)
	m1 := d12.Add(p1.Sub(p0).Mul(1 / t01).Sub(p2.Sub(p0).Mul(1 / (t01 + t12))).Mul(t12))
	m2 := d12.Add(p3.Sub(p2).Mul(1 / t23).Sub(p3.Sub(p1).Mul(1 / (t12 + t23))).Mul(t12))

	return segment{p1: p1, m1: m1, p2: p2, m2: m2}
}

func (s segment) point(u render3d.Scalar) render3d.Vec3 {
	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2
	return s.p1.Mul(h00).Add(s.m1.Mul(h10)).Add(s.p2.Mul(h01)).Add(s.m2.Mul(h11))
}

func (s segment) derivative(u render3d.Scalar) render3d.Vec3 {
	u2 := u * u
	h00 := 6*u2 - 6*u
	h10 := 3*u2 - 4*u + 1
	h01 := -6*u2 + 6*u
	h11 := 3*u2 - 2*u
	return s.p1.Mul(h00).Add(s.m1.Mul(h10)).Add(s.p2.Mul(h01)).Add(s.m2.Mul(h11))
}

// Wrap01 把任意实数参数折回 [0,1)
// 例如 -0.25 折回 0.75，1.25 折回 0.25
func Wrap01(t float64) float64 {
	t -= math.Floor(t)
	if t >= 1 { // 负的极小量取 floor 后可能精确进到 1
		t = 0
	}
	return t
}

// locate 把全局参数映射到（段索引，段内参数）
func (c *Curve) locate(t float64) (int, render3d.Scalar) {
	t = Wrap01(t)
	n := len(c.segs)
	scaled := t * float64(n)
	idx := int(scaled)
	if idx >= n {
		idx = n - 1
	}
	return idx, render3d.Scalar(scaled - float64(idx))
}

// Point 返回参数 t 处的曲线坐标
func (c *Curve) Point(t float64) render3d.Vec3 {
	idx, u := c.locate(t)
	return c.segs[idx].point(u)
}

// Tangent 返回参数 t 处的切向量（未归一化，指向 t 增大的方向）
// 退化到零向量时向前微移一点重新求值
func (c *Curve) Tangent(t float64) render3d.Vec3 {
	idx, u := c.locate(t)
	d := c.segs[idx].derivative(u)
	if d == (render3d.Vec3{}) {
		d = c.segs[idx].derivative(u + 1e-3)
	}
	return d
}

// Segments 返回段数（等于控制点数）
func (c *Curve) Segments() int { return len(c.segs) }

// Length 返回整条闭合曲线的弧长
func (c *Curve) Length() render3d.Scalar { return c.total }

// buildArcTable 均匀采样每段并累积弦长，同时记录包围盒
func (c *Curve) buildArcTable() {
	n := len(c.segs)
	c.cum = make([]render3d.Scalar, n*samplesPerSegment+1)

	prev := c.segs[0].point(0)
	c.bmin, c.bmax = prev, prev
	acc := render3d.Scalar(0)
	c.cum[0] = 0

	for k := 1; k <= n*samplesPerSegment; k++ {
		t := float64(k) / float64(n*samplesPerSegment)
		var p render3d.Vec3
		if k == n*samplesPerSegment {
			p = c.segs[0].point(0) // 闭合回起点
		} else {
			idx, u := c.locate(t)
			p = c.segs[idx].point(u)
		}
		acc += render3d.Len(p.Sub(prev))
		c.cum[k] = acc
		c.growBounds(p)
		prev = p
	}
	c.total = acc
}

func (c *Curve) growBounds(p render3d.Vec3) {
	if p.X < c.bmin.X {
		c.bmin.X = p.X
	}
	if p.Y < c.bmin.Y {
		c.bmin.Y = p.Y
	}
	if p.Z < c.bmin.Z {
		c.bmin.Z = p.Z
	}
	if p.X > c.bmax.X {
		c.bmax.X = p.X
	}
	if p.Y > c.bmax.Y {
		c.bmax.Y = p.Y
	}
	if p.Z > c.bmax.Z {
		c.bmax.Z = p.Z
	}
}

// Bounds 返回采样包围盒
func (c *Curve) Bounds() (min, max render3d.Vec3) {
	return c.bmin, c.bmax
}

// ParamAtDistance 返回从起点走过弧长 d 后对应的参数
// d 超出 [0,Length) 时按闭合曲线回绕
func (c *Curve) ParamAtDistance(d render3d.Scalar) float64 {
	if c.total <= 0 {
		return 0
	}
	df := float64(d) / float64(c.total)
	d = render3d.Scalar(Wrap01(df)) * c.total

	k := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > d }) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(c.cum)-1 {
		k = len(c.cum) - 2
	}

	span := c.cum[k+1] - c.cum[k]
	f := render3d.Scalar(0)
	if span > 0 {
		f = (d - c.cum[k]) / span
	}
	return (float64(k) + float64(f)) / float64(len(c.cum)-1)
}

// PointAtDistance 返回从起点走过弧长 d 后的曲线坐标
func (c *Curve) PointAtDistance(d render3d.Scalar) render3d.Vec3 {
	return c.Point(c.ParamAtDistance(d))
}
