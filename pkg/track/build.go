// build.go - 轨道三维几何生成
//
// 把样条回路转换为渲染网格：两条钢轨沿曲线扫掠成圆管，枕木与
// 支柱按弧长间隔摆放，另附地面与参考网格线。所有网格的变换都
// 烘焙进顶点坐标，网格自身的 Transform 保持单位矩阵。

package track

import (
	"github.com/chewxy/math32"

	"github.com/gonewx/coaster/pkg/render3d"
	"github.com/gonewx/coaster/pkg/spline"
)

// ===== 生成参数 =====

// 扫掠与摆放密度。上限兼顾渲染负载与 uint16 索引范围：
// 钢轨顶点数最多 (maxSweepSteps+1)*(railRingSegments+1)*2。
const (
	railRingSegments = 6   // 钢轨截面圆的边数
	railSweepStep    = 0.6 // 扫掠步长（米）
	minSweepSteps    = 64
	maxSweepSteps    = 512

	maxTies        = 2000
	maxPillars     = 400
	pillarSegments = 8
	minPillarTop   = 1.0 // 轨道低于此高度时不立柱

	groundStep = 5.0 // 参考网格线间距（米）
)

// ===== 标架 =====

// Frame 曲线上某点的正交标架。Forward 沿行进方向，Up 大致朝上，
// Right = Up × Forward，三者构成右手系。
type Frame struct {
	Origin  render3d.Vec3
	Forward render3d.Vec3
	Right   render3d.Vec3
	Up      render3d.Vec3
}

var worldUp = render3d.V3(0, 1, 0)

// FrameAt 计算曲线参数 t 处的标架。
// 切线与世界上方向几乎平行时退化，改用 +Z 作参考。
func FrameAt(c *spline.Curve, t float64) Frame {
	origin := c.Point(t)
	forward := render3d.Normalize(c.Tangent(t))
	right := render3d.Cross(worldUp, forward)
	if render3d.Len(right) < 1e-4 {
		right = render3d.Cross(render3d.V3(0, 0, 1), forward)
	}
	right = render3d.Normalize(right)
	up := render3d.Cross(forward, right)
	return Frame{Origin: origin, Forward: forward, Right: right, Up: render3d.Normalize(up)}
}

// ===== 几何结果 =====

// Geometry 一条轨道的全部渲染几何与派生信息。
// 网格尚未加入场景，由调用方通过 Scene.AddMesh 安排槽位。
type Geometry struct {
	Curve *spline.Curve // 轨道中心线

	Rails   render3d.Mesh // 两条钢轨合并成的三角网格
	Ties    render3d.Mesh // 枕木
	Pillars render3d.Mesh // 支柱，轨道贴地时可能为空
	Ground  render3d.Mesh // 地面
	Grid    render3d.Mesh // 地面参考网格线

	Center      render3d.Vec3   // 包围盒中心，环绕相机的注视点
	OrbitRadius render3d.Scalar // 环绕相机的建议初始半径
}

// Meshes 按固定顺序返回全部非空网格，方便逐一加入场景。
func (g *Geometry) Meshes() []render3d.Mesh {
	out := make([]render3d.Mesh, 0, 5)
	for _, m := range []render3d.Mesh{g.Ground, g.Grid, g.Rails, g.Ties, g.Pillars} {
		if len(m.Vertices) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// Build 根据配置生成轨道的全部几何。
// 配置应当已经通过 Validate（ParseConfig 的产物天然满足）。
func Build(cfg *Config) (*Geometry, error) {
	curve, err := spline.NewClosed(cfg.controlPoints(), render3d.Scalar(cfg.Alpha))
	if err != nil {
		return nil, err
	}

	g := &Geometry{Curve: curve}
	g.Rails = buildRails(curve, cfg)
	g.Ties = buildTies(curve, cfg)
	g.Pillars = buildPillars(curve, cfg)
	g.Ground, g.Grid = buildGround(curve, cfg)

	bmin, bmax := curve.Bounds()
	g.Center = bmin.Add(bmax).Mul(0.5)
	g.OrbitRadius = render3d.Len(bmax.Sub(bmin)) * 0.7
	if g.OrbitRadius < 15 {
		g.OrbitRadius = 15
	}
	return g, nil
}

// ===== 网格构造 =====

// meshBuilder 逐步累积顶点与索引，最终产出一个网格。
type meshBuilder struct {
	verts   []render3d.Vertex
	indices []uint16
}

func (b *meshBuilder) vertex(p render3d.Vec3, c render3d.Color) uint16 {
	b.verts = append(b.verts, render3d.Vertex{Pos: p, Color: c})
	return uint16(len(b.verts) - 1)
}

func (b *meshBuilder) triangle(a, bb, cc uint16) {
	b.indices = append(b.indices, a, bb, cc)
}

// appendTransformed 把现成网格的顶点经矩阵变换后并入当前网格。
func (b *meshBuilder) appendTransformed(src render3d.Mesh, m render3d.Mat4) {
	base := uint16(len(b.verts))
	for _, v := range src.Vertices {
		p := render3d.Mat4MulV4(m, render3d.Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1})
		b.verts = append(b.verts, render3d.Vertex{Pos: render3d.V3(p.X, p.Y, p.Z), Color: v.Color})
	}
	for _, idx := range src.Indices {
		b.indices = append(b.indices, base+idx)
	}
}

func (b *meshBuilder) mesh(mat render3d.Material) render3d.Mesh {
	return render3d.Mesh{
		Enabled:   true,
		Vertices:  b.verts,
		Indices:   b.indices,
		Topology:  render3d.TopologyTriangles,
		Transform: render3d.Mat4Identity(),
		Material:  mat,
	}
}

// sweepSteps 根据轨道长度决定扫掠步数。
func sweepSteps(length render3d.Scalar) int {
	steps := int(length / railSweepStep)
	if steps < minSweepSteps {
		steps = minSweepSteps
	}
	if steps > maxSweepSteps {
		steps = maxSweepSteps
	}
	return steps
}

// framesAlong 按弧长均匀采样标架，首尾闭合（frames[steps] 与 frames[0] 重合）。
func framesAlong(curve *spline.Curve, steps int) []Frame {
	frames := make([]Frame, steps+1)
	length := curve.Length()
	for i := 0; i <= steps; i++ {
		d := length * render3d.Scalar(i) / render3d.Scalar(steps)
		frames[i] = FrameAt(curve, curve.ParamAtDistance(d))
	}
	return frames
}

func buildRails(curve *spline.Curve, cfg *Config) render3d.Mesh {
	b := &meshBuilder{}
	frames := framesAlong(curve, sweepSteps(curve.Length()))
	half := render3d.Scalar(cfg.RailGauge) / 2
	c := cfg.Colors.Rail.Color()
	sweepTube(b, frames, -half, render3d.Scalar(cfg.RailRadius), c)
	sweepTube(b, frames, +half, render3d.Scalar(cfg.RailRadius), c)
	return b.mesh(render3d.Material{BaseColor: c, Opacity: 0xFF})
}

// sweepTube 沿标架串扫掠出一根圆管，offset 为截面圆心相对标架
// 原点的横向偏移。环向角从 Right 起经 Up 转一整圈，配合
// (a,b,c)(a,c,d) 的拼法让几何法线指向管内，外表面对观察者可见。
func sweepTube(b *meshBuilder, frames []Frame, offset, radius render3d.Scalar, c render3d.Color) {
	ringStride := railRingSegments + 1
	base := uint16(len(b.verts))
	for _, f := range frames {
		center := f.Origin.Add(f.Right.Mul(offset))
		for j := 0; j <= railRingSegments; j++ {
			psi := 2 * math32.Pi * float32(j) / float32(railRingSegments)
			dir := f.Right.Mul(math32.Cos(psi)).Add(f.Up.Mul(math32.Sin(psi)))
			b.verts = append(b.verts, render3d.Vertex{Pos: center.Add(dir.Mul(radius)), Color: c})
		}
	}
	for i := 0; i < len(frames)-1; i++ {
		for j := 0; j < railRingSegments; j++ {
			a := base + uint16(i*ringStride+j)
			bb := base + uint16((i+1)*ringStride+j)
			cc := base + uint16((i+1)*ringStride+j+1)
			d := base + uint16(i*ringStride+j+1)
			b.triangle(a, bb, cc)
			b.triangle(a, cc, d)
		}
	}
}

func buildTies(curve *spline.Curve, cfg *Config) render3d.Mesh {
	b := &meshBuilder{}
	length := curve.Length()
	count := int(length / render3d.Scalar(cfg.TieSpacing))
	if count < 1 {
		count = 1
	}
	if count > maxTies {
		count = maxTies
	}

	c := cfg.Colors.Tie.Color()
	gauge := render3d.Scalar(cfg.RailGauge)
	rr := render3d.Scalar(cfg.RailRadius)
	size := render3d.V3(gauge*1.45, rr*1.1, rr*3)
	box := render3d.NewBox(size, c)
	drop := rr + size.Y/2 // 枕木顶面贴住钢轨下沿

	for i := 0; i < count; i++ {
		d := length * render3d.Scalar(i) / render3d.Scalar(count)
		f := FrameAt(curve, curve.ParamAtDistance(d))
		center := f.Origin.Sub(f.Up.Mul(drop))
		m := render3d.Mat4Mul(render3d.Mat4Translate(center), render3d.Mat4FromBasis(f.Right, f.Up, f.Forward))
		b.appendTransformed(box, m)
	}
	return b.mesh(render3d.Material{BaseColor: c, Opacity: 0xFF})
}

func buildPillars(curve *spline.Curve, cfg *Config) render3d.Mesh {
	b := &meshBuilder{}
	c := cfg.Colors.Pillar.Color()
	mat := render3d.Material{BaseColor: c, Opacity: 0xFF}
	if cfg.PillarSpacing < 0 {
		return b.mesh(mat)
	}

	length := curve.Length()
	count := int(length / render3d.Scalar(cfg.PillarSpacing))
	if count > maxPillars {
		count = maxPillars
	}
	rr := render3d.Scalar(cfg.RailRadius)
	radius := rr * 1.3
	if radius < 0.08 {
		radius = 0.08
	}

	// 支柱与枕木错开半个间隔，避免在同一截面上叠放
	for i := 0; i < count; i++ {
		d := length * (render3d.Scalar(i) + 0.5) / render3d.Scalar(count)
		f := FrameAt(curve, curve.ParamAtDistance(d))
		top := f.Origin.Y - rr*2
		if top < minPillarTop {
			continue
		}
		cyl := render3d.NewCylinder(radius, top, pillarSegments, c)
		m := render3d.Mat4Translate(render3d.V3(f.Origin.X, top/2, f.Origin.Z))
		b.appendTransformed(cyl, m)
	}
	return b.mesh(mat)
}

// buildGround 生成地面与参考网格线。地面略低于网格线，避免深度冲突。
func buildGround(curve *spline.Curve, cfg *Config) (ground, grid render3d.Mesh) {
	bmin, bmax := curve.Bounds()
	e := math32.Max(
		math32.Max(math32.Abs(bmin.X), math32.Abs(bmax.X)),
		math32.Max(math32.Abs(bmin.Z), math32.Abs(bmax.Z)),
	)
	half := render3d.Scalar(math32.Ceil((e+12)/groundStep)) * groundStep

	gc := cfg.Colors.Ground.Color()
	b := &meshBuilder{}
	ext := half + groundStep
	y := render3d.Scalar(-0.02)
	a := b.vertex(render3d.V3(-ext, y, -ext), gc)
	bb := b.vertex(render3d.V3(ext, y, -ext), gc)
	cc := b.vertex(render3d.V3(ext, y, ext), gc)
	d := b.vertex(render3d.V3(-ext, y, ext), gc)
	b.triangle(a, bb, d)
	b.triangle(bb, cc, d)
	ground = b.mesh(render3d.Material{BaseColor: gc, Opacity: 0xFF})

	grid = render3d.NewGridLines(half, groundStep, cfg.Colors.Grid.Color())
	return ground, grid
}
