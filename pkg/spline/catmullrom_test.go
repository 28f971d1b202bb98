package spline

import (
	"math"
	"testing"

	"github.com/gonewx/coaster/pkg/render3d"
)

// squareLoop 返回 XZ 平面上的四点菱形环
func squareLoop() []render3d.Vec3 {
	return []render3d.Vec3{
		render3d.V3(10, 0, 0),
		render3d.V3(0, 0, 10),
		render3d.V3(-10, 0, 0),
		render3d.V3(0, 0, -10),
	}
}

func almostEqual(a, b render3d.Vec3, eps float32) bool {
	return render3d.Len(a.Sub(b)) <= eps
}

// TestNewClosedValidation 测试构造参数校验
func TestNewClosedValidation(t *testing.T) {
	tests := []struct {
		name    string
		points  []render3d.Vec3
		wantErr bool
	}{
		{"有效的四点环", squareLoop(), false},
		{"少于四个点", squareLoop()[:3], true},
		{"相邻点重合", []render3d.Vec3{
			render3d.V3(10, 0, 0),
			render3d.V3(0, 0, 10),
			render3d.V3(0, 0, 10),
			render3d.V3(0, 0, -10),
		}, true},
		{"首尾点重合", []render3d.Vec3{
			render3d.V3(10, 0, 0),
			render3d.V3(0, 0, 10),
			render3d.V3(-10, 0, 0),
			render3d.V3(10, 0, 0),
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClosed(tt.points, 0.5)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClosed error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

// TestCurvePassesThroughControlPoints 测试曲线在段边界经过控制点
func TestCurvePassesThroughControlPoints(t *testing.T) {
	points := squareLoop()
	c, err := NewClosed(points, 0.5)
	if err != nil {
		t.Fatalf("NewClosed failed: %v", err)
	}

	n := len(points)
	for i, p := range points {
		got := c.Point(float64(i) / float64(n))
		if !almostEqual(got, p, 1e-4) {
			t.Errorf("Point(%d/%d) = %v, want control point %v", i, n, got, p)
		}
	}
}

// TestCurveClosureAndWrap 测试参数回绕：整数部分被丢弃
func TestCurveClosureAndWrap(t *testing.T) {
	c, err := NewClosed(squareLoop(), 0.5)
	if err != nil {
		t.Fatalf("NewClosed failed: %v", err)
	}

	if !almostEqual(c.Point(0), c.Point(1), 1e-5) {
		t.Errorf("Point(0) and Point(1) should coincide on a closed curve")
	}
	if !almostEqual(c.Point(0.3), c.Point(1.3), 1e-5) {
		t.Errorf("Point(t) and Point(t+1) should coincide")
	}
	if !almostEqual(c.Point(0.75), c.Point(-0.25), 1e-5) {
		t.Errorf("Point(-0.25) should wrap to Point(0.75)")
	}
}

// TestWrap01 测试参数折回逻辑
func TestWrap01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"正常区间", 0.4, 0.4},
		{"零", 0, 0},
		{"整数一", 1, 0},
		{"超过一", 1.25, 0.25},
		{"负数", -0.25, 0.75},
		{"大负数", -2.6, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap01(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Wrap01(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestTangentNonzero 测试整条曲线上切向量不退化
func TestTangentNonzero(t *testing.T) {
	c, err := NewClosed(squareLoop(), 0.5)
	if err != nil {
		t.Fatalf("NewClosed failed: %v", err)
	}

	for i := 0; i < 200; i++ {
		tt := float64(i) / 200
		tan := c.Tangent(tt)
		if render3d.Len(tan) == 0 {
			t.Fatalf("tangent at t=%v is zero", tt)
		}
	}

	// 起点向第二个控制点运动，Z 分量应为正
	if tan := c.Tangent(0); tan.Z <= 0 {
		t.Errorf("tangent at t=0 should head towards +Z, got %v", tan)
	}
}

// TestLengthAtLeastChordPerimeter 测试弧长不小于控制点连线周长
func TestLengthAtLeastChordPerimeter(t *testing.T) {
	points := squareLoop()
	c, err := NewClosed(points, 0.5)
	if err != nil {
		t.Fatalf("NewClosed failed: %v", err)
	}

	var perim float32
	for i := range points {
		perim += render3d.Len(points[(i+1)%len(points)].Sub(points[i]))
	}

	if c.Length() < perim*0.999 {
		t.Errorf("curve length %v shorter than chord perimeter %v", c.Length(), perim)
	}
	if c.Length() > perim*1.5 {
		t.Errorf("curve length %v implausibly long vs perimeter %v", c.Length(), perim)
	}
}

// TestParamAtDistanceMonotonic 测试弧长重参数化单调递增
func TestParamAtDistanceMonotonic(t *testing.T) {
	c, err := NewClosed(squareLoop(), 0.5)
	if err != nil {
		t.Fatalf("NewClosed failed: %v", err)
	}

	total := c.Length()
	prev := -1.0
	for i := 0; i < 50; i++ {
		d := total * render3d.Scalar(i) / 50
		p := c.ParamAtDistance(d)
		if p < prev {
			t.Fatalf("param at distance %v decreased: %v < %v", d, p, prev)
		}
		prev = p
	}
}

// TestPointAtDistanceWraps 测试弧长超出总长后回绕
func TestPointAtDistanceWraps(t *testing.T) {
	c, err := NewClosed(squareLoop(), 0.5)
	if err != nil {
		t.Fatalf("NewClosed failed: %v", err)
	}

	total := c.Length()
	a := c.PointAtDistance(5)
	b := c.PointAtDistance(total + 5)
	if !almostEqual(a, b, 1e-2) {
		t.Errorf("distance wrap mismatch: %v vs %v", a, b)
	}

	start := c.PointAtDistance(0)
	if !almostEqual(start, c.Point(0), 1e-5) {
		t.Errorf("distance 0 should map to curve start")
	}
}

// TestBoundsContainControlPoints 测试包围盒覆盖所有控制点
func TestBoundsContainControlPoints(t *testing.T) {
	points := squareLoop()
	c, err := NewClosed(points, 0.5)
	if err != nil {
		t.Fatalf("NewClosed failed: %v", err)
	}

	min, max := c.Bounds()
	for _, p := range points {
		if p.X < min.X-1e-4 || p.Y < min.Y-1e-4 || p.Z < min.Z-1e-4 ||
			p.X > max.X+1e-4 || p.Y > max.Y+1e-4 || p.Z > max.Z+1e-4 {
			t.Errorf("control point %v outside bounds [%v, %v]", p, min, max)
		}
	}
	if c.Segments() != len(points) {
		t.Errorf("segments = %d, want %d", c.Segments(), len(points))
	}
}

// TestUniformAlpha 测试均匀参数化（alpha=0）同样可用
func TestUniformAlpha(t *testing.T) {
	c, err := NewClosed(squareLoop(), 0)
	if err != nil {
		t.Fatalf("NewClosed alpha=0 failed: %v", err)
	}
	if c.Length() <= 0 {
		t.Errorf("uniform curve should have positive length")
	}
}
