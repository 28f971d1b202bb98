package render3d

import (
	"testing"

	"github.com/chewxy/math32"
)

// TestMat4MulIdentity 测试单位矩阵乘法不改变矩阵
func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	got := Mat4Mul(a, b)
	if got != b {
		t.Fatalf("identity*b should equal b, got %v", got)
	}
	got2 := Mat4Mul(b, a)
	if got2 != b {
		t.Fatalf("b*identity should equal b, got %v", got2)
	}
}

// TestMat4MulV4Translate 测试平移矩阵对点的作用
func TestMat4MulV4Translate(t *testing.T) {
	m := Mat4Translate(V3(10, -5, 2))
	p := Mat4MulV4(m, Vec4{X: 1, Y: 1, Z: 1, W: 1})
	if p.X != 11 || p.Y != -4 || p.Z != 3 || p.W != 1 {
		t.Errorf("translate applied wrong: got (%v,%v,%v,%v)", p.X, p.Y, p.Z, p.W)
	}

	// W=0 表示方向向量，不应被平移
	d := Mat4MulV4(m, Vec4{X: 1, Y: 0, Z: 0, W: 0})
	if d.X != 1 || d.Y != 0 || d.Z != 0 {
		t.Errorf("direction should not be translated: got (%v,%v,%v)", d.X, d.Y, d.Z)
	}
}

// TestNormalize 测试归一化以及零向量的退化行为
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
	}{
		{"单位向量", V3(1, 0, 0)},
		{"任意向量", V3(3, -4, 12)},
		{"小向量", V3(0.001, 0.002, -0.001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(tt.in)
			l := Len(n)
			if math32.Abs(l-1) > 1e-5 {
				t.Errorf("normalized length = %v, want 1", l)
			}
		})
	}

	if Normalize(Vec3{}) != (Vec3{}) {
		t.Errorf("normalizing zero vector should return zero vector")
	}
}

// TestCrossOrthogonal 测试叉积结果与两个输入都正交
func TestCrossOrthogonal(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-2, 1, 0.5)
	c := Cross(a, b)
	if math32.Abs(Dot(a, c)) > 1e-4 || math32.Abs(Dot(b, c)) > 1e-4 {
		t.Errorf("cross product not orthogonal: dot(a,c)=%v dot(b,c)=%v", Dot(a, c), Dot(b, c))
	}
}

// TestMat4LookAtNotIdentity 测试视图矩阵不会退化成单位矩阵
func TestMat4LookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

// TestMat4LookAtEyeMapsToOrigin 测试视图矩阵把相机位置映射到原点
func TestMat4LookAtEyeMapsToOrigin(t *testing.T) {
	eye := V3(5, 2, -3)
	m := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	p := Mat4MulV4(m, Vec4{X: eye.X, Y: eye.Y, Z: eye.Z, W: 1})
	if math32.Abs(p.X) > 1e-4 || math32.Abs(p.Y) > 1e-4 || math32.Abs(p.Z) > 1e-4 {
		t.Errorf("eye should map to origin, got (%v,%v,%v)", p.X, p.Y, p.Z)
	}
}

// TestMat4FromBasis 测试基向量矩阵把局部轴映射到给定方向
func TestMat4FromBasis(t *testing.T) {
	right := V3(0, 0, -1)
	up := V3(0, 1, 0)
	forward := V3(1, 0, 0)
	m := Mat4FromBasis(right, up, forward)

	x := Mat4MulV4(m, Vec4{X: 1, W: 0})
	if x.X != right.X || x.Y != right.Y || x.Z != right.Z {
		t.Errorf("local +X should map to right, got (%v,%v,%v)", x.X, x.Y, x.Z)
	}
	z := Mat4MulV4(m, Vec4{Z: 1, W: 0})
	if z.X != forward.X || z.Y != forward.Y || z.Z != forward.Z {
		t.Errorf("local +Z should map to forward, got (%v,%v,%v)", z.X, z.Y, z.Z)
	}
}

// TestLerp 测试线性插值端点与中点
func TestLerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(2, 4, -6)
	if Lerp(a, b, 0) != a {
		t.Errorf("lerp t=0 should return a")
	}
	if Lerp(a, b, 1) != b {
		t.Errorf("lerp t=1 should return b")
	}
	mid := Lerp(a, b, 0.5)
	if mid.X != 1 || mid.Y != 2 || mid.Z != -3 {
		t.Errorf("lerp midpoint wrong: got (%v,%v,%v)", mid.X, mid.Y, mid.Z)
	}
}
