package render3d

import (
	"testing"

	"github.com/chewxy/math32"
)

// TestNewBoxGeometry 测试长方体的顶点数、索引数与包围范围
func TestNewBoxGeometry(t *testing.T) {
	m := NewBox(V3(2, 4, 6), RGB(0xAA, 0xBB, 0xCC))
	if len(m.Vertices) != 8 {
		t.Errorf("box vertices = %d, want 8", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("box indices = %d, want 36", len(m.Indices))
	}
	for _, v := range m.Vertices {
		if math32.Abs(v.Pos.X) != 1 || math32.Abs(v.Pos.Y) != 2 || math32.Abs(v.Pos.Z) != 3 {
			t.Errorf("box corner out of extent: %v", v.Pos)
		}
	}
}

// TestNewUVSphereGeometry 测试球面顶点全部落在半径上
func TestNewUVSphereGeometry(t *testing.T) {
	const radius = 2.5
	m := NewUVSphere(radius, 6, 8, RGB(1, 1, 1))

	wantVerts := (6 + 1) * (8 + 1)
	if len(m.Vertices) != wantVerts {
		t.Errorf("sphere vertices = %d, want %d", len(m.Vertices), wantVerts)
	}
	if len(m.Indices) != 6*8*6 {
		t.Errorf("sphere indices = %d, want %d", len(m.Indices), 6*8*6)
	}
	for i, v := range m.Vertices {
		if math32.Abs(Len(v.Pos)-radius) > 1e-4 {
			t.Fatalf("vertex %d off sphere: |%v| = %v", i, v.Pos, Len(v.Pos))
		}
	}
}

// TestNewUVSphereMinSegments 测试过小的分段数被钳制
func TestNewUVSphereMinSegments(t *testing.T) {
	m := NewUVSphere(1, 0, 1, RGB(1, 1, 1))
	if len(m.Vertices) < (2+1)*(3+1) {
		t.Errorf("clamped sphere too small: %d vertices", len(m.Vertices))
	}
}

// TestNewCylinderGeometry 测试圆柱顶点高度与索引数量
func TestNewCylinderGeometry(t *testing.T) {
	const segments = 10
	m := NewCylinder(1.5, 4, segments, RGB(1, 1, 1))

	wantVerts := (segments+1)*2 + 2
	if len(m.Vertices) != wantVerts {
		t.Errorf("cylinder vertices = %d, want %d", len(m.Vertices), wantVerts)
	}
	// 每段：侧面 2 三角形 + 两端盖各 1
	if len(m.Indices) != segments*12 {
		t.Errorf("cylinder indices = %d, want %d", len(m.Indices), segments*12)
	}
	for _, v := range m.Vertices {
		if math32.Abs(v.Pos.Y) > 2+1e-5 {
			t.Errorf("cylinder vertex above half height: %v", v.Pos)
		}
	}
}

// TestNewGridLinesTopology 测试网格线使用线段拓扑且索引成对
func TestNewGridLinesTopology(t *testing.T) {
	m := NewGridLines(4, 1, RGB(1, 1, 1))
	if m.Topology != TopologyLines {
		t.Fatalf("grid topology = %v, want TopologyLines", m.Topology)
	}
	if len(m.Indices)%2 != 0 {
		t.Errorf("line indices should come in pairs, got %d", len(m.Indices))
	}
	// 半边长 4、间距 1：两个方向各 9 条线
	if len(m.Indices) != 9*2*2 {
		t.Errorf("grid segments = %d indices, want %d", len(m.Indices), 9*2*2)
	}
	for _, v := range m.Vertices {
		if v.Pos.Y != 0 {
			t.Errorf("grid should lie in XZ plane, got %v", v.Pos)
		}
	}
}
