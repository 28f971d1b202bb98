package track

import (
	"strings"
	"testing"
)

// minimalYAML 只给出必填字段，其余全部依赖默认值
const minimalYAML = `
id: test-oval
points:
  - [10, 2, 0]
  - [0, 4, 10]
  - [-10, 2, 0]
  - [0, 6, -10]
`

// TestParseConfigDefaults 测试省略字段时的默认值
func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Name != "test-oval" {
		t.Errorf("Name should default to ID, got %q", cfg.Name)
	}
	if cfg.Alpha != 0.5 {
		t.Errorf("Alpha should default to 0.5, got %v", cfg.Alpha)
	}
	if cfg.RailGauge != 1.2 {
		t.Errorf("RailGauge should default to 1.2, got %v", cfg.RailGauge)
	}
	if cfg.Speed.Min != 2 || cfg.Speed.Max != 40 {
		t.Errorf("speed range should default to [2, 40], got [%v, %v]", cfg.Speed.Min, cfg.Speed.Max)
	}
	if cfg.Speed.Initial != 21 {
		t.Errorf("speed.initial should default to midpoint 21, got %v", cfg.Speed.Initial)
	}
	if cfg.Colors.Rail != defaultColors.Rail {
		t.Errorf("rail color should use default, got %+v", cfg.Colors.Rail)
	}
	if cfg.Colors.Sky.A != 0xFF {
		t.Errorf("sky color default should be opaque, got %+v", cfg.Colors.Sky)
	}
}

// TestParseConfigFull 测试完整配置的字段透传
func TestParseConfigFull(t *testing.T) {
	full := `
id: full-track
name: Full Track
description: every field set
alpha: 0.75
points:
  - [20, 3, 0]
  - [0, 5, 15]
  - [-20, 3, 0]
  - [0, 8, -15]
rail_gauge: 1.5
rail_radius: 0.12
tie_spacing: 2.0
pillar_spacing: 10
ball_radius: 1.1
look_ahead: 3.5
speed:
  min: 5
  max: 25
  initial: 9
colors:
  rail: "#112233"
  ball: "#FFEEDDCC"
`
	cfg, err := ParseConfig([]byte(full))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Name != "Full Track" || cfg.Description != "every field set" {
		t.Errorf("name/description not carried through: %q / %q", cfg.Name, cfg.Description)
	}
	if cfg.Alpha != 0.75 || cfg.RailGauge != 1.5 || cfg.LookAhead != 3.5 {
		t.Errorf("numeric fields not carried through: %+v", cfg)
	}
	if got := cfg.Colors.Rail; got.R != 0x11 || got.G != 0x22 || got.B != 0x33 || got.A != 0xFF {
		t.Errorf("rail color parsed wrong: %+v", got)
	}
	if got := cfg.Colors.Ball; got.A != 0xCC {
		t.Errorf("ball color alpha should be 0xCC, got %+v", got)
	}
	// 未显式给出的颜色仍走默认
	if cfg.Colors.Tie != defaultColors.Tie {
		t.Errorf("tie color should use default, got %+v", cfg.Colors.Tie)
	}
}

// TestParseConfigErrors 测试各类非法配置
func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{
			name:    "缺少 id",
			yaml:    "points: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "missing id",
		},
		{
			name:    "id 含空格",
			yaml:    "id: \"bad id\"\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "must not contain",
		},
		{
			name:    "控制点不足",
			yaml:    "id: t\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0]]",
			wantSub: "at least 4 control points",
		},
		{
			name:    "分量数错误",
			yaml:    "id: t\npoints: [[1, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "components",
		},
		{
			name:    "相邻点重合",
			yaml:    "id: t\npoints: [[1, 0, 0], [1, 0, 0], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "coincide",
		},
		{
			name:    "alpha 越界",
			yaml:    "id: t\nalpha: 2\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "alpha",
		},
		{
			name:    "钢轨半径过大",
			yaml:    "id: t\nrail_gauge: 1.0\nrail_radius: 0.6\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "rail_radius",
		},
		{
			name:    "初速越界",
			yaml:    "id: t\nspeed: {min: 5, max: 10, initial: 20}\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "speed.initial",
		},
		{
			name:    "速度上限低于下限",
			yaml:    "id: t\nspeed: {min: 10, max: 5, initial: 10}\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "speed.max",
		},
		{
			name:    "未知字段",
			yaml:    "id: t\nbogus_field: 1\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "field bogus_field not found",
		},
		{
			name:    "颜色格式错误",
			yaml:    "id: t\ncolors: {rail: \"#12345\"}\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]",
			wantSub: "invalid hex color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantSub)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}

// TestParseHexColor 测试颜色字符串解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantA   uint8
		wantErr bool
	}{
		{in: "#C83232", wantR: 0xC8, wantG: 0x32, wantB: 0x32, wantA: 0xFF},
		{in: "#11223344", wantR: 0x11, wantG: 0x22, wantB: 0x33, wantA: 0x44},
		{in: "C83232", wantR: 0xC8, wantG: 0x32, wantB: 0x32, wantA: 0xFF}, // # 可省略
		{in: "  #000000  ", wantA: 0xFF},
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		c, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) failed: %v", tt.in, err)
			continue
		}
		if c.R != tt.wantR || c.G != tt.wantG || c.B != tt.wantB || c.A != tt.wantA {
			t.Errorf("ParseHexColor(%q) = %+v", tt.in, c)
		}
	}
}

// TestValidateNegativePillarSpacing 负间隔表示关闭支柱，校验应放行
func TestValidateNegativePillarSpacing(t *testing.T) {
	yaml := minimalYAML + "pillar_spacing: -1\n"
	cfg, err := ParseConfig([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.PillarSpacing != -1 {
		t.Errorf("PillarSpacing should stay -1, got %v", cfg.PillarSpacing)
	}
}
