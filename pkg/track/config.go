// Package track 定义过山车轨道的配置结构与三维几何生成。
//
// 轨道以 YAML 描述：一组控制点经向心 Catmull-Rom 样条插值形成
// 闭合回路，再沿回路扫掠出钢轨、枕木、支柱等网格（见 build.go）。
// 内置轨道嵌入在可执行文件中，由 registry.go 统一加载。
package track

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/coaster/pkg/render3d"
	"github.com/gonewx/coaster/pkg/spline"
)

// ===== 默认值 =====

const (
	defaultAlpha         = 0.5 // 向心参数化
	defaultRailGauge     = 1.2
	defaultRailRadius    = 0.09
	defaultTieSpacing    = 2.4
	defaultPillarSpacing = 14.0
	defaultBallRadius    = 0.85
	defaultLookAhead     = 2.5
	defaultSpeedMin      = 2.0
	defaultSpeedMax      = 40.0
)

var defaultColors = ColorScheme{
	Rail:   HexColor{R: 0xC8, G: 0x32, B: 0x32, A: 0xFF},
	Tie:    HexColor{R: 0x6E, G: 0x4B, B: 0x28, A: 0xFF},
	Pillar: HexColor{R: 0x8C, G: 0x8C, B: 0x96, A: 0xFF},
	Ball:   HexColor{R: 0xFF, G: 0xD2, B: 0x3C, A: 0xFF},
	Ground: HexColor{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF},
	Grid:   HexColor{R: 0x3C, G: 0x5A, B: 0x3C, A: 0xFF},
	Sky:    HexColor{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF},
}

// ===== 配置结构 =====

// HexColor 在 YAML 中以 "#RRGGBB" 或 "#RRGGBBAA" 字符串表示的颜色。
// 零值（A == 0）视为未设置，加载时会替换成默认配色。
type HexColor render3d.Color

// UnmarshalYAML 实现 yaml.Unmarshaler。
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("hex color must be a scalar string, got %s", value.Tag)
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	*c = HexColor(parsed)
	return nil
}

// Color 转换为渲染层的颜色类型。
func (c HexColor) Color() render3d.Color { return render3d.Color(c) }

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 形式的颜色。
func ParseHexColor(s string) (render3d.Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return render3d.Color{}, fmt.Errorf("invalid hex color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return render3d.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(raw) == 6 {
		v = v<<8 | 0xFF
	}
	return render3d.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ColorScheme 轨道的整体配色，省略的字段使用默认配色。
type ColorScheme struct {
	Rail   HexColor `yaml:"rail"`
	Tie    HexColor `yaml:"tie"`
	Pillar HexColor `yaml:"pillar"`
	Ball   HexColor `yaml:"ball"`
	Ground HexColor `yaml:"ground"`
	Grid   HexColor `yaml:"grid"`
	Sky    HexColor `yaml:"sky"`
}

// SpeedRange 小球运行速度的取值范围（米/秒）。
type SpeedRange struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Initial float64 `yaml:"initial"`
}

// Config 单条轨道的完整配置，对应 data/tracks/*.yaml 的结构。
//
// 示例：
//
//	id: classic-loop
//	name: "经典环线"
//	alpha: 0.5
//	points:
//	  - [30, 6, 0]
//	  - [0, 10, 22]
//	  ...
//	speed: { min: 2, max: 40, initial: 12 }
//	colors: { rail: "#C83232" }
type Config struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Alpha 是 Catmull-Rom 参数化指数，0.5 为向心参数化。
	// 省略或写 0 都按 0.5 处理。
	Alpha float64 `yaml:"alpha"`

	// Points 是闭合回路的控制点，至少 4 个，每个为 [x, y, z]。
	// 首尾自动相连，不要重复起点。
	Points [][]float64 `yaml:"points"`

	RailGauge     float64 `yaml:"rail_gauge"`     // 两轨中心间距
	RailRadius    float64 `yaml:"rail_radius"`    // 钢轨截面半径
	TieSpacing    float64 `yaml:"tie_spacing"`    // 枕木间隔弧长
	PillarSpacing float64 `yaml:"pillar_spacing"` // 支柱间隔弧长，负值表示不生成支柱

	BallRadius float64 `yaml:"ball_radius"`
	LookAhead  float64 `yaml:"look_ahead"` // 朝向目标点的前瞻弧长

	Speed  SpeedRange  `yaml:"speed"`
	Colors ColorScheme `yaml:"colors"`
}

// ===== 加载与校验 =====

// ParseConfig 解析 YAML 轨道配置，应用默认值并校验。
// 未知字段视为错误，便于尽早发现手写配置里的拼写问题。
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse track config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为省略的字段填入默认值。
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Name) == "" {
		c.Name = c.ID
	}
	if c.Alpha == 0 {
		c.Alpha = defaultAlpha
	}
	if c.RailGauge == 0 {
		c.RailGauge = defaultRailGauge
	}
	if c.RailRadius == 0 {
		c.RailRadius = defaultRailRadius
	}
	if c.TieSpacing == 0 {
		c.TieSpacing = defaultTieSpacing
	}
	if c.PillarSpacing == 0 {
		c.PillarSpacing = defaultPillarSpacing
	}
	if c.BallRadius == 0 {
		c.BallRadius = defaultBallRadius
	}
	if c.LookAhead == 0 {
		c.LookAhead = defaultLookAhead
	}
	if c.Speed.Min == 0 {
		c.Speed.Min = defaultSpeedMin
	}
	if c.Speed.Max == 0 {
		c.Speed.Max = defaultSpeedMax
	}
	if c.Speed.Initial == 0 {
		c.Speed.Initial = (c.Speed.Min + c.Speed.Max) / 2
	}

	if c.Colors.Rail.A == 0 {
		c.Colors.Rail = defaultColors.Rail
	}
	if c.Colors.Tie.A == 0 {
		c.Colors.Tie = defaultColors.Tie
	}
	if c.Colors.Pillar.A == 0 {
		c.Colors.Pillar = defaultColors.Pillar
	}
	if c.Colors.Ball.A == 0 {
		c.Colors.Ball = defaultColors.Ball
	}
	if c.Colors.Ground.A == 0 {
		c.Colors.Ground = defaultColors.Ground
	}
	if c.Colors.Grid.A == 0 {
		c.Colors.Grid = defaultColors.Grid
	}
	if c.Colors.Sky.A == 0 {
		c.Colors.Sky = defaultColors.Sky
	}
}

// Validate 检查配置的完整性，返回发现的第一个问题。
// 通常由 ParseConfig 调用（默认值已填入）。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("track config missing id")
	}
	if strings.ContainsAny(c.ID, " \t/\\") {
		return fmt.Errorf("track id %q must not contain whitespace or path separators", c.ID)
	}
	if len(c.Points) < 4 {
		return fmt.Errorf("track %s: need at least 4 control points, got %d", c.ID, len(c.Points))
	}
	for i, p := range c.Points {
		if len(p) != 3 {
			return fmt.Errorf("track %s: point %d has %d components, want 3", c.ID, i, len(p))
		}
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("track %s: point %d is not finite", c.ID, i)
			}
		}
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("track %s: alpha %.3f out of range [0, 1]", c.ID, c.Alpha)
	}
	if c.RailGauge <= 0 {
		return fmt.Errorf("track %s: rail_gauge must be positive, got %.3f", c.ID, c.RailGauge)
	}
	if c.RailRadius <= 0 || c.RailRadius >= c.RailGauge/2 {
		return fmt.Errorf("track %s: rail_radius %.3f must be in (0, rail_gauge/2)", c.ID, c.RailRadius)
	}
	if c.TieSpacing <= 0 {
		return fmt.Errorf("track %s: tie_spacing must be positive, got %.3f", c.ID, c.TieSpacing)
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("track %s: ball_radius must be positive, got %.3f", c.ID, c.BallRadius)
	}
	if c.LookAhead <= 0 {
		return fmt.Errorf("track %s: look_ahead must be positive, got %.3f", c.ID, c.LookAhead)
	}
	if c.Speed.Min <= 0 {
		return fmt.Errorf("track %s: speed.min must be positive, got %.3f", c.ID, c.Speed.Min)
	}
	if c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("track %s: speed.max %.3f is below speed.min %.3f", c.ID, c.Speed.Max, c.Speed.Min)
	}
	if c.Speed.Initial < c.Speed.Min || c.Speed.Initial > c.Speed.Max {
		return fmt.Errorf("track %s: speed.initial %.3f outside [%.3f, %.3f]", c.ID, c.Speed.Initial, c.Speed.Min, c.Speed.Max)
	}

	// 控制点还必须能构成合法的闭合样条（相邻点不可重合等）
	if _, err := spline.NewClosed(c.controlPoints(), render3d.Scalar(c.Alpha)); err != nil {
		return fmt.Errorf("track %s: %w", c.ID, err)
	}
	return nil
}

// controlPoints 把原始点数组转换为样条控制点。
// 只能在点数与分量数校验之后调用。
func (c *Config) controlPoints() []render3d.Vec3 {
	pts := make([]render3d.Vec3, len(c.Points))
	for i, p := range c.Points {
		pts[i] = render3d.V3(render3d.Scalar(p[0]), render3d.Scalar(p[1]), render3d.Scalar(p[2]))
	}
	return pts
}
