// registry.go - 内置轨道注册表
//
// 内置轨道以 YAML 形式嵌入在可执行文件里（data/tracks/*.yaml）。
// embed.FS 声明在项目根目录 embed.go，通过 embedded 包访问。

package track

import (
	"fmt"
	"sort"

	"github.com/gonewx/coaster/pkg/embedded"
)

// builtinGlob 内置轨道配置文件的匹配模式
const builtinGlob = "data/tracks/*.yaml"

// Registry 保存一组已加载的轨道配置，按 ID 索引。
// 几何按需构建并缓存，同一条轨道在菜单与骑行场景间只剖分一次。
type Registry struct {
	tracks     []*Config
	byID       map[string]*Config
	geometries map[string]*Geometry
}

// NewRegistry 用给定配置构造注册表，按 ID 升序排列。
// 遇到重复 ID 返回错误。
func NewRegistry(configs ...*Config) (*Registry, error) {
	r := &Registry{
		byID:       make(map[string]*Config, len(configs)),
		geometries: make(map[string]*Geometry, len(configs)),
	}
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if _, exists := r.byID[cfg.ID]; exists {
			return nil, fmt.Errorf("duplicate track id: %s", cfg.ID)
		}
		r.byID[cfg.ID] = cfg
		r.tracks = append(r.tracks, cfg)
	}
	sort.Slice(r.tracks, func(i, j int) bool { return r.tracks[i].ID < r.tracks[j].ID })
	return r, nil
}

// LoadBuiltin 从嵌入资源加载全部内置轨道。
// 必须先调用 embedded.Init。
func LoadBuiltin() (*Registry, error) {
	paths, err := embedded.Glob(builtinGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to list builtin tracks: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no builtin tracks found under %s", builtinGlob)
	}
	configs := make([]*Config, 0, len(paths))
	for _, path := range paths {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read track file %s: %w", path, err)
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			return nil, fmt.Errorf("track file %s: %w", path, err)
		}
		configs = append(configs, cfg)
	}
	return NewRegistry(configs...)
}

// List 返回按 ID 排序的全部轨道。
func (r *Registry) List() []*Config { return r.tracks }

// Get 按 ID 查找轨道。
func (r *Registry) Get(id string) (*Config, bool) {
	cfg, ok := r.byID[id]
	return cfg, ok
}

// Default 返回默认轨道（排序后的第一条），注册表为空时返回 nil。
func (r *Registry) Default() *Config {
	if len(r.tracks) == 0 {
		return nil
	}
	return r.tracks[0]
}

// Len 返回注册表中的轨道数量。
func (r *Registry) Len() int { return len(r.tracks) }

// Geometry 返回指定轨道的几何，首次调用时构建并缓存。
// 几何构建后只读，缓存可以安全地被多个场景复用。
func (r *Registry) Geometry(id string) (*Geometry, error) {
	if g, ok := r.geometries[id]; ok {
		return g, nil
	}
	cfg, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown track id: %s", id)
	}
	g, err := Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build track %s: %w", id, err)
	}
	r.geometries[id] = g
	return g, nil
}
