package track

import (
	"os"
	"path/filepath"
	"testing"
)

func mustParse(t *testing.T, yaml string) *Config {
	t.Helper()
	cfg, err := ParseConfig([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	return cfg
}

// TestNewRegistrySortsAndIndexes 测试注册表排序与查找
func TestNewRegistrySortsAndIndexes(t *testing.T) {
	b := mustParse(t, "id: bravo\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]")
	a := mustParse(t, "id: alpha\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]")

	r, err := NewRegistry(b, a)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if list := r.List(); list[0].ID != "alpha" || list[1].ID != "bravo" {
		t.Errorf("List() not sorted by ID: %s, %s", list[0].ID, list[1].ID)
	}
	if r.Default().ID != "alpha" {
		t.Errorf("Default() = %s, want alpha", r.Default().ID)
	}
	if got, ok := r.Get("bravo"); !ok || got.ID != "bravo" {
		t.Errorf("Get(bravo) = %v, %v", got, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should report not found")
	}
}

// TestNewRegistryDuplicateID 重复 ID 应报错
func TestNewRegistryDuplicateID(t *testing.T) {
	a := mustParse(t, "id: same\npoints: [[1, 0, 0], [0, 0, 1], [-1, 0, 0], [0, 0, -1]]")
	b := mustParse(t, "id: same\npoints: [[2, 0, 0], [0, 0, 2], [-2, 0, 0], [0, 0, -2]]")
	if _, err := NewRegistry(a, b); err == nil {
		t.Error("NewRegistry should reject duplicate track ids")
	}
}

// TestRegistryEmpty 空注册表的 Default 返回 nil
func TestRegistryEmpty(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if r.Default() != nil {
		t.Error("Default() on empty registry should be nil")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

// TestLoadBuiltinRequiresInit 未初始化 embedded 包时应报错
func TestLoadBuiltinRequiresInit(t *testing.T) {
	if _, err := LoadBuiltin(); err == nil {
		t.Error("LoadBuiltin should fail before embedded.Init")
	}
}

// TestBuiltinTrackFilesValid 直接从源码树读取内置轨道文件，
// 保证随包发布的每条轨道都能解析并生成几何
func TestBuiltinTrackFilesValid(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "data", "tracks", "*.yaml"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(paths) == 0 {
		t.Skip("data/tracks not present in this checkout")
	}

	seen := map[string]bool{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		if seen[cfg.ID] {
			t.Errorf("duplicate track id %s in %s", cfg.ID, path)
		}
		seen[cfg.ID] = true

		g, err := Build(cfg)
		if err != nil {
			t.Fatalf("build %s: %v", path, err)
		}
		if len(g.Rails.Vertices) == 0 {
			t.Errorf("track %s produced no rail geometry", cfg.ID)
		}
	}
}
