// trackcheck 校验轨道配置文件
//
// 用法：
//
//	go run ./cmd/trackcheck                    # 校验 data/tracks/ 下全部内置轨道
//	go run ./cmd/trackcheck my-track.yaml ...  # 校验指定文件
//
// 对每个文件解析 YAML、构建几何并输出摘要；
// 第一个校验失败的文件会让进程以非零状态退出。
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonewx/coaster/pkg/track"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		var err error
		paths, err = filepath.Glob("data/tracks/*.yaml")
		if err != nil || len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "error: no track files found (run from the repo root or pass file paths)")
			os.Exit(1)
		}
	}

	for _, path := range paths {
		if err := checkTrack(path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %s - %v\n", path, err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d track(s) OK\n", len(paths))
}

// checkTrack 解析并构建一个轨道文件，输出摘要
func checkTrack(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cfg, err := track.ParseConfig(data)
	if err != nil {
		return err
	}

	geo, err := track.Build(cfg)
	if err != nil {
		return err
	}

	min, max := geo.Curve.Bounds()
	fmt.Printf("OK: %s\n", path)
	fmt.Printf("     id=%s name=%q points=%d length=%.1fm\n", cfg.ID, cfg.Name, len(cfg.Points), geo.Curve.Length())
	fmt.Printf("     bounds min=(%.1f, %.1f, %.1f) max=(%.1f, %.1f, %.1f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	return nil
}
