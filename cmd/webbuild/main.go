// webbuild 把遥测控制台的 TypeScript 打包成 pkg/remote/web/client.js。
// 由 pkg/remote 的 go:generate 调用，也可以手动指定包目录：
//
//	go run ./cmd/webbuild [pkg/remote 目录]
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
)

func main() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("getwd: %v", err)
	}
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	entry := filepath.Join(dir, "web", "src", "main.ts")
	out := filepath.Join(dir, "web", "client.js")

	result := api.Build(api.BuildOptions{
		EntryPoints:   []string{entry},
		Outfile:       out,
		AbsWorkingDir: dir,
		Bundle:        true,
		Format:        api.FormatIIFE,
		Target:        api.ES2018,
		Platform:      api.PlatformBrowser,
		LogLevel:      api.LogLevelInfo,
		Write:         true,
		Loader: map[string]api.Loader{
			".ts": api.LoaderTS,
		},
	})
	if len(result.Errors) > 0 {
		for _, message := range result.Errors {
			log.Printf("esbuild error: %s", message.Text)
		}
		log.Fatalf("esbuild failed with %d error(s)", len(result.Errors))
	}
}
