package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/coaster/pkg/app"
	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/embedded"
	"github.com/gonewx/coaster/pkg/track"
)

func main() {
	trackID := flag.String("track", "", "启动后直接进入指定轨道（跳过菜单），如 classic-loop")
	serveAddr := flag.String("serve", "", "启动遥测服务并监听该地址，如 :8093")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	fullscreen := flag.Bool("fullscreen", false, "以全屏模式启动")
	wireframe := flag.Bool("wireframe", false, "以线框模式渲染轨道")
	listTracks := flag.Bool("list-tracks", false, "列出内置轨道后退出")
	flag.Parse()

	// 嵌入资源必须在一切加载动作之前初始化
	embedded.Init(dataFS)

	if *listTracks {
		if err := printTrackList(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TrackID:    *trackID,
		SkipMenu:   *trackID != "",
		ServeAddr:  *serveAddr,
		Fullscreen: *fullscreen,
		Wireframe:  *wireframe,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	// 窗口被关闭：保存最后一个场景的状态（设置、行驶记录）
	gameApp.Shutdown()
}

// printTrackList 输出内置轨道一览表（-list-tracks）
func printTrackList() error {
	registry, err := track.LoadBuiltin()
	if err != nil {
		return err
	}

	fmt.Printf("%-16s %-24s %8s %7s\n", "ID", "NAME", "LENGTH", "POINTS")
	for _, cfg := range registry.List() {
		geo, err := registry.Geometry(cfg.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %-24s %7.0fm %7d\n", cfg.ID, cfg.Name, geo.Curve.Length(), len(cfg.Points))
	}
	return nil
}
