//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 使用 Makefile 构建（推荐）：
//
//	make build-android    # Android
//	make build-ios        # iOS (仅 macOS)
//
// 手动构建：
//
//	# Android
//	make prepare-mobile && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.coaster -o build/android/coaster.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	make prepare-mobile && ebitenmobile bind -target ios -tags mobile -o build/ios/Coaster.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/coaster/pkg/app"
	"github.com/gonewx/coaster/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 创建应用，使用默认配置
	// 移动端不启动遥测服务，触摸操作走和桌面端相同的指针抽象
	cfg := app.Config{
		Verbose:  true, // Enable verbose logging for debugging
		TrackID:  "",   // 进入菜单选择轨道
		SkipMenu: false,
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
