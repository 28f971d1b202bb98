// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/remote"
	"github.com/gonewx/coaster/pkg/scenes"
	"github.com/gonewx/coaster/pkg/track"
	"github.com/gonewx/coaster/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TrackID 指定启动时直接进入的轨道（如 "classic-loop"），为空则进入菜单
	TrackID string
	// SkipMenu 跳过加载场景和菜单，直接进入行驶场景（用于 --track 参数）
	SkipMenu bool
	// ServeAddr 遥测服务监听地址（如 ":8093"），为空则不启动
	ServeAddr string
	// Fullscreen 启动时强制全屏（覆盖已保存的设置）
	Fullscreen bool
	// Wireframe 启动时强制线框渲染（覆盖已保存的设置）
	Wireframe bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	hub                      *remote.Hub
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(config.AudioSampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 打开 gdata 跨平台存储，失败时降级为纯内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: "coaster"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	recordsManager, err := game.NewRecordsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("记录管理器初始化失败: %w", err)
	}

	// 命令行开关覆盖已保存的设置（本次运行内生效并随退出保存）
	if cfg.Wireframe {
		settingsManager.SetWireframe(true)
	}
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}

	gameState := game.GetGameState()
	gameState.SetSettingsManager(settingsManager)
	gameState.SetRecordsManager(recordsManager)
	gameState.SetResourceManager(resourceManager)

	// 初始化 AudioManager 并设置到 GameState
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	gameState.SetAudioManager(audioManager)
	log.Printf("[App] AudioManager initialized")

	// 加载内置轨道
	registry, err := track.LoadBuiltin()
	if err != nil {
		return nil, fmt.Errorf("内置轨道加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d builtin tracks", registry.Len())

	// 可选的遥测服务：浏览器控制台通过 WebSocket 查看和控制行驶状态
	var hub *remote.Hub
	if cfg.ServeAddr != "" {
		hub = remote.NewHub()
		go func(addr string) {
			if err := hub.ListenAndServe(addr); err != nil {
				log.Printf("[App] 遥测服务退出: %v", err)
			}
		}(cfg.ServeAddr)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(trackID string) game.Scene {
		rideScene := scenes.NewRideScene(resourceManager, sceneManager, registry, hub, trackID)
		if rideScene == nil {
			return nil
		}
		return rideScene
	})

	// 根据配置决定启动场景
	if cfg.SkipMenu || cfg.TrackID != "" {
		trackID := cfg.TrackID
		if trackID == "" {
			trackID = settingsManager.GetSettings().LastTrack
		}
		if trackID == "" {
			if def := registry.Default(); def != nil {
				trackID = def.ID
			}
		}
		log.Printf("[App] SkipMenu enabled, starting ride on track: %s", trackID)
		rideScene := scenes.NewRideScene(resourceManager, sceneManager, registry, hub, trackID)
		if rideScene == nil {
			return nil, fmt.Errorf("无法创建行驶场景: %s", trackID)
		}
		sceneManager.SwitchTo(rideScene)
	} else {
		loadingScene := scenes.NewLoadingScene(resourceManager, sceneManager, registry)
		sceneManager.SwitchTo(loadingScene)
	}

	// 应用启动全屏（设置文件里保存的值或命令行覆盖）
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		hub:          hub,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 记录触摸位置，触摸释放事件需要用到最后的坐标
	utils.UpdateLastTouchPosition()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		if sm := game.GetGameState().GetSettingsManager(); sm != nil {
			sm.SetFullscreen(!isFullscreen)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Shutdown 在窗口关闭后保存当前场景的状态
//
// RunGame 返回后由 main 调用；场景切换时 SceneManager 已处理保存，
// 这里兜住最后一个活动场景。
func (a *App) Shutdown() {
	if a.sceneManager == nil {
		return
	}
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: final scene state save failed")
		}
	}
}
