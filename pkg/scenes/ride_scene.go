package scenes

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/entities"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/remote"
	"github.com/gonewx/coaster/pkg/render3d"
	"github.com/gonewx/coaster/pkg/systems"
	"github.com/gonewx/coaster/pkg/track"
)

// rideSceneMaxMeshes 渲染场景槽位容量：地面、网格、钢轨、枕木、支柱、小球
const rideSceneMaxMeshes = 8

// RideScene 骑行场景
//
// 三维视口里小球沿轨道飞行，底部控制栏调节播放，左上角实时读数。
// 场景自持一套实体管理器与系统，退出时把行程统计并入历史战绩。
type RideScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	registry        *track.Registry
	hub             *remote.Hub

	trackCfg *track.Config
	geometry *track.Geometry

	entityManager *ecs.EntityManager
	scene3d       *render3d.Scene

	rideSystem      *systems.RideSystem
	cameraSystem    *systems.OrbitCameraSystem
	buttonSystem    *systems.ButtonSystem
	sliderSystem    *systems.SliderSystem
	checkboxSystem  *systems.CheckboxSystem
	telemetrySystem *systems.TelemetrySystem
	renderSystem    *systems.RenderSystem
	uiRenderSystem  *systems.UIRenderSystem
	hudRenderSystem *systems.HUDRenderSystem

	ballEntity ecs.EntityID
	rigEntity  ecs.EntityID
	gridSlot   int

	// 需要随行驶状态联动的控件
	pauseButton  *components.ButtonComponent
	speedSlider  *components.SliderComponent
	wireframeBox *components.CheckboxComponent
	gridBox      *components.CheckboxComponent

	pendingTrack   string // 远程指令请求切换的轨道
	wantScreenshot bool
}

// NewRideScene 创建骑行场景
//
// trackID 未注册时回退到默认轨道；几何构建失败返回 nil，
// 场景管理器会保持在当前场景。hub 可为 nil，表示未开启远程遥测。
func NewRideScene(rm *game.ResourceManager, sm *game.SceneManager, registry *track.Registry, hub *remote.Hub, trackID string) *RideScene {
	cfg, ok := registry.Get(trackID)
	if !ok {
		log.Printf("[RideScene] 未知轨道 %q，回退到默认轨道", trackID)
		cfg = registry.Default()
	}
	if cfg == nil {
		log.Printf("[RideScene] 注册表为空，无法进入骑行场景")
		return nil
	}

	geo, err := registry.Geometry(cfg.ID)
	if err != nil {
		log.Printf("[RideScene] 轨道 %s 几何构建失败: %v", cfg.ID, err)
		return nil
	}

	scene := &RideScene{
		resourceManager: rm,
		sceneManager:    sm,
		registry:        registry,
		hub:             hub,
		trackCfg:        cfg,
		geometry:        geo,
		gridSlot:        -1,
	}

	game.GetGameState().CurrentTrackID = cfg.ID

	scene.entityManager = ecs.NewEntityManager()
	scene.setupScene3D()
	scene.setupEntities()
	scene.setupSystems()
	scene.createControlBar()
	scene.applySettings()

	log.Printf("[RideScene] 进入轨道 %s（%.0f 米）", cfg.ID, float64(geo.Curve.Length()))
	return scene
}

// ===== 构建 =====

// setupScene3D 填充渲染场景：相机、光照与轨道网格
func (s *RideScene) setupScene3D() {
	s.scene3d = render3d.CreateScene(rideSceneMaxMeshes)

	s.scene3d.Camera.FOVYRad = config.CameraFOVYRad
	s.scene3d.Camera.Near = config.CameraNear
	s.scene3d.Camera.Far = config.CameraFar

	s.scene3d.Light = render3d.Light{
		Mode:      render3d.LightAmbientDirectional,
		Ambient:   0.38,
		Dir:       render3d.Normalize(render3d.V3(-0.45, -1, -0.25)),
		DirAmount: 0.62,
	}

	// 槽位顺序即绘制顺序：先地面后轨道，最后小球
	s.scene3d.AddMesh(s.geometry.Ground)
	if len(s.geometry.Grid.Vertices) > 0 {
		s.gridSlot = s.scene3d.AddMesh(s.geometry.Grid)
	}
	s.scene3d.AddMesh(s.geometry.Rails)
	s.scene3d.AddMesh(s.geometry.Ties)
	if len(s.geometry.Pillars.Vertices) > 0 {
		s.scene3d.AddMesh(s.geometry.Pillars)
	}
}

// setupEntities 创建小球与相机装配实体
func (s *RideScene) setupEntities() {
	cfg := s.trackCfg

	ballMesh := render3d.NewUVSphere(render3d.Scalar(cfg.BallRadius), 12, 18, cfg.Colors.Ball.Color())
	ballSlot := s.scene3d.AddMesh(ballMesh)
	s.ballEntity = entities.NewBallEntity(s.entityManager, ballSlot, cfg)

	autoRotate := game.DefaultSettings().AutoRotate
	if sm := game.GetGameState().GetSettingsManager(); sm != nil {
		autoRotate = sm.GetSettings().AutoRotate
	}
	s.rigEntity = entities.NewCameraRigEntity(s.entityManager, s.geometry, config.ControlBarTop, autoRotate)
}

// setupSystems 创建并接线全部系统
func (s *RideScene) setupSystems() {
	em := s.entityManager

	s.buttonSystem = systems.NewButtonSystem(em)
	s.sliderSystem = systems.NewSliderSystem(em)
	s.checkboxSystem = systems.NewCheckboxSystem(em)

	s.rideSystem = systems.NewRideSystem(em, s.geometry.Curve, s.trackCfg)
	s.cameraSystem = systems.NewOrbitCameraSystem(em, s.scene3d, s.geometry.Curve)

	s.renderSystem = systems.NewRenderSystem(em, s.scene3d, config.ScreenWidth, config.ScreenHeight)
	s.renderSystem.SetSkyColor(s.trackCfg.Colors.Sky.Color())

	s.uiRenderSystem = systems.NewUIRenderSystem(em, s.resourceManager)
	s.hudRenderSystem = systems.NewHUDRenderSystem(em, s.resourceManager, s.trackCfg.Name)
	s.hudRenderSystem.SetControlBarTop(config.ControlBarTop)

	if s.hub != nil {
		s.telemetrySystem = systems.NewTelemetrySystem(em, s.hub, s.rideSystem, s.cameraSystem, s.renderSystem, s.trackCfg)
		s.telemetrySystem.SetTrackSelector(func(trackID string) {
			s.pendingTrack = trackID
		})
	}
}

// applySettings 把持久化设置应用到渲染与相机
func (s *RideScene) applySettings() {
	settings := game.DefaultSettings()
	if sm := game.GetGameState().GetSettingsManager(); sm != nil {
		settings = sm.GetSettings()
	}

	s.renderSystem.SetWireframe(settings.Wireframe)
	if s.gridSlot >= 0 {
		s.scene3d.SetMeshEnabled(s.gridSlot, settings.ShowGrid)
	}
}

// ===== 帧循环 =====

// Update 按固定顺序驱动全部系统：输入 → 行驶 → 相机 → 遥测 → 渲染同步
func (s *RideScene) Update(deltaTime float64) {
	s.handleShortcuts()

	s.buttonSystem.Update(deltaTime)
	s.sliderSystem.Update(deltaTime)
	s.checkboxSystem.Update(deltaTime)

	s.rideSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)

	if s.telemetrySystem != nil {
		s.telemetrySystem.Update(deltaTime)
	}

	s.hudRenderSystem.Update(deltaTime)
	s.renderSystem.Update(deltaTime)

	s.syncWidgets()
	s.applyPendingTrack()
}

// handleShortcuts 处理场景级快捷键（行驶与相机的快捷键在各自系统里）
func (s *RideScene) handleShortcuts() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.exitToMenu()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.setWireframe(!s.renderSystem.Wireframe())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.setGridVisible(!s.gridVisible())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.wantScreenshot = true
	}
}

// syncWidgets 控件状态跟随行驶状态：暂停按钮图标、速度滑块位置
func (s *RideScene) syncWidgets() {
	ride, ok := ecs.GetComponent[*components.RideComponent](s.entityManager, s.ballEntity)
	if !ok {
		return
	}

	if s.pauseButton != nil {
		if ride.Paused {
			s.pauseButton.Icon = components.IconPlay
		} else {
			s.pauseButton.Icon = components.IconPause
		}
	}

	if s.speedSlider != nil && !s.speedSlider.IsDragging {
		s.speedSlider.Value = s.rideSystem.SpeedFraction()
	}
}

// applyPendingTrack 处理远程指令请求的轨道切换
func (s *RideScene) applyPendingTrack() {
	if s.pendingTrack == "" {
		return
	}
	trackID := s.pendingTrack
	s.pendingTrack = ""
	if trackID == s.trackCfg.ID {
		return
	}
	if _, ok := s.registry.Get(trackID); !ok {
		log.Printf("[RideScene] 忽略未知轨道切换请求: %s", trackID)
		return
	}
	s.sceneManager.LoadTrack(trackID)
}

// Draw 绘制顺序：三维视口 → HUD → 控件
func (s *RideScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.hudRenderSystem.Draw(screen)
	s.uiRenderSystem.Draw(screen)

	if s.wantScreenshot {
		s.wantScreenshot = false
		s.saveScreenshot(screen)
	}
}

// saveScreenshot 把当前帧保存为工作目录下的 PNG
func (s *RideScene) saveScreenshot(screen *ebiten.Image) {
	bounds := screen.Bounds()
	buf := make([]byte, 4*bounds.Dx()*bounds.Dy())
	screen.ReadPixels(buf)

	img := &image.RGBA{
		Pix:    buf,
		Stride: 4 * bounds.Dx(),
		Rect:   image.Rect(0, 0, bounds.Dx(), bounds.Dy()),
	}

	name := fmt.Sprintf("coaster-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		log.Printf("[RideScene] 截图失败: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("[RideScene] 截图编码失败: %v", err)
		return
	}
	log.Printf("[RideScene] 截图已保存: %s", name)
}

// ===== 退出 =====

// exitToMenu 返回主菜单，场景管理器会先触发 SaveOnExit
func (s *RideScene) exitToMenu() {
	s.sceneManager.SwitchTo(NewMainMenuScene(s.resourceManager, s.sceneManager, s.registry))
}

// SaveOnExit 离开场景时并入行程统计并落盘设置
func (s *RideScene) SaveOnExit() bool {
	gs := game.GetGameState()
	saved := true

	if ride, ok := ecs.GetComponent[*components.RideComponent](s.entityManager, s.ballEntity); ok {
		if rm := gs.GetRecordsManager(); rm != nil {
			if err := rm.Apply(s.trackCfg.ID, ride.Lap, ride.Odometer, ride.TopSpeed); err != nil {
				log.Printf("[RideScene] 保存行程战绩失败: %v", err)
				saved = false
			}
		}
	}

	if sm := gs.GetSettingsManager(); sm != nil {
		if err := sm.Save(); err != nil {
			log.Printf("[RideScene] 保存设置失败: %v", err)
			saved = false
		}
	}
	return saved
}
