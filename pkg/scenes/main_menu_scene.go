package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/entities"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/systems"
	"github.com/gonewx/coaster/pkg/track"
)

// 主菜单配色
var (
	menuBackColor     = color.RGBA{18, 20, 28, 255}
	menuDividerColor  = color.RGBA{110, 116, 130, 255}
	menuTitleColor    = [4]uint8{255, 214, 96, 255}
	menuSubtitleColor = [4]uint8{200, 204, 214, 255}
	menuRecordColor   = [4]uint8{140, 146, 160, 255}
	menuPanelColor    = [4]uint8{200, 204, 214, 255}
	menuFooterColor   = [4]uint8{140, 146, 160, 255}
	menuPickedColor   = [4]uint8{255, 214, 96, 255}
)

// MainMenuScene 主菜单
//
// 左栏每条轨道一个按钮，按钮下方一行该轨道的长度与战绩；
// 右侧设置面板：音量滑动条与显示开关。点击轨道按钮进入骑行场景。
type MainMenuScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	registry        *track.Registry

	entityManager  *ecs.EntityManager
	buttonSystem   *systems.ButtonSystem
	sliderSystem   *systems.SliderSystem
	checkboxSystem *systems.CheckboxSystem
	uiRenderSystem *systems.UIRenderSystem
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(rm *game.ResourceManager, sm *game.SceneManager, registry *track.Registry) *MainMenuScene {
	scene := &MainMenuScene{
		resourceManager: rm,
		sceneManager:    sm,
		registry:        registry,
	}

	scene.entityManager = ecs.NewEntityManager()
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.sliderSystem = systems.NewSliderSystem(scene.entityManager)
	scene.checkboxSystem = systems.NewCheckboxSystem(scene.entityManager)
	scene.uiRenderSystem = systems.NewUIRenderSystem(scene.entityManager, rm)

	// 菜单里没有行驶，风声归零
	if am := game.GetGameState().GetAudioManager(); am != nil {
		am.SetWindLevel(0)
	}

	scene.createHeader()
	scene.createTrackList()
	scene.createSettingsPanel()
	scene.createFooter()

	return scene
}

// ===== 实体构建 =====

func (m *MainMenuScene) createHeader() {
	entities.NewScreenLabel(m.entityManager, m.resourceManager,
		config.ScreenWidth/2, config.MenuTitleY,
		config.WindowTitle, config.MenuTitleFontSize,
		menuTitleColor, components.AlignCenter)

	entities.NewScreenLabel(m.entityManager, m.resourceManager,
		config.ScreenWidth/2, config.MenuTitleY+44,
		"Pick a track to ride", config.MenuSubtitleFontSize,
		menuSubtitleColor, components.AlignCenter)
}

func (m *MainMenuScene) createTrackList() {
	tracks := m.registry.List()
	if len(tracks) == 0 {
		entities.NewScreenLabel(m.entityManager, m.resourceManager,
			config.ScreenWidth/2, config.TrackListTopY+40,
			"No tracks found", config.MenuSubtitleFontSize,
			menuRecordColor, components.AlignCenter)
		return
	}

	lastTrack := ""
	if sm := game.GetGameState().GetSettingsManager(); sm != nil {
		lastTrack = sm.GetSettings().LastTrack
	}

	for i, cfg := range tracks {
		x, y := config.CalculateTrackButtonPosition(i)
		trackID := cfg.ID

		buttonEntity := entities.NewControlButton(m.entityManager, m.resourceManager,
			x, y, config.TrackButtonWidth, config.TrackButtonHeight,
			cfg.Name, components.IconNone, config.TrackButtonFontSize,
			game.SoundClick,
			func() { m.startRide(trackID) })

		// 上次骑过的轨道用高亮文字标出
		if trackID == lastTrack {
			if button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, buttonEntity); ok {
				button.TextColor = menuPickedColor
			}
		}

		entities.NewScreenLabel(m.entityManager, m.resourceManager,
			x+4, y+config.TrackButtonHeight+2,
			m.trackSummary(cfg), config.MenuRecordFontSize,
			menuRecordColor, components.AlignLeft)
	}
}

// trackSummary 轨道按钮下方的一行摘要：长度 + 历史战绩
func (m *MainMenuScene) trackSummary(cfg *track.Config) string {
	summary := ""
	if geo, err := m.registry.Geometry(cfg.ID); err == nil {
		summary = fmt.Sprintf("Length %.0f m", float64(geo.Curve.Length()))
	}

	var record game.TrackRecord
	if rm := game.GetGameState().GetRecordsManager(); rm != nil {
		record = rm.Get(cfg.ID)
	}
	if record.Laps == 0 && record.Meters == 0 {
		if summary == "" {
			return "No rides yet"
		}
		return summary + "  -  no rides yet"
	}
	return fmt.Sprintf("%s  -  best %.1f m/s, %d laps, %.0f m ridden",
		summary, record.TopSpeed, record.Laps, record.Meters)
}

func (m *MainMenuScene) createSettingsPanel() {
	gs := game.GetGameState()
	settings := game.DefaultSettings()
	if sm := gs.GetSettingsManager(); sm != nil {
		settings = sm.GetSettings()
	}

	entities.NewScreenLabel(m.entityManager, m.resourceManager,
		config.MenuPanelX, config.MenuPanelTopY,
		"SETTINGS", config.MenuPanelFontSize,
		menuPanelColor, components.AlignLeft)

	sliderY := config.MenuPanelTopY + 48.0
	entities.NewSpeedSlider(m.entityManager,
		config.MenuPanelX, sliderY,
		config.MenuPanelSliderWidth, 6, 7,
		"Sound volume", settings.SoundVolume, game.SoundClick,
		func(v float64) {
			if am := gs.GetAudioManager(); am != nil {
				am.SetSoundVolume(v)
			} else if sm := gs.GetSettingsManager(); sm != nil {
				sm.SetSoundVolume(v)
			}
		})

	sliderY += 46
	entities.NewSpeedSlider(m.entityManager,
		config.MenuPanelX, sliderY,
		config.MenuPanelSliderWidth, 6, 7,
		"Wind volume", settings.WindVolume, game.SoundClick,
		func(v float64) {
			if am := gs.GetAudioManager(); am != nil {
				am.SetWindVolume(v)
			} else if sm := gs.GetSettingsManager(); sm != nil {
				sm.SetWindVolume(v)
			}
		})

	checkY := sliderY + 40.0
	entities.NewToggle(m.entityManager,
		config.MenuPanelX, checkY,
		config.CheckboxBoxSize, "Wireframe render", settings.Wireframe, game.SoundToggle,
		func(on bool) {
			if sm := gs.GetSettingsManager(); sm != nil {
				sm.SetWireframe(on)
			}
		})

	checkY += 32
	entities.NewToggle(m.entityManager,
		config.MenuPanelX, checkY,
		config.CheckboxBoxSize, "Ground grid", settings.ShowGrid, game.SoundToggle,
		func(on bool) {
			if sm := gs.GetSettingsManager(); sm != nil {
				sm.SetShowGrid(on)
			}
		})

	checkY += 32
	entities.NewToggle(m.entityManager,
		config.MenuPanelX, checkY,
		config.CheckboxBoxSize, "Auto orbit when idle", settings.AutoRotate, game.SoundToggle,
		func(on bool) {
			if sm := gs.GetSettingsManager(); sm != nil {
				sm.SetAutoRotate(on)
			}
		})

	checkY += 32
	entities.NewToggle(m.entityManager,
		config.MenuPanelX, checkY,
		config.CheckboxBoxSize, "Fullscreen", settings.Fullscreen, game.SoundToggle,
		func(on bool) {
			ebiten.SetFullscreen(on)
			if sm := gs.GetSettingsManager(); sm != nil {
				sm.SetFullscreen(on)
			}
		})
}

func (m *MainMenuScene) createFooter() {
	entities.NewScreenLabel(m.entityManager, m.resourceManager,
		config.ScreenWidth/2, config.MenuFooterY,
		"Drag to orbit - wheel to zoom - Space to pause", config.MenuFooterFontSize,
		menuFooterColor, components.AlignCenter)
}

// ===== 场景切换 =====

// startRide 进入指定轨道的骑行场景
func (m *MainMenuScene) startRide(trackID string) {
	gs := game.GetGameState()
	gs.CurrentTrackID = trackID
	if sm := gs.GetSettingsManager(); sm != nil {
		sm.SetLastTrack(trackID)
	}
	m.sceneManager.LoadTrack(trackID)
}

// ===== 帧循环 =====

// Update 驱动菜单交互
func (m *MainMenuScene) Update(deltaTime float64) {
	m.buttonSystem.Update(deltaTime)
	m.sliderSystem.Update(deltaTime)
	m.checkboxSystem.Update(deltaTime)
}

// Draw 绘制菜单
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackColor)

	// 标题下的分隔线
	vector.StrokeLine(screen,
		config.TrackColumnX, 126,
		config.ScreenWidth-config.TrackColumnX, 126,
		1, menuDividerColor, false)

	m.uiRenderSystem.Draw(screen)
}

// SaveOnExit 离开菜单时落盘设置（音量与显示开关都在这里改过）
func (m *MainMenuScene) SaveOnExit() bool {
	sm := game.GetGameState().GetSettingsManager()
	if sm == nil {
		return true
	}
	if err := sm.Save(); err != nil {
		log.Printf("[MainMenuScene] 保存设置失败: %v", err)
		return false
	}
	return true
}
