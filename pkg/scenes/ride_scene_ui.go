package scenes

import (
	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/entities"
	"github.com/gonewx/coaster/pkg/game"
)

// controlButtonFontSize 控制栏按钮字号（纯图标按钮仅占位）
const controlButtonFontSize = 13.0

// createControlBar 搭建底部控制栏：按钮行 + 速度滑块 + 显示开关
//
// 按钮索引与 CalculateControlButtonPosition 的约定一致：
// 0=菜单 1=暂停/继续 2=换向 3=减速 4=加速，相机按钮单独放在滑块右侧
func (s *RideScene) createControlBar() {
	em := s.entityManager
	rm := s.resourceManager
	speedStep := (s.trackCfg.Speed.Max - s.trackCfg.Speed.Min) / 10

	makeButton := func(index int, icon components.ButtonIcon, soundID string, onClick func()) ecs.EntityID {
		x, y := config.CalculateControlButtonPosition(index)
		return entities.NewControlButton(em, rm,
			x, y, config.ControlButtonSize, config.ControlButtonSize,
			"", icon, controlButtonFontSize, soundID, onClick)
	}

	makeButton(0, components.IconMenu, game.SoundClick, func() {
		s.exitToMenu()
	})

	pauseEntity := makeButton(1, components.IconPause, game.SoundClick, func() {
		s.rideSystem.TogglePause()
	})
	if button, ok := ecs.GetComponent[*components.ButtonComponent](em, pauseEntity); ok {
		s.pauseButton = button
	}

	makeButton(2, components.IconReverse, game.SoundWhoosh, func() {
		s.rideSystem.ReverseDirection()
	})
	makeButton(3, components.IconSlower, game.SoundClick, func() {
		s.rideSystem.AdjustSpeedTarget(-speedStep)
	})
	makeButton(4, components.IconFaster, game.SoundClick, func() {
		s.rideSystem.AdjustSpeedTarget(speedStep)
	})

	// 速度滑块：比例值映射到轨道自己的速度区间
	sliderEntity := entities.NewSpeedSlider(em,
		config.SpeedSliderX, config.SpeedSliderY,
		config.SpeedSliderWidth, config.SpeedSliderHeight, config.SpeedSliderKnobRadius,
		"Speed", s.rideSystem.SpeedFraction(), game.SoundClick,
		func(v float64) {
			s.rideSystem.SetSpeedFraction(v)
		})
	if slider, ok := ecs.GetComponent[*components.SliderComponent](em, sliderEntity); ok {
		s.speedSlider = slider
	}

	// 相机切换按钮
	entities.NewControlButton(em, rm,
		config.CameraButtonX, config.ControlButtonY,
		config.ControlButtonSize, config.ControlButtonSize,
		"", components.IconCamera, controlButtonFontSize, game.SoundClick,
		func() {
			if rig, ok := ecs.GetComponent[*components.CameraRigComponent](em, s.rigEntity); ok {
				s.cameraSystem.ToggleMode(rig)
			}
		})

	settings := game.DefaultSettings()
	if sm := game.GetGameState().GetSettingsManager(); sm != nil {
		settings = sm.GetSettings()
	}

	wireframeEntity := entities.NewToggle(em,
		config.WireframeCheckboxX, config.CheckboxY,
		config.CheckboxBoxSize, "Wireframe", settings.Wireframe, game.SoundToggle,
		func(on bool) {
			s.setWireframe(on)
		})
	if box, ok := ecs.GetComponent[*components.CheckboxComponent](em, wireframeEntity); ok {
		s.wireframeBox = box
	}

	gridEntity := entities.NewToggle(em,
		config.GridCheckboxX, config.CheckboxY,
		config.CheckboxBoxSize, "Grid", settings.ShowGrid, game.SoundToggle,
		func(on bool) {
			s.setGridVisible(on)
		})
	if box, ok := ecs.GetComponent[*components.CheckboxComponent](em, gridEntity); ok {
		s.gridBox = box
	}

	entities.NewToggle(em,
		config.AutoOrbitCheckboxX, config.CheckboxY,
		config.CheckboxBoxSize, "Auto orbit", settings.AutoRotate, game.SoundToggle,
		func(on bool) {
			if rig, ok := ecs.GetComponent[*components.CameraRigComponent](em, s.rigEntity); ok {
				rig.AutoRotate = on
			}
			if sm := game.GetGameState().GetSettingsManager(); sm != nil {
				sm.SetAutoRotate(on)
			}
		})
}

// ===== 显示开关（按键与复选框共用同一入口） =====

// setWireframe 切换线框渲染并同步设置与复选框
func (s *RideScene) setWireframe(on bool) {
	s.renderSystem.SetWireframe(on)
	if s.wireframeBox != nil {
		s.wireframeBox.IsChecked = on
	}
	if sm := game.GetGameState().GetSettingsManager(); sm != nil {
		sm.SetWireframe(on)
	}
}

// setGridVisible 切换地面网格显隐并同步设置与复选框
func (s *RideScene) setGridVisible(on bool) {
	if s.gridSlot >= 0 {
		s.scene3d.SetMeshEnabled(s.gridSlot, on)
	}
	if s.gridBox != nil {
		s.gridBox.IsChecked = on
	}
	if sm := game.GetGameState().GetSettingsManager(); sm != nil {
		sm.SetShowGrid(on)
	}
}

// gridVisible 地面网格当前是否可见
func (s *RideScene) gridVisible() bool {
	if s.gridSlot < 0 {
		return false
	}
	return s.scene3d.MeshEnabled(s.gridSlot)
}
