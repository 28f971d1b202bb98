package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/utils"
)

// SliderMouseInput 滑块系统指针输入接口
// 用于依赖注入，支持测试时 mock
type SliderMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// ebitenSliderMouseInput Ebitengine 默认实现
type ebitenSliderMouseInput struct{}

func (e *ebitenSliderMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenSliderMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return utils.IsPointerPressed()
}

// defaultSliderMouseInput 默认指针输入实例
var defaultSliderMouseInput SliderMouseInput = &ebitenSliderMouseInput{}

// SliderSystem 滑块交互系统
// 负责处理滑块的指针拖拽
//
// 职责：
//   - 检测指针是否在滑槽区域内（含滑块半径的纵向余量）
//   - 按下或拖拽中时把指针 X 坐标换算成 0.0~1.0 的 Value
//   - 值变化时更新 SliderComponent.Value 并调用 OnValueChange 回调
//   - 拖拽结束时播放音效
type SliderSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    SliderMouseInput
}

// NewSliderSystem 创建滑块交互系统
func NewSliderSystem(em *ecs.EntityManager) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    defaultSliderMouseInput,
	}
}

// NewSliderSystemWithInput 创建带自定义输入的滑块交互系统（用于测试）
func NewSliderSystemWithInput(em *ecs.EntityManager, input SliderMouseInput) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新滑块交互状态
func (s *SliderSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mousePressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if slider == nil || pos == nil {
			continue
		}

		// 滑块圆帽比滑槽高，命中区域纵向外扩一个滑块半径
		pad := slider.KnobRadius
		isInSlot := float64(mouseX) >= pos.X &&
			float64(mouseX) <= pos.X+slider.SlotWidth &&
			float64(mouseY) >= pos.Y-pad &&
			float64(mouseY) <= pos.Y+slider.SlotHeight+pad

		slider.IsHovered = isInSlot

		wasDragging := slider.IsDragging

		if mousePressed {
			if isInSlot || slider.IsDragging {
				slider.IsDragging = true

				newValue := calculateSliderValue(float64(mouseX), pos.X, slider.SlotWidth)
				if newValue != slider.Value {
					slider.Value = newValue
					if slider.OnValueChange != nil {
						slider.OnValueChange(newValue)
					}
				}
			}
		} else {
			slider.IsDragging = false

			// 真正拖拽过后的释放才有音效
			if wasDragging && slider.ClickSoundID != "" {
				if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
					audioManager.PlaySound(slider.ClickSoundID)
				}
			}
		}
	}
}

// calculateSliderValue 把指针 X 坐标换算成 0.0~1.0 的滑块值
func calculateSliderValue(mouseX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}
	v := (mouseX - slotX) / slotWidth
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
