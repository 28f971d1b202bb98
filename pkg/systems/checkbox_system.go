package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/utils"
)

// CheckboxMouseInput 复选框系统指针输入接口
// 用于依赖注入，支持测试时 mock
type CheckboxMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// ebitenCheckboxMouseInput Ebitengine 默认实现
type ebitenCheckboxMouseInput struct{}

func (e *ebitenCheckboxMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenCheckboxMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	released, _, _ := utils.IsPointerJustReleased()
	return released
}

// defaultCheckboxMouseInput 默认指针输入实例
var defaultCheckboxMouseInput CheckboxMouseInput = &ebitenCheckboxMouseInput{}

// CheckboxSystem 复选框交互系统
// 负责处理复选框的点击切换
//
// 职责：
//   - 检测指针是否在方框区域内
//   - 指针在区域内释放时切换 IsChecked 并调用 OnToggle 回调
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    CheckboxMouseInput
}

// NewCheckboxSystem 创建复选框交互系统
func NewCheckboxSystem(em *ecs.EntityManager) *CheckboxSystem {
	return &CheckboxSystem{
		entityManager: em,
		mouseInput:    defaultCheckboxMouseInput,
	}
}

// NewCheckboxSystemWithInput 创建带自定义输入的复选框交互系统（用于测试）
func NewCheckboxSystemWithInput(em *ecs.EntityManager, input CheckboxMouseInput) *CheckboxSystem {
	return &CheckboxSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新复选框交互状态
func (s *CheckboxSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mouseJustReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if checkbox == nil || pos == nil {
			continue
		}

		isInBox := float64(mouseX) >= pos.X &&
			float64(mouseX) <= pos.X+checkbox.BoxSize &&
			float64(mouseY) >= pos.Y &&
			float64(mouseY) <= pos.Y+checkbox.BoxSize

		checkbox.IsHovered = isInBox

		if mouseJustReleased && isInBox {
			checkbox.IsChecked = !checkbox.IsChecked

			if checkbox.ClickSoundID != "" {
				if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
					audioManager.PlaySound(checkbox.ClickSoundID)
				}
			}

			if checkbox.OnToggle != nil {
				checkbox.OnToggle(checkbox.IsChecked)
			}
		}
	}
}
