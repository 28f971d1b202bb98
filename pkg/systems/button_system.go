package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/utils"
)

// ButtonMouseInput 按钮系统指针输入接口
// 用于依赖注入，支持测试时 mock
type ButtonMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// ebitenButtonMouseInput Ebitengine 默认实现
type ebitenButtonMouseInput struct{}

func (e *ebitenButtonMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenButtonMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return utils.IsPointerPressed()
}

func (e *ebitenButtonMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	released, _, _ := utils.IsPointerJustReleased()
	return released
}

// defaultButtonMouseInput 默认指针输入实例
var defaultButtonMouseInput ButtonMouseInput = &ebitenButtonMouseInput{}

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下与点击
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测按下（状态 UIClicked，仅影响外观）
//   - 在按钮范围内释放指针时触发 OnClick 回调
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    ButtonMouseInput
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		mouseInput:    defaultButtonMouseInput,
	}
}

// NewButtonSystemWithInput 创建带自定义输入的按钮交互系统（用于测试）
func NewButtonSystemWithInput(em *ecs.EntityManager, input ButtonMouseInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mousePressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mouseReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if button == nil || pos == nil {
			continue
		}

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		isHovered := s.isMouseInButton(float64(mouseX), float64(mouseY), pos.X, pos.Y, button.Width, button.Height)

		if isHovered {
			if mousePressed {
				button.State = components.UIClicked
			} else if mouseReleased {
				// 释放瞬间触发回调
				s.playClickSound(button)
				if button.OnClick != nil {
					button.OnClick()
				}
				button.State = components.UIHovered
			} else {
				button.State = components.UIHovered
			}
		} else {
			button.State = components.UINormal
		}
	}
}

// isMouseInButton 检测指针是否在按钮范围内
func (s *ButtonSystem) isMouseInButton(mouseX, mouseY, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return mouseX >= buttonX &&
		mouseX <= buttonX+buttonWidth &&
		mouseY >= buttonY &&
		mouseY <= buttonY+buttonHeight
}

// playClickSound 播放按钮点击音效
func (s *ButtonSystem) playClickSound(button *components.ButtonComponent) {
	if button.ClickSoundID == "" {
		return
	}
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlaySound(button.ClickSoundID)
	}
}
