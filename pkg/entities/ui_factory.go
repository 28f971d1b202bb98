package entities

import (
	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/game"
)

// 控制栏控件的统一配色，按钮三态底色依次变亮/变暗
var (
	controlButtonBase    = [4]uint8{52, 56, 68, 255}
	controlButtonHover   = [4]uint8{66, 72, 88, 255}
	controlButtonPressed = [4]uint8{40, 44, 54, 255}
	controlButtonText    = [4]uint8{230, 232, 238, 255}
)

// NewControlButton 创建控制栏按钮实体（程序化外观：底板 + 矢量图标 + 文字）
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源管理器（提供字体）
//   - x, y: 按钮左上角位置（屏幕坐标）
//   - width, height: 按钮尺寸
//   - text: 按钮文字，可为空（纯图标按钮）
//   - icon: 矢量图标类型
//   - fontSize: 文字大小
//   - clickSoundID: 点击音效ID，空串静默
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewControlButton(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	x, y float64,
	width, height float64,
	text string,
	icon components.ButtonIcon,
	fontSize float64,
	clickSoundID string,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:         text,
		Icon:         icon,
		Font:         rm.FontFace(fontSize),
		TextColor:    controlButtonText,
		BaseColor:    controlButtonBase,
		HoverColor:   controlButtonHover,
		PressedColor: controlButtonPressed,
		Width:        width,
		Height:       height,
		State:        components.UINormal,
		Enabled:      true,
		OnClick:      onClick,
		ClickSoundID: clickSoundID,
	})

	// UI 组件标记（方便过滤）
	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity
}

// NewSpeedSlider 创建速度滑动条实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 滑槽左上角位置（屏幕坐标）
//   - slotWidth, slotHeight: 滑槽尺寸
//   - knobRadius: 滑块半径
//   - label: 滑槽上方的标签文字
//   - initial: 初始值（0.0 - 1.0）
//   - clickSoundID: 开始拖拽音效ID
//   - onValueChange: 值改变回调
//
// 返回：
//   - 滑动条实体ID
func NewSpeedSlider(
	em *ecs.EntityManager,
	x, y float64,
	slotWidth, slotHeight float64,
	knobRadius float64,
	label string,
	initial float64,
	clickSoundID string,
	onValueChange func(value float64),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.SliderComponent{
		SlotWidth:     slotWidth,
		SlotHeight:    slotHeight,
		KnobRadius:    knobRadius,
		Value:         initial,
		Label:         label,
		OnValueChange: onValueChange,
		ClickSoundID:  clickSoundID,
	})

	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity
}

// NewToggle 创建复选框实体（方框 + 对勾 + 右侧标签）
//
// 参数：
//   - em: 实体管理器
//   - x, y: 方框左上角位置（屏幕坐标）
//   - boxSize: 方框边长
//   - label: 方框右侧的标签文字
//   - checked: 初始勾选状态
//   - clickSoundID: 切换音效ID
//   - onToggle: 切换回调
//
// 返回：
//   - 复选框实体ID
func NewToggle(
	em *ecs.EntityManager,
	x, y float64,
	boxSize float64,
	label string,
	checked bool,
	clickSoundID string,
	onToggle func(isChecked bool),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.CheckboxComponent{
		BoxSize:      boxSize,
		IsChecked:    checked,
		Label:        label,
		OnToggle:     onToggle,
		ClickSoundID: clickSoundID,
	})

	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity
}

// NewScreenLabel 创建静态文本标签实体
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源管理器（提供字体）
//   - x, y: 锚点位置（对齐方式决定锚点含义）
//   - text: 显示文字
//   - fontSize: 文字大小
//   - textColor: 文字颜色 [R, G, B, A]
//   - align: 水平对齐
//
// 返回：
//   - 标签实体ID
func NewScreenLabel(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	x, y float64,
	text string,
	fontSize float64,
	textColor [4]uint8,
	align components.LabelAlign,
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:  text,
		Font:  rm.FontFace(fontSize),
		Color: textColor,
		Align: align,
	})

	return entity
}
