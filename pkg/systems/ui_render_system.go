package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/game"
)

// 控制栏视觉常量
var (
	// 按钮边框颜色
	buttonBorderColor = color.RGBA{R: 110, G: 116, B: 130, A: 255}

	// 按钮禁用状态底色
	buttonDisabledColor = color.RGBA{R: 52, G: 54, B: 60, A: 255}

	// 滑槽颜色
	sliderSlotColor = color.RGBA{R: 58, G: 62, B: 72, A: 255}

	// 滑槽已填充部分颜色
	sliderFillColor = color.RGBA{R: 86, G: 156, B: 214, A: 255}

	// 滑块颜色
	sliderKnobColor = color.RGBA{R: 220, G: 224, B: 232, A: 255}

	// 滑块悬停/拖拽时颜色
	sliderKnobActiveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// 复选框方框颜色
	checkboxBoxColor = color.RGBA{R: 58, G: 62, B: 72, A: 255}

	// 复选框边框颜色
	checkboxBorderColor = color.RGBA{R: 110, G: 116, B: 130, A: 255}

	// 复选框悬停边框颜色
	checkboxHoverBorderColor = color.RGBA{R: 170, G: 178, B: 192, A: 255}

	// 对勾颜色
	checkboxCheckColor = color.RGBA{R: 120, G: 200, B: 120, A: 255}

	// 滑动条/复选框标签文字颜色
	uiLabelColor = color.RGBA{R: 210, G: 214, B: 222, A: 255}
)

// 滑动条/复选框标签字体大小
const uiLabelFontSize = 13.0

// UIRenderSystem 控件渲染系统
// 绘制按钮、滑动条、复选框和静态标签
// 外观全部程序化绘制（矩形、线段、圆），不依赖图片资源
type UIRenderSystem struct {
	entityManager *ecs.EntityManager
	labelFont     *text.GoTextFace // 滑动条/复选框标签字体
}

// NewUIRenderSystem 创建控件渲染系统
func NewUIRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *UIRenderSystem {
	return &UIRenderSystem{
		entityManager: em,
		labelFont:     rm.FontFace(uiLabelFontSize),
	}
}

// Draw 渲染所有可见控件
func (s *UIRenderSystem) Draw(screen *ebiten.Image) {
	s.drawButtons(screen)
	s.drawSliders(screen)
	s.drawCheckboxes(screen)
	s.drawLabels(screen)
}

// ===== 按钮 =====

func (s *UIRenderSystem) drawButtons(screen *ebiten.Image) {
	buttons := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ButtonComponent](s.entityManager)

	for _, entityID := range buttons {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if pos == nil || button == nil {
			continue
		}
		s.drawButton(screen, pos, button)
	}
}

func (s *UIRenderSystem) drawButton(screen *ebiten.Image, pos *components.PositionComponent, button *components.ButtonComponent) {
	x := float32(pos.X)
	y := float32(pos.Y)
	w := float32(button.Width)
	h := float32(button.Height)

	// 按状态选择底色
	bg := rgba(button.BaseColor)
	switch {
	case !button.Enabled || button.State == components.UIDisabled:
		bg = buttonDisabledColor
	case button.State == components.UIClicked:
		bg = rgba(button.PressedColor)
	case button.State == components.UIHovered:
		bg = rgba(button.HoverColor)
	}

	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, buttonBorderColor, true)

	iconColor := rgba(button.TextColor)
	if !button.Enabled || button.State == components.UIDisabled {
		iconColor.A /= 2
	}

	// 图标 + 文字：图标靠左，文字在剩余区域居中
	// 仅图标或仅文字：整体居中
	centerX := pos.X + button.Width/2
	centerY := pos.Y + button.Height/2
	if button.Icon != components.IconNone {
		iconSize := float32(button.Height) * 0.42
		if button.Text == "" {
			s.drawIcon(screen, button.Icon, float32(centerX), float32(centerY), iconSize, iconColor)
		} else {
			iconCX := x + h/2
			s.drawIcon(screen, button.Icon, iconCX, float32(centerY), iconSize, iconColor)
			centerX = pos.X + button.Height + (button.Width-button.Height)/2
		}
	}

	if button.Text != "" && button.Font != nil {
		s.drawButtonText(screen, button, centerX, centerY, iconColor)
	}
}

// drawButtonText 绘制按钮文字（居中，带阴影）
func (s *UIRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, centerX, centerY float64, clr color.RGBA) {
	shadowOffset := 1.0
	// 为了让"文字+阴影"整体看起来垂直居中，将主文字向上偏移阴影的一半
	visualCenterOffsetY := -shadowOffset / 2.0

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffset, centerY+shadowOffset+visualCenterOffsetY)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 160})
	text.Draw(screen, button.Text, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(centerX, centerY+visualCenterOffsetY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, button.Text, button.Font, op)
}

// drawIcon 绘制矢量小图标，size 为图标边长
func (s *UIRenderSystem) drawIcon(screen *ebiten.Image, icon components.ButtonIcon, cx, cy, size float32, clr color.RGBA) {
	h := size / 2 // 半边长
	const sw = 2.0

	switch icon {
	case components.IconPlay:
		// 右指三角
		x0, y0 := cx-h*0.6, cy-h
		x1, y1 := cx-h*0.6, cy+h
		x2, y2 := cx+h*0.9, cy
		vector.StrokeLine(screen, x0, y0, x1, y1, sw, clr, true)
		vector.StrokeLine(screen, x1, y1, x2, y2, sw, clr, true)
		vector.StrokeLine(screen, x2, y2, x0, y0, sw, clr, true)

	case components.IconPause:
		// 两根粗竖线
		vector.StrokeLine(screen, cx-h*0.45, cy-h, cx-h*0.45, cy+h, 3, clr, true)
		vector.StrokeLine(screen, cx+h*0.45, cy-h, cx+h*0.45, cy+h, 3, clr, true)

	case components.IconFaster:
		// 右指双箭头
		s.drawChevron(screen, cx-h*0.85, cy, h, 1, clr)
		s.drawChevron(screen, cx+h*0.15, cy, h, 1, clr)

	case components.IconSlower:
		// 左指双箭头
		s.drawChevron(screen, cx+h*0.85, cy, h, -1, clr)
		s.drawChevron(screen, cx-h*0.15, cy, h, -1, clr)

	case components.IconReverse:
		// 上行右箭头 + 下行左箭头
		yTop := cy - h*0.45
		yBot := cy + h*0.45
		vector.StrokeLine(screen, cx-h, yTop, cx+h, yTop, sw, clr, true)
		vector.StrokeLine(screen, cx+h, yTop, cx+h*0.35, yTop-h*0.4, sw, clr, true)
		vector.StrokeLine(screen, cx+h, yTop, cx+h*0.35, yTop+h*0.4, sw, clr, true)
		vector.StrokeLine(screen, cx-h, yBot, cx+h, yBot, sw, clr, true)
		vector.StrokeLine(screen, cx-h, yBot, cx-h*0.35, yBot-h*0.4, sw, clr, true)
		vector.StrokeLine(screen, cx-h, yBot, cx-h*0.35, yBot+h*0.4, sw, clr, true)

	case components.IconCamera:
		// 机身 + 取景凸起 + 镜头
		vector.DrawFilledRect(screen, cx-h*0.35, cy-h*0.85, h*0.7, h*0.3, clr, true)
		vector.StrokeRect(screen, cx-h, cy-h*0.55, h*2, h*1.35, sw, clr, true)
		vector.DrawFilledCircle(screen, cx, cy+h*0.1, h*0.38, clr, true)

	case components.IconMenu:
		// 三根横线
		vector.StrokeLine(screen, cx-h*0.8, cy-h*0.55, cx+h*0.8, cy-h*0.55, sw, clr, true)
		vector.StrokeLine(screen, cx-h*0.8, cy, cx+h*0.8, cy, sw, clr, true)
		vector.StrokeLine(screen, cx-h*0.8, cy+h*0.55, cx+h*0.8, cy+h*0.55, sw, clr, true)
	}
}

// drawChevron 绘制单个箭头折线，dir 为 +1 右指、-1 左指
func (s *UIRenderSystem) drawChevron(screen *ebiten.Image, x, cy, h float32, dir float32, clr color.RGBA) {
	tipX := x + dir*h*0.8
	vector.StrokeLine(screen, x, cy-h, tipX, cy, 2, clr, true)
	vector.StrokeLine(screen, tipX, cy, x, cy+h, 2, clr, true)
}

// ===== 滑动条 =====

func (s *UIRenderSystem) drawSliders(screen *ebiten.Image) {
	sliders := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SliderComponent](s.entityManager)

	for _, entityID := range sliders {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		if pos == nil || slider == nil {
			continue
		}
		s.drawSlider(screen, pos, slider)
	}
}

func (s *UIRenderSystem) drawSlider(screen *ebiten.Image, pos *components.PositionComponent, slider *components.SliderComponent) {
	x := float32(pos.X)
	y := float32(pos.Y)
	w := float32(slider.SlotWidth)
	h := float32(slider.SlotHeight)

	// 滑槽 + 已填充部分
	vector.DrawFilledRect(screen, x, y, w, h, sliderSlotColor, true)
	fill := float32(clampValue(slider.Value)) * w
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, h, sliderFillColor, true)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, buttonBorderColor, true)

	// 滑块圆帽
	knobColor := sliderKnobColor
	knobRadius := float32(slider.KnobRadius)
	if slider.IsDragging || slider.IsHovered {
		knobColor = sliderKnobActiveColor
		knobRadius *= 1.15
	}
	knobX := x + fill
	knobY := y + h/2
	vector.DrawFilledCircle(screen, knobX, knobY, knobRadius, knobColor, true)

	// 标签在滑槽上方
	if slider.Label != "" && s.labelFont != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.SecondaryAlign = text.AlignEnd
		op.GeoM.Translate(pos.X, pos.Y-4)
		op.ColorScale.ScaleWithColor(uiLabelColor)
		text.Draw(screen, slider.Label, s.labelFont, op)
	}
}

// ===== 复选框 =====

func (s *UIRenderSystem) drawCheckboxes(screen *ebiten.Image) {
	checkboxes := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CheckboxComponent](s.entityManager)

	for _, entityID := range checkboxes {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, entityID)
		if pos == nil || checkbox == nil {
			continue
		}
		s.drawCheckbox(screen, pos, checkbox)
	}
}

func (s *UIRenderSystem) drawCheckbox(screen *ebiten.Image, pos *components.PositionComponent, checkbox *components.CheckboxComponent) {
	x := float32(pos.X)
	y := float32(pos.Y)
	size := float32(checkbox.BoxSize)

	border := checkboxBorderColor
	if checkbox.IsHovered {
		border = checkboxHoverBorderColor
	}

	vector.DrawFilledRect(screen, x, y, size, size, checkboxBoxColor, true)
	vector.StrokeRect(screen, x, y, size, size, 1, border, true)

	// 对勾：两段折线
	if checkbox.IsChecked {
		vector.StrokeLine(screen, x+size*0.22, y+size*0.52, x+size*0.42, y+size*0.74, 2, checkboxCheckColor, true)
		vector.StrokeLine(screen, x+size*0.42, y+size*0.74, x+size*0.80, y+size*0.26, 2, checkboxCheckColor, true)
	}

	// 标签在方框右侧，垂直居中
	if checkbox.Label != "" && s.labelFont != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(pos.X+checkbox.BoxSize+6, pos.Y+checkbox.BoxSize/2)
		op.ColorScale.ScaleWithColor(uiLabelColor)
		text.Draw(screen, checkbox.Label, s.labelFont, op)
	}
}

// ===== 标签 =====

func (s *UIRenderSystem) drawLabels(screen *ebiten.Image) {
	labels := ecs.GetEntitiesWith2[*components.PositionComponent, *components.LabelComponent](s.entityManager)

	for _, entityID := range labels {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, entityID)
		if pos == nil || label == nil || label.Text == "" || label.Font == nil {
			continue
		}

		op := &text.DrawOptions{}
		switch label.Align {
		case components.AlignCenter:
			op.LayoutOptions.PrimaryAlign = text.AlignCenter
		case components.AlignRight:
			op.LayoutOptions.PrimaryAlign = text.AlignEnd
		}
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleWithColor(rgba(label.Color))
		text.Draw(screen, label.Text, label.Font, op)
	}
}

// rgba 把组件里的 [4]uint8 转成 color.RGBA
func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// clampValue 把滑动条值限制到 [0,1]
func clampValue(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
