package components

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonIcon 按钮图标类型
// 控制栏按钮除文字外可以绘制一个矢量小图标
type ButtonIcon int

const (
	// IconNone 无图标，仅文字
	IconNone ButtonIcon = iota
	// IconPlay 播放三角
	IconPlay
	// IconPause 暂停双竖线
	IconPause
	// IconFaster 加速双三角
	IconFaster
	// IconSlower 减速双三角（朝左）
	IconSlower
	// IconReverse 换向双箭头
	IconReverse
	// IconCamera 相机切换
	IconCamera
	// IconMenu 菜单三横线
	IconMenu
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 外观全部程序化绘制（圆角底板 + 矢量图标 + 文字），不依赖图片资源
//   - 支持文字自动居中显示
//   - 支持点击回调
type ButtonComponent struct {
	// ===== 按钮文字与图标 =====
	// Text 按钮上显示的文字，可为空（纯图标按钮）
	Text string
	// Icon 矢量图标类型
	Icon ButtonIcon
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色（RGBA）
	TextColor [4]uint8 // R, G, B, A

	// ===== 程序化外观 =====
	// BaseColor 正常状态底色
	BaseColor [4]uint8
	// HoverColor 悬停状态底色
	HoverColor [4]uint8
	// PressedColor 按下状态底色
	PressedColor [4]uint8

	// ===== 按钮尺寸 =====
	// Width 按钮总宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()

	// ClickSoundID 点击时播放的音效ID，空串表示静默
	ClickSoundID string
}
