package components

// CheckboxComponent 复选框组件
// 用于开关选项（如线框模式、地面网格、自动环绕）
// 外观程序化绘制：方框 + 对勾
type CheckboxComponent struct {
	// BoxSize 方框边长（像素）
	BoxSize float64

	// 当前状态
	IsChecked bool

	// 标签文字
	Label string

	// IsHovered 是否鼠标悬停
	IsHovered bool

	// 回调函数
	OnToggle func(isChecked bool) // 状态切换时的回调

	// 音效
	ClickSoundID string // 切换时播放的音效ID
}
