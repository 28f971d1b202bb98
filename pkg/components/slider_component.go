package components

// SliderComponent 滑动条组件
// 用于速度和音量等需要滑动调整数值的UI元素
// 外观程序化绘制：圆角滑槽 + 圆形滑块
type SliderComponent struct {
	// 滑动条尺寸
	SlotWidth  float64 // 滑槽宽度
	SlotHeight float64 // 滑槽高度
	KnobRadius float64 // 滑块半径

	// 当前值（0.0 - 1.0）
	Value float64

	// 标签文字
	Label string

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否鼠标悬停

	// 回调函数
	OnValueChange func(value float64) // 值改变时的回调

	// 音效
	ClickSoundID string // 点击/开始拖拽时播放的音效ID
}
