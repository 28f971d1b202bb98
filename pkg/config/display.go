package config

// 显示配置常量
// 逻辑分辨率固定，窗口缩放由 Ebitengine 的 Layout 处理

const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 960

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 540

	// WindowTitle 窗口标题
	WindowTitle = "Coaster"

	// AudioSampleRate 全局音频采样率（Hz）
	AudioSampleRate = 48000
)
