package config

// Loading Scene 配置常量

const (
	// LoadingBarWidth 进度条宽度
	LoadingBarWidth float64 = 320

	// LoadingBarHeight 进度条高度
	LoadingBarHeight float64 = 14

	// LoadingBarY 进度条上边缘 Y
	LoadingBarY float64 = ScreenHeight/2 + 40

	// LoadingMinSeconds 加载场景最短展示时长（秒）
	// 几何生成很快，短暂停留让进度动画走完
	LoadingMinSeconds = 0.9

	// LoadingTitleFontSize 加载标题字号
	LoadingTitleFontSize = 26.0

	// LoadingHintFontSize 加载提示字号
	LoadingHintFontSize = 14.0
)
