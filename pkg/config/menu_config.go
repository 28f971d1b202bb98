package config

// 主菜单布局常量
// 菜单为双栏：左列轨道按钮（按钮下方一行战绩），右侧设置面板，底部一行提示

const (
	// MenuTitleY 标题基线 Y
	MenuTitleY = 72.0

	// MenuTitleFontSize 标题字号
	MenuTitleFontSize = 34.0

	// MenuSubtitleFontSize 副标题字号
	MenuSubtitleFontSize = 14.0

	// TrackColumnX 轨道列表左边缘 X
	TrackColumnX = 120.0

	// TrackButtonWidth 轨道按钮宽度
	TrackButtonWidth = 400.0

	// TrackButtonHeight 轨道按钮高度
	TrackButtonHeight = 52.0

	// TrackButtonGap 轨道按钮纵向间距，容纳按钮下方的战绩行
	TrackButtonGap = 20.0

	// TrackButtonFontSize 轨道按钮字号
	TrackButtonFontSize = 18.0

	// TrackListTopY 轨道列表第一个按钮的 Y
	TrackListTopY = 150.0

	// MenuFooterY 底部提示行 Y
	MenuFooterY = ScreenHeight - 30.0

	// MenuFooterFontSize 底部提示字号
	MenuFooterFontSize = 13.0

	// MenuRecordFontSize 轨道战绩行（里程/圈数/最高速度）字号
	MenuRecordFontSize = 12.0

	// MenuPanelX 设置面板左边缘 X
	MenuPanelX = 580.0

	// MenuPanelTopY 设置面板标题 Y
	MenuPanelTopY = 150.0

	// MenuPanelSliderWidth 设置面板滑动条宽度
	MenuPanelSliderWidth = 200.0

	// MenuPanelFontSize 设置面板文字字号
	MenuPanelFontSize = 13.0
)

// CalculateTrackButtonPosition 计算轨道列表第 N 个按钮的位置
// 左栏固定 X，纵向等距排列
//
// 返回：
//   - x: 按钮左上角 X
//   - y: 按钮左上角 Y
func CalculateTrackButtonPosition(index int) (x, y float64) {
	if index < 0 {
		return 0, 0
	}
	x = TrackColumnX
	y = TrackListTopY + float64(index)*(TrackButtonHeight+TrackButtonGap)
	return x, y
}
