package config

// UI 布局相关的常量配置
// 控制栏贴在屏幕底部，从左到右依次是：
// 菜单、暂停/继续、换向、减速、加速、速度滑条、相机切换、显示开关组

const (
	// ControlBarHeight 控制栏高度（像素）
	ControlBarHeight = 64.0

	// ControlBarTop 控制栏上边缘的屏幕 Y
	// 相机系统用它屏蔽控制栏区域内的拖拽
	ControlBarTop = ScreenHeight - ControlBarHeight

	// ControlBarMargin 控制栏左右留白
	ControlBarMargin = 12.0

	// ControlButtonSize 控制按钮边长（方形按钮）
	ControlButtonSize = 44.0

	// ControlButtonGap 相邻按钮间距
	ControlButtonGap = 8.0

	// ControlButtonY 控制按钮的屏幕 Y（在栏内垂直居中）
	ControlButtonY = ControlBarTop + (ControlBarHeight-ControlButtonSize)/2
)

// 速度滑条布局
const (
	// SpeedSliderX 滑槽左边缘
	SpeedSliderX = 280.0

	// SpeedSliderY 滑槽上边缘
	SpeedSliderY = 510.0

	// SpeedSliderWidth 滑槽宽度
	SpeedSliderWidth = 170.0

	// SpeedSliderHeight 滑槽高度
	SpeedSliderHeight = 8.0

	// SpeedSliderKnobRadius 滑块半径
	SpeedSliderKnobRadius = 9.0
)

// CameraButtonX 相机切换按钮的 X（在滑条右侧）
const CameraButtonX = 474.0

// 显示开关组布局（线框、网格、自动环绕）
const (
	// CheckboxBoxSize 复选框边长
	CheckboxBoxSize = 16.0

	// CheckboxY 复选框的屏幕 Y（在栏内垂直居中）
	CheckboxY = ControlBarTop + (ControlBarHeight-CheckboxBoxSize)/2

	// WireframeCheckboxX 线框开关 X
	WireframeCheckboxX = 620.0

	// GridCheckboxX 地面网格开关 X
	GridCheckboxX = 724.0

	// AutoOrbitCheckboxX 自动环绕开关 X
	AutoOrbitCheckboxX = 794.0
)

// CalculateControlButtonPosition 计算控制栏左侧第 N 个按钮的位置
// 索引顺序：0=菜单, 1=暂停/继续, 2=换向, 3=减速, 4=加速
//
// 返回：
//   - x: 按钮 X 坐标
//   - y: 按钮 Y 坐标
func CalculateControlButtonPosition(buttonIndex int) (x, y float64) {
	if buttonIndex < 0 {
		return 0, 0
	}
	x = ControlBarMargin + float64(buttonIndex)*(ControlButtonSize+ControlButtonGap)
	return x, ControlButtonY
}
