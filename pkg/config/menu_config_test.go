package config

import (
	"testing"
)

// TestCalculateTrackButtonPosition 测试轨道按钮排列
func TestCalculateTrackButtonPosition(t *testing.T) {
	x0, y0 := CalculateTrackButtonPosition(0)

	if x0 != TrackColumnX {
		t.Errorf("按钮0 X = %v, 期望 %v", x0, TrackColumnX)
	}
	if y0 != TrackListTopY {
		t.Errorf("按钮0 Y = %v, 期望 %v", y0, TrackListTopY)
	}

	// 纵向等距
	_, y1 := CalculateTrackButtonPosition(1)
	if got := y1 - y0; got != TrackButtonHeight+TrackButtonGap {
		t.Errorf("按钮纵向间隔 = %v, 期望 %v", got, TrackButtonHeight+TrackButtonGap)
	}

	if x, y := CalculateTrackButtonPosition(-3); x != 0 || y != 0 {
		t.Errorf("负索引应返回 (0,0), got (%v,%v)", x, y)
	}
}

// TestTrackListFitsFourEntries 测试四条内置轨道能排进屏幕
func TestTrackListFitsFourEntries(t *testing.T) {
	_, yLast := CalculateTrackButtonPosition(3)
	if bottom := yLast + TrackButtonHeight; bottom > MenuFooterY {
		t.Errorf("第四个按钮底边 %v 越过底部提示行 %v", bottom, MenuFooterY)
	}
}

// TestMenuColumnsDoNotOverlap 测试轨道列表与设置面板互不重叠
func TestMenuColumnsDoNotOverlap(t *testing.T) {
	if TrackColumnX+TrackButtonWidth >= MenuPanelX {
		t.Errorf("轨道按钮右边缘 %v 与设置面板左边缘 %v 重叠",
			TrackColumnX+TrackButtonWidth, MenuPanelX)
	}
	if MenuPanelX+MenuPanelSliderWidth > ScreenWidth {
		t.Errorf("设置面板滑动条超出屏幕: %v > %v",
			MenuPanelX+MenuPanelSliderWidth, ScreenWidth)
	}
}
