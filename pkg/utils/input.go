// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 指针抽象：把鼠标与触摸统一成一个"指针"。
// 桌面端走鼠标路径，移动端与触屏走触摸路径，交互系统不必区分两者。

// GetPointerPosition 获取当前指针位置（触摸优先，其次鼠标）
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（触摸或鼠标左键）
func IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// 最后一次触摸位置。触摸释放的瞬间位置已不可查，
// 需要在按下与移动过程中持续记录。
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 记录最后一次触摸位置，应每帧调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustPressed 检查指针是否刚按下，并返回按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// IsPointerJustReleased 检查指针是否刚释放，并返回释放位置
// 触摸释放时返回记录的最后触摸位置
func IsPointerJustReleased() (bool, int, int) {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true, lastTouchX, lastTouchY
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// IsTouchDevice 当前是否有活动触摸
func IsTouchDevice() bool {
	return len(ebiten.AppendTouchIDs(nil)) > 0
}
