package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，输出缓动后的进度。
// 用于加载进度条、界面淡入淡出等一次性过渡动画。
// 参考 https://easings.net/

// EaseOutCubic 三次方缓出，开始快结束慢
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出，比三次方更柔和
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
