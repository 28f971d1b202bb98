package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数都必须保持端点不动
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuad":    EaseOutQuad,
	}
	for name, fn := range funcs {
		if v := fn(0); math.Abs(v) > 1e-9 {
			t.Errorf("%s(0) = %v, 期望 0", name, v)
		}
		if v := fn(1); math.Abs(v-1) > 1e-9 {
			t.Errorf("%s(1) = %v, 期望 1", name, v)
		}
	}
}

// TestEasingMonotonic 缓动输出应随输入单调不减
func TestEasingMonotonic(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuad":    EaseOutQuad,
	}
	for name, fn := range funcs {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev-1e-9 {
				t.Errorf("%s not monotonic at t=%v", name, float64(i)/100)
				break
			}
			prev = v
		}
	}
}

// TestEaseOutFasterThanLinear 缓出曲线在中段应领先线性进度
func TestEaseOutFasterThanLinear(t *testing.T) {
	for _, tt := range []float64{0.25, 0.5, 0.75} {
		if EaseOutCubic(tt) <= tt {
			t.Errorf("EaseOutCubic(%v) = %v, should exceed linear", tt, EaseOutCubic(tt))
		}
		if EaseOutQuad(tt) <= tt {
			t.Errorf("EaseOutQuad(%v) = %v, should exceed linear", tt, EaseOutQuad(tt))
		}
	}
}
