package utils

import (
	"math"
	"testing"
)

func TestWrapAround(t *testing.T) {
	const half = 441.0

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"区间内", 100, 100},
		{"左边界", -441, -441},
		{"越过右边界", 445, -437},
		{"越过左边界", -450, 432},
		{"跨越多个周期", 441 + 882*2 + 1, -440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAround(tt.x, half)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("WrapAround(%v) = %v, 期望 %v", tt.x, got, tt.expected)
			}
		})
	}
}

// TestWrapAroundCongruence 折回前后坐标模区间宽度同余
func TestWrapAroundCongruence(t *testing.T) {
	const half = 441.0
	for x := -3000.0; x <= 3000; x += 37.5 {
		got := WrapAround(x, half)
		if got < -half || got >= half {
			t.Fatalf("WrapAround(%v) = %v 不在 [-%v, %v) 内", x, got, half, half)
		}
		diff := (x - got) / (2 * half)
		if math.Abs(diff-math.Round(diff)) > 1e-9 {
			t.Errorf("WrapAround(%v) = %v, 差值 %v 不是区间宽度的整数倍", x, got, x-got)
		}
	}
}
