//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 的返回值
func TestIsMobile_Desktop(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"未设置", "", false},
		{"强制移动模式", "1", true},
		{"其他值", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ROADHOP_MOBILE_EMULATE", tt.env)
			if got := IsMobile(); got != tt.want {
				t.Errorf("IsMobile() = %v, want %v", got, tt.want)
			}
		})
	}
}
