package utils

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"负数", -0.5, 0},
		{"起点", 0, 0},
		{"中点", 0.5, 0.5},
		{"终点", 1, 1},
		{"超出", 1.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.input); got != tt.expected {
				t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t  float64
		expected float64
	}{
		{0, 84, 0, 0},
		{0, 84, 0.5, 42},
		{0, 84, 1, 84},
		{10, -10, 0.25, 5},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
		}
	}
}

// TestHopArc 跳跃弧线：两端为 0，中点最高，超出范围截断
func TestHopArc(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0, 0},
		{"中点", 0.5, 1},
		{"终点", 1, 0},
		{"四分之一", 0.25, math.Sqrt2 / 2},
		{"超出终点", 1.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HopArc(tt.input); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("HopArc(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}
