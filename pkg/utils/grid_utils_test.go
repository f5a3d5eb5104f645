package utils

import (
	"math"
	"testing"
)

const (
	testColumns   = 17
	testCellWidth = 42.0
)

// TestColumnCenterX 中间列位于棋盘中心，两端列对称
func TestColumnCenterX(t *testing.T) {
	tests := []struct {
		name     string
		col      int
		expected float64
	}{
		{"最左列", 0, -336},
		{"中间列", 8, 0},
		{"最右列", 16, 336},
		{"中间偏右", 9, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnCenterX(tt.col, testColumns, testCellWidth)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ColumnCenterX(%d) = %v, 期望 %v", tt.col, got, tt.expected)
			}
		})
	}
}

func TestNearestColumn(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected int
	}{
		{"中心", 0, 8},
		{"略偏左", -15, 8},
		{"过半格", -25, 7},
		{"最右列中心", 336, 16},
		{"左侧越界", -500, 0},
		{"右侧越界", 900, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestColumn(tt.x, testColumns, testCellWidth)
			if got != tt.expected {
				t.Errorf("NearestColumn(%v) = %d, 期望 %d", tt.x, got, tt.expected)
			}
		})
	}
}

// TestColumnRoundTrip 列中心坐标转换回来应得到同一列
func TestColumnRoundTrip(t *testing.T) {
	for col := 0; col < testColumns; col++ {
		x := ColumnCenterX(col, testColumns, testCellWidth)
		if got := NearestColumn(x, testColumns, testCellWidth); got != col {
			t.Errorf("往返转换失败: col %d -> x %v -> col %d", col, x, got)
		}
	}
}

func TestColumnInBounds(t *testing.T) {
	if ColumnInBounds(-1, testColumns) || ColumnInBounds(testColumns, testColumns) {
		t.Error("越界列不应视为有效")
	}
	if !ColumnInBounds(0, testColumns) || !ColumnInBounds(testColumns-1, testColumns) {
		t.Error("边界列应视为有效")
	}
}
