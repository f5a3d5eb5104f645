package utils

import "math"

// 棋盘网格工具
//
// 棋盘以 X=0 为中心，共 columns 列，每列宽 cellWidth。
// 第 col 列的中心 X = col*cellWidth + cellWidth/2 - columns*cellWidth/2。

// ColumnCenterX 返回第 col 列中心的 X 坐标
// 参数:
//   - col: 列索引（允许越界，结果按同一公式外推）
//   - columns: 列数
//   - cellWidth: 单格宽度
//
// 返回:
//   - 列中心 X 坐标（棋盘中心为 0）
func ColumnCenterX(col, columns int, cellWidth float64) float64 {
	return float64(col)*cellWidth + cellWidth/2 - float64(columns)*cellWidth/2
}

// NearestColumn 返回距离 x 最近的列索引，结果截断到 [0, columns-1]
func NearestColumn(x float64, columns int, cellWidth float64) int {
	col := int(math.Round((x + float64(columns)*cellWidth/2 - cellWidth/2) / cellWidth))
	if col < 0 {
		return 0
	}
	if col >= columns {
		return columns - 1
	}
	return col
}

// ColumnInBounds 检查列索引是否在 [0, columns-1] 内
func ColumnInBounds(col, columns int) bool {
	return col >= 0 && col < columns
}
