package utils

import "math"

// WrapAround 将坐标折回 [-half, half) 区间
//
// 越过一侧边界的物体从另一侧出现，折回前后的坐标模 2*half 同余，
// 因此无论一帧移动多远，物体的表观运动都是连续的。
//
// 参数:
//   - x: 当前坐标
//   - half: 区间半宽（必须为正）
//
// 返回:
//   - 折回后的坐标
func WrapAround(x, half float64) float64 {
	if x >= -half && x < half {
		return x
	}
	span := 2 * half
	m := math.Mod(x+half, span)
	if m < 0 {
		m += span
	}
	return m - half
}
