package utils

import "math"

// 缓动与插值函数
//
// 所有函数接受一个进度值 t，超出 [0, 1] 的部分会被截断。

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// HopArc 跳跃高度曲线
// 公式：f(t) = sin(t·π)，起点和终点为 0，中点为 1
func HopArc(t float64) float64 {
	return math.Sin(Clamp01(t) * math.Pi)
}
