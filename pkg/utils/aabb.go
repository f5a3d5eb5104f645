package utils

// Interval 一维闭区间 [Min, Max]
type Interval struct {
	Min, Max float64
}

// IntervalAround 以 center 为中心、宽度为 width 的区间
func IntervalAround(center, width float64) Interval {
	return Interval{Min: center - width/2, Max: center + width/2}
}

// Overlaps 两个区间是否严格重叠（仅端点相接不算重叠）
func (a Interval) Overlaps(b Interval) bool {
	return a.Min < b.Max && b.Min < a.Max
}

// Contains 点是否位于区间内（含端点）
func (a Interval) Contains(x float64) bool {
	return x >= a.Min && x <= a.Max
}

// Vec3 三维向量
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量相加
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale 向量数乘
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Box3 轴对齐包围盒
type Box3 struct {
	Min, Max Vec3
}

// Box3FromCenterSize 根据中心点和尺寸构造包围盒
func Box3FromCenterSize(center, size Vec3) Box3 {
	half := size.Scale(0.5)
	return Box3{
		Min: Vec3{X: center.X - half.X, Y: center.Y - half.Y, Z: center.Z - half.Z},
		Max: Vec3{X: center.X + half.X, Y: center.Y + half.Y, Z: center.Z + half.Z},
	}
}

// Intersects 两个包围盒是否相交
// 与常见 3D 引擎一致，表面相接也视为相交
func (b Box3) Intersects(o Box3) bool {
	if b.Max.X < o.Min.X || b.Min.X > o.Max.X {
		return false
	}
	if b.Max.Y < o.Min.Y || b.Min.Y > o.Max.Y {
		return false
	}
	if b.Max.Z < o.Min.Z || b.Min.Z > o.Max.Z {
		return false
	}
	return true
}
