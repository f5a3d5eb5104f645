package components

// LaneKind 连续模式的行类型
type LaneKind int

const (
	LaneGrass LaneKind = iota
	LaneRoad
)

// String 返回行类型名称
func (k LaneKind) String() string {
	if k == LaneRoad {
		return "road"
	}
	return "grass"
}

// RoadLaneComponent 连续模式中的一行（公路或草地）
//
// 行沿 -Z 方向依次排列，Index 从 0 开始递增。
type RoadLaneComponent struct {
	Index int
	Z     float64
	Kind  LaneKind

	// GrassPatches 草地上装饰草丛的 X 坐标（生成时随机决定，仅用于渲染）
	GrassPatches []float64
}
