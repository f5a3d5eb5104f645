package hopper

import (
	"github.com/decker502/roadhop/pkg/utils"
)

// LaneType 行类型
type LaneType int

const (
	LaneField  LaneType = iota // 空草地
	LaneForest                 // 草地 + 树（树所在列不可进入）
	LaneCar                    // 公路，小汽车
	LaneTruck                  // 公路，卡车
	LaneRiver                  // 河流，木头漂流
)

// String 返回行类型名称
func (t LaneType) String() string {
	switch t {
	case LaneField:
		return "field"
	case LaneForest:
		return "forest"
	case LaneCar:
		return "car"
	case LaneTruck:
		return "truck"
	case LaneRiver:
		return "river"
	default:
		return "unknown"
	}
}

// HasVehicles 是否为车辆行
func (t LaneType) HasVehicles() bool {
	return t == LaneCar || t == LaneTruck
}

// Scrolls 障碍物是否会横向移动
func (t LaneType) Scrolls() bool {
	return t == LaneCar || t == LaneTruck || t == LaneRiver
}

// Obstacle 车辆或木头
// X 为中心点横坐标（棋盘单位，棋盘中心为 0）
type Obstacle struct {
	X      float64
	Length float64
}

// Extent 障碍物的横向范围
func (o Obstacle) Extent() utils.Interval {
	return utils.IntervalAround(o.X, o.Length)
}

// Lane 棋盘上的一行
type Lane struct {
	Index int
	Type  LaneType

	// Occupied 树所在的列（仅 LaneForest）
	Occupied map[int]bool

	// Speed 障碍物移动速度（棋盘单位/毫秒，非负）
	Speed float64
	// MovesLeft 为 true 时障碍物向 -X 方向移动
	MovesLeft bool

	Obstacles []Obstacle
}

// Blocked 指定列是否被树占据
func (l *Lane) Blocked(col int) bool {
	return l.Type == LaneForest && l.Occupied[col]
}

// Velocity 带方向的障碍物速度（棋盘单位/毫秒）
func (l *Lane) Velocity() float64 {
	if l.MovesLeft {
		return -l.Speed
	}
	return l.Speed
}

// scroll 推进障碍物位置，越过 ±wrapHalf 的障碍物从另一侧出现
func (l *Lane) scroll(dtMs, wrapHalf float64) {
	if !l.Type.Scrolls() || l.Speed == 0 {
		return
	}
	dx := l.Velocity() * dtMs
	for i := range l.Obstacles {
		l.Obstacles[i].X = utils.WrapAround(l.Obstacles[i].X+dx, wrapHalf)
	}
}

// overlaps 是否有障碍物与给定范围重叠
func (l *Lane) overlaps(extent utils.Interval) bool {
	for _, o := range l.Obstacles {
		if o.Extent().Overlaps(extent) {
			return true
		}
	}
	return false
}
