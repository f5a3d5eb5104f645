// Package direction 定义四个移动方向意图
//
// 不依赖任何图形库，模拟层（hopper、runner）和输入层共用。
package direction

// Direction 移动方向意图
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Directions 全部方向，按固定顺序
var Directions = [...]Direction{Forward, Backward, Left, Right}

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta 返回该方向在网格上的位移
// 返回:
//   - dLane: 行变化（前进 +1）
//   - dCol: 列变化（向右 +1）
func (d Direction) Delta() (dLane, dCol int) {
	switch d {
	case Forward:
		return 1, 0
	case Backward:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Horizontal 是否为左右移动
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}
