package hopper

import "github.com/decker502/roadhop/pkg/direction"

// Player 玩家（鹅）的状态
//
// Lane/Column 是逻辑格子位置，只在一次跳跃完成时更新；
// X/LanePos/Hop 是用于渲染的连续位置。
type Player struct {
	Lane   int
	Column int

	X       float64 // 横坐标（棋盘单位，棋盘中心为 0），骑木头时会偏离列中心
	LanePos float64 // 纵向位置（以行为单位），跳跃过程中为小数
	Hop     float64 // 跳跃高度
}

// step 正在进行的一次跳跃
type step struct {
	dir direction.Direction

	fromX, toX       float64
	fromLane, toLane int
	toColumn         int

	elapsed float64 // 毫秒
}

// progress 跳跃进度 [0, 1]
func (s *step) progress(stepTimeMs float64) float64 {
	p := s.elapsed / stepTimeMs
	if p > 1 {
		return 1
	}
	return p
}

// done 跳跃是否已完成
func (s *step) done(stepTimeMs float64) bool {
	return s.elapsed >= stepTimeMs
}
