package components

import "github.com/decker502/roadhop/pkg/utils"

// RunnerPlayerComponent 连续模式的玩家移动状态
//
// 玩家一次移动一格，移动过程中不接受新的移动。
type RunnerPlayerComponent struct {
	Target utils.Vec3 // 目标位置（只使用 X、Z）
	Moving bool
}
