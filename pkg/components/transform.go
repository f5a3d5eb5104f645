package components

import "github.com/decker502/roadhop/pkg/utils"

// TransformComponent 实体在世界中的位置
//
// 连续模式使用右手坐标系：X 向右，Y 向上，玩家前进方向为 -Z。
type TransformComponent struct {
	Position utils.Vec3
}
