package components

import "github.com/decker502/roadhop/pkg/utils"

// CameraComponent 连续模式的镜头
// 由 CameraFollowSystem 每帧根据玩家位置更新
type CameraComponent struct {
	// Position 镜头位置（世界坐标）
	Position utils.Vec3

	// LookAt 镜头注视点，始终为玩家在地面上的投影
	LookAt utils.Vec3
}
