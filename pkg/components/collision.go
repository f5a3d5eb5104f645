package components

import "github.com/decker502/roadhop/pkg/utils"

// BoxColliderComponent 定义实体的三维碰撞盒
// 碰撞盒随实体位置移动，每帧由 TransformComponent 重新计算世界坐标
type BoxColliderComponent struct {
	Size   utils.Vec3 // 碰撞盒尺寸
	Center utils.Vec3 // 碰撞盒中心相对实体原点的偏移，例如 Y 为高度的一半表示底面贴地
}

// WorldBox 返回实体位于 pos 时碰撞盒的世界坐标
func (c *BoxColliderComponent) WorldBox(pos utils.Vec3) utils.Box3 {
	return utils.Box3FromCenterSize(pos.Add(c.Center), c.Size)
}
