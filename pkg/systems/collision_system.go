package systems

import (
	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/ecs"
)

// CollisionSystem 检测玩家与车辆的三维碰撞
// 每帧由实体当前位置重新计算碰撞盒
type CollisionSystem struct {
	em  *ecs.EntityManager
	hit ecs.EntityID
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器，用于查询玩家和车辆
//
// 返回:
//   - *CollisionSystem: 碰撞系统实例
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{em: em}
}

// Update 检测本帧是否有车辆撞到玩家
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (s *CollisionSystem) Update(deltaTime float64) {
	s.hit = 0

	players := ecs.GetEntitiesWith3[*components.RunnerPlayerComponent, *components.TransformComponent, *components.BoxColliderComponent](s.em)
	cars := ecs.GetEntitiesWith3[*components.CarComponent, *components.TransformComponent, *components.BoxColliderComponent](s.em)

	for _, playerID := range players {
		playerPos, _ := ecs.GetComponent[*components.TransformComponent](s.em, playerID)
		playerCol, _ := ecs.GetComponent[*components.BoxColliderComponent](s.em, playerID)
		playerBox := playerCol.WorldBox(playerPos.Position)

		for _, carID := range cars {
			if s.em.IsMarkedForDestroy(carID) {
				continue
			}
			carPos, _ := ecs.GetComponent[*components.TransformComponent](s.em, carID)
			carCol, _ := ecs.GetComponent[*components.BoxColliderComponent](s.em, carID)

			if playerBox.Intersects(carCol.WorldBox(carPos.Position)) {
				s.hit = carID
				return
			}
		}
	}
}

// Hit 本帧撞到玩家的车辆
// 返回: 车辆实体ID，以及是否发生了碰撞
func (s *CollisionSystem) Hit() (ecs.EntityID, bool) {
	return s.hit, s.hit != 0
}
