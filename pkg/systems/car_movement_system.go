package systems

import (
	"math"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/ecs"
)

// CarMovementSystem 车辆横向行驶，驶出 DespawnX 后移除
type CarMovementSystem struct {
	em  *ecs.EntityManager
	cfg config.RunnerConfig
}

// NewCarMovementSystem 创建车辆移动系统
func NewCarMovementSystem(em *ecs.EntityManager, cfg config.RunnerConfig) *CarMovementSystem {
	return &CarMovementSystem{em: em, cfg: cfg}
}

// Update 移动所有车辆
//
// 参数:
//   - dt: 自上一帧以来经过的时间（秒）
func (s *CarMovementSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.CarComponent, *components.TransformComponent](s.em) {
		car, _ := ecs.GetComponent[*components.CarComponent](s.em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)

		tr.Position.X += car.Speed * dt
		if math.Abs(tr.Position.X) > s.cfg.DespawnX {
			s.em.DestroyEntity(id)
		}
	}
}
