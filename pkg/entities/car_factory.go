package entities

import (
	"fmt"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/ecs"
	"github.com/decker502/roadhop/pkg/utils"
)

// NewCarEntity 创建车辆实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 连续模式配置（碰撞盒、基准高度）
//   - lane: 所在行索引
//   - x, z: 初始位置
//   - speed: X 方向速度（世界单位/秒），负值向左
//   - color: 配色索引 [0, components.CarColorCount)
//
// 返回:
//   - ecs.EntityID: 车辆实体ID
//   - error: 参数无效
func NewCarEntity(
	em *ecs.EntityManager,
	cfg config.RunnerConfig,
	lane int,
	x, z, speed float64,
	color int,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if color < 0 || color >= components.CarColorCount {
		return 0, fmt.Errorf("invalid car color %d, must be between 0 and %d", color, components.CarColorCount-1)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: utils.Vec3{X: x, Y: cfg.BaseHeight, Z: z},
	})
	ecs.AddComponent(em, id, &components.BoxColliderComponent{
		Size:   cfg.CarBox.Size.Vec3(),
		Center: cfg.CarBox.Center.Vec3(),
	})
	ecs.AddComponent(em, id, &components.CarComponent{
		Lane:  lane,
		Speed: speed,
		Color: color,
	})
	return id, nil
}
