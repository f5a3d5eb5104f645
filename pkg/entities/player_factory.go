package entities

import (
	"fmt"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/ecs"
	"github.com/decker502/roadhop/pkg/utils"
)

// NewRunnerPlayerEntity 创建连续模式的玩家实体
// 玩家位于原点，站在基准高度上
//
// 参数:
//   - em: 实体管理器
//   - cfg: 连续模式配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: em 为空
func NewRunnerPlayerEntity(em *ecs.EntityManager, cfg config.RunnerConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	start := utils.Vec3{Y: cfg.BaseHeight}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: start})
	ecs.AddComponent(em, id, &components.BoxColliderComponent{
		Size:   cfg.PlayerBox.Size.Vec3(),
		Center: cfg.PlayerBox.Center.Vec3(),
	})
	ecs.AddComponent(em, id, &components.RunnerPlayerComponent{Target: start})
	return id, nil
}
