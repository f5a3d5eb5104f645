package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/ecs"
)

// grassPatchSpread 草丛分布的 X 范围宽度
const grassPatchSpread = 18

// NewRoadLaneEntity 随机生成一行（公路或草地）及其车辆
//
// 公路的概率为 cfg.RoadChance；公路上放 1..MaxCarsPerLane 辆同向同速的车。
// 随机数的抽取顺序固定，相同种子得到相同的行。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 连续模式配置
//   - rng: 随机源
//   - index: 行索引（Z = -index * LaneWidth）
//   - allowCars: 为 false 时公路上不放车（开局的安全行）
//
// 返回:
//   - laneID: 行实体ID
//   - carIDs: 本行车辆实体ID
//   - error: 参数无效
func NewRoadLaneEntity(
	em *ecs.EntityManager,
	cfg config.RunnerConfig,
	rng *rand.Rand,
	index int,
	allowCars bool,
) (laneID ecs.EntityID, carIDs []ecs.EntityID, err error) {
	if em == nil {
		return 0, nil, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return 0, nil, fmt.Errorf("random source cannot be nil")
	}

	z := -float64(index) * cfg.LaneWidth
	lane := &components.RoadLaneComponent{
		Index: index,
		Z:     z,
		Kind:  components.LaneGrass,
	}
	if rng.Float64() > 1-cfg.RoadChance {
		lane.Kind = components.LaneRoad
	}

	laneID = em.CreateEntity()
	ecs.AddComponent(em, laneID, lane)

	if lane.Kind == components.LaneGrass {
		patches := rng.Intn(3)
		for i := 0; i < patches; i++ {
			lane.GrassPatches = append(lane.GrassPatches, (rng.Float64()-0.5)*grassPatchSpread)
		}
		return laneID, nil, nil
	}

	if !allowCars {
		return laneID, nil, nil
	}

	count := rng.Intn(cfg.MaxCarsPerLane) + 1
	direction := -1.0
	if rng.Float64() > 0.5 {
		direction = 1
	}
	speed := (rng.Float64()*(cfg.CarSpeedMax-cfg.CarSpeedMin) + cfg.CarSpeedMin) * direction

	for i := 0; i < count; i++ {
		x := (rng.Float64() - 0.5) * 2 * cfg.CarSpawnHalfWidth
		color := rng.Intn(components.CarColorCount)
		carID, err := NewCarEntity(em, cfg, index, x, z, speed, color)
		if err != nil {
			return laneID, carIDs, fmt.Errorf("failed to create car on lane %d: %w", index, err)
		}
		carIDs = append(carIDs, carID)
	}
	return laneID, carIDs, nil
}
