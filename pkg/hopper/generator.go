package hopper

import (
	"math"
	"math/rand"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/utils"
)

// Generator 按行索引随机生成行
//
// 随机源由调用方注入，相同种子生成完全相同的行序列。
type Generator struct {
	cfg config.HopperConfig
	rng *rand.Rand
}

// NewGenerator 创建行生成器
// 参数:
//   - cfg: 跳格子模式配置（已验证）
//   - rng: 随机源
func NewGenerator(cfg config.HopperConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// NewLane 生成索引为 index 的行
//
// index <= 0 的行总是空草地；其余行按权重随机选择类型，再放置障碍物。
func (g *Generator) NewLane(index int) *Lane {
	lane := &Lane{Index: index, Type: LaneField}
	if index <= 0 {
		return lane
	}

	lane.Type = g.pickType()
	switch lane.Type {
	case LaneForest:
		lane.Occupied = make(map[int]bool, g.cfg.TreesPerLane)
		for _, col := range g.distinctSlots(g.cfg.TreesPerLane, 1) {
			lane.Occupied[col] = true
		}
	case LaneCar:
		lane.MovesLeft = g.rng.Float64() >= 0.5
		lane.Obstacles = g.placeObstacles(g.cfg.CarsPerLane, 2, g.cfg.CarLength)
		lane.Speed = g.pickSpeed()
	case LaneTruck:
		lane.MovesLeft = g.rng.Float64() >= 0.5
		lane.Obstacles = g.placeObstacles(g.cfg.TrucksPerLane, 3, g.cfg.TruckLength)
		lane.Speed = g.pickSpeed()
	case LaneRiver:
		lane.MovesLeft = g.rng.Float64() >= 0.5
		lane.Obstacles = g.placeObstacles(g.cfg.LogsPerLane, 2, g.cfg.LogLength)
		lane.Speed = g.pickSpeed() * g.cfg.RiverSpeedFactor
	}
	return lane
}

// pickType 按累积权重选择行类型
func (g *Generator) pickType() LaneType {
	w := g.cfg.Weights
	candidates := []struct {
		t      LaneType
		weight float64
	}{
		{LaneRiver, w.River},
		{LaneForest, w.Forest},
		{LaneCar, w.Car},
		{LaneTruck, w.Truck},
	}

	r := g.rng.Float64() * w.Total()
	cumulative := 0.0
	for _, c := range candidates {
		cumulative += c.weight
		if r < cumulative {
			return c.t
		}
	}
	// 浮点误差兜底
	return LaneTruck
}

// pickSpeed 从候选速度中随机选一个，换算为 棋盘单位/毫秒
func (g *Generator) pickSpeed() float64 {
	speeds := g.cfg.LaneSpeeds
	return speeds[g.rng.Intn(len(speeds))] / g.cfg.ScrollDivisor
}

// slotCount 宽度为 span 列的槽位数量
func (g *Generator) slotCount(span int) int {
	return int(math.Ceil(float64(g.cfg.Columns) / float64(span)))
}

// distinctSlots 随机抽取 count 个互不相同的槽位
// 槽位 = floor(r * columns / span)，数量不超过可用槽位数
func (g *Generator) distinctSlots(count, span int) []int {
	available := g.slotCount(span)
	if span == 1 {
		// 至少留出一列可以通过
		available = g.cfg.Columns - 1
	}
	if count > available {
		count = available
	}

	used := make(map[int]bool, count)
	slots := make([]int, 0, count)
	for len(slots) < count {
		slot := int(g.rng.Float64() * float64(g.cfg.Columns) / float64(span))
		if used[slot] {
			continue
		}
		used[slot] = true
		slots = append(slots, slot)
	}
	return slots
}

// placeObstacles 在不重叠的槽位上放置障碍物
// 槽位 s 的中心 X = s*span*positionWidth + positionWidth/2 - boardWidth/2
func (g *Generator) placeObstacles(count, span int, length float64) []Obstacle {
	slots := g.distinctSlots(count, span)
	obstacles := make([]Obstacle, 0, len(slots))
	for _, s := range slots {
		obstacles = append(obstacles, Obstacle{
			X:      utils.ColumnCenterX(s*span, g.cfg.Columns, g.cfg.PositionWidth),
			Length: length,
		})
	}
	return obstacles
}
