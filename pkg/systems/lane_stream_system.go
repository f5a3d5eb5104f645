package systems

import (
	"fmt"
	"math/rand"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/ecs"
	"github.com/decker502/roadhop/pkg/entities"
	"github.com/decker502/roadhop/pkg/event"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/sirupsen/logrus"
)

// streamedLane 已生成的一行及其车辆
type streamedLane struct {
	id    ecs.EntityID
	index int
	z     float64
	cars  []ecs.EntityID
}

// LaneStreamSystem 连续模式的行生成与回收
//
// 玩家接近最前一行（距离小于 SpawnAhead）时在前方追加新行，
// 行数超过 MaxRoads 时回收最旧的一行及其车辆。
type LaneStreamSystem struct {
	em     *ecs.EntityManager
	cfg    config.RunnerConfig
	rng    *rand.Rand
	events *event.Queue
	log    *logrus.Entry

	lanes     []streamedLane
	nextIndex int
}

// NewLaneStreamSystem 创建行生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 连续模式配置
//   - rng: 随机源
//   - events: LaneSpawned/LaneRemoved 事件写入该队列
func NewLaneStreamSystem(em *ecs.EntityManager, cfg config.RunnerConfig, rng *rand.Rand, events *event.Queue) *LaneStreamSystem {
	return &LaneStreamSystem{
		em:     em,
		cfg:    cfg,
		rng:    rng,
		events: events,
		log:    logger.WithComponent("LaneStream"),
	}
}

// Init 生成开局的行，前 SafeStartLanes 行不放车
// 开局的行不产生事件
func (s *LaneStreamSystem) Init() error {
	s.lanes = s.lanes[:0]
	s.nextIndex = 0
	for i := 0; i < s.cfg.InitialLanes; i++ {
		if err := s.spawn(i >= s.cfg.SafeStartLanes); err != nil {
			return err
		}
	}
	s.log.WithField("lanes", len(s.lanes)).Debug("initial lanes generated")
	return nil
}

// Update 根据玩家位置生成和回收行
func (s *LaneStreamSystem) Update(dt float64) {
	playerZ, ok := s.playerZ()
	if !ok || len(s.lanes) == 0 {
		return
	}

	for playerZ < s.FrontZ()+s.cfg.SpawnAhead {
		if err := s.spawn(true); err != nil {
			s.log.WithError(err).Error("failed to spawn lane")
			return
		}
		s.events.Push(event.Event{Type: event.LaneSpawned, Lane: s.nextIndex - 1})

		for len(s.lanes) > s.cfg.MaxRoads {
			s.removeOldest()
		}
	}
}

func (s *LaneStreamSystem) spawn(allowCars bool) error {
	id, cars, err := entities.NewRoadLaneEntity(s.em, s.cfg, s.rng, s.nextIndex, allowCars)
	if err != nil {
		return fmt.Errorf("lane %d: %w", s.nextIndex, err)
	}
	lane, _ := ecs.GetComponent[*components.RoadLaneComponent](s.em, id)
	s.lanes = append(s.lanes, streamedLane{id: id, index: s.nextIndex, z: lane.Z, cars: cars})
	s.nextIndex++
	return nil
}

// removeOldest 回收最旧的行，同时移除该行仍存在的车辆
func (s *LaneStreamSystem) removeOldest() {
	oldest := s.lanes[0]
	s.lanes = s.lanes[1:]

	s.em.DestroyEntity(oldest.id)
	for _, car := range oldest.cars {
		if s.em.Exists(car) {
			s.em.DestroyEntity(car)
		}
	}
	s.events.Push(event.Event{Type: event.LaneRemoved, Lane: oldest.index})
}

func (s *LaneStreamSystem) playerZ() (float64, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.RunnerPlayerComponent, *components.TransformComponent](s.em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		return tr.Position.Z, true
	}
	return 0, false
}

// FrontZ 最前一行的 Z
func (s *LaneStreamSystem) FrontZ() float64 {
	if len(s.lanes) == 0 {
		return 0
	}
	return s.lanes[len(s.lanes)-1].z
}

// LaneCount 当前保留的行数
func (s *LaneStreamSystem) LaneCount() int {
	return len(s.lanes)
}

// LaneRange 当前保留行的索引范围 [first, last]
func (s *LaneStreamSystem) LaneRange() (first, last int) {
	if len(s.lanes) == 0 {
		return 0, -1
	}
	return s.lanes[0].index, s.lanes[len(s.lanes)-1].index
}
