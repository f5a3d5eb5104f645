// Package runner 实现连续移动模式的游戏状态
//
// 状态保存在 ECS 实体中，由一组系统按固定顺序推进：
// 玩家移动 -> 车辆移动 -> 碰撞 -> 镜头 -> 行的生成与回收 -> 分数与出界。
package runner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/decker502/roadhop/pkg/ecs"
	"github.com/decker502/roadhop/pkg/entities"
	"github.com/decker502/roadhop/pkg/event"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/decker502/roadhop/pkg/systems"
	"github.com/decker502/roadhop/pkg/utils"
	"github.com/sirupsen/logrus"
)

// 移动被拒绝的原因
var (
	ErrAlreadyMoving = errors.New("runner: player is already moving")
	ErrGameFinished  = errors.New("runner: game is already finished")
)

// World 连续移动模式的完整游戏状态
type World struct {
	cfg    config.RunnerConfig
	rng    *rand.Rand
	em     *ecs.EntityManager
	events *event.Queue
	log    *logrus.Entry

	movement  *systems.PlayerMovementSystem
	cars      *systems.CarMovementSystem
	collision *systems.CollisionSystem
	camera    *systems.CameraFollowSystem
	lanes     *systems.LaneStreamSystem

	player ecs.EntityID
	score  int
	over   bool
	cause  event.Cause
}

// NewWorld 创建连续模式世界并生成开局的行
// 参数:
//   - cfg: 已验证的配置
//   - rng: 随机源，决定行与车辆的布局
func NewWorld(cfg config.RunnerConfig, rng *rand.Rand) (*World, error) {
	em := ecs.NewEntityManager()
	events := &event.Queue{}

	w := &World{
		cfg:       cfg,
		rng:       rng,
		em:        em,
		events:    events,
		log:       logger.WithComponent("Runner"),
		movement:  systems.NewPlayerMovementSystem(em, cfg),
		cars:      systems.NewCarMovementSystem(em, cfg),
		collision: systems.NewCollisionSystem(em),
		lanes:     systems.NewLaneStreamSystem(em, cfg, rng, events),
	}
	w.camera = systems.NewCameraFollowSystem(em, cfg)

	if err := w.populate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset 清空全部实体并重新开局
func (w *World) Reset() error {
	w.em.Clear()
	w.events.Drain()
	w.camera.Reset()
	return w.populate()
}

func (w *World) populate() error {
	player, err := entities.NewRunnerPlayerEntity(w.em, w.cfg)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	w.player = player
	w.score = 0
	w.over = false
	w.cause = event.CauseNone

	if err := w.lanes.Init(); err != nil {
		return fmt.Errorf("failed to generate lanes: %w", err)
	}
	w.camera.Update(0)
	return nil
}

// Move 请求向 dir 移动一格
// 玩家正在移动时请求被拒绝（不排队）
func (w *World) Move(dir direction.Direction) error {
	if w.over {
		return ErrGameFinished
	}
	if !w.movement.RequestMove(dir) {
		return ErrAlreadyMoving
	}
	return nil
}

// Update 推进 dt 秒，返回本帧事件
// 游戏结束后不再推进，返回 nil
func (w *World) Update(dt float64) []event.Event {
	if w.over {
		return nil
	}

	w.movement.Update(dt)
	w.cars.Update(dt)
	w.collision.Update(dt)
	w.camera.Update(dt)
	w.lanes.Update(dt)
	w.em.RemoveMarkedEntities()

	pos := w.PlayerPosition()
	if progress := int(math.Floor(-pos.Z / w.cfg.LaneWidth)); progress > w.score {
		w.score = progress
		w.events.Push(event.Event{Type: event.ScoreChanged, Score: w.score, Lane: progress})
	}

	if _, hit := w.collision.Hit(); hit {
		w.end(event.CauseCollision)
	} else if math.Abs(pos.X) > w.cfg.FallOffX {
		w.end(event.CauseOffBoard)
	}

	return w.events.Drain()
}

func (w *World) end(cause event.Cause) {
	w.over = true
	w.cause = cause
	w.log.WithFields(logrus.Fields{
		"cause": cause,
		"score": w.score,
	}).Info("game over")
	w.events.Push(event.Event{Type: event.GameOver, Score: w.score, Cause: cause})
}

// ========== 访问器 ==========

// Score 到达过的最远行数
func (w *World) Score() int {
	return w.score
}

// Over 游戏是否已结束
func (w *World) Over() bool {
	return w.over
}

// Cause 游戏结束原因
func (w *World) Cause() event.Cause {
	return w.cause
}

// Moving 玩家是否正在移动
func (w *World) Moving() bool {
	p, ok := ecs.GetComponent[*components.RunnerPlayerComponent](w.em, w.player)
	return ok && p.Moving
}

// PlayerPosition 玩家当前位置
func (w *World) PlayerPosition() utils.Vec3 {
	tr, ok := ecs.GetComponent[*components.TransformComponent](w.em, w.player)
	if !ok {
		return utils.Vec3{}
	}
	return tr.Position
}

// Camera 当前镜头
func (w *World) Camera() components.CameraComponent {
	return w.camera.Camera()
}

// Entities 供渲染和测试读取的实体管理器
func (w *World) Entities() *ecs.EntityManager {
	return w.em
}

// LaneCount 当前保留的行数
func (w *World) LaneCount() int {
	return w.lanes.LaneCount()
}

// LaneRange 当前保留行的索引范围
func (w *World) LaneRange() (first, last int) {
	return w.lanes.LaneRange()
}

// Config 当前配置
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}
