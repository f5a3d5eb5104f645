package systems

import (
	"math"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/decker502/roadhop/pkg/ecs"
	"github.com/decker502/roadhop/pkg/utils"
)

// PlayerMovementSystem 连续模式的玩家移动
//
// 玩家以固定速度直线移向目标格子，移动过程中按距离进度做跳跃弧线，
// 距目标小于 SnapDistance 时吸附到目标并结束移动。
type PlayerMovementSystem struct {
	em  *ecs.EntityManager
	cfg config.RunnerConfig
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, cfg config.RunnerConfig) *PlayerMovementSystem {
	return &PlayerMovementSystem{em: em, cfg: cfg}
}

// RequestMove 让玩家向 dir 移动一格
// 返回: 玩家正在移动（或不存在）时返回 false，请求被忽略
func (s *PlayerMovementSystem) RequestMove(dir direction.Direction) bool {
	for _, id := range ecs.GetEntitiesWith2[*components.RunnerPlayerComponent, *components.TransformComponent](s.em) {
		player, _ := ecs.GetComponent[*components.RunnerPlayerComponent](s.em, id)
		if player.Moving {
			return false
		}

		dLane, dCol := dir.Delta()
		// 前进为 -Z
		player.Target.Z -= float64(dLane) * s.cfg.MoveDistance
		player.Target.X += float64(dCol) * s.cfg.MoveDistance
		player.Moving = true
		return true
	}
	return false
}

// Update 推进玩家移动
//
// 参数:
//   - dt: 自上一帧以来经过的时间（秒）
func (s *PlayerMovementSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.RunnerPlayerComponent, *components.TransformComponent](s.em) {
		player, _ := ecs.GetComponent[*components.RunnerPlayerComponent](s.em, id)
		if !player.Moving {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		s.advance(player, tr, dt)
	}
}

func (s *PlayerMovementSystem) advance(player *components.RunnerPlayerComponent, tr *components.TransformComponent, dt float64) {
	pos := &tr.Position
	dx := player.Target.X - pos.X
	dz := player.Target.Z - pos.Z
	distance := math.Hypot(dx, dz)

	if distance < s.cfg.SnapDistance {
		s.snap(player, tr)
		return
	}

	stepLen := math.Min(s.cfg.MoveSpeed*dt, distance)
	pos.X += dx / distance * stepLen
	pos.Z += dz / distance * stepLen

	// 进度按本帧移动前的距离计算
	progress := 1 - distance/s.cfg.MoveDistance
	pos.Y = s.cfg.BaseHeight + utils.HopArc(progress)*s.cfg.HopHeight

	if distance-stepLen < s.cfg.SnapDistance {
		s.snap(player, tr)
	}
}

func (s *PlayerMovementSystem) snap(player *components.RunnerPlayerComponent, tr *components.TransformComponent) {
	tr.Position = utils.Vec3{X: player.Target.X, Y: s.cfg.BaseHeight, Z: player.Target.Z}
	player.Target.Y = s.cfg.BaseHeight
	player.Moving = false
}
