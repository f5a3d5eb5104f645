// Package hopper 实现离散跳格子模式的游戏状态
//
// World 拥有全部可变状态（行、玩家、移动队列），唯一的推进入口是 Update(dtMs)，
// 由外部帧循环调用并返回本帧触发的事件。不依赖任何渲染，可在测试中直接驱动。
package hopper

import (
	"errors"
	"math"
	"math/rand"
	"slices"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/decker502/roadhop/pkg/event"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/decker502/roadhop/pkg/utils"
	"github.com/sirupsen/logrus"
)

// 移动被拒绝的原因，可用 errors.Is 判断
var (
	ErrBlocked      = errors.New("hopper: target cell is blocked by a tree")
	ErrOutOfBounds  = errors.New("hopper: target cell is outside the board")
	ErrGameFinished = errors.New("hopper: game is already finished")
)

// backdropLanes 起点后方用于装饰的草地行数
const backdropLanes = 9

// State 游戏状态
type State int

const (
	StateRunning State = iota
	StateGameOver
	StateWon
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// World 跳格子模式的完整游戏状态
type World struct {
	cfg config.HopperConfig
	gen *Generator
	log *logrus.Entry

	// lanes[i] 的索引为 first+i，索引连续
	lanes []*Lane
	first int

	player Player
	queue  []direction.Direction
	step   *step

	// carry 上一帧站在木头上时获得的漂流速度（棋盘单位/毫秒）
	carry float64

	state State
	cause event.Cause
	score int

	// pending Move 期间产生、下一次 Update 返回的事件
	pending []event.Event
}

// NewWorld 创建新的跳格子世界并初始化
// 参数:
//   - cfg: 已验证的配置
//   - rng: 随机源，决定全部行的布局
func NewWorld(cfg config.HopperConfig, rng *rand.Rand) *World {
	w := &World{
		cfg: cfg,
		gen: NewGenerator(cfg, rng),
		log: logger.WithComponent("Hopper"),
	}
	w.Reset()
	return w
}

// Reset 回到初始状态：重新生成行，玩家回到第 0 行中间列
// 旧行不会产生 LaneRemoved 事件，渲染层应整体重建
func (w *World) Reset() {
	w.lanes = make([]*Lane, 0, backdropLanes+w.cfg.InitialLanes)
	w.first = -backdropLanes
	for i := -backdropLanes; i < w.cfg.InitialLanes; i++ {
		w.lanes = append(w.lanes, w.gen.NewLane(i))
	}

	col := w.cfg.Columns / 2
	w.player = Player{
		Lane:   0,
		Column: col,
		X:      utils.ColumnCenterX(col, w.cfg.Columns, w.cfg.PositionWidth),
	}
	w.queue = nil
	w.step = nil
	w.carry = 0
	w.state = StateRunning
	w.cause = event.CauseNone
	w.score = 0
	w.pending = nil

	w.log.WithField("lanes", len(w.lanes)).Debug("world reset")
}

// Move 请求向 dir 方向移动一格
//
// 目标格子基于"当前位置 + 已排队的全部移动"计算。
// 目标越界或被树占据时返回错误且状态不变；否则加入队列，可在跳跃途中提前输入。
func (w *World) Move(dir direction.Direction) error {
	if w.state != StateRunning {
		return ErrGameFinished
	}

	lane, col := w.projected()
	if dir == direction.Forward {
		// 保证前方行已生成后再检查
		w.ensureLanes(lane+1+w.cfg.Lookahead, &w.pending)
	}
	if err := w.check(lane, col, dir); err != nil {
		return err
	}

	w.queue = append(w.queue, dir)
	return nil
}

// Update 推进 dtMs 毫秒
//
// 顺序：障碍物滚动 -> 木头带动漂流 -> 跳跃推进 -> 危险检测 -> 行的生成与回收。
// 游戏结束后不再推进，返回 nil。
func (w *World) Update(dtMs float64) []event.Event {
	if w.state != StateRunning {
		return nil
	}

	events := w.pending
	w.pending = nil

	w.scroll(dtMs)
	if w.step == nil && w.carry != 0 {
		w.player.X += w.carry * dtMs
	}

	w.advance(dtMs, &events)
	if w.state != StateRunning {
		return events
	}

	w.checkHazards(&events)
	if w.state != StateRunning {
		return events
	}

	lane, _ := w.projected()
	w.ensureLanes(lane+w.cfg.Lookahead, &events)
	w.collectLanes(min(lane, w.player.Lane)-w.cfg.KeepBehind, &events)

	return events
}

// ========== 移动 ==========

// projected 返回执行完当前跳跃和全部排队移动后的格子位置
func (w *World) projected() (lane, col int) {
	if w.step != nil {
		lane, col = w.step.toLane, w.step.toColumn
	} else {
		lane, col = w.player.Lane, w.restingColumn()
	}
	for _, d := range w.queue {
		dl, dc := d.Delta()
		lane += dl
		col += dc
	}
	return lane, col
}

// restingColumn 静止时所在的列（漂流偏移折算到最近的列）
func (w *World) restingColumn() int {
	return utils.NearestColumn(w.player.X, w.cfg.Columns, w.cfg.PositionWidth)
}

// check 检查从 (lane, col) 向 dir 移动一格是否合法
func (w *World) check(lane, col int, dir direction.Direction) error {
	dl, dc := dir.Delta()
	toLane, toCol := lane+dl, col+dc

	if !utils.ColumnInBounds(toCol, w.cfg.Columns) {
		return ErrOutOfBounds
	}
	if toLane < 0 {
		return ErrOutOfBounds
	}
	target := w.Lane(toLane)
	if target == nil {
		// 已被回收的后方行
		return ErrOutOfBounds
	}
	if target.Blocked(toCol) {
		return ErrBlocked
	}
	return nil
}

// advance 推进当前跳跃；没有跳跃时从队列取出下一个
func (w *World) advance(dtMs float64, events *[]event.Event) {
	if w.step == nil {
		w.startNext(events)
		if w.step == nil {
			return
		}
	}

	s := w.step
	s.elapsed += dtMs
	p := s.progress(w.cfg.StepTimeMs)
	w.player.X = utils.Lerp(s.fromX, s.toX, p)
	w.player.LanePos = utils.Lerp(float64(s.fromLane), float64(s.toLane), p)
	w.player.Hop = utils.HopArc(p) * w.cfg.HopHeight

	if !s.done(w.cfg.StepTimeMs) {
		return
	}

	w.finishStep(s, events)
	if w.state != StateRunning {
		return
	}
	// 下一个排队的移动立即开始
	w.startNext(events)
}

// startNext 从队列头部开始下一次跳跃
//
// 开始时把漂流偏移折算到最近的列并重新检查合法性。
// 失效时整个队列被丢弃（后续移动是按到不了的位置检查的），并产生 MoveRejected 事件。
func (w *World) startNext(events *[]event.Event) {
	w.step = nil
	if len(w.queue) == 0 {
		return
	}

	dir := w.queue[0]
	col := w.restingColumn()
	if err := w.check(w.player.Lane, col, dir); err != nil {
		w.log.WithFields(logrus.Fields{
			"direction": dir,
			"lane":      w.player.Lane,
			"column":    col,
			"dropped":   len(w.queue),
		}).Debugf("queued moves dropped: %v", err)
		*events = append(*events, event.Event{Type: event.MoveRejected, Lane: w.player.Lane, Score: w.score})
		w.queue = nil
		return
	}
	w.queue = w.queue[1:]

	w.player.Column = col
	dl, dc := dir.Delta()
	w.step = &step{
		dir:      dir,
		fromX:    w.player.X,
		toX:      utils.ColumnCenterX(col+dc, w.cfg.Columns, w.cfg.PositionWidth),
		fromLane: w.player.Lane,
		toLane:   w.player.Lane + dl,
		toColumn: col + dc,
	}
	w.carry = 0
}

// finishStep 跳跃完成：更新逻辑位置、分数，判断胜利
func (w *World) finishStep(s *step, events *[]event.Event) {
	w.step = nil
	w.player.Lane = s.toLane
	w.player.Column = s.toColumn
	w.player.X = s.toX
	w.player.LanePos = float64(s.toLane)
	w.player.Hop = 0

	*events = append(*events, event.Event{Type: event.StepCompleted, Lane: s.toLane, Score: w.score})

	if s.dir == direction.Forward || s.dir == direction.Backward {
		w.score = w.player.Lane
		*events = append(*events, event.Event{Type: event.ScoreChanged, Lane: w.player.Lane, Score: w.score})
	}

	if s.dir == direction.Forward && w.player.Lane >= w.cfg.MaxScore {
		w.state = StateWon
		w.queue = nil
		w.log.WithField("score", w.score).Info("reached the final lane")
		*events = append(*events, event.Event{Type: event.Won, Lane: w.player.Lane, Score: w.score})
	}
}

// ========== 障碍物与危险 ==========

// wrapHalf 障碍物绕回的半宽：棋盘半宽再向外 WrapMargin 格
func (w *World) wrapHalf() float64 {
	return w.cfg.BoardWidth()/2 + w.cfg.WrapMargin*w.cfg.PositionWidth
}

func (w *World) scroll(dtMs float64) {
	half := w.wrapHalf()
	for _, l := range w.lanes {
		l.scroll(dtMs, half)
	}
}

// checkHazards 检查玩家当前逻辑行上的危险
func (w *World) checkHazards(events *[]event.Event) {
	lane := w.Lane(w.player.Lane)
	if lane == nil {
		return
	}
	extent := utils.IntervalAround(w.player.X, w.cfg.GooseSize)

	switch {
	case lane.Type.HasVehicles():
		w.carry = 0
		if lane.overlaps(extent) {
			w.end(event.CauseCollision, events)
		}
	case lane.Type == LaneRiver:
		onLog := lane.overlaps(extent)
		w.carry = 0
		if onLog {
			w.carry = lane.Velocity()
		}
		if !onLog && w.step == nil {
			w.end(event.CauseDrowned, events)
			return
		}
		if math.Abs(w.player.X) > w.cfg.BoardWidth()/2 {
			w.end(event.CauseOffBoard, events)
		}
	default:
		w.carry = 0
	}
}

// end 进入游戏结束状态
func (w *World) end(cause event.Cause, events *[]event.Event) {
	w.state = StateGameOver
	w.cause = cause
	w.queue = nil
	w.carry = 0
	w.log.WithFields(logrus.Fields{
		"cause": cause,
		"lane":  w.player.Lane,
		"score": w.score,
	}).Info("game over")
	*events = append(*events, event.Event{Type: event.GameOver, Lane: w.player.Lane, Score: w.score, Cause: cause})
}

// ========== 行的生成与回收 ==========

// ensureLanes 保证索引 <= last 的行都已生成
func (w *World) ensureLanes(last int, events *[]event.Event) {
	for next := w.first + len(w.lanes); next <= last; next++ {
		w.lanes = append(w.lanes, w.gen.NewLane(next))
		*events = append(*events, event.Event{Type: event.LaneSpawned, Lane: next})
	}
}

// collectLanes 回收索引 < keepFrom 的行
func (w *World) collectLanes(keepFrom int, events *[]event.Event) {
	removed := 0
	for len(w.lanes) > 1 && w.first < keepFrom {
		*events = append(*events, event.Event{Type: event.LaneRemoved, Lane: w.first})
		w.lanes[0] = nil
		w.lanes = w.lanes[1:]
		w.first++
		removed++
	}
	if removed > 0 {
		w.log.WithFields(logrus.Fields{"removed": removed, "oldest": w.first}).Debug("lanes collected")
	}
}

// ========== 访问器 ==========

// Lane 返回索引为 index 的行，不存在时返回 nil
func (w *World) Lane(index int) *Lane {
	i := index - w.first
	if i < 0 || i >= len(w.lanes) {
		return nil
	}
	return w.lanes[i]
}

// Lanes 当前保留的全部行，按索引升序
// 返回副本，之后的生成、回收和 Reset 不会改动它
func (w *World) Lanes() []*Lane {
	return slices.Clone(w.lanes)
}

// FirstLane 最旧保留行的索引
func (w *World) FirstLane() int {
	return w.first
}

// Player 玩家状态快照
func (w *World) Player() Player {
	return w.player
}

// State 当前游戏状态
func (w *World) State() State {
	return w.state
}

// Cause 游戏结束原因（未结束时为空）
func (w *World) Cause() event.Cause {
	return w.cause
}

// Score 当前分数（玩家所在行）
func (w *World) Score() int {
	return w.score
}

// MaxScore 胜利所需行数
func (w *World) MaxScore() int {
	return w.cfg.MaxScore
}

// PendingMoves 尚未开始的排队移动数量
func (w *World) PendingMoves() int {
	return len(w.queue)
}

// Stepping 是否正在跳跃
func (w *World) Stepping() bool {
	return w.step != nil
}

// CameraLane 镜头跟随的纵向位置（左右移动时镜头不动）
func (w *World) CameraLane() float64 {
	return w.player.LanePos
}

// Config 当前配置
func (w *World) Config() config.HopperConfig {
	return w.cfg
}
