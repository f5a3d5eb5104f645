package runner

import (
	"errors"
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/decker502/roadhop/pkg/entities"
	"github.com/decker502/roadhop/pkg/event"
	"github.com/decker502/roadhop/pkg/logger"
)

const frame = 1.0 / 60

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

// grassConfig 全部为草地的配置，没有车辆
func grassConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.RoadChance = 0
	return cfg
}

func newTestWorld(t *testing.T, cfg config.RunnerConfig) *World {
	t.Helper()
	w, err := NewWorld(cfg, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewWorld() error: %v", err)
	}
	return w
}

// hop 移动一格并推进到落地，返回期间的全部事件
func hop(t *testing.T, w *World, dir direction.Direction) []event.Event {
	t.Helper()
	if err := w.Move(dir); err != nil {
		t.Fatalf("Move(%v) error: %v", dir, err)
	}
	var all []event.Event
	for i := 0; i < 100 && w.Moving() && !w.Over(); i++ {
		all = append(all, w.Update(frame)...)
	}
	return all
}

func countType(events []event.Event, typ event.Type) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestNewWorldInitialState(t *testing.T) {
	w := newTestWorld(t, config.DefaultRunnerConfig())

	if w.LaneCount() != 20 {
		t.Errorf("LaneCount() = %d, want 20", w.LaneCount())
	}
	if first, last := w.LaneRange(); first != 0 || last != 19 {
		t.Errorf("LaneRange() = [%d, %d], want [0, 19]", first, last)
	}
	if w.Score() != 0 || w.Over() || w.Moving() {
		t.Errorf("unexpected initial state: score=%d over=%v moving=%v", w.Score(), w.Over(), w.Moving())
	}
	pos := w.PlayerPosition()
	if pos.X != 0 || pos.Z != 0 || pos.Y != 0.5 {
		t.Errorf("PlayerPosition() = %+v, want (0, 0.5, 0)", pos)
	}
	if cam := w.Camera(); cam.Position.Y != 15 || cam.Position.Z != 15 {
		t.Errorf("camera = %+v, want height 15 and z 15", cam.Position)
	}
}

// TestMoveRejectedWhileMoving 移动中的请求被忽略，不排队
func TestMoveRejectedWhileMoving(t *testing.T) {
	w := newTestWorld(t, grassConfig())

	if err := w.Move(direction.Forward); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	w.Update(frame)
	if err := w.Move(direction.Left); !errors.Is(err, ErrAlreadyMoving) {
		t.Fatalf("Move() while moving = %v, want ErrAlreadyMoving", err)
	}

	for i := 0; i < 20; i++ {
		w.Update(frame)
	}
	if pos := w.PlayerPosition(); pos.X != 0 || pos.Z != -2 {
		t.Errorf("position = %+v, want (0, _, -2): the rejected move must not run", pos)
	}
}

func TestForwardMoveScores(t *testing.T) {
	w := newTestWorld(t, grassConfig())

	events := hop(t, w, direction.Forward)

	if w.Score() != 1 {
		t.Errorf("Score() = %d, want 1", w.Score())
	}
	if got := countType(events, event.ScoreChanged); got != 1 {
		t.Errorf("ScoreChanged events = %d, want 1", got)
	}
	if pos := w.PlayerPosition(); pos.Z != -2 || pos.Y != 0.5 {
		t.Errorf("position = %+v, want z=-2 y=0.5", pos)
	}
	if cam := w.Camera(); cam.Position.Z != 13 {
		t.Errorf("camera z = %v, want 13", cam.Position.Z)
	}
}

// TestScoreIsMaximumProgress 后退不减分
func TestScoreIsMaximumProgress(t *testing.T) {
	w := newTestWorld(t, grassConfig())

	hop(t, w, direction.Forward)
	hop(t, w, direction.Forward)
	events := hop(t, w, direction.Backward)

	if w.Score() != 2 {
		t.Errorf("Score() = %d, want 2 after stepping back", w.Score())
	}
	if countType(events, event.ScoreChanged) != 0 {
		t.Error("stepping back should not emit ScoreChanged")
	}
}

func TestCollisionEndsGame(t *testing.T) {
	cfg := grassConfig()
	w := newTestWorld(t, cfg)

	if _, err := entities.NewCarEntity(w.Entities(), cfg, 0, 0, 0, 0, 0); err != nil {
		t.Fatalf("NewCarEntity() error: %v", err)
	}

	events := w.Update(frame)
	if !w.Over() || w.Cause() != event.CauseCollision {
		t.Fatalf("over=%v cause=%v, want collision", w.Over(), w.Cause())
	}
	if countType(events, event.GameOver) != 1 {
		t.Errorf("GameOver events = %d, want 1", countType(events, event.GameOver))
	}

	if got := w.Update(frame); got != nil {
		t.Errorf("Update() after game over = %v, want nil", got)
	}
	if err := w.Move(direction.Forward); !errors.Is(err, ErrGameFinished) {
		t.Errorf("Move() after game over = %v, want ErrGameFinished", err)
	}
}

// TestFallOffSide 向一侧走出 FallOffX 即结束
func TestFallOffSide(t *testing.T) {
	w := newTestWorld(t, grassConfig())

	for i := 0; i < 6; i++ {
		hop(t, w, direction.Right)
	}
	if w.Over() {
		t.Fatalf("x = %v should still be on the board", w.PlayerPosition().X)
	}

	events := hop(t, w, direction.Right)
	if !w.Over() || w.Cause() != event.CauseOffBoard {
		t.Fatalf("over=%v cause=%v, want off-board", w.Over(), w.Cause())
	}
	if countType(events, event.GameOver) != 1 {
		t.Errorf("GameOver events = %d, want 1", countType(events, event.GameOver))
	}
}

func TestLanesStreamAndPrune(t *testing.T) {
	w := newTestWorld(t, grassConfig())

	var events []event.Event
	for i := 0; i < 30; i++ {
		events = append(events, hop(t, w, direction.Forward)...)
		if w.LaneCount() > 25 {
			t.Fatalf("LaneCount() = %d after %d moves, want <= 25", w.LaneCount(), i+1)
		}
	}

	if w.Score() != 30 {
		t.Errorf("Score() = %d, want 30", w.Score())
	}
	// 玩家 z=-60 时前沿需到 z=-70（索引 35）
	first, last := w.LaneRange()
	if last != 35 || first != 11 {
		t.Errorf("LaneRange() = [%d, %d], want [11, 35]", first, last)
	}
	if got := countType(events, event.LaneSpawned); got != 16 {
		t.Errorf("LaneSpawned events = %d, want 16", got)
	}
	if got := countType(events, event.LaneRemoved); got != 11 {
		t.Errorf("LaneRemoved events = %d, want 11", got)
	}
}

func TestResetRestoresStart(t *testing.T) {
	cfg := grassConfig()
	w := newTestWorld(t, cfg)

	hop(t, w, direction.Forward)
	entities.NewCarEntity(w.Entities(), cfg, 1, 0, -2, 0, 0)
	w.Update(frame)
	if !w.Over() {
		t.Fatal("expected collision before reset")
	}

	if err := w.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if w.Over() || w.Score() != 0 || w.Cause() != event.CauseNone {
		t.Errorf("after Reset: over=%v score=%d cause=%v", w.Over(), w.Score(), w.Cause())
	}
	if pos := w.PlayerPosition(); pos.Z != 0 || pos.X != 0 {
		t.Errorf("PlayerPosition() = %+v, want origin", pos)
	}
	if w.LaneCount() != 20 {
		t.Errorf("LaneCount() = %d, want 20", w.LaneCount())
	}
	if err := w.Move(direction.Forward); err != nil {
		t.Errorf("Move() after Reset error: %v", err)
	}
}
