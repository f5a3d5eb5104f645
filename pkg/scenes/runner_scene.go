package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/decker502/roadhop/pkg/ecs"
	"github.com/decker502/roadhop/pkg/event"
	"github.com/decker502/roadhop/pkg/game"
	"github.com/decker502/roadhop/pkg/input"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/decker502/roadhop/pkg/runner"
	"github.com/decker502/roadhop/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// 连续模式配色
var (
	skyColor         = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	grassLaneColor   = color.RGBA{R: 76, G: 175, B: 80, A: 255}
	roadLaneColor    = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	grassPatchColor  = color.RGBA{R: 56, G: 142, B: 60, A: 255}
	runnerBodyColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	runnerCarPalette = [components.CarColorCount]color.RGBA{
		{R: 255, G: 68, B: 68, A: 255},
		{R: 68, G: 68, B: 255, A: 255},
		{R: 255, G: 255, B: 68, A: 255},
		{R: 255, G: 68, B: 255, A: 255},
		{R: 68, G: 255, B: 255, A: 255},
		{R: 255, G: 136, B: 0, A: 255},
	}
)

// laneHalfWidth 行在 X 方向的绘制半宽
const laneHalfWidth = 20

// RunnerScene 连续移动模式
type RunnerScene struct {
	cfg     config.RunnerConfig
	world   *runner.World
	ctrl    *input.Controller
	source  inputSource
	session *game.Session
	events  *event.Dispatcher
	hud     *hud
	shapes  *shapeDrawer
	log     *logrus.Entry

	width, height int
	newBest       bool

	// 绘制缓冲
	pts      []point
	drawList []boxDraw
}

// boxDraw 一个待绘制的长方体
type boxDraw struct {
	box utils.Box3
	clr color.RGBA
}

// NewRunnerScene 创建连续移动场景
//
// 参数:
//   - cfg: 全部配置（使用 Runner、Input 和 Window 部分）
//   - session: 成绩记录
//   - rng: 随机源，决定行与车辆的布局
func NewRunnerScene(cfg *config.GameConfig, session *game.Session, rng *rand.Rand) (*RunnerScene, error) {
	world, err := runner.NewWorld(cfg.Runner, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner world: %w", err)
	}

	s := &RunnerScene{
		cfg:     cfg.Runner,
		world:   world,
		session: session,
		log:     logger.WithComponent("RunnerScene"),
	}

	ctrl, err := input.NewController(cfg.Input, s.move)
	if err != nil {
		return nil, fmt.Errorf("failed to create input controller: %w", err)
	}
	ctrl.SetEnabled(func() bool { return !s.world.Over() })
	ctrl.OnRetry = s.retryIfFinished
	s.ctrl = ctrl
	s.source = input.NewEbitenSource(ctrl.KeyMap())

	s.events = event.NewDispatcher()
	s.events.Subscribe(event.GameOver, event.ListenerFunc(s.onGameOver))
	streamed := event.ListenerFunc(func(e event.Event) {
		s.log.WithFields(logrus.Fields{"event": e.Type, "lane": e.Lane}).Debug("lane streamed")
	})
	s.events.Subscribe(event.LaneSpawned, streamed)
	s.events.Subscribe(event.LaneRemoved, streamed)

	s.hud = newHUD(cfg.Window.Width, cfg.Window.Height)
	s.Resize(cfg.Window.Width, cfg.Window.Height)
	return s, nil
}

func (s *RunnerScene) move(dir direction.Direction) {
	if err := s.world.Move(dir); err != nil {
		s.log.WithError(err).WithField("dir", dir).Debug("move ignored")
	}
}

// Resize 窗口尺寸变化时更新投影和按钮布局
func (s *RunnerScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.hud.resize(width, height)
	s.ctrl.SetButtons(s.hud.buttons)
}

// Retry 清空全部实体并重开一局
func (s *RunnerScene) Retry() {
	if err := s.world.Reset(); err != nil {
		s.log.WithError(err).Error("failed to reset world")
		return
	}
	s.ctrl.ReleaseAll()
	s.newBest = false
	s.log.Info("restarted")
}

func (s *RunnerScene) retryIfFinished() {
	if s.world.Over() {
		s.Retry()
	}
}

// World 当前游戏世界
func (s *RunnerScene) World() *runner.World {
	return s.world
}

// Update 读取输入并推进世界
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *RunnerScene) Update(deltaTime float64) {
	tap := s.source.Poll(s.ctrl)

	if s.world.Over() {
		if tap.OK && s.hud.retry.Contains(tap.X, tap.Y) {
			s.Retry()
		}
		return
	}

	s.handleEvents(s.world.Update(deltaTime))
}

func (s *RunnerScene) handleEvents(events []event.Event) {
	s.events.DispatchAll(events)
}

func (s *RunnerScene) onGameOver(e event.Event) {
	s.newBest = s.session.Record(config.ModeRunner, e.Score)
	s.log.WithFields(logrus.Fields{
		"cause":   e.Cause,
		"score":   e.Score,
		"newBest": s.newBest,
	}).Info("round finished")
}

// Draw 透视绘制行、车辆和玩家，然后绘制 HUD
func (s *RunnerScene) Draw(screen *ebiten.Image) {
	if s.shapes == nil {
		s.shapes = newShapeDrawer()
	}
	screen.Fill(skyColor)

	proj := newProjector(s.world.Camera(), s.width, s.height)
	em := s.world.Entities()

	s.drawLanes(screen, proj, em)
	s.drawBoxes(screen, proj, em)

	s.hud.drawScore(screen,
		fmt.Sprintf("Score: %d", s.world.Score()),
		fmt.Sprintf("Best: %d", s.session.Best(config.ModeRunner)))

	if s.world.Over() {
		lines := []string{fmt.Sprintf("Score: %d", s.world.Score()), string(s.world.Cause())}
		if s.newBest {
			lines = append(lines, "NEW BEST!")
		}
		s.hud.drawEndScreen(screen, "GAME OVER", lines, hudTextColor)
		return
	}
	s.hud.drawButtons(screen)
}

// drawLanes 从远到近绘制行的地面
func (s *RunnerScene) drawLanes(screen *ebiten.Image, proj projector, em *ecs.EntityManager) {
	ids := ecs.GetEntitiesWith1[*components.RoadLaneComponent](em)
	lanes := make([]*components.RoadLaneComponent, 0, len(ids))
	for _, id := range ids {
		lane, _ := ecs.GetComponent[*components.RoadLaneComponent](em, id)
		lanes = append(lanes, lane)
	}
	sort.Slice(lanes, func(i, j int) bool { return lanes[i].Z < lanes[j].Z })

	half := s.cfg.LaneWidth / 2
	for _, lane := range lanes {
		clr := grassLaneColor
		if lane.Kind == components.LaneRoad {
			clr = roadLaneColor
		}
		s.fillQuad(screen, proj, []utils.Vec3{
			{X: -laneHalfWidth, Z: lane.Z - half},
			{X: laneHalfWidth, Z: lane.Z - half},
			{X: laneHalfWidth, Z: lane.Z + half},
			{X: -laneHalfWidth, Z: lane.Z + half},
		}, clr)

		for _, x := range lane.GrassPatches {
			s.fillQuad(screen, proj, []utils.Vec3{
				{X: x - 0.5, Y: 0.01, Z: lane.Z - 0.5},
				{X: x + 0.5, Y: 0.01, Z: lane.Z - 0.5},
				{X: x + 0.5, Y: 0.01, Z: lane.Z + 0.5},
				{X: x - 0.5, Y: 0.01, Z: lane.Z + 0.5},
			}, grassPatchColor)
		}
	}
}

// drawBoxes 从远到近绘制车辆和玩家
func (s *RunnerScene) drawBoxes(screen *ebiten.Image, proj projector, em *ecs.EntityManager) {
	s.drawList = s.drawList[:0]

	for _, id := range ecs.GetEntitiesWith3[*components.CarComponent, *components.TransformComponent, *components.BoxColliderComponent](em) {
		car, _ := ecs.GetComponent[*components.CarComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		col, _ := ecs.GetComponent[*components.BoxColliderComponent](em, id)
		s.drawList = append(s.drawList, boxDraw{box: col.WorldBox(tr.Position), clr: runnerCarPalette[car.Color]})
	}
	for _, id := range ecs.GetEntitiesWith3[*components.RunnerPlayerComponent, *components.TransformComponent, *components.BoxColliderComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		col, _ := ecs.GetComponent[*components.BoxColliderComponent](em, id)
		s.drawList = append(s.drawList, boxDraw{box: col.WorldBox(tr.Position), clr: runnerBodyColor})
	}

	sort.SliceStable(s.drawList, func(i, j int) bool {
		return s.drawList[i].box.Max.Z < s.drawList[j].box.Max.Z
	})
	for _, d := range s.drawList {
		s.drawBox(screen, proj, d.box, d.clr)
	}
}

// drawBox 绘制长方体朝向镜头的三个面：侧面、正面、顶面
func (s *RunnerScene) drawBox(screen *ebiten.Image, proj projector, b utils.Box3, clr color.RGBA) {
	lo, hi := b.Min, b.Max

	// 镜头在 X 方向偏向哪一侧就绘制哪一侧的侧面
	sideX := hi.X
	if proj.eye.X < lo.X {
		sideX = lo.X
	}
	s.fillQuad(screen, proj, []utils.Vec3{
		{X: sideX, Y: lo.Y, Z: lo.Z},
		{X: sideX, Y: lo.Y, Z: hi.Z},
		{X: sideX, Y: hi.Y, Z: hi.Z},
		{X: sideX, Y: hi.Y, Z: lo.Z},
	}, shade(clr, 0.65))

	s.fillQuad(screen, proj, []utils.Vec3{
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}, shade(clr, 0.8))

	s.fillQuad(screen, proj, []utils.Vec3{
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}, clr)
}

func (s *RunnerScene) fillQuad(screen *ebiten.Image, proj projector, vs []utils.Vec3, clr color.RGBA) {
	pts, ok := proj.projectAll(vs, s.pts)
	s.pts = pts
	if !ok {
		return
	}
	s.shapes.fillPolygon(screen, pts, clr)
}
