package scenes

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/decker502/roadhop/pkg/event"
	"github.com/decker502/roadhop/pkg/game"
	"github.com/decker502/roadhop/pkg/hopper"
	"github.com/decker502/roadhop/pkg/input"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// 跳格子模式配色
var (
	hopperLaneColors = map[hopper.LaneType]color.RGBA{
		hopper.LaneField:  {R: 120, G: 200, B: 90, A: 255},
		hopper.LaneForest: {R: 100, G: 180, B: 80, A: 255},
		hopper.LaneCar:    {R: 90, G: 90, B: 100, A: 255},
		hopper.LaneTruck:  {R: 80, G: 80, B: 92, A: 255},
		hopper.LaneRiver:  {R: 70, G: 140, B: 220, A: 255},
	}
	hopperOutsideColor = color.RGBA{R: 30, G: 40, B: 30, A: 255}
	treeColor          = color.RGBA{R: 40, G: 110, B: 50, A: 255}
	carColor           = color.RGBA{R: 220, G: 70, B: 60, A: 255}
	truckColor         = color.RGBA{R: 240, G: 170, B: 40, A: 255}
	logColor           = color.RGBA{R: 130, G: 90, B: 50, A: 255}
	gooseColor         = color.RGBA{R: 250, G: 250, B: 245, A: 255}
	beakColor          = color.RGBA{R: 250, G: 150, B: 30, A: 255}
)

// HopperScene 离散跳格子模式
type HopperScene struct {
	cfg     config.HopperConfig
	world   *hopper.World
	ctrl    *input.Controller
	source  inputSource
	session *game.Session
	events  *event.Dispatcher
	hud     *hud
	view    hopperView
	shapes  *shapeDrawer
	log     *logrus.Entry

	width, height int
	newBest       bool
}

// NewHopperScene 创建跳格子场景
//
// 参数:
//   - cfg: 全部配置（使用 Hopper、Input 和 Window 部分）
//   - session: 成绩记录
//   - rng: 随机源，决定行的布局
func NewHopperScene(cfg *config.GameConfig, session *game.Session, rng *rand.Rand) (*HopperScene, error) {
	s := &HopperScene{
		cfg:     cfg.Hopper,
		world:   hopper.NewWorld(cfg.Hopper, rng),
		session: session,
		log:     logger.WithComponent("HopperScene"),
	}

	ctrl, err := input.NewController(cfg.Input, s.move)
	if err != nil {
		return nil, fmt.Errorf("failed to create input controller: %w", err)
	}
	ctrl.SetEnabled(func() bool { return s.world.State() == hopper.StateRunning })
	ctrl.OnRetry = s.retryIfFinished
	s.ctrl = ctrl
	s.source = input.NewEbitenSource(ctrl.KeyMap())

	s.events = event.NewDispatcher()
	finished := event.ListenerFunc(s.onFinished)
	s.events.Subscribe(event.GameOver, finished)
	s.events.Subscribe(event.Won, finished)
	s.events.Subscribe(event.MoveRejected, event.ListenerFunc(func(e event.Event) {
		s.log.WithField("lane", e.Lane).Debug("queued move dropped")
	}))

	s.hud = newHUD(cfg.Window.Width, cfg.Window.Height)
	s.Resize(cfg.Window.Width, cfg.Window.Height)
	return s, nil
}

// move 把方向意图交给世界，被拒绝的移动只记录日志
func (s *HopperScene) move(dir direction.Direction) {
	if err := s.world.Move(dir); err != nil {
		s.log.WithError(err).WithField("dir", dir).Debug("move rejected")
	}
}

// Resize 窗口尺寸变化时重新计算棋盘映射和按钮布局
func (s *HopperScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.view = newHopperView(s.cfg, width, height)
	s.hud.resize(width, height)
	s.ctrl.SetButtons(s.hud.buttons)
}

// Retry 原地重开一局
func (s *HopperScene) Retry() {
	s.world.Reset()
	s.ctrl.ReleaseAll()
	s.newBest = false
	s.log.Info("restarted")
}

func (s *HopperScene) retryIfFinished() {
	if s.world.State() != hopper.StateRunning {
		s.Retry()
	}
}

// World 当前游戏世界
func (s *HopperScene) World() *hopper.World {
	return s.world
}

// Update 读取输入并推进世界
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *HopperScene) Update(deltaTime float64) {
	tap := s.source.Poll(s.ctrl)

	if s.world.State() != hopper.StateRunning {
		if tap.OK && s.hud.retry.Contains(tap.X, tap.Y) {
			s.Retry()
		}
		return
	}

	s.handleEvents(s.world.Update(deltaTime * 1000))
}

func (s *HopperScene) handleEvents(events []event.Event) {
	s.events.DispatchAll(events)
}

// onFinished 一局结束（失败或胜利）时记录成绩
func (s *HopperScene) onFinished(e event.Event) {
	s.newBest = s.session.Record(config.ModeHopper, e.Score)
	s.log.WithFields(logrus.Fields{
		"event":   e.Type,
		"score":   e.Score,
		"newBest": s.newBest,
	}).Info("round finished")
}

// Draw 绘制棋盘、玩家和 HUD
func (s *HopperScene) Draw(screen *ebiten.Image) {
	if s.shapes == nil {
		s.shapes = newShapeDrawer()
	}
	screen.Fill(hopperOutsideColor)

	camera := s.world.CameraLane()
	lo, hi := s.view.visibleLanes(camera)
	half := s.cfg.BoardWidth() / 2
	left, right := s.view.screenX(-half), s.view.screenX(half)

	for i := lo; i <= hi; i++ {
		lane := s.world.Lane(i)
		if lane == nil {
			continue
		}
		cy := s.view.laneCenterY(float64(i), camera)
		top := cy - s.view.laneHeight/2
		fillRect(screen, left, top, right-left, s.view.laneHeight, hopperLaneColors[lane.Type])
		s.drawLaneContents(screen, lane, cy)
	}

	s.drawGoose(screen, camera)

	s.hud.drawScore(screen,
		fmt.Sprintf("%d / %d", s.world.Score(), s.world.MaxScore()),
		fmt.Sprintf("BEST %d", s.session.Best(config.ModeHopper)))

	switch s.world.State() {
	case hopper.StateRunning:
		s.hud.drawButtons(screen)
	case hopper.StateGameOver:
		s.hud.drawEndScreen(screen, "GAME OVER", s.endLines(), hudTextColor)
	case hopper.StateWon:
		s.hud.drawEndScreen(screen, "YOU WIN!", s.endLines(), winTitleColor)
	}
}

func (s *HopperScene) endLines() []string {
	lines := []string{fmt.Sprintf("SCORE %d", s.world.Score())}
	if cause := s.world.Cause(); cause != event.CauseNone {
		lines = append(lines, string(cause))
	}
	if s.newBest {
		lines = append(lines, "NEW BEST!")
	}
	return lines
}

func (s *HopperScene) drawLaneContents(screen *ebiten.Image, lane *hopper.Lane, cy float64) {
	cell := s.view.laneHeight
	pw := s.cfg.PositionWidth

	switch lane.Type {
	case hopper.LaneForest:
		for col := range lane.Occupied {
			x := s.view.screenX(float64(col)*pw + pw/2 - s.cfg.BoardWidth()/2)
			r := cell * 0.35
			s.shapes.fillPolygon(screen, []point{
				{x, cy - r}, {x + r, cy}, {x, cy + r}, {x - r, cy},
			}, treeColor)
		}
	case hopper.LaneCar, hopper.LaneTruck, hopper.LaneRiver:
		clr := carColor
		heightFactor := 0.6
		switch lane.Type {
		case hopper.LaneTruck:
			clr = truckColor
			heightFactor = 0.7
		case hopper.LaneRiver:
			clr = logColor
			heightFactor = 0.5
		}
		h := cell * heightFactor
		for _, o := range lane.Obstacles {
			ext := o.Extent()
			x0, x1 := s.view.screenX(ext.Min), s.view.screenX(ext.Max)
			fillRect(screen, x0, cy-h/2, x1-x0, h, clr)
			strokeRect(screen, x0, cy-h/2, x1-x0, h, 1, shade(clr, 0.6))
		}
	}
}

func (s *HopperScene) drawGoose(screen *ebiten.Image, camera float64) {
	p := s.world.Player()
	size := s.cfg.GooseSize * s.view.scale * 1.4
	x := s.view.screenX(p.X)
	y := s.view.laneCenterY(p.LanePos, camera)

	// 影子留在地面，身体随跳跃抬高
	fillRect(screen, x-size/2, y-size/2+size*0.15, size, size*0.7, hudShadowColor)
	top := y - size/2 - p.Hop*s.view.scale
	fillRect(screen, x-size/2, top, size, size, gooseColor)
	fillRect(screen, x-size/6, top-size/4, size/3, size/4, beakColor)
}
