// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/game"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/decker502/roadhop/pkg/scenes"
	"github.com/decker502/roadhop/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// maxFrameDelta 单帧最大时间步长（秒）
// 窗口拖动或切到后台后的长帧被截断，避免一帧内跳过整段跳跃或车辆穿过玩家
const maxFrameDelta = 0.1

// Config 定义应用启动配置
type Config struct {
	// Game 已加载的游戏配置
	Game *config.GameConfig
	// Mode 启动模式，为空时使用 Game.Window.Mode
	Mode string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	session      *game.Session
	cfg          *config.GameConfig
	log          *logrus.Entry

	now      func() time.Time
	lastTick time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用，加载启动模式的场景
func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil {
		return nil, errors.New("game config cannot be nil")
	}
	mode := cfg.Mode
	if mode == "" {
		mode = cfg.Game.Window.Mode
	}

	session := game.NewSession()
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(cfg.Game, session))
	sceneManager.Resize(cfg.Game.Window.Width, cfg.Game.Window.Height)

	if err := sceneManager.LoadMode(mode); err != nil {
		return nil, fmt.Errorf("failed to start %s mode: %w", mode, err)
	}

	a := &App{
		sceneManager: sceneManager,
		session:      session,
		cfg:          cfg.Game,
		log:          logger.WithComponent("App"),
		now:          time.Now,
	}
	a.log.WithFields(logrus.Fields{
		"mode": mode,
		"seed": cfg.Game.Window.Seed,
	}).Info("game started")
	return a, nil
}

// frameDelta 距上一帧经过的秒数，第一帧按 1/TPS 计算，结果不超过 maxFrameDelta
func (a *App) frameDelta() float64 {
	now := a.now()
	if a.lastTick.IsZero() {
		a.lastTick = now
		return 1.0 / float64(ebiten.DefaultTPS)
	}
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now

	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// Esc 退出（仅桌面端）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.log.Info("quit requested")
		return ebiten.Termination
	}

	// Tab 切换游戏模式
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := a.sceneManager.ToggleMode(); err != nil {
			a.log.WithError(err).Error("failed to switch mode")
		}
	}

	a.updateFullscreen()

	a.sceneManager.Update(a.frameDelta())
	return nil
}

// updateFullscreen F11 切换全屏
func (a *App) updateFullscreen() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.log.Debug("exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸，场景按新尺寸重新计算布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.cfg.Window.Width, a.cfg.Window.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Session 返回本次运行的成绩记录
func (a *App) Session() *game.Session {
	return a.session
}
