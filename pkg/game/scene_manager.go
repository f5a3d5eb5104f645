package game

import (
	"fmt"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// SceneFactory 场景工厂函数类型
// 用于按游戏模式创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(mode string) (Scene, error)

// SceneManager manages which game mode is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentMode  string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
	width        int
	height       int
	log          *logrus.Entry
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use LoadMode or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		log: logger.WithComponent("SceneManager"),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Mode 当前游戏模式，未加载时为空
func (sm *SceneManager) Mode() string {
	return sm.currentMode
}

// LoadMode 创建并切换到指定模式的场景
//
// 参数:
//   - mode: config.ModeHopper 或 config.ModeRunner
//
// 返回:
//   - error: 工厂未设置或场景创建失败，此时当前场景保持不变
func (sm *SceneManager) LoadMode(mode string) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	scene, err := sm.sceneFactory(mode)
	if err != nil {
		return fmt.Errorf("failed to create %s scene: %w", mode, err)
	}

	sm.SwitchTo(scene)
	sm.currentMode = mode
	sm.log.WithField("mode", mode).Info("switched game mode")
	return nil
}

// ToggleMode 在两种游戏模式之间切换
func (sm *SceneManager) ToggleMode() error {
	next := config.ModeRunner
	if sm.currentMode == config.ModeRunner {
		next = config.ModeHopper
	}
	return sm.LoadMode(next)
}

// Resize 记录逻辑屏幕尺寸并通知当前场景
// 尺寸未变化时不通知
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
