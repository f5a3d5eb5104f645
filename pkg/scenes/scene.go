// Package scenes 提供两种游戏模式的场景
//
// 场景负责把输入转发给游戏世界、按帧推进世界、处理世界事件，
// 并把世界状态和 HUD 绘制到屏幕上。游戏规则本身在 hopper 和 runner 包中。
package scenes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/game"
	"github.com/decker502/roadhop/pkg/input"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// inputSource 每帧读取设备输入并注入控制器
// 运行时为 *input.EbitenSource，测试中替换为脚本输入
type inputSource interface {
	Poll(ctrl *input.Controller) input.Tap
}

// NewSceneFactory 创建按模式构造场景的工厂
//
// 参数:
//   - cfg: 全部配置
//   - session: 跨场景共享的成绩记录
//
// 返回:
//   - game.SceneFactory: 传给 SceneManager.SetSceneFactory
func NewSceneFactory(cfg *config.GameConfig, session *game.Session) game.SceneFactory {
	return func(mode string) (game.Scene, error) {
		rng := rand.New(rand.NewSource(seedFor(cfg.Window.Seed)))

		switch mode {
		case config.ModeHopper:
			return NewHopperScene(cfg, session, rng)
		case config.ModeRunner:
			return NewRunnerScene(cfg, session, rng)
		default:
			return nil, fmt.Errorf("unknown game mode %q", mode)
		}
	}
}

// seedFor 种子为 0 时使用当前时间
func seedFor(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
