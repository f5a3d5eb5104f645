package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one playable game mode (hopper or runner).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于在窗口尺寸变化时通知场景
//
// 实现此接口的场景会在以下时机被调用 Resize()：
//   - 场景被切换为当前场景时
//   - App.Layout 检测到外部尺寸变化时
type Resizable interface {
	// Resize 通知场景新的逻辑屏幕尺寸（像素）
	Resize(width, height int)
}
