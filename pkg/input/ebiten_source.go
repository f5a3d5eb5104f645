package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Tap 本帧的一次点击或触摸抬起
type Tap struct {
	X, Y float64
	OK   bool
}

// EbitenSource 每帧从 ebiten 读取键盘、鼠标和触摸输入并注入 Controller
//
// 同时支持鼠标和触摸，只跟踪第一根手指。
type EbitenSource struct {
	keys []ebiten.Key

	tracking bool
	touchID  ebiten.TouchID
	// 触摸释放后无法再读取位置，保存最后一次触摸位置
	lastTouchX, lastTouchY int
}

// NewEbitenSource 创建输入源，只轮询 km 中绑定的按键
func NewEbitenSource(km KeyMap) *EbitenSource {
	return &EbitenSource{keys: km.Keys()}
}

// Poll 读取本帧输入并转发给 ctrl
// 返回: 本帧的点击/触摸抬起位置（用于场景自己的按钮，例如重试）
func (s *EbitenSource) Poll(ctrl *Controller) Tap {
	for _, k := range s.keys {
		if inpututil.IsKeyJustPressed(k) {
			ctrl.KeyDown(k)
		}
		if inpututil.IsKeyJustReleased(k) {
			ctrl.KeyUp(k)
		}
	}

	tap := s.pollTouch(ctrl)
	if tap.OK {
		return tap
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ctrl.Click(float64(x), float64(y))
		return Tap{X: float64(x), Y: float64(y), OK: true}
	}
	return Tap{}
}

func (s *EbitenSource) pollTouch(ctrl *Controller) Tap {
	if !s.tracking {
		// 检查新的触摸
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) > 0 {
			s.tracking = true
			s.touchID = ids[0]
			s.lastTouchX, s.lastTouchY = ebiten.TouchPosition(s.touchID)
			ctrl.TouchStart(float64(s.lastTouchX), float64(s.lastTouchY))
		}
		return Tap{}
	}

	if inpututil.IsTouchJustReleased(s.touchID) {
		s.tracking = false
		x, y := float64(s.lastTouchX), float64(s.lastTouchY)
		ctrl.TouchEnd(x, y)
		return Tap{X: x, Y: y, OK: true}
	}

	s.lastTouchX, s.lastTouchY = ebiten.TouchPosition(s.touchID)
	return Tap{}
}
