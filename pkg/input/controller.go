package input

import (
	"math"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/hajimehoshi/ebiten/v2"
)

// Handler 接收方向意图
type Handler func(direction.Direction)

// Button 屏幕上的方向按钮（屏幕坐标矩形）
type Button struct {
	Dir           direction.Direction
	X, Y          float64
	Width, Height float64
}

// Contains 点是否在按钮内
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Controller 将键盘、滑动和按钮点击转换为方向意图
//
// 不直接读取设备，事件由 EbitenSource（或测试）注入，便于无界面测试。
type Controller struct {
	keys      KeyMap
	threshold float64
	handler   Handler

	// OnRetry 按下重试键时调用（不受 enabled 限制）
	OnRetry func()

	// enabled 返回 false 时忽略方向输入（游戏结束后）
	enabled func() bool

	// pressed 已按下的按键，按住不放时不重复触发
	pressed map[ebiten.Key]bool

	touching       bool
	touchX, touchY float64

	buttons []Button
}

// NewController 创建输入控制器
// 参数:
//   - cfg: 输入配置
//   - handler: 方向意图的接收者
func NewController(cfg config.InputConfig, handler Handler) (*Controller, error) {
	km, err := NewKeyMap(cfg)
	if err != nil {
		return nil, err
	}
	return &Controller{
		keys:      km,
		threshold: cfg.SwipeThreshold,
		handler:   handler,
		pressed:   make(map[ebiten.Key]bool),
	}, nil
}

// SetEnabled 设置输入开关
func (c *Controller) SetEnabled(fn func() bool) {
	c.enabled = fn
}

// SetButtons 设置屏幕方向按钮（窗口尺寸变化时重新设置）
func (c *Controller) SetButtons(buttons []Button) {
	c.buttons = buttons
}

// Buttons 当前屏幕方向按钮
func (c *Controller) Buttons() []Button {
	return c.buttons
}

// KeyMap 当前按键映射
func (c *Controller) KeyMap() KeyMap {
	return c.keys
}

func (c *Controller) isEnabled() bool {
	return c.enabled == nil || c.enabled()
}

func (c *Controller) emit(d direction.Direction) {
	if c.handler != nil {
		c.handler(d)
	}
}

// KeyDown 按键按下
// 返回: 是否产生了方向意图
func (c *Controller) KeyDown(k ebiten.Key) bool {
	if c.keys.Retry[k] {
		if !c.pressed[k] && c.OnRetry != nil {
			c.OnRetry()
		}
		c.pressed[k] = true
		return false
	}

	if !c.isEnabled() {
		return false
	}
	if c.pressed[k] {
		return false
	}
	c.pressed[k] = true

	d, ok := c.keys.Directions[k]
	if !ok {
		return false
	}
	c.emit(d)
	return true
}

// KeyUp 按键松开
func (c *Controller) KeyUp(k ebiten.Key) {
	delete(c.pressed, k)
}

// ReleaseAll 清空已按下的按键（窗口失去焦点或切换场景时）
func (c *Controller) ReleaseAll() {
	clear(c.pressed)
	c.touching = false
}

// TouchStart 触摸开始
func (c *Controller) TouchStart(x, y float64) {
	if !c.isEnabled() {
		return
	}
	c.touching = true
	c.touchX, c.touchY = x, y
}

// TouchEnd 触摸结束
//
// 位移取较大的轴，超过阈值时产生方向意图（向上滑动为前进）；
// 位移不足阈值视为轻点，按点击处理。
func (c *Controller) TouchEnd(x, y float64) (direction.Direction, bool) {
	if !c.touching {
		return 0, false
	}
	c.touching = false
	if !c.isEnabled() {
		return 0, false
	}

	dx := x - c.touchX
	dy := y - c.touchY

	var d direction.Direction
	switch {
	case math.Abs(dx) > math.Abs(dy) && dx > c.threshold:
		d = direction.Right
	case math.Abs(dx) > math.Abs(dy) && dx < -c.threshold:
		d = direction.Left
	case math.Abs(dx) <= math.Abs(dy) && dy > c.threshold:
		d = direction.Backward
	case math.Abs(dx) <= math.Abs(dy) && dy < -c.threshold:
		d = direction.Forward
	default:
		return c.Click(x, y)
	}
	c.emit(d)
	return d, true
}

// Click 点击（或轻点）屏幕，命中方向按钮时产生方向意图
func (c *Controller) Click(x, y float64) (direction.Direction, bool) {
	if !c.isEnabled() {
		return 0, false
	}
	for _, b := range c.buttons {
		if b.Contains(x, y) {
			c.emit(b.Dir)
			return b.Dir, true
		}
	}
	return 0, false
}
