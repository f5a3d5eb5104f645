package config

import "fmt"

// InputConfig 输入配置
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipeThreshold"` // 滑动判定阈值（像素），默认 30

	// 按键绑定，值为 ebiten 按键名（如 "ArrowUp"、"W"）
	Forward  []string `yaml:"forward"`
	Backward []string `yaml:"backward"`
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Retry    []string `yaml:"retry"`
}

// DefaultInputConfig 方向键 + WASD
func DefaultInputConfig() InputConfig {
	return InputConfig{
		SwipeThreshold: 30,
		Forward:        []string{"ArrowUp", "W"},
		Backward:       []string{"ArrowDown", "S"},
		Left:           []string{"ArrowLeft", "A"},
		Right:          []string{"ArrowRight", "D"},
		Retry:          []string{"R", "Enter"},
	}
}

func applyInputDefaults(c *InputConfig) {
	d := DefaultInputConfig()
	if c.SwipeThreshold == 0 {
		c.SwipeThreshold = d.SwipeThreshold
	}
	if len(c.Forward) == 0 {
		c.Forward = d.Forward
	}
	if len(c.Backward) == 0 {
		c.Backward = d.Backward
	}
	if len(c.Left) == 0 {
		c.Left = d.Left
	}
	if len(c.Right) == 0 {
		c.Right = d.Right
	}
	if len(c.Retry) == 0 {
		c.Retry = d.Retry
	}
}

// Validate 检查阈值，每个动作至少绑定一个按键
// 按键名本身由 input.NewKeyMap 解析和检查冲突，配置包不依赖图形库
func (c InputConfig) Validate() error {
	if c.SwipeThreshold <= 0 {
		return fmt.Errorf("swipeThreshold must be positive, got %.1f", c.SwipeThreshold)
	}

	groups := []struct {
		action string
		names  []string
	}{
		{"forward", c.Forward},
		{"backward", c.Backward},
		{"left", c.Left},
		{"right", c.Right},
		{"retry", c.Retry},
	}
	for _, g := range groups {
		for _, name := range g.names {
			if name == "" {
				return fmt.Errorf("%s: empty key name", g.action)
			}
		}
	}
	return nil
}
