package input

import (
	"fmt"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyMap 按键到动作的映射
type KeyMap struct {
	Directions map[ebiten.Key]direction.Direction
	Retry      map[ebiten.Key]bool
}

// ParseKeys 将按键名转换为 ebiten.Key
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// NewKeyMap 根据输入配置构建按键映射
// 同一个按键不能绑定到两个不同的动作
//
// 参数:
//   - cfg: 输入配置（按键名为 ebiten 按键名）
//
// 返回:
//   - KeyMap: 按键映射
//   - error: 按键名无法识别或按键冲突
func NewKeyMap(cfg config.InputConfig) (KeyMap, error) {
	km := KeyMap{
		Directions: make(map[ebiten.Key]direction.Direction),
		Retry:      make(map[ebiten.Key]bool),
	}

	seen := make(map[ebiten.Key]string)
	bind := func(action string, names []string) ([]ebiten.Key, error) {
		keys, err := ParseKeys(names)
		if err != nil {
			return nil, fmt.Errorf("%s binding: %w", action, err)
		}
		for _, k := range keys {
			if prev, ok := seen[k]; ok && prev != action {
				return nil, fmt.Errorf("key %s bound to both %s and %s", k, prev, action)
			}
			seen[k] = action
		}
		return keys, nil
	}

	bindings := []struct {
		dir   direction.Direction
		names []string
	}{
		{direction.Forward, cfg.Forward},
		{direction.Backward, cfg.Backward},
		{direction.Left, cfg.Left},
		{direction.Right, cfg.Right},
	}
	for _, b := range bindings {
		keys, err := bind(b.dir.String(), b.names)
		if err != nil {
			return KeyMap{}, err
		}
		for _, k := range keys {
			km.Directions[k] = b.dir
		}
	}

	retry, err := bind("retry", cfg.Retry)
	if err != nil {
		return KeyMap{}, err
	}
	for _, k := range retry {
		km.Retry[k] = true
	}
	return km, nil
}

// Keys 所有绑定的按键（轮询时只需检查这些按键）
func (km KeyMap) Keys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(km.Directions)+len(km.Retry))
	for k := range km.Directions {
		keys = append(keys, k)
	}
	for k := range km.Retry {
		keys = append(keys, k)
	}
	return keys
}
