package input

import (
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/direction"
	"github.com/hajimehoshi/ebiten/v2"
)

// recorder 记录收到的方向意图
type recorder struct {
	dirs []direction.Direction
}

func (r *recorder) handle(d direction.Direction) { r.dirs = append(r.dirs, d) }

func newTestController(t *testing.T) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := NewController(config.DefaultInputConfig(), rec.handle)
	if err != nil {
		t.Fatalf("NewController() error: %v", err)
	}
	return c, rec
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want direction.Direction
	}{
		{ebiten.KeyArrowUp, direction.Forward},
		{ebiten.KeyW, direction.Forward},
		{ebiten.KeyArrowDown, direction.Backward},
		{ebiten.KeyS, direction.Backward},
		{ebiten.KeyArrowLeft, direction.Left},
		{ebiten.KeyA, direction.Left},
		{ebiten.KeyArrowRight, direction.Right},
		{ebiten.KeyD, direction.Right},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			c, rec := newTestController(t)
			if !c.KeyDown(tt.key) {
				t.Fatalf("KeyDown(%v) should produce an intent", tt.key)
			}
			if len(rec.dirs) != 1 || rec.dirs[0] != tt.want {
				t.Errorf("intents = %v, want [%v]", rec.dirs, tt.want)
			}
		})
	}
}

// TestKeyRepeatDebounced 按住不放只触发一次，松开后可再次触发
func TestKeyRepeatDebounced(t *testing.T) {
	c, rec := newTestController(t)

	c.KeyDown(ebiten.KeyW)
	c.KeyDown(ebiten.KeyW)
	c.KeyDown(ebiten.KeyW)
	if len(rec.dirs) != 1 {
		t.Fatalf("held key produced %d intents, want 1", len(rec.dirs))
	}

	c.KeyUp(ebiten.KeyW)
	c.KeyDown(ebiten.KeyW)
	if len(rec.dirs) != 2 {
		t.Errorf("re-pressed key produced %d intents total, want 2", len(rec.dirs))
	}

	// 其他按键不受影响
	c.KeyDown(ebiten.KeyArrowUp)
	if len(rec.dirs) != 3 {
		t.Errorf("a different key should trigger independently, got %d intents", len(rec.dirs))
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	c, rec := newTestController(t)
	if c.KeyDown(ebiten.KeyQ) {
		t.Error("unbound key should not produce an intent")
	}
	if len(rec.dirs) != 0 {
		t.Errorf("intents = %v, want none", rec.dirs)
	}
}

// TestSwipeDominantAxis 较大的位移轴决定方向，阈值 30
func TestSwipeDominantAxis(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   direction.Direction
		ok     bool
	}{
		{"向上滑动", 5, -80, direction.Forward, true},
		{"向下滑动", -10, 60, direction.Backward, true},
		{"向左滑动", -90, 20, direction.Left, true},
		{"向右滑动", 31, 0, direction.Right, true},
		{"横向未超过阈值", 30, 0, 0, false},
		{"纵向未超过阈值", 0, -30, 0, false},
		{"斜向以纵轴为准", 40, -40, direction.Forward, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestController(t)
			c.TouchStart(100, 100)
			d, ok := c.TouchEnd(100+tt.dx, 100+tt.dy)
			if ok != tt.ok || (ok && d != tt.want) {
				t.Fatalf("TouchEnd = (%v, %v), want (%v, %v)", d, ok, tt.want, tt.ok)
			}
			if tt.ok && !reflect.DeepEqual(rec.dirs, []direction.Direction{tt.want}) {
				t.Errorf("intents = %v, want [%v]", rec.dirs, tt.want)
			}
			if !tt.ok && len(rec.dirs) != 0 {
				t.Errorf("short swipe should not produce an intent, got %v", rec.dirs)
			}
		})
	}
}

func TestTouchEndWithoutStartIgnored(t *testing.T) {
	c, rec := newTestController(t)
	if _, ok := c.TouchEnd(0, -100); ok {
		t.Error("TouchEnd without TouchStart should be ignored")
	}
	if len(rec.dirs) != 0 {
		t.Errorf("intents = %v, want none", rec.dirs)
	}
}

// TestButtonsClickAndTap 点击或轻点方向按钮产生对应意图
func TestButtonsClickAndTap(t *testing.T) {
	c, rec := newTestController(t)
	c.SetButtons([]Button{
		{Dir: direction.Forward, X: 100, Y: 500, Width: 50, Height: 50},
		{Dir: direction.Left, X: 40, Y: 560, Width: 50, Height: 50},
	})

	if d, ok := c.Click(120, 520); !ok || d != direction.Forward {
		t.Errorf("Click on forward button = (%v, %v)", d, ok)
	}
	if _, ok := c.Click(10, 10); ok {
		t.Error("click outside buttons should not produce an intent")
	}

	c.TouchStart(60, 580)
	if d, ok := c.TouchEnd(62, 582); !ok || d != direction.Left {
		t.Errorf("tap on left button = (%v, %v)", d, ok)
	}

	if want := []direction.Direction{direction.Forward, direction.Left}; !reflect.DeepEqual(rec.dirs, want) {
		t.Errorf("intents = %v, want %v", rec.dirs, want)
	}
}

// TestDisabledControllerIgnoresInput 游戏结束后方向输入被忽略，重试键仍然有效
func TestDisabledControllerIgnoresInput(t *testing.T) {
	c, rec := newTestController(t)
	over := true
	c.SetEnabled(func() bool { return !over })
	c.SetButtons([]Button{{Dir: direction.Right, X: 0, Y: 0, Width: 100, Height: 100}})

	retries := 0
	c.OnRetry = func() { retries++ }

	c.KeyDown(ebiten.KeyArrowUp)
	c.Click(50, 50)
	c.TouchStart(0, 0)
	c.TouchEnd(0, -100)
	if len(rec.dirs) != 0 {
		t.Errorf("disabled controller produced intents %v", rec.dirs)
	}

	c.KeyDown(ebiten.KeyR)
	c.KeyDown(ebiten.KeyR)
	if retries != 1 {
		t.Errorf("retries = %d, want 1 (held key must not repeat)", retries)
	}

	over = false
	c.KeyUp(ebiten.KeyArrowUp)
	c.KeyDown(ebiten.KeyArrowUp)
	if len(rec.dirs) != 1 {
		t.Errorf("re-enabled controller should accept input, got %v", rec.dirs)
	}
}

func TestNewKeyMapRejectsUnknownKey(t *testing.T) {
	cfg := config.DefaultInputConfig()
	cfg.Left = []string{"NotAKey"}
	if _, err := NewController(cfg, nil); err == nil {
		t.Error("expected error for an unknown key name")
	}
}

func TestNewKeyMapRejectsConflicts(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.InputConfig)
		wantErr string
	}{
		{"未知按键", func(c *config.InputConfig) { c.Forward = []string{"Banana"} }, "unknown key"},
		{"方向冲突", func(c *config.InputConfig) {
			c.Forward = []string{"W"}
			c.Left = []string{"W"}
		}, "bound to both"},
		{"重开与方向冲突", func(c *config.InputConfig) { c.Retry = []string{"ArrowUp"} }, "bound to both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultInputConfig()
			tt.mutate(&cfg)
			_, err := NewKeyMap(cfg)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{"ArrowUp", "W"})
	if err != nil {
		t.Fatalf("ParseKeys() error: %v", err)
	}
	if len(keys) != 2 || keys[0] != ebiten.KeyArrowUp || keys[1] != ebiten.KeyW {
		t.Errorf("keys = %v, want [ArrowUp W]", keys)
	}
}
