package app

import (
	"math"
	"os"
	"testing"
	"time"

	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/logger"
	"github.com/decker502/roadhop/pkg/scenes"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, mode string) *App {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Window.Seed = 1
	a, err := NewApp(Config{Game: cfg, Mode: mode})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return a
}

func TestNewAppStartsMode(t *testing.T) {
	tests := []struct {
		mode     string
		wantMode string
	}{
		{"", config.ModeHopper},
		{config.ModeHopper, config.ModeHopper},
		{config.ModeRunner, config.ModeRunner},
	}

	for _, tt := range tests {
		t.Run(tt.wantMode, func(t *testing.T) {
			a := newTestApp(t, tt.mode)
			if got := a.GetSceneManager().Mode(); got != tt.wantMode {
				t.Errorf("Mode() = %q, want %q", got, tt.wantMode)
			}
		})
	}
}

func TestNewAppErrors(t *testing.T) {
	if _, err := NewApp(Config{}); err == nil {
		t.Error("expected error for nil game config")
	}
	if _, err := NewApp(Config{Game: config.DefaultGameConfig(), Mode: "racing"}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestFrameDelta(t *testing.T) {
	a := newTestApp(t, config.ModeHopper)
	base := time.Unix(1000, 0)
	now := base
	a.now = func() time.Time { return now }

	steps := []struct {
		advance time.Duration
		want    float64
	}{
		{0, 1.0 / 60},
		{16 * time.Millisecond, 0.016},
		{time.Second, maxFrameDelta},
		{-time.Millisecond, 0},
		{33 * time.Millisecond, 0.033},
	}

	for i, st := range steps {
		now = now.Add(st.advance)
		if got := a.frameDelta(); math.Abs(got-st.want) > 1e-9 {
			t.Errorf("step %d: frameDelta() = %v, want %v", i, got, st.want)
		}
	}
}

func TestLayoutFollowsWindow(t *testing.T) {
	a := newTestApp(t, config.ModeHopper)

	w, h := a.Layout(1024, 700)
	if w != 1024 || h != 700 {
		t.Errorf("Layout() = %dx%d, want 1024x700", w, h)
	}

	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.HopperScene); !ok {
		t.Fatalf("current scene = %T, want *HopperScene", a.GetSceneManager().GetCurrentScene())
	}

	w, h = a.Layout(0, 0)
	if w != 800 || h != 600 {
		t.Errorf("Layout(0, 0) = %dx%d, want configured 800x600", w, h)
	}
}
