package game

import (
	"testing"

	"github.com/decker502/roadhop/pkg/config"
)

func TestSessionRecord(t *testing.T) {
	s := NewSession()

	steps := []struct {
		mode    string
		score   int
		newBest bool
		best    int
	}{
		{config.ModeHopper, 5, true, 5},
		{config.ModeHopper, 3, false, 5},
		{config.ModeHopper, 5, false, 5},
		{config.ModeHopper, 9, true, 9},
		{config.ModeRunner, 0, false, 0},
		{config.ModeRunner, 14, true, 14},
	}

	for i, st := range steps {
		if got := s.Record(st.mode, st.score); got != st.newBest {
			t.Errorf("step %d: Record(%s, %d) = %v, want %v", i, st.mode, st.score, got, st.newBest)
		}
		if got := s.Best(st.mode); got != st.best {
			t.Errorf("step %d: Best(%s) = %d, want %d", i, st.mode, got, st.best)
		}
	}

	if s.Plays(config.ModeHopper) != 4 || s.Plays(config.ModeRunner) != 2 {
		t.Errorf("plays = %d/%d, want 4/2", s.Plays(config.ModeHopper), s.Plays(config.ModeRunner))
	}
}

func TestSessionModesIndependent(t *testing.T) {
	s := NewSession()
	s.Record(config.ModeRunner, 30)
	if s.Best(config.ModeHopper) != 0 {
		t.Errorf("hopper best = %d, want 0", s.Best(config.ModeHopper))
	}
}
