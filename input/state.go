package input

import (
	"sync"
	"time"
)

// State tracks the latest press time of continuous actions
// Terminals report presses and auto-repeats but no releases, so an action counts as held
// until holdWindow passes without another press
type State struct {
	mu         sync.Mutex
	holdWindow time.Duration
	pressed    map[Action]time.Time
}

// NewState creates an empty state with the given hold window
func NewState(holdWindow time.Duration) *State {
	return &State{
		holdWindow: holdWindow,
		pressed:    make(map[Action]time.Time),
	}
}

// Press records a press or repeat of a
func (s *State) Press(a Action, at time.Time) {
	s.mu.Lock()
	s.pressed[a] = at
	s.mu.Unlock()
}

// Release forgets a, used when focus is lost or the game restarts
func (s *State) Release(a Action) {
	s.mu.Lock()
	delete(s.pressed, a)
	s.mu.Unlock()
}

// Clear releases everything
func (s *State) Clear() {
	s.mu.Lock()
	clear(s.pressed)
	s.mu.Unlock()
}

// Snapshot returns actions held at now; the update step never writes back
func (s *State) Snapshot(now time.Time) Actions {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out Actions
	for a, at := range s.pressed {
		if now.Sub(at) <= s.holdWindow {
			out = out.With(a)
		} else {
			delete(s.pressed, a)
		}
	}
	return out
}
