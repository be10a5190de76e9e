package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned for a phase change the session state machine does not allow
var ErrInvalidTransition = errors.New("invalid session transition")

// Phase is the session lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports a phase that ends the run
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// transitions is the allowed edge set: idle → running → (paused ⇄ running) → (gameOver | victory) → idle
var transitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver, PhaseVictory},
	PhasePaused:   {PhaseRunning, PhaseIdle},
	PhaseGameOver: {PhaseIdle},
	PhaseVictory:  {PhaseIdle},
}

// TransitionHook observes phase changes
type TransitionHook func(from, to Phase)

// Session is the per-run game state singleton
// Score never decreases except through Reset
type Session struct {
	id      string
	game    string
	phase   Phase
	score   int
	kills   int
	elapsed time.Duration
	hooks   []TransitionHook
}

// NewSession creates an idle session with a fresh id
func NewSession(game string) *Session {
	return &Session{
		id:   uuid.NewString(),
		game: game,
	}
}

// ID returns the unique id of the current run
func (s *Session) ID() string { return s.id }

// Game returns the game identifier
func (s *Session) Game() string { return s.game }

// Phase returns the current lifecycle phase
func (s *Session) Phase() Phase { return s.phase }

// Running reports whether the update step should advance
func (s *Session) Running() bool { return s.phase == PhaseRunning }

// Score returns the current score
func (s *Session) Score() int { return s.score }

// Kills returns the number of destroyed enemies
func (s *Session) Kills() int { return s.kills }

// Elapsed returns running game time
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// OnTransition registers a hook called after every successful phase change
func (s *Session) OnTransition(hook TransitionHook) {
	s.hooks = append(s.hooks, hook)
}

// Transition moves to a new phase if the edge is allowed
// A rejected transition changes nothing and returns ErrInvalidTransition
func (s *Session) Transition(to Phase) error {
	from := s.phase
	for _, allowed := range transitions[from] {
		if allowed == to {
			s.phase = to
			for _, hook := range s.hooks {
				hook(from, to)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Start begins a run from idle
func (s *Session) Start() error {
	return s.Transition(PhaseRunning)
}

// TogglePause flips between running and paused
func (s *Session) TogglePause() error {
	switch s.phase {
	case PhaseRunning:
		return s.Transition(PhasePaused)
	case PhasePaused:
		return s.Transition(PhaseRunning)
	default:
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, s.phase)
	}
}

// GameOver ends the run in defeat; only the first call from running succeeds
func (s *Session) GameOver() error {
	return s.Transition(PhaseGameOver)
}

// Victory ends the run in victory; only the first call from running succeeds
func (s *Session) Victory() error {
	return s.Transition(PhaseVictory)
}

// AddScore adds positive points, ignoring zero and negative deltas
func (s *Session) AddScore(points int) {
	if points > 0 {
		s.score += points
	}
}

// AddKill counts a destroyed enemy
func (s *Session) AddKill() {
	s.kills++
}

// Advance adds game time; only the scheduler calls it
func (s *Session) Advance(dt time.Duration) {
	s.elapsed += dt
}

// Reset returns the session to idle with initial counters and a new run id
// Transition hooks are kept. Calling Reset twice yields the same state
func (s *Session) Reset() {
	s.id = uuid.NewString()
	s.phase = PhaseIdle
	s.score = 0
	s.kills = 0
	s.elapsed = 0
}
