package engine

import (
	"time"

	"github.com/lixenwraith/starfall/parameter"
)

// Scheduler converts variable frame time into fixed simulation ticks
// All mutation happens synchronously inside Advance on the loop goroutine
type Scheduler struct {
	ctx         *Context
	clock       *Clock
	accumulator time.Duration
	ticks       uint64
}

// NewScheduler creates a scheduler driving ctx with frame time from provider
func NewScheduler(ctx *Context, provider TimeProvider) *Scheduler {
	s := &Scheduler{
		ctx:   ctx,
		clock: NewClock(provider),
	}
	// Pause and terminal phases freeze the clock so resuming does not jump
	ctx.Session.OnTransition(func(_, to Phase) {
		if to == PhaseRunning {
			s.clock.Resume()
			return
		}
		s.clock.Pause()
		s.accumulator = 0
	})
	if !ctx.Session.Running() {
		s.clock.Pause()
	}
	return s
}

// Frame reads real elapsed time from the clock and runs due ticks
func (s *Scheduler) Frame() int {
	return s.Advance(s.clock.Delta())
}

// Advance runs every fixed tick covered by elapsed, returning the number run
func (s *Scheduler) Advance(elapsed time.Duration) int {
	if !s.ctx.Session.Running() {
		s.accumulator = 0
		return 0
	}
	if elapsed > parameter.MaxFrameDelta {
		elapsed = parameter.MaxFrameDelta
	}
	s.accumulator += elapsed

	ran := 0
	for s.accumulator >= parameter.TickInterval && ran < parameter.MaxTicksPerFrame {
		s.accumulator -= parameter.TickInterval
		if !s.Step() {
			s.accumulator = 0
			break
		}
		ran++
	}
	if ran == parameter.MaxTicksPerFrame {
		s.accumulator = 0
	}
	return ran
}

// Step runs exactly one tick if the session is running
// Events queued before the tick reach handlers first, events raised during it are routed after
func (s *Scheduler) Step() bool {
	if !s.ctx.Session.Running() {
		return false
	}
	s.ctx.Dispatch()
	s.ctx.World.Update(parameter.TickInterval)
	s.ctx.Session.Advance(parameter.TickInterval)
	s.ctx.Dispatch()
	s.ticks++
	return true
}

// Ticks returns the number of ticks run since creation
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
