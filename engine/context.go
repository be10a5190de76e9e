package engine

import (
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/input"
)

// Context is the explicit session context handed to every system
// One context per running game; nothing is shared across games
type Context struct {
	World   *World
	Session *Session
	Events  *event.Queue
	Rand    *rand.Rand
	Logger  *slog.Logger

	// Input is the action snapshot for the current tick, written only by the loop
	Input input.Actions
}

// NewContext creates a context with a fresh world and queue
// A nil logger discards output; a nil rng is seeded from the runtime
func NewContext(game string, rng *rand.Rand, logger *slog.Logger) *Context {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	session := NewSession(game)
	return &Context{
		World:   NewWorld(),
		Session: session,
		Events:  event.NewQueue(),
		Rand:    rng,
		Logger:  logger.With("game", game),
	}
}

// Emit pushes an event on the context queue
func (c *Context) Emit(t event.Type, payload any) {
	c.Events.Emit(t, payload)
}

// Dispatch routes pending events to subscribed systems in FIFO order
// Events emitted by handlers are routed in following rounds, bounded to avoid feedback loops
func (c *Context) Dispatch() {
	for round := 0; round < 4; round++ {
		events := c.Events.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			for _, sys := range c.World.systems {
				for _, t := range sys.EventTypes() {
					if t == ev.Type {
						sys.HandleEvent(ev)
						break
					}
				}
			}
		}
	}
}

// Reset clears the world, the queue and the session for a fresh run
// Systems stay registered
func (c *Context) Reset() {
	c.World.Clear()
	c.Events.Reset()
	c.Session.Reset()
	c.Input = 0
}

// Log returns the logger tagged with the current session id
func (c *Context) Log() *slog.Logger {
	return c.Logger.With("session", c.Session.ID())
}
