package engine

import (
	"time"

	"github.com/lixenwraith/starfall/event"
)

// System is a unit of per-tick game logic
type System interface {
	// Name identifies the system in logs
	Name() string
	// Priority orders execution, lower runs first
	Priority() int
	// EventTypes lists the events routed to HandleEvent
	EventTypes() []event.Type
	// HandleEvent processes one routed event
	HandleEvent(ev event.Event)
	// Update advances the system by one fixed tick
	Update(dt time.Duration)
}

// SystemBase provides common dependencies for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	*Context
}

// NewSystemBase binds a system to its session context
func NewSystemBase(ctx *Context) SystemBase {
	return SystemBase{Context: ctx}
}

// EventTypes defaults to no subscriptions
func (SystemBase) EventTypes() []event.Type { return nil }

// HandleEvent defaults to a no-op
func (SystemBase) HandleEvent(event.Event) {}
