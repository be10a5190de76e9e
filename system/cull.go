package system

import (
	"time"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
)

// CullSystem removes entities marked for destruction
// It runs last in the tick so every scan of the tick saw a stable entity set
type CullSystem struct {
	engine.SystemBase
}

// NewCullSystem creates a new cull system
func NewCullSystem(ctx *engine.Context) *CullSystem {
	return &CullSystem{SystemBase: engine.NewSystemBase(ctx)}
}

func (s *CullSystem) Name() string { return "cull" }

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

// Update destroys every tagged entity in one batch
func (s *CullSystem) Update(time.Duration) {
	s.World.DestroyBatch(s.World.Deaths.All())
}
