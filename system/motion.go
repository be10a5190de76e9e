package system

import (
	"time"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/physics"
)

// MotionSystem applies constant-velocity movement to every kinetic entity
// Speeds are per reference frame, scaled by the tick duration
type MotionSystem struct {
	engine.SystemBase
}

// NewMotionSystem creates a motion system
func NewMotionSystem(ctx *engine.Context) *MotionSystem {
	return &MotionSystem{SystemBase: engine.NewSystemBase(ctx)}
}

func (s *MotionSystem) Name() string  { return "motion" }
func (s *MotionSystem) Priority() int { return parameter.PriorityBullet }

func (s *MotionSystem) Update(dt time.Duration) {
	for _, e := range s.World.Kinetics.All() {
		k, _ := s.World.Kinetics.Get(e)
		tr, ok := s.World.Transforms.Get(e)
		if !ok {
			continue
		}
		tr.Position = physics.AdvanceScaled(tr.Position, k.Direction, k.Speed, dt)
		s.World.Transforms.Set(e, tr)
	}
}
