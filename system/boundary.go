package system

import (
	"time"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
)

// Selector picks the entity population a far plane applies to
type Selector uint8

const (
	SelectBullets Selector = iota
	SelectEnemies
	SelectPickups
)

// FarPlane removes selected entities whose coordinate on Axis leaves [Min, Max]
type FarPlane struct {
	Select Selector
	Axis   int // 0 x, 1 y, 2 z
	Min    float64
	Max    float64
}

// BoundarySystem tags out-of-range entities for the cull system
// No pooling: removed entities are gone
type BoundarySystem struct {
	engine.SystemBase
	planes []FarPlane
}

// NewBoundarySystem creates a boundary system with the given planes
func NewBoundarySystem(ctx *engine.Context, planes ...FarPlane) *BoundarySystem {
	return &BoundarySystem{SystemBase: engine.NewSystemBase(ctx), planes: planes}
}

func (s *BoundarySystem) Name() string  { return "boundary" }
func (s *BoundarySystem) Priority() int { return parameter.PriorityBoundary }

func (s *BoundarySystem) Update(time.Duration) {
	for _, p := range s.planes {
		for _, e := range s.population(p.Select) {
			tr, ok := s.World.Transforms.Get(e)
			if !ok {
				continue
			}
			v := tr.Position[p.Axis]
			if v < p.Min || v > p.Max {
				s.World.MarkDead(e)
			}
		}
	}
}

func (s *BoundarySystem) population(sel Selector) []core.Entity {
	switch sel {
	case SelectBullets:
		return s.World.Bullets.All()
	case SelectEnemies:
		return s.World.Enemies.All()
	case SelectPickups:
		return s.World.Pickups.All()
	default:
		return nil
	}
}
