package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/physics"
)

// StarfieldConfig shapes a wrap-around starfield flowing toward +z
type StarfieldConfig struct {
	Count     int
	Speed     float64 // Per reference frame at z = 0
	FarPlane  float64 // Stars beyond this z wrap back
	ResetZ    float64 // Wrapped stars land in [ResetZ, ResetZ+ResetBand]
	ResetBand float64
	Spread    float64 // Lateral half extent
}

// StarfieldSystem recycles stars instead of destroying them
type StarfieldSystem struct {
	engine.SystemBase
	cfg StarfieldConfig
}

// NewStarfieldSystem creates a starfield system
func NewStarfieldSystem(ctx *engine.Context, cfg StarfieldConfig) *StarfieldSystem {
	return &StarfieldSystem{SystemBase: engine.NewSystemBase(ctx), cfg: cfg}
}

func (s *StarfieldSystem) Name() string  { return "starfield" }
func (s *StarfieldSystem) Priority() int { return parameter.PriorityStar }

// Seed populates the field across its full depth
func (s *StarfieldSystem) Seed() {
	depth := s.cfg.FarPlane - s.cfg.ResetZ
	for i := 0; i < s.cfg.Count; i++ {
		pos := s.randomLateral()
		pos[2] = s.cfg.ResetZ + s.Rand.Float64()*depth
		s.spawn(pos)
	}
}

func (s *StarfieldSystem) spawn(pos mgl64.Vec3) {
	e := s.World.CreateEntity()
	s.World.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	s.World.Stars.Set(e, component.StarComponent{Brightness: uint8(s.Rand.IntN(256))})
}

func (s *StarfieldSystem) randomLateral() mgl64.Vec3 {
	return mgl64.Vec3{
		(s.Rand.Float64()*2 - 1) * s.cfg.Spread,
		(s.Rand.Float64()*2 - 1) * s.cfg.Spread,
		0,
	}
}

func (s *StarfieldSystem) Update(dt time.Duration) {
	frames := physics.FrameScale(dt)
	for _, e := range s.World.Stars.All() {
		tr, ok := s.World.Transforms.Get(e)
		if !ok {
			continue
		}
		// Distant stars drift slower for parallax
		mult := 1 - math.Abs(tr.Position.Z())/200*0.7
		tr.Position[2] += s.cfg.Speed * mult * frames
		if tr.Position.Z() > s.cfg.FarPlane {
			tr.Position = s.randomLateral()
			tr.Position[2] = s.cfg.ResetZ + s.Rand.Float64()*s.cfg.ResetBand
		}
		s.World.Transforms.Set(e, tr)
	}
}
