package dogfight

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/physics"
)

// playerSystem flies the fighter from held input and keeps the chase camera behind it
type playerSystem struct {
	engine.SystemBase
	game   *Game
	bounds physics.Bounds
}

func newPlayerSystem(ctx *engine.Context, g *Game) *playerSystem {
	return &playerSystem{
		SystemBase: engine.NewSystemBase(ctx),
		game:       g,
		bounds: physics.Bounds{
			Min: mgl64.Vec3{-parameter.DogfightBoundX, parameter.DogfightBoundYMin, 0},
			Max: mgl64.Vec3{parameter.DogfightBoundX, parameter.DogfightBoundYMax, 0},
		},
	}
}

func (s *playerSystem) Name() string  { return "dogfight-player" }
func (s *playerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *playerSystem) Update(dt time.Duration) {
	g := s.game
	w := s.World
	tr, ok := w.Transforms.Get(g.player)
	if !ok {
		return
	}

	// Up beats down and left beats right when both are held
	dy := 0.0
	switch {
	case s.Input.Has(input.ActionMoveUp):
		dy = 1
	case s.Input.Has(input.ActionMoveDown):
		dy = -1
	}
	dx := 0.0
	switch {
	case s.Input.Has(input.ActionMoveLeft):
		dx = -1
	case s.Input.Has(input.ActionMoveRight):
		dx = 1
	}

	tr.Position = s.bounds.Clamp(physics.AdvanceScaled(tr.Position, mgl64.Vec3{dx, dy, 0}, parameter.DogfightPlayerSpeed, dt))
	tr.Rotation[0] = physics.Lerp(tr.Rotation.X(), -dy*parameter.DogfightTilt, 0.15, dt)
	rollLerp := 0.15
	if dx == 0 {
		rollLerp = parameter.DogfightTiltLerp
	}
	tr.Rotation[2] = physics.Lerp(tr.Rotation.Z(), -dx*parameter.DogfightTilt, rollLerp, dt)
	w.Transforms.Set(g.player, tr)

	g.sinceShot += dt
	if s.Input.Has(input.ActionFire) {
		g.fire()
	}

	cam := g.Camera
	cam.Eye = mgl64.Vec3{
		physics.Lerp(cam.Eye.X(), tr.Position.X(), 0.1, dt),
		physics.Lerp(cam.Eye.Y(), tr.Position.Y()+3, 0.1, dt),
		tr.Position.Z() + 12,
	}
	cam.Target = tr.Position.Add(mgl64.Vec3{0, 1, -5})
}
