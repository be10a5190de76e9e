package shooter

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/physics"
)

// playerSystem moves the ship from held input inside the clamp box
type playerSystem struct {
	engine.SystemBase
	game   *Game
	bounds physics.Bounds
}

func newPlayerSystem(ctx *engine.Context, g *Game) *playerSystem {
	return &playerSystem{
		SystemBase: engine.NewSystemBase(ctx),
		game:       g,
		bounds:     physics.NewBounds(parameter.ShooterBoundX, 0, parameter.ShooterBoundZ),
	}
}

func (s *playerSystem) Name() string  { return "shooter-player" }
func (s *playerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *playerSystem) Update(dt time.Duration) {
	w := s.World
	tr, ok := w.Transforms.Get(s.game.player)
	if !ok {
		return
	}

	// Up moves away from the camera
	dir := mgl64.Vec3{
		s.Input.Axis(input.ActionMoveLeft, input.ActionMoveRight),
		0,
		s.Input.Axis(input.ActionMoveUp, input.ActionMoveDown),
	}
	tr.Position = s.bounds.Clamp(physics.AdvanceScaled(tr.Position, dir, parameter.ShooterPlayerSpeed, dt))
	tr.Rotation[2] = -dir.X() * parameter.ShooterPlayerTilt
	w.Transforms.Set(s.game.player, tr)

	if p, ok := w.Players.Get(s.game.player); ok {
		p.Tilt = tr.Rotation.Z()
		w.Players.Set(s.game.player, p)
	}
}
