package tether

import (
	"time"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
)

// wallSystem moves walls toward the piece and checks the fit as the near wall arrives
type wallSystem struct {
	engine.SystemBase
	game *Game
}

func newWallSystem(ctx *engine.Context, g *Game) *wallSystem {
	return &wallSystem{SystemBase: engine.NewSystemBase(ctx), game: g}
}

func (s *wallSystem) Name() string  { return "tether-wall" }
func (s *wallSystem) Priority() int { return parameter.PriorityMission }

func (s *wallSystem) Update(dt time.Duration) {
	g := s.game
	w := s.World

	// Fit is checked before this tick's motion
	if tr, ok := w.Transforms.Get(g.wall); ok && tr.Position.X() <= parameter.TetherCheckX {
		if g.Piece().Fits(g.Hole()) {
			g.pass()
		} else {
			g.crash()
		}
	}
	if !s.Session.Running() {
		return
	}

	step := g.speed * dt.Seconds()
	for _, e := range w.Walls.All() {
		wc, _ := w.Walls.Get(e)
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		tr.Position[0] -= step
		w.Transforms.Set(e, tr)
		if wc.Fading && tr.Position.X() <= parameter.TetherFadeEnd {
			w.MarkDead(e)
		}
	}
}
