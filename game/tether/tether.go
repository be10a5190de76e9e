// Package tether is TETHROUGH: steer and turn a piece so it fits the hole of each approaching wall
package tether

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/game"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
	"github.com/lixenwraith/starfall/storage"
	"github.com/lixenwraith/starfall/system"
)

// ID is the launcher identifier
const ID = "tether"

// Game is one tether stage or an infinity run
type Game struct {
	*game.Base

	stage    int
	settings parameter.TetherStage
	allow    Allowance
	progress *storage.Progress

	counter int     // Walls left in a stage, walls passed in infinity
	speed   float64 // World units per second
	piece   core.Entity
	wall    core.Entity // Wall being approached
	cleared bool        // Stage finished in this run
}

// New builds stage, which must exist and be unlocked in the saved progress
func New(stage int, deps game.Deps) (*Game, error) {
	settings, err := Settings(stage)
	if err != nil {
		return nil, err
	}
	g := &Game{Base: game.NewBase(ID, deps)}
	g.progress = storage.NewProgress(g.Store)
	if !g.progress.Unlocked(stage) {
		return nil, fmt.Errorf("%w: %d", ErrStageLocked, stage)
	}
	g.stage = stage
	g.settings = settings
	g.allow = AllowanceFor(stage)

	ctx := g.Ctx
	ctx.World.AddSystem(newWallSystem(ctx, g))

	g.Camera.Eye = mgl64.Vec3{-22, 0, 7}
	g.Camera.Target = mgl64.Vec3{10, 0, 0}
	g.Camera.Up = mgl64.Vec3{0, 0, 1}

	g.Renderers.Register(render.RendererFunc(g.renderWorld), parameter.RenderWorld)
	g.Renderers.Register(render.RendererFunc(g.renderHUD), parameter.RenderHUD)
	g.SetOverlay(g.overlay)

	ctx.Session.OnTransition(g.onTransition)
	g.seed()
	return g, nil
}

func (g *Game) onTransition(_, to engine.Phase) {
	if to == engine.PhaseGameOver && Infinity(g.stage) {
		if _, err := g.progress.RecordBest(g.counter); err != nil {
			g.Ctx.Log().Warn("best score not saved", "error", err)
		}
	}
}

// seed places the piece at the center and a warm-up wall whose hole already matches it
func (g *Game) seed() {
	w := g.Ctx.World
	g.speed = g.settings.Speed * parameter.TetherSpeedScale
	g.counter = g.settings.Objective
	g.cleared = false

	start := component.Pose{Shape: component.Shape(g.Ctx.Rand.IntN(3))}
	g.piece = w.CreateEntity()
	w.Transforms.Set(g.piece, component.TransformComponent{Scale: 1})
	w.Pieces.Set(g.piece, component.PieceComponent{Pose: start})
	g.wall = g.spawnWall(parameter.TetherFirstWall, start)
}

func (g *Game) spawnWall(x float64, hole component.Pose) core.Entity {
	w := g.Ctx.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: mgl64.Vec3{x, 0, 0}, Scale: 1})
	w.Walls.Set(e, component.WallComponent{Hole: hole})
	return e
}

// Restart replays the stage, or moves on to the next one after a clear
func (g *Game) Restart() {
	if g.cleared && !Infinity(g.stage) && g.stage < parameter.TetherFinalStage {
		next := g.stage + 1
		if s, err := Settings(next); err == nil && g.progress.Unlocked(next) {
			g.stage, g.settings, g.allow = next, s, AllowanceFor(next)
		}
	}
	g.Reset()
	g.seed()
}

// Stage returns the stage number being played
func (g *Game) Stage() int { return g.stage }

// Counter returns walls left, or walls passed in infinity
func (g *Game) Counter() int { return g.counter }

// Speed returns wall speed in world units per second
func (g *Game) Speed() float64 { return g.speed }

// Allowance returns the moves of the current stage
func (g *Game) Allowance() Allowance { return g.allow }

// VerticalSwipes reports whether the stage accepts up and down swipes
func (g *Game) VerticalSwipes() bool { return g.allow.Vertical }

// Piece returns the player pose
func (g *Game) Piece() component.Pose {
	p, _ := g.Ctx.World.Pieces.Get(g.piece)
	return p.Pose
}

// Hole returns the hole of the wall being approached
func (g *Game) Hole() component.Pose {
	wc, _ := g.Ctx.World.Walls.Get(g.wall)
	return wc.Hole
}

// HandleAction steps or turns the piece within the stage allowance
func (g *Game) HandleAction(a input.Action) {
	if !g.Session().Running() {
		return
	}
	w := g.Ctx.World
	pc, ok := w.Pieces.Get(g.piece)
	if !ok {
		return
	}
	if next, moved := Move(pc.Pose, a, g.allow); moved {
		pc.Pose = next
		w.Pieces.Set(g.piece, pc)
	}
}

// HandleGesture maps swipes to steps and half-screen taps to turns
func (g *Game) HandleGesture(gs input.Gesture) {
	g.HandleAction(gs.Action())
}

// pass advances to the next wall; the piece keeps its placement and takes the new hole's shape
func (g *Game) pass() {
	ctx := g.Ctx
	w := ctx.World
	wc, _ := w.Walls.Get(g.wall)
	wc.Fading = true
	w.Walls.Set(g.wall, wc)

	piece := g.Piece()
	ctx.Emit(event.EventWallPassed, &event.WallPayload{Hole: wc.Hole, Piece: piece})
	system.PlaySound(ctx, audio.SoundPass)
	ctx.Session.AddScore(1)

	hole := NextHole(ctx.Rand, wc.Hole, g.allow)
	pc, _ := w.Pieces.Get(g.piece)
	pc.Pose = normalize(component.Pose{Shape: hole.Shape, Lane: wc.Hole.Lane, Level: wc.Hole.Level, Turns: wc.Hole.Turns})
	w.Pieces.Set(g.piece, pc)
	g.wall = g.spawnWall(parameter.TetherWallStart, hole)

	if Infinity(g.stage) {
		g.counter++
		if g.speed <= parameter.TetherInfinityCap*parameter.TetherSpeedScale {
			g.speed += parameter.TetherInfinityStep * parameter.TetherSpeedScale
		}
		return
	}
	g.counter--
	if g.counter > 0 {
		return
	}
	if ctx.Session.Victory() != nil {
		return
	}
	g.cleared = true
	if err := g.progress.Complete(g.stage); err != nil {
		ctx.Log().Warn("stage progress not saved", "stage", g.stage, "error", err)
	}
	ctx.Emit(event.EventStageCleared, &event.StagePayload{Stage: g.stage})
	ctx.Emit(event.EventVictory, nil)
	system.PlaySound(ctx, audio.SoundStageClear)
	ctx.Log().Info("stage cleared", "stage", g.stage)
}

// crash ends the run against the wall
func (g *Game) crash() {
	ctx := g.Ctx
	wc, _ := ctx.World.Walls.Get(g.wall)
	if ctx.Session.GameOver() != nil {
		return
	}
	ctx.Emit(event.EventCrash, &event.WallPayload{Hole: wc.Hole, Piece: g.Piece()})
	ctx.Emit(event.EventGameOver, nil)
	system.PlaySound(ctx, audio.SoundCrash)
	ctx.Log().Info("crashed", "stage", g.stage, "counter", g.counter)
}
