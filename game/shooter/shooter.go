// Package shooter is the space shooter: homing drones close in from four sides while the ship
// strafes and fires forward
package shooter

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/game"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
	"github.com/lixenwraith/starfall/system"
)

// ID is the launcher identifier
const ID = "shooter"

// Game is one shooter session
type Game struct {
	*game.Base

	difficulty core.Difficulty
	tuning     parameter.ShooterDifficulty
	player     core.Entity
	stars      *system.StarfieldSystem
	best       int
}

// New builds a shooter at the given difficulty, idle and ready to start
func New(difficulty core.Difficulty, deps game.Deps) *Game {
	if int(difficulty) >= len(parameter.ShooterDifficulties) {
		difficulty = core.DifficultyMedium
	}
	g := &Game{
		Base:       game.NewBase(ID, deps),
		difficulty: difficulty,
		tuning:     parameter.ShooterDifficulties[difficulty],
	}
	ctx := g.Ctx

	g.stars = system.NewStarfieldSystem(ctx, system.StarfieldConfig{
		Count:     parameter.ShooterStars,
		Speed:     0.02,
		FarPlane:  30,
		ResetZ:    -100,
		ResetBand: 20,
		Spread:    100,
	})
	ctx.World.AddSystem(newPlayerSystem(ctx, g))
	ctx.World.AddSystem(newSpawnSystem(ctx, g.tuning))
	ctx.World.AddSystem(newEnemySystem(ctx, g))
	ctx.World.AddSystem(system.NewMotionSystem(ctx))
	ctx.World.AddSystem(newCombatSystem(ctx, g))
	ctx.World.AddSystem(g.stars)
	ctx.World.AddSystem(system.NewEffectSystem(ctx, system.EffectStyle{
		ExplosionLife:      parameter.ShooterExplosionLifeFrames * parameter.TickInterval,
		ExplosionParticles: parameter.ShooterExplosionParticles,
		ParticleSpeed:      0.1,
		PopupLife:          parameter.ShooterHitFlashFrames * parameter.TickInterval * 3,
	}))
	ctx.World.AddSystem(system.NewBoundarySystem(ctx,
		system.FarPlane{Select: system.SelectBullets, Axis: 2, Min: -parameter.ShooterBulletFarPlane, Max: parameter.ShooterBulletFarPlane},
	))

	g.Renderers.Register(game.StarRenderer(ctx.World, g.Camera), parameter.RenderStars)
	g.Renderers.Register(render.RendererFunc(g.renderWorld), parameter.RenderWorld)
	g.Renderers.Register(game.EffectRenderer(ctx.World, g.Camera), parameter.RenderEffects)
	g.Renderers.Register(render.RendererFunc(g.renderHUD), parameter.RenderHUD)
	g.SetOverlay(g.overlay)

	ctx.Session.OnTransition(func(_, to engine.Phase) {
		if to == engine.PhaseGameOver {
			g.RecordBest(parameter.KeyShooterBest)
		}
	})

	g.seed()
	return g
}

// seed creates the initial entities: the ship and the starfield
func (g *Game) seed() {
	w := g.Ctx.World
	g.player = w.CreateEntity()
	w.Transforms.Set(g.player, component.TransformComponent{Scale: 1})
	w.Players.Set(g.player, component.PlayerComponent{})
	w.Healths.Set(g.player, component.NewHealth(parameter.ShooterPlayerHealth))
	w.Colliders.Set(g.player, component.ColliderComponent{Radius: parameter.ShooterCollisionRadius})
	g.stars.Seed()
	g.best = storageBest(g)
	g.followPlayer()
}

// Restart resets score, health and entities to their initial values
func (g *Game) Restart() {
	g.Reset()
	g.seed()
	g.Ctx.Log().Debug("shooter restarted", "difficulty", g.difficulty.String())
}

// Difficulty returns the selected difficulty
func (g *Game) Difficulty() core.Difficulty { return g.difficulty }

// Player returns the ship entity
func (g *Game) Player() core.Entity { return g.player }

// Health returns current ship health
func (g *Game) Health() int {
	h, _ := g.Ctx.World.Healths.Get(g.player)
	return h.Current
}

// HandleAction fires one bullet per fire press or key repeat
func (g *Game) HandleAction(a input.Action) {
	if a == input.ActionFire && g.Session().Running() {
		g.fire()
	}
}

func (g *Game) fire() {
	w := g.Ctx.World
	tr, ok := w.Transforms.Get(g.player)
	if !ok {
		return
	}
	pos := tr.Position
	pos[2] += parameter.ShooterBulletSpawnOffset

	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Direction: mgl64.Vec3{0, 0, 1}, Speed: parameter.ShooterBulletSpeed})
	w.Bullets.Set(e, component.BulletComponent{Faction: core.FactionPlayer, Damage: parameter.ShooterBulletDamage})
	system.PlaySound(g.Ctx, audio.SoundShoot)
}

// Draw follows the ship with the camera, then renders
func (g *Game) Draw(c *render.Canvas) {
	g.followPlayer()
	g.Base.Draw(c)
}

func (g *Game) followPlayer() {
	tr, ok := g.Ctx.World.Transforms.Get(g.player)
	if !ok {
		return
	}
	g.Camera.Eye = tr.Position.Add(mgl64.Vec3{0, 5, 15})
	g.Camera.Target = tr.Position
}

func (g *Game) overlay(phase engine.Phase) (render.Overlay, bool) {
	s := g.Session()
	switch phase {
	case engine.PhaseIdle:
		return render.Overlay{
			Title: "SPACE SHOOTER",
			Lines: []string{
				"Difficulty: " + upper(g.difficulty.String()),
				fmt.Sprintf("Best score: %d", g.best),
				"",
				"Arrows/WASD move   SPACE fire",
			},
			Hint: "ENTER start   Q menu",
		}, true
	case engine.PhasePaused:
		return render.Overlay{Title: "PAUSED", Hint: "P resume   Q menu"}, true
	case engine.PhaseGameOver:
		return render.Overlay{
			Title: "GAME OVER",
			Lines: []string{
				fmt.Sprintf("Score: %d", s.Score()),
				fmt.Sprintf("Enemies destroyed: %d", s.Kills()),
				"Survival time: " + survival(s),
				fmt.Sprintf("Best score: %d", max(g.best, s.Score())),
			},
			Hint:  "ENTER restart   Q menu",
			Color: render.HealthColor(0),
		}, true
	}
	return render.Overlay{}, false
}
