// Package dogfight is the starfighter mission: survive the timer against waves of fighters,
// trading hull for shield energy and collecting dropped supplies
package dogfight

import (
	"fmt"
	"math"
	"time"

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
const ID = "dogfight"

// Game is one dogfight mission
type Game struct {
	*game.Base

	pilot      string
	difficulty core.Difficulty
	player     core.Entity
	stars      *system.StarfieldSystem
	spawner    *spawnSystem

	shield       int
	shieldActive bool
	shieldLeft   time.Duration // Remaining active time
	cooldown     time.Duration
	missionLeft  time.Duration
	sinceShot    time.Duration
	targeting    bool
	best         int
}

// New builds a mission for the saved pilot profile, idle and ready to start
func New(deps game.Deps) *Game {
	g := &Game{Base: game.NewBase(ID, deps)}
	ctx := g.Ctx

	g.pilot = parameter.DogfightDefaultPilot
	g.difficulty = core.DifficultyMedium
	if p, ok := storage.LoadProfile(g.Store); ok {
		g.pilot = p.Name
		g.difficulty = core.ParseDifficulty(p.Difficulty)
	}

	g.stars = system.NewStarfieldSystem(ctx, system.StarfieldConfig{
		Count:     parameter.DogfightStars,
		Speed:     parameter.DogfightStarSpeed,
		FarPlane:  parameter.DogfightStarFarPlane,
		ResetZ:    parameter.DogfightStarResetZ,
		ResetBand: parameter.DogfightStarResetBand,
		Spread:    parameter.DogfightStarSpread,
	})
	ctx.World.AddSystem(newPlayerSystem(ctx, g))
	g.spawner = newSpawnSystem(ctx)
	ctx.World.AddSystem(g.spawner)
	ctx.World.AddSystem(newEnemySystem(ctx))
	ctx.World.AddSystem(newPickupSystem(ctx))
	ctx.World.AddSystem(system.NewMotionSystem(ctx))
	ctx.World.AddSystem(newCombatSystem(ctx, g))
	ctx.World.AddSystem(newMissionSystem(ctx, g))
	ctx.World.AddSystem(g.stars)
	ctx.World.AddSystem(system.NewEffectSystem(ctx, system.EffectStyle{
		ExplosionLife:      parameter.DogfightExplosionLife,
		ExplosionParticles: 16,
		ParticleSpeed:      0.15,
		PopupLife:          parameter.DogfightPopupLife,
	}))
	ctx.World.AddSystem(system.NewBoundarySystem(ctx,
		system.FarPlane{Select: system.SelectBullets, Axis: 2, Min: -parameter.DogfightLaserFarPlane, Max: parameter.DogfightLaserFarPlane},
		system.FarPlane{Select: system.SelectEnemies, Axis: 2, Min: math.Inf(-1), Max: parameter.DogfightEnemyFarPlane},
		system.FarPlane{Select: system.SelectPickups, Axis: 2, Min: math.Inf(-1), Max: parameter.DogfightPickupFarPlane},
	))

	g.Renderers.Register(game.StarRenderer(ctx.World, g.Camera), parameter.RenderStars)
	g.Renderers.Register(render.RendererFunc(g.renderWorld), parameter.RenderWorld)
	g.Renderers.Register(game.EffectRenderer(ctx.World, g.Camera), parameter.RenderEffects)
	g.Renderers.Register(render.RendererFunc(g.renderHUD), parameter.RenderHUD)
	g.SetOverlay(g.overlay)

	ctx.Session.OnTransition(g.onTransition)
	g.seed()
	return g
}

func (g *Game) onTransition(from, to engine.Phase) {
	switch to {
	case engine.PhaseRunning:
		if from == engine.PhaseIdle {
			g.alert("DESTROY ALL ENEMY SHIPS!", 3*time.Second)
		}
	case engine.PhaseGameOver, engine.PhaseVictory:
		g.RecordBest(parameter.KeyDogfightBest)
	}
}

// seed sets the initial mission state: full hull and shield, three minutes on the clock
func (g *Game) seed() {
	w := g.Ctx.World
	g.player = w.CreateEntity()
	w.Transforms.Set(g.player, component.TransformComponent{Scale: 1})
	w.Players.Set(g.player, component.PlayerComponent{})
	w.Healths.Set(g.player, component.NewHealth(parameter.DogfightPlayerHealth))

	g.shield = parameter.DogfightPlayerShield
	g.shieldActive = false
	g.shieldLeft = 0
	g.cooldown = 0
	g.missionLeft = parameter.DogfightMissionTime
	// First volley is never throttled
	g.sinceShot = parameter.DogfightFireInterval
	g.targeting = false
	g.best = storage.Int(g.Store, parameter.KeyDogfightBest, parameter.DefaultBestScore)

	g.stars.Seed()
	g.spawner.reset()
	g.Camera.Eye = mgl64.Vec3{0, 3, 12}
	g.Camera.Target = mgl64.Vec3{0, 1, -5}
}

// Restart resets the mission to its initial values
func (g *Game) Restart() {
	g.Reset()
	g.seed()
}

// Pilot returns the pilot name shown on the HUD
func (g *Game) Pilot() string { return g.pilot }

// Health returns current hull
func (g *Game) Health() int {
	h, _ := g.Ctx.World.Healths.Get(g.player)
	return h.Current
}

// Shield returns shield energy
func (g *Game) Shield() int { return g.shield }

// ShieldActive reports a raised shield
func (g *Game) ShieldActive() bool { return g.shieldActive }

// MissionLeft returns remaining mission time
func (g *Game) MissionLeft() time.Duration { return g.missionLeft }

// Targeting reports an enemy under the crosshair
func (g *Game) Targeting() bool { return g.targeting }

// HandleAction fires on press and raises the shield
func (g *Game) HandleAction(a input.Action) {
	if !g.Session().Running() {
		return
	}
	switch a {
	case input.ActionFire:
		g.fire()
	case input.ActionShield:
		g.activateShield()
	}
}

// fire launches twin lasers from the wing cannons, throttled by the fire interval
func (g *Game) fire() bool {
	if g.sinceShot < parameter.DogfightFireInterval {
		return false
	}
	w := g.Ctx.World
	tr, ok := w.Transforms.Get(g.player)
	if !ok {
		return false
	}
	g.sinceShot = 0

	// Cannons follow the ship's attitude; lasers always fly straight ahead
	attitude := mgl64.AnglesToQuat(tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z(), mgl64.XYZ)
	for _, side := range []float64{-1, 1} {
		offset := mgl64.Vec3{side * parameter.DogfightLaserOffsetX, 0, parameter.DogfightLaserOffsetZ}
		spawnLaser(g.Ctx, tr.Position.Add(attitude.Rotate(offset)), core.FactionPlayer,
			parameter.DogfightPlayerDamage, parameter.DogfightPlayerLaserSpeed)
	}
	system.PlaySound(g.Ctx, audio.SoundShoot)
	return true
}

func spawnLaser(ctx *engine.Context, pos mgl64.Vec3, faction core.Faction, damage int, speed float64) core.Entity {
	dir := mgl64.Vec3{0, 0, -1}
	if faction == core.FactionEnemy {
		dir = mgl64.Vec3{0, 0, 1}
	}
	w := ctx.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Direction: dir, Speed: speed})
	w.Bullets.Set(e, component.BulletComponent{Faction: faction, Damage: damage})
	return e
}

// activateShield raises the shield when energy and cooldown allow, alerting on refusal
func (g *Game) activateShield() bool {
	switch {
	case g.cooldown > 0:
		g.alert(fmt.Sprintf("SHIELDS COOLING DOWN: %ds", int(math.Round(g.cooldown.Seconds()))), 1500*time.Millisecond)
		system.PlaySound(g.Ctx, audio.SoundAlert)
		return false
	case g.shield < parameter.DogfightShieldMinimum:
		g.alert("INSUFFICIENT SHIELDS", 1500*time.Millisecond)
		system.PlaySound(g.Ctx, audio.SoundAlert)
		return false
	}
	g.shieldActive = true
	g.shieldLeft = parameter.DogfightShieldDuration
	g.cooldown = parameter.DogfightShieldCooldown
	g.Ctx.Emit(event.EventShieldChanged, &event.ShieldPayload{Active: true})
	g.alert("SHIELDS ACTIVATED", 2*time.Second)
	system.PlaySound(g.Ctx, audio.SoundShield)
	return true
}

// takeDamage routes damage to the raised shield, then shield energy, then hull
func (g *Game) takeDamage(amount int) {
	w := g.Ctx.World
	if g.shieldActive {
		g.Ctx.Emit(event.EventPlayerDamaged, &event.DamagePayload{Amount: amount, Absorbed: true, Health: g.Health()})
		g.alert("SHIELDS BLOCKED DAMAGE", time.Second)
		return
	}

	tr, _ := w.Transforms.Get(g.player)
	if g.shield > 0 {
		g.shield = max(0, g.shield-amount)
		system.SpawnShieldBurst(g.Ctx, tr.Position, 200*time.Millisecond)
		g.Ctx.Emit(event.EventPlayerDamaged, &event.DamagePayload{Amount: amount, Absorbed: true, Health: g.Health()})
		g.alert(fmt.Sprintf("SHIELDS: %d%%", g.shield), time.Second)
		return
	}

	h, ok := w.Healths.Get(g.player)
	if !ok {
		return
	}
	empty := h.Damage(amount)
	w.Healths.Set(g.player, h)
	g.Ctx.Emit(event.EventPlayerDamaged, &event.DamagePayload{Amount: amount, Health: h.Current})
	g.alert(fmt.Sprintf("DAMAGE! HULL: %d%%", h.Current), 1500*time.Millisecond)
	system.PlaySound(g.Ctx, audio.SoundHit)

	if empty && g.Session().GameOver() == nil {
		g.Ctx.Emit(event.EventGameOver, nil)
		system.PlaySound(g.Ctx, audio.SoundGameOver)
		g.Ctx.Log().Info("mission failed", "score", g.Session().Score(), "kills", g.Session().Kills(),
			"left", g.missionLeft.String())
	}
}

func (g *Game) alert(msg string, d time.Duration) {
	g.Ctx.Emit(event.EventAlert, &event.AlertPayload{Message: msg, Duration: d})
}

// Efficiency rates kills against the mission quota, capped at 100
func Efficiency(kills int) int {
	return min(100, int(math.Round(float64(kills)/parameter.DogfightEfficiencyKills*100)))
}

// Rank returns the title of the highest threshold score reaches
func Rank(score int) string {
	title := parameter.DogfightRanks[0].Title
	for _, r := range parameter.DogfightRanks {
		if score >= r.MinScore {
			title = r.Title
		}
	}
	return title
}
