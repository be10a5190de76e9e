package shooter

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/physics"
)

// spawnSystem rolls the per-tick spawn chance and places drones on a random side
type spawnSystem struct {
	engine.SystemBase
	tuning parameter.ShooterDifficulty
}

func newSpawnSystem(ctx *engine.Context, tuning parameter.ShooterDifficulty) *spawnSystem {
	return &spawnSystem{SystemBase: engine.NewSystemBase(ctx), tuning: tuning}
}

func (s *spawnSystem) Name() string  { return "shooter-spawn" }
func (s *spawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *spawnSystem) Update(time.Duration) {
	if s.World.Enemies.Count() >= parameter.ShooterMaxEnemies {
		return
	}
	if s.Rand.Float64() >= s.tuning.SpawnChance {
		return
	}
	s.spawn()
}

func (s *spawnSystem) spawn() {
	r := s.Rand
	spread := func(extent float64) float64 { return (r.Float64() - 0.5) * extent }

	var pos mgl64.Vec3
	switch r.IntN(4) {
	case 0:
		pos = mgl64.Vec3{spread(parameter.ShooterSpawnSpread), parameter.ShooterSpawnTop, spread(parameter.ShooterSpawnSpread)}
	case 1:
		pos = mgl64.Vec3{parameter.ShooterSpawnRight, spread(parameter.ShooterSpawnDepth), spread(parameter.ShooterSpawnSpread)}
	case 2:
		pos = mgl64.Vec3{spread(parameter.ShooterSpawnSpread), parameter.ShooterSpawnBottom, spread(parameter.ShooterSpawnSpread)}
	default:
		pos = mgl64.Vec3{parameter.ShooterSpawnLeft, spread(parameter.ShooterSpawnDepth), spread(parameter.ShooterSpawnSpread)}
	}

	w := s.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	w.Enemies.Set(e, component.EnemyComponent{
		Kind:   component.EnemyDrone,
		Points: parameter.ShooterKillPoints,
		Damage: parameter.ShooterCollisionDamage,
		Speed:  s.tuning.SpeedBase + r.Float64()*s.tuning.SpeedJitter,
	})
	w.Healths.Set(e, component.NewHealth(s.tuning.Health))
	s.Emit(event.EventEnemySpawned, &event.EnemyPayload{Entity: e, Kind: component.EnemyDrone, Position: pos})
}

// enemySystem homes every drone on the ship and spins it
type enemySystem struct {
	engine.SystemBase
	game *Game
}

func newEnemySystem(ctx *engine.Context, g *Game) *enemySystem {
	return &enemySystem{SystemBase: engine.NewSystemBase(ctx), game: g}
}

func (s *enemySystem) Name() string  { return "shooter-enemy" }
func (s *enemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *enemySystem) Update(dt time.Duration) {
	w := s.World
	target, ok := w.Transforms.Get(s.game.player)
	if !ok {
		return
	}
	frames := physics.FrameScale(dt)
	for _, e := range w.Enemies.All() {
		if w.Deaths.Has(e) {
			continue
		}
		en, _ := w.Enemies.Get(e)
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		tr.Position = physics.Homing(tr.Position, target.Position, en.Speed, dt)
		tr.Rotation[0] += 0.02 * frames
		tr.Rotation[1] += 0.03 * frames
		w.Transforms.Set(e, tr)
	}
}
