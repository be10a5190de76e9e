package dogfight

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/physics"
	"github.com/lixenwraith/starfall/system"
)

// enemyType returns the tuning row of a dogfight enemy kind
func enemyType(k component.EnemyKind) parameter.DogfightEnemyType {
	i := int(k) - int(component.EnemyInterceptor)
	if i < 0 || i >= len(parameter.DogfightEnemyTypes) {
		i = 0
	}
	return parameter.DogfightEnemyTypes[i]
}

// pickKind draws an enemy kind by table weight
func pickKind(roll float64) component.EnemyKind {
	acc := 0.0
	for i, t := range parameter.DogfightEnemyTypes {
		acc += t.Weight
		if roll < acc {
			return component.EnemyInterceptor + component.EnemyKind(i)
		}
	}
	return component.EnemyGroundTargeting
}

// spawnSystem launches a fighter every spawn interval while below the cap
type spawnSystem struct {
	engine.SystemBase
	interval time.Duration
	timer    time.Duration
	count    int
}

func newSpawnSystem(ctx *engine.Context) *spawnSystem {
	return &spawnSystem{
		SystemBase: engine.NewSystemBase(ctx),
		interval:   time.Duration(parameter.DogfightSpawnBase / parameter.DogfightSpawnRate),
	}
}

func (s *spawnSystem) Name() string  { return "dogfight-spawn" }
func (s *spawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *spawnSystem) Update(dt time.Duration) {
	s.timer += dt
	if s.timer < s.interval || s.World.Enemies.Count() >= parameter.DogfightMaxEnemies {
		return
	}
	s.timer = 0
	s.spawn(pickKind(s.Rand.Float64()))
}

func (s *spawnSystem) reset() {
	s.timer = 0
	s.count = 0
}

func (s *spawnSystem) spawn(kind component.EnemyKind) core.Entity {
	r := s.Rand
	t := enemyType(kind)
	pos := mgl64.Vec3{
		(r.Float64()*2 - 1) * parameter.DogfightSpawnX,
		(r.Float64()*2 - 1) * parameter.DogfightSpawnY,
		parameter.DogfightSpawnZNear - r.Float64()*parameter.DogfightSpawnZDepth,
	}
	s.count++

	w := s.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	w.Healths.Set(e, component.NewHealth(int(parameter.DogfightEnemyHealth*t.HealthMul)))
	w.Enemies.Set(e, component.EnemyComponent{
		Kind:      kind,
		Points:    t.Points,
		Damage:    parameter.DogfightEnemyDamage,
		Speed:     parameter.DogfightEnemySpeed * t.SpeedMul,
		FireRate:  time.Duration(float64(parameter.DogfightEnemyFireRate) * t.FireMul),
		SinceShot: time.Duration(r.Float64() * float64(2*time.Second)),
		Phase:     float64(s.count),
	})
	s.Emit(event.EventEnemySpawned, &event.EnemyPayload{Entity: e, Kind: kind, Points: t.Points, Position: pos})
	return e
}

// enemySystem flies fighters toward the player with per-kind weave and fires their lasers
type enemySystem struct {
	engine.SystemBase
}

func newEnemySystem(ctx *engine.Context) *enemySystem {
	return &enemySystem{SystemBase: engine.NewSystemBase(ctx)}
}

func (s *enemySystem) Name() string  { return "dogfight-enemy" }
func (s *enemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *enemySystem) Update(dt time.Duration) {
	w := s.World
	frames := physics.FrameScale(dt)
	ms := float64(s.Session.Elapsed().Milliseconds())

	for _, e := range w.Enemies.All() {
		if w.Deaths.Has(e) {
			continue
		}
		en, _ := w.Enemies.Get(e)
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		t := enemyType(en.Kind)

		tr.Position[2] += en.Speed * frames
		switch en.Kind {
		case component.EnemyInterceptor:
			tr.Position[0] += math.Sin(ms*0.002+en.Phase) * t.ZigzagX * frames
			tr.Rotation[1] += 0.001 * frames
		case component.EnemyDefender:
			tr.Position[0] += math.Sin(ms*0.0015+en.Phase) * t.ZigzagX * frames
			tr.Rotation[1] += 0.0005 * frames
		case component.EnemyGroundTargeting:
			tr.Position[1] += math.Cos(ms*0.001+en.Phase) * t.BobY * frames
			tr.Rotation[1] += 0.0002 * frames
		}
		w.Transforms.Set(e, tr)

		en.SinceShot += dt
		if en.FireRate > 0 && en.SinceShot >= en.FireRate {
			en.SinceShot = 0
			pos := tr.Position
			pos[2] += parameter.DogfightEnemyLaserOffset
			spawnLaser(s.Context, pos, core.FactionEnemy, en.Damage, parameter.DogfightEnemyLaserSpeed)
			system.PlaySound(s.Context, audio.SoundEnemyShoot)
		}
		w.Enemies.Set(e, en)
	}
}

// pickupSystem spins and bobs drifting supplies; motion and collection happen elsewhere
type pickupSystem struct {
	engine.SystemBase
}

func newPickupSystem(ctx *engine.Context) *pickupSystem {
	return &pickupSystem{SystemBase: engine.NewSystemBase(ctx)}
}

func (s *pickupSystem) Name() string  { return "dogfight-pickup" }
func (s *pickupSystem) Priority() int { return parameter.PriorityPickup }

func (s *pickupSystem) Update(dt time.Duration) {
	w := s.World
	frames := physics.FrameScale(dt)
	ms := float64(s.Session.Elapsed().Milliseconds())
	for _, e := range w.Pickups.All() {
		p, _ := w.Pickups.Get(e)
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		tr.Position[1] += math.Sin(ms*0.001+p.Phase) * 0.008 * frames
		tr.Rotation[0] += 0.03 * frames
		tr.Rotation[1] += 0.04 * frames
		w.Transforms.Set(e, tr)
	}
}

// spawnPickup drops a random supply at pos drifting toward the player
func spawnPickup(ctx *engine.Context, pos mgl64.Vec3) core.Entity {
	kind := component.PickupKind(ctx.Rand.IntN(3))
	w := ctx.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Direction: mgl64.Vec3{0, 0, 1}, Speed: parameter.DogfightPickupSpeed})
	w.Pickups.Set(e, component.PickupComponent{Kind: kind, Phase: float64(e)})
	return e
}
