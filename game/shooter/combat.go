package shooter

import (
	"time"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/physics"
	"github.com/lixenwraith/starfall/system"
)

// combatSystem resolves ship rams and bullet hits after all movement of the tick
// Each bullet is consumed once and each destroyed drone is credited once
type combatSystem struct {
	engine.SystemBase
	game     *Game
	resolver *physics.PairResolver
}

func newCombatSystem(ctx *engine.Context, g *Game) *combatSystem {
	return &combatSystem{
		SystemBase: engine.NewSystemBase(ctx),
		game:       g,
		resolver:   physics.NewPairResolver(),
	}
}

func (s *combatSystem) Name() string  { return "shooter-combat" }
func (s *combatSystem) Priority() int { return parameter.PriorityCombat }

func (s *combatSystem) Update(time.Duration) {
	s.resolver.Reset()
	s.rams()
	// A ram that ended the run leaves nothing to credit
	if !s.Session.Running() {
		return
	}
	s.hits()
}

func (s *combatSystem) enemyBodies() []physics.Body {
	w := s.World
	bodies := make([]physics.Body, 0, w.Enemies.Count())
	for _, e := range w.Enemies.All() {
		if w.Deaths.Has(e) {
			continue
		}
		if tr, ok := w.Transforms.Get(e); ok {
			bodies = append(bodies, physics.Body{Entity: e, Position: tr.Position})
		}
	}
	return bodies
}

// rams destroys drones touching the ship; the ship takes damage but no score is awarded
func (s *combatSystem) rams() {
	w := s.World
	tr, ok := w.Transforms.Get(s.game.player)
	if !ok {
		return
	}
	for _, drone := range s.enemyBodies() {
		if !physics.Within(tr.Position, drone.Position, parameter.ShooterCollisionRadius) {
			continue
		}
		if !s.resolver.Consume(drone.Entity) || !w.MarkDead(drone.Entity) {
			continue
		}
		s.Emit(event.EventEnemyDestroyed, &event.EnemyPayload{
			Entity: drone.Entity, Kind: component.EnemyDrone, Position: drone.Position, Rammed: true,
		})
		system.PlaySound(s.Context, audio.SoundExplosion)
		s.damagePlayer(parameter.ShooterCollisionDamage)
	}
}

// hits applies every bullet to at most one drone it overlaps
func (s *combatSystem) hits() {
	w := s.World
	var bullets []physics.Body
	for _, e := range w.Bullets.All() {
		if w.Deaths.Has(e) {
			continue
		}
		if tr, ok := w.Transforms.Get(e); ok {
			bullets = append(bullets, physics.Body{Entity: e, Position: tr.Position, Radius: parameter.ShooterBulletHitRadius})
		}
	}

	s.resolver.Overlaps(bullets, s.enemyBodies(), s.hit)
}

// hit consumes the bullet and damages the drone; a surviving drone stays targetable
func (s *combatSystem) hit(bullet, drone physics.Body) bool {
	w := s.World
	b, _ := w.Bullets.Get(bullet.Entity)
	w.MarkDead(bullet.Entity)
	system.SpawnHitFlash(s.Context, bullet.Position, parameter.ShooterHitFlashFrames*parameter.TickInterval)
	system.PlaySound(s.Context, audio.SoundHit)

	h, _ := w.Healths.Get(drone.Entity)
	empty := h.Damage(b.Damage)
	w.Healths.Set(drone.Entity, h)
	if !empty {
		return true
	}
	if !w.MarkDead(drone.Entity) {
		return false
	}

	en, _ := w.Enemies.Get(drone.Entity)
	s.Session.AddScore(en.Points)
	s.Session.AddKill()
	s.Emit(event.EventEnemyDestroyed, &event.EnemyPayload{
		Entity: drone.Entity, Kind: en.Kind, Points: en.Points, Position: drone.Position,
	})
	system.PlaySound(s.Context, audio.SoundExplosion)
	return false
}

// damagePlayer floors health at zero and ends the run once
func (s *combatSystem) damagePlayer(amount int) {
	w := s.World
	player := s.game.player
	h, ok := w.Healths.Get(player)
	if !ok {
		return
	}
	empty := h.Damage(amount)
	w.Healths.Set(player, h)
	s.Emit(event.EventPlayerDamaged, &event.DamagePayload{Amount: amount, Health: h.Current})

	if empty && s.Session.GameOver() == nil {
		s.Emit(event.EventGameOver, nil)
		system.PlaySound(s.Context, audio.SoundGameOver)
		s.Log().Info("ship destroyed", "score", s.Session.Score(), "kills", s.Session.Kills())
	}
}
