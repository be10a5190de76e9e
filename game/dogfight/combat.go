package dogfight

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
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

// combatSystem resolves laser hits, rams and pickup collection after all movement of the tick
// Every destroy goes through destroy so a fighter is credited exactly once however it died
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

func (s *combatSystem) Name() string  { return "dogfight-combat" }
func (s *combatSystem) Priority() int { return parameter.PriorityCombat }

func (s *combatSystem) Update(time.Duration) {
	s.resolver.Reset()
	s.playerLasers()
	s.enemyLasers()
	s.rams()
	s.pickups()
}

func (s *combatSystem) lasers(faction core.Faction, radius float64) []physics.Body {
	w := s.World
	var out []physics.Body
	for _, e := range w.Bullets.All() {
		if w.Deaths.Has(e) {
			continue
		}
		b, _ := w.Bullets.Get(e)
		if b.Faction != faction {
			continue
		}
		if tr, ok := w.Transforms.Get(e); ok {
			out = append(out, physics.Body{Entity: e, Position: tr.Position, Radius: radius})
		}
	}
	return out
}

func (s *combatSystem) fighters() []physics.Body {
	w := s.World
	out := make([]physics.Body, 0, w.Enemies.Count())
	for _, e := range w.Enemies.All() {
		if w.Deaths.Has(e) {
			continue
		}
		en, _ := w.Enemies.Get(e)
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		radius := parameter.DogfightLaserHitRadius
		if enemyType(en.Kind).LargeHitbox {
			radius = parameter.DogfightLaserHitRadiusLarge
		}
		out = append(out, physics.Body{Entity: e, Position: tr.Position, Radius: radius})
	}
	return out
}

// playerLasers applies each player laser to the first fighter it reaches
func (s *combatSystem) playerLasers() {
	s.resolver.Overlaps(s.lasers(core.FactionPlayer, 0), s.fighters(), s.hit)
}

func (s *combatSystem) hit(laser, fighter physics.Body) bool {
	w := s.World
	b, _ := w.Bullets.Get(laser.Entity)
	w.MarkDead(laser.Entity)
	system.SpawnColoredFlash(s.Context, laser.Position, parameter.DogfightHitLife, tcell.ColorRed)
	system.PlaySound(s.Context, audio.SoundHit)

	h, _ := w.Healths.Get(fighter.Entity)
	empty := h.Damage(b.Damage)
	w.Healths.Set(fighter.Entity, h)
	if !empty {
		return true
	}
	s.destroy(fighter.Entity, fighter.Position, false)
	return false
}

// enemyLasers damages the player once per laser that reaches the hull
func (s *combatSystem) enemyLasers() {
	w := s.World
	tr, ok := w.Transforms.Get(s.game.player)
	if !ok {
		return
	}
	for _, laser := range s.lasers(core.FactionEnemy, 0) {
		if !physics.Within(laser.Position, tr.Position, parameter.DogfightPlayerHitRadius) {
			continue
		}
		if !s.resolver.Consume(laser.Entity) || !w.MarkDead(laser.Entity) {
			continue
		}
		b, _ := w.Bullets.Get(laser.Entity)
		system.SpawnColoredFlash(s.Context, laser.Position, parameter.DogfightHitLife, tcell.ColorGreen)
		s.game.alert("IMPACT", 500*time.Millisecond)
		s.game.takeDamage(b.Damage)
		if !s.Session.Running() {
			return
		}
	}
}

// rams destroys fighters colliding with the player, crediting the kill and costing hull
func (s *combatSystem) rams() {
	w := s.World
	tr, ok := w.Transforms.Get(s.game.player)
	if !ok {
		return
	}
	for _, f := range s.fighters() {
		if !s.Session.Running() {
			return
		}
		if s.resolver.Consumed(f.Entity) {
			continue
		}
		if !physics.Within(tr.Position, f.Position, parameter.DogfightRamRadius) {
			continue
		}
		s.resolver.Consume(f.Entity)
		if !s.destroy(f.Entity, f.Position, true) {
			continue
		}
		s.game.alert("DIRECT COLLISION!", 1500*time.Millisecond)
		s.game.takeDamage(parameter.DogfightRamDamage)
	}
}

// destroy is the single death path for a fighter: score, kill, popup and a chance of supplies
// Returns false if the fighter was already dead this tick
func (s *combatSystem) destroy(e core.Entity, pos mgl64.Vec3, rammed bool) bool {
	w := s.World
	if !w.MarkDead(e) {
		return false
	}
	en, _ := w.Enemies.Get(e)
	s.Session.AddScore(en.Points)
	s.Session.AddKill()
	s.Emit(event.EventEnemyDestroyed, &event.EnemyPayload{
		Entity: e, Kind: en.Kind, Points: en.Points, Position: pos, Rammed: rammed,
	})
	s.Emit(event.EventScorePopup, &event.PopupPayload{Text: fmt.Sprintf("+%d", en.Points), Position: pos})
	system.PlaySound(s.Context, audio.SoundExplosion)

	if s.Rand.Float64() < parameter.DogfightPickupChance {
		spawnPickup(s.Context, pos)
	}
	return true
}

// pickups collects supplies within reach of the player
// A run ended earlier in the tick collects nothing
func (s *combatSystem) pickups() {
	if !s.Session.Running() {
		return
	}
	w := s.World
	g := s.game
	tr, ok := w.Transforms.Get(g.player)
	if !ok {
		return
	}
	for _, e := range w.Pickups.All() {
		if w.Deaths.Has(e) {
			continue
		}
		ptr, ok := w.Transforms.Get(e)
		if !ok || !physics.Within(tr.Position, ptr.Position, parameter.DogfightPickupRadius) {
			continue
		}
		if !w.MarkDead(e) {
			continue
		}
		p, _ := w.Pickups.Get(e)
		g.collect(p.Kind, ptr.Position)
	}
}

// collect applies a supply and announces it
func (g *Game) collect(kind component.PickupKind, pos mgl64.Vec3) {
	w := g.Ctx.World
	var label string
	switch kind {
	case component.PickupHealth:
		h, _ := w.Healths.Get(g.player)
		h.Heal(parameter.DogfightPickupHeal)
		w.Healths.Set(g.player, h)
		label = fmt.Sprintf("+%d HULL", parameter.DogfightPickupHeal)
	case component.PickupShield:
		g.shield = min(parameter.DogfightPlayerShield, g.shield+parameter.DogfightPickupShield)
		label = fmt.Sprintf("+%d SHIELD", parameter.DogfightPickupShield)
	case component.PickupAmmo:
		g.Session().AddScore(parameter.DogfightPickupAmmoScore)
		label = fmt.Sprintf("+%d", parameter.DogfightPickupAmmoScore)
	}
	g.Ctx.Emit(event.EventPickupCollected, &event.PickupPayload{Kind: kind, Position: pos})
	g.Ctx.Emit(event.EventScorePopup, &event.PopupPayload{Text: label, Position: pos})
	system.PlaySound(g.Ctx, audio.SoundPickup)
}
