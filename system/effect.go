package system

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/parameter"
)

// EffectSystem ages timed visual effects and spawns them from gameplay events
// Explosions, hit flashes, popups and alerts are ordinary entities updated in the same tick as gameplay
type EffectSystem struct {
	engine.SystemBase
	style EffectStyle
}

// EffectStyle tunes the effects a game spawns from events
type EffectStyle struct {
	ExplosionLife      time.Duration
	ExplosionParticles int
	ParticleSpeed      float64
	PopupLife          time.Duration
	HitLife            time.Duration
}

// NewEffectSystem creates an effect system
func NewEffectSystem(ctx *engine.Context, style EffectStyle) *EffectSystem {
	return &EffectSystem{SystemBase: engine.NewSystemBase(ctx), style: style}
}

func (s *EffectSystem) Name() string  { return "effect" }
func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }

func (s *EffectSystem) EventTypes() []event.Type {
	return []event.Type{event.EventEnemyDestroyed, event.EventAlert, event.EventScorePopup}
}

func (s *EffectSystem) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventEnemyDestroyed:
		if p, ok := ev.Payload.(*event.EnemyPayload); ok {
			SpawnExplosion(s.Context, p.Position, s.style.ExplosionParticles, s.style.ParticleSpeed, s.style.ExplosionLife)
		}
	case event.EventAlert:
		if p, ok := ev.Payload.(*event.AlertPayload); ok {
			SpawnAlert(s.Context, p.Message, p.Duration)
		}
	case event.EventScorePopup:
		if p, ok := ev.Payload.(*event.PopupPayload); ok {
			SpawnPopup(s.Context, p.Position, p.Text, s.style.PopupLife)
		}
	}
}

func (s *EffectSystem) Update(dt time.Duration) {
	for _, e := range s.World.Effects.All() {
		fx, _ := s.World.Effects.Get(e)
		fx.Life -= dt
		if fx.Life <= 0 {
			s.World.MarkDead(e)
			continue
		}
		s.World.Effects.Set(e, fx)
	}
}

func spawnEffect(ctx *engine.Context, pos mgl64.Vec3, fx component.EffectComponent) core.Entity {
	w := ctx.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	w.Effects.Set(e, fx)
	return e
}

// SpawnExplosion creates a flash at pos with particles flying outward on random directions
func SpawnExplosion(ctx *engine.Context, pos mgl64.Vec3, particles int, speed float64, life time.Duration) {
	if life <= 0 {
		return
	}
	spawnEffect(ctx, pos, component.EffectComponent{
		Kind: component.EffectExplosion, Life: life, MaxLife: life, Color: tcell.ColorOrange,
	})
	for i := 0; i < particles; i++ {
		// Uniform direction on the unit sphere
		z := ctx.Rand.Float64()*2 - 1
		a := ctx.Rand.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		dir := mgl64.Vec3{r * math.Cos(a), r * math.Sin(a), z}

		e := spawnEffect(ctx, pos, component.EffectComponent{
			Kind: component.EffectParticle, Life: life, MaxLife: life, Color: particleColor(i),
		})
		ctx.World.Kinetics.Set(e, component.KineticComponent{
			Direction: dir,
			Speed:     speed * (0.5 + ctx.Rand.Float64()),
		})
	}
}

func particleColor(i int) tcell.Color {
	switch i % 3 {
	case 0:
		return tcell.ColorYellow
	case 1:
		return tcell.ColorOrange
	default:
		return tcell.ColorRed
	}
}

// SpawnHitFlash creates a short white flash at pos
func SpawnHitFlash(ctx *engine.Context, pos mgl64.Vec3, life time.Duration) {
	SpawnColoredFlash(ctx, pos, life, tcell.ColorWhite)
}

// SpawnColoredFlash creates a short flash at pos in color
func SpawnColoredFlash(ctx *engine.Context, pos mgl64.Vec3, life time.Duration, color tcell.Color) {
	spawnEffect(ctx, pos, component.EffectComponent{
		Kind: component.EffectHitFlash, Life: life, MaxLife: life, Color: color,
	})
}

// SpawnShieldBurst creates a shield impact ring at pos
func SpawnShieldBurst(ctx *engine.Context, pos mgl64.Vec3, life time.Duration) {
	spawnEffect(ctx, pos, component.EffectComponent{
		Kind: component.EffectShieldBurst, Life: life, MaxLife: life, Color: tcell.ColorDodgerBlue,
	})
}

// SpawnPopup creates a floating label at pos
func SpawnPopup(ctx *engine.Context, pos mgl64.Vec3, text string, life time.Duration) {
	e := spawnEffect(ctx, pos, component.EffectComponent{
		Kind: component.EffectPopup, Life: life, MaxLife: life, Text: text, Color: tcell.ColorGold,
	})
	ctx.World.Kinetics.Set(e, component.KineticComponent{Direction: mgl64.Vec3{0, 1, 0}, Speed: 0.05})
}

// SpawnAlert creates a HUD message; a newer alert replaces older ones
func SpawnAlert(ctx *engine.Context, text string, life time.Duration) {
	for _, e := range ctx.World.Effects.All() {
		if fx, _ := ctx.World.Effects.Get(e); fx.Kind == component.EffectAlert {
			ctx.World.MarkDead(e)
		}
	}
	spawnEffect(ctx, mgl64.Vec3{}, component.EffectComponent{
		Kind: component.EffectAlert, Life: life, MaxLife: life, Text: text, Color: tcell.ColorRed,
	})
}

// ActiveAlert returns the live alert text, if any
func ActiveAlert(w *engine.World) (string, bool) {
	for _, e := range w.Effects.All() {
		fx, _ := w.Effects.Get(e)
		if fx.Kind == component.EffectAlert && !w.Deaths.Has(e) {
			return fx.Text, true
		}
	}
	return "", false
}
