package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/parameter"
)

func newTestContext() *engine.Context {
	return engine.NewContext("test", rand.New(rand.NewPCG(1, 2)), nil)
}

func TestMotionAdvancesAlongDirection(t *testing.T) {
	ctx := newTestContext()
	w := ctx.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Direction: mgl64.Vec3{0, 0, 1}, Speed: 0.5})

	s := NewMotionSystem(ctx)
	prev := 0.0
	for i := 0; i < 10; i++ {
		s.Update(parameter.TickInterval)
		tr, _ := w.Transforms.Get(e)
		if tr.Position.Z() <= prev {
			t.Fatalf("Expected z to increase past %f, got %f", prev, tr.Position.Z())
		}
		if tr.Position.X() != 0 || tr.Position.Y() != 0 {
			t.Fatalf("Expected motion only on z, got %v", tr.Position)
		}
		prev = tr.Position.Z()
	}
	if diff := prev - 5.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Expected z 5.0 after 10 frames, got %f", prev)
	}
}

func TestBoundaryMarksOutOfRange(t *testing.T) {
	ctx := newTestContext()
	w := ctx.World
	inside := w.CreateEntity()
	w.Transforms.Set(inside, component.TransformComponent{Position: mgl64.Vec3{0, 0, 10}})
	w.Bullets.Set(inside, component.BulletComponent{})
	outside := w.CreateEntity()
	w.Transforms.Set(outside, component.TransformComponent{Position: mgl64.Vec3{0, 0, 51}})
	w.Bullets.Set(outside, component.BulletComponent{})
	enemy := w.CreateEntity()
	w.Transforms.Set(enemy, component.TransformComponent{Position: mgl64.Vec3{0, 0, 51}})
	w.Enemies.Set(enemy, component.EnemyComponent{})

	s := NewBoundarySystem(ctx, FarPlane{Select: SelectBullets, Axis: 2, Min: -50, Max: 50})
	s.Update(parameter.TickInterval)

	if w.Deaths.Has(inside) {
		t.Error("Expected bullet inside window to survive")
	}
	if !w.Deaths.Has(outside) {
		t.Error("Expected bullet past far plane to be marked")
	}
	if w.Deaths.Has(enemy) {
		t.Error("Expected enemy to be ignored by bullet plane")
	}
}

func TestCullRemovesOnlyMarked(t *testing.T) {
	ctx := newTestContext()
	w := ctx.World
	keep := w.CreateEntity()
	w.Transforms.Set(keep, component.TransformComponent{})
	drop := w.CreateEntity()
	w.Transforms.Set(drop, component.TransformComponent{})
	w.Enemies.Set(drop, component.EnemyComponent{})
	w.MarkDead(drop)

	NewCullSystem(ctx).Update(parameter.TickInterval)

	if !w.Alive(keep) {
		t.Error("Expected unmarked entity to survive")
	}
	if w.Transforms.Has(drop) || w.Enemies.Has(drop) || w.Deaths.Has(drop) {
		t.Error("Expected marked entity to lose every component")
	}
}

func TestEffectExpires(t *testing.T) {
	ctx := newTestContext()
	w := ctx.World
	SpawnHitFlash(ctx, mgl64.Vec3{}, 3*parameter.TickInterval)
	s := NewEffectSystem(ctx, EffectStyle{})

	s.Update(parameter.TickInterval)
	s.Update(parameter.TickInterval)
	for _, e := range w.Effects.All() {
		if w.Deaths.Has(e) {
			t.Fatal("Expected effect alive before its lifetime")
		}
	}
	s.Update(parameter.TickInterval)
	for _, e := range w.Effects.All() {
		if !w.Deaths.Has(e) {
			t.Fatal("Expected effect marked after its lifetime")
		}
	}
}

func TestExplosionFromEvent(t *testing.T) {
	ctx := newTestContext()
	s := NewEffectSystem(ctx, EffectStyle{
		ExplosionLife:      time.Second,
		ExplosionParticles: 5,
		ParticleSpeed:      0.1,
	})
	ctx.World.AddSystem(s)
	ctx.Emit(event.EventEnemyDestroyed, &event.EnemyPayload{Position: mgl64.Vec3{1, 2, 3}})
	ctx.Dispatch()

	if got := ctx.World.Effects.Count(); got != 6 {
		t.Fatalf("Expected 6 effect entities, got %d", got)
	}
	if got := ctx.World.Kinetics.Count(); got != 5 {
		t.Errorf("Expected 5 moving particles, got %d", got)
	}
}

func TestAlertReplacesPrevious(t *testing.T) {
	ctx := newTestContext()
	SpawnAlert(ctx, "FIRST", time.Second)
	SpawnAlert(ctx, "SECOND", time.Second)

	text, ok := ActiveAlert(ctx.World)
	if !ok || text != "SECOND" {
		t.Errorf("Expected SECOND, got %q (ok=%v)", text, ok)
	}
}

func TestStarfieldWraps(t *testing.T) {
	ctx := newTestContext()
	cfg := StarfieldConfig{Count: 50, Speed: 1.8, FarPlane: 30, ResetZ: -150, ResetBand: 50, Spread: 100}
	s := NewStarfieldSystem(ctx, cfg)
	s.Seed()

	if got := ctx.World.Stars.Count(); got != 50 {
		t.Fatalf("Expected 50 stars, got %d", got)
	}
	for i := 0; i < 600; i++ {
		s.Update(parameter.TickInterval)
	}
	if got := ctx.World.Stars.Count(); got != 50 {
		t.Errorf("Expected star count unchanged, got %d", got)
	}
	for _, e := range ctx.World.Stars.All() {
		tr, _ := ctx.World.Transforms.Get(e)
		if tr.Position.Z() > cfg.FarPlane {
			t.Errorf("Expected star within far plane, got z=%f", tr.Position.Z())
		}
	}
}

type recordingPlayer struct {
	audio.Silent
	played []audio.SoundType
}

func (r *recordingPlayer) Play(s audio.SoundType) { r.played = append(r.played, s) }

func TestAudioSystemForwardsSounds(t *testing.T) {
	ctx := newTestContext()
	p := &recordingPlayer{}
	ctx.World.AddSystem(NewAudioSystem(ctx, p))

	PlaySound(ctx, audio.SoundExplosion)
	PlaySound(ctx, audio.SoundPickup)
	ctx.Dispatch()

	if len(p.played) != 2 || p.played[0] != audio.SoundExplosion || p.played[1] != audio.SoundPickup {
		t.Errorf("Expected [explosion pickup], got %v", p.played)
	}
}
