package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/input"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	handled  []event.Event
	subs     []event.Type
}

func (r *recordingSystem) Name() string              { return r.name }
func (r *recordingSystem) Priority() int             { return r.priority }
func (r *recordingSystem) EventTypes() []event.Type  { return r.subs }
func (r *recordingSystem) HandleEvent(ev event.Event) { r.handled = append(r.handled, ev) }
func (r *recordingSystem) Update(time.Duration)      { *r.log = append(*r.log, r.name) }

func TestWorldSystemsRunByPriority(t *testing.T) {
	var log []string
	w := NewWorld()
	w.AddSystem(&recordingSystem{name: "cull", priority: 1000, log: &log})
	w.AddSystem(&recordingSystem{name: "player", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "combat", priority: 60, log: &log})
	w.AddSystem(&recordingSystem{name: "enemy", priority: 20, log: &log})

	w.Update(time.Millisecond)

	want := []string{"player", "enemy", "combat", "cull"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestWorldDestroyEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{})
	w.Healths.Set(e, component.NewHealth(3))
	w.Enemies.Set(e, component.EnemyComponent{})

	w.DestroyEntity(e)

	if w.Transforms.Has(e) || w.Healths.Has(e) || w.Enemies.Has(e) {
		t.Error("Expected all components removed")
	}
}

func TestWorldMarkDeadOnce(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{})

	if !w.MarkDead(e) {
		t.Fatal("Expected first MarkDead to succeed")
	}
	if w.MarkDead(e) {
		t.Error("Expected second MarkDead to report already dead")
	}
	if w.Alive(e) {
		t.Error("Expected marked entity not alive")
	}
}

func TestWorldClearKeepsIDsUnique(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.Transforms.Set(a, component.TransformComponent{})
	w.Clear()
	b := w.CreateEntity()
	if a == b {
		t.Errorf("Expected new entity id after Clear, got %d twice", a)
	}
	if w.EntityCount() != 0 {
		t.Errorf("Expected empty world, got %d", w.EntityCount())
	}
}

func TestContextDispatchRoutesSubscribedEvents(t *testing.T) {
	var log []string
	ctx := NewContext("test", nil, nil)
	sub := &recordingSystem{name: "sub", log: &log, subs: []event.Type{event.EventEnemyDestroyed}}
	other := &recordingSystem{name: "other", log: &log, subs: []event.Type{event.EventGameOver}}
	ctx.World.AddSystem(sub)
	ctx.World.AddSystem(other)

	ctx.Emit(event.EventEnemyDestroyed, &event.EnemyPayload{Points: 100})
	ctx.Emit(event.EventScorePopup, nil)
	ctx.Dispatch()

	if len(sub.handled) != 1 || sub.handled[0].Type != event.EventEnemyDestroyed {
		t.Errorf("Expected one EnemyDestroyed event, got %v", sub.handled)
	}
	if len(other.handled) != 0 {
		t.Errorf("Expected no events for unrelated subscriber, got %v", other.handled)
	}
	if ctx.Events.Len() != 0 {
		t.Errorf("Expected queue drained, got %d", ctx.Events.Len())
	}
}

func TestContextResetClearsRun(t *testing.T) {
	ctx := NewContext("test", nil, nil)
	e := ctx.World.CreateEntity()
	ctx.World.Transforms.Set(e, component.TransformComponent{Scale: 1})
	ctx.Emit(event.EventScorePopup, nil)
	ctx.Input = ctx.Input.With(input.ActionFire).With(input.ActionMoveLeft)
	if err := ctx.Session.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ctx.Session.AddScore(50)

	ctx.Reset()

	if ctx.Input != 0 || ctx.Input.Has(input.ActionFire) {
		t.Errorf("Expected no held input, got %b", ctx.Input)
	}
	if ctx.World.Alive(e) {
		t.Error("Expected world cleared")
	}
	if ctx.Events.Len() != 0 {
		t.Errorf("Expected queue cleared, got %d", ctx.Events.Len())
	}
	if ctx.Session.Phase() != PhaseIdle || ctx.Session.Score() != 0 {
		t.Errorf("Expected idle session with no score, got phase=%s score=%d", ctx.Session.Phase(), ctx.Session.Score())
	}
}
