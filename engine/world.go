package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
)

// World owns all entities and component stores of one game session
// Stores are public for direct system access
type World struct {
	nextEntityID core.Entity

	Transforms *Store[component.TransformComponent]
	Kinetics   *Store[component.KineticComponent]
	Colliders  *Store[component.ColliderComponent]
	Healths    *Store[component.HealthComponent]
	Players    *Store[component.PlayerComponent]
	Enemies    *Store[component.EnemyComponent]
	Bullets    *Store[component.BulletComponent]
	Pickups    *Store[component.PickupComponent]
	Effects    *Store[component.EffectComponent]
	Stars      *Store[component.StarComponent]
	Walls      *Store[component.WallComponent]
	Pieces     *Store[component.PieceComponent]
	Deaths     *Store[component.DeathComponent]

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Transforms:   NewStore[component.TransformComponent](),
		Kinetics:     NewStore[component.KineticComponent](),
		Colliders:    NewStore[component.ColliderComponent](),
		Healths:      NewStore[component.HealthComponent](),
		Players:      NewStore[component.PlayerComponent](),
		Enemies:      NewStore[component.EnemyComponent](),
		Bullets:      NewStore[component.BulletComponent](),
		Pickups:      NewStore[component.PickupComponent](),
		Effects:      NewStore[component.EffectComponent](),
		Stars:        NewStore[component.StarComponent](),
		Walls:        NewStore[component.WallComponent](),
		Pieces:       NewStore[component.PieceComponent](),
		Deaths:       NewStore[component.DeathComponent](),
	}

	w.allStores = []AnyStore{
		w.Transforms, w.Kinetics, w.Colliders, w.Healths,
		w.Players, w.Enemies, w.Bullets, w.Pickups,
		w.Effects, w.Stars, w.Walls, w.Pieces, w.Deaths,
	}
	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// DestroyBatch removes all components of many entities
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	for _, s := range w.allStores {
		s.RemoveBatch(entities)
	}
}

// MarkDead tags an entity for removal by the cull system
// Returns false if it was already tagged, so callers can apply a death path once
func (w *World) MarkDead(e core.Entity) bool {
	if w.Deaths.Has(e) {
		return false
	}
	w.Deaths.Set(e, component.DeathComponent{})
	return true
}

// Alive reports an entity that exists and is not tagged for removal
func (w *World) Alive(e core.Entity) bool {
	return w.Transforms.Has(e) && !w.Deaths.Has(e)
}

// Clear removes every entity; entity IDs keep increasing so stale references never alias
func (w *World) Clear() {
	for _, s := range w.allStores {
		s.Clear()
	}
}

// AddSystem registers a system, keeping systems sorted by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(sys System) {
	w.systems = append(w.systems, sys)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs every system once in priority order
func (w *World) Update(dt time.Duration) {
	for _, sys := range w.systems {
		sys.Update(dt)
	}
}

// EntityCount returns the number of entities with a transform
func (w *World) EntityCount() int {
	return w.Transforms.Count()
}
