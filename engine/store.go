package engine

import "github.com/lixenwraith/starfall/core"

// AnyStore is the type-erased view of a Store used for uniform entity cleanup
type AnyStore interface {
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Clear()
	Count() int
}

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
// Not safe for concurrent use: a world is mutated only by its own update step
type Store[T any] struct {
	components map[core.Entity]T
	index      map[core.Entity]int // Position of entity in entities
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		index:      make(map[core.Entity]int),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.index[e] = len(s.entities)
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component of an entity, swap-removing it from the dense slice
func (s *Store[T]) Remove(e core.Entity) {
	i, exists := s.index[e]
	if !exists {
		return
	}
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[i] = moved
	s.index[moved] = i
	s.entities = s.entities[:last]
	delete(s.index, e)
	delete(s.components, e)
}

// RemoveBatch deletes multiple entities in a single compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}

	removed := 0
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			delete(s.components, e)
			delete(s.index, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	writeIdx := 0
	for _, e := range s.entities {
		if _, keep := s.components[e]; keep {
			s.entities[writeIdx] = e
			s.index[e] = writeIdx
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}

// All returns a snapshot of entities holding this component, in insertion order unless removals reordered them
// Mutating the store while ranging over the snapshot is safe
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.index = make(map[core.Entity]int)
	s.entities = s.entities[:0]
}
