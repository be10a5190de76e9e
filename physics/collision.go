package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/core"
)

// Within reports a distance-threshold hit: Euclidean distance strictly below radius
func Within(a, b mgl64.Vec3, radius float64) bool {
	d := a.Sub(b)
	return d.Dot(d) < radius*radius
}

// Body is a collision candidate snapshot
type Body struct {
	Entity   core.Entity
	Position mgl64.Vec3
	Radius   float64
}

// Pair is a resolved interaction between two bodies
type Pair struct {
	A, B Body
}

// PairResolver tracks entities consumed during one frame
// Each consumed entity takes part in at most one resolved pair per frame
type PairResolver struct {
	consumed map[core.Entity]struct{}
}

// NewPairResolver creates an empty resolver
func NewPairResolver() *PairResolver {
	return &PairResolver{consumed: make(map[core.Entity]struct{})}
}

// Consume marks e as used; returns false if it was already consumed
func (r *PairResolver) Consume(e core.Entity) bool {
	if _, ok := r.consumed[e]; ok {
		return false
	}
	r.consumed[e] = struct{}{}
	return true
}

// Consumed reports whether e was used this frame
func (r *PairResolver) Consumed(e core.Entity) bool {
	_, ok := r.consumed[e]
	return ok
}

// Reset clears consumption for the next frame
func (r *PairResolver) Reset() {
	clear(r.consumed)
}

// Overlaps returns pairs (a, b) within a.Radius + b.Radius, scanning as in order
// Each a is matched with at most one b. onHit runs for every pair as it is found and a b stays
// available for later as only if it returns true; nil consumes both sides
// Entities already consumed are skipped
func (r *PairResolver) Overlaps(as, bs []Body, onHit func(a, b Body) bool) []Pair {
	var pairs []Pair
	for _, a := range as {
		if r.Consumed(a.Entity) {
			continue
		}
		for _, b := range bs {
			if r.Consumed(b.Entity) {
				continue
			}
			if !Within(a.Position, b.Position, a.Radius+b.Radius) {
				continue
			}
			r.Consume(a.Entity)
			if onHit == nil || !onHit(a, b) {
				r.Consume(b.Entity)
			}
			pairs = append(pairs, Pair{A: a, B: b})
			break
		}
	}
	return pairs
}
