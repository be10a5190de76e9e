package physics

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/parameter"
)

func TestFrameScale(t *testing.T) {
	if got := FrameScale(parameter.TickInterval); math.Abs(got-1) > 1e-6 {
		t.Errorf("Expected one reference frame per tick, got %f", got)
	}
	if got := FrameScale(time.Second); math.Abs(got-60) > 1e-9 {
		t.Errorf("Expected 60 frames per second, got %f", got)
	}
}

func TestAdvanceMonotonicAndClamped(t *testing.T) {
	bounds := NewBounds(15, 5, 10)
	dir := mgl64.Vec3{1, 0, 0.5}
	pos := mgl64.Vec3{}

	prev := pos
	for i := 0; i < 500; i++ {
		pos = bounds.Clamp(AdvanceScaled(pos, dir, 0.2, parameter.TickInterval))
		if pos.X() < prev.X() || pos.Z() < prev.Z() {
			t.Fatalf("Step %d: position moved backwards from %v to %v", i, prev, pos)
		}
		if !bounds.Contains(pos) {
			t.Fatalf("Step %d: position %v escaped bounds", i, pos)
		}
		prev = pos
	}
	if pos.X() != 15 || pos.Z() != 10 {
		t.Errorf("Expected to rest on the clamp edge, got %v", pos)
	}
}

func TestAdvancePerSecond(t *testing.T) {
	pos := Advance(mgl64.Vec3{30, 0, 0}, mgl64.Vec3{-1, 0, 0}, 6.5, time.Second)
	if math.Abs(pos.X()-23.5) > 1e-9 {
		t.Errorf("Expected x 23.5, got %f", pos.X())
	}
}

func TestHomingNeverOvershoots(t *testing.T) {
	target := mgl64.Vec3{1, 1, 0}
	pos := Homing(mgl64.Vec3{}, target, 10, parameter.TickInterval)
	if pos != target {
		t.Errorf("Expected snap to target, got %v", pos)
	}

	pos = Homing(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{}, 0.5, parameter.TickInterval)
	if math.Abs(pos.X()-9.5) > 1e-6 {
		t.Errorf("Expected x 9.5 after one step, got %f", pos.X())
	}
}

func TestWithinIsStrict(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	if Within(a, mgl64.Vec3{2, 0, 0}, 2) {
		t.Error("Expected distance equal to radius not to hit")
	}
	if !Within(a, mgl64.Vec3{1.9, 0, 0}, 2) {
		t.Error("Expected distance below radius to hit")
	}
	if Within(a, mgl64.Vec3{1.9, 0, 0}, 2) != Within(mgl64.Vec3{1.9, 0, 0}, a, 2) {
		t.Error("Expected symmetric result")
	}
}

func TestOverlapsConsumesOnce(t *testing.T) {
	r := NewPairResolver()
	bullets := []Body{
		{Entity: 1, Position: mgl64.Vec3{0, 0, 0}, Radius: 0.75},
		{Entity: 2, Position: mgl64.Vec3{0.1, 0, 0}, Radius: 0.75},
	}
	enemies := []Body{
		{Entity: 10, Position: mgl64.Vec3{0.5, 0, 0}, Radius: 0.75},
	}

	pairs := r.Overlaps(bullets, enemies, nil)
	if len(pairs) != 1 {
		t.Fatalf("Expected a single pair for one enemy, got %d", len(pairs))
	}
	if pairs[0].A.Entity != 1 || pairs[0].B.Entity != 10 {
		t.Errorf("Expected bullet 1 to hit enemy 10, got %+v", pairs[0])
	}

	// Same frame, second scan finds nothing new
	if again := r.Overlaps(bullets, enemies, nil); len(again) != 0 {
		t.Errorf("Expected no repeat pairs in one frame, got %d", len(again))
	}

	r.Reset()
	if again := r.Overlaps(bullets, enemies, nil); len(again) != 1 {
		t.Errorf("Expected fresh resolution next frame, got %d", len(again))
	}
}

func TestOverlapsSurvivorStaysTargetable(t *testing.T) {
	r := NewPairResolver()
	bullets := []Body{
		{Entity: 1, Position: mgl64.Vec3{0, 0, 0}, Radius: 1},
		{Entity: 2, Position: mgl64.Vec3{0, 0, 0}, Radius: 1},
	}
	enemies := []Body{{Entity: 10, Position: mgl64.Vec3{0, 0, 0}, Radius: 1}}

	// Enemy with health left survives the first bullet and can absorb the second
	pairs := r.Overlaps(bullets, enemies, func(Body, Body) bool { return true })
	if len(pairs) != 2 {
		t.Errorf("Expected both bullets to hit a surviving enemy, got %d", len(pairs))
	}
}
