package physics

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/parameter"
)

// FrameScale converts a tick duration into reference frames, so constants tuned per 60fps frame
// keep their feel at any tick rate
func FrameScale(dt time.Duration) float64 {
	return dt.Seconds() * parameter.FramesPerSecondReference
}

// Advance moves pos along dir by speed units per second
func Advance(pos, dir mgl64.Vec3, speed float64, dt time.Duration) mgl64.Vec3 {
	return pos.Add(dir.Mul(speed * dt.Seconds()))
}

// AdvanceScaled moves pos along dir by speed units per reference frame
func AdvanceScaled(pos, dir mgl64.Vec3, speed float64, dt time.Duration) mgl64.Vec3 {
	return pos.Add(dir.Mul(speed * FrameScale(dt)))
}

// Homing steps pos toward target by speed units per reference frame without overshooting
func Homing(pos, target mgl64.Vec3, speed float64, dt time.Duration) mgl64.Vec3 {
	delta := target.Sub(pos)
	dist := delta.Len()
	step := speed * FrameScale(dt)
	if dist <= step || dist == 0 {
		return target
	}
	return pos.Add(delta.Mul(step / dist))
}

// Lerp moves current toward target by factor per reference frame
func Lerp(current, target, factor float64, dt time.Duration) float64 {
	f := factor * FrameScale(dt)
	if f > 1 {
		f = 1
	}
	return current + (target-current)*f
}

// Bounds is an axis-aligned clamp box
type Bounds struct {
	Min, Max mgl64.Vec3
}

// NewBounds creates a box symmetric around the origin
func NewBounds(x, y, z float64) Bounds {
	return Bounds{
		Min: mgl64.Vec3{-x, -y, -z},
		Max: mgl64.Vec3{x, y, z},
	}
}

// Clamp returns pos constrained to the box
func (b Bounds) Clamp(pos mgl64.Vec3) mgl64.Vec3 {
	for i := 0; i < 3; i++ {
		pos[i] = mgl64.Clamp(pos[i], b.Min[i], b.Max[i])
	}
	return pos
}

// Contains reports whether pos lies inside the box, edges inclusive
func (b Bounds) Contains(pos mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if pos[i] < b.Min[i] || pos[i] > b.Max[i] {
			return false
		}
	}
	return true
}
