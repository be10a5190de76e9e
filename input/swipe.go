package input

import (
	"math"
	"time"
)

// Gesture is the outcome of a pointer press and release
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureTapLeft  // Tap on the left half of the screen
	GestureTapRight // Tap on the right half of the screen
)

func (g Gesture) String() string {
	switch g {
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureTapLeft:
		return "tap-left"
	case GestureTapRight:
		return "tap-right"
	default:
		return "none"
	}
}

// Action maps a swipe to the equivalent movement action, taps to rotations
func (g Gesture) Action() Action {
	switch g {
	case GestureSwipeLeft:
		return ActionMoveLeft
	case GestureSwipeRight:
		return ActionMoveRight
	case GestureSwipeUp:
		return ActionMoveUp
	case GestureSwipeDown:
		return ActionMoveDown
	case GestureTapLeft:
		return ActionRotateCCW
	case GestureTapRight:
		return ActionRotateCW
	default:
		return ActionNone
	}
}

// SwipeDetector classifies a press/release pair by distance and elapsed time
// Screen coordinates grow right and down
type SwipeDetector struct {
	minDistance float64
	maxDuration time.Duration
	vertical    bool

	active bool
	startX int
	startY int
	start  time.Time
}

// NewSwipeDetector creates a detector with the given thresholds; vertical swipes are on
func NewSwipeDetector(minDistance float64, maxDuration time.Duration) *SwipeDetector {
	return &SwipeDetector{minDistance: minDistance, maxDuration: maxDuration, vertical: true}
}

// SetVertical enables or disables vertical swipes
// With vertical swipes off a mostly vertical drag falls through to the horizontal and tap checks
func (d *SwipeDetector) SetVertical(on bool) {
	d.vertical = on
}

// Begin records a pointer press
func (d *SwipeDetector) Begin(x, y int, at time.Time) {
	d.active = true
	d.startX, d.startY = x, y
	d.start = at
}

// Active reports an unfinished press
func (d *SwipeDetector) Active() bool {
	return d.active
}

// End classifies the release; width is the screen width used to split taps by half
// A release that qualifies as no swipe, including one past the time limit, is a tap
// Returns false only when no press was recorded
func (d *SwipeDetector) End(x, y int, at time.Time, width int) (Gesture, bool) {
	if !d.active {
		return GestureNone, false
	}
	d.active = false

	if at.Sub(d.start) <= d.maxDuration {
		dx := float64(x - d.startX)
		dy := float64(y - d.startY)
		switch {
		case d.vertical && math.Abs(dy) >= d.minDistance && math.Abs(dy) > math.Abs(dx):
			if dy < 0 {
				return GestureSwipeUp, true
			}
			return GestureSwipeDown, true
		case dx >= d.minDistance:
			return GestureSwipeRight, true
		case dx <= -d.minDistance:
			return GestureSwipeLeft, true
		}
	}

	if x >= width/2 {
		return GestureTapRight, true
	}
	return GestureTapLeft, true
}
