package parameter

import "time"

// Loop Timing
const (
	// TickInterval is the fixed simulation step, the 60fps frame every tuning constant assumes
	TickInterval = time.Second / 60

	// FrameInterval is the default render cadence of the terminal loop
	FrameInterval = 16 * time.Millisecond

	// Render rate bounds accepted from config
	DefaultFPS = 60
	MinFPS     = 10
	MaxFPS     = 240

	// MaxFrameDelta caps real elapsed time per frame so a stalled terminal does not fast-forward the game
	MaxFrameDelta = 100 * time.Millisecond

	// MaxTicksPerFrame bounds catch-up work after a long frame
	MaxTicksPerFrame = 6

	// FramesPerSecondReference is the frame rate the original per-frame constants were tuned against
	FramesPerSecondReference = 60.0
)

// Event System
const (
	// EventQueueSize is the bounded capacity of a world's event queue
	EventQueueSize = 512

	// InputChannelSize buffers terminal events between the poll goroutine and the loop
	InputChannelSize = 64
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat event
	KeyHoldWindow = 140 * time.Millisecond

	// SwipeMinDistance is the minimum drag length in cells to count as a swipe
	SwipeMinDistance = 3.0

	// SwipeMaxDuration is the maximum drag duration for a swipe or tap
	SwipeMaxDuration = 2 * time.Second
)
