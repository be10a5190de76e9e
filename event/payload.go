package event

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
)

// EnemyPayload describes an enemy at the moment of the event
type EnemyPayload struct {
	Entity   core.Entity
	Kind     component.EnemyKind
	Points   int
	Position mgl64.Vec3
	Rammed   bool // Destroyed by colliding with the player
}

// DamagePayload describes damage applied to the player
type DamagePayload struct {
	Amount   int
	Absorbed bool // Taken by the shield instead of the hull
	Health   int
}

// PickupPayload describes a collected pickup
type PickupPayload struct {
	Kind     component.PickupKind
	Position mgl64.Vec3
}

// ShieldPayload reports shield state
type ShieldPayload struct {
	Active bool
}

// FirePayload reports a volley
type FirePayload struct {
	Faction  core.Faction
	Position mgl64.Vec3
}

// AlertPayload is a timed message
type AlertPayload struct {
	Message  string
	Duration time.Duration
}

// PopupPayload is a floating label in world space
type PopupPayload struct {
	Text     string
	Position mgl64.Vec3
}

// SoundPayload requests a sound by numeric id, decoupled from the audio package
type SoundPayload struct {
	Sound int
}

// WallPayload reports a tether wall check
type WallPayload struct {
	Hole  component.Pose
	Piece component.Pose
}

// StagePayload reports a cleared stage
type StagePayload struct {
	Stage int
}
