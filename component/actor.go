package component

import (
	"time"

	"github.com/lixenwraith/starfall/core"
)

// PlayerComponent tags the controlled ship
type PlayerComponent struct {
	Tilt float64 // Current bank angle
}

// EnemyKind discriminates enemy variants
type EnemyKind uint8

const (
	EnemyDrone EnemyKind = iota // Shooter homing drone
	EnemyInterceptor
	EnemyDefender
	EnemyGroundTargeting
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyDrone:
		return "drone"
	case EnemyInterceptor:
		return "tie-interceptor"
	case EnemyDefender:
		return "tie-defender"
	case EnemyGroundTargeting:
		return "ground-targeting"
	default:
		return "unknown"
	}
}

// EnemyComponent carries enemy behavior; health lives in HealthComponent
type EnemyComponent struct {
	Kind      EnemyKind
	Points    int
	Damage    int
	Speed     float64       // Per reference frame
	FireRate  time.Duration // Zero for enemies that never fire
	SinceShot time.Duration
	Phase     float64 // Per-enemy offset for zigzag patterns
}

// BulletComponent is a projectile that hits the opposite faction once
type BulletComponent struct {
	Faction core.Faction
	Damage  int
}

// PickupKind discriminates collectible variants
type PickupKind uint8

const (
	PickupHealth PickupKind = iota
	PickupShield
	PickupAmmo
)

func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupShield:
		return "shield"
	case PickupAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// PickupComponent marks a collectible
type PickupComponent struct {
	Kind  PickupKind
	Phase float64
}

// StarComponent marks a background star
type StarComponent struct {
	Brightness uint8
}

// DeathComponent tags an entity for removal at the end of the tick
type DeathComponent struct{}
