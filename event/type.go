package event

// Type represents the type of game event
type Type int

const (
	// EventEnemySpawned announces a new enemy
	// Trigger: spawn systems | Payload: *EnemyPayload
	EventEnemySpawned Type = iota

	// EventEnemyDestroyed is pushed exactly once per destroyed enemy
	// Trigger: combat systems | Consumer: score, effects, pickups | Payload: *EnemyPayload
	EventEnemyDestroyed

	// EventPlayerDamaged reports damage that reached shield or hull
	// Trigger: combat systems | Consumer: HUD flash, audio | Payload: *DamagePayload
	EventPlayerDamaged

	// EventPickupCollected reports a collected pickup
	// Payload: *PickupPayload
	EventPickupCollected

	// EventShieldChanged reports shield activation or expiry
	// Payload: *ShieldPayload
	EventShieldChanged

	// EventFire reports a volley leaving a cannon
	// Payload: *FirePayload
	EventFire

	// EventAlert requests a transient HUD message
	// Payload: *AlertPayload
	EventAlert

	// EventScorePopup requests a floating score label
	// Payload: *PopupPayload
	EventScorePopup

	// EventSound requests audio playback
	// Consumer: AudioSystem | Payload: *SoundPayload
	EventSound

	// EventWallPassed reports the tether piece fitting the hole
	// Payload: *WallPayload
	EventWallPassed

	// EventCrash reports the tether piece hitting a wall
	// Payload: *WallPayload
	EventCrash

	// EventStageCleared reports a completed tether stage
	// Payload: *StagePayload
	EventStageCleared

	// EventGameOver is pushed once when the session ends in defeat
	// Payload: nil
	EventGameOver

	// EventVictory is pushed once when the session ends in victory
	// Payload: nil
	EventVictory
)

var typeNames = map[Type]string{
	EventEnemySpawned:    "EnemySpawned",
	EventEnemyDestroyed:  "EnemyDestroyed",
	EventPlayerDamaged:   "PlayerDamaged",
	EventPickupCollected: "PickupCollected",
	EventShieldChanged:   "ShieldChanged",
	EventFire:            "Fire",
	EventAlert:           "Alert",
	EventScorePopup:      "ScorePopup",
	EventSound:           "Sound",
	EventWallPassed:      "WallPassed",
	EventCrash:           "Crash",
	EventStageCleared:    "StageCleared",
	EventGameOver:        "GameOver",
	EventVictory:         "Victory",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is a single game event with an optional typed payload
type Event struct {
	Type    Type
	Payload any
}
