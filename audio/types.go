package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot      SoundType = iota // Player cannon
	SoundEnemyShoot                  // Enemy laser
	SoundHit                         // Projectile impact
	SoundExplosion                   // Enemy destroyed
	SoundPickup                      // Collectible taken
	SoundShield                      // Shield raised
	SoundAlert                       // Warning or refused action
	SoundPass                        // Tether piece through the hole
	SoundCrash                       // Tether piece hit the wall
	SoundStageClear                  // Tether stage finished
	SoundVictory                     // Mission accomplished
	SoundGameOver                    // Player destroyed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	"shoot", "enemy-shoot", "hit", "explosion", "pickup", "shield",
	"alert", "pass", "crash", "stage-clear", "victory", "game-over",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
