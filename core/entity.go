package core

// Entity is a unique identifier for an entity in a world
type Entity uint64

// Faction identifies which side fired a projectile
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Difficulty selects a row of the difficulty-indexed tuning tables
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// ParseDifficulty maps a name to a difficulty, defaulting to medium
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy", "EASY":
		return DifficultyEasy
	case "hard", "HARD":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}
