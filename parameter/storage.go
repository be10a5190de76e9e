package parameter

// Storage keys, kept compatible with the saved progress of earlier releases
const (
	KeyStageProgress = "stageProgressSave"
	KeyBestScore     = "bestScoreSave"
	KeyPilotProfile  = "starfighter_pilot"
	KeyShooterBest   = "shooterBestScore"
	KeyDogfightBest  = "dogfightBestScore"
)

// Storage defaults
const (
	DefaultStageProgress = 1
	DefaultBestScore     = 0

	// StageProgressComplete marks every numbered stage cleared
	StageProgressComplete = 11

	// PilotNameMinLength is the minimum accepted pilot name length
	PilotNameMinLength = 3

	// StoreFileName is the key/value file under the data directory
	StoreFileName = "save.yaml"

	// ConfigFileName is the optional config file under the data directory
	ConfigFileName = "config.yaml"
)
