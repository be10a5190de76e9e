package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultMasterVolume is linear gain 0..1
	AudioDefaultMasterVolume = 0.5

	// AudioDefaultMusicVolume is the music gain while running
	AudioDefaultMusicVolume = 0.3

	// AudioPausedMusicVolume is the music gain while paused
	AudioPausedMusicVolume = 0.1

	// AudioMaxConcurrent caps simultaneously mixed effects
	AudioMaxConcurrent = 16
)

// Envelope timings
const (
	AudioAttackShort  = 2 * time.Millisecond
	AudioAttackMedium = 10 * time.Millisecond
	AudioReleaseShort = 30 * time.Millisecond
	AudioReleaseLong  = 120 * time.Millisecond
)
