package audio

import (
	"log/slog"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/parameter"
)

// Player is the fire-and-forget audio surface used by games
type Player interface {
	Play(s SoundType)
	StartMusic()
	StopMusic()
	SetMusicPaused(paused bool)
	ToggleMute() bool
	IsMuted() bool
	Close()
}

// SoundManager plays synthesized effects and music through the beep speaker
// Every method is safe to call before or after a failed Initialize
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	initialized bool
	muted       bool
	logger      *slog.Logger
	speakerInit func(beep.SampleRate, int) error
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager(cfg config.AudioConfig, logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		logger:      logger,
		speakerInit: speaker.Init,
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.speakerInit(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a sound effect; a no-op when uninitialized or muted
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer, err := GetSoundEffect(s, sm.rate, sm.cfg.MasterVolume)
	if err != nil {
		sm.logger.Debug("sound skipped", "sound", s, "error", err)
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < parameter.AudioMaxConcurrent {
		sm.mixer.Add(streamer)
	}
	speaker.Unlock()
}

// StartMusic begins the background loop if not already playing
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music != nil {
		return
	}
	sm.musicVolume = newVolume(newMusicLoop(sm.rate), sm.musicGain(parameter.AudioDefaultMusicVolume))
	sm.music = &beep.Ctrl{Streamer: sm.musicVolume, Paused: sm.muted}

	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// StopMusic ends the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	// A nil streamer makes Ctrl drain, which removes it from the mixer
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
	sm.musicVolume = nil
}

// SetMusicPaused ducks the music while a game is paused
func (sm *SoundManager) SetMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.musicVolume == nil {
		return
	}
	gain := parameter.AudioDefaultMusicVolume
	if paused {
		gain = parameter.AudioPausedMusicVolume
	}
	speaker.Lock()
	setGain(sm.musicVolume, sm.musicGain(gain))
	speaker.Unlock()
}

// musicGain scales the configured music level by a relative factor
func (sm *SoundManager) musicGain(level float64) float64 {
	return sm.cfg.MasterVolume * sm.cfg.MusicVolume * level / parameter.AudioDefaultMusicVolume
}

// ToggleMute flips mute, returning the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		if sm.music != nil {
			sm.music.Paused = sm.muted
		}
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsRunning reports a successfully opened device
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close stops all sounds and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.music = nil
	sm.musicVolume = nil
	sm.initialized = false
}

// setGain adjusts the linear gain of a volume effect in place
func setGain(vol *effects.Volume, gain float64) {
	if gain <= 0 {
		vol.Silent = true
		return
	}
	vol.Silent = false
	vol.Volume = math.Log2(gain)
}

// Silent is a Player that drops everything
type Silent struct {
	muted bool
}

func (*Silent) Play(SoundType)      {}
func (*Silent) StartMusic()         {}
func (*Silent) StopMusic()          {}
func (*Silent) SetMusicPaused(bool) {}
func (s *Silent) ToggleMute() bool  { s.muted = !s.muted; return s.muted }
func (s *Silent) IsMuted() bool     { return s.muted }
func (*Silent) Close()              {}

// New returns a running SoundManager, or a Silent player when audio is disabled or the device fails
func New(cfg config.AudioConfig, logger *slog.Logger) Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if !cfg.Enabled {
		logger.Info("audio disabled by config")
		return &Silent{}
	}
	sm := NewSoundManager(cfg, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio init failed, continuing without audio", "error", err)
		return &Silent{}
	}
	return sm
}
