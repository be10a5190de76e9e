package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/starfall/parameter"
)

// ErrInvalidValue is returned for an out-of-range setting
var ErrInvalidValue = errors.New("invalid config value")

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0..1
	MusicVolume  float64 `yaml:"music_volume"`  // 0..1
	SampleRate   int     `yaml:"sample_rate"`
}

// InputConfig controls key sampling
type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"`
}

// Config is the application configuration
type Config struct {
	DataDir string      `yaml:"-"`
	Debug   bool        `yaml:"debug"`
	FPS     int         `yaml:"fps"`
	Audio   AudioConfig `yaml:"audio"`
	Input   InputConfig `yaml:"input"`
}

// Default returns built-in defaults
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		FPS:     parameter.DefaultFPS,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioDefaultMasterVolume,
			MusicVolume:  parameter.AudioDefaultMusicVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Input: InputConfig{
			HoldWindow: parameter.KeyHoldWindow,
		},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "starfall")
	}
	return ".starfall"
}

// Load builds the configuration: defaults, then dataDir/config.yaml, then STARFALL_* environment
// An empty dataDir uses STARFALL_DATA_DIR or the user config directory
// File problems are logged and skipped; the returned config is always usable
func Load(dataDir string, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := Default()
	if env := os.Getenv("STARFALL_DATA_DIR"); env != "" {
		cfg.DataDir = env
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	path := filepath.Join(cfg.DataDir, parameter.ConfigFileName)
	if err := cfg.loadFile(path); err != nil {
		logger.Warn("config file ignored", "path", path, "error", err)
	}
	cfg.applyEnv(logger)

	if err := cfg.Validate(); err != nil {
		logger.Warn("config clamped", "error", err)
	}
	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	dataDir := c.DataDir
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	c.DataDir = dataDir
	return nil
}

func (c *Config) applyEnv(logger *slog.Logger) {
	if v := os.Getenv("STARFALL_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else {
			logger.Warn("STARFALL_DEBUG ignored", "value", v)
		}
	}
	if v := os.Getenv("STARFALL_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			logger.Warn("STARFALL_AUDIO_ENABLED ignored", "value", v)
		}
	}
	// Volumes are given as 0-100
	if v := os.Getenv("STARFALL_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = float64(n) / 100.0
		}
	}
	if v := os.Getenv("STARFALL_MUSIC_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MusicVolume = float64(n) / 100.0
		}
	}
}

// Validate clamps out-of-range values, returning ErrInvalidValue if anything changed
func (c *Config) Validate() error {
	var errs []error
	clamp := func(name string, v *float64) {
		if *v < 0 || *v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s=%v", ErrInvalidValue, name, *v))
			*v = min(max(*v, 0), 1)
		}
	}
	clamp("audio.master_volume", &c.Audio.MasterVolume)
	clamp("audio.music_volume", &c.Audio.MusicVolume)

	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: audio.sample_rate=%d", ErrInvalidValue, c.Audio.SampleRate))
		c.Audio.SampleRate = parameter.AudioSampleRate
	}
	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		errs = append(errs, fmt.Errorf("%w: fps=%d", ErrInvalidValue, c.FPS))
		c.FPS = min(max(c.FPS, parameter.MinFPS), parameter.MaxFPS)
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("%w: input.hold_window=%v", ErrInvalidValue, c.Input.HoldWindow))
		c.Input.HoldWindow = parameter.KeyHoldWindow
	}
	return errors.Join(errs...)
}

// FrameInterval returns the render cadence for FPS
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// StorePath returns the save file location
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, parameter.StoreFileName)
}

// LogDir returns the debug log directory
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}
