package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/starfall/parameter"
)

// ErrInvalidProfile is returned for a pilot name that is too short
var ErrInvalidProfile = errors.New("invalid pilot profile")

// Profile is the saved pilot identity
type Profile struct {
	Name       string    `yaml:"name"`
	Difficulty string    `yaml:"difficulty"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// NormalizePilotName trims and upper-cases a name, rejecting short names
func NormalizePilotName(name string) (string, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if len([]rune(n)) < parameter.PilotNameMinLength {
		return "", fmt.Errorf("%w: name needs at least %d characters", ErrInvalidProfile, parameter.PilotNameMinLength)
	}
	return n, nil
}

// SaveProfile validates and stores the profile as a YAML document value
func SaveProfile(kv KV, p Profile) (Profile, error) {
	name, err := NormalizePilotName(p.Name)
	if err != nil {
		return Profile{}, err
	}
	p.Name = name
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return Profile{}, fmt.Errorf("encode profile: %w", err)
	}
	if err := kv.Set(parameter.KeyPilotProfile, string(data)); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadProfile returns the saved profile; ok is false when absent or unreadable
func LoadProfile(kv KV) (Profile, bool) {
	raw, ok := kv.Get(parameter.KeyPilotProfile)
	if !ok {
		return Profile{}, false
	}
	var p Profile
	if err := yaml.Unmarshal([]byte(raw), &p); err != nil || p.Name == "" {
		return Profile{}, false
	}
	return p, true
}
