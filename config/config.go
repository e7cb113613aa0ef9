// Package config loads the footbag TOML configuration.
// Physics tuning is fixed in package parameter and is not configurable here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/footbag/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration file
type Config struct {
	// Seed for the session random stream; 0 means derive from the clock
	Seed  uint64 `toml:"seed"`
	FPS   int    `toml:"fps"`
	Debug bool   `toml:"debug"`

	Audio AudioConfig `toml:"audio"`

	// Keys maps key names ("esc", "q", "space", "f1") to action names
	// Entries override the default bindings; "none" unbinds a key
	Keys map[string]string `toml:"keys"`
}

// AudioConfig controls the sound effects
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
	Volumes      Volumes `toml:"volumes"`
}

// Volumes are per-effect gains in [0,1], applied on top of MasterVolume
type Volumes struct {
	Kick     float64 `toml:"kick"`
	Wall     float64 `toml:"wall"`
	GameOver float64 `toml:"game_over"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FPS: parameter.DefaultFPS,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.6,
			SampleRate:   parameter.AudioSampleRate,
			Volumes: Volumes{
				Kick:     1.0,
				Wall:     0.5,
				GameOver: 0.8,
			},
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error and yields Default()
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges
func (c *Config) Validate() error {
	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalid, c.FPS, parameter.MinFPS, parameter.MaxFPS)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}

	volumes := []struct {
		name string
		v    float64
	}{
		{"master_volume", c.Audio.MasterVolume},
		{"volumes.kick", c.Audio.Volumes.Kick},
		{"volumes.wall", c.Audio.Volumes.Wall},
		{"volumes.game_over", c.Audio.Volumes.GameOver},
	}
	for _, vol := range volumes {
		if vol.v < 0 || vol.v > 1 {
			return fmt.Errorf("%w: audio.%s %v outside [0, 1]", ErrInvalid, vol.name, vol.v)
		}
	}
	return nil
}

// Save writes c to path as TOML, creating parent directories
func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
