// Package config loads the deployment constants for buffer layout, timing and channel names.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agleyzer/lightseq/internal/sequence"
	"github.com/agleyzer/lightseq/internal/timeline"
)

const (
	defaultMaxStaging1 = 252
	defaultMaxStaging2 = 168
)

// Channel names one light channel for labels.
type Channel struct {
	ID    int    `toml:"id"`
	Label string `toml:"label"`
}

// Config holds the fixed per-deployment constants.
type Config struct {
	// MaxStaging1 is the capacity of the first staging buffer in bytes.
	MaxStaging1 int `toml:"max_staging1"`
	// MaxStaging2 is the capacity of the second staging buffer in bytes.
	MaxStaging2 int `toml:"max_staging2"`
	// TimeScale is the number of milliseconds per duration unit.
	TimeScale int `toml:"time_scale"`
	// Vehicle is a display name for the channel set.
	Vehicle string `toml:"vehicle"`
	// Channels maps channel identifiers to labels.
	Channels []Channel `toml:"channel"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		MaxStaging1: defaultMaxStaging1,
		MaxStaging2: defaultMaxStaging2,
		TimeScale:   timeline.DefaultTimeScale,
	}
}

// Load reads a TOML configuration file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a TOML configuration from r on top of the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("parse config: %s", strict.String())
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration and fills unset values with defaults.
func (c *Config) Validate() error {
	if c.MaxStaging1 < 0 {
		return fmt.Errorf("max_staging1 must not be negative, got %d", c.MaxStaging1)
	}
	if c.MaxStaging2 < 0 {
		return fmt.Errorf("max_staging2 must not be negative, got %d", c.MaxStaging2)
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("time_scale must not be negative, got %d", c.TimeScale)
	}

	seen := make(map[int]bool, len(c.Channels))
	for i, ch := range c.Channels {
		if ch.ID < 0 || ch.ID > 0xFF {
			return fmt.Errorf("channel %d: id %d out of range (0-255)", i, ch.ID)
		}
		if seen[ch.ID] {
			return fmt.Errorf("channel %d: duplicate id %d", i, ch.ID)
		}
		seen[ch.ID] = true
	}

	// Set defaults
	if c.MaxStaging1 == 0 {
		c.MaxStaging1 = defaultMaxStaging1
	}
	if c.MaxStaging2 == 0 {
		c.MaxStaging2 = defaultMaxStaging2
	}
	if c.TimeScale == 0 {
		c.TimeScale = timeline.DefaultTimeScale
	}

	return nil
}

// Layout returns the staging buffer capacities.
func (c *Config) Layout() sequence.Layout {
	return sequence.Layout{Staging1: c.MaxStaging1, Staging2: c.MaxStaging2}
}

// ChannelLabel returns the configured label for a channel.
func (c *Config) ChannelLabel(id int) (string, bool) {
	for _, ch := range c.Channels {
		if ch.ID == id && ch.Label != "" {
			return ch.Label, true
		}
	}
	return "", false
}
