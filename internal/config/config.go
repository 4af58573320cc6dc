// Package config loads and validates vntracker settings
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Hooks         HooksConfig        `mapstructure:"hooks"`
		Log           LogConfig          `mapstructure:"log"`
		PathToConfig  string             `mapstructure:"-"`
		UI            UIConfig           `mapstructure:"ui"`
		Tracker       TrackerConfig      `mapstructure:"tracker"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// StorageConfig locates the games and sessions documents
	StorageConfig struct {
		DataDir      string `mapstructure:"data_dir"`
		GamesFile    string `mapstructure:"games_file"`
		SessionsFile string `mapstructure:"sessions_file"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
		NoColor   bool `mapstructure:"-"`
	}

	// UIConfig holds terminal UI settings
	UIConfig struct {
		FrameInterval time.Duration `mapstructure:"frame_interval"`
	}

	// TrackerConfig holds session tracking settings
	TrackerConfig struct {
		BusCapacity int `mapstructure:"bus_capacity"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		// SoundFile replaces the built-in chime
		SoundFile string `mapstructure:"sound_file"`
		Enabled   bool   `mapstructure:"enabled"`
		Sound     bool   `mapstructure:"sound"`
	}

	// HooksConfig holds commands run around play sessions
	HooksConfig struct {
		AfterSession string `mapstructure:"after_session"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// GamesPath is the location of the games document.
func (c *Config) GamesPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.GamesFile)
}

// SessionsPath is the location of the sessions document.
func (c *Config) SessionsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.SessionsFile)
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"games=%s sessions=%s frame=%s bus=%d notify=%t hook=%q log=%s",
		c.GamesPath(),
		c.SessionsPath(),
		c.UI.FrameInterval,
		c.Tracker.BusCapacity,
		c.Notifications.Enabled,
		c.Hooks.AfterSession,
		c.Log.Level,
	)
}
