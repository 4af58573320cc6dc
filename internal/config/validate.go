package config

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

var (
	minBusCapacity = 1
	maxBusCapacity = 4096

	minFrameInterval = 16 * time.Millisecond
	maxFrameInterval = 5 * time.Second

	logLevels = []string{"debug", "info", "warn", "error"}

	soundFormats = []string{".wav", ".mp3", ".ogg", ".flac"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}

	if c.Tracker.BusCapacity < minBusCapacity ||
		c.Tracker.BusCapacity > maxBusCapacity {
		return errInvalidBusCapacity.Fmt(
			minBusCapacity,
			maxBusCapacity,
			c.Tracker.BusCapacity,
		)
	}

	if c.UI.FrameInterval < minFrameInterval ||
		c.UI.FrameInterval > maxFrameInterval {
		return errInvalidFrameInterval.Fmt(
			minFrameInterval,
			maxFrameInterval,
			c.UI.FrameInterval,
		)
	}

	if f := c.Notifications.SoundFile; f != "" {
		ext := strings.ToLower(filepath.Ext(f))
		if !slices.Contains(soundFormats, ext) {
			return errInvalidSoundFile.Fmt(f, strings.Join(soundFormats, ", "))
		}
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(strings.Join(logLevels, ", "), c.Log.Level)
	}

	return nil
}

func (c *Config) validateStorage() error {
	games := strings.TrimSpace(c.Storage.GamesFile)
	sessions := strings.TrimSpace(c.Storage.SessionsFile)

	if games == "" {
		return errEmptyFileName.Fmt("games")
	}

	if sessions == "" {
		return errEmptyFileName.Fmt("sessions")
	}

	if filepath.Clean(games) == filepath.Clean(sessions) {
		return errSameFileName.Fmt(games)
	}

	return nil
}
