package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/vntracker/internal/osutil"
	"github.com/ayoisaiah/vntracker/internal/pathutil"
)

const (
	keyDataDir              = "storage.data_dir"
	keyGamesFile            = "storage.games_file"
	keySessionsFile         = "storage.sessions_file"
	keyDarkTheme            = "display.dark_theme"
	keyFrameInterval        = "ui.frame_interval"
	keyBusCapacity          = "tracker.bus_capacity"
	keyNotificationsEnabled = "notifications.enabled"
	keySound                = "notifications.sound"
	keySoundFile            = "notifications.sound_file"
	keyAfterSession         = "hooks.after_session"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does
// not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers defaults. Values already present on c, such as those
// gathered by the first run prompt, take precedence.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDataDir, "")
	v.SetDefault(keyGamesFile, pathutil.GamesFileName())
	v.SetDefault(keySessionsFile, pathutil.SessionsFileName())
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyFrameInterval, "250ms")
	v.SetDefault(keyBusCapacity, 64)
	v.SetDefault(keyNotificationsEnabled, false)
	v.SetDefault(keySound, false)
	v.SetDefault(keySoundFile, "")
	v.SetDefault(keyAfterSession, "")
	v.SetDefault(keyLogLevel, "info")

	if c.Storage.DataDir != "" {
		v.SetDefault(keyDataDir, c.Storage.DataDir)
	}

	if c.Notifications.Enabled {
		v.SetDefault(keyNotificationsEnabled, true)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}
