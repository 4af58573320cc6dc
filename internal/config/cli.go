package config

import (
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	envNoColor          = "NO_COLOR"
	envVNTrackerNoColor = "VNTRACKER_NO_COLOR"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	DataDir       string
	AfterSession  string
	LogLevel      string
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that applies command-line overrides.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			DataDir:       ctx.String("data-dir"),
			AfterSession:  ctx.String("after-session"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DataDir != "" {
		c.Storage.DataDir = opts.DataDir
	}

	if opts.AfterSession != "" {
		c.Hooks.AfterSession = opts.AfterSession
	}

	if opts.LogLevel != "" {
		c.Log.Level = strings.ToLower(opts.LogLevel)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.Display.NoColor = opts.NoColor ||
		os.Getenv(envNoColor) != "" ||
		os.Getenv(envVNTrackerNoColor) != ""
}
