package app

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/vntracker/internal/config"
	"github.com/ayoisaiah/vntracker/internal/pathutil"
	"github.com/ayoisaiah/vntracker/store"
	"github.com/ayoisaiah/vntracker/tracker"
)

// env is everything an action needs to reach the user's data.
type env struct {
	cfg     *config.Config
	db      *store.Store
	tracker *tracker.Tracker
}

// configPath returns the --config flag or the default config location.
func configPath(ctx *cli.Context) string {
	if p := ctx.String("config"); p != "" {
		return p
	}

	return pathutil.ConfigFilePath()
}

// setup loads the configuration and opens the store. With prompt set, a
// missing config file is created interactively.
func setup(ctx *cli.Context, prompt bool, launcher tracker.Launcher) (*env, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	path := configPath(ctx)

	opts := []config.Option{}

	if prompt {
		opts = append(opts, config.WithPromptConfig(path))
	}

	opts = append(
		opts,
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Display.NoColor {
		disableStyling()
	}

	initLogger(pathutil.LogFilePath(), cfg.Log.Level)

	slog.Debug("configuration loaded", slog.String("config", cfg.String()))

	db := store.NewOS(
		cfg.Storage.DataDir,
		cfg.Storage.GamesFile,
		cfg.Storage.SessionsFile,
	)

	return &env{
		cfg: cfg,
		db:  db,
		tracker: tracker.New(
			db,
			tracker.WithLauncher(launcher),
			tracker.WithStderr(os.Stderr),
			tracker.WithHooks(hooks(cfg)...),
		),
	}, nil
}

// hooks returns the post-session hooks enabled in cfg.
func hooks(cfg *config.Config) []tracker.Hook {
	var h []tracker.Hook

	if cfg.Notifications.Enabled {
		h = append(h, tracker.NotifyHook{})
	}

	if cfg.Notifications.Sound {
		h = append(h, tracker.SoundHook{File: cfg.Notifications.SoundFile})
	}

	if cfg.Hooks.AfterSession != "" {
		h = append(h, tracker.CommandHook{Cmd: cfg.Hooks.AfterSession})
	}

	return h
}
