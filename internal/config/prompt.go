package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/vntracker/internal/pathutil"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DataDir       string
	Notifications bool
}

// WithPromptConfig returns an Option that asks for the main settings when
// configPath does not exist yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	_ = pterm.DefaultBigText.WithLetters(
		putils.LettersFromString("VNTRACKER"),
	).Render()

	_ = putils.BulletListFromString(`Follow the prompts below to configure vntracker for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'vntracker edit-config' to change any settings.`, " ").
		Render()

	dataHome := filepath.Join(xdg.DataHome, pathutil.Dir())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should your games and sessions be stored?").
				Options(
					huh.NewOption("The directory vntracker is started from", "").
						Selected(true),
					huh.NewOption(dataHome, dataHome),
				).
				Value(&opts.DataDir),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification after each session?").
				Affirmative("Yes").
				Negative("No").
				Value(&opts.Notifications),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Storage.DataDir = opts.DataDir
	c.Notifications.Enabled = opts.Notifications
}
