// Package app wires the vntracker command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/vntracker/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the vntracker app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "vntracker",
		Usage: `
		vntracker keeps track of the time you spend in your visual novels and
		other games. Add a game's executable, launch it from vntracker, and each
		play session is recorded when the game exits.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a game to the library",
				ArgsUsage: "<path>",
				Flags:     []cli.Flag{nameFlag},
				Action:    addAction,
			},
			{
				Name:   "list",
				Usage:  "List every game with its total play time",
				Flags:  []cli.Flag{jsonFlag, sortFlag},
				Action: listAction,
			},
			{
				Name:      "sessions",
				Usage:     "List the recorded sessions of a game",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{jsonFlag, periodFlag, sinceFlag},
				Action:    sessionsAction,
			},
			{
				Name:      "rename",
				Usage:     "Rename a game",
				ArgsUsage: "<id> <name>",
				Action:    renameAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a game and all of its sessions",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteAction,
			},
			{
				Name:      "play",
				Usage:     "Launch a game and record the session without opening the interface",
				ArgsUsage: "<id>",
				Action:    playAction,
			},
			{
				Name:   "stats",
				Usage:  "Summarise play time per game",
				Flags:  []cli.Flag{jsonFlag, periodFlag, sinceFlag},
				Action: statsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			configFlag,
			dataDirFlag,
			noColorFlag,
			disableNotificationFlag,
			afterSessionFlag,
			logLevelFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
