package app

import "github.com/urfave/cli/v2"

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to an alternative config file",
	}

	dataDirFlag = &cli.StringFlag{
		Name:  "data-dir",
		Usage: "Directory holding games.json and sessions.json (default: the current directory)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a session is recorded",
	}

	afterSessionFlag = &cli.StringFlag{
		Name:    "after-session",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each recorded session",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log verbosity: debug, info, warn or error",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Display name of the game (default: the executable's file name)",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Order games by id, name or played",
		Value: "id",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Only include sessions recorded within a period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions recorded after a date (e.g. '2 weeks ago', '2024-05-01')",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Delete without asking for confirmation",
	}
)
