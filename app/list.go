package app

import (
	"cmp"
	"io"
	"slices"
	"strconv"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/timeutil"
	"github.com/ayoisaiah/vntracker/internal/ui"
)

const (
	noGamesMsg    = "Empty games list"
	noSessionsMsg = "Sessions list is empty"
)

// sortGames orders games in place by id, natural name order, or play time
// with the longest first.
func sortGames(games []models.Game, by string) error {
	switch by {
	case "", "id":
		slices.SortStableFunc(games, func(a, b models.Game) int {
			return cmp.Compare(a.ID, b.ID)
		})
	case "name":
		slices.SortStableFunc(games, func(a, b models.Game) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			default:
				return 0
			}
		})
	case "played":
		slices.SortStableFunc(games, func(a, b models.Game) int {
			return cmp.Compare(
				timeutil.ParseDuration(b.Hours),
				timeutil.ParseDuration(a.Hours),
			)
		})
	default:
		return errInvalidSort.Fmt(by)
	}

	return nil
}

// printGamesTable prints a games table to the command-line.
func printGamesTable(w io.Writer, games []models.Game) {
	tableBody := make([][]string, len(games))

	for i, g := range games {
		tableBody[i] = []string{
			strconv.FormatUint(uint64(g.ID), 10),
			ui.Highlight(g.Name),
			ui.Green(g.Hours),
			g.Path,
		}
	}

	tableBody = append([][]string{
		{"#", "GAME NAME", "PLAYED HOURS", "PATH"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []models.Session) {
	tableBody := make([][]string, len(sessions))

	for i, s := range sessions {
		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			ui.Cyan(s.Date),
			ui.Green(s.Duration),
		}
	}

	tableBody = append([][]string{
		{"#", "DATE", "DURATION"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listGames prints out a table of games.
func listGames(w io.Writer, games []models.Game) {
	if len(games) == 0 {
		pterm.Info.Println(noGamesMsg)
		return
	}

	printGamesTable(w, games)
}

// listSessions prints out a table of sessions.
func listSessions(w io.Writer, sessions []models.Session) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	printSessionsTable(w, sessions)
}
