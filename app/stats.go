package app

import (
	"io"
	"slices"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/vntracker/internal/config"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/timeutil"
	"github.com/ayoisaiah/vntracker/internal/ui"
)

// gameStats summarises the play time of one game.
type gameStats struct {
	Name string `json:"name"`
	// Hours is the stored total, which is authoritative
	Hours string `json:"hours"`
	// Played is the sum of the sessions inside the filter range
	Played   string `json:"played"`
	Sessions int    `json:"sessions"`
	ID       uint32 `json:"id"`
	seconds  uint64
}

// stats is the summary printed by the stats command.
type stats struct {
	Games    []gameStats `json:"games"`
	Total    string      `json:"total"`
	Played   string      `json:"played"`
	Sessions int         `json:"sessions"`
}

// computeStats aggregates the sessions matched by filter per game. Games are
// ordered by play time within the range, longest first.
func computeStats(
	games []models.Game,
	sessions []models.Session,
	filter *config.FilterConfig,
) stats {
	byGame := make(map[uint32]*gameStats, len(games))
	out := stats{Games: make([]gameStats, 0, len(games))}

	var total, played uint64

	for _, g := range games {
		total += timeutil.ParseDuration(g.Hours)
		byGame[g.ID] = &gameStats{ID: g.ID, Name: g.Name, Hours: g.Hours}
	}

	for _, s := range filter.Apply(sessions) {
		gs, ok := byGame[s.GameID]
		if !ok {
			continue
		}

		secs := timeutil.ParseDuration(s.Duration)
		gs.seconds += secs
		gs.Sessions++

		played += secs
		out.Sessions++
	}

	for _, g := range games {
		gs := byGame[g.ID]
		gs.Played = timeutil.FormatDuration(gs.seconds)
		out.Games = append(out.Games, *gs)
	}

	slices.SortStableFunc(out.Games, func(a, b gameStats) int {
		switch {
		case a.seconds > b.seconds:
			return -1
		case a.seconds < b.seconds:
			return 1
		default:
			return 0
		}
	})

	out.Total = timeutil.FormatDuration(total)
	out.Played = timeutil.FormatDuration(played)

	return out
}

// printStats renders the summary as a table followed by a bar chart of the
// minutes played in range.
func printStats(w io.Writer, s stats) error {
	if len(s.Games) == 0 {
		pterm.Info.Println(noGamesMsg)
		return nil
	}

	tableBody := [][]string{
		{"#", "GAME NAME", "SESSIONS", "PLAYED", "TOTAL"},
	}

	bars := make(pterm.Bars, 0, len(s.Games))

	for _, g := range s.Games {
		tableBody = append(tableBody, []string{
			strconv.FormatUint(uint64(g.ID), 10),
			ui.Highlight(g.Name),
			strconv.Itoa(g.Sessions),
			ui.Cyan(g.Played),
			ui.Green(g.Hours),
		})

		if g.seconds > 0 {
			bars = append(bars, pterm.Bar{
				Label: g.Name,
				Value: int(g.seconds / 60),
			})
		}
	}

	tableBody = append(tableBody, []string{
		"",
		ui.Highlight("All games"),
		strconv.Itoa(s.Sessions),
		ui.Cyan(s.Played),
		ui.Green(s.Total),
	})

	ui.PrintTable(tableBody, w)

	if len(bars) == 0 {
		return nil
	}

	chart, err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, pterm.DefaultSection.Sprint("Minutes played")+chart+"\n")

	return err
}
