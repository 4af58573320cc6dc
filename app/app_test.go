package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/vntracker/bus"
	"github.com/ayoisaiah/vntracker/internal/config"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/testutil"
	"github.com/ayoisaiah/vntracker/internal/timeutil"
	"github.com/ayoisaiah/vntracker/state"
	"github.com/ayoisaiah/vntracker/store"
)

func init() {
	disableStyling()
}

var sampleGames = []models.Game{
	{ID: 3, Name: "Game 10", Path: "/g/10", Hours: "0h 30m 0s"},
	{ID: 1, Name: "Game 2", Path: "/g/2", Hours: "12h 0m 5s"},
	{ID: 2, Name: "game 1", Path: "/g/1", Hours: "1h 0m 0s"},
}

func ids(games []models.Game) []uint32 {
	out := make([]uint32, len(games))
	for i := range games {
		out[i] = games[i].ID
	}

	return out
}

func TestSortGames(t *testing.T) {
	cases := []struct {
		Name string
		By   string
		Want []uint32
	}{
		{Name: "default is id", By: "", Want: []uint32{1, 2, 3}},
		{Name: "id", By: "id", Want: []uint32{1, 2, 3}},
		{Name: "natural name order", By: "name", Want: []uint32{1, 3, 2}},
		{Name: "longest played first", By: "played", Want: []uint32{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			games := append([]models.Game(nil), sampleGames...)

			require.NoError(t, sortGames(games, tc.By))

			if diff := cmp.Diff(tc.Want, ids(games)); diff != "" {
				t.Fatalf("sortGames(%q) mismatch (-want +got):\n%s", tc.By, diff)
			}
		})
	}
}

func TestSortGamesInvalidKey(t *testing.T) {
	err := sortGames(append([]models.Game(nil), sampleGames...), "size")
	assert.ErrorIs(t, err, errInvalidSort)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)

	_, err = parseID("")
	assert.ErrorIs(t, err, errMissingID)

	_, err = parseID("-1")
	assert.ErrorIs(t, err, errInvalidID)

	_, err = parseID("4294967296")
	assert.ErrorIs(t, err, errInvalidID)
}

func TestComputeStats(t *testing.T) {
	start, err := timeutil.ParseSessionDate("2024-05-01 00:00:00")
	require.NoError(t, err)

	filter := &config.FilterConfig{StartTime: start}

	sessions := []models.Session{
		{GameID: 1, Date: "2024-04-30 23:00:00", Duration: "5h 0m 0s"},
		{GameID: 1, Date: "2024-05-02 10:00:00", Duration: "1h 0m 0s"},
		{GameID: 2, Date: "2024-05-03 10:00:00", Duration: "0h 20m 0s"},
		{GameID: 2, Date: "not a date", Duration: "0h 10m 0s"},
		{GameID: 9, Date: "2024-05-03 10:00:00", Duration: "9h 0m 0s"},
	}

	s := computeStats(sampleGames, sessions, filter)

	assert.Equal(t, 3, s.Sessions)
	assert.Equal(t, "1h 30m 0s", s.Played)
	assert.Equal(t, "13h 30m 5s", s.Total)

	require.Len(t, s.Games, 3)
	assert.Equal(t, []uint32{1, 2, 3}, ids(statsGames(s)))
	assert.Equal(t, "1h 0m 0s", s.Games[0].Played)
	assert.Equal(t, 1, s.Games[0].Sessions)
	assert.Equal(t, "0h 30m 0s", s.Games[1].Played)
	assert.Equal(t, timeutil.ZeroDuration, s.Games[2].Played)
}

func statsGames(s stats) []models.Game {
	out := make([]models.Game, len(s.Games))
	for i, g := range s.Games {
		out[i] = models.Game{ID: g.ID}
	}

	return out
}

func TestPrintGamesTable(t *testing.T) {
	var buf bytes.Buffer

	printGamesTable(&buf, sampleGames[:1])

	out := buf.String()
	assert.Contains(t, out, "GAME NAME")
	assert.Contains(t, out, "Game 10")
	assert.Contains(t, out, "0h 30m 0s")
	assert.Contains(t, out, "/g/10")
}

func TestPrintStatsWithoutPlayTime(t *testing.T) {
	var buf bytes.Buffer

	s := computeStats(sampleGames[:1], nil, &config.FilterConfig{})

	require.NoError(t, printStats(&buf, s))
	assert.Contains(t, buf.String(), "All games")
	assert.NotContains(t, buf.String(), "Minutes played")
}

func TestDelGameWithoutConfirmation(t *testing.T) {
	fs := testutil.MemFS(t, map[string]string{
		"games.json":    `[{"id":1,"name":"A","path":"/a","hours":"0h 0m 0s"},{"id":2,"name":"B","path":"/b","hours":"0h 0m 0s"}]`,
		"sessions.json": `[{"game_id":1,"date":"2024-05-01 10:00:00","duration":"0h 1m 0s"}]`,
	})
	db := store.New(fs, "games.json", "sessions.json")

	var buf bytes.Buffer

	err := delGame(&buf, db, models.Game{ID: 1, Name: "A"}, true)
	require.NoError(t, err)

	assert.Equal(t, []uint32{2}, ids(db.LoadGames()))
	assert.Empty(t, db.AllSessions())
}

func TestDelGameWithoutSessions(t *testing.T) {
	fs := testutil.MemFS(t, map[string]string{
		"games.json": `[{"id":1,"name":"A","path":"/a","hours":"0h 0m 0s"}]`,
	})
	db := store.New(fs, "games.json", "sessions.json")

	var buf bytes.Buffer

	err := delGame(&buf, db, models.Game{ID: 1, Name: "A"}, true)
	require.NoError(t, err)

	assert.Empty(t, db.LoadGames())
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, 4)
	logger.Info("hidden")
	logger.Warn("shown", "at", time.Unix(0, 0).UTC())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

type recordingSaver struct {
	hours []string
}

func (r *recordingSaver) Save(st *state.State) error {
	for _, g := range st.Games {
		r.hours = append(r.hours, g.Hours)
	}

	return nil
}

func TestSaveOnExitIncludesRunningSessions(t *testing.T) {
	fs := testutil.MemFS(t, map[string]string{
		"games.json": `[{"id":1,"name":"A","path":"/a","hours":"1h 0m 0s"}]`,
	})
	db := store.New(fs, "games.json", "sessions.json")

	updates := bus.New(1)
	defer updates.Close()

	st := state.New(db, nil, updates)

	// a session that ends after the window has closed
	finish := func() {
		_, err := db.UpdateGame(1, func(g *models.Game) {
			g.Hours = timeutil.AddDuration(g.Hours, 90)
		})
		require.NoError(t, err)
	}

	saver := &recordingSaver{}

	require.NoError(t, saveOnExit(finish, st, saver))
	assert.Equal(t, []string{"1h 1m 30s"}, saver.hours)
}
