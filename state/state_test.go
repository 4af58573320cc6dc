package state_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/vntracker/bus"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/testutil"
	"github.com/ayoisaiah/vntracker/state"
	"github.com/ayoisaiah/vntracker/store"
)

const twoGames = `[{"id":1,"name":"A","path":"/a.exe","hours":"0h 0m 0s"},` +
	`{"id":2,"name":"B","path":"/b.exe","hours":"1h 0m 0s"}]`

type fakeTracker struct {
	mu      sync.Mutex
	started []models.GameSnapshot
}

func (f *fakeTracker) StartGame(g models.GameSnapshot, _ bus.Sender) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.started = append(f.started, g)
}

func newState(t *testing.T, games string) (*state.State, *store.Store, *fakeTracker, *bus.Bus) {
	t.Helper()

	files := map[string]string{}
	if games != "" {
		files["games.json"] = games
	}

	s := store.New(testutil.MemFS(t, files), "games.json", "sessions.json")
	tr := &fakeTracker{}
	b := bus.New(4)

	return state.New(s, tr, b), s, tr, b
}

func TestApplyUpdates(t *testing.T) {
	st, _, _, _ := newState(t, twoGames)

	st.ApplyUpdates([]bus.Update{
		{GameID: 2, Hours: "1h 1m 5s"},
		{GameID: 9, Hours: "5h 0m 0s"},
	})

	assert.Equal(t, []models.Game{
		{ID: 1, Name: "A", Path: "/a.exe", Hours: "0h 0m 0s"},
		{ID: 2, Name: "B", Path: "/b.exe", Hours: "1h 1m 5s"},
	}, st.Games)
}

func TestFrameDrainsBus(t *testing.T) {
	st, _, _, b := newState(t, twoGames)

	assert.False(t, st.Frame())

	b.Sender().Send(bus.Update{GameID: 1, Hours: "0h 0m 1s"})
	b.Sender().Send(bus.Update{GameID: 1, Hours: "0h 0m 2s"})

	assert.True(t, st.Frame())
	assert.Equal(t, "0h 0m 2s", st.Games[0].Hours)
	assert.Empty(t, b.Drain())
}

func TestAddGame(t *testing.T) {
	st, s, _, _ := newState(t, "")

	st.ShowAddGame = true
	st.NewGameName = "draft"

	st.AddGame("", "/g/Steins_Gate.exe")

	assert.False(t, st.ShowAddGame)
	assert.Empty(t, st.NewGameName)
	assert.NoError(t, st.Err)
	assert.Equal(t, s.LoadGames(), st.Games)
	assert.Equal(t, "Steins_Gate", st.Games[0].Name)
}

func TestDeleteGame(t *testing.T) {
	st, s, _, _ := newState(t, twoGames)

	id := uint32(1)
	st.ConfirmDelete = &id

	st.DeleteGame(1)

	assert.Nil(t, st.ConfirmDelete)
	assert.Equal(t, s.LoadGames(), st.Games)
	require.Len(t, st.Games, 1)
	assert.Equal(t, uint32(2), st.Games[0].ID)
}

func TestRenameGameDoesNotReload(t *testing.T) {
	st, s, _, _ := newState(t, twoGames)

	// An update the UI has not reloaded from disk yet.
	st.Games[0].Hours = "9h 9m 9s"

	st.RenameGame(2, "Renamed")

	assert.Equal(t, "Renamed", st.Games[1].Name)
	assert.Equal(t, "9h 9m 9s", st.Games[0].Hours)
	assert.Equal(t, "Renamed", s.LoadGames()[1].Name)
}

func TestRenameUnknownGameSetsErr(t *testing.T) {
	st, _, _, _ := newState(t, twoGames)

	st.RenameGame(7, "X")

	require.ErrorIs(t, st.Err, store.ErrGameNotFound)
}

func TestStartGamePassesSnapshot(t *testing.T) {
	st, _, tr, _ := newState(t, twoGames)

	st.StartGame(2)
	st.StartGame(42)

	assert.Equal(t, []models.GameSnapshot{
		{ID: 2, Name: "B", Path: "/b.exe"},
	}, tr.started)
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo, err := state.Open(filepath.Join(t.TempDir(), "ui.db"))
	require.NoError(t, err)

	defer repo.Close()

	st, _, _, _ := newState(t, twoGames)

	editing := uint32(2)
	st.EditingName = &editing
	st.ShowAddGame = true
	st.NewGameName = "half typed"
	st.Games[1].Name = "edited in place"

	require.NoError(t, repo.Save(st))

	restored, _, _, _ := newState(t, "")
	require.NoError(t, repo.Restore(restored))

	if diff := cmp.Diff(st.Games, restored.Games); diff != "" {
		t.Errorf("games mismatch (-want +got):\n%s", diff)
	}

	require.NotNil(t, restored.EditingName)
	assert.Equal(t, uint32(2), *restored.EditingName)
	assert.True(t, restored.ShowAddGame)
	assert.Equal(t, "half typed", restored.NewGameName)
	assert.Nil(t, restored.ShowSessions)
	assert.Nil(t, restored.ConfirmDelete)
}

func TestRestoreWithoutSnapshot(t *testing.T) {
	repo, err := state.Open(filepath.Join(t.TempDir(), "ui.db"))
	require.NoError(t, err)

	defer repo.Close()

	st, s, _, _ := newState(t, twoGames)
	st.ShowAddGame = true
	st.Games = nil

	err = repo.Restore(st)
	require.ErrorIs(t, err, state.ErrNoSnapshot)

	assert.False(t, st.ShowAddGame)
	assert.Equal(t, s.LoadGames(), st.Games)
}

func TestOpenLockedRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.db")

	repo, err := state.Open(path)
	require.NoError(t, err)

	defer repo.Close()

	_, err = state.Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}
