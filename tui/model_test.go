package tui

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/vntracker/bus"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/testutil"
	"github.com/ayoisaiah/vntracker/state"
	"github.com/ayoisaiah/vntracker/store"
)

type fakeTracker struct {
	mu      sync.Mutex
	started []models.GameSnapshot
}

func (f *fakeTracker) StartGame(g models.GameSnapshot, _ bus.Sender) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.started = append(f.started, g)
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, games string) (*Model, *store.Store, *fakeTracker, *bus.Bus) {
	t.Helper()

	files := map[string]string{
		"sessions.json": `[{"game_id":1,"date":"2024-05-01 20:01:05","duration":"0h 1m 5s"}]`,
	}
	if games != "" {
		files["games.json"] = games
	}

	s := store.New(testutil.MemFS(t, files), "games.json", "sessions.json")
	tr := &fakeTracker{}
	b := bus.New(4)

	m := New(state.New(s, tr, b), Options{
		StartDir:      t.TempDir(),
		FrameInterval: 250 * time.Millisecond,
		DarkTheme:     true,
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	return m, s, tr, b
}

const twoGames = `[{"id":1,"name":"Clannad","path":"/g/c.exe","hours":"1h 0m 0s"},` +
	`{"id":2,"name":"Ever17","path":"/g/e.exe","hours":"0h 0m 0s"}]`

func TestEmptyGamesList(t *testing.T) {
	m, _, _, _ := newModel(t, "")

	assert.Contains(t, m.View(), "Empty games list")
}

func TestMainViewListsGames(t *testing.T) {
	m, _, _, _ := newModel(t, twoGames)

	view := m.View()
	assert.Contains(t, view, "Clannad")
	assert.Contains(t, view, "1h 0m 0s")
	assert.Contains(t, view, "Played hours")
}

func TestWindowTooSmall(t *testing.T) {
	m, _, _, _ := newModel(t, twoGames)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Contains(t, m.View(), "Window too small")
}

func TestFrameAppliesUpdates(t *testing.T) {
	m, _, _, b := newModel(t, twoGames)

	b.Sender().Send(bus.Update{GameID: 1, Hours: "1h 1m 5s"})

	_, cmd := m.Update(frameMsg(time.Now()))

	assert.NotNil(t, cmd, "next frame not scheduled")
	assert.Equal(t, "1h 1m 5s", m.st.Games[0].Hours)
	assert.Contains(t, m.View(), "1h 1m 5s")
}

func TestPlayStartsSelectedGame(t *testing.T) {
	m, _, tr, _ := newModel(t, twoGames)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(keyPress("p"))

	require.Len(t, tr.started, 1)
	assert.Equal(t, models.GameSnapshot{ID: 2, Name: "Ever17", Path: "/g/e.exe"}, tr.started[0])
	assert.Contains(t, m.View(), "Playing Ever17")
}

func TestRenameGame(t *testing.T) {
	m, s, _, _ := newModel(t, twoGames)

	m.Update(keyPress("r"))
	require.NotNil(t, m.st.EditingName)
	assert.Contains(t, m.View(), "Rename game")

	for range len("Clannad") {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}

	m.Update(keyPress("CLANNAD"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.st.EditingName)
	assert.Equal(t, "CLANNAD", m.st.Games[0].Name)
	assert.Equal(t, "CLANNAD", s.LoadGames()[0].Name)
}

func TestRenameCancel(t *testing.T) {
	m, s, _, _ := newModel(t, twoGames)

	m.Update(keyPress("r"))
	m.Update(keyPress("xyz"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.st.EditingName)
	assert.Equal(t, "Clannad", s.LoadGames()[0].Name)
}

func TestSessionsWindow(t *testing.T) {
	m, _, _, _ := newModel(t, twoGames)

	m.Update(keyPress("s"))
	require.NotNil(t, m.st.ShowSessions)

	view := m.View()
	assert.Contains(t, view, "Sessions: Clannad")
	assert.Contains(t, view, "2024-05-01 20:01:05")
	assert.Contains(t, view, "0h 1m 5s")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.st.ShowSessions)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(keyPress("s"))
	assert.Contains(t, m.View(), "Sessions list is empty")
}

func TestDeleteOpensConfirmation(t *testing.T) {
	m, _, _, _ := newModel(t, twoGames)

	m.Update(keyPress("d"))

	require.NotNil(t, m.st.ConfirmDelete)
	assert.Equal(t, uint32(1), *m.st.ConfirmDelete)
	assert.Contains(t, m.View(), "DELETE GAME")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.st.ConfirmDelete)
	assert.Len(t, m.st.Games, 2)
}

func TestAddOpensForm(t *testing.T) {
	m, _, _, _ := newModel(t, twoGames)

	m.Update(keyPress("a"))
	assert.True(t, m.st.ShowAddGame)
	assert.Contains(t, m.View(), "Add game")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.st.ShowAddGame)
}

func TestRestoredWindowIsReopened(t *testing.T) {
	s := store.New(testutil.MemFS(t, map[string]string{"games.json": twoGames}), "games.json", "sessions.json")
	st := state.New(s, &fakeTracker{}, bus.New(1))

	id := uint32(2)
	st.EditingName = &id

	m := New(st, Options{FrameInterval: time.Second})

	assert.Equal(t, "Ever17", m.rename.Value())
}

func TestQuit(t *testing.T) {
	m, _, _, _ := newModel(t, twoGames)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
