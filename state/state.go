// Package state holds the in-memory view of the game library that the
// terminal UI renders and mutates
package state

import (
	"log/slog"

	"github.com/ayoisaiah/vntracker/bus"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/library"
	"github.com/ayoisaiah/vntracker/store"
)

// Starter begins tracking a play session.
type Starter interface {
	StartGame(game models.GameSnapshot, updates bus.Sender)
}

// State is the UI's mirror of games.json plus its transient window flags.
// The exported fields are what gets persisted between runs.
type State struct {
	// Err is the last persistence failure, shown in the status line
	Err     error          `json:"-"`
	db      store.DB
	tracker Starter
	bus     *bus.Bus

	EditingName   *uint32       `json:"editing_name"`
	ShowSessions  *uint32       `json:"show_sessions_window"`
	ConfirmDelete *uint32       `json:"show_confirm_delete_window"`
	NewGameName   string        `json:"new_game_name"`
	Games         []models.Game `json:"games"`
	ShowAddGame   bool          `json:"show_add_game_window"`
}

// New returns a state with the games currently in db.
func New(db store.DB, tracker Starter, updates *bus.Bus) *State {
	st := &State{}
	st.Attach(db, tracker, updates)
	st.Reset()

	return st
}

// Attach connects a restored state to its collaborators.
func (st *State) Attach(db store.DB, tracker Starter, updates *bus.Bus) {
	st.db = db
	st.tracker = tracker
	st.bus = updates
}

// Reset reloads the games from the store and clears every flag.
func (st *State) Reset() {
	st.Games = st.db.LoadGames()
	st.ShowAddGame = false
	st.NewGameName = ""
	st.EditingName = nil
	st.ShowSessions = nil
	st.ConfirmDelete = nil
	st.Err = nil
}

// Reload replaces the games mirror with the content of the store.
func (st *State) Reload() {
	st.Games = st.db.LoadGames()
}

// Frame applies every update waiting on the bus. It reports whether anything
// was applied.
func (st *State) Frame() bool {
	updates := st.bus.Drain()
	st.ApplyUpdates(updates)

	return len(updates) > 0
}

// ApplyUpdates sets the hours of each game named by an update. Updates for
// games that are no longer listed are dropped.
func (st *State) ApplyUpdates(updates []bus.Update) {
	for _, u := range updates {
		for i := range st.Games {
			if st.Games[i].ID == u.GameID {
				st.Games[i].Hours = u.Hours
			}
		}
	}
}

// AddGame registers a game and refreshes the mirror.
func (st *State) AddGame(name, path string) {
	_, err := library.Add(st.db, name, path)
	st.fail("adding game", err)

	st.Games = st.db.LoadGames()
	st.ShowAddGame = false
	st.NewGameName = ""
}

// DeleteGame removes a game with its sessions and refreshes the mirror.
func (st *State) DeleteGame(id uint32) {
	_, err := library.Delete(st.db, id)
	st.fail("deleting game", err)

	st.Games = st.db.LoadGames()
	st.ConfirmDelete = nil
}

// RenameGame writes the new name through to the store and updates the
// mirrored entry in place. The rest of the mirror is not reloaded.
func (st *State) RenameGame(id uint32, name string) {
	for i := range st.Games {
		if st.Games[i].ID == id {
			st.Games[i].Name = name
		}
	}

	st.fail("renaming game", library.Rename(st.db, id, name))
}

// StartGame hands a copy of the game to the tracker.
func (st *State) StartGame(id uint32) {
	game, ok := library.Find(st.Games, id)
	if !ok {
		return
	}

	st.tracker.StartGame(game.Snapshot(), st.bus.Sender())
}

// Sessions returns the recorded sessions of a game.
func (st *State) Sessions(id uint32) []models.Session {
	return st.db.LoadSessions(id)
}

func (st *State) fail(op string, err error) {
	if err == nil {
		return
	}

	slog.Error(op, slog.Any("error", err))

	st.Err = err
}
