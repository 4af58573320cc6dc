package store

import (
	"github.com/ayoisaiah/vntracker/internal/models"
)

// DB is the persistence interface shared by the UI, the CLI and the session
// tracker.
type DB interface {
	// LoadGames returns every saved game in file order. A missing or
	// malformed games file yields an empty list.
	LoadGames() []models.Game
	// SaveGames replaces the games file with games
	SaveGames(games []models.Game) error
	// MutateGames reloads the games file, passes the list to fn and saves
	// what fn returns, all under the games lock. Nothing is written if fn
	// fails.
	MutateGames(fn func(games []models.Game) ([]models.Game, error)) ([]models.Game, error)
	// UpdateGame reloads the games file, applies fn to the game with the given
	// id and saves the result as one step. It returns ErrGameNotFound, with
	// the file untouched, if there is no such game.
	UpdateGame(id uint32, fn func(g *models.Game)) (models.Game, error)
	// LoadSessions returns the sessions of one game in file order
	LoadSessions(gameID uint32) []models.Session
	// AllSessions returns every saved session in file order
	AllSessions() []models.Session
	// SaveSession appends sess to the sessions file
	SaveSession(sess models.Session) error
	// DeleteSessionsForGame removes every session of a game and reports
	// whether any was removed. The file is only rewritten when something
	// changed.
	DeleteSessionsForGame(gameID uint32) (bool, error)
}
