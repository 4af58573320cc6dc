// Package library implements the game list operations shared by the terminal
// UI and the command line
package library

import (
	"slices"
	"strings"

	"github.com/ayoisaiah/vntracker/internal/apperr"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/pathutil"
	"github.com/ayoisaiah/vntracker/internal/timeutil"
	"github.com/ayoisaiah/vntracker/store"
)

var errEmptyPath = &apperr.Error{
	Message: "a game needs the path to its executable",
}

// GameName returns the display name for a new game: the trimmed name, or
// the trimmed file stem of path when name is blank.
func GameName(name, path string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}

	return strings.TrimSpace(pathutil.FileStem(path))
}

// NextID returns one more than the largest id in games, or 1 for an empty
// list.
func NextID(games []models.Game) uint32 {
	var maxID uint32

	for _, g := range games {
		maxID = max(maxID, g.ID)
	}

	return maxID + 1
}

// Find returns the game with the given id.
func Find(games []models.Game, id uint32) (models.Game, bool) {
	i := slices.IndexFunc(games, func(g models.Game) bool {
		return g.ID == id
	})
	if i < 0 {
		return models.Game{}, false
	}

	return games[i], true
}

// Add registers a new game with no play time and returns it.
func Add(db store.DB, name, path string) (models.Game, error) {
	if strings.TrimSpace(path) == "" {
		return models.Game{}, errEmptyPath
	}

	var game models.Game

	_, err := db.MutateGames(func(games []models.Game) ([]models.Game, error) {
		game = models.Game{
			ID:    NextID(games),
			Name:  GameName(name, path),
			Path:  path,
			Hours: timeutil.ZeroDuration,
		}

		return append(games, game), nil
	})

	return game, err
}

// Delete removes the game with the given id and then every session recorded
// for it. It reports whether any session was removed.
func Delete(db store.DB, id uint32) (bool, error) {
	_, err := db.MutateGames(func(games []models.Game) ([]models.Game, error) {
		return slices.DeleteFunc(games, func(g models.Game) bool {
			return g.ID == id
		}), nil
	})
	if err != nil {
		return false, err
	}

	return db.DeleteSessionsForGame(id)
}

// Rename changes the name of a game and leaves every other field alone.
// An unknown id returns store.ErrGameNotFound and changes nothing.
func Rename(db store.DB, id uint32, name string) error {
	_, err := db.UpdateGame(id, func(g *models.Game) {
		g.Name = name
	})

	return err
}
