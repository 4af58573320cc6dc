package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/library"
	"github.com/ayoisaiah/vntracker/store"
)

// confirmDelete asks whether game and its sessions should be removed.
func confirmDelete(game models.Game) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(fmt.Sprintf(
			"Are you sure you want to DELETE GAME and all sessions for\n'%s' ?",
			game.Name,
		)).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}

// delGame deletes a game with its sessions. It requests for confirmation
// before proceeding unless skip is set.
func delGame(w io.Writer, db store.DB, game models.Game, skip bool) error {
	if !skip {
		printGamesTable(w, []models.Game{game})

		ok, err := confirmDelete(game)
		if err != nil {
			return err
		}

		if !ok {
			pterm.Info.Println("Nothing was deleted")
			return nil
		}
	}

	removed, err := library.Delete(db, game.ID)
	if err != nil {
		return err
	}

	if removed {
		pterm.Success.Printfln("Deleted %s and its sessions", game.Name)
		return nil
	}

	pterm.Success.Printfln("Deleted %s", game.Name)

	return nil
}
