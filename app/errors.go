package app

import "github.com/ayoisaiah/vntracker/internal/apperr"

var (
	errMissingID = &apperr.Error{
		Message: "please provide the id of a game (see 'vntracker list')",
	}

	errInvalidID = &apperr.Error{
		Message: "%q is not a valid game id",
	}

	errGameNotFound = &apperr.Error{
		Message: "no game has the id %d",
	}

	errMissingPath = &apperr.Error{
		Message: "please provide the path to the game's executable",
	}

	errMissingName = &apperr.Error{
		Message: "please provide the new name of the game",
	}

	errInvalidSort = &apperr.Error{
		Message: "cannot sort by %q: use one of id, name, played",
	}

	errNoSessionRecorded = &apperr.Error{
		Message: "%s exited without a recorded session",
	}
)
