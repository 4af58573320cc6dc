package store

import "github.com/ayoisaiah/vntracker/internal/apperr"

var (
	errEncode = &apperr.Error{
		Message: "encoding %s failed",
	}

	errWrite = &apperr.Error{
		Message: "writing %s failed",
	}

	// ErrGameNotFound is returned by UpdateGame when no game has the given id.
	ErrGameNotFound = &apperr.Error{
		Message: "game %d not found",
	}
)
