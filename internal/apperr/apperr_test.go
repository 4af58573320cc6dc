package apperr_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/vntracker/internal/apperr"
)

var errSample = &apperr.Error{
	Message: "game %d not found",
}

func TestFmtKeepsSentinel(t *testing.T) {
	err := errSample.Fmt(7)

	assert.Equal(t, "game 7 not found", err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrap(t *testing.T) {
	err := errSample.Fmt(3).Wrap(fs.ErrNotExist)

	assert.Equal(t, "game 3 not found: file does not exist", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, errors.Is(err, &apperr.Error{Message: "game 3 not found"}))
}
