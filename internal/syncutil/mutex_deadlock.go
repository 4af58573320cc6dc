//go:build deadlock

// Package syncutil provides mutex types that can be swapped for deadlock
// detecting implementations with the deadlock build tag.
package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

const DeadlockEnabled = true

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

type Mutex struct {
	deadlock.Mutex
}
