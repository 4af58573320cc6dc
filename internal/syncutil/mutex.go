//go:build !deadlock

// Package syncutil provides mutex types that can be swapped for deadlock
// detecting implementations with the deadlock build tag.
package syncutil

import "sync"

const DeadlockEnabled = false

type Mutex struct {
	sync.Mutex
}
