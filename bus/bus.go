// Package bus carries play time updates from session trackers to the UI
package bus

import (
	"sync"
)

// Update reports the new total play time of a game.
type Update struct {
	Hours  string
	GameID uint32
}

// Bus is the consuming end of a bounded, many-producer update queue.
type Bus struct {
	ch     chan Update
	done   chan struct{}
	closed sync.Once
}

// Sender is a copyable producer handle of a Bus.
type Sender struct {
	ch   chan<- Update
	done <-chan struct{}
}

// New returns a bus that buffers up to capacity pending updates. A capacity
// below one is treated as one.
func New(capacity int) *Bus {
	return &Bus{
		ch:   make(chan Update, max(capacity, 1)),
		done: make(chan struct{}),
	}
}

// Sender returns a producer handle.
func (b *Bus) Sender() Sender {
	return Sender{
		ch:   b.ch,
		done: b.done,
	}
}

// Send queues u without blocking. It returns false if the update was dropped
// because the buffer is full or the bus is closed.
func (s Sender) Send(u Update) bool {
	if s.ch == nil {
		return false
	}

	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case <-s.done:
		return false
	case s.ch <- u:
		return true
	default:
		return false
	}
}

// Drain returns every pending update in arrival order without blocking.
func (b *Bus) Drain() []Update {
	var updates []Update

	for {
		select {
		case u := <-b.ch:
			updates = append(updates, u)
		default:
			return updates
		}
	}
}

// Close turns every later Send into a no-op. It is safe to call more than
// once and concurrently with senders.
func (b *Bus) Close() {
	b.closed.Do(func() {
		close(b.done)
	})
}
