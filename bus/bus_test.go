package bus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/vntracker/bus"
)

func TestSendAndDrain(t *testing.T) {
	b := bus.New(4)
	s := b.Sender()

	assert.True(t, s.Send(bus.Update{GameID: 1, Hours: "0h 0m 1s"}))
	assert.True(t, s.Send(bus.Update{GameID: 2, Hours: "0h 0m 2s"}))

	assert.Equal(t, []bus.Update{
		{GameID: 1, Hours: "0h 0m 1s"},
		{GameID: 2, Hours: "0h 0m 2s"},
	}, b.Drain())

	assert.Empty(t, b.Drain())
}

func TestSendDropsWhenFull(t *testing.T) {
	b := bus.New(2)
	s := b.Sender()

	assert.True(t, s.Send(bus.Update{GameID: 1}))
	assert.True(t, s.Send(bus.Update{GameID: 2}))
	assert.False(t, s.Send(bus.Update{GameID: 3}))

	assert.Len(t, b.Drain(), 2)
	assert.True(t, s.Send(bus.Update{GameID: 4}))
}

func TestSendAfterClose(t *testing.T) {
	b := bus.New(2)
	s := b.Sender()

	b.Close()
	b.Close()

	assert.False(t, s.Send(bus.Update{GameID: 1}))
	assert.Empty(t, b.Drain())
}

func TestZeroSender(t *testing.T) {
	var s bus.Sender

	assert.False(t, s.Send(bus.Update{GameID: 1}))
}

func TestConcurrentSenders(t *testing.T) {
	const senders = 16

	b := bus.New(senders)

	var wg sync.WaitGroup

	for i := range senders {
		wg.Add(1)

		go func(s bus.Sender) {
			defer wg.Done()

			s.Send(bus.Update{GameID: uint32(i)})
		}(b.Sender())
	}

	wg.Add(1)

	go func() {
		defer wg.Done()
		b.Close()
	}()

	wg.Wait()

	assert.LessOrEqual(t, len(b.Drain()), senders)
}
