// Package tracker launches games and records how long each one ran
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/vntracker/bus"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/timeutil"
	"github.com/ayoisaiah/vntracker/store"
)

// Result describes a committed session.
type Result struct {
	Game GameInfo
	// Duration is the display form of Elapsed
	Duration string
	// Hours is the game's new total play time
	Hours   string
	Date    string
	Elapsed uint64
}

// GameInfo identifies the game a session belongs to.
type GameInfo = models.GameSnapshot

// Env returns the hook environment for the session.
func (r Result) Env() []string {
	return []string{
		"VNTRACKER_GAME_ID=" + strconv.FormatUint(uint64(r.Game.ID), 10),
		"VNTRACKER_GAME_NAME=" + r.Game.Name,
		"VNTRACKER_DURATION=" + r.Duration,
		"VNTRACKER_HOURS=" + r.Hours,
	}
}

// Tracker runs play sessions in the background.
type Tracker struct {
	db       store.DB
	launcher Launcher
	clock    clockwork.Clock
	stderr   io.Writer
	hooks    []Hook
	wg       sync.WaitGroup
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLauncher replaces the default ExecLauncher. A nil launcher is ignored.
func WithLauncher(l Launcher) Option {
	return func(t *Tracker) {
		if l != nil {
			t.launcher = l
		}
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(t *Tracker) {
		t.clock = c
	}
}

// WithStderr sets where launch failures are reported.
func WithStderr(w io.Writer) Option {
	return func(t *Tracker) {
		t.stderr = w
	}
}

func WithHooks(hooks ...Hook) Option {
	return func(t *Tracker) {
		t.hooks = append(t.hooks, hooks...)
	}
}

// New returns a tracker that records sessions in db.
func New(db store.DB, opts ...Option) *Tracker {
	t := &Tracker{
		db:       db,
		launcher: ExecLauncher{},
		clock:    clockwork.NewRealClock(),
		stderr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// StartGame launches game in a new goroutine and returns immediately. When
// the game exits its total play time is updated, a session is appended and
// the new total is sent on updates.
func (t *Tracker) StartGame(game models.GameSnapshot, updates bus.Sender) {
	t.wg.Add(1)

	go func() {
		defer t.wg.Done()

		t.track(game, updates)
	}()
}

// Wait blocks until every started session has finished.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

func (t *Tracker) track(game models.GameSnapshot, updates bus.Sender) {
	start := t.clock.Now()

	slog.Info(
		"launching game",
		slog.Uint64("game_id", uint64(game.ID)),
		slog.String("path", game.Path),
	)

	if err := t.launcher.Run(game.Path); err != nil {
		fmt.Fprintf(t.stderr, "Failed to launch game %s: %v\n", game.Path, err)
		slog.Error(
			"launching game failed",
			slog.String("path", game.Path),
			slog.Any("error", err),
		)

		return
	}

	elapsed := uint64(t.clock.Since(start) / time.Second)

	updated, err := t.db.UpdateGame(game.ID, func(g *models.Game) {
		g.Hours = timeutil.AddDuration(g.Hours, elapsed)
	})
	if errors.Is(err, store.ErrGameNotFound) {
		slog.Info(
			"discarding session of removed game",
			slog.Uint64("game_id", uint64(game.ID)),
		)

		return
	}

	if err != nil {
		slog.Error("saving play time failed", slog.Any("error", err))
	}

	res := Result{
		Game:     game,
		Elapsed:  elapsed,
		Duration: timeutil.FormatDuration(elapsed),
		Hours:    updated.Hours,
		Date:     timeutil.SessionDate(t.clock.Now()),
	}

	err = t.db.SaveSession(models.Session{
		GameID:   game.ID,
		Date:     res.Date,
		Duration: res.Duration,
	})
	if err != nil {
		slog.Error("saving session failed", slog.Any("error", err))
	}

	if !updates.Send(bus.Update{GameID: game.ID, Hours: res.Hours}) {
		slog.Debug("update dropped", slog.Uint64("game_id", uint64(game.ID)))
	}

	t.runHooks(res)
}

func (t *Tracker) runHooks(res Result) {
	for _, h := range t.hooks {
		if err := h.AfterSession(context.Background(), res); err != nil {
			slog.Warn("after session hook failed", slog.Any("error", err))
		}
	}
}
