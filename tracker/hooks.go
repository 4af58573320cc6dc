package tracker

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/vntracker/internal/apperr"
)

var errParseHookCmd = &apperr.Error{
	Message: "unable to parse after_session hook",
}

// Hook runs after a session has been committed and announced.
type Hook interface {
	AfterSession(ctx context.Context, res Result) error
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(ctx context.Context, res Result) error

func (f HookFunc) AfterSession(ctx context.Context, res Result) error {
	return f(ctx, res)
}

// NotifyHook shows a desktop notification for each recorded session.
type NotifyHook struct {
	// Icon is an optional path to the notification icon
	Icon string
}

func (h NotifyHook) AfterSession(_ context.Context, res Result) error {
	msg := fmt.Sprintf(
		"%s: %s (total %s)",
		res.Game.Name,
		res.Duration,
		res.Hours,
	)

	return beeep.Notify("Session recorded", msg, h.Icon)
}

// CommandHook runs a user command after each session. The command line is
// split with shell quoting rules and run without a shell.
type CommandHook struct {
	Cmd string
}

func (h CommandHook) AfterSession(ctx context.Context, res Result) error {
	if h.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(h.Cmd)
	if err != nil {
		return errParseHookCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(), res.Env()...)

	return cmd.Run()
}
