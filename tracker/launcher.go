package tracker

import (
	"errors"
	"io"
	"os/exec"
)

// Launcher starts a game executable and blocks until it exits. It returns an
// error only when the process could not be started or waited on; the exit
// status of the game is not an error.
type Launcher interface {
	Run(path string) error
}

// ExecLauncher runs games as child processes with no arguments, environment
// overrides or working directory change. Nil streams are connected to the
// null device.
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (l ExecLauncher) Run(path string) error {
	cmd := exec.Command(path)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}

	err := cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}

	return err
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(path string) error

func (f LauncherFunc) Run(path string) error {
	return f(path)
}
