package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/vntracker/bus"
	"github.com/ayoisaiah/vntracker/internal/config"
	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/pathutil"
	"github.com/ayoisaiah/vntracker/internal/ui"
	"github.com/ayoisaiah/vntracker/library"
	"github.com/ayoisaiah/vntracker/state"
	"github.com/ayoisaiah/vntracker/tracker"
	"github.com/ayoisaiah/vntracker/tui"
)

const (
	envNoColor          = "NO_COLOR"
	envVNTrackerNoColor = "VNTRACKER_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// parseID reads a game id from a command argument.
func parseID(arg string) (uint32, error) {
	if arg == "" {
		return 0, errMissingID
	}

	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, errInvalidID.Fmt(arg)
	}

	return uint32(id), nil
}

// gameArg resolves the first argument of ctx to a stored game.
func gameArg(ctx *cli.Context, e *env) (models.Game, error) {
	id, err := parseID(ctx.Args().First())
	if err != nil {
		return models.Game{}, err
	}

	game, ok := library.Find(e.db.LoadGames(), id)
	if !ok {
		return models.Game{}, errGameNotFound.Fmt(id)
	}

	return game, nil
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}

// defaultAction opens the terminal UI with the window state of the previous
// run.
func defaultAction(ctx *cli.Context) error {
	e, err := setup(ctx, true, tracker.ExecLauncher{})
	if err != nil {
		return err
	}

	repo, err := state.Open(pathutil.StateDBPath())
	if err != nil {
		return err
	}

	defer repo.Close()

	updates := bus.New(e.cfg.Tracker.BusCapacity)
	defer updates.Close()

	st := state.New(e.db, e.tracker, updates)

	err = repo.Restore(st)
	if err != nil && !errors.Is(err, state.ErrNoSnapshot) {
		slog.Warn(
			"discarding saved window state",
			slog.Any("error", err),
		)
	}

	slog.Debug("window state restored", slog.String("state", spew.Sdump(st)))

	ui.DarkTheme = e.cfg.Display.DarkTheme

	dir, _ := os.Getwd()

	err = tui.Run(st, tui.Options{
		StartDir:      dir,
		FrameInterval: e.cfg.UI.FrameInterval,
		DarkTheme:     e.cfg.Display.DarkTheme,
	})
	if err != nil {
		return err
	}

	return saveOnExit(e.tracker.Wait, st, repo)
}

// snapshotSaver persists the window state.
type snapshotSaver interface {
	Save(st *state.State) error
}

// saveOnExit waits for games still running after the window closed, so their
// totals are part of the saved snapshot.
func saveOnExit(wait func(), st *state.State, repo snapshotSaver) error {
	wait()
	st.Reload()

	return repo.Save(st)
}

// addAction handles the add command which registers a game executable.
func addAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingPath
	}

	e, err := setup(ctx, false, nil)
	if err != nil {
		return err
	}

	game, err := library.Add(e.db, ctx.String("name"), path)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Added %s with id %d", game.Name, game.ID)

	return nil
}

// listAction handles the list command and prints a table of all the games.
func listAction(ctx *cli.Context) error {
	e, err := setup(ctx, false, nil)
	if err != nil {
		return err
	}

	games := e.db.LoadGames()

	err = sortGames(games, ctx.String("sort"))
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(games)
	}

	listGames(config.Stdout, games)

	return nil
}

// sessionsAction handles the sessions command and prints the sessions of one
// game recorded within a time period.
func sessionsAction(ctx *cli.Context) error {
	e, err := setup(ctx, false, nil)
	if err != nil {
		return err
	}

	game, err := gameArg(ctx, e)
	if err != nil {
		return err
	}

	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	sessions := filter.Apply(e.db.LoadSessions(game.ID))

	if ctx.Bool("json") {
		return printJSON(sessions)
	}

	pterm.DefaultSection.Printfln("Sessions: %s", game.Name)

	listSessions(config.Stdout, sessions)

	return nil
}

// renameAction handles the rename command.
func renameAction(ctx *cli.Context) error {
	id, err := parseID(ctx.Args().First())
	if err != nil {
		return err
	}

	name := ctx.Args().Get(1)
	if name == "" {
		return errMissingName
	}

	e, err := setup(ctx, false, nil)
	if err != nil {
		return err
	}

	err = library.Rename(e.db, id, name)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Game %d is now called %s", id, name)

	return nil
}

// deleteAction handles the delete command which removes a game and every
// session recorded for it.
func deleteAction(ctx *cli.Context) error {
	e, err := setup(ctx, false, nil)
	if err != nil {
		return err
	}

	game, err := gameArg(ctx, e)
	if err != nil {
		return err
	}

	return delGame(config.Stdout, e.db, game, ctx.Bool("yes"))
}

// playAction launches a game in the foreground and records the session when
// it exits.
func playAction(ctx *cli.Context) error {
	e, err := setup(ctx, false, tracker.ExecLauncher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return err
	}

	game, err := gameArg(ctx, e)
	if err != nil {
		return err
	}

	updates := bus.New(1)
	defer updates.Close()

	pterm.Info.Printfln("Playing %s", game.Name)

	e.tracker.StartGame(game.Snapshot(), updates.Sender())
	e.tracker.Wait()

	recorded := updates.Drain()
	if len(recorded) == 0 {
		return errNoSessionRecorded.Fmt(game.Name)
	}

	pterm.Success.Printfln(
		"%s: %s played in total",
		game.Name,
		recorded[len(recorded)-1].Hours,
	)

	return nil
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	e, err := setup(ctx, false, nil)
	if err != nil {
		return err
	}

	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	s := computeStats(e.db.LoadGames(), e.db.AllSessions(), filter)

	if ctx.Bool("json") {
		return printJSON(s)
	}

	return printStats(config.Stdout, s)
}

// editConfigAction handles the edit-config command which opens the vntracker
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	e, err := setup(ctx, false, nil)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, e.cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf("data files: %s, %s\n",
			pathutil.GamesFileName(),
			pathutil.SessionsFileName(),
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if VNTRACKER_NO_COLOR is set
	if _, exists := os.LookupEnv(envVNTrackerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting vntracker")

	if logFile != nil {
		err := logFile.Close()
		logFile = nil

		return err
	}

	return nil
}
