// Package tui is the full-screen terminal interface of vntracker
package tui

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/vntracker/library"
	"github.com/ayoisaiah/vntracker/state"
)

const (
	minWidth  = 70
	minHeight = 12

	// rows taken by everything around the games table
	chromeHeight = 8
)

// Options configures the terminal UI.
type Options struct {
	// StartDir is where the file picker opens
	StartDir      string
	FrameInterval time.Duration
	DarkTheme     bool
}

type frameMsg time.Time

// Model is the bubbletea model of the main window.
type Model struct {
	st            *state.State
	addForm       *huh.Form
	deleteForm    *huh.Form
	styles        styles
	keys          keymap
	help          help.Model
	table         table.Model
	rename        textinput.Model
	sessions      viewport.Model
	addName       string
	addPath       string
	status        string
	opts          Options
	width         int
	height        int
	confirmDelete bool
}

// New returns a model that renders and mutates st.
func New(st *state.State, opts Options) *Model {
	if opts.StartDir == "" {
		opts.StartDir, _ = os.Getwd()
	}

	m := &Model{
		st:     st,
		opts:   opts,
		styles: newStyles(opts.DarkTheme),
		keys:   defaultKeymap,
		help:   help.New(),
		rename: textinput.New(),
		table: table.New(
			table.WithFocused(true),
			table.WithKeyMap(tableKeymap()),
		),
		sessions: viewport.New(minWidth, minHeight),
	}

	m.table.SetStyles(m.styles.table)
	m.rename.CharLimit = 256
	m.resize(minWidth, minHeight)
	m.refreshRows()

	// windows left open in the previous run
	switch {
	case st.ShowAddGame:
		m.openAddForm()
	case st.ConfirmDelete != nil:
		m.openDeleteForm(*st.ConfirmDelete)
	case st.EditingName != nil:
		m.openRename(*st.EditingName)
	case st.ShowSessions != nil:
		m.openSessions(*st.ShowSessions)
	}

	return m
}

// Run starts the terminal UI and blocks until the user quits.
func Run(st *state.State, opts Options) error {
	p := tea.NewProgram(New(st, opts), tea.WithAltScreen())

	_, err := p.Run()

	return err
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.frame()}

	if m.addForm != nil {
		cmds = append(cmds, m.addForm.Init())
	}

	if m.deleteForm != nil {
		cmds = append(cmds, m.deleteForm.Init())
	}

	if m.st.EditingName != nil {
		cmds = append(cmds, textinput.Blink)
	}

	return tea.Batch(cmds...)
}

// frame schedules the next drain of the update bus.
func (m *Model) frame() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	w := max(width-6, minWidth-6)
	hoursWidth := 14
	idWidth := 5

	m.table.SetColumns([]table.Column{
		{Title: "#", Width: idWidth},
		{Title: "Game name", Width: max(w-idWidth-hoursWidth-6, 10)},
		{Title: "Played hours", Width: hoursWidth},
	})
	m.table.SetWidth(w)
	m.table.SetHeight(max(height-chromeHeight, 3))

	m.sessions.Width = w - 4
	m.sessions.Height = max(height-chromeHeight-2, 3)

	m.rename.Width = w - 10
	m.help.Width = w
}

// refreshRows rebuilds the table from the games mirror.
func (m *Model) refreshRows() {
	rows := make([]table.Row, len(m.st.Games))

	for i, g := range m.st.Games {
		rows[i] = table.Row{
			strconv.FormatUint(uint64(g.ID), 10),
			g.Name,
			g.Hours,
		}
	}

	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selected returns the id of the highlighted game.
func (m *Model) selected() (uint32, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.st.Games) {
		return 0, false
	}

	return m.st.Games[c].ID, true
}

func (m *Model) openAddForm() {
	m.st.ShowAddGame = true
	m.addName = m.st.NewGameName
	m.addPath = ""

	m.addForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Game name").
				Description("Leave empty to use the executable's file name").
				Value(&m.addName),
			huh.NewFilePicker().
				Title("Executable").
				CurrentDirectory(m.opts.StartDir).
				FileAllowed(true).
				DirAllowed(false).
				Height(max(m.height-chromeHeight-4, 5)).
				Value(&m.addPath).
				Validate(func(p string) error {
					if p == "" {
						return errNoExecutable
					}

					return nil
				}),
		),
	).WithTheme(m.styles.form).WithShowHelp(true)
}

func (m *Model) closeAddForm() {
	m.addForm = nil
	m.st.ShowAddGame = false
	m.st.NewGameName = ""
}

func (m *Model) openDeleteForm(id uint32) {
	game, ok := library.Find(m.st.Games, id)
	if !ok {
		m.st.ConfirmDelete = nil
		return
	}

	m.st.ConfirmDelete = &id
	m.confirmDelete = false

	m.deleteForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf(
					"Are you sure you want to DELETE GAME and all sessions for\n'%s' ?",
					game.Name,
				)).
				Affirmative("Yes").
				Negative("No").
				Value(&m.confirmDelete),
		),
	).WithTheme(m.styles.form).WithShowHelp(true)
}

func (m *Model) closeDeleteForm() {
	m.deleteForm = nil
	m.st.ConfirmDelete = nil
}

func (m *Model) openRename(id uint32) {
	game, ok := library.Find(m.st.Games, id)
	if !ok {
		m.st.EditingName = nil
		return
	}

	m.st.EditingName = &id
	m.rename.SetValue(game.Name)
	m.rename.CursorEnd()
	m.rename.Focus()
}

func (m *Model) closeRename() {
	m.st.EditingName = nil
	m.rename.Blur()
}

func (m *Model) openSessions(id uint32) {
	if _, ok := library.Find(m.st.Games, id); !ok {
		m.st.ShowSessions = nil
		return
	}

	m.st.ShowSessions = &id
	m.sessions.SetContent(m.sessionsContent(id))
	m.sessions.GotoTop()
}
