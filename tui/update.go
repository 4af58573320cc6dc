package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/vntracker/library"
)

var errNoExecutable = errors.New("pick the game's executable")

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if m.st.Frame() {
			m.refreshRows()

			if m.st.ShowSessions != nil {
				m.sessions.SetContent(m.sessionsContent(*m.st.ShowSessions))
			}
		}

		return m, m.frame()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch {
	case m.addForm != nil:
		return m.updateAddForm(msg)
	case m.deleteForm != nil:
		return m.updateDeleteForm(msg)
	case m.st.EditingName != nil:
		return m.updateRename(msg)
	case m.st.ShowSessions != nil:
		return m.updateSessions(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	return m.handleKeyPress(keyMsg)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.play):
		if id, ok := m.selected(); ok {
			m.st.StartGame(id)

			game, _ := library.Find(m.st.Games, id)
			m.status = "Playing " + game.Name
		}

		return m, nil

	case key.Matches(msg, m.keys.add):
		m.openAddForm()
		return m, m.addForm.Init()

	case key.Matches(msg, m.keys.rename):
		if id, ok := m.selected(); ok {
			m.openRename(id)
			return m, textinput.Blink
		}

		return m, nil

	case key.Matches(msg, m.keys.sessions):
		if id, ok := m.selected(); ok {
			m.openSessions(id)
		}

		return m, nil

	case key.Matches(msg, m.keys.remove):
		if id, ok := m.selected(); ok {
			m.openDeleteForm(id)
			return m, m.deleteForm.Init()
		}

		return m, nil

	case key.Matches(msg, m.keys.reload):
		m.st.Reload()
		m.st.Err = nil
		m.refreshRows()
		m.status = "Reloaded"

		return m, nil

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.esc) {
		m.closeAddForm()
		return m, nil
	}

	form, cmd := m.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.addForm = f
	}

	m.st.NewGameName = m.addName

	switch m.addForm.State {
	case huh.StateCompleted:
		slog.Debug("add game form completed", slog.String("dump", spew.Sdump(m.addName, m.addPath)))

		m.addForm = nil
		m.st.AddGame(m.addName, m.addPath)
		m.refreshRows()
		m.table.GotoBottom()

		return m, nil
	case huh.StateAborted:
		m.closeAddForm()
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateDeleteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.esc) {
		m.closeDeleteForm()
		return m, nil
	}

	form, cmd := m.deleteForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.deleteForm = f
	}

	switch m.deleteForm.State {
	case huh.StateCompleted:
		id := *m.st.ConfirmDelete

		m.deleteForm = nil

		if m.confirmDelete {
			m.st.DeleteGame(id)
			m.refreshRows()
		} else {
			m.st.ConfirmDelete = nil
		}

		return m, nil
	case huh.StateAborted:
		m.closeDeleteForm()
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.enter):
			m.st.RenameGame(*m.st.EditingName, m.rename.Value())
			m.closeRename()
			m.refreshRows()

			return m, nil
		case key.Matches(keyMsg, m.keys.esc):
			m.closeRename()
			return m, nil
		}
	}

	var cmd tea.Cmd

	m.rename, cmd = m.rename.Update(msg)

	return m, cmd
}

func (m *Model) updateSessions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.esc),
			key.Matches(keyMsg, m.keys.sessions),
			key.Matches(keyMsg, m.keys.quit):
			m.st.ShowSessions = nil
			return m, nil
		}
	}

	var cmd tea.Cmd

	m.sessions, cmd = m.sessions.Update(msg)

	return m, cmd
}
