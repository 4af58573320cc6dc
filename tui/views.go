package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/vntracker/library"
)

func (m *Model) sessionsContent(id uint32) string {
	sessions := m.st.Sessions(id)
	if len(sessions) == 0 {
		return m.styles.empty.Render("Sessions list is empty")
	}

	lines := make([]string, len(sessions))

	for i, s := range sessions {
		lines[i] = m.styles.date.Render(s.Date) + "  " +
			m.styles.duration.Render(s.Duration)
	}

	return strings.Join(lines, "\n")
}

func (m *Model) titleView() string {
	return m.styles.title.Render("VN Time Tracker")
}

func (m *Model) statusView() string {
	if m.st.Err != nil {
		return m.styles.err.Render("Last save failed: " + m.st.Err.Error())
	}

	return m.styles.status.Render(m.status)
}

func (m *Model) gamesView() string {
	if len(m.st.Games) == 0 {
		return m.styles.empty.Render("Empty games list")
	}

	return m.table.View()
}

func (m *Model) renameView() string {
	var s strings.Builder

	s.WriteString(m.styles.title.Render("Rename game"))
	s.WriteString("\n\n")
	s.WriteString(m.rename.View())
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keys.enter,
		m.keys.esc,
	}))

	return m.styles.window.Render(s.String())
}

func (m *Model) sessionsView() string {
	var s strings.Builder

	title := "Sessions"
	if game, ok := library.Find(m.st.Games, *m.st.ShowSessions); ok {
		title = fmt.Sprintf("Sessions: %s", game.Name)
	}

	s.WriteString(m.styles.title.Render(title))
	s.WriteString("\n\n")
	s.WriteString(m.sessions.View())
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.esc}))

	return m.styles.window.Render(s.String())
}

func (m *Model) mainView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.titleView(),
		"",
		m.gamesView(),
		"",
		m.statusView(),
		m.help.View(m.keys),
	)
}

func (m *Model) View() string {
	if m.width > 0 && (m.width < minWidth || m.height < minHeight) {
		return m.styles.base.Render(m.styles.hint.Render(fmt.Sprintf(
			"Window too small: %dx%d, need at least %dx%d",
			m.width,
			m.height,
			minWidth,
			minHeight,
		)))
	}

	var view string

	switch {
	case m.addForm != nil:
		view = m.styles.title.Render("Add game") + "\n\n" + m.addForm.View()
	case m.deleteForm != nil:
		view = m.deleteForm.View()
	case m.st.EditingName != nil:
		view = m.renameView()
	case m.st.ShowSessions != nil:
		view = m.sessionsView()
	default:
		view = m.mainView()
	}

	return m.styles.base.Render(view)
}
