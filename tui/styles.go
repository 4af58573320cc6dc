package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	base     lipgloss.Style
	title    lipgloss.Style
	hint     lipgloss.Style
	status   lipgloss.Style
	err      lipgloss.Style
	empty    lipgloss.Style
	window   lipgloss.Style
	date     lipgloss.Style
	duration lipgloss.Style
	table    table.Styles
	form     *huh.Theme
}

func newStyles(dark bool) styles {
	primary := lipgloss.Color("#1F6FEB")
	text := lipgloss.Color("#0A0A0A")
	muted := lipgloss.Color("#5C5C5C")
	form := huh.ThemeBase()

	if dark {
		primary = lipgloss.Color("#58A6FF")
		text = lipgloss.Color("#C8C8C8")
		muted = lipgloss.Color("#8B949E")
		form = huh.ThemeCharm()
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary).
		Bold(false)
	ts.Cell = ts.Cell.Foreground(text)

	return styles{
		base:     lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		hint:     lipgloss.NewStyle().Foreground(muted),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950")),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F85149")),
		empty:    lipgloss.NewStyle().Bold(true).Foreground(text),
		window:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
		date:     lipgloss.NewStyle().Foreground(primary),
		duration: lipgloss.NewStyle().Foreground(text),
		table:    ts,
		form:     form,
	}
}
