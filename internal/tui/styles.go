// Package tui is the terminal front end. It renders the dispatcher's page
// model with lipgloss and drives render passes from key presses.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#101F38")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#DCE0E5")
	colorError   = lipgloss.Color("#E53935")
	colorInfo    = lipgloss.Color("#2196F3")
)

// Styles groups every style the view uses.
type Styles struct {
	Sidebar  lipgloss.Style
	Content  lipgloss.Style
	NavItem  lipgloss.Style
	NavOn    lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Sub      lipgloss.Style
	Body     lipgloss.Style
	Label    lipgloss.Style
	Button   lipgloss.Style
	ButtonOn lipgloss.Style
	Metric   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Footer   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Sidebar: lipgloss.NewStyle().
			Padding(1, 2).
			Width(26).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorBorder),
		Content:  lipgloss.NewStyle().Padding(1, 2),
		NavItem:  lipgloss.NewStyle().Foreground(colorMuted),
		NavOn:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginTop(1),
		Sub:      lipgloss.NewStyle().Bold(true),
		Body:     lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle().Foreground(colorMuted),
		Button:   lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder),
		ButtonOn: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Foreground(colorAccent).Bold(true),
		Metric:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Background(colorAccent).Padding(0, 2).MarginRight(2),
		Success:  lipgloss.NewStyle().Foreground(colorAccent),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Info:     lipgloss.NewStyle().Foreground(colorInfo),
		Footer:   lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
