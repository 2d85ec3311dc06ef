package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#282828")
	Mantle  = lipgloss.Color("#1d2021")
	Surface = lipgloss.Color("#3c3836")
	Border  = lipgloss.Color("#504945")
	Text    = lipgloss.Color("#ebdbb2")
	Subtext = lipgloss.Color("#a89984")
	Aqua    = lipgloss.Color("#8ec07c")
	Blue    = lipgloss.Color("#83a598")
	Yellow  = lipgloss.Color("#fabd2f")
	Orange  = lipgloss.Color("#fe8019")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Yellow)

	Title = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext)
	Hot   = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Aqua)
)
