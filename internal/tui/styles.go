package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
