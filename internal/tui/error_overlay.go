package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// bellOut receives the BEL byte; the alt screen owns stdout.
var bellOut io.Writer = os.Stderr

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render(m.message) + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}

func ringBell() tea.Msg {
	_, _ = io.WriteString(bellOut, "\a")
	return nil
}

func showError(text string) tea.Cmd {
	return func() tea.Msg { return errorMsg{text: text} }
}

// showDestructiveError is showError plus the terminal bell.
func showDestructiveError(text string) tea.Cmd {
	return func() tea.Msg { return errorMsg{text: text, bell: true} }
}
