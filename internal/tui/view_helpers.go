package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func renderTabs(active string) string {
	tabs := []struct{ page, label string }{
		{pageDictionaries, "Dictionaries"},
		{pageProfile, "Profile"},
	}

	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.page == active {
			rendered = append(rendered, activeTabStyle.Render(t.label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
