package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Browse",
			items: []helpItem{
				{"1-5", "Home/TV/Movies/New/My List"},
				{"tab", "Next tab"},
				{"m", "Tab menu"},
				{"h/j/k/l", "Move between titles"},
				{"r", "Reload tab"},
			},
		},
		{
			title: "Titles",
			items: []helpItem{
				{"/", "Search"},
				{"enter", "Details"},
				{"p", "Play trailer"},
				{"a", "Add/remove My List"},
				{"space/i", "Play/info featured"},
				{"y", "Copy trailer URL"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"u", "Profile"},
				{"T", "Cycle theme"},
				{"esc", "Close overlays"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(m.rule(30))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return m.placeModal(b.String(), 44, m.theme.Accent)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
