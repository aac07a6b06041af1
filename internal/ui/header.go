package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/browse"
)

const (
	headerHeight  = 2
	footerHeight  = 1
	heroHeight    = 6
	previewHeight = 2
)

// renderHeader renders the logo, tab bar and list count.
func (m Model) renderHeader(view browse.ViewState) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	compact := m.width < 90

	parts := []string{bg.Render("MARQUEE", styles.Logo)}

	tabs := make([]string, 0, len(browse.Tabs))
	for i, tab := range browse.Tabs {
		label := tab.Label()
		if compact {
			label = fmt.Sprintf("%d", i+1)
		}
		if tab == view.Tab {
			tabs = append(tabs, bg.Render(label, styles.BrandText.Underline(true)))
		} else {
			tabs = append(tabs, bg.Render(label, styles.MutedText))
		}
	}
	parts = append(parts, bg.Join(tabs, "  "))

	count := len(m.browser.MyList())
	parts = append(parts,
		bg.Render("My List:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", count), styles.Text),
	)

	if view.Loading {
		parts = append(parts, bg.Render(m.spinner.View(), styles.BrandText))
	}

	left := bg.Join(parts, "   ")
	right := bg.Render("/ search", styles.FaintText) + sep +
		bg.Render("u profile", styles.FaintText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	bar := left
	if gap > 0 {
		bar = left + bg.Spaces(gap) + right
	}

	line := styles.Header.Width(m.width).Render(bar)
	if view.ProfileOpen {
		return lipgloss.JoinVertical(lipgloss.Left, line, m.renderProfile())
	}
	return line + "\n"
}

// renderFooter renders notices or the short key help.
func (m Model) renderFooter(view browse.ViewState) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var content string
	switch {
	case view.Notice != "":
		content = bg.Render("!", styles.WarningText.Bold(true)) + bg.Space() +
			bg.Render(view.Notice, styles.WarningText)
	case m.status != "":
		content = bg.Render(m.status, styles.SuccessText)
	default:
		content = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return styles.Footer.Width(m.width).MaxHeight(footerHeight).Render(content)
}
