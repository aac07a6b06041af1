package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/browse"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/tmdb"
)

// renderMain renders the header, hero, shelves and footer.
func (m Model) renderMain(view browse.ViewState) string {
	var sections []string
	sections = append(sections, m.renderHeader(view))

	if featured := m.browser.Featured(); featured != nil {
		sections = append(sections, m.renderHero(*featured))
	}

	sections = append(sections, m.renderShelves(view))
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Pin the footer to the bottom row.
	bodyHeight := maxInt(0, m.height-footerHeight)
	body = lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Background(lipgloss.Color(m.theme.Background)).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter(view))
}

// renderHero renders the featured title banner.
func (m Model) renderHero(t tmdb.Title) string {
	styles := m.theme.Styles()

	meta := []string{ratingLabel(t.VoteAverage)}
	if year := yearLabel(t.Year()); year != "" {
		meta = append(meta, year)
	}
	if m.browser.InMyList(t) {
		meta = append(meta, "✓ My List")
	}

	lines := []string{
		styles.Text.Bold(true).Render(truncate(t.DisplayName(), m.width-4)),
		styles.MutedText.Render(strings.Join(meta, "  ·  ")),
		styles.Text.Width(maxInt(20, m.width-4)).MaxHeight(2).Render(truncateOverview(t.Overview, heroOverviewLimit)),
		styles.BrandText.Render("▶ Play") + "  " + styles.MutedText.Render("space") + "    " +
			styles.AccentText.Render("ⓘ More Info") + "  " + styles.MutedText.Render("i"),
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Height(heroHeight).
		Render(strings.Join(lines, "\n"))
}

// renderShelves renders the visible rows and the focused title's preview.
func (m Model) renderShelves(view browse.ViewState) string {
	styles := m.theme.Styles()
	rows := m.shelves()

	if view.Tab == browse.TabMyList && (len(rows) == 0 || len(rows[0].Titles) == 0) {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			styles.Text.Bold(true).Render("Your list is empty") + "\n" +
				styles.MutedText.Render("Press a on any title to save it here."),
		)
	}
	if len(rows) == 0 {
		if view.Loading {
			return lipgloss.NewStyle().Padding(1, 2).Render(m.spinner.View() + " Loading...")
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(styles.MutedText.Render("Nothing to show yet. Press r to reload."))
	}

	visible := m.visibleRows()
	end := minInt(len(rows), m.rowOffset+visible)
	var out []string
	for i := m.rowOffset; i < end; i++ {
		out = append(out, m.renderShelf(rows[i], i == m.row))
	}

	if focused := m.focusedTitle(); focused != nil {
		preview := truncateOverview(strings.TrimSpace(focused.Overview), previewOverviewLimit)
		if preview == "" {
			preview = "No synopsis available."
		}
		out = append(out, lipgloss.NewStyle().Padding(0, 1).Render(
			styles.AccentText.Render(truncate(focused.DisplayName(), 40))+"  "+styles.MutedText.Render(preview),
		))
	}
	return strings.Join(out, "\n")
}

// renderShelf renders a shelf title and its row of cards.
func (m Model) renderShelf(shelf state.Shelf, focusedRow bool) string {
	styles := m.theme.Styles()

	titleStyle := styles.Text.Bold(true)
	if focusedRow {
		titleStyle = styles.BrandText
	}
	header := lipgloss.NewStyle().Padding(0, 1).Render(titleStyle.Render(shelf.Name))

	if len(shelf.Titles) == 0 {
		return header + "\n" + lipgloss.NewStyle().Padding(0, 1).Render(styles.FaintText.Render("Unavailable right now")) + "\n\n"
	}

	visible := m.visibleCards()
	col := -1
	if focusedRow {
		col = m.col
	}
	start := cardWindow(maxInt(col, 0), len(shelf.Titles), visible)
	end := minInt(len(shelf.Titles), start+visible)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(shelf.Titles[i], i == col))
		if i < end-1 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
	}
	row := lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	return header + "\n" + row + "\n"
}

// renderCard renders a two-line card: name, then rating, year and a check
// mark when the title is saved.
func (m Model) renderCard(t tmdb.Title, focused bool) string {
	styles := m.theme.Styles()
	style := styles.Card
	bgColor := m.theme.SurfaceAlt
	if focused {
		style = styles.CardFocus
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	inner := cardWidth - 2

	name := bg.Render(padRight(truncate(t.DisplayName(), inner), inner), styles.Text.Bold(true).Foreground(style.GetForeground()))

	meta := ratingLabel(t.VoteAverage)
	if year := yearLabel(t.Year()); year != "" {
		meta += "  " + year
	}
	if m.browser.InMyList(t) {
		meta += "  ✓"
	}
	metaLine := bg.Render(padRight(truncate(meta, inner), inner), styles.MutedText.Foreground(ternaryColor(focused, style.GetForeground(), lipgloss.Color(m.theme.Muted))))

	return style.Width(cardWidth).Render(name + "\n" + metaLine)
}

func ternaryColor(cond bool, a, b lipgloss.TerminalColor) lipgloss.TerminalColor {
	if cond {
		return a
	}
	return b
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
