package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/browse"
	"github.com/five82/marquee/internal/tmdb"
)

const apiKeyHint = "Check TMDB_API_KEY (environment or .env)"

// minModalWidth returns the modal width for a terminal of the given width.
func minModalWidth(termWidth int) int {
	return clamp(termWidth-8, 30, 80)
}

// placeModal centers a bordered box over the screen.
func (m Model) placeModal(content string, width int, border string) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func (m Model) rule(width int) string {
	return m.theme.Styles().FaintText.Render(strings.Repeat("─", maxInt(0, width)))
}

// renderSearch renders the search box and its results.
func (m Model) renderSearch(view browse.ViewState) string {
	styles := m.theme.Styles()
	width := minModalWidth(m.width)

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.rule(width - 6))
	b.WriteString("\n")

	query := strings.TrimSpace(view.SearchQuery)
	switch {
	case query == "":
		b.WriteString(styles.MutedText.Render("Start typing to search movies and shows."))
	case view.Searching:
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render("Searching..."))
	case len(view.SearchResults) == 0:
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("No results for %q", query)))
	default:
		limit := maxInt(3, m.height-12)
		start := cardWindow(m.searchCursor, len(view.SearchResults), limit)
		end := minInt(len(view.SearchResults), start+limit)
		for i := start; i < end; i++ {
			b.WriteString(m.renderSearchRow(view.SearchResults[i], i == m.searchCursor, width-6))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	return m.placeModal(b.String(), width, m.theme.BorderFocus)
}

func (m Model) renderSearchRow(t tmdb.Title, selected bool, width int) string {
	styles := m.theme.Styles()
	kind := "Movie"
	if t.Kind() == tmdb.MediaTV {
		kind = "TV"
	}
	meta := kind
	if year := yearLabel(t.Year()); year != "" {
		meta += " · " + year
	}
	if m.browser.InMyList(t) {
		meta += " ✓"
	}
	nameWidth := maxInt(10, width-lipgloss.Width(meta)-2)
	line := padRight(truncate(t.DisplayName(), nameWidth), nameWidth) + "  " + meta
	if selected {
		return styles.Selected.Width(width).Render(line)
	}
	return styles.Text.Render(line)
}

// renderDetail renders the detail overlay for the selected title.
func (m Model) renderDetail(view browse.ViewState) string {
	styles := m.theme.Styles()
	width := minModalWidth(m.width)
	if view.Selected == nil {
		return m.placeModal(styles.MutedText.Render("Nothing selected."), width, m.theme.Border)
	}
	t := *view.Selected

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(t.DisplayName()))
	b.WriteString("\n")

	meta := []string{ratingLabel(t.VoteAverage)}
	if year := yearLabel(t.Year()); year != "" {
		meta = append(meta, year)
	}
	meta = append(meta, ternary(t.Kind() == tmdb.MediaTV, "TV Series", "Movie"))
	if d := view.Detail; d != nil {
		if runtime := detailRuntime(*d); runtime != "" {
			meta = append(meta, runtime)
		}
		if d.NumberOfSeasons > 0 {
			meta = append(meta, fmt.Sprintf("%d season%s", d.NumberOfSeasons, ternary(d.NumberOfSeasons == 1, "", "s")))
		}
	}
	b.WriteString(styles.MutedText.Render(strings.Join(meta, "  ·  ")))
	b.WriteString("\n")

	if d := view.Detail; d != nil && strings.TrimSpace(d.Tagline) != "" {
		b.WriteString(styles.AccentText.Italic(true).Render(d.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	overview := strings.TrimSpace(t.Overview)
	if overview == "" {
		overview = "No synopsis available."
	}
	b.WriteString(styles.Text.Width(width - 6).Render(overview))
	b.WriteString("\n\n")

	if d := view.Detail; d != nil {
		if genres := d.GenreNames(); len(genres) > 0 {
			b.WriteString(styles.FaintText.Render("Genres  "))
			b.WriteString(styles.Text.Render(strings.Join(genres, ", ")))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(styles.FaintText.Render("Loading details..."))
		b.WriteString("\n")
	}

	if backdrop := m.images.ImageURL(t.BackdropPath, tmdb.SizeOriginal); backdrop != tmdb.NoImage {
		b.WriteString(styles.FaintText.Render("Backdrop  "))
		b.WriteString(styles.MutedText.Render(truncateMiddle(backdrop, width-16)))
		b.WriteString("\n")
	}
	if poster := m.images.ImageURL(t.PosterPath, tmdb.SizePoster); poster != tmdb.NoImage {
		b.WriteString(styles.FaintText.Render("Poster    "))
		b.WriteString(styles.MutedText.Render(truncateMiddle(poster, width-16)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	listAction := "+ My List"
	if m.browser.InMyList(t) {
		listAction = "✓ In My List"
	}
	b.WriteString(styles.BrandText.Render("▶ Play") + styles.MutedText.Render(" p") + "    " +
		styles.AccentText.Render(listAction) + styles.MutedText.Render(" a") + "    " +
		styles.MutedText.Render("esc close"))

	return m.placeModal(b.String(), width, m.theme.BorderFocus)
}

func detailRuntime(d tmdb.Details) string {
	if d.Runtime > 0 {
		return runtimeLabel(d.Runtime)
	}
	if len(d.EpisodeRunTime) > 0 {
		return runtimeLabel(d.EpisodeRunTime[0]) + " / ep"
	}
	return ""
}

// renderTrailer renders the trailer overlay. A terminal cannot embed the
// player, so the overlay offers the URL for copying.
func (m Model) renderTrailer(view browse.ViewState) string {
	styles := m.theme.Styles()
	width := minModalWidth(m.width)

	name := "Trailer"
	if view.Selected != nil {
		name = view.Selected.DisplayName() + " | Trailer"
	}

	var b strings.Builder
	b.WriteString(styles.BrandText.Render("▶ " + name))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(width - 6).Render(view.TrailerURL))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(styles.SuccessText.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render("y copy URL    a toggle My List    esc close"))

	return m.placeModal(b.String(), width, m.theme.Brand)
}

// renderProfile renders the profile dropdown shown under the header.
func (m Model) renderProfile() string {
	styles := m.theme.Styles()

	rows := [][2]string{
		{"Theme", m.theme.Name},
		{"My List", fmt.Sprintf("%d titles", len(m.browser.MyList()))},
	}
	if m.config != nil {
		rows = append(rows,
			[2]string{"Language", m.config.Language},
			[2]string{"List dir", truncateMiddle(m.config.ListDir(), 40)},
			[2]string{"Log file", truncateMiddle(m.config.LogPath(), 40)},
			[2]string{"API key", ternary(m.config.HasAPIKey(), "configured", "missing")},
		)
	}

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(styles.FaintText.Render(padRight(row[0], 10)))
		b.WriteString(styles.Text.Render(row[1]))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("T theme  u close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Render(b.String())
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, box)
}

// renderMenu renders the tab menu.
func (m Model) renderMenu(view browse.ViewState) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Logo.Render("MARQUEE"))
	b.WriteString("\n\n")
	for i, tab := range browse.Tabs {
		label := fmt.Sprintf("%d  %s", i+1, tab.Label())
		switch {
		case i == m.menuCursor:
			b.WriteString(styles.Selected.Width(24).Render(label))
		case tab == view.Tab:
			b.WriteString(styles.BrandText.Render(label))
		default:
			b.WriteString(styles.Text.Render(label))
		}
		if i < len(browse.Tabs)-1 {
			b.WriteString("\n")
		}
	}
	return m.placeModal(b.String(), 30, m.theme.Border)
}

// renderLoader renders the startup screen while the first batch is out.
func (m Model) renderLoader() string {
	styles := m.theme.Styles()
	content := styles.Logo.Render("MARQUEE") + "\n\n" + m.spinner.View() + " " + styles.MutedText.Render("Loading catalog...")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderError renders the full-screen failure for an unusable home tab.
func (m Model) renderError(message string) string {
	styles := m.theme.Styles()
	width := minModalWidth(m.width)

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Unable to load the catalog"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(width - 6).Render(truncate(message, 400)))
	b.WriteString("\n\n")
	b.WriteString(styles.WarningText.Render(apiKeyHint))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("r retry    q quit"))

	return m.placeModal(b.String(), width, m.theme.Danger)
}
