package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/browse"
	"github.com/five82/marquee/internal/tmdb"
)

// handleBrowseKey handles keys on the shelf view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, k.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, k.Reload):
		return m, m.startLoad(m.browser.Reload(m.ctx))

	case key.Matches(msg, k.Escape):
		m.browser.CloseOverlays()
		return m, nil

	case key.Matches(msg, k.NextTab):
		return m, m.cycleTab(1)

	case key.Matches(msg, k.PrevTab):
		return m, m.cycleTab(-1)

	case key.Matches(msg, k.JumpTab):
		idx := int(msg.String()[0] - '1')
		return m, m.selectTab(browse.Tabs[idx])

	case key.Matches(msg, k.Menu):
		m.browser.ToggleMenu()
		m.menuCursor = tabIndex(m.browser.View().Tab)
		return m, nil

	case key.Matches(msg, k.Profile):
		m.browser.ToggleProfile()
		return m, nil

	case key.Matches(msg, k.Up):
		m.moveRow(-1)
		return m, nil

	case key.Matches(msg, k.Down):
		m.moveRow(1)
		return m, nil

	case key.Matches(msg, k.Left):
		m.moveCol(-1)
		return m, nil

	case key.Matches(msg, k.Right):
		m.moveCol(1)
		return m, nil

	case key.Matches(msg, k.Search):
		m.browser.OpenSearch()
		m.search.SetValue("")
		m.searchCursor = 0
		return m, m.search.Focus()

	case key.Matches(msg, k.Details):
		if title := m.focusedTitle(); title != nil {
			return m, detailCmd(m.browser.OpenDetail(m.ctx, *title))
		}
		return m, nil

	case key.Matches(msg, k.Play):
		if title := m.focusedTitle(); title != nil {
			return m, playCmd(m.browser.BeginPlay(m.ctx, *title))
		}
		return m, nil

	case key.Matches(msg, k.ToggleList):
		if title := m.focusedTitle(); title != nil {
			return m, m.toggleMyList(*title)
		}
		return m, nil

	case key.Matches(msg, k.PlayFeatured):
		if featured := m.browser.Featured(); featured != nil {
			return m, playCmd(m.browser.BeginPlay(m.ctx, *featured))
		}
		return m, nil

	case key.Matches(msg, k.FeaturedDetail):
		if featured := m.browser.Featured(); featured != nil {
			return m, detailCmd(m.browser.OpenDetail(m.ctx, *featured))
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes keys while the search overlay is open. Printable
// keys go to the text input; every change restarts the debounce timer.
func (m Model) handleSearchKey(msg tea.KeyMsg, view browse.ViewState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.browser.CloseOverlays()
		m.search.Blur()
		m.search.SetValue("")
		return m, nil

	case "enter":
		if m.searchCursor < 0 || m.searchCursor >= len(view.SearchResults) {
			return m, nil
		}
		title := view.SearchResults[m.searchCursor]
		m.browser.CloseSearch()
		m.search.Blur()
		m.search.SetValue("")
		return m, detailCmd(m.browser.OpenDetail(m.ctx, title))

	case "up", "ctrl+p":
		m.searchCursor = clamp(m.searchCursor-1, 0, len(view.SearchResults)-1)
		return m, nil

	case "down", "ctrl+n":
		m.searchCursor = clamp(m.searchCursor+1, 0, len(view.SearchResults)-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != view.SearchQuery {
		token := m.browser.QueueSearch(value)
		return m, tea.Batch(cmd, searchTickCmd(token))
	}
	return m, cmd
}

// handleTrailerKey handles keys while the trailer overlay is open.
func (m Model) handleTrailerKey(msg tea.KeyMsg, view browse.ViewState) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CopyTrailer):
		return m, copyCmd(m.copyText, view.TrailerURL)
	case key.Matches(msg, m.keys.ToggleList):
		if view.Selected != nil {
			return m, m.toggleMyList(*view.Selected)
		}
	case key.Matches(msg, m.keys.Escape):
		m.browser.CloseOverlays()
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Details):
		m.browser.CloseTrailer()
	}
	return m, nil
}

// handleDetailKey handles keys while the detail overlay is open.
func (m Model) handleDetailKey(msg tea.KeyMsg, view browse.ViewState) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Play), key.Matches(msg, m.keys.Details):
		if view.Selected != nil {
			return m, playCmd(m.browser.BeginPlay(m.ctx, *view.Selected))
		}
	case key.Matches(msg, m.keys.ToggleList):
		if view.Selected != nil {
			return m, m.toggleMyList(*view.Selected)
		}
	case key.Matches(msg, m.keys.Escape):
		m.browser.CloseOverlays()
	case key.Matches(msg, m.keys.Quit):
		m.browser.CloseDetail()
	}
	return m, nil
}

// handleMenuKey handles keys while the tab menu is open.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = clamp(m.menuCursor-1, 0, len(browse.Tabs)-1)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = clamp(m.menuCursor+1, 0, len(browse.Tabs)-1)
	case key.Matches(msg, m.keys.Details):
		return m, m.selectTab(browse.Tabs[m.menuCursor])
	case key.Matches(msg, m.keys.JumpTab):
		return m, m.selectTab(browse.Tabs[int(msg.String()[0]-'1')])
	case key.Matches(msg, m.keys.Escape):
		m.browser.CloseOverlays()
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Quit):
		m.browser.ToggleMenu()
	}
	return m, nil
}

func (m *Model) toggleMyList(title tmdb.Title) tea.Cmd {
	// Failures surface as a browser notice.
	_, _ = m.browser.ToggleMyList(title)
	m.clampCursor()
	return m.noticeCmd()
}

func tabIndex(tab browse.Tab) int {
	for i, t := range browse.Tabs {
		if t == tab {
			return i
		}
	}
	return 0
}
