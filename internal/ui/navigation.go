package ui

import (
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/tmdb"
)

// Shelf layout, in terminal cells.
const (
	cardWidth   = 24
	cardGap     = 1
	shelfHeight = 4 // title, two card lines, spacer
)

// shelves returns the active tab's rows.
func (m Model) shelves() []state.Shelf {
	return m.browser.Shelves(m.browser.View().Tab).Shelves
}

// focusedTitle returns the title under the cursor, if any.
func (m Model) focusedTitle() *tmdb.Title {
	rows := m.shelves()
	if m.row < 0 || m.row >= len(rows) {
		return nil
	}
	titles := rows[m.row].Titles
	if m.col < 0 || m.col >= len(titles) {
		return nil
	}
	t := titles[m.col]
	return &t
}

func (m *Model) moveRow(delta int) {
	rows := m.shelves()
	if len(rows) == 0 {
		return
	}
	m.row = clamp(m.row+delta, 0, len(rows)-1)
	m.col = clamp(m.col, 0, len(rows[m.row].Titles)-1)
	m.ensureVisible()
}

func (m *Model) moveCol(delta int) {
	rows := m.shelves()
	if m.row >= len(rows) {
		return
	}
	m.col = clamp(m.col+delta, 0, len(rows[m.row].Titles)-1)
}

// clampCursor keeps the cursor inside the current shelves after they change.
func (m *Model) clampCursor() {
	rows := m.shelves()
	if len(rows) == 0 {
		m.row, m.col, m.rowOffset = 0, 0, 0
		return
	}
	m.row = clamp(m.row, 0, len(rows)-1)
	m.col = clamp(m.col, 0, len(rows[m.row].Titles)-1)
	m.ensureVisible()
}

// ensureVisible scrolls rows so the focused shelf is on screen.
func (m *Model) ensureVisible() {
	visible := m.visibleRows()
	if m.row < m.rowOffset {
		m.rowOffset = m.row
	}
	if m.row >= m.rowOffset+visible {
		m.rowOffset = m.row - visible + 1
	}
	if m.rowOffset < 0 {
		m.rowOffset = 0
	}
}

// visibleRows is how many shelves fit below the header and hero.
func (m Model) visibleRows() int {
	used := headerHeight + footerHeight + previewHeight
	if m.browser.Featured() != nil {
		used += heroHeight
	}
	return maxInt(1, (m.height-used)/shelfHeight)
}

// visibleCards is how many cards fit across the screen.
func (m Model) visibleCards() int {
	return maxInt(1, (m.width-2)/(cardWidth+cardGap))
}

// cardWindow returns the first card index to draw so col stays visible.
func cardWindow(col, count, visible int) int {
	if count <= visible || col < visible {
		return 0
	}
	start := col - visible + 1
	return clamp(start, 0, count-visible)
}
