package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/five82/marquee/internal/browse"
	"github.com/five82/marquee/internal/mylist"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/tmdb"
)

type stubCatalog struct {
	mu       sync.Mutex
	searches []string
	failAll  bool
}

func (s *stubCatalog) page(titles ...tmdb.Title) (tmdb.Page, error) {
	if s.failAll {
		return tmdb.Page{}, errors.New("tmdb /trending/all/day returned status 401")
	}
	return tmdb.Page{Page: 1, Results: titles}, nil
}

func (s *stubCatalog) Search(_ context.Context, query string) (tmdb.Page, error) {
	s.mu.Lock()
	s.searches = append(s.searches, query)
	s.mu.Unlock()
	return s.page(tmdb.Title{ID: 99, Title: "Result for " + query, MediaType: tmdb.MediaMovie})
}

func (s *stubCatalog) Searches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.searches...)
}

func (s *stubCatalog) Trending(context.Context, tmdb.TimeWindow) (tmdb.Page, error) {
	return s.page(
		tmdb.Title{ID: 1, Title: "Featured Film", MediaType: tmdb.MediaMovie, Overview: strings.Repeat("x", 200)},
		tmdb.Title{ID: 2, Name: "Trending Show", MediaType: tmdb.MediaTV},
	)
}

func (s *stubCatalog) PopularMovies(context.Context, int) (tmdb.Page, error) {
	return s.page(tmdb.Title{ID: 3, Title: "Popular"})
}

func (s *stubCatalog) PopularTV(context.Context, int) (tmdb.Page, error) {
	return s.page(tmdb.Title{ID: 4, Name: "Popular Show"})
}

func (s *stubCatalog) TopRatedMovies(context.Context, int) (tmdb.Page, error) {
	return s.page(tmdb.Title{ID: 5, Title: "Top"})
}

func (s *stubCatalog) NowPlaying(context.Context, int) (tmdb.Page, error) {
	return s.page(tmdb.Title{ID: 6, Title: "Now"})
}

func (s *stubCatalog) DiscoverByGenre(_ context.Context, genre, _ int, _ tmdb.MediaType) (tmdb.Page, error) {
	return s.page(tmdb.Title{ID: 100 + genre, Title: "Genre"})
}

func (s *stubCatalog) Details(_ context.Context, id int, kind tmdb.MediaType) (tmdb.Details, error) {
	return tmdb.Details{Title: tmdb.Title{ID: id, MediaType: kind, Overview: "Full"}}, nil
}

func (s *stubCatalog) TrailerURL(context.Context, int, tmdb.MediaType) (string, bool, error) {
	return "https://player.example/embed/abc?autoplay=1", true, nil
}

func newTestModel(t *testing.T, cat *stubCatalog) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store := mylist.New(mylist.NewFileStorage(afero.NewMemMapFs(), "/data"), nil)
	m := New(Options{
		Browser:   browse.New(cat, store, nil),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Clipboard: func(string) error { return nil },
	})
	if m.initial == nil {
		t.Fatalf("New should issue the start tab batch")
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return update(t, m, loadedMsg(m.initial.Fetch()))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runLoad executes a tab-switch command and returns its loadedMsg.
func runLoad(t *testing.T, cmd tea.Cmd) loadedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a load command")
	}
	var found *loadedMsg
	var walk func(tea.Msg)
	walk = func(msg tea.Msg) {
		switch msg := msg.(type) {
		case tea.BatchMsg:
			for _, c := range msg {
				if c != nil {
					walk(c())
				}
			}
		case loadedMsg:
			found = &msg
		}
	}
	walk(cmd())
	if found == nil {
		t.Fatalf("command did not produce a loadedMsg")
	}
	return *found
}

func TestModel_InitialLoadShowsHome(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	if m.booting {
		t.Fatalf("booting should clear after the first batch")
	}
	out := m.View()
	for _, want := range []string{"MARQUEE", "Featured Film", "Trending Now", "Comedies"} {
		if !strings.Contains(out, want) {
			t.Fatalf("View() missing %q", want)
		}
	}
}

func TestModel_FatalErrorScreen(t *testing.T) {
	m := newTestModel(t, &stubCatalog{failAll: true})

	out := m.View()
	if !strings.Contains(out, apiKeyHint) {
		t.Fatalf("View() should show the API key hint, got:\n%s", out)
	}
	if _, cmd := press(t, m, "r"); cmd == nil {
		t.Fatalf("r should retry the home batch")
	}
}

func TestModel_SearchDebounceIssuesOneRequest(t *testing.T) {
	cat := &stubCatalog{}
	m := newTestModel(t, cat)

	m, _ = press(t, m, "/")
	if !m.browser.View().SearchOpen {
		t.Fatalf("/ should open search")
	}
	for _, r := range []string{"a", "b", "c"} {
		m, _ = press(t, m, r)
	}
	if got := m.browser.View().SearchQuery; got != "abc" {
		t.Fatalf("SearchQuery = %q, want %q", got, "abc")
	}

	// Timers for the first two keystrokes fire after they were superseded.
	for _, token := range []uint64{1, 2} {
		next, cmd := m.Update(searchTickMsg{token: token})
		m = next.(Model)
		if cmd != nil {
			t.Fatalf("stale tick %d should not issue a request", token)
		}
	}

	next, cmd := m.Update(searchTickMsg{token: 3})
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("latest tick should issue a request")
	}
	m = update(t, m, cmd())

	if got := cat.Searches(); len(got) != 1 || got[0] != "abc" {
		t.Fatalf("searches = %v, want [abc]", got)
	}
	results := m.browser.View().SearchResults
	if len(results) != 1 || results[0].Title != "Result for abc" {
		t.Fatalf("SearchResults = %#v, want one result for abc", results)
	}
	if !strings.Contains(m.View(), "Result for abc") {
		t.Fatalf("search overlay should list the result")
	}
}

func TestModel_NumberKeysSwitchTabsAndSavePrefs(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	m, cmd := press(t, m, "2")
	if got := m.browser.View().Tab; got != browse.TabTV {
		t.Fatalf("Tab = %q, want %q", got, browse.TabTV)
	}
	m = update(t, m, runLoad(t, cmd))
	if !strings.Contains(m.View(), "Trending TV") {
		t.Fatalf("tv tab should render the Trending TV shelf")
	}

	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.StartTab != "tv" {
		t.Fatalf("saved StartTab = %q, want tv", p.StartTab)
	}
}

func TestModel_ToggleListMarksCardAndMyListTab(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	focused := m.focusedTitle()
	if focused == nil || focused.ID != 1 {
		t.Fatalf("focusedTitle = %#v, want id 1", focused)
	}
	m, _ = press(t, m, "a")
	if !m.browser.InMyList(*focused) {
		t.Fatalf("a should save the focused title")
	}

	m, cmd := press(t, m, "5")
	if cmd != nil {
		t.Fatalf("my list tab is local and should not issue a load")
	}
	if !strings.Contains(m.View(), "Featured Film") {
		t.Fatalf("my list should show the saved title")
	}

	m, _ = press(t, m, "a")
	if !strings.Contains(m.View(), "Your list is empty") {
		t.Fatalf("my list should show the empty state after removal")
	}
}

func TestModel_PlayOpensTrailerAndEscCloses(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	m, cmd := press(t, m, " ")
	if cmd == nil {
		t.Fatalf("space should look up the featured trailer")
	}
	m = update(t, m, cmd())
	view := m.browser.View()
	if !view.TrailerOpen || !strings.Contains(view.TrailerURL, "abc") {
		t.Fatalf("trailer state = (%v, %q), want open with URL", view.TrailerOpen, view.TrailerURL)
	}

	m, cmd = press(t, m, "y")
	if cmd == nil {
		t.Fatalf("y should copy the trailer URL")
	}
	m = update(t, m, cmd())
	if m.status != "Trailer URL copied" {
		t.Fatalf("status = %q, want copy confirmation", m.status)
	}

	m, _ = press(t, m, "esc")
	if m.browser.View().TrailerOpen {
		t.Fatalf("esc should close the trailer")
	}
}

func TestModel_DetailOverlay(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	m, cmd := press(t, m, "enter")
	if cmd == nil {
		t.Fatalf("enter should load details")
	}
	m = update(t, m, cmd())
	view := m.browser.View()
	if !view.DetailOpen || view.Selected == nil || view.Selected.Overview != "Full" {
		t.Fatalf("detail state = %#v, want open and enriched", view)
	}
	if !strings.Contains(m.View(), "Full") {
		t.Fatalf("detail overlay should show the enriched overview")
	}

	m, _ = press(t, m, "esc")
	if m.browser.View().DetailOpen {
		t.Fatalf("esc should close details")
	}
}

func TestModel_EscClosesStackedOverlays(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	m, play := press(t, m, " ")
	if play == nil {
		t.Fatalf("space should look up the featured trailer")
	}
	m, detail := press(t, m, "enter")
	if detail == nil {
		t.Fatalf("enter should load details")
	}
	m = update(t, m, detail())
	// The trailer lookup finishes after the detail overlay opened.
	m = update(t, m, play())

	view := m.browser.View()
	if !view.TrailerOpen || !view.DetailOpen {
		t.Fatalf("overlays = (trailer %v, detail %v), want both open", view.TrailerOpen, view.DetailOpen)
	}

	m, _ = press(t, m, "esc")
	view = m.browser.View()
	if view.TrailerOpen || view.DetailOpen {
		t.Fatalf("after esc overlays = (trailer %v, detail %v), want both closed", view.TrailerOpen, view.DetailOpen)
	}
}

func TestModel_QuitKeyClosesOnlyTrailer(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	m, play := press(t, m, " ")
	m, detail := press(t, m, "enter")
	m = update(t, m, detail())
	m = update(t, m, play())

	m, _ = press(t, m, "q")
	view := m.browser.View()
	if view.TrailerOpen {
		t.Fatalf("q should close the trailer")
	}
	if !view.DetailOpen {
		t.Fatalf("q should leave the detail overlay underneath")
	}
}

func TestModel_HelpAndThemeCycle(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	m, _ = press(t, m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("? should show help")
	}
	m, _ = press(t, m, "x")
	if m.showHelp {
		t.Fatalf("any key should close help")
	}

	before := m.theme.Name
	m, _ = press(t, m, "T")
	if m.theme.Name != NextTheme(before) {
		t.Fatalf("theme = %q, want %q", m.theme.Name, NextTheme(before))
	}
}

func TestModel_CursorMovesAcrossShelves(t *testing.T) {
	m := newTestModel(t, &stubCatalog{})

	m, _ = press(t, m, "l")
	if got := m.focusedTitle(); got == nil || got.ID != 2 {
		t.Fatalf("after l focused = %#v, want id 2", got)
	}
	m, _ = press(t, m, "j")
	if got := m.focusedTitle(); got == nil || got.ID != 3 {
		t.Fatalf("after j focused = %#v, want popular id 3", got)
	}
	m, _ = press(t, m, "k")
	if m.row != 0 {
		t.Fatalf("row = %d, want 0", m.row)
	}
}
