package ui

import (
	"context"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/browse"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/tmdb"
)

// ImageResolver turns image paths into URLs. *tmdb.Client implements it.
type ImageResolver interface {
	ImageURL(path string, size tmdb.ImageSize) string
}

type defaultImages struct{}

func (defaultImages) ImageURL(path string, size tmdb.ImageSize) string {
	return tmdb.ImageURL(path, size)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Browser   *browse.Browser
	Images    ImageResolver
	Config    *config.Config
	ThemeName string
	StartTab  browse.Tab
	PrefsPath string
	Logger    *slog.Logger
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	browser   *browse.Browser
	images    ImageResolver
	config    *config.Config
	prefsPath string
	log       *slog.Logger
	copyText  func(string) error

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	search   textinput.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// initial is the first tab batch, issued from Init.
	initial *browse.LoadRequest
	booting bool

	// Shelf cursor
	row       int
	col       int
	rowOffset int

	searchCursor int
	menuCursor   int

	// status is a local one-line message such as clipboard feedback.
	status string
}

// New creates a new Bubble Tea model and selects the start tab.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	images := opts.Images
	if images == nil {
		images = defaultImages{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	startTab, ok := browse.ParseTab(string(opts.StartTab))
	if !ok {
		startTab = browse.TabHome
	}

	theme := GetTheme(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Brand))

	ti := textinput.New()
	ti.Placeholder = "Titles, people, genres"
	ti.Prompt = "Search: "
	ti.CharLimit = 100

	m := Model{
		ctx:       ctx,
		browser:   opts.Browser,
		images:    images,
		config:    opts.Config,
		prefsPath: prefsPath,
		log:       logger,
		copyText:  copyText,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		search:    ti,
	}
	m.initial = m.browser.SelectTab(ctx, startTab)
	m.booting = m.initial != nil
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.startLoad(m.initial)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = maxInt(10, minModalWidth(msg.Width)-12)
		m.ready = true
		m.ensureVisible()
		return m, nil

	case spinner.TickMsg:
		if !m.browser.View().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		if m.browser.ApplyLoad(browse.LoadResult(msg)) {
			m.booting = false
			m.clampCursor()
		}
		return m, m.noticeCmd()

	case searchTickMsg:
		return m, searchCmd(m.browser.SearchDue(m.ctx, msg.token))

	case searchMsg:
		if m.browser.ApplySearch(browse.SearchResult(msg)) {
			m.searchCursor = 0
		}
		return m, nil

	case detailMsg:
		m.browser.ApplyDetail(browse.DetailResult(msg))
		return m, nil

	case playMsg:
		m.browser.ApplyPlay(browse.PlayResult(msg))
		return m, m.noticeCmd()

	case noticeExpiredMsg:
		if m.browser.View().Notice == msg.text {
			m.browser.DismissNotice()
		}
		if m.status == msg.text {
			m.status = ""
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn("clipboard copy failed", "error", msg.err)
			m.status = "Clipboard unavailable"
		} else {
			m.status = "Trailer URL copied"
		}
		return m, expireNoticeCmd(m.status)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if fatal := m.browser.FatalError(); fatal != "" {
		return m.renderError(fatal)
	}

	view := m.browser.View()
	if m.booting && view.Loading {
		return m.renderLoader()
	}

	switch {
	case view.SearchOpen:
		return m.renderSearch(view)
	case view.TrailerOpen:
		return m.renderTrailer(view)
	case view.DetailOpen:
		return m.renderDetail(view)
	case view.MenuOpen:
		return m.renderMenu(view)
	}

	return m.renderMain(view)
}

// handleKey processes keyboard input. Open overlays capture keys before the
// shelf view does.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	view := m.browser.View()
	switch {
	case view.SearchOpen:
		return m.handleSearchKey(msg, view)
	case view.TrailerOpen:
		return m.handleTrailerKey(msg, view)
	case view.DetailOpen:
		return m.handleDetailKey(msg, view)
	case view.MenuOpen:
		return m.handleMenuKey(msg)
	}

	if m.browser.FatalError() != "" {
		switch msg.String() {
		case "r":
			return m, m.startLoad(m.browser.Reload(m.ctx))
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	return m.handleBrowseKey(msg)
}

// selectTab switches tabs, resets the cursor and remembers the tab.
func (m *Model) selectTab(tab browse.Tab) tea.Cmd {
	req := m.browser.SelectTab(m.ctx, tab)
	m.row, m.col, m.rowOffset = 0, 0, 0
	m.savePrefs()
	return m.startLoad(req)
}

func (m *Model) cycleTab(delta int) tea.Cmd {
	current := m.browser.View().Tab
	idx := 0
	for i, t := range browse.Tabs {
		if t == current {
			idx = i
			break
		}
	}
	n := len(browse.Tabs)
	return m.selectTab(browse.Tabs[((idx+delta)%n+n)%n])
}

// savePrefs persists the theme and active tab. Failures are logged only.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, StartTab: m.browser.View().Tab}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// startLoad runs a tab batch and keeps the spinner moving while it is out.
func (m Model) startLoad(req *browse.LoadRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return tea.Batch(loadCmd(req), m.spinner.Tick)
}

// noticeCmd schedules the current notice to disappear.
func (m Model) noticeCmd() tea.Cmd {
	notice := m.browser.View().Notice
	if notice == "" {
		return nil
	}
	return expireNoticeCmd(notice)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
