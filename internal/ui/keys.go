package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Reload     key.Binding
	Escape     key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding
	Menu    key.Binding
	Profile key.Binding

	// Browsing
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Title actions
	Search         key.Binding
	Details        key.Binding
	Play           key.Binding
	ToggleList     key.Binding
	PlayFeatured   key.Binding
	FeaturedDetail key.Binding
	CopyTrailer    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload tab"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlays"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "Jump to tab"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Menu"),
		),
		Profile: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Profile"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next row"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous title"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next title"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Details"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Play trailer"),
		),
		ToggleList: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add/remove My List"),
		),
		PlayFeatured: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Play featured"),
		),
		FeaturedDetail: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Featured info"),
		),
		CopyTrailer: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy trailer URL"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Details, k.Play, k.ToggleList, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab, k.Menu},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Search, k.Details, k.Play, k.ToggleList},
		{k.PlayFeatured, k.FeaturedDetail, k.CopyTrailer},
		{k.Profile, k.CycleTheme, k.Reload, k.Escape, k.Help, k.Quit},
	}
}
