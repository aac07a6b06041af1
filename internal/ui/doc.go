// Package ui provides the Bubble Tea terminal interface for Marquee.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns presentation state only (cursor,
// theme, text input, spinner) and delegates everything else to a
// browse.Browser. Catalog work never runs inside Update: each Begin-style
// browser call returns a request, the request's Fetch runs inside a tea.Cmd,
// and the result comes back as a message that is handed to the matching
// Apply method.
//
// # Package Structure
//
//   - app.go: Model, New, Init/Update/View and Run
//   - commands.go: message types and tea.Cmd constructors
//   - input.go: key routing for the shelf view and each overlay
//   - navigation.go: shelf cursor and scrolling
//   - header.go, shelves.go: header, hero banner, shelves and footer
//   - overlays.go, help.go: search, detail, trailer, profile, menu, help,
//     loader and error screens
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Search Debounce
//
// Every change to the search input calls Browser.QueueSearch and schedules
// a searchTickMsg after browse.SearchDelay. When the tick arrives,
// Browser.SearchDue issues a request only if no newer keystroke came in,
// so typing "abc" quickly produces one request for "abc".
//
// # Key Features
//
//   - Tabs: Home, TV Shows, Movies, New & Popular, My List
//   - Hero banner for the featured title with play and info shortcuts
//   - Shelves of cards with rating, year and a saved-title check mark
//   - Trailer overlay with the embed URL and clipboard copy
//   - Themes cycled with T and remembered in prefs
package ui
