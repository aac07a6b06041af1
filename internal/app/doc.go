// Package app is the composition root for Marquee.
//
// Run loads the config file and the TMDB credential, opens the rotating log,
// reads the saved preferences and then builds the pieces in dependency order:
//
//	config.Load()          settings, TMDB_API_KEY from env or .env
//	logging.New()          slog over a lumberjack file in the data dir
//	tmdb.NewClient()       Catalog Client
//	mylist.New()           List Store on the OS filesystem
//	browse.New()           View Orchestrator
//	ui.Run()               Bubble Tea program (blocks)
//
// Only a malformed config file or an unusable API base URL stops startup.
// A missing credential is logged and later shows up as the catalog error
// screen.
package app
