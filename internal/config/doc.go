// Package config loads Marquee's configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// The TMDB credential is read last: a .env file in the working directory is
// loaded into the environment (existing variables win), and a non-empty
// TMDB_API_KEY replaces api_key from the file. A missing key is not an
// error; requests fail upstream and the UI points at the variable.
//
// # Default Values
//
//   - Config file: ~/.config/marquee/config.toml
//   - API base: https://api.themoviedb.org/3
//   - Image base: https://image.tmdb.org/t/p
//   - Trailer base: https://www.youtube.com/embed/
//   - Language: en-US
//   - Data directory: ~/.local/share/marquee
//   - Log file: <data_dir>/marquee.log
//
// # Example config.toml
//
//	api_key = "..."
//	language = "en-GB"
//	data_dir = "~/marquee"
//	log_level = "debug"
//
// # Error Handling
//
// An unreadable or malformed config file is returned as an error; main
// reports it and exits. Paths starting with ~ are expanded against the
// user's home directory.
package config
