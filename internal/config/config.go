package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds Marquee's settings after defaults and overrides are applied.
type Config struct {
	APIKey      string
	APIBase     string
	ImageBase   string
	TrailerBase string
	Language    string
	DataDir     string
	LogLevel    string
}

// APIKeyEnv names the environment variable carrying the TMDB credential.
const APIKeyEnv = "TMDB_API_KEY"

const (
	defaultConfigPath  = "~/.config/marquee/config.toml"
	defaultAPIBase     = "https://api.themoviedb.org/3"
	defaultImageBase   = "https://image.tmdb.org/t/p"
	defaultTrailerBase = "https://www.youtube.com/embed/"
	defaultLanguage    = "en-US"
	defaultDataDir     = "~/.local/share/marquee"
	defaultLogLevel    = "info"
	logFileName        = "marquee.log"
)

// Load parses the config file at path (or the default location), falling
// back to defaults when it is missing. The API key from the environment,
// including a .env file in the working directory, wins over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		APIKey      string `toml:"api_key"`
		APIBase     string `toml:"api_base"`
		ImageBase   string `toml:"image_base"`
		TrailerBase string `toml:"trailer_base"`
		Language    string `toml:"language"`
		DataDir     string `toml:"data_dir"`
		LogLevel    string `toml:"log_level"`
	}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg := Config{
		APIKey:      strings.TrimSpace(raw.APIKey),
		APIBase:     valueOr(raw.APIBase, defaultAPIBase),
		ImageBase:   valueOr(raw.ImageBase, defaultImageBase),
		TrailerBase: valueOr(raw.TrailerBase, defaultTrailerBase),
		Language:    valueOr(raw.Language, defaultLanguage),
		DataDir:     mustExpand(valueOr(raw.DataDir, defaultDataDir)),
		LogLevel:    strings.ToLower(valueOr(raw.LogLevel, defaultLogLevel)),
	}

	if key := envAPIKey(); key != "" {
		cfg.APIKey = key
	}

	return cfg, nil
}

// envAPIKey reads the credential from the process environment after loading
// ./.env. Variables already set in the environment are not overwritten.
func envAPIKey() string {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("ignoring unreadable .env", "error", err)
	}
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

// ListDir returns the directory holding the saved list.
func (c Config) ListDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

// LogPath returns the path of Marquee's own log file.
func (c Config) LogPath() string {
	return filepath.Join(c.ListDir(), logFileName)
}

// HasAPIKey reports whether a credential was configured.
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// Level maps LogLevel onto slog, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func valueOr(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading ~ and makes it absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
