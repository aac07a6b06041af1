package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/five82/marquee/internal/browse"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/mylist"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/tmdb"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the Marquee application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	StartTab   string // overrides the saved start tab when set
}

// Run boots the Marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogPath(), cfg.Level())
	if err != nil {
		// The UI owns the terminal once it starts; warn before that.
		fmt.Fprintf(os.Stderr, "marquee: logging disabled: %v\n", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed, using defaults", "error", err)
	}

	client, err := tmdb.NewClient(tmdb.Options{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.APIBase,
		ImageBase:   cfg.ImageBase,
		TrailerBase: cfg.TrailerBase,
		Language:    cfg.Language,
	})
	if err != nil {
		return fmt.Errorf("init tmdb client: %w", err)
	}
	if !cfg.HasAPIKey() {
		logger.Warn("no TMDB credential configured", "env", config.APIKeyEnv)
	}

	list := mylist.New(mylist.NewFileStorage(afero.NewOsFs(), cfg.ListDir()), logger)
	browser := browse.New(client, list, logger)
	defer browser.Close()

	tab := userPrefs.StartTab
	if opts.StartTab != "" {
		override, ok := browse.ParseTab(opts.StartTab)
		if !ok {
			logger.Warn("unknown start tab, using saved tab", "tab", opts.StartTab, "saved", tab)
		} else {
			tab = override
		}
	}

	logger.Info("marquee starting",
		"tab", tab,
		"theme", userPrefs.Theme,
		"list_dir", cfg.ListDir(),
		"language", cfg.Language,
	)

	return ui.Run(ui.Options{
		Context:   ctx,
		Browser:   browser,
		Images:    client,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		StartTab:  tab,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
}
