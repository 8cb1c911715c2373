package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/folio/internal/application/theme"
	"github.com/alexisbeaulieu97/folio/internal/config"
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/catalog"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/media"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// AppContext bundles the services built once per invocation.
type AppContext struct {
	Config *config.Config
	Logger ports.Logger

	correlationID string
	catalog       *domaintheme.Catalog
	media         *media.Static
	journal       *events.Journal
	closers       []func()
}

func newAppContext() *AppContext {
	return &AppContext{}
}

// bootstrap resolves configuration and the logger. Entries logged while the
// configuration loads are buffered and replayed through the final logger.
func (a *AppContext) bootstrap(cmd *cobra.Command, configFile string) error {
	a.correlationID = ports.GenerateCorrelationID()
	ctx := ports.WithCorrelationID(cmd.Context(), a.correlationID)

	buffer := logging.NewBuffer(0)
	cfg, err := config.Load(ctx, config.Options{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
		Logger:     buffer.Logger(),
	})
	if err != nil {
		return newCommandError("load configuration", "resolving settings", err,
			"Check --config, FOLIO_* environment variables, and flag values.")
	}

	logger, err := logging.New(logging.Options{
		Writer:    cmd.ErrOrStderr(),
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Layer:     "infrastructure",
		Component: "cli",
	})
	if err != nil {
		return newCommandError("create logger", "configuring logging", err,
			"Use --log-format text or json.")
	}
	buffer.Flush(logger)

	a.Config = cfg
	a.Logger = logger
	return nil
}

// CommandContext returns the command context carrying the correlation id
// and a logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.correlationID != "" {
		ctx = ports.WithCorrelationID(ctx, a.correlationID)
	}
	logger := a.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return ctx, logger.With("component", component)
}

// Catalog loads the configured catalog once.
func (a *AppContext) Catalog(ctx context.Context) (*domaintheme.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	cfg := a.Config.Catalog
	c, err := catalog.NewLoader(a.Logger).Load(ctx, cfg.Path, domaintheme.Defaults{
		Light: cfg.DefaultLight,
		Dark:  cfg.DefaultDark,
	})
	if err != nil {
		return nil, newCommandError("load theme catalog", fmt.Sprintf("reading %q", cfg.Path), err,
			"Fix the catalog file or drop --catalog to use the built-in themes.")
	}
	a.catalog = c
	return c, nil
}

// Media answers the system colour-scheme and reduced-motion queries.
func (a *AppContext) Media() *media.Static {
	if a.media == nil {
		a.media = media.NewTerminal(media.TerminalOptions{
			Scheme:        media.Scheme(a.Config.System.Scheme),
			ReducedMotion: a.Config.System.ReducedMotion,
		})
	}
	return a.media
}

// OpenStore builds a theme store over the configured preference file. doc
// may be nil.
func (a *AppContext) OpenStore(ctx context.Context, doc ports.Document) (*apptheme.Store, error) {
	c, err := a.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	file, err := storage.NewFile(a.Config.Storage.Path, a.Logger)
	if err != nil {
		return nil, newCommandError("open preferences", fmt.Sprintf("opening %q", a.Config.Storage.Path), err,
			"Check --storage and the directory permissions.")
	}

	store := apptheme.NewStore(ctx, apptheme.Options{
		Catalog: c,
		Environment: ports.Environment{
			Storage:  file,
			Events:   file,
			Media:    a.Media(),
			Document: doc,
		},
		Logger:     a.Logger,
		StorageKey: a.Config.Storage.Key,
	})

	journal := a.Events()
	unsubscribe := store.Subscribe(func(s apptheme.Snapshot) {
		journal.Publish(ctx, events.Event{
			Type: events.EventThemeChanged,
			Fields: map[string]interface{}{
				"theme_id":    s.Current.ID,
				"category":    string(s.Current.Category),
				"preference":  string(s.Preference),
				"system_dark": s.SystemPrefersDark,
			},
		})
	})

	a.closers = append(a.closers, func() {
		if err := file.Close(); err != nil {
			a.Logger.Warn(ctx, "failed to close preference file", "path", file.Path(), "error", err)
		}
	}, store.Close, unsubscribe)
	return store, nil
}

// Events returns the journal recording theme changes for this invocation.
func (a *AppContext) Events() *events.Journal {
	if a.journal == nil {
		logger := a.Logger
		if logger != nil {
			logger = logger.With("component", "events")
		}
		a.journal = events.NewJournal(logger)
	}
	return a.journal
}

// Close releases every store and file opened through the context.
func (a *AppContext) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
