package catalog

import (
	"context"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const builtinSource = "builtin"

// Loader resolves the catalog a command runs against.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader. logger may be nil.
func NewLoader(logger ports.Logger) *Loader {
	if logger != nil {
		logger = logger.With("layer", "infrastructure", "component", "catalog")
	}
	return &Loader{logger: logger}
}

// Load returns the catalog at path, or the built-in catalog when path is
// empty. Non-empty fields of overrides replace the catalog defaults.
func (l *Loader) Load(ctx context.Context, path string, overrides domaintheme.Defaults) (*domaintheme.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := path
	var (
		c   *domaintheme.Catalog
		err error
	)
	if path == "" {
		source = builtinSource
		c = domaintheme.Builtin()
	} else {
		l.logDebug(ctx, "loading theme catalog", "path", path)
		c, err = LoadFile(path)
		if err != nil {
			l.logError(ctx, "failed to load theme catalog", err, "path", path)
			return nil, err
		}
	}

	if overrides.Light != "" || overrides.Dark != "" {
		defaults := c.Defaults()
		if overrides.Light != "" {
			defaults.Light = overrides.Light
		}
		if overrides.Dark != "" {
			defaults.Dark = overrides.Dark
		}
		if err := checkDefaults(source, c, defaults); err != nil {
			l.logError(ctx, "invalid catalog default override", err, "path", source)
			return nil, err
		}
		if c, err = domaintheme.NewCatalog(c.All(), defaults); err != nil {
			return nil, err
		}
	}

	l.logInfo(ctx, "theme catalog ready", "path", source, "themes", c.Len(),
		"default_light", c.Defaults().Light, "default_dark", c.Defaults().Dark)
	return c, nil
}

func (l *Loader) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if l.logger != nil {
		l.logger.Debug(ctx, msg, fields...)
	}
}

func (l *Loader) logInfo(ctx context.Context, msg string, fields ...interface{}) {
	if l.logger != nil {
		l.logger.Info(ctx, msg, fields...)
	}
}

func (l *Loader) logError(ctx context.Context, msg string, err error, fields ...interface{}) {
	if l.logger != nil {
		l.logger.Error(ctx, msg, append(fields, "error", err)...)
	}
}
