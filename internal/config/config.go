// Package config resolves folio's settings from defaults, a .env file, an
// optional YAML config file, FOLIO_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/folio/internal/ports"
	"github.com/alexisbeaulieu97/folio/internal/validation"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// EnvPrefix prefixes every environment variable folio reads.
const EnvPrefix = "FOLIO"

// Config is the resolved configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
	System  SystemConfig  `mapstructure:"system"`
	Content ContentConfig `mapstructure:"content"`
}

type StorageConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	Key  string `mapstructure:"key" validate:"required"`
}

// CatalogConfig selects the theme catalog. An empty Path uses the built-in
// catalog. The default overrides replace the catalog's own defaults.
type CatalogConfig struct {
	Path         string `mapstructure:"path"`
	DefaultLight string `mapstructure:"default_light" validate:"omitempty,theme_id"`
	DefaultDark  string `mapstructure:"default_dark" validate:"omitempty,theme_id"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// SystemConfig overrides the detected system signals.
type SystemConfig struct {
	Scheme        string `mapstructure:"scheme" validate:"oneof=auto light dark"`
	ReducedMotion bool   `mapstructure:"reduced_motion"`
}

type ContentConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// BlogDir is the blog collection directory.
func (c ContentConfig) BlogDir() string { return filepath.Join(c.Dir, "blog") }

// PortfolioDir is the portfolio collection directory.
func (c ContentConfig) PortfolioDir() string { return filepath.Join(c.Dir, "portfolio") }

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"storage":        "storage.path",
	"storage-key":    "storage.key",
	"catalog":        "catalog.path",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
	"scheme":         "system.scheme",
	"reduced-motion": "system.reduced_motion",
	"content-dir":    "content.dir",
}

// Options controls a Load.
type Options struct {
	// ConfigFile is an explicit config file; it must exist when set.
	ConfigFile string
	// DotEnv is the .env file; missing files are ignored. Defaults to ".env".
	DotEnv string
	// Flags are bound according to FlagKeys when present.
	Flags  *pflag.FlagSet
	Logger ports.Logger
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"storage.path":          defaultStoragePath(),
		"storage.key":           "theme-preference",
		"catalog.path":          "",
		"catalog.default_light": "",
		"catalog.default_dark":  "",
		"logging.level":         "info",
		"logging.format":        "text",
		"system.scheme":         "auto",
		"system.reduced_motion": false,
		"content.dir":           "content",
	}
}

func defaultStoragePath() string {
	if dir := configDir(); dir != "" {
		return filepath.Join(dir, "folio", "preferences.json")
	}
	return filepath.Join(".folio", "preferences.json")
}

// DefaultConfigFile is the config file looked up when none is given:
// $XDG_CONFIG_HOME/folio/config.yaml, else the platform config directory.
func DefaultConfigFile() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "folio", "config.yaml")
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir
}

// Load resolves the configuration.
func Load(ctx context.Context, opts Options) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if err := applyDotEnv(ctx, v, opts); err != nil {
		return nil, err
	}
	if err := readConfigFile(ctx, v, opts); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for flag, key := range FlagKeys {
			f := opts.Flags.Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewParseError(v.ConfigFileUsed(), 0, err)
	}
	source := v.ConfigFileUsed()
	if source == "" {
		source = "config"
	}
	if err := validation.Struct(source, cfg); err != nil {
		logError(ctx, opts.Logger, "configuration is invalid", err, "path", source)
		return nil, err
	}
	logDebug(ctx, opts.Logger, "configuration resolved",
		"path", source, "storage", cfg.Storage.Path, "catalog", cfg.Catalog.Path, "log_level", cfg.Logging.Level)
	return &cfg, nil
}

// applyDotEnv feeds FOLIO_* entries of the .env file in as defaults so the
// config file and the real environment both override them.
func applyDotEnv(ctx context.Context, v *viper.Viper, opts Options) error {
	path := opts.DotEnv
	if path == "" {
		path = ".env"
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return apperrors.NewParseError(path, 0, err)
	}

	applied := 0
	for key := range defaults() {
		if value, ok := values[envName(key)]; ok {
			v.SetDefault(key, value)
			applied++
		}
	}
	logDebug(ctx, opts.Logger, "dotenv applied", "path", path, "keys", applied)
	return nil
}

func readConfigFile(ctx context.Context, v *viper.Viper, opts Options) error {
	path := opts.ConfigFile
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile()
		if path == "" {
			return nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		logError(ctx, opts.Logger, "failed to read config file", err, "path", path)
		return apperrors.NewParseError(path, 0, err)
	}
	logDebug(ctx, opts.Logger, "config file loaded", "path", path, "explicit", explicit)
	return nil
}

// envName returns the environment variable for a configuration key.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func logDebug(ctx context.Context, logger ports.Logger, msg string, fields ...interface{}) {
	if logger != nil {
		logger.Debug(ctx, msg, fields...)
	}
}

func logError(ctx context.Context, logger ports.Logger, msg string, err error, fields ...interface{}) {
	if logger != nil {
		logger.Error(ctx, msg, append(fields, "error", err)...)
	}
}
