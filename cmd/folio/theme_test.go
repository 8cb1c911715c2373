package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apptheme "github.com/alexisbeaulieu97/folio/internal/application/theme"
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/catalog"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/storage"
)

func TestThemeList(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "earthy-serenity *")
	require.Contains(t, stdout, "galactic-night *")
	require.Contains(t, stdout, "Neon Burst")
	require.NotContains(t, stdout, "COLOURS", "swatches are only drawn on terminals")

	stdout, _, err = env.run(t, "theme", "list", "--category", "dark")
	require.NoError(t, err)
	require.NotContains(t, stdout, "earthy-serenity")
	require.Contains(t, stdout, "midnight-retro")

	_, _, err = env.run(t, "theme", "list", "--category", "sepia")
	require.ErrorContains(t, err, "Use --category light or --category dark.")
}

func TestThemeListJSON(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "list", "--json")
	require.NoError(t, err)

	var themes []domaintheme.Definition
	require.NoError(t, json.Unmarshal([]byte(stdout), &themes))
	require.Len(t, themes, domaintheme.Builtin().Len())
	require.Equal(t, "earthy-serenity", themes[0].ID)
}

func TestThemeShow(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "show", "cosmic-dawn")
	require.NoError(t, err)
	require.Contains(t, stdout, "Cosmic Dawn")
	require.Contains(t, stdout, "bg-primary")
	require.Contains(t, stdout, "accent-tertiary")

	_, _, err = env.run(t, "theme", "show", "nonexistent")
	require.Error(t, err)
	require.True(t, errors.Is(err, domaintheme.ErrThemeNotFound))
	require.Contains(t, err.Error(), "folio theme list")
}

func TestThemeSearch(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "search", "calming")
	require.NoError(t, err)
	require.Contains(t, stdout, "earthy-serenity")

	stdout, _, err = env.run(t, "theme", "search", "--use-case", "florists")
	require.NoError(t, err)
	require.Contains(t, stdout, "earthy-serenity")
	require.NotContains(t, stdout, "galactic-night")

	stdout, _, err = env.run(t, "theme", "search", "zzz-nothing")
	require.NoError(t, err)
	require.Contains(t, stdout, "No themes found.")

	_, _, err = env.run(t, "theme", "search")
	require.ErrorContains(t, err, "no query given")
}

func TestThemeCSS(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "css", "earthy-serenity")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, `[data-theme="earthy-serenity"] {`))
	require.Contains(t, stdout, "--color-bg-primary: #FDFAF6;")
	require.Contains(t, stdout, "color-scheme: light;")

	stdout, _, err = env.run(t, "theme", "css", "--all")
	require.NoError(t, err)
	require.Equal(t, domaintheme.Builtin().Len(), strings.Count(stdout, "[data-theme="))

	_, _, err = env.run(t, "theme", "css")
	require.ErrorContains(t, err, "Pass a theme id or --all.")
}

func TestThemeExportAllIsLoadable(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "export", "--all")
	require.NoError(t, err)

	c, err := catalog.Parse("export.json", []byte(stdout))
	require.NoError(t, err)
	require.Equal(t, domaintheme.Builtin().Len(), c.Len())
	require.Equal(t, domaintheme.BuiltinDefaults, c.Defaults())

	stdout, _, err = env.run(t, "theme", "export", "neon-burst")
	require.NoError(t, err)
	var def domaintheme.Definition
	require.NoError(t, json.Unmarshal([]byte(stdout), &def))
	require.Equal(t, domaintheme.CategoryLight, def.Category)
}

func TestThemeSetPersistsAcrossInvocations(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "current")
	require.NoError(t, err)
	require.Contains(t, stdout, "earthy-serenity (light) · preference auto · system light")

	stdout, _, err = env.run(t, "theme", "set", "dark")
	require.NoError(t, err)
	require.Contains(t, stdout, "galactic-night (dark) · preference dark")

	file, err := storage.NewFile(env.storage, nil)
	require.NoError(t, err)
	value, ok, err := file.Get(apptheme.DefaultStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", value)

	_, _, err = env.run(t, "theme", "set", "midnight-retro")
	require.NoError(t, err)

	stdout, _, err = env.run(t, "theme", "current", "--json")
	require.NoError(t, err)
	var snap snapshotJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &snap))
	require.Equal(t, snapshotJSON{
		ThemeID:     "midnight-retro",
		DisplayName: "Midnight Retro",
		Category:    "dark",
		Preference:  "midnight-retro",
	}, snap)
}

func TestThemeSetUnknown(t *testing.T) {
	env := newCLIEnv(t)

	_, _, err := env.run(t, "theme", "set", "nonexistent-theme")
	require.Error(t, err)
	require.True(t, errors.Is(err, domaintheme.ErrThemeNotFound))

	stdout, _, err := env.run(t, "theme", "current")
	require.NoError(t, err)
	require.Contains(t, stdout, "preference auto")
}

func TestThemeToggle(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "toggle")
	require.NoError(t, err)
	require.Contains(t, stdout, "galactic-night (dark)")

	stdout, _, err = env.run(t, "theme", "toggle")
	require.NoError(t, err)
	require.Contains(t, stdout, "earthy-serenity (light) · preference light")
}

func TestThemeApply(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "index.html", "<!DOCTYPE html><html><head><title>Site</title></head><body><h1>Hi</h1></body></html>")

	stdout, _, err := env.run(t, "theme", "apply", page, "--theme", "midnight-retro")
	require.NoError(t, err)
	require.Contains(t, stdout, `<html data-theme="midnight-retro">`)
	require.Contains(t, stdout, `<meta name="color-scheme" content="dark"/>`)

	stdout, _, err = env.run(t, "theme", "current")
	require.NoError(t, err)
	require.Contains(t, stdout, "preference auto", "--theme does not change the stored preference")

	out := env.write(t, "out.html", "")
	_, _, err = env.run(t, "--scheme", "dark", "theme", "apply", page, "--out", out)
	require.NoError(t, err)
	rendered := readFile(t, out)
	require.Contains(t, rendered, `data-theme="galactic-night"`)
	require.Contains(t, rendered, "<h1>Hi</h1>")

	_, _, err = env.run(t, "theme", "apply", env.dir+"/missing.html")
	require.ErrorContains(t, err, "Check that the HTML file exists.")
}

func TestThemeStats(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "stats")
	require.NoError(t, err)
	require.Contains(t, stdout, "Themes:           9 (5 light, 4 dark)")
	require.Contains(t, stdout, "Pairings:")
	require.Contains(t, stdout, "soft-pastels / -")

	stdout, _, err = env.run(t, "theme", "stats", "--json")
	require.NoError(t, err)
	var stats domaintheme.Stats
	require.NoError(t, json.Unmarshal([]byte(stdout), &stats))
	require.Equal(t, domaintheme.Builtin().Stats(), stats)
}

func TestThemeAudit(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "audit", "--json")
	require.NoError(t, err)

	var results []auditResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, domaintheme.Builtin().Len())
	for i := 1; i < len(results); i++ {
		require.GreaterOrEqual(t, results[i-1].Declared, results[i].Declared)
	}
	for _, r := range results {
		require.Greater(t, r.Measured, 1.0, r.ThemeID)
	}
}

func TestAuditTheme(t *testing.T) {
	t.Parallel()

	base := domaintheme.Definition{
		ID: "plain",
		Colors: domaintheme.Colors{
			BgPrimary:   "#ffffff",
			TextPrimary: "#000000",
		},
		Accessibility: domaintheme.Accessibility{PrimaryTextContrast: 21, WCAGLevel: domaintheme.WCAGLevelAAA},
	}

	tests := []struct {
		name     string
		mutate   func(*domaintheme.Definition)
		problems int
	}{
		{name: "matching", mutate: func(*domaintheme.Definition) {}},
		{name: "drifted declaration", mutate: func(d *domaintheme.Definition) { d.Accessibility.PrimaryTextContrast = 12 }, problems: 1},
		{name: "fails claimed level", mutate: func(d *domaintheme.Definition) {
			d.Colors.TextPrimary = "#999999"
			d.Accessibility.PrimaryTextContrast = 2.85
		}, problems: 1},
		{name: "unmeasurable", mutate: func(d *domaintheme.Definition) { d.Colors.TextPrimary = "rgb(0, 0, 0)" }, problems: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			def := base
			tt.mutate(&def)
			require.Len(t, auditTheme(def).Problems, tt.problems)
		})
	}
}

func TestThemeRecommend(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "theme", "recommend", "wellness")
	require.NoError(t, err)
	require.Contains(t, stdout, "1. Earthy Serenity (earthy-serenity)")
	require.Contains(t, stdout, "dark companion:")

	stdout, _, err = env.run(t, "theme", "recommend", "bakery")
	require.NoError(t, err)
	require.Contains(t, stdout, `No recommendations for "bakery"`)
}

func TestThemeWatchPrintsCurrentUntilCancelled(t *testing.T) {
	env := newCLIEnv(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	stdout, _, err := env.runContext(t, ctx, "theme", "watch")
	require.NoError(t, err)
	require.Contains(t, stdout, "earthy-serenity (light) · preference auto")
}

func TestThemePickRequiresTerminal(t *testing.T) {
	env := newCLIEnv(t)

	_, _, err := env.run(t, "theme", "pick")
	require.ErrorContains(t, err, "not an interactive terminal")
}

func TestCustomCatalogAndDefaults(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run(t, "--catalog", "../../internal/infrastructure/catalog/testdata/studio.yaml", "theme", "current")
	require.NoError(t, err)
	require.Contains(t, stdout, "paper-studio (light)")

	t.Setenv("FOLIO_CATALOG_DEFAULT_DARK", "midnight-retro")
	stdout, _, err = env.run(t, "--scheme", "dark", "theme", "current")
	require.NoError(t, err)
	require.Contains(t, stdout, "midnight-retro (dark)")

	_, _, err = env.run(t, "--catalog", env.dir+"/nope.yaml", "theme", "list")
	require.ErrorContains(t, err, "Failed to load theme catalog")
}
