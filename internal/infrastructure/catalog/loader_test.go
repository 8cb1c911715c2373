package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	c, err := LoadFile(filepath.Join("testdata", "studio.yaml"))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	paper, ok := c.FindByID("paper-studio")
	require.True(t, ok)
	require.Equal(t, "paper-studio", paper.Name)
	require.Equal(t, domaintheme.CategoryLight, paper.Category)
	require.Equal(t, []string{"Photographers", "Architects"}, paper.UseCases)
	require.Equal(t, domaintheme.WCAGLevelAAA, paper.Accessibility.WCAGLevel)

	require.Equal(t, "ink-studio", c.Resolve(domaintheme.PreferenceAuto, true).ID)
	require.Equal(t, "paper-studio", c.Resolve("unknown", true).ID)
}

func TestLoadTOMLWithBuiltin(t *testing.T) {
	t.Parallel()

	c, err := LoadFile(filepath.Join("testdata", "studio.toml"))
	require.NoError(t, err)
	require.Equal(t, 1+domaintheme.Builtin().Len(), c.Len())
	require.Equal(t, "ink-studio", c.First().ID)
	require.Equal(t, "ink-studio", c.Default(domaintheme.CategoryDark).ID)
	require.Equal(t, domaintheme.DefaultLightID, c.Default(domaintheme.CategoryLight).ID)
}

func TestLoadJSONRoundTripsExport(t *testing.T) {
	t.Parallel()

	def, ok := domaintheme.Builtin().FindByID("cosmic-dawn")
	require.True(t, ok)
	exported, err := domaintheme.ExportJSON(def)
	require.NoError(t, err)

	path := writeFile(t, "single.json", `{"defaults":{"light":"cosmic-dawn"},"themes":[`+exported+`]}`)
	c, err := LoadFile(path)
	require.NoError(t, err)

	got, ok := c.FindByID("cosmic-dawn")
	require.True(t, ok)
	require.Equal(t, def, got)
}

func themeYAML(id, category, extra string) string {
	return "\n  - id: " + id +
		"\n    displayName: Solo" +
		"\n    category: " + category +
		"\n    colors: {bgPrimary: \"#fff\", bgSecondary: \"#eee\", bgTertiary: \"#ddd\", textPrimary: \"#111\", textInverse: \"#fff\", accentPrimary: \"#f00\"" + extra + "}"
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	valid := themeYAML("solo", "light", "")

	tests := []struct {
		name      string
		file      string
		content   string
		wantParse bool
		wantField string
	}{
		{name: "unsupported extension", file: "themes.ini", content: "x", wantParse: true},
		{name: "bad yaml", file: "themes.yaml", content: "themes: [\n  - id: x\n  bad", wantParse: true},
		{name: "bad toml", file: "themes.toml", content: "themes = [", wantParse: true},
		{name: "unknown json field", file: "themes.json", content: `{"colours": {}}`, wantParse: true},
		{name: "missing themes", file: "themes.yaml", content: "defaults: {light: solo}", wantField: "themes"},
		{name: "bad id", file: "themes.yaml", content: "themes:" + themeYAML("Solo Theme", "light", ""), wantField: "themes[0].id"},
		{name: "bad category", file: "themes.yaml", content: "themes:" + themeYAML("solo", "sepia", ""), wantField: "themes[0].category"},
		{name: "bad color", file: "themes.yaml", content: "themes:" + themeYAML("solo", "light", `, border: "greenish"`), wantField: "themes[0].colors.border"},
		{name: "bad wcag level", file: "themes.yaml", content: "themes:" + valid + "\n    accessibility: {wcagLevel: A}", wantField: "themes[0].accessibility.wcagLevel"},
		{name: "missing default", file: "themes.yaml", content: "defaults: {dark: nope}\nthemes:" + valid, wantField: "defaults.dark"},
		{name: "default wrong category", file: "themes.yaml", content: "defaults: {dark: solo}\nthemes:" + valid, wantField: "defaults.dark"},
		{name: "duplicate id", file: "themes.yaml", content: "themes:" + valid + valid, wantField: "themes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadFile(path)
			require.Error(t, err)

			if tt.wantParse {
				var perr *apperrors.ParseError
				require.True(t, errors.As(err, &perr), err.Error())
				require.Equal(t, path, perr.Path)
				return
			}
			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr), err.Error())
			require.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	var perr *apperrors.ParseError
	require.ErrorAs(t, err, &perr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLParseErrorLine(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.yaml", "defaults:\n  light: a\nthemes:\n  - id: [\n")
	_, err := LoadFile(path)
	var perr *apperrors.ParseError
	require.ErrorAs(t, err, &perr)
	require.Positive(t, perr.Line)
}
