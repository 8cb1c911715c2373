package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptheme "github.com/alexisbeaulieu97/folio/internal/application/theme"
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/media"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

func newStore(t *testing.T, stored map[string]string) *apptheme.Store {
	t.Helper()
	mem := storage.NewMemory(stored)
	store := apptheme.NewStore(context.Background(), apptheme.Options{
		Environment: ports.Environment{
			Storage: mem,
			Events:  mem,
			Media:   media.NewStatic(map[string]bool{ports.MediaPrefersDark: false}),
		},
	})
	t.Cleanup(store.Close)
	return store
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectedID(t *testing.T, m Model) string {
	t.Helper()
	def, ok := m.Selected()
	require.True(t, ok)
	return def.ID
}

func TestNewModelFocusesCurrentTheme(t *testing.T) {
	t.Parallel()

	m := NewModel(newStore(t, map[string]string{apptheme.DefaultStorageKey: "midnight-retro"}))
	assert.Equal(t, "midnight-retro", selectedID(t, m))
	assert.Nil(t, m.Init())
	assert.Equal(t, FilterAll, m.Filter())
}

func TestNavigationWraps(t *testing.T) {
	t.Parallel()

	m := NewModel(newStore(t, nil))
	require.Equal(t, "earthy-serenity", selectedID(t, m))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "twilight-pastels", selectedID(t, m))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	assert.Equal(t, "cosmic-dawn", selectedID(t, m))

	m, _ = press(t, m, runes("k"))
	assert.Equal(t, "earthy-serenity", selectedID(t, m))
}

func TestApplySelectedTheme(t *testing.T) {
	t.Parallel()

	store := newStore(t, nil)
	m := NewModel(store)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "cosmic-dawn", store.Current().ID)
	assert.Equal(t, "cosmic-dawn", m.Snapshot().Current.ID)
	assert.Contains(t, m.View(), "Applied Cosmic Dawn")
}

func TestToggleAndAuto(t *testing.T) {
	t.Parallel()

	store := newStore(t, nil)
	m := NewModel(store)

	m, _ = press(t, m, runes("t"))
	assert.Equal(t, domaintheme.DefaultDarkID, store.Current().ID)
	assert.Equal(t, domaintheme.DefaultDarkID, selectedID(t, m), "cursor follows the new theme")
	assert.Contains(t, m.View(), "Switched to Galactic Night")

	m, _ = press(t, m, runes("a"))
	assert.True(t, store.IsAuto())
	assert.Equal(t, domaintheme.DefaultLightID, m.Snapshot().Current.ID)
}

func TestFilterCycles(t *testing.T) {
	t.Parallel()

	m := NewModel(newStore(t, map[string]string{apptheme.DefaultStorageKey: "cosmic-dawn"}))
	tab := tea.KeyMsg{Type: tea.KeyTab}

	m, _ = press(t, m, tab)
	assert.Equal(t, FilterLight, m.Filter())
	assert.Equal(t, "cosmic-dawn", selectedID(t, m))
	for _, def := range m.visible {
		assert.True(t, def.IsLight(), def.ID)
	}

	m, _ = press(t, m, tab)
	assert.Equal(t, FilterDark, m.Filter())
	assert.Equal(t, 0, m.cursor, "selection outside the filter resets the cursor")
	for _, def := range m.visible {
		assert.True(t, def.IsDark(), def.ID)
	}

	m, _ = press(t, m, tab)
	assert.Equal(t, FilterAll, m.Filter())
	assert.Len(t, m.visible, domaintheme.Builtin().Len())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, cmd := press(t, NewModel(newStore(t, nil)), msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Quitting())
		assert.Empty(t, m.View())
	}
}

type failingStore struct {
	*apptheme.Store
}

func (f failingStore) SetTheme(id string) error {
	return errors.New("disk full")
}

func TestApplyErrorShown(t *testing.T) {
	t.Parallel()

	m := NewModel(failingStore{newStore(t, nil)})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "✗ disk full")
}

func TestSnapshotMsg(t *testing.T) {
	t.Parallel()

	store := newStore(t, nil)
	m := NewModel(store)
	require.NoError(t, store.SetTheme("midnight-retro"))

	next, cmd := m.Update(SnapshotMsg{Snapshot: store.Snapshot()})
	assert.Nil(t, cmd)
	m = next.(Model)
	assert.Equal(t, "midnight-retro", m.Snapshot().Current.ID)
	assert.Contains(t, m.View(), "Theme changed elsewhere: Midnight Retro")
}

func TestViewRendersListAndPreview(t *testing.T) {
	t.Parallel()

	m := NewModel(newStore(t, nil))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Themes · all · preference auto")
	assert.Contains(t, view, "› ● Earthy Serenity")
	assert.Contains(t, view, "Cosmic Dawn")
	assert.Contains(t, view, "WCAG AAA", "preview card is shown on wide terminals")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	narrow := next.(Model).View()
	assert.NotContains(t, narrow, "WCAG AAA")

	m, _ = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "follow system")
}
