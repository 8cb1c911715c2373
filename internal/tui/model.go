// Package tui implements the interactive theme picker.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	apptheme "github.com/alexisbeaulieu97/folio/internal/application/theme"
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// ThemeStore is the subset of the theme store the picker drives.
type ThemeStore interface {
	Themes() []domaintheme.Definition
	Snapshot() apptheme.Snapshot
	SetTheme(id string) error
	SetThemeMode(mode domaintheme.Mode) error
	ToggleMode()
}

// Filter restricts the listed themes.
type Filter int

const (
	FilterAll Filter = iota
	FilterLight
	FilterDark
)

func (f Filter) String() string {
	switch f {
	case FilterLight:
		return "light"
	case FilterDark:
		return "dark"
	default:
		return "all"
	}
}

func (f Filter) next() Filter {
	return (f + 1) % 3
}

func (f Filter) keep(def domaintheme.Definition) bool {
	switch f {
	case FilterLight:
		return def.IsLight()
	case FilterDark:
		return def.IsDark()
	default:
		return true
	}
}

// SnapshotMsg reports a store change made outside the picker.
type SnapshotMsg struct {
	Snapshot apptheme.Snapshot
}

// Model is the picker state.
type Model struct {
	store    ThemeStore
	themes   []domaintheme.Definition
	visible  []domaintheme.Definition
	snapshot apptheme.Snapshot
	filter   Filter
	cursor   int

	keys keyMap
	help help.Model

	status   string
	errorMsg string
	quitting bool

	width  int
	height int
}

// NewModel creates a picker over store with the cursor on the current theme.
func NewModel(store ThemeStore) Model {
	m := Model{
		store:    store,
		themes:   store.Themes(),
		snapshot: store.Snapshot(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.refilter()
	m.focus(m.snapshot.Current.ID)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted theme.
func (m Model) Selected() (domaintheme.Definition, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domaintheme.Definition{}, false
	}
	return m.visible[m.cursor], true
}

// Snapshot returns the last store state the picker saw.
func (m Model) Snapshot() apptheme.Snapshot {
	return m.snapshot
}

// Filter returns the active list filter.
func (m Model) Filter() Filter {
	return m.filter
}

// Quitting reports whether the picker has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) refilter() {
	visible := make([]domaintheme.Definition, 0, len(m.themes))
	for _, def := range m.themes {
		if m.filter.keep(def) {
			visible = append(visible, def)
		}
	}
	m.visible = visible
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m *Model) focus(id string) bool {
	for i, def := range m.visible {
		if def.ID == id {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m *Model) moveUp() {
	if len(m.visible) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.visible) - 1
	}
}

func (m *Model) moveDown() {
	if len(m.visible) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}
