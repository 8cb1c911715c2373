package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		if msg.Snapshot.Equal(m.snapshot) {
			return m, nil
		}
		m.snapshot = msg.Snapshot
		m.status = fmt.Sprintf("Theme changed elsewhere: %s", msg.Snapshot.Current.DisplayName)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveUp()

	case key.Matches(msg, m.keys.Down):
		m.moveDown()

	case key.Matches(msg, m.keys.Filter):
		selected, _ := m.Selected()
		m.filter = m.filter.next()
		m.refilter()
		if !m.focus(selected.ID) {
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Apply):
		selected, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.run(m.store.SetTheme(selected.ID), "Applied %s")

	case key.Matches(msg, m.keys.Toggle):
		m.store.ToggleMode()
		m.run(nil, "Switched to %s")

	case key.Matches(msg, m.keys.Auto):
		m.run(m.store.SetThemeMode(domaintheme.ModeAuto), "Following system: %s")
	}
	return m, nil
}

// run records the outcome of a store call and refreshes the snapshot.
func (m *Model) run(err error, format string) {
	if err != nil {
		m.errorMsg = err.Error()
		m.status = ""
		return
	}
	m.errorMsg = ""
	m.snapshot = m.store.Snapshot()
	m.status = fmt.Sprintf(format, m.snapshot.Current.DisplayName)
	m.focus(m.snapshot.Current.ID)
}
