package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/components"
)

const (
	listWidth     = 34
	previewMargin = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("Themes · %s · preference %s", m.filter, m.snapshot.Preference))
	body := m.renderList()
	if selected, ok := m.Selected(); ok {
		previewWidth := m.width - listWidth - previewMargin
		if previewWidth > 20 {
			preview := components.ThemeCard(selected).WithWidth(previewWidth).View()
			body = lipgloss.JoinHorizontal(lipgloss.Top,
				lipgloss.NewStyle().Width(listWidth).Render(body),
				lipgloss.NewStyle().MarginLeft(previewMargin).Render(preview))
		}
	}

	sections := []string{header, body, ""}
	switch {
	case m.errorMsg != "":
		sections = append(sections, errorStyle.Render("✗ "+m.errorMsg))
	case m.status != "":
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

func (m Model) renderList() string {
	if len(m.visible) == 0 {
		return mutedStyle.Render("No themes match this filter.")
	}

	lines := make([]string, 0, len(m.visible))
	for i, def := range m.visible {
		marker := "  "
		if i == m.cursor {
			marker = "› "
		}
		current := " "
		if def.ID == m.snapshot.Current.ID {
			current = "●"
		}
		line := fmt.Sprintf("%s%s %s", marker, current, def.DisplayName)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
