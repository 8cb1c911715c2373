package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

const swatchBlock = "  "

// Swatch renders one coloured block per colour role on a single line.
func Swatch(def domaintheme.Definition) string {
	var b strings.Builder
	for _, role := range domaintheme.Roles {
		c := TerminalColor(def.Colors.Role(role))
		if c == "" {
			b.WriteString("··")
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(c).Render(swatchBlock))
	}
	return b.String()
}

// SwatchTable renders each role with its block, name, and value.
func SwatchTable(def domaintheme.Definition) string {
	width := 0
	for _, role := range domaintheme.Roles {
		if n := lipgloss.Width(string(role)); n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(domaintheme.Roles))
	for _, role := range domaintheme.Roles {
		value := def.Colors.Role(role)
		block := "··"
		if c := TerminalColor(value); c != "" {
			block = lipgloss.NewStyle().Background(c).Render(swatchBlock)
		}
		lines = append(lines, fmt.Sprintf("%s %-*s %s", block, width, role, value))
	}
	return strings.Join(lines, "\n")
}
