package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// Badge is a short inline label.
type Badge struct {
	text  string
	style lipgloss.Style
}

// NewBadge creates a badge with text on the slot colour.
func NewBadge(text string, palette Palette, slot Slot) *Badge {
	return &Badge{
		text:  text,
		style: Style(lipgloss.NewStyle(), palette, Background(slot), Foreground(SlotInverse), Padding(0, 1)),
	}
}

// Text returns the badge label.
func (b *Badge) Text() string {
	return b.text
}

// View renders the badge.
func (b *Badge) View() string {
	return b.style.Render(b.text)
}

// CategoryBadge labels light or dark themes.
func CategoryBadge(category domaintheme.Category, palette Palette) *Badge {
	return NewBadge(string(category), palette, SlotPrimary)
}

// WCAGBadge shows the conformance level and declared contrast.
func WCAGBadge(a11y domaintheme.Accessibility, palette Palette) *Badge {
	text := fmt.Sprintf("WCAG %s %.1f:1", a11y.WCAGLevel, a11y.PrimaryTextContrast)
	return NewBadge(text, palette, SlotSecondary)
}
