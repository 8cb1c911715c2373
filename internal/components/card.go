package components

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

const defaultCardWidth = 60

// CardStyle defines the visual appearance of a Card.
type CardStyle struct {
	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	// Width is the total width of the card in characters, border included.
	Width   int
	Padding int
}

// DefaultCardStyle returns the card style for palette.
func DefaultCardStyle(palette Palette) CardStyle {
	return CardStyle{
		BorderStyle:  Style(lipgloss.NewStyle(), palette, BorderColor(SlotBorder), Padding(0, 1)),
		TitleStyle:   Style(lipgloss.NewStyle(), palette, Bold(), Foreground(SlotPrimary)),
		ContentStyle: Style(lipgloss.NewStyle(), palette, Foreground(SlotText)),
		MutedStyle:   Style(lipgloss.NewStyle(), palette, Foreground(SlotMuted)),
		Width:        defaultCardWidth,
		Padding:      1,
	}
}

// CardData is the content of a card.
type CardData struct {
	Title       string
	Subtitle    string
	Description string
	Metadata    map[string]string
	Footer      []string
}

// Card renders a bordered block of text.
type Card struct {
	data  CardData
	style CardStyle
}

// NewCard creates a card styled with palette.
func NewCard(data CardData, palette Palette) *Card {
	return &Card{data: data, style: DefaultCardStyle(palette)}
}

// WithStyle replaces the card style.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// WithWidth sets the card width. Zero disables wrapping.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// View renders the card.
func (c *Card) View() string {
	var content []string

	if c.data.Title != "" {
		content = append(content, c.style.TitleStyle.Render(c.data.Title))
	}
	if c.data.Subtitle != "" {
		content = append(content, c.style.MutedStyle.Render(c.data.Subtitle))
	}
	if c.data.Description != "" {
		content = append(content, "", c.style.ContentStyle.Render(c.wrapText(c.data.Description)))
	}

	if len(c.data.Metadata) > 0 {
		content = append(content, "")
		keys := make([]string, 0, len(c.data.Metadata))
		for k := range c.data.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			line := fmt.Sprintf("%s: %s", key, c.data.Metadata[key])
			content = append(content, c.style.ContentStyle.Render(c.wrapText(line)))
		}
	}

	if len(c.data.Footer) > 0 {
		content = append(content, "")
		content = append(content, c.data.Footer...)
	}

	style := c.style.BorderStyle
	if c.style.Width > 0 {
		style = style.Width(c.style.Width - horizontalBorderWidth(style))
	}
	return style.Render(strings.Join(content, "\n"))
}

// wrapText wraps text to the card's inner width, breaking words longer than
// a full line.
func (c *Card) wrapText(text string) string {
	if c.style.Width <= 0 {
		return text
	}

	maxWidth := c.style.Width - c.style.Padding*2 - horizontalBorderWidth(c.style.BorderStyle)
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := ""
	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			for len(runes) > maxWidth {
				lines = append(lines, string(runes[:maxWidth]))
				runes = runes[maxWidth:]
			}
			current = string(runes)
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

func horizontalBorderWidth(style lipgloss.Style) int {
	width := style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}

// ThemeCard renders def in its own colours: name, category badge, WCAG
// badge, description, tags, and a swatch strip.
func ThemeCard(def domaintheme.Definition) *Card {
	palette := PaletteFor(def)
	badges := []string{
		CategoryBadge(def.Category, palette).View(),
	}
	if def.Accessibility.WCAGLevel != "" {
		badges = append(badges, WCAGBadge(def.Accessibility, palette).View())
	}

	metadata := map[string]string{"id": def.ID}
	if len(def.Psychology) > 0 {
		metadata["psychology"] = strings.Join(def.Psychology, ", ")
	}
	if len(def.UseCases) > 0 {
		metadata["use cases"] = strings.Join(def.UseCases, ", ")
	}

	return NewCard(CardData{
		Title:       def.DisplayName,
		Subtitle:    strings.Join(badges, " "),
		Description: def.Description,
		Metadata:    metadata,
		Footer:      []string{Swatch(def)},
	}, palette)
}
