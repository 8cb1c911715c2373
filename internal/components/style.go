package components

import "github.com/charmbracelet/lipgloss"

// StyleFunc modifies a style using a palette.
type StyleFunc func(style lipgloss.Style, palette Palette) lipgloss.Style

// Style applies appliers in order on top of base.
func Style(base lipgloss.Style, palette Palette, appliers ...StyleFunc) lipgloss.Style {
	style := base
	for _, apply := range appliers {
		if apply != nil {
			style = apply(style, palette)
		}
	}
	return style
}

// Foreground sets the foreground to the colour in slot.
func Foreground(slot Slot) StyleFunc {
	return func(style lipgloss.Style, palette Palette) lipgloss.Style {
		if c := palette.Color(slot); c != "" {
			return style.Foreground(c)
		}
		return style
	}
}

// Background sets the background to the colour in slot.
func Background(slot Slot) StyleFunc {
	return func(style lipgloss.Style, palette Palette) lipgloss.Style {
		if c := palette.Color(slot); c != "" {
			return style.Background(c)
		}
		return style
	}
}

// BorderColor sets a rounded border in the colour of slot.
func BorderColor(slot Slot) StyleFunc {
	return func(style lipgloss.Style, palette Palette) lipgloss.Style {
		style = style.Border(lipgloss.RoundedBorder())
		if c := palette.Color(slot); c != "" {
			return style.BorderForeground(c)
		}
		return style
	}
}

// Bold makes the text bold.
func Bold() StyleFunc {
	return func(style lipgloss.Style, _ Palette) lipgloss.Style {
		return style.Bold(true)
	}
}

// Padding sets vertical and horizontal padding.
func Padding(vertical, horizontal int) StyleFunc {
	return func(style lipgloss.Style, _ Palette) lipgloss.Style {
		return style.Padding(vertical, horizontal)
	}
}
