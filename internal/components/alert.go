package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the alert colouring.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

var alertColors = map[AlertVariant]lipgloss.AdaptiveColor{
	AlertVariantInfo:    {Light: "#0369a1", Dark: "#38bdf8"},
	AlertVariantSuccess: {Light: "#15803d", Dark: "#4ade80"},
	AlertVariantWarning: {Light: "#a16207", Dark: "#facc15"},
	AlertVariantError:   {Light: "#b91c1c", Dark: "#f87171"},
}

var alertIcons = map[AlertVariant]string{
	AlertVariantInfo:    "ℹ",
	AlertVariantSuccess: "✓",
	AlertVariantWarning: "⚠",
	AlertVariantError:   "✗",
}

// Alert is a one-block status message.
type Alert struct {
	variant AlertVariant
	title   string
	message string
}

// NewAlert creates an alert.
func NewAlert(variant AlertVariant, title, message string) *Alert {
	return &Alert{variant: variant, title: title, message: message}
}

// View renders the alert.
func (a *Alert) View() string {
	color, ok := alertColors[a.variant]
	if !ok {
		color = alertColors[AlertVariantInfo]
	}
	accent := lipgloss.NewStyle().Foreground(color)

	var lines []string
	if a.title != "" {
		lines = append(lines, accent.Bold(true).Render(alertIcons[a.variant]+" "+a.title))
	}
	if a.message != "" {
		lines = append(lines, a.message)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}

// SuccessAlert builds a success alert with the default title.
func SuccessAlert(message string) *Alert {
	return NewAlert(AlertVariantSuccess, "Success", message)
}

// WarningAlert builds a warning alert with the default title.
func WarningAlert(message string) *Alert {
	return NewAlert(AlertVariantWarning, "Warning", message)
}

// ErrorAlert builds an error alert with the default title.
func ErrorAlert(message string) *Alert {
	return NewAlert(AlertVariantError, "Error", message)
}
