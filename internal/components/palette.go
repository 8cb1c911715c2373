package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// Palette maps a theme's colour roles onto terminal colours.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Raised     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Inverse    lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Tertiary   lipgloss.Color
	Border     lipgloss.Color
}

// PaletteFor builds a palette from def. Roles whose value is not a hex colour
// map to the empty colour, which lipgloss renders as the terminal default.
func PaletteFor(def domaintheme.Definition) Palette {
	role := func(r domaintheme.Role) lipgloss.Color {
		return TerminalColor(def.Colors.Role(r))
	}
	return Palette{
		Background: role(domaintheme.RoleBgPrimary),
		Surface:    role(domaintheme.RoleBgSecondary),
		Raised:     role(domaintheme.RoleBgTertiary),
		Text:       role(domaintheme.RoleTextPrimary),
		Muted:      role(domaintheme.RoleTextSecondary),
		Inverse:    role(domaintheme.RoleTextInverse),
		Primary:    role(domaintheme.RoleAccentPrimary),
		Secondary:  role(domaintheme.RoleAccentSecondary),
		Tertiary:   role(domaintheme.RoleAccentTertiary),
		Border:     role(domaintheme.RoleBorder),
	}
}

// TerminalColor normalises a CSS hex colour for lipgloss. Anything else
// returns "".
func TerminalColor(css string) lipgloss.Color {
	value := strings.TrimSpace(css)
	if !strings.HasPrefix(value, "#") {
		return ""
	}
	if len(value) == 4 {
		value = "#" + strings.Repeat(value[1:2], 2) + strings.Repeat(value[2:3], 2) + strings.Repeat(value[3:4], 2)
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return ""
	}
	return lipgloss.Color(c.Hex())
}

// Slot selects a palette colour.
type Slot int

const (
	SlotBackground Slot = iota
	SlotSurface
	SlotRaised
	SlotText
	SlotMuted
	SlotInverse
	SlotPrimary
	SlotSecondary
	SlotTertiary
	SlotBorder
)

// Color returns the colour in slot.
func (p Palette) Color(slot Slot) lipgloss.Color {
	switch slot {
	case SlotBackground:
		return p.Background
	case SlotSurface:
		return p.Surface
	case SlotRaised:
		return p.Raised
	case SlotText:
		return p.Text
	case SlotMuted:
		return p.Muted
	case SlotInverse:
		return p.Inverse
	case SlotPrimary:
		return p.Primary
	case SlotSecondary:
		return p.Secondary
	case SlotTertiary:
		return p.Tertiary
	case SlotBorder:
		return p.Border
	default:
		return ""
	}
}
