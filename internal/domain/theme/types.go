package theme

// Category partitions the catalog into light and dark themes.
type Category string

const (
	CategoryLight Category = "light"
	CategoryDark  Category = "dark"
)

// Opposite returns the other category.
func (c Category) Opposite() Category {
	if c == CategoryDark {
		return CategoryLight
	}
	return CategoryDark
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryLight || c == CategoryDark
}

// Mode is the category-level part of a preference.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeAuto  Mode = "auto"
)

// Valid reports whether m is one of light, dark or auto.
func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeAuto:
		return true
	default:
		return false
	}
}

// Preference is the user's stored choice: a Mode or a specific theme ID.
// Any string is accepted; unknown IDs resolve to the light default.
type Preference string

const PreferenceAuto = Preference(ModeAuto)

// Mode returns the preference as a Mode when it is one.
func (p Preference) Mode() (Mode, bool) {
	m := Mode(p)
	return m, m.Valid()
}

// WCAGLevel is the declared compliance level of a theme.
type WCAGLevel string

const (
	WCAGLevelAA  WCAGLevel = "AA"
	WCAGLevelAAA WCAGLevel = "AAA"
)

// DefaultShadow is used when a theme declares no shadow colour.
const DefaultShadow = "rgba(0, 0, 0, 0.1)"

// Colors holds the semantic colour roles of a theme. Optional roles may be
// empty; use Role to read them with fallbacks applied.
type Colors struct {
	BgPrimary       string `json:"bgPrimary"`
	BgSecondary     string `json:"bgSecondary"`
	BgTertiary      string `json:"bgTertiary"`
	TextPrimary     string `json:"textPrimary"`
	TextSecondary   string `json:"textSecondary,omitempty"`
	TextInverse     string `json:"textInverse"`
	AccentPrimary   string `json:"accentPrimary"`
	AccentSecondary string `json:"accentSecondary,omitempty"`
	AccentTertiary  string `json:"accentTertiary,omitempty"`
	Border          string `json:"border,omitempty"`
	Shadow          string `json:"shadow,omitempty"`
}

// Role names a semantic colour slot.
type Role string

const (
	RoleBgPrimary       Role = "bg-primary"
	RoleBgSecondary     Role = "bg-secondary"
	RoleBgTertiary      Role = "bg-tertiary"
	RoleTextPrimary     Role = "text-primary"
	RoleTextSecondary   Role = "text-secondary"
	RoleTextInverse     Role = "text-inverse"
	RoleAccentPrimary   Role = "accent-primary"
	RoleAccentSecondary Role = "accent-secondary"
	RoleAccentTertiary  Role = "accent-tertiary"
	RoleBorder          Role = "border"
	RoleShadow          Role = "shadow"
)

// Roles lists every role in rendering order.
var Roles = []Role{
	RoleBgPrimary,
	RoleBgSecondary,
	RoleBgTertiary,
	RoleTextPrimary,
	RoleTextSecondary,
	RoleTextInverse,
	RoleAccentPrimary,
	RoleAccentSecondary,
	RoleAccentTertiary,
	RoleBorder,
	RoleShadow,
}

// Role returns the colour for role, applying the fallback chain for optional
// roles. Unknown roles return "".
func (c Colors) Role(role Role) string {
	switch role {
	case RoleBgPrimary:
		return c.BgPrimary
	case RoleBgSecondary:
		return c.BgSecondary
	case RoleBgTertiary:
		return c.BgTertiary
	case RoleTextPrimary:
		return c.TextPrimary
	case RoleTextSecondary:
		return fallback(c.TextSecondary, c.TextPrimary)
	case RoleTextInverse:
		return c.TextInverse
	case RoleAccentPrimary:
		return c.AccentPrimary
	case RoleAccentSecondary:
		return fallback(c.AccentSecondary, c.AccentPrimary)
	case RoleAccentTertiary:
		return fallback(c.AccentTertiary, c.AccentPrimary)
	case RoleBorder:
		return fallback(c.Border, c.BgTertiary)
	case RoleShadow:
		return fallback(c.Shadow, DefaultShadow)
	default:
		return ""
	}
}

func fallback(value, alternative string) string {
	if value != "" {
		return value
	}
	return alternative
}

// Accessibility carries informational contrast metadata. It is never enforced.
type Accessibility struct {
	PrimaryTextContrast float64   `json:"primaryTextContrast"`
	WCAGLevel           WCAGLevel `json:"wcagLevel"`
	Notes               string    `json:"notes,omitempty"`
}

// Definition is an immutable theme: colour tokens plus descriptive metadata.
type Definition struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	DisplayName   string        `json:"displayName"`
	Category      Category      `json:"category"`
	Description   string        `json:"description"`
	Psychology    []string      `json:"psychology"`
	UseCases      []string      `json:"useCases"`
	Colors        Colors        `json:"colors"`
	Accessibility Accessibility `json:"accessibility"`
}

// IsDark reports whether the theme belongs to the dark category.
func (d Definition) IsDark() bool {
	return d.Category == CategoryDark
}

// IsLight reports whether the theme belongs to the light category.
func (d Definition) IsLight() bool {
	return d.Category == CategoryLight
}

// IsZero reports whether d is the zero Definition.
func (d Definition) IsZero() bool {
	return d.ID == ""
}

func cloneDefinition(d Definition) Definition {
	d.Psychology = append([]string(nil), d.Psychology...)
	d.UseCases = append([]string(nil), d.UseCases...)
	return d
}
