package catalog

import (
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// fileDTO is the on-disk catalog shape, shared by YAML, TOML and JSON.
type fileDTO struct {
	// IncludeBuiltin appends the built-in themes after the file's own.
	IncludeBuiltin bool        `yaml:"includeBuiltin" toml:"includeBuiltin" json:"includeBuiltin"`
	Defaults       defaultsDTO `yaml:"defaults" toml:"defaults" json:"defaults"`
	Themes         []themeDTO  `yaml:"themes" toml:"themes" json:"themes" validate:"required_unless=IncludeBuiltin true,dive"`
}

type defaultsDTO struct {
	Light string `yaml:"light" toml:"light" json:"light" validate:"omitempty,theme_id"`
	Dark  string `yaml:"dark" toml:"dark" json:"dark" validate:"omitempty,theme_id"`
}

type themeDTO struct {
	ID            string           `yaml:"id" toml:"id" json:"id" validate:"required,theme_id"`
	Name          string           `yaml:"name" toml:"name" json:"name"`
	DisplayName   string           `yaml:"displayName" toml:"displayName" json:"displayName" validate:"required"`
	Category      string           `yaml:"category" toml:"category" json:"category" validate:"required,oneof=light dark"`
	Description   string           `yaml:"description" toml:"description" json:"description"`
	Psychology    []string         `yaml:"psychology" toml:"psychology" json:"psychology"`
	UseCases      []string         `yaml:"useCases" toml:"useCases" json:"useCases"`
	Colors        colorsDTO        `yaml:"colors" toml:"colors" json:"colors"`
	Accessibility accessibilityDTO `yaml:"accessibility" toml:"accessibility" json:"accessibility"`
}

type colorsDTO struct {
	BgPrimary       string `yaml:"bgPrimary" toml:"bgPrimary" json:"bgPrimary" validate:"required,css_color"`
	BgSecondary     string `yaml:"bgSecondary" toml:"bgSecondary" json:"bgSecondary" validate:"required,css_color"`
	BgTertiary      string `yaml:"bgTertiary" toml:"bgTertiary" json:"bgTertiary" validate:"required,css_color"`
	TextPrimary     string `yaml:"textPrimary" toml:"textPrimary" json:"textPrimary" validate:"required,css_color"`
	TextSecondary   string `yaml:"textSecondary" toml:"textSecondary" json:"textSecondary" validate:"omitempty,css_color"`
	TextInverse     string `yaml:"textInverse" toml:"textInverse" json:"textInverse" validate:"required,css_color"`
	AccentPrimary   string `yaml:"accentPrimary" toml:"accentPrimary" json:"accentPrimary" validate:"required,css_color"`
	AccentSecondary string `yaml:"accentSecondary" toml:"accentSecondary" json:"accentSecondary" validate:"omitempty,css_color"`
	AccentTertiary  string `yaml:"accentTertiary" toml:"accentTertiary" json:"accentTertiary" validate:"omitempty,css_color"`
	Border          string `yaml:"border" toml:"border" json:"border" validate:"omitempty,css_color"`
	Shadow          string `yaml:"shadow" toml:"shadow" json:"shadow" validate:"omitempty,css_color"`
}

type accessibilityDTO struct {
	PrimaryTextContrast float64 `yaml:"primaryTextContrast" toml:"primaryTextContrast" json:"primaryTextContrast" validate:"gte=0,lte=21"`
	WCAGLevel           string  `yaml:"wcagLevel" toml:"wcagLevel" json:"wcagLevel" validate:"omitempty,oneof=AA AAA"`
	Notes               string  `yaml:"notes" toml:"notes" json:"notes"`
}

func (t themeDTO) toDomain() domaintheme.Definition {
	name := t.Name
	if name == "" {
		name = t.ID
	}
	return domaintheme.Definition{
		ID:          t.ID,
		Name:        name,
		DisplayName: t.DisplayName,
		Category:    domaintheme.Category(t.Category),
		Description: t.Description,
		Psychology:  append([]string(nil), t.Psychology...),
		UseCases:    append([]string(nil), t.UseCases...),
		Colors: domaintheme.Colors{
			BgPrimary:       t.Colors.BgPrimary,
			BgSecondary:     t.Colors.BgSecondary,
			BgTertiary:      t.Colors.BgTertiary,
			TextPrimary:     t.Colors.TextPrimary,
			TextSecondary:   t.Colors.TextSecondary,
			TextInverse:     t.Colors.TextInverse,
			AccentPrimary:   t.Colors.AccentPrimary,
			AccentSecondary: t.Colors.AccentSecondary,
			AccentTertiary:  t.Colors.AccentTertiary,
			Border:          t.Colors.Border,
			Shadow:          t.Colors.Shadow,
		},
		Accessibility: domaintheme.Accessibility{
			PrimaryTextContrast: t.Accessibility.PrimaryTextContrast,
			WCAGLevel:           domaintheme.WCAGLevel(t.Accessibility.WCAGLevel),
			Notes:               t.Accessibility.Notes,
		},
	}
}
