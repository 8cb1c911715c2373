package theme

// Builtin default theme IDs.
const (
	DefaultLightID = "earthy-serenity"
	DefaultDarkID  = "galactic-night"
)

// BuiltinDefaults designates the default theme per category for Builtin.
var BuiltinDefaults = Defaults{Light: DefaultLightID, Dark: DefaultDarkID}

// Builtin returns the catalog shipped with the site.
func Builtin() *Catalog {
	catalog, err := NewCatalog(builtinThemes(), BuiltinDefaults)
	if err != nil {
		panic("theme: builtin catalog is invalid: " + err.Error())
	}
	return catalog
}

func builtinThemes() []Definition {
	return []Definition{
		{
			ID:          "earthy-serenity",
			Name:        "earthy-serenity",
			DisplayName: "Earthy Serenity",
			Category:    CategoryLight,
			Description: "Natural, calming tones perfect for wellness and organic businesses",
			Psychology:  []string{"natural", "calming", "professional", "organic"},
			UseCases:    []string{"Wellness coaches", "Florists", "Artisans", "Eco-friendly businesses"},
			Colors: Colors{
				BgPrimary:       "#FDFAF6",
				BgSecondary:     "#FAF1E6",
				BgTertiary:      "#E4EFE7",
				TextPrimary:     "#333333",
				TextInverse:     "#FDFAF6",
				AccentPrimary:   "#99BC85",
				AccentSecondary: "#8AAD76",
				AccentTertiary:  "#7B9E67",
				Border:          "#D4E4D8",
				Shadow:          "rgba(51, 51, 51, 0.08)",
			},
			Accessibility: Accessibility{
				PrimaryTextContrast: 14.57,
				WCAGLevel:           WCAGLevelAAA,
				Notes:               "Laurel green accent should only be used for large text (18pt+/24px+)",
			},
		},
		{
			ID:          "cosmic-dawn",
			Name:        "cosmic-dawn",
			DisplayName: "Cosmic Dawn",
			Category:    CategoryLight,
			Description: "Bold and energetic with modern tech-forward appeal",
			Psychology:  []string{"bold", "energetic", "modern", "tech-forward"},
			UseCases:    []string{"Tech startups", "Creative agencies", "Modern services"},
			Colors: Colors{
				BgPrimary:       "#E9E3DF",
				BgSecondary:     "#FFFFFF",
				BgTertiary:      "#F5F1EE",
				TextPrimary:     "#000000",
				TextInverse:     "#E9E3DF",
				AccentPrimary:   "#FF7A30",
				AccentSecondary: "#465C88",
				Border:          "#C9C3BF",
				Shadow:          "rgba(0, 0, 0, 0.1)",
			},
			Accessibility: Accessibility{
				PrimaryTextContrast: 13.42,
				WCAGLevel:           WCAGLevelAAA,
				Notes:               "Orange accent best for large text and buttons",
			},
		},
		{
			ID:          "galactic-night",
			Name:        "galactic-night",
			DisplayName: "Galactic Night",
			Category:    CategoryDark,
			Description: "Mysterious and creative with premium sophistication",
			Psychology:  []string{"mysterious", "creative", "premium", "sophisticated"},
			UseCases:    []string{"Creative studios", "Entertainment", "Premium services"},
			Colors: Colors{
				BgPrimary:       "#3B0270",
				BgSecondary:     "#4D039E",
				BgTertiary:      "#2A0252",
				TextPrimary:     "#FFF1F1",
				TextInverse:     "#3B0270",
				AccentPrimary:   "#E9B3FB",
				AccentSecondary: "#6F00FF",
				Border:          "#6F00FF",
				Shadow:          "rgba(111, 0, 255, 0.2)",
			},
			Accessibility: Accessibility{PrimaryTextContrast: 13.89, WCAGLevel: WCAGLevelAAA},
		},
		{
			ID:          "vintage-sunrise",
			Name:        "vintage-sunrise",
			DisplayName: "Vintage Sunrise",
			Category:    CategoryLight,
			Description: "Playful and nostalgic with cheerful approachability",
			Psychology:  []string{"playful", "nostalgic", "cheerful", "approachable"},
			UseCases:    []string{"Bakeries", "Cafes", "Children's services", "Creative businesses"},
			Colors: Colors{
				BgPrimary:       "#FEFBC7",
				BgSecondary:     "#FFF9E5",
				BgTertiary:      "#FFB4B4",
				TextPrimary:     "#1A1A1A",
				TextInverse:     "#FEFBC7",
				AccentPrimary:   "#E14434",
				AccentSecondary: "#5EABD6",
				Border:          "#F5E8A0",
				Shadow:          "rgba(26, 26, 26, 0.08)",
			},
			Accessibility: Accessibility{PrimaryTextContrast: 15.82, WCAGLevel: WCAGLevelAAA},
		},
		{
			ID:          "midnight-retro",
			Name:        "midnight-retro",
			DisplayName: "Midnight Retro",
			Category:    CategoryDark,
			Description: "Professional and trustworthy with stable sophistication",
			Psychology:  []string{"professional", "trustworthy", "stable", "sophisticated"},
			UseCases:    []string{"Financial services", "Law firms", "Consulting", "Corporate"},
			Colors: Colors{
				BgPrimary:       "#021526",
				BgSecondary:     "#03346E",
				BgTertiary:      "#041D38",
				TextPrimary:     "#E2E2B6",
				TextInverse:     "#021526",
				AccentPrimary:   "#6EACDA",
				AccentSecondary: "#E2E2B6",
				Border:          "#03346E",
				Shadow:          "rgba(110, 172, 218, 0.15)",
			},
			Accessibility: Accessibility{PrimaryTextContrast: 15.67, WCAGLevel: WCAGLevelAAA},
		},
		{
			ID:          "electric-neon",
			Name:        "electric-neon",
			DisplayName: "Electric Neon",
			Category:    CategoryDark,
			Description: "Edgy and modern with vibrant youth appeal",
			Psychology:  []string{"edgy", "modern", "vibrant", "youth-oriented"},
			UseCases:    []string{"Nightlife", "Entertainment", "Gaming", "Youth brands"},
			Colors: Colors{
				BgPrimary:       "#000000",
				BgSecondary:     "#0A0A0A",
				BgTertiary:      "#1A1A1A",
				TextPrimary:     "#FAEB92",
				TextInverse:     "#000000",
				AccentPrimary:   "#CC66DA",
				AccentSecondary: "#9929EA",
				AccentTertiary:  "#FAEB92",
				Border:          "#9929EA",
				Shadow:          "rgba(204, 102, 218, 0.3)",
			},
			Accessibility: Accessibility{PrimaryTextContrast: 16.78, WCAGLevel: WCAGLevelAAA},
		},
		{
			ID:          "neon-burst",
			Name:        "neon-burst",
			DisplayName: "Neon Burst",
			Category:    CategoryLight,
			Description: "Energetic and bold with attention-grabbing creativity",
			Psychology:  []string{"energetic", "bold", "attention-grabbing", "creative"},
			UseCases:    []string{"Fashion", "Design studios", "Events", "Creative services"},
			Colors: Colors{
				BgPrimary:       "#FFFF80",
				BgSecondary:     "#FFAA80",
				BgTertiary:      "#FFF4CC",
				TextPrimary:     "#1A0010",
				TextInverse:     "#FFFF80",
				AccentPrimary:   "#FF0080",
				AccentSecondary: "#FF5580",
				Border:          "#FFD966",
				Shadow:          "rgba(26, 0, 16, 0.1)",
			},
			Accessibility: Accessibility{
				PrimaryTextContrast: 15.34,
				WCAGLevel:           WCAGLevelAAA,
				Notes:               "Magenta accents work best for large text and buttons",
			},
		},
		{
			ID:          "soft-pastels",
			Name:        "soft-pastels",
			DisplayName: "Soft Pastels",
			Category:    CategoryLight,
			Description: "Gentle and feminine with soothing approachability",
			Psychology:  []string{"gentle", "feminine", "soothing", "approachable"},
			UseCases:    []string{"Beauty salons", "Spas", "Boutiques", "Lifestyle brands"},
			Colors: Colors{
				BgPrimary:     "#FCF9EA",
				BgSecondary:   "#BADFDB",
				BgTertiary:    "#FFBDBD",
				TextPrimary:   "#2A2520",
				TextSecondary: "#1A4A45",
				TextInverse:   "#FCF9EA",
				AccentPrimary: "#FFA4A4",
				Border:        "#E0D7C8",
				Shadow:        "rgba(42, 37, 32, 0.08)",
			},
			Accessibility: Accessibility{PrimaryTextContrast: 14.23, WCAGLevel: WCAGLevelAAA},
		},
		{
			ID:          "twilight-pastels",
			Name:        "twilight-pastels",
			DisplayName: "Twilight Pastels",
			Category:    CategoryDark,
			Description: "Luxurious and dreamy with elegant sophistication",
			Psychology:  []string{"luxurious", "dreamy", "elegant", "sophisticated"},
			UseCases:    []string{"High-end services", "Boutique hotels", "Premium brands"},
			Colors: Colors{
				BgPrimary:       "#624E88",
				BgSecondary:     "#8967B3",
				BgTertiary:      "#4F3D6F",
				TextPrimary:     "#E6D9A2",
				TextInverse:     "#624E88",
				AccentPrimary:   "#E6D9A2",
				AccentSecondary: "#CB80AB",
				Border:          "#8967B3",
				Shadow:          "rgba(203, 128, 171, 0.2)",
			},
			Accessibility: Accessibility{
				PrimaryTextContrast: 7.89,
				WCAGLevel:           WCAGLevelAAA,
				Notes:               "Mauve accent should be used for large text only",
			},
		},
	}
}
