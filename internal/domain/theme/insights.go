package theme

import (
	"math"
	"sort"
	"strings"
)

// Stats summarises a catalog.
type Stats struct {
	Total           int               `json:"total"`
	Light           int               `json:"light"`
	Dark            int               `json:"dark"`
	AverageContrast float64           `json:"averageContrast"`
	WCAGLevels      map[WCAGLevel]int `json:"wcagLevels"`
	PsychologyTags  int               `json:"psychologyTags"`
	UseCases        int               `json:"useCases"`
}

// Stats computes catalog statistics. The average contrast is rounded to two
// decimal places.
func (c *Catalog) Stats() Stats {
	stats := Stats{
		Total:      len(c.themes),
		WCAGLevels: map[WCAGLevel]int{WCAGLevelAA: 0, WCAGLevelAAA: 0},
	}
	var sum float64
	for _, def := range c.themes {
		switch def.Category {
		case CategoryLight:
			stats.Light++
		case CategoryDark:
			stats.Dark++
		}
		sum += def.Accessibility.PrimaryTextContrast
		if def.Accessibility.WCAGLevel != "" {
			stats.WCAGLevels[def.Accessibility.WCAGLevel]++
		}
	}
	if stats.Total > 0 {
		stats.AverageContrast = math.Round(sum/float64(stats.Total)*100) / 100
	}
	stats.PsychologyTags = len(c.PsychologyTags())
	stats.UseCases = len(c.UseCases())
	return stats
}

// PsychologyTags returns every distinct psychology tag, sorted.
func (c *Catalog) PsychologyTags() []string {
	return c.uniqueSorted(func(d Definition) []string { return d.Psychology })
}

// UseCases returns every distinct use case, sorted.
func (c *Catalog) UseCases() []string {
	return c.uniqueSorted(func(d Definition) []string { return d.UseCases })
}

func (c *Catalog) uniqueSorted(values func(Definition) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, def := range c.themes {
		for _, v := range values(def) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// SortedByContrast returns the catalog ordered by declared primary text
// contrast, highest first unless ascending is set. Ties keep catalog order.
func (c *Catalog) SortedByContrast(ascending bool) []Definition {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		a := out[i].Accessibility.PrimaryTextContrast
		b := out[j].Accessibility.PrimaryTextContrast
		if ascending {
			return a < b
		}
		return a > b
	})
	return out
}

// businessKeywords maps business types to psychology keywords.
var businessKeywords = map[string][]string{
	"wellness":      {"natural", "calming", "soothing", "gentle"},
	"tech":          {"modern", "tech-forward", "bold", "energetic"},
	"creative":      {"creative", "bold", "artistic", "vibrant"},
	"professional":  {"professional", "trustworthy", "stable", "sophisticated"},
	"entertainment": {"edgy", "vibrant", "bold", "energetic"},
	"luxury":        {"premium", "luxurious", "elegant", "sophisticated"},
	"youth":         {"playful", "energetic", "bold", "youth-oriented"},
}

const maxRecommendations = 3

// BusinessTypes lists the business types Recommend understands.
func BusinessTypes() []string {
	out := make([]string, 0, len(businessKeywords))
	for k := range businessKeywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Recommend returns up to three themes whose psychology matches the keywords
// of businessType. Unknown types yield no recommendations.
func (c *Catalog) Recommend(businessType string) []Definition {
	keywords := businessKeywords[strings.ToLower(businessType)]
	if len(keywords) == 0 {
		return []Definition{}
	}
	matches := c.filter(func(d Definition) bool {
		for _, k := range keywords {
			if containsFold(d.Psychology, k) {
				return true
			}
		}
		return false
	})
	if len(matches) > maxRecommendations {
		matches = matches[:maxRecommendations]
	}
	return matches
}

// Contrasting returns a theme of the opposite category, preferring one that
// shares a psychology tag with def.
func (c *Catalog) Contrasting(def Definition) (Definition, bool) {
	target := def.Category.Opposite()
	tags := make(map[string]struct{}, len(def.Psychology))
	for _, p := range def.Psychology {
		tags[p] = struct{}{}
	}

	var first *Definition
	for i := range c.themes {
		candidate := &c.themes[i]
		if candidate.Category != target {
			continue
		}
		if first == nil {
			first = candidate
		}
		for _, p := range candidate.Psychology {
			if _, ok := tags[p]; ok {
				return cloneDefinition(*candidate), true
			}
		}
	}
	if first == nil {
		return Definition{}, false
	}
	return cloneDefinition(*first), true
}

// Pairing names a light theme and, optionally, its dark counterpart.
type Pairing struct {
	Light string
	Dark  string
	Group string
}

// DefaultPairings groups the builtin themes by design intent.
var DefaultPairings = []Pairing{
	{Light: "earthy-serenity", Dark: "galactic-night", Group: "Default"},
	{Light: "cosmic-dawn", Dark: "midnight-retro", Group: "Professional"},
	{Light: "vintage-sunrise", Dark: "twilight-pastels", Group: "Nostalgic"},
	{Light: "neon-burst", Dark: "electric-neon", Group: "Bold"},
	{Light: "soft-pastels", Group: "Gentle"},
}

// Pair is a resolved Pairing. Dark is nil when the pairing has no dark half
// or it is missing from the catalog.
type Pair struct {
	Light Definition
	Dark  *Definition
	Group string
}

// Pairs resolves pairings against the catalog, skipping those whose light
// theme is missing.
func (c *Catalog) Pairs(pairings []Pairing) []Pair {
	out := make([]Pair, 0, len(pairings))
	for _, p := range pairings {
		light, ok := c.FindByID(p.Light)
		if !ok {
			continue
		}
		pair := Pair{Light: light, Group: p.Group}
		if p.Dark != "" {
			if dark, ok := c.FindByID(p.Dark); ok {
				pair.Dark = &dark
			}
		}
		out = append(out, pair)
	}
	return out
}
