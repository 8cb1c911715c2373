package theme

import (
	"strings"
)

// Defaults designates the default theme ID for each category.
type Defaults struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// For returns the default ID designated for category.
func (d Defaults) For(category Category) string {
	if category == CategoryDark {
		return d.Dark
	}
	return d.Light
}

// Catalog is an immutable, ordered set of theme definitions. All accessors
// return copies; a Catalog is safe for concurrent use.
type Catalog struct {
	themes   []Definition
	index    map[string]int
	defaults Defaults
}

// NewCatalog builds a catalog from themes in the given order. It rejects an
// empty list and duplicate IDs. Defaults that name no catalog member are
// accepted; Default then falls back to the first entry.
func NewCatalog(themes []Definition, defaults Defaults) (*Catalog, error) {
	if len(themes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		themes:   make([]Definition, len(themes)),
		index:    make(map[string]int, len(themes)),
		defaults: defaults,
	}
	for i, def := range themes {
		if _, exists := c.index[def.ID]; exists {
			return nil, withID(ErrDuplicateID, def.ID)
		}
		c.index[def.ID] = i
		c.themes[i] = cloneDefinition(def)
	}
	return c, nil
}

// Len returns the number of themes in the catalog.
func (c *Catalog) Len() int {
	return len(c.themes)
}

// Defaults returns the designated default IDs.
func (c *Catalog) Defaults() Defaults {
	return c.defaults
}

// All returns every theme in catalog order.
func (c *Catalog) All() []Definition {
	return c.filter(func(Definition) bool { return true })
}

// FindByID looks up a theme by ID.
func (c *Catalog) FindByID(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return cloneDefinition(c.themes[i]), true
}

// IsValidID reports whether id names a catalog member.
func (c *Catalog) IsValidID(id string) bool {
	_, ok := c.index[id]
	return ok
}

// FilterByCategory returns the themes of one category in catalog order.
func (c *Catalog) FilterByCategory(category Category) []Definition {
	return c.filter(func(d Definition) bool { return d.Category == category })
}

// Default returns the designated default for category. When the designated
// ID is missing it returns the first catalog entry.
func (c *Catalog) Default(category Category) Definition {
	if def, ok := c.FindByID(c.defaults.For(category)); ok {
		return def
	}
	return c.First()
}

// First returns the first catalog entry.
func (c *Catalog) First() Definition {
	return cloneDefinition(c.themes[0])
}

// Search matches query case-insensitively against display names,
// descriptions, psychology tags and use cases.
func (c *Catalog) Search(query string) []Definition {
	q := strings.ToLower(query)
	return c.filter(func(d Definition) bool {
		return strings.Contains(strings.ToLower(d.DisplayName), q) ||
			strings.Contains(strings.ToLower(d.Description), q) ||
			containsFold(d.Psychology, q) ||
			containsFold(d.UseCases, q)
	})
}

// ByUseCase returns themes with a use case containing useCase.
func (c *Catalog) ByUseCase(useCase string) []Definition {
	q := strings.ToLower(useCase)
	return c.filter(func(d Definition) bool { return containsFold(d.UseCases, q) })
}

// ByPsychology returns themes with a psychology tag containing tag.
func (c *Catalog) ByPsychology(tag string) []Definition {
	q := strings.ToLower(tag)
	return c.filter(func(d Definition) bool { return containsFold(d.Psychology, q) })
}

func (c *Catalog) filter(keep func(Definition) bool) []Definition {
	out := make([]Definition, 0, len(c.themes))
	for _, def := range c.themes {
		if keep(def) {
			out = append(out, cloneDefinition(def))
		}
	}
	return out
}

// containsFold reports whether any value contains the lower-cased needle.
func containsFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
