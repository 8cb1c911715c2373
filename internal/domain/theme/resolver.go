package theme

// Resolve maps a preference and the system dark signal to a catalog theme.
// It never fails: auto follows the system signal, light and dark pick that
// category's default, and anything else is looked up as a theme ID with the
// light default as the fallback.
func Resolve(c *Catalog, preference Preference, systemPrefersDark bool) Definition {
	switch Mode(preference) {
	case ModeAuto:
		if systemPrefersDark {
			return c.Default(CategoryDark)
		}
		return c.Default(CategoryLight)
	case ModeLight:
		return c.Default(CategoryLight)
	case ModeDark:
		return c.Default(CategoryDark)
	}

	if def, ok := c.FindByID(string(preference)); ok {
		return def
	}
	return c.Default(CategoryLight)
}

// Resolve is shorthand for the package-level Resolve against c.
func (c *Catalog) Resolve(preference Preference, systemPrefersDark bool) Definition {
	return Resolve(c, preference, systemPrefersDark)
}
