package theme

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CSSVariable is a single custom property declaration.
type CSSVariable struct {
	Name  string
	Value string
}

// CSSVariables converts def into ordered --color-* custom properties with
// optional roles resolved through their fallbacks.
func CSSVariables(def Definition) []CSSVariable {
	vars := make([]CSSVariable, 0, len(Roles))
	for _, role := range Roles {
		vars = append(vars, CSSVariable{
			Name:  "--color-" + string(role),
			Value: def.Colors.Role(role),
		})
	}
	return vars
}

// CSSBlock renders def as a [data-theme] rule.
func CSSBlock(def Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[data-theme=%q] {\n", def.ID)
	fmt.Fprintf(&b, "  color-scheme: %s;\n", def.Category)
	for _, v := range CSSVariables(def) {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// ExportJSON renders def as indented JSON for sharing.
func ExportJSON(def Definition) (string, error) {
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal theme %s: %w", def.ID, err)
	}
	return string(data), nil
}
