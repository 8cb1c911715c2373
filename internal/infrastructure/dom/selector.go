package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// compound is one simple-selector sequence: tag#id.class[attr="value"].
type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

type attrMatch struct {
	name     string
	value    string
	hasValue bool
}

// selector is a descendant chain of compounds, outermost first.
type selector []compound

// parseSelector supports type, id, class and attribute selectors joined by
// the descendant combinator.
func parseSelector(input string) (selector, error) {
	parts, err := splitDescendants(strings.TrimSpace(input))
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty selector")
	}
	sel := make(selector, 0, len(parts))
	for _, part := range parts {
		c, err := parseCompound(part)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", input, err)
		}
		sel = append(sel, c)
	}
	return sel, nil
}

func splitDescendants(input string) ([]string, error) {
	var (
		parts   []string
		current strings.Builder
		depth   int
		quote   rune
	)
	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}
	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			current.WriteRune(r)
		case r == '[':
			depth++
			current.WriteRune(r)
		case r == ']':
			depth--
			current.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n':
			if depth > 0 {
				current.WriteRune(r)
				continue
			}
			flush()
		default:
			current.WriteRune(r)
		}
	}
	if quote != 0 || depth != 0 {
		return nil, fmt.Errorf("unterminated selector %q", input)
	}
	flush()
	return parts, nil
}

func parseCompound(input string) (compound, error) {
	var c compound
	i := 0
	readName := func() string {
		start := i
		for i < len(input) && !strings.ContainsRune("#.[", rune(input[i])) {
			i++
		}
		return input[start:i]
	}

	c.tag = strings.ToLower(readName())
	if c.tag == "*" {
		c.tag = ""
	}
	for i < len(input) {
		switch input[i] {
		case '#':
			i++
			c.id = readName()
		case '.':
			i++
			c.classes = append(c.classes, readName())
		case '[':
			end := strings.IndexByte(input[i:], ']')
			if end < 0 {
				return c, fmt.Errorf("unterminated attribute selector")
			}
			c.attrs = append(c.attrs, parseAttr(input[i+1:i+end]))
			i += end + 1
		default:
			return c, fmt.Errorf("unexpected %q", input[i])
		}
	}
	return c, nil
}

func parseAttr(body string) attrMatch {
	name, value, found := strings.Cut(body, "=")
	m := attrMatch{name: strings.ToLower(strings.TrimSpace(name))}
	if found {
		m.hasValue = true
		m.value = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return m
}

func (c compound) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && n.Data != c.tag {
		return false
	}
	if c.id != "" {
		if id, _ := attr(n, "id"); id != c.id {
			return false
		}
	}
	if len(c.classes) > 0 {
		class, _ := attr(n, "class")
		have := strings.Fields(class)
		for _, want := range c.classes {
			if !contains(have, want) {
				return false
			}
		}
	}
	for _, a := range c.attrs {
		value, ok := attr(n, a.name)
		if !ok || (a.hasValue && value != a.value) {
			return false
		}
	}
	return true
}

// matches reports whether n satisfies the full descendant chain.
func (s selector) matches(n *html.Node) bool {
	last := len(s) - 1
	if !s[last].matches(n) {
		return false
	}
	i := last - 1
	for p := n.Parent; p != nil && i >= 0; p = p.Parent {
		if s[i].matches(p) {
			i--
		}
	}
	return i < 0
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
