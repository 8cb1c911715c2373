package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Element wraps a single html.Node.
type Element struct {
	doc  *Document
	node *html.Node
}

// TagName implements ports.Element.
func (e *Element) TagName() string {
	return e.node.Data
}

// Attribute implements ports.Element.
func (e *Element) Attribute(name string) (string, bool) {
	return attr(e.node, strings.ToLower(name))
}

// SetAttribute implements ports.Element. Existing values are replaced in
// place so attributes are never duplicated.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// TextContent implements ports.Element.
func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// SetTextContent implements ports.Element.
func (e *Element) SetTextContent(text string) {
	e.removeChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetInnerHTML implements ports.Element.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return err
	}
	e.removeChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// AppendChild implements ports.Element. Children from another document or
// adapter are ignored; an attached child is moved.
func (e *Element) AppendChild(child ports.Element) {
	c, ok := child.(*Element)
	if !ok || c.doc != e.doc {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// QuerySelectorAll implements ports.Element, searching descendants only.
func (e *Element) QuerySelectorAll(selector string) []ports.Element {
	return e.doc.query(e.node, selector, false)
}

// AddEventListener implements ports.Element.
func (e *Element) AddEventListener(event string, fn func()) {
	e.doc.addListener(e.node, event, fn)
}

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

var _ ports.Element = (*Element)(nil)
