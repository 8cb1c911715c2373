package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const blankDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document adapts an x/net/html node tree to ports.Document. Event listeners
// registered on elements are kept here and fired with Dispatch.
type Document struct {
	doc *html.Node

	mu        sync.Mutex
	listeners map[*html.Node]map[string][]func()
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc, listeners: make(map[*html.Node]map[string][]func())}, nil
}

// New returns an empty HTML5 document with <head> and <body>.
func New() *Document {
	d, err := Parse(strings.NewReader(blankDocument))
	if err != nil {
		panic("dom: blank document failed to parse: " + err.Error())
	}
	return d
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.doc)
}

// String renders the document, returning "" on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// Root implements ports.Document.
func (d *Document) Root() ports.Element {
	for n := d.doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && n.DataAtom == atom.Html {
			return d.wrap(n)
		}
	}
	return nil
}

// Head implements ports.Document.
func (d *Document) Head() ports.Element {
	if n := findFirst(d.doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Head
	}); n != nil {
		return d.wrap(n)
	}
	return nil
}

// Body returns the <body> element, or nil.
func (d *Document) Body() ports.Element {
	if n := findFirst(d.doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	}); n != nil {
		return d.wrap(n)
	}
	return nil
}

// QuerySelector implements ports.Document. Invalid selectors match nothing.
func (d *Document) QuerySelector(selector string) ports.Element {
	found := d.query(d.doc, selector, true)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// QuerySelectorAll implements ports.Document.
func (d *Document) QuerySelectorAll(selector string) []ports.Element {
	return d.query(d.doc, selector, false)
}

// CreateElement implements ports.Document. The element is detached until it
// is appended somewhere.
func (d *Document) CreateElement(tag string) ports.Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))})
}

// Dispatch fires the listeners registered for event on el.
func (d *Document) Dispatch(el ports.Element, event string) {
	e, ok := el.(*Element)
	if !ok || e.doc != d {
		return
	}
	d.mu.Lock()
	fns := append([]func(){}, d.listeners[e.node][event]...)
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (d *Document) addListener(n *html.Node, event string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listeners[n] == nil {
		d.listeners[n] = make(map[string][]func())
	}
	d.listeners[n][event] = append(d.listeners[n][event], fn)
}

func (d *Document) query(scope *html.Node, selector string, first bool) []ports.Element {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	var out []ports.Element
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if sel.matches(c) {
				out = append(out, d.wrap(c))
				if first {
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(scope)
	return out
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{doc: d, node: n}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

var _ ports.Document = (*Document)(nil)
