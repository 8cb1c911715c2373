package ports

// Document is the minimal document-object surface the applier and the
// animation helpers need.
type Document interface {
	// Root returns the document element (<html>).
	Root() Element
	// Head returns the <head> element, or nil when the document has none.
	Head() Element
	// QuerySelector returns the first element matching selector, or nil.
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element
	CreateElement(tag string) Element
}

// Element is a single node in a Document.
type Element interface {
	TagName() string
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	TextContent() string
	SetTextContent(text string)
	// SetInnerHTML replaces all children with the parsed markup.
	SetInnerHTML(markup string) error
	AppendChild(child Element)
	QuerySelectorAll(selector string) []Element
	AddEventListener(event string, fn func())
}
