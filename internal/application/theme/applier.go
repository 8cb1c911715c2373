package theme

import (
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const (
	themeAttribute    = "data-theme"
	colorSchemeMeta   = "color-scheme"
	colorSchemeLookup = `meta[name="color-scheme"]`
)

// Applier reflects a theme onto a document: the data-theme attribute on the
// root element and a color-scheme meta tag.
type Applier struct {
	doc ports.Document
}

// NewApplier returns an Applier for doc. A nil doc makes Apply a no-op.
func NewApplier(doc ports.Document) *Applier {
	return &Applier{doc: doc}
}

// Apply writes def to the document. It is idempotent: the meta tag is
// created at most once and reused afterwards.
func (a *Applier) Apply(def domaintheme.Definition) {
	if a == nil || a.doc == nil {
		return
	}
	root := a.doc.Root()
	if root == nil {
		return
	}
	root.SetAttribute(themeAttribute, def.ID)

	meta := a.doc.QuerySelector(colorSchemeLookup)
	if meta == nil {
		meta = a.doc.CreateElement("meta")
		meta.SetAttribute("name", colorSchemeMeta)
		parent := a.doc.Head()
		if parent == nil {
			parent = root
		}
		parent.AppendChild(meta)
	}
	meta.SetAttribute("content", string(def.Category))
}
