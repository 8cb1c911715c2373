package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head><meta name="description" content="folio"></head>
<body>
  <section id="hero" class="hero dark">
    <h1 class="title">Hello</h1>
    <p class="lead">World</p>
  </section>
  <div class="grid">
    <div class="card" data-kind="post">One</div>
    <div class="card" data-kind="project">Two</div>
  </div>
</body>
</html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestQuerySelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		selector string
		want     int
	}{
		{name: "tag", selector: "div", want: 3},
		{name: "id", selector: "#hero", want: 1},
		{name: "class", selector: ".card", want: 2},
		{name: "multiple classes", selector: "section.hero.dark", want: 1},
		{name: "attribute presence", selector: "[data-kind]", want: 2},
		{name: "attribute value", selector: `.card[data-kind="post"]`, want: 1},
		{name: "descendant", selector: "#hero .title", want: 1},
		{name: "descendant miss", selector: ".grid .title", want: 0},
		{name: "meta by name", selector: `meta[name="description"]`, want: 1},
		{name: "invalid", selector: "[data-kind", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := mustParse(t)
			require.Len(t, doc.QuerySelectorAll(tt.selector), tt.want)
		})
	}
}

func TestQuerySelectorMissingReturnsNil(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	require.Nil(t, doc.QuerySelector("#missing"))
	require.NotNil(t, doc.QuerySelector("#hero"))
}

func TestRootHeadBody(t *testing.T) {
	t.Parallel()

	doc := New()
	require.Equal(t, "html", doc.Root().TagName())
	require.Equal(t, "head", doc.Head().TagName())
	require.Equal(t, "body", doc.Body().TagName())
}

func TestSetAttributeReplaces(t *testing.T) {
	t.Parallel()

	doc := New()
	root := doc.Root()
	root.SetAttribute("data-theme", "earthy-serenity")
	root.SetAttribute("data-theme", "galactic-night")

	value, ok := root.Attribute("data-theme")
	require.True(t, ok)
	require.Equal(t, "galactic-night", value)
	require.Equal(t, 1, strings.Count(doc.String(), "data-theme"))
}

func TestCreateAndAppend(t *testing.T) {
	t.Parallel()

	doc := New()
	meta := doc.CreateElement("meta")
	meta.SetAttribute("name", "color-scheme")
	meta.SetAttribute("content", "dark")
	require.Nil(t, doc.QuerySelector(`meta[name="color-scheme"]`))

	doc.Head().AppendChild(meta)
	found := doc.QuerySelector(`meta[name="color-scheme"]`)
	require.NotNil(t, found)
	content, _ := found.Attribute("content")
	require.Equal(t, "dark", content)
}

func TestTextAndInnerHTML(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	title := doc.QuerySelector(".title")
	require.Equal(t, "Hello", title.TextContent())

	title.SetTextContent("<b>escaped</b>")
	require.Equal(t, "<b>escaped</b>", title.TextContent())
	require.Contains(t, doc.String(), "&lt;b&gt;escaped&lt;/b&gt;")

	require.NoError(t, title.SetInnerHTML(`<span class="word">Hi</span> <span class="word">there</span>`))
	require.Len(t, title.QuerySelectorAll(".word"), 2)
	require.Equal(t, "Hi there", title.TextContent())
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	card := doc.QuerySelector(".card")

	var calls int
	card.AddEventListener("mouseenter", func() { calls++ })
	doc.Dispatch(card, "mouseenter")
	doc.Dispatch(card, "mouseleave")
	doc.Dispatch(doc.QuerySelector(".card"), "mouseenter")

	require.Equal(t, 2, calls)
}
