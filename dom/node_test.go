package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseOne(t *testing.T, markup, selector string) (*Document, *html.Node) {
	t.Helper()
	doc, err := ParseHTML(markup)
	require.NoError(t, err)
	ns, err := doc.QueryAll(selector)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	return doc, ns[0]
}

func TestAttrAccess(t *testing.T) {
	_, n := parseOne(t, `<a id="x" href="/docs" data-k="v1"></a>`, "#x")

	v, ok := Attr(n, "href")
	require.True(t, ok)
	require.Equal(t, "/docs", v)

	_, ok = Attr(n, "missing")
	require.False(t, ok)

	SetAttr(n, "data-k", "v2")
	v, _ = Attr(n, "data-k")
	require.Equal(t, "v2", v)

	SetAttr(n, "title", "t")
	require.True(t, HasAttr(n, "title"))

	RemoveAttr(n, "href")
	require.False(t, HasAttr(n, "href"))
}

func TestAttrNamesAreCaseInsensitive(t *testing.T) {
	_, n := parseOne(t, `<div id="x"></div>`, "#x")
	SetAttr(n, "DATA-Foo", "1")
	v, ok := Attr(n, "data-foo")
	require.True(t, ok)
	require.Equal(t, "1", v)
}

func TestTextContent(t *testing.T) {
	_, n := parseOne(t, `<p id="x">hello <b>bold</b> end</p>`, "#x")
	require.Equal(t, "hello bold end", Text(n))

	SetText(n, "plain")
	require.Equal(t, "plain", Text(n))
	require.Equal(t, html.TextNode, n.FirstChild.Type)
	require.Same(t, n.FirstChild, n.LastChild)

	SetText(n, "")
	require.Nil(t, n.FirstChild)
	require.Equal(t, "", Text(n))
}

func TestInnerAndOuterHTML(t *testing.T) {
	_, n := parseOne(t, `<div id="x"><em>a</em>b</div>`, "#x")

	in, err := InnerHTML(n)
	require.NoError(t, err)
	require.Equal(t, "<em>a</em>b", in)

	out, err := OuterHTML(n)
	require.NoError(t, err)
	require.Equal(t, `<div id="x"><em>a</em>b</div>`, out)

	require.NoError(t, SetInnerHTML(n, "<span>z</span>"))
	in, err = InnerHTML(n)
	require.NoError(t, err)
	require.Equal(t, "<span>z</span>", in)
}

func TestDetachAndReinsert(t *testing.T) {
	_, n := parseOne(t, `<ul id="l"><li id="a"></li><li id="b"></li></ul>`, "#a")
	parent := n.Parent
	require.NotNil(t, parent)

	Detach(n)
	require.Nil(t, n.Parent)
	// a second detach is a no-op, not a panic
	Detach(n)

	AppendChild(parent, n)
	require.Same(t, parent, n.Parent)
	require.Same(t, n, parent.LastChild)
}

func TestSiblingInsertionNeedsParent(t *testing.T) {
	doc, err := ParseHTML(`<div id="x"></div>`)
	require.NoError(t, err)
	orphan := doc.CreateElement("span")
	other := doc.CreateElement("i")

	require.False(t, InsertBeforeNode(orphan, other))
	require.False(t, InsertAfterNode(orphan, other))
}

func TestInsertBeforeAndAfter(t *testing.T) {
	doc, n := parseOne(t, `<ul><li id="m">mid</li></ul>`, "#m")

	before := doc.CreateElement("li")
	SetAttr(before, "id", "first")
	require.True(t, InsertBeforeNode(n, before))

	after := doc.CreateElement("li")
	SetAttr(after, "id", "last")
	require.True(t, InsertAfterNode(n, after))

	ns, err := doc.QueryAll("li")
	require.NoError(t, err)
	require.Len(t, ns, 3)
	var ids []string
	for _, li := range ns {
		id, _ := Attr(li, "id")
		ids = append(ids, id)
	}
	require.Equal(t, []string{"first", "m", "last"}, ids)
}

func TestPrependChild(t *testing.T) {
	doc, n := parseOne(t, `<div id="x"><p>old</p></div>`, "#x")
	fresh := doc.CreateElement("h1")
	PrependChild(n, fresh)
	require.Same(t, fresh, n.FirstChild)

	empty := doc.CreateElement("div")
	onlyChild := doc.CreateElement("p")
	PrependChild(empty, onlyChild)
	require.Same(t, onlyChild, empty.FirstChild)
	require.Same(t, onlyChild, empty.LastChild)
}
