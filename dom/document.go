package dom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns a parsed HTML tree and the event-listener registry for its
// nodes. The tree itself is plain golang.org/x/net/html storage; listeners
// are conceptually owned by the nodes they are attached to, and the registry
// here is how that ownership is realized for node types that cannot carry
// extra state.
type Document struct {
	root    *html.Node
	targets map[*html.Node]*eventTarget
}

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "dom: parse document")
	}
	return &Document{
		root:    root,
		targets: map[*html.Node]*eventTarget{},
	}, nil
}

// ParseHTML parses an in-memory document.
func ParseHTML(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// QueryAll resolves a CSS selector against the document, returning matches in
// document order. Selector compilation and matching are delegated to
// cascadia; a selector that fails to compile is the only error case, and zero
// matches yields a nil slice without error.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "dom: bad selector %q", selector)
	}
	return cascadia.QueryAll(d.root, sel), nil
}

// CreateElement builds a detached element with the given tag name. The tag is
// lowered before the atom lookup so "DIV" and "div" produce the same node.
func (d *Document) CreateElement(tag string) *html.Node {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
}

// ParseFragment parses markup the way it would be parsed inside context (a
// td fragment inside a table context, for example). The parser is handed a
// fresh context node of the same name, never the live one, so the surrounding
// tree is untouched. A nil or non-element context parses in body context.
func ParseFragment(context *html.Node, markup string) ([]*html.Node, error) {
	name := "body"
	if context != nil && context.Type == html.ElementNode {
		name = context.Data
	}
	ctx := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(name)),
		Data:     name,
	}
	ns, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dom: parse fragment")
	}
	return ns, nil
}
