package domq

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/domq/domq/dom"
)

// Selection is an ordered set of element references within one document.
// Membership is fixed at construction: operations mutate the underlying
// nodes or their tree neighborhood, never the member list. A Selection holds
// no resources of its own; listeners registered through it belong to the
// document's event registry.
type Selection struct {
	doc   *dom.Document
	nodes []*html.Node
}

// Select resolves a CSS selector against the document. Zero matches is not
// an error; the Selection is simply empty and every operation on it is a
// safe no-op (mutators) or zero-value read (accessors).
func Select(doc *dom.Document, selector string) (*Selection, error) {
	ns, err := doc.QueryAll(selector)
	if err != nil {
		return nil, err
	}
	logrus.WithField("selector", selector).Debugf("[RESOLVE]: %d match(es)", len(ns))
	return &Selection{doc: doc, nodes: ns}, nil
}

// FromNode wraps a single node. A form element is substituted by its
// form-associated controls, so form selections serialize and iterate over
// the fields rather than the form itself.
func FromNode(doc *dom.Document, n *html.Node) *Selection {
	if n == nil {
		return &Selection{doc: doc}
	}
	if dom.TagName(n) == "form" {
		return &Selection{doc: doc, nodes: dom.Controls(n)}
	}
	return &Selection{doc: doc, nodes: []*html.Node{n}}
}

// FromNodes wraps a node sequence, preserving its order. The slice is copied
// so later changes to the caller's slice cannot alter membership.
func FromNodes(doc *dom.Document, ns []*html.Node) *Selection {
	nodes := make([]*html.Node, len(ns))
	copy(nodes, ns)
	return &Selection{doc: doc, nodes: nodes}
}

// Resolve is the polymorphic construction boundary: a selector string, a
// single *html.Node, or a []*html.Node. Anything else fails with
// ErrInvalidInput rather than producing an unusable selection.
func Resolve(doc *dom.Document, input any) (*Selection, error) {
	switch v := input.(type) {
	case string:
		return Select(doc, v)
	case *html.Node:
		return FromNode(doc, v), nil
	case []*html.Node:
		return FromNodes(doc, v), nil
	default:
		return nil, errors.Wrapf(ErrInvalidInput, "%T", input)
	}
}

// Nodes returns the member nodes. The slice is a copy; the Selection's own
// membership cannot be changed through it.
func (s *Selection) Nodes() []*html.Node {
	out := make([]*html.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Length returns the number of selected elements.
func (s *Selection) Length() int {
	return len(s.nodes)
}

// First returns a selection of the first element, or an empty one.
func (s *Selection) First() *Selection {
	return s.Eq(0)
}

// Eq returns a selection of the i-th element, or an empty one when i is out
// of range.
func (s *Selection) Eq(i int) *Selection {
	if i < 0 || i >= len(s.nodes) {
		return &Selection{doc: s.doc}
	}
	return &Selection{doc: s.doc, nodes: []*html.Node{s.nodes[i]}}
}

// Each calls fn for every selected element in order and returns the
// selection for chaining.
func (s *Selection) Each(fn func(i int, n *html.Node)) *Selection {
	for i, n := range s.nodes {
		fn(i, n)
	}
	return s
}

// Document returns the owning document.
func (s *Selection) Document() *dom.Document {
	return s.doc
}
