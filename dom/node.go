package dom

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagName returns the lowercase tag name of an element, or "" for any other
// node type.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Attr reads an attribute by name. The second result is false when the
// attribute is absent.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports attribute presence regardless of value.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// SetAttr sets an attribute, replacing an existing one of the same name.
func SetAttr(n *html.Node, name, value string) {
	if n == nil {
		return
	}
	name = strings.ToLower(name)
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes an attribute if present.
func RemoveAttr(n *html.Node, name string) {
	if n == nil {
		return
	}
	name = strings.ToLower(name)
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// Detach removes n from its parent. Already-detached nodes are left alone.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// AppendChild attaches n as the last child of parent, detaching it from any
// previous parent first.
func AppendChild(parent, n *html.Node) {
	if parent == nil || n == nil {
		return
	}
	Detach(n)
	parent.AppendChild(n)
}

// PrependChild attaches n as the first child of parent.
func PrependChild(parent, n *html.Node) {
	if parent == nil || n == nil {
		return
	}
	Detach(n)
	if parent.FirstChild == nil {
		parent.AppendChild(n)
		return
	}
	parent.InsertBefore(n, parent.FirstChild)
}

// InsertBeforeNode places n as the sibling immediately preceding ref.
// It reports false when ref has no parent.
func InsertBeforeNode(ref, n *html.Node) bool {
	if ref == nil || n == nil || ref.Parent == nil {
		return false
	}
	Detach(n)
	ref.Parent.InsertBefore(n, ref)
	return true
}

// InsertAfterNode places n as the sibling immediately following ref.
// It reports false when ref has no parent.
func InsertAfterNode(ref, n *html.Node) bool {
	if ref == nil || n == nil || ref.Parent == nil {
		return false
	}
	Detach(n)
	if ref.NextSibling == nil {
		ref.Parent.AppendChild(n)
	} else {
		ref.Parent.InsertBefore(n, ref.NextSibling)
	}
	return true
}

// Text returns the concatenated text content of n's subtree.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	walk(n)
	return b.String()
}

// SetText replaces n's children with a single text node holding s. An empty
// s just clears the children.
func SetText(n *html.Node, s string) {
	if n == nil {
		return
	}
	removeChildren(n)
	if s == "" {
		return
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// InnerHTML serializes n's children.
func InnerHTML(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", errors.Wrap(err, "dom: render")
		}
	}
	return buf.String(), nil
}

// OuterHTML serializes n itself, children included.
func OuterHTML(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", errors.Wrap(err, "dom: render")
	}
	return buf.String(), nil
}

// SetInnerHTML replaces n's children with the parsed markup, using n as the
// fragment parsing context.
func SetInnerHTML(n *html.Node, markup string) error {
	if n == nil {
		return nil
	}
	frag, err := ParseFragment(n, markup)
	if err != nil {
		return err
	}
	removeChildren(n)
	for _, c := range frag {
		n.AppendChild(c)
	}
	return nil
}

func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}
