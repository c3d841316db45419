package domq

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/domq/domq/dom"
)

// Attrs is the attribute set applied to elements built by the tag-name
// branch of the insertion family.
type Attrs map[string]string

type insertPos int

const (
	posBefore insertPos = iota
	posAfter
	posPrepend
	posAppend
)

// Before inserts at the preceding-sibling position of every element.
// Elements without a parent are skipped.
func (s *Selection) Before(input string, attrs ...Attrs) *Selection {
	return s.insert(posBefore, input, mergeAttrs(attrs))
}

// After inserts at the following-sibling position of every element.
// Elements without a parent are skipped.
func (s *Selection) After(input string, attrs ...Attrs) *Selection {
	return s.insert(posAfter, input, mergeAttrs(attrs))
}

// Prepend inserts at the first-child position of every element.
func (s *Selection) Prepend(input string, attrs ...Attrs) *Selection {
	return s.insert(posPrepend, input, mergeAttrs(attrs))
}

// Append inserts at the last-child position of every element.
func (s *Selection) Append(input string, attrs ...Attrs) *Selection {
	return s.insert(posAppend, input, mergeAttrs(attrs))
}

// insert fans the operation out. input is markup when the trimmed string is
// angle-bracket delimited, a tag name otherwise. The markup branch parses
// fresh nodes per target so no node ends up shared between positions; the
// tag branch likewise builds one new element per target, attrs copied onto
// each. attrs is ignored for markup, as documented.
func (s *Selection) insert(pos insertPos, input string, attrs Attrs) *Selection {
	markup := looksLikeMarkup(input)
	for _, n := range s.nodes {
		if (pos == posBefore || pos == posAfter) && n.Parent == nil {
			continue
		}
		if markup {
			ctx := n
			if pos == posBefore || pos == posAfter {
				ctx = n.Parent
			}
			frag, err := dom.ParseFragment(ctx, input)
			if err != nil {
				logrus.WithError(err).Error("domq: parse insertion markup")
				continue
			}
			s.place(pos, n, frag)
			continue
		}
		el := s.doc.CreateElement(input)
		for _, k := range sortedKeys(attrs) {
			dom.SetAttr(el, k, attrs[k])
		}
		s.place(pos, n, []*html.Node{el})
	}
	return s
}

// place attaches the new nodes relative to target, keeping their order.
func (s *Selection) place(pos insertPos, target *html.Node, nodes []*html.Node) {
	switch pos {
	case posAppend:
		for _, nd := range nodes {
			dom.AppendChild(target, nd)
		}
	case posPrepend:
		ref := target.FirstChild
		for _, nd := range nodes {
			if ref == nil {
				dom.AppendChild(target, nd)
			} else {
				dom.InsertBeforeNode(ref, nd)
			}
		}
	case posBefore:
		for _, nd := range nodes {
			dom.InsertBeforeNode(target, nd)
		}
	case posAfter:
		ref := target
		for _, nd := range nodes {
			if dom.InsertAfterNode(ref, nd) {
				ref = nd
			}
		}
	}
}

// looksLikeMarkup applies the markup-vs-tag split: trimmed input starting
// with "<" and ending with ">" is markup.
func looksLikeMarkup(s string) bool {
	t := strings.TrimSpace(s)
	return len(t) >= 3 && strings.HasPrefix(t, "<") && strings.HasSuffix(t, ">")
}

func mergeAttrs(attrs []Attrs) Attrs {
	if len(attrs) == 0 {
		return nil
	}
	merged := Attrs{}
	for _, a := range attrs {
		for k, v := range a {
			merged[k] = v
		}
	}
	return merged
}

// sortedKeys gives the tag branch a stable attribute order; map iteration
// would make serialized output flap between runs.
func sortedKeys(attrs Attrs) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
