package domq

import (
	"github.com/sirupsen/logrus"

	"github.com/domq/domq/dom"
)

// AddClass adds the class token to every element. Adding an already-present
// token is a per-element no-op.
func (s *Selection) AddClass(name string) *Selection {
	for _, n := range s.nodes {
		dom.AddClass(n, name)
	}
	return s
}

// RemoveClass removes the class token from every element.
func (s *Selection) RemoveClass(name string) *Selection {
	for _, n := range s.nodes {
		dom.RemoveClass(n, name)
	}
	return s
}

// ToggleClass flips the token's presence independently per element; each
// element's own current state decides its result.
func (s *Selection) ToggleClass(name string) *Selection {
	for _, n := range s.nodes {
		dom.ToggleClass(n, name)
	}
	return s
}

// HasClass reports whether any selected element carries the class token.
func (s *Selection) HasClass(name string) bool {
	for _, n := range s.nodes {
		if dom.HasClass(n, name) {
			return true
		}
	}
	return false
}

// Attr reads the named attribute from the first element. The second result
// is false when the selection is empty or the attribute is absent.
func (s *Selection) Attr(name string) (string, bool) {
	if len(s.nodes) == 0 {
		return "", false
	}
	return dom.Attr(s.nodes[0], name)
}

// AttrOr reads like Attr but substitutes def when there is no value.
func (s *Selection) AttrOr(name, def string) string {
	if v, ok := s.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets the attribute on every element.
func (s *Selection) SetAttr(name, value string) *Selection {
	for _, n := range s.nodes {
		dom.SetAttr(n, name, value)
	}
	return s
}

// RemoveAttr removes the attribute from every element.
func (s *Selection) RemoveAttr(name string) *Selection {
	for _, n := range s.nodes {
		dom.RemoveAttr(n, name)
	}
	return s
}

// Html returns the first element's inner markup. The second result is false
// on an empty selection.
func (s *Selection) Html() (string, bool) {
	if len(s.nodes) == 0 {
		return "", false
	}
	markup, err := dom.InnerHTML(s.nodes[0])
	if err != nil {
		logrus.WithError(err).Error("domq: render inner html")
		return "", false
	}
	return markup, true
}

// SetHtml replaces every element's children with the parsed markup.
func (s *Selection) SetHtml(markup string) *Selection {
	for _, n := range s.nodes {
		if err := dom.SetInnerHTML(n, markup); err != nil {
			logrus.WithError(err).Error("domq: set inner html")
		}
	}
	return s
}

// Text returns the first element's rendered text content, or "" on an empty
// selection.
func (s *Selection) Text() string {
	if len(s.nodes) == 0 {
		return ""
	}
	return dom.Text(s.nodes[0])
}

// SetText replaces every element's content with a single text node.
func (s *Selection) SetText(text string) *Selection {
	for _, n := range s.nodes {
		dom.SetText(n, text)
	}
	return s
}

// Remove detaches every element that currently has a parent. The selection
// keeps referencing the detached nodes, so they can be re-inserted.
func (s *Selection) Remove() *Selection {
	for _, n := range s.nodes {
		dom.Detach(n)
	}
	return s
}
