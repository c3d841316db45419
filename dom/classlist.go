package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Class tokens live in the "class" attribute as whitespace-separated names.
// The read splits on any ASCII whitespace; writes join with single spaces,
// preserving the existing token order.

func classTokens(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

func setClassTokens(n *html.Node, tokens []string) {
	SetAttr(n, "class", strings.Join(tokens, " "))
}

// HasClass reports whether n carries the class token.
func HasClass(n *html.Node, name string) bool {
	for _, t := range classTokens(n) {
		if t == name {
			return true
		}
	}
	return false
}

// AddClass adds the token if absent. Adding a present token is a no-op.
func AddClass(n *html.Node, name string) {
	if !IsElement(n) || name == "" || HasClass(n, name) {
		return
	}
	setClassTokens(n, append(classTokens(n), name))
}

// RemoveClass removes every occurrence of the token.
func RemoveClass(n *html.Node, name string) {
	if !IsElement(n) || !HasClass(n, name) {
		return
	}
	tokens := classTokens(n)
	kept := tokens[:0]
	for _, t := range tokens {
		if t != name {
			kept = append(kept, t)
		}
	}
	setClassTokens(n, kept)
}

// ToggleClass flips the token's presence and reports the new state.
func ToggleClass(n *html.Node, name string) bool {
	if HasClass(n, name) {
		RemoveClass(n, name)
		return false
	}
	AddClass(n, name)
	return true
}
